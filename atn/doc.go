/*
Package atn implements the automaton graph of a transition network.

The graph is the shared runtime representation of a grammar: numbered
states connected by transitions, with registries for rule boundaries,
decision points and lexer modes. It is constructed once — by a grammar
compiler or a deserializer, both outside of this package's concern — and is
thereafter queried concurrently by arbitrarily many parsing or lexing runs.

Construction

States are added with AddState and wired with AddTransition. Decision
states and lexer modes are registered explicitly; registration is
append-only and assigns dense, stable indices:

    a := atn.New()
    s := a.AddState(atn.NewState(atn.Basic, 0))
    d := a.AddState(atn.NewState(atn.BlockStart, 0))
    a.DefineDecisionState(d)

Registering a decision also allocates a memoization slot for it, which an
external prediction engine may fill with lookahead DFA states.

Queries

NextTokens computes the set of token categories which may legally follow a
state, either rule-locally or relative to a live invocation stack.
ExpectedTokens extends a rule-local follow set across enclosing rule-call
boundaries; it is the basis for "expected symbol" error messages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package atn

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tna.atn'.
func tracer() tracing.Trace {
	return tracing.Select("tna.atn")
}
