/*
Package pcontext implements prediction contexts.

A prediction context is an immutable representation of a suffix of the
rule-invocation stack: a chain of return states, ending in a distinguished
"stack ended here" marker. Prediction engines explore many alternative
derivations at once, and alternative invocation histories frequently
converge on a shared suffix. To keep that tractable, contexts are
hash-consed: structurally identical chains canonicalize to the same
instance, and merging two histories yields a DAG node whose children are
the union of the distinct children of the inputs.

Canonicalization is served by a Cache, of which an automaton owns exactly
one. The cache grows by insertion for the lifetime of the automaton and is
safe for concurrent use.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pcontext

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tna.atn'.
func tracer() tracing.Trace {
	return tracing.Select("tna.atn")
}
