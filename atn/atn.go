package atn

import (
	"fmt"

	"github.com/npillmayer/tna/atn/pcontext"
)

// ATN is the transition-network automaton graph for a grammar: the state
// list, the rule boundary registry, the decision registry and the lexer-mode
// registry, plus the memoization slots filled in by external prediction
// engines.
//
// An ATN is built once, single-threaded, by an external grammar compiler or
// deserializer. Afterwards its structure is immutable and it may be shared
// by arbitrarily many concurrent parsing or lexing runs. The only values
// which change post-construction do so monotonically: the per-state follow
// memo (write-once), the decision and mode cache slots (insert-if-absent)
// and the context cache (grows by insertion).
type ATN struct {
	states         []*State // index == state number; nil marks a removed state
	decisions      []*State // index == decision index
	decisionCaches []*Store // parallel to decisions
	ruleStart      []*State // per rule index
	ruleStop       []*State // per rule index
	modeNames      []string // in registration order
	modes          map[string]*State
	modeCaches     []*Store // parallel to modeNames
	contexts       *pcontext.Cache
}

// New creates an empty automaton graph with a fresh context cache.
func New() *ATN {
	return &ATN{
		modes:    make(map[string]*State),
		contexts: pcontext.NewCache(),
	}
}

// Contexts returns the automaton's context canonicalization cache. It lives
// as long as the automaton and is shared with external prediction engines.
func (a *ATN) Contexts() *pcontext.Cache {
	return a.contexts
}

// --- State registry ---------------------------------------------------

// AddState appends a state to the state list and stamps its number.
// Numbers are never compacted or reused. Returns the state for chaining.
func (a *ATN) AddState(s *State) *State {
	s.number = len(a.states)
	a.states = append(a.states, s)
	return s
}

// RemoveState clears the slot at the state's number. The numbering of all
// other states is unaffected; collaborators must tolerate the absent slot.
func (a *ATN) RemoveState(s *State) {
	a.states[s.number] = nil
	tracer().Debugf("atn: removed state %d", s.number)
}

// NumStates returns the length of the state list, including removed slots.
func (a *ATN) NumStates() int {
	return len(a.states)
}

// State returns the state numbered n, or nil if the slot was removed.
func (a *ATN) State(n int) *State {
	return a.states[n]
}

// --- Decision registry ------------------------------------------------

// DefineDecisionState registers s as a decision point. It appends s to the
// decision list, stamps the next dense decision index onto it, and grows
// the decision cache arena by one fresh slot keyed to that index. Returns
// the assigned decision index.
func (a *ATN) DefineDecisionState(s *State) int {
	s.decision = len(a.decisions)
	a.decisions = append(a.decisions, s)
	a.decisionCaches = append(a.decisionCaches, NewStore())
	tracer().Debugf("atn: decision %d = state %d", s.decision, s.number)
	return s.decision
}

// NumDecisions returns the number of registered decision states.
func (a *ATN) NumDecisions() int {
	return len(a.decisions)
}

// DecisionState returns the state registered under decision index d.
func (a *ATN) DecisionState(d int) *State {
	return a.decisions[d]
}

// DecisionCache returns the memoization slot for decision index d. The
// returned pointer stays valid however many decisions are registered later.
func (a *ATN) DecisionCache(d int) *Store {
	return a.decisionCaches[d]
}

// --- Lexer-mode registry ----------------------------------------------

// DefineMode registers a lexer mode: it maps name to the mode's start
// state, appends to the mode list, grows the mode cache arena by one slot,
// and registers s as a decision state as well (mode entries double as
// decision points). Returns the mode index.
func (a *ATN) DefineMode(name string, s *State) int {
	if _, ok := a.modes[name]; ok {
		panic(fmt.Sprintf("atn: mode %q registered twice", name))
	}
	mode := len(a.modeNames)
	a.modeNames = append(a.modeNames, name)
	a.modes[name] = s
	a.modeCaches = append(a.modeCaches, NewStore())
	a.DefineDecisionState(s)
	tracer().Infof("atn: mode %d %q = state %d", mode, name, s.number)
	return mode
}

// NumModes returns the number of registered lexer modes.
func (a *ATN) NumModes() int {
	return len(a.modeNames)
}

// ModeName returns the name of mode index m.
func (a *ATN) ModeName(m int) string {
	return a.modeNames[m]
}

// Mode returns the start state registered for a mode name, or nil.
func (a *ATN) Mode(name string) *State {
	return a.modes[name]
}

// ModeCache returns the memoization slot for mode index m. The returned
// pointer stays valid however many modes are registered later.
func (a *ATN) ModeCache(m int) *Store {
	return a.modeCaches[m]
}

// --- Rule boundary registry -------------------------------------------

// SetRuleBoundary registers the rule-start/rule-stop pair for rule index r,
// growing the rule tables as needed. Both states must be owned by rule r
// and be of the corresponding kind.
func (a *ATN) SetRuleBoundary(r int, start, stop *State) {
	if start.kind != RuleStart || stop.kind != RuleStop {
		panic(fmt.Sprintf("atn: rule %d boundary needs rule-start/rule-stop, got %s, %s", r, start, stop))
	}
	if start.rule != r || stop.rule != r {
		panic(fmt.Sprintf("atn: rule %d boundary states owned by rules %d, %d", r, start.rule, stop.rule))
	}
	for len(a.ruleStart) <= r {
		a.ruleStart = append(a.ruleStart, nil)
		a.ruleStop = append(a.ruleStop, nil)
	}
	a.ruleStart[r] = start
	a.ruleStop[r] = stop
}

// NumRules returns the number of rule slots.
func (a *ATN) NumRules() int {
	return len(a.ruleStart)
}

// RuleStart returns the entry state of rule r.
func (a *ATN) RuleStart(r int) *State {
	return a.ruleStart[r]
}

// RuleStop returns the exit state of rule r.
func (a *ATN) RuleStop(r int) *State {
	return a.ruleStop[r]
}
