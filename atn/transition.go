package atn

import (
	"fmt"

	"github.com/npillmayer/tna"
	"github.com/npillmayer/tna/symset"
)

// Transition is a directed edge from a state. Exactly the symbol-consuming
// kinds (atom, range, set) carry a label; traversing one of them terminates
// a lookahead path by consuming a symbol. All other kinds are traversed
// silently.
type Transition interface {
	Target() *State
	IsEpsilon() bool     // true if traversal consumes no input symbol
	Label() *symset.Set  // consumed symbols, nil for epsilon-like kinds
	String() string
}

// --- Epsilon ----------------------------------------------------------

// EpsilonTransition is an edge consumed without matching input.
type EpsilonTransition struct {
	target *State
}

// NewEpsilon creates an epsilon transition to target.
func NewEpsilon(target *State) *EpsilonTransition {
	return &EpsilonTransition{target: target}
}

func (t *EpsilonTransition) Target() *State     { return t.target }
func (t *EpsilonTransition) IsEpsilon() bool    { return true }
func (t *EpsilonTransition) Label() *symset.Set { return nil }
func (t *EpsilonTransition) String() string     { return fmt.Sprintf("ε→%d", t.target.number) }

// --- Symbol-consuming kinds -------------------------------------------

// AtomTransition matches a single token category.
type AtomTransition struct {
	target *State
	label  *symset.Set
}

// NewAtom creates a transition matching the single token category tok.
func NewAtom(target *State, tok tna.TokType) *AtomTransition {
	return &AtomTransition{target: target, label: symset.Single(tok).Freeze()}
}

func (t *AtomTransition) Target() *State     { return t.target }
func (t *AtomTransition) IsEpsilon() bool    { return false }
func (t *AtomTransition) Label() *symset.Set { return t.label }
func (t *AtomTransition) String() string {
	return fmt.Sprintf("%s→%d", t.label, t.target.number)
}

// RangeTransition matches every token category in a closed interval.
type RangeTransition struct {
	target *State
	label  *symset.Set
}

// NewRange creates a transition matching the closed interval lo…hi.
func NewRange(target *State, lo, hi tna.TokType) *RangeTransition {
	return &RangeTransition{target: target, label: symset.New().AddRange(lo, hi).Freeze()}
}

func (t *RangeTransition) Target() *State     { return t.target }
func (t *RangeTransition) IsEpsilon() bool    { return false }
func (t *RangeTransition) Label() *symset.Set { return t.label }
func (t *RangeTransition) String() string {
	return fmt.Sprintf("%s→%d", t.label, t.target.number)
}

// SetTransition matches every token category in a set.
type SetTransition struct {
	target *State
	label  *symset.Set
}

// NewSet creates a transition matching set. The set is copied and frozen.
func NewSet(target *State, set *symset.Set) *SetTransition {
	return &SetTransition{target: target, label: set.Copy().Freeze()}
}

func (t *SetTransition) Target() *State     { return t.target }
func (t *SetTransition) IsEpsilon() bool    { return false }
func (t *SetTransition) Label() *symset.Set { return t.label }
func (t *SetTransition) String() string {
	return fmt.Sprintf("%s→%d", t.label, t.target.number)
}

// --- Rule invocation --------------------------------------------------

// RuleTransition invokes another rule: it targets the callee's rule-start
// state and records the state where the caller resumes once the callee's
// rule-stop state is reached.
type RuleTransition struct {
	target *State // the invoked rule's start state
	rule   int    // index of the invoked rule
	follow *State // where to resume after the callee returns
}

// NewRule creates a rule-call transition. start must be the rule-start
// state of rule, follow the caller's designated return state.
func NewRule(start *State, rule int, follow *State) *RuleTransition {
	if start.kind != RuleStart {
		panic(fmt.Sprintf("atn: rule transition must target a rule-start state, got %s", start))
	}
	return &RuleTransition{target: start, rule: rule, follow: follow}
}

func (t *RuleTransition) Target() *State     { return t.target }
func (t *RuleTransition) IsEpsilon() bool    { return true }
func (t *RuleTransition) Label() *symset.Set { return nil }

// FollowState returns the caller's designated return state.
func (t *RuleTransition) FollowState() *State { return t.follow }

// RuleIndex returns the index of the invoked rule.
func (t *RuleTransition) RuleIndex() int { return t.rule }

func (t *RuleTransition) String() string {
	return fmt.Sprintf("call(r%d)→%d ret %d", t.rule, t.target.number, t.follow.number)
}

// --- Action and predicate ---------------------------------------------

// ActionTransition marks the execution point of a side-effecting action.
// For lookahead purposes it behaves like an epsilon transition.
type ActionTransition struct {
	target *State
	action int
}

// NewAction creates an action transition carrying an action index.
func NewAction(target *State, action int) *ActionTransition {
	return &ActionTransition{target: target, action: action}
}

func (t *ActionTransition) Target() *State     { return t.target }
func (t *ActionTransition) IsEpsilon() bool    { return true }
func (t *ActionTransition) Label() *symset.Set { return nil }

// ActionIndex returns the index into the automaton's action table.
func (t *ActionTransition) ActionIndex() int { return t.action }

func (t *ActionTransition) String() string {
	return fmt.Sprintf("act(%d)→%d", t.action, t.target.number)
}

// PredicateTransition gates a path on a semantic predicate, evaluated by an
// external interpreter. For lookahead purposes it behaves like an epsilon
// transition.
type PredicateTransition struct {
	target *State
	rule   int
	pred   int
}

// NewPredicate creates a predicate transition carrying a rule and
// predicate index.
func NewPredicate(target *State, rule, pred int) *PredicateTransition {
	return &PredicateTransition{target: target, rule: rule, pred: pred}
}

func (t *PredicateTransition) Target() *State     { return t.target }
func (t *PredicateTransition) IsEpsilon() bool    { return true }
func (t *PredicateTransition) Label() *symset.Set { return nil }

// PredIndex returns the index of the gating predicate.
func (t *PredicateTransition) PredIndex() int { return t.pred }

func (t *PredicateTransition) String() string {
	return fmt.Sprintf("pred(r%d,%d)→%d", t.rule, t.pred, t.target.number)
}
