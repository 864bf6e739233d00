package atn

import (
	"fmt"

	"github.com/npillmayer/tna"
	"github.com/npillmayer/tna/symset"
)

// CallContext is a view on a live parse stack, as maintained by an external
// parser driver: each level records the state which invoked the current
// rule. Parent returns nil at the root; drivers which keep an explicit root
// level may instead report a negative invoking state there.
type CallContext interface {
	InvokingState() int
	Parent() CallContext
}

// ExpectedTokens computes the token categories a parser positioned at
// stateNumber may accept next, extending the rule-local follow set across
// the enclosing rule-call boundaries recorded in ctx.
//
// If the rule-local follow set cannot reach the rule's end, it is returned
// as-is and ctx is never consulted. Otherwise the resolver climbs the call
// stack: at each level it resumes at the return state of the rule call
// recorded there and unions in that state's rule-local follow set, until
// the local result is definite or the stack is exhausted. Falling off the
// outermost rule is satisfied only by end of input, so a remaining Epsilon
// converts to EOF.
//
// A stateNumber outside the graph's bounds (or naming a removed slot) is an
// invalid argument: an error is returned and no traversal is performed.
func (a *ATN) ExpectedTokens(stateNumber int, ctx CallContext) (*symset.Set, error) {
	if stateNumber < 0 || stateNumber >= len(a.states) {
		return nil, fmt.Errorf("atn: state number %d out of range 0…%d", stateNumber, len(a.states)-1)
	}
	s := a.states[stateNumber]
	if s == nil {
		return nil, fmt.Errorf("atn: state %d has been removed", stateNumber)
	}
	following := a.NextTokens(s)
	if !following.Contains(tna.Epsilon) {
		return following, nil // definite without context
	}
	expected := following.Copy()
	expected.Remove(tna.Epsilon)
	for ctx != nil && ctx.InvokingState() >= 0 && following.Contains(tna.Epsilon) {
		invoking := a.states[ctx.InvokingState()]
		rt := ruleTransitionFrom(invoking)
		following = a.NextTokens(rt.follow)
		expected.AddSet(following)
		expected.Remove(tna.Epsilon) // resolved at the next level, not counted yet
		ctx = ctx.Parent()
	}
	if following.Contains(tna.Epsilon) {
		expected.Add(tna.EOF)
	}
	tracer().Debugf("atn: expected(%d) = %s", stateNumber, expected)
	return expected, nil
}

// ruleTransitionFrom locates the rule-call transition leaving an invoking
// state. A well-formed graph records exactly one; anything else is a
// construction-contract violation.
func ruleTransitionFrom(s *State) *RuleTransition {
	if s != nil {
		it := s.edges.Iterator()
		for it.Next() {
			if rt, ok := it.Value().(*RuleTransition); ok {
				return rt
			}
		}
	}
	panic(fmt.Sprintf("atn: invoking state %s has no rule-call transition", s))
}
