package atn

import (
	"github.com/npillmayer/tna"
	"github.com/npillmayer/tna/atn/pcontext"
	"github.com/npillmayer/tna/symset"
)

// === Follow-Set Analysis ===================================================

// Refer to "Parsing Techniques" by Dick Grune and Ceriel J.H. Jacobs
// (https://dickgrune.com/Books/PTAPG_2nd_Edition/), Section 2.8, for the
// recursive-transition-network view of a grammar this analysis operates on.

// NextTokens computes the rule-local follow set of a state: every token
// category reachable from s without leaving the enclosing rule. Epsilon is
// included if control can fall off the rule's end.
//
// The set is computed once per state and cached; every call returns the
// same frozen instance. Concurrent first calls are idempotent: all callers
// agree on one published set.
func (a *ATN) NextTokens(s *State) *symset.Set {
	if follow := s.follow.get(); follow != nil {
		return follow
	}
	follow := a.NextTokensInContext(s, pcontext.Empty)
	return s.follow.publish(follow.Freeze())
}

// NextTokensInContext computes the follow set of a state relative to an
// invocation context. The traversal is an epsilon-closure walk: a
// symbol-consuming transition contributes its label and terminates the
// path, an epsilon-like transition continues the walk, and a rule-call
// transition descends into the callee. Reaching a rule-stop state either
// resumes at the return state recorded in ctx, or — where a merged history
// ends — contributes Epsilon ("do not look past this rule's boundary").
//
// A nil ctx is treated identically to the canonical empty marker: the walk
// is restricted to the rule, it does not look through the rule boundary.
// The result is freshly allocated and mutable; it is not cached.
func (a *ATN) NextTokensInContext(s *State, ctx *pcontext.Context) *symset.Set {
	follow := symset.New()
	if ctx == nil {
		ctx = pcontext.Empty
	}
	a.look(s, ctx, follow, stateset{})
	tracer().Debugf("atn: next(%s, %s) = %s", s, ctx, follow)
	return follow
}

// look is one step of the closure walk. visited is shared across the whole
// traversal; refusing to re-enter a state already seen is what bounds the
// walk on optional, looping and left-recursive constructs.
func (a *ATN) look(s *State, ctx *pcontext.Context, follow *symset.Set, visited stateset) {
	if s == nil || visited.contains(s.number) {
		return
	}
	visited.add(s.number)
	if s.kind == RuleStop {
		if ctx.IsEmpty() {
			follow.Add(tna.Epsilon)
			return
		}
		for i := 0; i < ctx.Len(); i++ {
			if ctx.ReturnState(i) == pcontext.EmptyReturnState {
				follow.Add(tna.Epsilon) // one of the merged histories ends here
				continue
			}
			parent := ctx.Parent(i)
			a.look(a.states[ctx.ReturnState(i)], parent, follow, visited)
		}
		return
	}
	it := s.edges.Iterator()
	for it.Next() {
		t := it.Value().(Transition)
		if rt, ok := t.(*RuleTransition); ok {
			callee := pcontext.Singleton(ctx, rt.follow.number)
			a.look(rt.target, a.contexts.Canonicalize(callee), follow, visited)
			continue
		}
		if t.IsEpsilon() {
			a.look(t.Target(), ctx, follow, visited)
		} else {
			follow.AddSet(t.Label())
		}
	}
}

// --- Visited-state sets -----------------------------------------------

type stateset map[int]struct{}

var exists = struct{}{}

func (set stateset) add(n int) {
	set[n] = exists
}

func (set stateset) contains(n int) bool {
	_, ok := set[n]
	return ok
}
