package main

import (
	"github.com/npillmayer/tna"
	"github.com/npillmayer/tna/atn"
)

// We provide a small two-rule demo automaton as the default inspection
// target:
//
//     A: 'x' B 'z' ;
//     B: 'y' | ε ;
//
// B's optional body gives the decision state an Epsilon in its rule-local
// follow set, so climbing the invocation stack with 'expect' has something
// to resolve.
func demoAutomaton() (*atn.ATN, *demoStates) {
	a := atn.New()
	d := &demoStates{}
	d.aStart = a.AddState(atn.NewState(atn.RuleStart, 0))
	d.aStop = a.AddState(atn.NewState(atn.RuleStop, 0))
	d.bStart = a.AddState(atn.NewState(atn.RuleStart, 1))
	d.bStop = a.AddState(atn.NewState(atn.RuleStop, 1))
	a.SetRuleBoundary(0, d.aStart, d.aStop)
	a.SetRuleBoundary(1, d.bStart, d.bStop)
	//
	// A: 'x' B 'z'
	x1 := a.AddState(atn.NewState(atn.Basic, 0))
	d.callB = a.AddState(atn.NewState(atn.Basic, 0))
	d.afterB = a.AddState(atn.NewState(atn.Basic, 0))
	z1 := a.AddState(atn.NewState(atn.Basic, 0))
	d.aStart.AddTransition(atn.NewEpsilon(x1))
	x1.AddTransition(atn.NewAtom(d.callB, 'x'))
	d.callB.AddTransition(atn.NewRule(d.bStart, 1, d.afterB))
	d.afterB.AddTransition(atn.NewAtom(z1, 'z'))
	z1.AddTransition(atn.NewEpsilon(d.aStop))
	//
	// B: 'y' | ε
	decision := a.AddState(atn.NewState(atn.BlockStart, 1))
	a.DefineDecisionState(decision)
	y1 := a.AddState(atn.NewState(atn.Basic, 1))
	d.bStart.AddTransition(atn.NewEpsilon(decision))
	decision.AddTransition(atn.NewAtom(y1, 'y'))
	decision.AddTransition(atn.NewEpsilon(d.bStop)) // empty alternative
	y1.AddTransition(atn.NewEpsilon(d.bStop))
	return a, d
}

type demoStates struct {
	aStart, aStop *atn.State
	bStart, bStop *atn.State
	callB         *atn.State
	afterB        *atn.State
}

// tokNames renders the demo's token categories with their grammar names.
func tokNames(t tna.TokType) string {
	switch t {
	case 'x':
		return "'x'"
	case 'y':
		return "'y'"
	case 'z':
		return "'z'"
	}
	return t.String()
}

// ruleNames maps the demo's rule indices to names.
var ruleNames = []string{"A", "B"}
