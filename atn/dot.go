package atn

import (
	"fmt"
	"io"
)

// ToGraphViz exports the automaton graph to the Graphviz Dot format.
// Removed state slots are skipped. Decision states are drawn shaded, rule
// boundaries double-circled.
func (a *ATN) ToGraphViz(w io.Writer) {
	io.WriteString(w, `digraph {
graph [splines=true, fontname=Helvetica, fontsize=10];
node [shape=circle, fontname=Helvetica, fontsize=10];
edge [fontname=Helvetica, fontsize=10];

`)
	for _, s := range a.states {
		if s == nil { // removed slot
			continue
		}
		fmt.Fprintf(w, "s%03d [shape=%s style=filled fillcolor=%s label=\"%d\\nr%d\"]\n",
			s.number, nodeshape(s), nodecolor(s), s.number, s.rule)
	}
	io.WriteString(w, "\n")
	for _, s := range a.states {
		if s == nil {
			continue
		}
		it := s.edges.Iterator()
		for it.Next() {
			t := it.Value().(Transition)
			label := "ε"
			if t.Label() != nil {
				label = t.Label().String()
			} else if rt, ok := t.(*RuleTransition); ok {
				label = fmt.Sprintf("rule %d", rt.rule)
			}
			fmt.Fprintf(w, "s%03d -> s%03d [label=\"%s\"]\n", s.number, t.Target().number, label)
			if rt, ok := t.(*RuleTransition); ok && rt.rule < len(a.ruleStop) && a.ruleStop[rt.rule] != nil {
				fmt.Fprintf(w, "s%03d -> s%03d [style=dashed label=\"ret\"]\n",
					a.ruleStop[rt.rule].number, rt.follow.number) // return edge
			}
		}
	}
	io.WriteString(w, "}\n")
}

func nodecolor(s *State) string {
	if s.decision != NoDecision {
		return "lightgray"
	}
	return "white"
}

func nodeshape(s *State) string {
	switch s.kind {
	case RuleStart, RuleStop:
		return "doublecircle"
	}
	return "circle"
}
