package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/tna/atn"
)

// Inspector is our interactive inspection session.
type Inspector struct {
	a    *atn.ATN
	demo *demoStates
	repl *readline.Instance
}

func newInspector() (*Inspector, error) {
	repl, err := readline.New("tni> ")
	if err != nil {
		return nil, err
	}
	a, demo := demoAutomaton()
	return &Inspector{a: a, demo: demo, repl: repl}, nil
}

// REPL starts interactive mode.
func (insp *Inspector) REPL() {
	insp.help()
	for {
		line, err := insp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		args := strings.Fields(line)
		if quit := insp.execute(args[0], args[1:]); quit {
			break
		}
	}
	println("Good bye!")
}

func (insp *Inspector) execute(cmd string, args []string) bool {
	switch cmd {
	case "quit", "q":
		return true
	case "help", "?":
		insp.help()
	case "states":
		insp.listStates()
	case "state":
		insp.showState(args)
	case "next":
		insp.nextTokens(args)
	case "expect":
		insp.expectedTokens(args)
	case "dot":
		insp.a.ToGraphViz(os.Stdout)
	default:
		pterm.Error.Println("unknown command: " + cmd)
	}
	return false
}

func (insp *Inspector) help() {
	pterm.Info.Println(`commands:
  states               list all states
  state N              show state N with its transitions
  next N               rule-local follow set of state N
  expect N [N1 N2 …]   expected tokens at N, invoked from N1, N1 from N2, …
  dot                  export the automaton to Graphviz
  quit                 leave`)
}

func (insp *Inspector) listStates() {
	for n := 0; n < insp.a.NumStates(); n++ {
		s := insp.a.State(n)
		if s == nil {
			pterm.Printf("s%03d <removed>\n", n)
			continue
		}
		label := ""
		if s.Decision() != atn.NoDecision {
			label = pterm.NewStyle(pterm.FgCyan).Sprint(" decision " + strconv.Itoa(s.Decision()))
		}
		pterm.Printf("s%03d %-12s rule %s%s\n", n, s.Kind(), ruleNames[s.Rule()], label)
	}
}

func (insp *Inspector) statearg(args []string) *atn.State {
	if len(args) < 1 {
		pterm.Error.Println("need a state number")
		return nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 || n >= insp.a.NumStates() {
		pterm.Error.Println("no such state: " + args[0])
		return nil
	}
	s := insp.a.State(n)
	if s == nil {
		pterm.Error.Println("state has been removed: " + args[0])
	}
	return s
}

func (insp *Inspector) showState(args []string) {
	s := insp.statearg(args)
	if s == nil {
		return
	}
	pterm.Printf("%s, %d transitions\n", s, s.TransitionCount())
	for i := 0; i < s.TransitionCount(); i++ {
		pterm.Printf("   [%d] %s\n", i, s.Transition(i))
	}
}

func (insp *Inspector) nextTokens(args []string) {
	s := insp.statearg(args)
	if s == nil {
		return
	}
	follow := insp.a.NextTokens(s)
	pterm.Info.Println("next(" + s.String() + ") = " + follow.StringWith(tokNames))
}

// expectedTokens resolves expected tokens at a state, given a simulated
// invocation stack: 'expect 3 8 5' asks at state 3, invoked from state 8,
// which in turn was invoked from state 5.
func (insp *Inspector) expectedTokens(args []string) {
	if len(args) < 1 {
		pterm.Error.Println("need a state number")
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		pterm.Error.Println("no such state: " + args[0])
		return
	}
	var ctx *level
	for i := len(args) - 1; i >= 1; i-- { // outermost caller last on the line
		invoking, err := strconv.Atoi(args[i])
		if err != nil {
			pterm.Error.Println("not a state number: " + args[i])
			return
		}
		ctx = &level{invoking: invoking, parent: ctx}
	}
	expected, err := insp.a.ExpectedTokens(n, callctx(ctx))
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	pterm.Info.Println("expect(" + args[0] + ") = " + expected.StringWith(tokNames))
}

// level implements atn.CallContext for simulated invocation stacks.
type level struct {
	invoking int
	parent   *level
}

func (l *level) InvokingState() int {
	return l.invoking
}

func (l *level) Parent() atn.CallContext {
	return callctx(l.parent)
}

// callctx converts a possibly nil *level into a clean nil interface.
func callctx(l *level) atn.CallContext {
	if l == nil {
		return nil
	}
	return l
}
