package atn

import (
	"fmt"
	"sync"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/tna/symset"
)

// StateKind is a category tag for automaton states.
type StateKind int8

// State kinds. The analyzer only treats RuleStop specially; the remaining
// kinds document the grammar construct a state was generated from and drive
// rendering in dumps and dot exports.
const (
	Basic StateKind = iota
	RuleStart
	RuleStop
	BlockStart
	BlockEnd
	LoopEntry
	LoopBack
	TokensStart
)

func (kind StateKind) String() string {
	switch kind {
	case Basic:
		return "basic"
	case RuleStart:
		return "rule-start"
	case RuleStop:
		return "rule-stop"
	case BlockStart:
		return "block-start"
	case BlockEnd:
		return "block-end"
	case LoopEntry:
		return "loop-entry"
	case LoopBack:
		return "loop-back"
	case TokensStart:
		return "tokens-start"
	}
	return "state"
}

// NoDecision is the decision index of states which are not registered as
// decision points.
const NoDecision = -1

// State is a numbered node of the automaton graph. Its number equals its
// index in the owning graph's state list and never changes, not even when
// other states are removed. A state carries its owning rule, its outgoing
// transitions, and — once computed — its cached rule-local follow set.
type State struct {
	number   int
	kind     StateKind
	rule     int
	decision int
	edges    *arraylist.List // outgoing transitions
	follow   followMemo      // write-once rule-local follow set
}

// NewState creates a detached state of the given kind, owned by rule.
// It receives its number when added to a graph.
func NewState(kind StateKind, rule int) *State {
	return &State{
		number:   -1,
		kind:     kind,
		rule:     rule,
		decision: NoDecision,
		edges:    arraylist.New(),
	}
}

// Number returns the state's index in the owning graph's state list,
// or -1 for a detached state.
func (s *State) Number() int {
	return s.number
}

// Kind returns the state's category tag.
func (s *State) Kind() StateKind {
	return s.kind
}

// Rule returns the index of the rule the state belongs to.
func (s *State) Rule() int {
	return s.rule
}

// Decision returns the state's dense decision index, or NoDecision.
func (s *State) Decision() int {
	return s.decision
}

// AddTransition appends an outgoing transition.
func (s *State) AddTransition(t Transition) {
	if t == nil || t.Target() == nil {
		panic("atn: transition without target")
	}
	s.edges.Add(t)
}

// TransitionCount returns the number of outgoing transitions.
func (s *State) TransitionCount() int {
	return s.edges.Size()
}

// Transition returns the i-th outgoing transition.
func (s *State) Transition(i int) Transition {
	t, ok := s.edges.Get(i)
	if !ok {
		panic(fmt.Sprintf("atn: state %d has no transition %d", s.number, i))
	}
	return t.(Transition)
}

func (s *State) String() string {
	return fmt.Sprintf("s%d(%s/r%d)", s.number, s.kind, s.rule)
}

// --- Write-once follow-set memo --------------------------------------------

// followMemo publishes a frozen follow set exactly once. Concurrent
// computation is idempotent: the loser of the publication race adopts the
// winner's instance, so every reader sees the same frozen set, never a
// partially built one.
type followMemo struct {
	mu  sync.RWMutex
	set *symset.Set
}

func (m *followMemo) get() *symset.Set {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.set
}

// publish installs candidate unless a winner exists; returns the winner.
// candidate must be frozen.
func (m *followMemo) publish(candidate *symset.Set) *symset.Set {
	if !candidate.Frozen() {
		panic("atn: publishing unfrozen follow set")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.set == nil {
		m.set = candidate
	}
	return m.set
}
