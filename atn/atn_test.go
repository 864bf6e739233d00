package atn

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestStateNumbering(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tna.atn")
	defer teardown()
	//
	a := New()
	s0 := a.AddState(NewState(Basic, 0))
	s1 := a.AddState(NewState(Basic, 0))
	s2 := a.AddState(NewState(Basic, 1))
	if s0.Number() != 0 || s1.Number() != 1 || s2.Number() != 2 {
		t.Errorf("Expected dense numbering 0,1,2, have %d,%d,%d",
			s0.Number(), s1.Number(), s2.Number())
	}
	a.RemoveState(s1)
	if a.State(1) != nil {
		t.Errorf("Expected slot 1 to be absent after removal")
	}
	if a.NumStates() != 3 {
		t.Errorf("Removal must not compact the state list, have %d slots", a.NumStates())
	}
	s3 := a.AddState(NewState(Basic, 1))
	if s3.Number() != 3 {
		t.Errorf("State numbers must never be reused, have %d", s3.Number())
	}
}

func TestDecisionRegistration(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tna.atn")
	defer teardown()
	//
	a := New()
	var stamped []int
	for i := 0; i < 4; i++ {
		s := a.AddState(NewState(BlockStart, i))
		stamped = append(stamped, a.DefineDecisionState(s))
	}
	for d, want := range stamped {
		if d != want {
			t.Errorf("Expected dense decision indices, have %v", stamped)
		}
		if a.DecisionState(d).Decision() != d {
			t.Errorf("decisionToState[%d].decision = %d", d, a.DecisionState(d).Decision())
		}
	}
	if a.NumDecisions() != 4 {
		t.Errorf("Expected 4 decisions, have %d", a.NumDecisions())
	}
}

func TestCacheSlotStability(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tna.atn")
	defer teardown()
	//
	a := New()
	d0 := a.DefineDecisionState(a.AddState(NewState(BlockStart, 0)))
	slot := a.DecisionCache(d0)
	slot.GetOrInsert("k", 42)
	for i := 0; i < 100; i++ { // growing the arena must not invalidate slot
		a.DefineDecisionState(a.AddState(NewState(BlockStart, 0)))
	}
	if a.DecisionCache(d0) != slot {
		t.Errorf("Slot reference invalidated by arena growth")
	}
	if v, ok := slot.Get("k"); !ok || v.(int) != 42 {
		t.Errorf("Slot content lost after arena growth")
	}
}

func TestModeRegistration(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tna.atn")
	defer teardown()
	//
	a := New()
	def := a.AddState(NewState(TokensStart, 0))
	str := a.AddState(NewState(TokensStart, 0))
	m0 := a.DefineMode("DEFAULT_MODE", def)
	m1 := a.DefineMode("STRING_MODE", str)
	if m0 != 0 || m1 != 1 {
		t.Errorf("Expected dense mode indices, have %d, %d", m0, m1)
	}
	if a.Mode("STRING_MODE") != str || a.Mode("NO_SUCH_MODE") != nil {
		t.Errorf("Mode lookup broken")
	}
	if a.NumModes() != 2 || a.ModeName(1) != "STRING_MODE" {
		t.Errorf("Mode list broken")
	}
	// mode entries double as decisions
	if def.Decision() != 0 || str.Decision() != 1 {
		t.Errorf("Expected mode states to be registered as decisions, have %d, %d",
			def.Decision(), str.Decision())
	}
	if a.NumDecisions() != 2 || a.ModeCache(0) == nil {
		t.Errorf("Mode registration did not grow the caches")
	}
}

func TestRuleBoundary(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tna.atn")
	defer teardown()
	//
	a := New()
	start := a.AddState(NewState(RuleStart, 2))
	stop := a.AddState(NewState(RuleStop, 2))
	a.SetRuleBoundary(2, start, stop)
	if a.NumRules() != 3 {
		t.Errorf("Expected rule table to grow to 3 slots, have %d", a.NumRules())
	}
	if a.RuleStart(2) != start || a.RuleStop(2) != stop {
		t.Errorf("Rule boundary lookup broken")
	}
	if a.RuleStart(0) != nil {
		t.Errorf("Unset rule slots must be nil")
	}
}

func TestStoreInsertIfAbsent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tna.atn")
	defer teardown()
	//
	st := NewStore()
	v, inserted := st.GetOrInsert("d0", "first")
	if !inserted || v.(string) != "first" {
		t.Errorf("First insert must win")
	}
	v, inserted = st.GetOrInsert("d0", "second")
	if inserted || v.(string) != "first" {
		t.Errorf("Second insert must lose, have %v", v)
	}
	if st.Size() != 1 {
		t.Errorf("Expected 1 entry, have %d", st.Size())
	}
}

func TestStoreConcurrent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tna.atn")
	defer teardown()
	//
	st := NewStore()
	winners := make([]interface{}, 32)
	var wg sync.WaitGroup
	for i := range winners {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			winners[i], _ = st.GetOrInsert("key", fmt.Sprintf("goroutine %d", i))
		}(i)
	}
	wg.Wait()
	if st.Size() != 1 {
		t.Fatalf("Expected exactly one winner, have %d entries", st.Size())
	}
	for i := 1; i < len(winners); i++ {
		if winners[i] != winners[0] {
			t.Fatalf("Goroutines disagree on the winning entry")
		}
	}
}

func TestGraphViz(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tna.atn")
	defer teardown()
	//
	a, g := buildCallChain(t)
	a.RemoveState(g.spare)
	var buf bytes.Buffer
	a.ToGraphViz(&buf)
	dot := buf.String()
	if !strings.HasPrefix(dot, "digraph {") {
		t.Errorf("Expected dot output, have %q", dot)
	}
	if strings.Contains(dot, fmt.Sprintf("s%03d [", g.spare.Number())) {
		t.Errorf("Removed state must not be exported")
	}
	if !strings.Contains(dot, "style=dashed") {
		t.Errorf("Expected a dashed return edge for the rule call")
	}
}
