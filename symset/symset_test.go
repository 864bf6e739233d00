package symset

import (
	"testing"

	"github.com/npillmayer/tna"
)

func TestAddCoalesce(t *testing.T) {
	s := New().Add(5).Add(7).Add(6)
	if s.IntervalCount() != 1 {
		t.Errorf("Expected 5,6,7 to coalesce into one interval, have %d", s.IntervalCount())
	}
	if s.Size() != 3 {
		t.Errorf("Expected set of size 3, have %d", s.Size())
	}
	s.AddRange(10, 12)
	if s.IntervalCount() != 2 {
		t.Errorf("Expected 2 intervals after adding 10…12, have %d: %s", s.IntervalCount(), s)
	}
	s.AddRange(8, 9) // bridges the gap
	if s.IntervalCount() != 1 {
		t.Errorf("Expected 8…9 to bridge both intervals, have %s", s)
	}
	if !s.Contains(11) || s.Contains(13) {
		t.Errorf("Membership broken for %s", s)
	}
}

func TestAddOverlap(t *testing.T) {
	s := New().AddRange(1, 5).AddRange(3, 9)
	if s.IntervalCount() != 1 || s.Size() != 9 {
		t.Errorf("Expected 1…9, have %s", s)
	}
	s.AddRange(20, 10) // inverted, must be a no-op
	if s.Size() != 9 {
		t.Errorf("Inverted range should not change the set, have %s", s)
	}
}

func TestRemoveSplit(t *testing.T) {
	s := New().AddRange(1, 5)
	s.Remove(3)
	if s.IntervalCount() != 2 || s.Contains(3) {
		t.Errorf("Expected 1…2 and 4…5, have %s", s)
	}
	s.Remove(1)
	s.Remove(2)
	if s.IntervalCount() != 1 || s.Size() != 2 {
		t.Errorf("Expected 4…5, have %s", s)
	}
	s.Remove(100) // not a member, no-op
	if s.Size() != 2 {
		t.Errorf("Removing a non-member changed the set: %s", s)
	}
}

func TestSentinels(t *testing.T) {
	s := New().Add(tna.Epsilon).Add(4)
	if !s.Contains(tna.Epsilon) {
		t.Errorf("Expected Epsilon to be a member of %s", s)
	}
	s.Remove(tna.Epsilon)
	s.Add(tna.EOF)
	if s.Contains(tna.Epsilon) || !s.Contains(tna.EOF) {
		t.Errorf("Sentinel handling broken for %s", s)
	}
}

func TestUnionEquals(t *testing.T) {
	a := New().AddRange(1, 3).Add(7)
	b := New().Add(4).Add(9)
	a.AddSet(b)
	want := New().AddRange(1, 4).Add(7).Add(9)
	if !a.Equals(want) {
		t.Errorf("Expected union %s, have %s", want, a)
	}
	if b.Size() != 2 {
		t.Errorf("Union must not touch the other set, have %s", b)
	}
	if a.Equals(nil) {
		t.Errorf("No set should equal nil")
	}
}

func TestFreeze(t *testing.T) {
	s := New().Add(1).Freeze()
	if !s.Frozen() {
		t.Errorf("Expected set to be frozen")
	}
	defer func() {
		if recover() == nil {
			t.Errorf("Expected mutation of frozen set to panic")
		}
	}()
	s.Add(2)
}

func TestCopyIsMutable(t *testing.T) {
	s := New().Add(1).Freeze()
	c := s.Copy()
	c.Add(2) // must not panic
	if s.Contains(2) {
		t.Errorf("Copy mutation leaked into original %s", s)
	}
}

func TestAppendTo(t *testing.T) {
	s := New().AddRange(2, 4).Add(9)
	toks := s.AppendTo(nil)
	want := []tna.TokType{2, 3, 4, 9}
	if len(toks) != len(want) {
		t.Fatalf("Expected %v, have %v", want, toks)
	}
	for i, tok := range want {
		if toks[i] != tok {
			t.Errorf("Expected %v, have %v", want, toks)
		}
	}
}

func TestStringWith(t *testing.T) {
	s := New().Add(1).Add(tna.EOF)
	names := func(tok tna.TokType) string {
		if tok == 1 {
			return "'a'"
		}
		return tok.String()
	}
	if got := s.StringWith(names); got != "{ #eof, 'a' }" {
		t.Errorf("Unexpected rendering %q", got)
	}
}
