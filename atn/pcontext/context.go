package pcontext

import (
	"bytes"
	"fmt"
)

// EmptyReturnState is the reserved return state of the empty-stack marker.
// It is larger than every real state number, so the empty marker always
// sorts last among the children of a merged context.
const EmptyReturnState = int(^uint32(0) >> 1) // max int32

// Context is an immutable node of a prediction-context DAG. It holds one or
// more (return state, parent) pairs, sorted ascending by return state. A
// freshly constructed Context is a plain value; it becomes canonical — and
// comparable by identity — only by running it through a Cache.
type Context struct {
	id           uint64 // arena id, assigned by a Cache; 0 = not canonical
	returnStates []int
	parents      []*Context
}

// Empty is the canonical "stack ended here" marker. It is shared between
// all caches and is the only context with a nil parent entry.
var Empty = &Context{
	id:           emptyID,
	returnStates: []int{EmptyReturnState},
	parents:      []*Context{nil},
}

const emptyID uint64 = 1

// Singleton creates a context with a single (return state, parent) pair,
// i.e. one additional stack frame on top of parent. A nil parent is
// normalized to Empty. The result is not canonical yet.
func Singleton(parent *Context, returnState int) *Context {
	if returnState == EmptyReturnState && parent == nil {
		return Empty
	}
	if parent == nil {
		parent = Empty
	}
	return &Context{
		returnStates: []int{returnState},
		parents:      []*Context{parent},
	}
}

// New creates a context from parallel slices of return states and parents.
// The pairs are sorted by return state; the slices are copied. A pair with
// return state EmptyReturnState must carry a nil parent, every other pair a
// non-nil one. The result is not canonical yet.
func New(returnStates []int, parents []*Context) *Context {
	if len(returnStates) != len(parents) || len(returnStates) == 0 {
		panic("pcontext: mismatched or empty return-state/parent lists")
	}
	c := &Context{
		returnStates: append([]int(nil), returnStates...),
		parents:      append([]*Context(nil), parents...),
	}
	c.sortPairs()
	for i, p := range c.parents {
		if (p == nil) != (c.returnStates[i] == EmptyReturnState) {
			panic("pcontext: nil parent is reserved for the empty-stack pair")
		}
	}
	return c
}

// insertion sort; contexts rarely hold more than a handful of pairs
func (c *Context) sortPairs() {
	for i := 1; i < len(c.returnStates); i++ {
		for j := i; j > 0 && c.returnStates[j-1] > c.returnStates[j]; j-- {
			c.returnStates[j-1], c.returnStates[j] = c.returnStates[j], c.returnStates[j-1]
			c.parents[j-1], c.parents[j] = c.parents[j], c.parents[j-1]
		}
	}
}

// Len returns the number of (return state, parent) pairs.
func (c *Context) Len() int {
	return len(c.returnStates)
}

// ReturnState returns the i-th return state.
func (c *Context) ReturnState(i int) int {
	return c.returnStates[i]
}

// Parent returns the i-th parent, which is nil exactly for the
// empty-stack pair.
func (c *Context) Parent(i int) *Context {
	return c.parents[i]
}

// IsEmpty returns true for the canonical empty-stack marker.
func (c *Context) IsEmpty() bool {
	return c == Empty
}

// HasEmptyTail returns true if at least one of the merged invocation
// histories ends at this node.
func (c *Context) HasEmptyTail() bool {
	return c.returnStates[len(c.returnStates)-1] == EmptyReturnState
}

// Canonical returns true if the context has been interned by a cache.
func (c *Context) Canonical() bool {
	return c.id != 0
}

func (c *Context) String() string {
	if c.IsEmpty() {
		return "$"
	}
	var b bytes.Buffer
	if c.Len() > 1 {
		b.WriteString("[")
	}
	for i, rs := range c.returnStates {
		if i > 0 {
			b.WriteString(", ")
		}
		if rs == EmptyReturnState {
			b.WriteString("$")
			continue
		}
		fmt.Fprintf(&b, "%d←%s", rs, c.parents[i])
	}
	if c.Len() > 1 {
		b.WriteString("]")
	}
	return b.String()
}
