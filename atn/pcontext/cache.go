package pcontext

import (
	"fmt"
	"sync"

	"github.com/cnf/structhash"
)

// Cache is the canonicalization table for prediction contexts. An automaton
// owns exactly one, shared by all prediction runs over that automaton. The
// table grows by insertion and never shrinks; insertion is insert-if-absent,
// so concurrent canonicalization of equal contexts yields one winner.
type Cache struct {
	mu     sync.RWMutex
	table  map[string]*Context
	nextID uint64
}

// NewCache creates a context cache, pre-seeded with the empty-stack marker.
func NewCache() *Cache {
	c := &Cache{
		table:  make(map[string]*Context),
		nextID: emptyID,
	}
	c.table[keyOf(Empty)] = Empty
	return c
}

// Size returns the number of canonical contexts in the cache.
func (cache *Cache) Size() int {
	cache.mu.RLock()
	defer cache.mu.RUnlock()
	return len(cache.table)
}

// ctxKey is the structural identity of a context: its return states plus
// the arena ids of its (already canonical) parents. Hashed with structhash.
type ctxKey struct {
	ReturnStates []int
	Parents      []uint64
}

func keyOf(c *Context) string {
	k := ctxKey{
		ReturnStates: c.returnStates,
		Parents:      make([]uint64, len(c.parents)),
	}
	for i, p := range c.parents {
		if p != nil {
			k.Parents[i] = p.id
		}
	}
	hash, err := structhash.Hash(k, 1)
	if err != nil { // structhash cannot fail on a struct of ints
		panic(fmt.Sprintf("pcontext: hashing context key: %v", err))
	}
	return hash
}

// Canonicalize returns the cache's canonical representative for a context
// graph, recursively canonicalizing and re-using already canonical children.
// The result is a DAG node: structurally identical substructure is shared.
//
// A per-call identity memo skips nodes already processed during this call,
// which bounds the work by the number of distinct nodes actually present,
// not by the number of paths through them. A nil argument yields Empty.
func (cache *Cache) Canonicalize(ctx *Context) *Context {
	if ctx == nil || ctx.id != 0 {
		if ctx == nil {
			return Empty
		}
		return ctx
	}
	seen := make(map[*Context]*Context) // node → canonical twin, this call only
	cache.canonicalize(ctx, seen)
	return seen[ctx]
}

// Worklist-driven post-order over the context graph: a node is interned
// only after all of its parents have been.
func (cache *Cache) canonicalize(root *Context, seen map[*Context]*Context) {
	stack := []*Context{root}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		if _, done := seen[node]; done {
			stack = stack[:len(stack)-1]
			continue
		}
		if node.id != 0 { // already canonical, nothing to do
			seen[node] = node
			stack = stack[:len(stack)-1]
			continue
		}
		pending := false
		for _, p := range node.parents {
			if p == nil || p.id != 0 {
				continue
			}
			if _, done := seen[p]; !done {
				stack = append(stack, p)
				pending = true
			}
		}
		if pending {
			continue
		}
		seen[node] = cache.intern(node, seen)
		stack = stack[:len(stack)-1]
	}
}

// intern rebuilds node with canonical parents and interns it in the table.
func (cache *Cache) intern(node *Context, seen map[*Context]*Context) *Context {
	parents := make([]*Context, len(node.parents))
	for i, p := range node.parents {
		switch {
		case p == nil:
			parents[i] = nil
		case p.id != 0:
			parents[i] = p
		default:
			parents[i] = seen[p]
		}
	}
	cand := &Context{
		returnStates: append([]int(nil), node.returnStates...),
		parents:      parents,
	}
	return cache.get(cand)
}

// get performs the insert-if-absent step for a context whose parents are
// canonical. Either the candidate is adopted (and stamped with a fresh
// arena id) or a previously interned equal context wins.
func (cache *Cache) get(cand *Context) *Context {
	key := keyOf(cand)
	cache.mu.RLock()
	found := cache.table[key]
	cache.mu.RUnlock()
	if found != nil {
		return found
	}
	cache.mu.Lock()
	defer cache.mu.Unlock()
	if found := cache.table[key]; found != nil {
		return found
	}
	cache.nextID++
	cand.id = cache.nextID
	cache.table[key] = cand
	tracer().Debugf("pcontext: interned #%d = %s", cand.id, cand)
	return cand
}
