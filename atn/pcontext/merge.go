package pcontext

// Merge combines two canonical contexts into the canonical context
// representing both invocation histories. At each shared suffix position,
// the child set of the result is exactly the union of the distinct children
// contributed by the inputs: following any path through the result
// reconstructs exactly one of the original chains. The empty-stack marker
// participates as one alternative outcome ("at least one merged history
// ended here"); it never absorbs or cancels other branches.
//
// Merging is memoized per operation on pairs of arena ids, so the work is
// bounded by the number of distinct node pairs, even when recursive rule
// invocations have produced heavily convergent DAGs. Re-merging
// structurally identical inputs yields the same canonical instance.
//
// Passing a non-canonical context is a construction-contract violation
// and panics. A nil argument is normalized to Empty.
func (cache *Cache) Merge(a, b *Context) *Context {
	memo := make(map[[2]uint64]*Context)
	return cache.merge(normalized(a), normalized(b), memo)
}

// MergeAll folds Merge over any number of contexts, sharing one memo.
// Merging no contexts at all yields Empty.
func (cache *Cache) MergeAll(ctxs ...*Context) *Context {
	if len(ctxs) == 0 {
		return Empty
	}
	memo := make(map[[2]uint64]*Context)
	merged := normalized(ctxs[0])
	for _, c := range ctxs[1:] {
		merged = cache.merge(merged, normalized(c), memo)
	}
	return merged
}

func normalized(c *Context) *Context {
	if c == nil {
		return Empty
	}
	if c.id == 0 {
		panic("pcontext: merge of non-canonical context")
	}
	return c
}

func (cache *Cache) merge(a, b *Context, memo map[[2]uint64]*Context) *Context {
	if a == b { // canonical, so identity decides equality
		return a
	}
	key := [2]uint64{a.id, b.id}
	if a.id > b.id {
		key = [2]uint64{b.id, a.id}
	}
	if m := memo[key]; m != nil {
		return m
	}
	// linear union of the two sorted pair lists
	var returnStates []int
	var parents []*Context
	i, j := 0, 0
	for i < a.Len() || j < b.Len() {
		switch {
		case j >= b.Len() || (i < a.Len() && a.returnStates[i] < b.returnStates[j]):
			returnStates = append(returnStates, a.returnStates[i])
			parents = append(parents, a.parents[i])
			i++
		case i >= a.Len() || b.returnStates[j] < a.returnStates[i]:
			returnStates = append(returnStates, b.returnStates[j])
			parents = append(parents, b.parents[j])
			j++
		default: // same return state in both inputs: merge the parents
			var parent *Context
			if a.parents[i] != nil { // nil only for the empty-stack pair
				parent = cache.merge(a.parents[i], b.parents[j], memo)
			}
			returnStates = append(returnStates, a.returnStates[i])
			parents = append(parents, parent)
			i++
			j++
		}
	}
	merged := cache.get(&Context{returnStates: returnStates, parents: parents})
	memo[key] = merged
	tracer().Debugf("pcontext: merge(%s, %s) = %s", a, b, merged)
	return merged
}
