package tna

import "strconv"

// --- A general purpose type for token categories ---------------------------

// TokType is a category type for input tokens. We do not define any constants
// for concrete token categories, as it is up to applications to define them.
// Two values are reserved, however: EOF and Epsilon. Applications must not
// assign them to real tokens.
type TokType int

// Reserved token categories. Both are distinct from every real token value,
// which by convention are non-negative.
const (
	// EOF signals the end of the input stream.
	EOF TokType = -1

	// Epsilon signals that no input is consumed. Follow-set computations
	// use it to express that control may fall off the end of a rule.
	Epsilon TokType = -2
)

// TokTypeStringer is a type to be provided by applications to be able to
// print out token categories with their grammar-level names.
type TokTypeStringer func(TokType) string

func (t TokType) String() string {
	switch t {
	case EOF:
		return "#eof"
	case Epsilon:
		return "#eps"
	}
	return strconv.Itoa(int(t))
}
