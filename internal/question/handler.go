package question

// Handler recognizes one question shape and compiles it. Match returns the
// shape-specific data needed by Build; Build is only called with data a
// prior Match returned.
type Handler interface {
	Shape() Shape
	Match(question string) (data any, ok bool)
	Build(data any) (sql string, err error)
}

// matchPair classifies two conditions against a left and a right classifier,
// trying both orderings. Conditions are order-independent within a question;
// the pair is matched when one condition classifies left and the other
// classifies right.
func matchPair[L, R any](c1, c2 string, left func(string) (L, bool), right func(string) (R, bool)) (L, R, bool) {
	if l, ok := left(c1); ok {
		if r, ok := right(c2); ok {
			return l, r, true
		}
	}
	if l, ok := left(c2); ok {
		if r, ok := right(c1); ok {
			return l, r, true
		}
	}
	var l L
	var r R
	return l, r, false
}
