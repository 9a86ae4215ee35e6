package tdc

// Number is the set of element types the kernel accumulates in:
// every integer kind and both float kinds.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Span is a half-open index range [From, To) into an output sequence.
//
// Example:
//
//	span := tdc.ValidSpan(4, 6) // {From: 3, To: 6}
//	valid := z[span.From:span.To]
type Span struct {
	From int
	To   int
}

// Len returns the number of indices in the span.
func (s Span) Len() int {
	if s.To < s.From {
		return 0
	}

	return s.To - s.From
}

// Contains reports whether i lies inside the span.
func (s Span) Contains(i int) bool { return i >= s.From && i < s.To }
