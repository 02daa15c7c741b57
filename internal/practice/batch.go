package practice

// BatchRange is a contiguous, 1-indexed, inclusive window into the source
// list. A valid range satisfies 1 <= Start <= End <= len(source).
type BatchRange struct {
	Start int
	End   int
}

// Size returns the number of items in the range.
func (r BatchRange) Size() int {
	return r.End - r.Start + 1
}

// Bounds returns the 0-indexed, half-open slice bounds of the range.
func (r BatchRange) Bounds() (lo, hi int) {
	return r.Start - 1, r.End
}

// Valid reports whether the range fits a list of n items.
func (r BatchRange) Valid(n int) bool {
	return r.Start >= 1 && r.Start <= r.End && r.End <= n
}

// SelectPreset returns the first size items of a list of n, or all of them
// if the list is shorter.
func SelectPreset(n, size int) (BatchRange, error) {
	if n <= 0 {
		return BatchRange{}, ErrEmptyList
	}
	if size < 1 {
		return BatchRange{}, ErrInvalidPreset
	}
	return BatchRange{Start: 1, End: min(size, n)}, nil
}

// SelectRange builds a range from user-supplied bounds. Both bounds are
// clamped into [1, n]; the range is rejected only if the clamped end lies
// before the clamped start.
func SelectRange(n, start, end int) (BatchRange, error) {
	if n <= 0 {
		return BatchRange{}, ErrEmptyList
	}
	r := BatchRange{Start: clamp(start, 1, n), End: clamp(end, 1, n)}
	if !r.Valid(n) {
		return BatchRange{}, &InvalidRangeError{Start: start, End: end, Len: n}
	}
	return r, nil
}

// NextRange returns the window of the given size that follows prev in a
// list of n items, clamped at the end of the list. It reports false when
// prev already reaches the end.
func NextRange(prev BatchRange, size, n int) (BatchRange, bool) {
	start := prev.End + 1
	if start > n || size < 1 {
		return BatchRange{}, false
	}
	return BatchRange{Start: start, End: min(start+size-1, n)}, true
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
