package search

// Numeric covers the element types interpolation search can estimate probe
// positions for.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Interpolation searches sorted numeric s by estimating where target would
// sit if the values were uniformly distributed, probing there, and narrowing
// the window around the probe. On uniform data it beats binary search; on
// adversarial data it degrades to a linear walk, never worse.
//
// Complexity: O(log log n) expected on uniform data, O(n) worst case,
// O(1) memory.
func Interpolation[T Numeric](s Sequence[T], target T, opts ...Option) (int, bool, error) {
	o, err := buildOptions(s, opts)
	if err != nil {
		return -1, false, err
	}

	lo, hi := 0, s.Len()-1
	for lo <= hi {
		loVal := at(s, lo, &o)
		hiVal := at(s, hi, &o)
		// The window brackets every candidate; a target outside its value
		// range cannot be present.
		if target < loVal || target > hiVal {
			return -1, false, nil
		}

		pos := lo
		if loVal != hiVal {
			// Estimate through float64 so unsigned element types cannot
			// underflow on subtraction.
			fraction := (float64(target) - float64(loVal)) / (float64(hiVal) - float64(loVal))
			pos = lo + int(fraction*float64(hi-lo))
		}

		switch v := at(s, pos, &o); {
		case v == target:
			return pos, true, nil
		case v < target:
			lo = pos + 1
		default:
			hi = pos - 1
		}
	}

	return -1, false, nil
}
