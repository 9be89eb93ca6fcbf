package kern

// Range is a half-open [Start, End) index interval.
type Range struct {
	Start, End int
}

// Len returns the number of indices covered by the interval.
func (r Range) Len() int { return r.End - r.Start }

type selectorKind uint8

const (
	selRange selectorKind = iota
	selMask
)

// RowSelector specifies which data rows one kernel part sees during an
// operation: either an explicit row range, or a boolean mask resolving to
// the full row range (true) or the empty range (false).
//
// A selector list passed to a compound operation must be nil (every part
// covers every row), or hold exactly one selector per part, all of the same
// kind. Anything else panics with ErrInvalidSliceSpec.
type RowSelector struct {
	kind   selectorKind
	rng    Range
	active bool
}

// Rows selects the explicit half-open row interval [start, end).
func Rows(start, end int) RowSelector {
	return RowSelector{kind: selRange, rng: Range{start, end}}
}

// AllRows selects every row when active is true, no rows otherwise.
func AllRows(active bool) RowSelector {
	return RowSelector{kind: selMask, active: active}
}

// resolveRows normalizes a selector list into one concrete row range per
// part, for inputs with the given number of rows.
func (k *Compound) resolveRows(sel []RowSelector, rows int) []Range {
	if sel == nil {
		out := make([]Range, len(k.parts))
		for i := range out {
			out[i] = Range{0, rows}
		}
		return out
	}
	if len(sel) != len(k.parts) {
		panic(ErrInvalidSliceSpec)
	}
	out := make([]Range, len(sel))
	for i, s := range sel {
		if s.kind != sel[0].kind {
			panic(ErrInvalidSliceSpec)
		}
		switch s.kind {
		case selMask:
			if s.active {
				out[i] = Range{0, rows}
			}
		case selRange:
			if s.rng.Start < 0 || s.rng.End < s.rng.Start || s.rng.End > rows {
				panic(ErrInvalidSliceSpec)
			}
			out[i] = s.rng
		}
	}
	return out
}
