package kern

// Bound restricts one parameter of the flat parameter vector to
// [Lower, Upper].
type Bound struct {
	Index        int
	Lower, Upper float64
}

// Fixed pins one parameter of the flat parameter vector to Value.
type Fixed struct {
	Index int
	Value float64
}

// Constraints records constraint metadata over a compound kernel's flat
// parameter vector: positivity, negativity, bounds, fixed values and groups
// of tied parameters. All indices are global, i.e. into the vector returned
// by Compound.Params. The compound only stores and merges this metadata;
// enforcing it is the optimizer's concern.
type Constraints struct {
	Positive []int
	Negative []int
	Bounded  []Bound
	Fixed    []Fixed
	Tied     [][]int
}

// ConstrainPositive marks the given parameter indices as positive.
func (c *Constraints) ConstrainPositive(idx ...int) {
	c.Positive = append(c.Positive, idx...)
}

// ConstrainNegative marks the given parameter indices as negative.
func (c *Constraints) ConstrainNegative(idx ...int) {
	c.Negative = append(c.Negative, idx...)
}

// ConstrainBounded restricts parameter idx to [lower, upper].
func (c *Constraints) ConstrainBounded(idx int, lower, upper float64) {
	c.Bounded = append(c.Bounded, Bound{Index: idx, Lower: lower, Upper: upper})
}

// Fix pins parameter idx to value.
func (c *Constraints) Fix(idx int, value float64) {
	c.Fixed = append(c.Fixed, Fixed{Index: idx, Value: value})
}

// Tie groups the given parameter indices so they share a single value.
func (c *Constraints) Tie(idx ...int) {
	c.Tied = append(c.Tied, append([]int(nil), idx...))
}

// mergeConstraints unions a with b, shifting every index of b up by offset.
// Used when two compounds are concatenated: offset is the first compound's
// total parameter count.
func mergeConstraints(a, b Constraints, offset int) Constraints {
	out := Constraints{
		Positive: append(append([]int(nil), a.Positive...), shiftIndices(b.Positive, offset)...),
		Negative: append(append([]int(nil), a.Negative...), shiftIndices(b.Negative, offset)...),
		Bounded:  append([]Bound(nil), a.Bounded...),
		Fixed:    append([]Fixed(nil), a.Fixed...),
	}
	for _, bd := range b.Bounded {
		bd.Index += offset
		out.Bounded = append(out.Bounded, bd)
	}
	for _, fx := range b.Fixed {
		fx.Index += offset
		out.Fixed = append(out.Fixed, fx)
	}
	for _, group := range a.Tied {
		out.Tied = append(out.Tied, append([]int(nil), group...))
	}
	for _, group := range b.Tied {
		out.Tied = append(out.Tied, shiftIndices(group, offset))
	}
	return out
}

func shiftIndices(idx []int, offset int) []int {
	out := make([]int, len(idx))
	for i, v := range idx {
		out[i] = v + offset
	}
	return out
}
