package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wenjingk/GPy/kern"
	"github.com/wenjingk/GPy/parts"
)

// partSpec describes one kernel part in the YAML kernel file.
type partSpec struct {
	Type        string  `yaml:"type"`
	Variance    float64 `yaml:"variance"`
	Lengthscale float64 `yaml:"lengthscale"`
	Slice       []int   `yaml:"slice"` // [lo, hi) column interval; empty = all columns
}

type boundSpec struct {
	Index int     `yaml:"index"`
	Lower float64 `yaml:"lower"`
	Upper float64 `yaml:"upper"`
}

type fixedSpec struct {
	Index int     `yaml:"index"`
	Value float64 `yaml:"value"`
}

type constraintSpec struct {
	Positive []int       `yaml:"positive"`
	Negative []int       `yaml:"negative"`
	Bounded  []boundSpec `yaml:"bounded"`
	Fixed    []fixedSpec `yaml:"fixed"`
	Tied     [][]int     `yaml:"tied"`
}

// kernelSpec is the YAML schema for a compound kernel.
type kernelSpec struct {
	Dimension   int            `yaml:"dimension"`
	Parts       []partSpec     `yaml:"parts"`
	Constraints constraintSpec `yaml:"constraints"`
}

// loadKernelSpec reads and parses a YAML kernel file.
func loadKernelSpec(path string) (*kernelSpec, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading kernel spec: %w", err)
	}
	var spec kernelSpec
	if err := yaml.Unmarshal(raw, &spec); err != nil {
		return nil, fmt.Errorf("parsing kernel spec %s: %w", path, err)
	}
	return &spec, nil
}

// build assembles the compound kernel described by the YAML document.
func (s *kernelSpec) build() (*kern.Compound, error) {
	if s.Dimension <= 0 {
		return nil, fmt.Errorf("kernel spec: dimension must be positive, got %d", s.Dimension)
	}
	if len(s.Parts) == 0 {
		return nil, fmt.Errorf("kernel spec: at least one part required")
	}
	ps := make([]kern.Part, len(s.Parts))
	cols := make([]kern.Range, len(s.Parts))
	for i, p := range s.Parts {
		variance := p.Variance
		if variance == 0 {
			variance = 1
		}
		lengthscale := p.Lengthscale
		if lengthscale == 0 {
			lengthscale = 1
		}
		switch p.Type {
		case "bias":
			ps[i] = parts.NewBias(variance)
		case "white":
			ps[i] = parts.NewWhite(variance)
		case "linear":
			ps[i] = parts.NewLinear(variance)
		case "rbf":
			ps[i] = parts.NewRBF(variance, lengthscale)
		default:
			return nil, fmt.Errorf("kernel spec: unknown part type %q", p.Type)
		}
		switch len(p.Slice) {
		case 0:
			cols[i] = kern.Range{Start: 0, End: s.Dimension}
		case 2:
			lo, hi := p.Slice[0], p.Slice[1]
			if lo < 0 || hi <= lo || hi > s.Dimension {
				return nil, fmt.Errorf("kernel spec: part %d slice [%d, %d) out of range for dimension %d", i, lo, hi, s.Dimension)
			}
			cols[i] = kern.Range{Start: lo, End: hi}
		default:
			return nil, fmt.Errorf("kernel spec: part %d slice must be a [lo, hi) pair", i)
		}
	}
	k := kern.New(s.Dimension, ps, cols)

	c := k.Constraints()
	for _, idx := range s.Constraints.Positive {
		if idx < 0 || idx >= k.NumParams() {
			return nil, fmt.Errorf("kernel spec: positive constraint index %d out of range", idx)
		}
		c.ConstrainPositive(idx)
	}
	for _, idx := range s.Constraints.Negative {
		if idx < 0 || idx >= k.NumParams() {
			return nil, fmt.Errorf("kernel spec: negative constraint index %d out of range", idx)
		}
		c.ConstrainNegative(idx)
	}
	for _, b := range s.Constraints.Bounded {
		if b.Index < 0 || b.Index >= k.NumParams() {
			return nil, fmt.Errorf("kernel spec: bounded constraint index %d out of range", b.Index)
		}
		c.ConstrainBounded(b.Index, b.Lower, b.Upper)
	}
	for _, f := range s.Constraints.Fixed {
		if f.Index < 0 || f.Index >= k.NumParams() {
			return nil, fmt.Errorf("kernel spec: fixed constraint index %d out of range", f.Index)
		}
		c.Fix(f.Index, f.Value)
	}
	for _, group := range s.Constraints.Tied {
		for _, idx := range group {
			if idx < 0 || idx >= k.NumParams() {
				return nil, fmt.Errorf("kernel spec: tied constraint index %d out of range", idx)
			}
		}
		c.Tie(group...)
	}
	return k, nil
}
