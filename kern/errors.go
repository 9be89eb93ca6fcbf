package kern

import "errors"

var (
	// ErrDimensionMismatch reports an input matrix whose column count does
	// not equal the kernel's dimension, or an attempt to Add two kernels
	// defined over spaces of different dimension.
	ErrDimensionMismatch = errors.New("kern: input dimension mismatch")

	// ErrInvalidSliceSpec reports a row-selector list that is neither nil,
	// one explicit range per part, nor one boolean per part.
	ErrInvalidSliceSpec = errors.New("kern: invalid row selector specification")

	// ErrBadPart reports a part that cannot take place in a compound kernel,
	// such as a nil Part or one reporting a negative parameter count.
	ErrBadPart = errors.New("kern: bad kernel part")

	// ErrParamLength reports a parameter vector whose length does not equal
	// the compound's total parameter count.
	ErrParamLength = errors.New("kern: parameter vector length mismatch")
)
