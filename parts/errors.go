package parts

import "errors"

// ErrNotImplemented is raised by psi-statistic gradients whose closed form
// has not been ported yet (the rbf psi1/psi2 gradient family).
var ErrNotImplemented = errors.New("parts: not yet implemented")
