package basis

import "errors"

// ErrBadDerivative is returned when a caller asks for a derivative order
// beyond the documented upper limit of 4 (snap).
var ErrBadDerivative = errors.New("basis: derivative order must be 0..4")
