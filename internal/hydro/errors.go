package hydro

import (
	"errors"
	"fmt"
)

// Reason codes for results that are not computable at the requested draft.
type Reason string

const (
	// ReasonZeroVolume means the draft produces no displaced volume, so
	// centers and coefficients are undefined.
	ReasonZeroVolume Reason = "zero volume"

	// ReasonDraftOutOfRange means the draft lies above the highest
	// tabulated waterline and extrapolation is not enabled.
	ReasonDraftOutOfRange Reason = "draft out of range"
)

// NotComputableError is returned when the geometry is valid and the
// parameters are well formed but no hydrostatic result exists at the
// requested draft. It is distinct from ParamError so callers can tell
// "nothing to compute here" apart from "you asked wrong".
type NotComputableError struct {
	Draft  float64
	Reason Reason
}

func (e *NotComputableError) Error() string {
	return fmt.Sprintf("hydrostatics not computable at draft %.3f m: %s", e.Draft, e.Reason)
}

// IsNotComputable reports whether err is a NotComputableError.
func IsNotComputable(err error) bool {
	var nc *NotComputableError
	return errors.As(err, &nc)
}

// ParamError represents an invalid calculation parameter, rejected
// before any integration runs.
type ParamError struct {
	msg string
}

func (e *ParamError) Error() string {
	return e.msg
}

func paramErrorf(format string, args ...interface{}) *ParamError {
	return &ParamError{msg: fmt.Sprintf(format, args...)}
}
