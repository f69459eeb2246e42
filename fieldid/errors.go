package fieldid

import "errors"

// ErrInvalidArgument is the sentinel every construction-argument failure
// unwraps to; match the concrete parameter with errors.As on *ArgumentError.
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError reports which constructor argument was rejected and why.
// Callers should treat it as a programming error, not a runtime condition.
type ArgumentError struct {
	Param  string
	Reason string
}

func (e *ArgumentError) Error() string {
	return "invalid argument " + e.Param + ": " + e.Reason
}

func (e *ArgumentError) Unwrap() error { return ErrInvalidArgument }
