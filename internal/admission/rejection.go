package admission

import (
	"errors"
	"fmt"
)

// Rejection is returned when a stage refuses the upload. Reason is safe to
// show to the user; Err carries the internal cause, if any.
type Rejection struct {
	Stage  Stage
	Reason string
	Err    error
}

func (r *Rejection) Error() string {
	if r.Err != nil {
		return fmt.Sprintf("%s stage rejected image: %s: %v", r.Stage, r.Reason, r.Err)
	}
	return fmt.Sprintf("%s stage rejected image: %s", r.Stage, r.Reason)
}

func (r *Rejection) Unwrap() error {
	return r.Err
}

// AsRejection extracts a Rejection from an error chain.
func AsRejection(err error) (*Rejection, bool) {
	var r *Rejection
	if errors.As(err, &r) {
		return r, true
	}
	return nil, false
}

func reject(stage Stage, reason string, err error) *Rejection {
	return &Rejection{Stage: stage, Reason: reason, Err: err}
}
