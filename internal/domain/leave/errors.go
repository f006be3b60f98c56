package leave

import "errors"

var (
	ErrLeaveTypeNotFound = errors.New("leave type not found or not available to this employee")
	ErrLeaveOverlap      = errors.New("leave request overlaps an existing request")
)
