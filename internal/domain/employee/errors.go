package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("no employee linked to this user")
	ErrAccessDenied     = errors.New("you are not allowed to change the office location")
)
