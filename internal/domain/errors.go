package domain

import "errors"

// ErrSemesterNotFound indicates a semester id has no curriculum record.
var ErrSemesterNotFound = errors.New("semester not found")
