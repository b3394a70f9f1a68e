package types

import "errors"

// Repository operation errors. Operations return these as values; they are
// never raised as panics. Callers distinguish them with errors.Is.
var (
	ErrNotFound    = errors.New("record not found")
	ErrDuplicateID = errors.New("record ID already exists")
	ErrTitleEmpty  = errors.New("title must not be empty")
)
