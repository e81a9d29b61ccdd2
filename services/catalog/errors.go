package catalog

import "errors"

// Structural guard failures reported back to the caller as user-actionable
// messages. A failed guard never partially applies the mutation.
var (
	ErrNotFound      = errors.New("record not found")
	ErrDuplicateName = errors.New("a sibling with that name already exists")
	ErrNotEmpty      = errors.New("category still has courses attached")
	ErrInvalidName   = errors.New("name must not contain a period")
	ErrInvalidParent = errors.New("parent must be a top-level category")
)
