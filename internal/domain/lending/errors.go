package lending

import "errors"

var (
	ErrNotFound = errors.New("loan not found")

	// ErrInvalidState: a transition was attempted from a terminal or wrong
	// state (e.g. returning an already-returned loan). A second return is
	// deliberately not idempotent; it fails with this error.
	ErrInvalidState = errors.New("loan is not in a state that allows this transition")

	// ErrIneligible covers both an inactive/expired membership and a member
	// at their loan capacity. An expected business outcome, not a bug.
	ErrIneligible = errors.New("member is not eligible to borrow")

	ErrValidation = errors.New("invalid input")
)
