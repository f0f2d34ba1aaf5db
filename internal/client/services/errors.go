package services

import "errors"

var (
	// ErrNoContract means the selected boat has no contract in eligible
	// status; any previously resolved contract is cleared.
	ErrNoContract = errors.New("no eligible contract for boat")

	// ErrStaleSelection means a contract resolution completed after the
	// user had already selected a different boat; the result is discarded.
	ErrStaleSelection = errors.New("boat selection changed during resolution")

	// ErrNoSavedSession means the credential store holds no token to restore.
	ErrNoSavedSession = errors.New("no saved session")
)
