package interfaces

import "errors"

// Repository-level outcomes shared by every store implementation.
var (
	// ErrAlreadyExists is returned by Create when the key is taken.
	ErrAlreadyExists = errors.New("record already exists")
	// ErrVersionConflict is returned by Update when the stored version moved on.
	ErrVersionConflict = errors.New("record version conflict")
	// ErrPaymentIDTaken is returned by session Update when one of the
	// session's payment ids is already linked in another session.
	ErrPaymentIDTaken = errors.New("payment id linked to another session")
)
