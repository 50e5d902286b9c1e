package domain

import "errors"

// Sentinel errors for collection operations
var (
	// ErrValidation indicates a required field (title or rating) is missing
	ErrValidation = errors.New("entry is missing a required field")

	// ErrIndexOutOfRange indicates an edit or delete addressed a position that does not exist
	ErrIndexOutOfRange = errors.New("entry index out of range")

	// ErrStorageDecode indicates persisted data exists but is not well-formed
	ErrStorageDecode = errors.New("stored data is malformed")

	// ErrUnknownKind indicates a kind other than books or movies
	ErrUnknownKind = errors.New("unknown collection kind")
)
