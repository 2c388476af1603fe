package repository

import "github.com/ayoisaiah/doze/internal/apperr"

var (
	ErrNotFound = &apperr.Error{
		Message: "sleep session %d not found",
	}

	ErrInvalidRange = &apperr.Error{
		Message: "the end of a sleep session must come after its start",
	}

	ErrInvalidRating = &apperr.Error{
		Message: "sleep rating must be between 0 and 5",
	}

	ErrStorage = &apperr.Error{
		Message: "local storage failed, no changes were made",
	}

	ErrDuplicateID = &apperr.Error{
		Message: "sleep session %d appears more than once",
	}

	errNilDB = &apperr.Error{
		Message: "repository database cannot be nil",
	}
)
