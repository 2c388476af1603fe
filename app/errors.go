package app

import "github.com/ayoisaiah/doze/internal/apperr"

var (
	errInvalidID = &apperr.Error{
		Message: "%q is not a valid session id",
	}

	errMissingID = &apperr.Error{
		Message: "a session id is required",
	}

	errMissingPath = &apperr.Error{
		Message: "the path to a backup file is required",
	}

	errInvalidFlag = &apperr.Error{
		Message: "invalid value for --%s",
	}

	errNothingToEdit = &apperr.Error{
		Message: "no changes were given, see 'doze edit --help'",
	}

	errRelativePath = &apperr.Error{
		Message: "backup path must be absolute, got %s",
	}

	errAborted = &apperr.Error{
		Message: "operation cancelled",
	}
)
