package backup

import (
	"errors"

	"github.com/ayoisaiah/doze/internal/apperr"
)

var (
	ErrBackupFailed = &apperr.Error{
		Message: "your sleep data is saved locally, but the backup could not be written",
	}

	ErrNoSink = &apperr.Error{
		Message: "no backup location has been chosen",
	}

	ErrParse = &apperr.Error{
		Message: "backup line %d is malformed, nothing was restored",
	}

	ErrUnreadable = &apperr.Error{
		Message: "unable to read backup from %s",
	}

	errInvalidHook = &apperr.Error{
		Message: "unable to parse backup hook command",
	}
)

var (
	errFieldCount     = errors.New("expected 5 comma-separated fields")
	errBadEscape      = errors.New("invalid escape sequence in comment")
	errUnescapedComma = errors.New("comment contains an unescaped comma")
	errDuplicateID    = errors.New("duplicate session id")
	errNonPositiveID  = errors.New("session id must be positive")
	errEmpty          = errors.New("the backup is empty")
	errMissingHeader  = errors.New("expected the header " + Header)
	errUnterminated   = errors.New("the line is incomplete, the backup may be truncated")
)
