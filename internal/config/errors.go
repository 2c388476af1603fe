package config

import "github.com/ayoisaiah/doze/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errUnknownLogLevel = &apperr.Error{
		Message: "unknown log level %q (must be debug, info, warn or error)",
	}

	errRelativeBackupPath = &apperr.Error{
		Message: "backup path must be absolute, got %s",
	}

	errPrompt = &apperr.Error{
		Message: "user prompt failed",
	}
)
