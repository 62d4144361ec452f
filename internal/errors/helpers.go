package errors

import (
	"errors"
)

// Is reports whether any error in err's chain matches target. Coded errors
// match on code alone.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode returns err's code: CodeOK for nil, CodeInternal for errors that
// carry no code.
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code
	}
	return CodeInternal
}

// GetMeta extracts metadata from an error
func GetMeta(err error) map[string]any {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Meta
	}
	return nil
}

// GetMessage returns the caller-facing message, without the cause chain
func GetMessage(err error) string {
	if err == nil {
		return ""
	}

	var coded *Error
	if errors.As(err, &coded) {
		return coded.Message
	}
	return err.Error()
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool { return GetCode(err) == CodeNotFound }

// IsInvalidArgument checks if an error is an invalid argument error
func IsInvalidArgument(err error) bool { return GetCode(err) == CodeInvalidArgument }

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool { return GetCode(err) == CodeAlreadyExists }

// IsFailedPrecondition checks if an error is a failed precondition error
func IsFailedPrecondition(err error) bool { return GetCode(err) == CodeFailedPrecondition }
