package errors

import (
	stderrors "errors"

	"github.com/distromax/inventory-api/constant"
)

type CustomError struct {
	errType constant.ErrorType
}

func (c CustomError) Error() string {
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

// Is reports whether the error wraps the given taxonomy type.
func (c CustomError) Is(errorType constant.ErrorType) bool {
	return c.errType == errorType
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// AsCustomError unwraps err into a CustomError if it carries one.
func AsCustomError(err error, target *CustomError) bool {
	return stderrors.As(err, target)
}
