package errorx

type ErrorType string

// Errors status code are defined here:
// https://chromium.googlesource.com/external/github.com/grpc/grpc/+/refs/tags/v1.21.4-pre1/doc/statuscodes.md

const (
	// The Unspecified type should not be used, only useful to assert whether or not an error is a typed Error during cast
	ErrorTypeUnspecified     = ErrorType("")
	ErrorTypeInternal        = ErrorType("INTERNAL")
	ErrorTypeInvalidArgument = ErrorType("INVALID_ARGUMENT")
	ErrorTypeNotFound        = ErrorType("NOT_FOUND")
)

func ParseErrorType(s string) (ErrorType, error) {
	e := ErrorType(s)
	if err := e.Validate(); err != nil {
		return ErrorTypeUnspecified, err
	}

	return e, nil
}

func (e ErrorType) String() string {
	return string(e)
}

func (e ErrorType) Validate() error {
	switch e {
	case ErrorTypeInternal,
		ErrorTypeInvalidArgument,
		ErrorTypeNotFound:
		return nil
	default:
		return InvalidArgumentErrorf("invalid error type: %s", e)
	}
}
