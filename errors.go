package paramx

import (
	"errors"
	"fmt"

	"github.com/hengadev/paramx/internal/stringify"
)

var (
	// Argument errors
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrNilSerializer     = errors.New("serializer is required")
	ErrNilRequestContext = errors.New("request context is required")

	// Conversion errors. The stringification machinery raises the same
	// sentinel, so errors.Is matches it on every path.
	ErrUnsupportedType = stringify.ErrUnsupportedType

	// Configuration errors
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

func NewNilSerializerError(paramName string) error {
	return fmt.Errorf("%w: %w to serialize parameter '%s'", ErrInvalidArgument, ErrNilSerializer, paramName)
}

func NewNilRequestContextError(paramName string) error {
	return fmt.Errorf("%w: %w to serialize parameter '%s'", ErrInvalidArgument, ErrNilRequestContext, paramName)
}

func NewUnsupportedTypeError(paramName string, typeName string) error {
	return fmt.Errorf("%w: parameter '%s' has unsupported type %s", ErrUnsupportedType, paramName, typeName)
}

func NewInvalidConfigurationError(field string, details string) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidConfiguration, field, details)
}
