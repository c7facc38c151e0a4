package domain

import "errors"

var (
	// ErrRemoteUnavailable indicates that the session bus or the named service cannot be reached.
	ErrRemoteUnavailable = errors.New("remote service unavailable")

	// ErrRemoteError indicates that the service was reached but rejected the call.
	ErrRemoteError = errors.New("remote call rejected")

	// ErrUnsupportedValueType indicates an OSD payload field the encoder has no wire type for.
	ErrUnsupportedValueType = errors.New("unsupported value type")

	// ErrOutOfRange indicates a value that does not fit the wire type of the remote property.
	ErrOutOfRange = errors.New("value out of range")

	// ErrDegenerateLevel indicates a LevelDescriptor whose Mid equals Min.
	ErrDegenerateLevel = errors.New("level descriptor mid must differ from min")
)

// IsInternal reports whether err is a programming fault rather than a remote failure.
func IsInternal(err error) bool {
	return errors.Is(err, ErrUnsupportedValueType) || errors.Is(err, ErrDegenerateLevel)
}
