package cli

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// ExitCodeInput is returned when console input could not be used.
const ExitCodeInput = 2

var (
	// ErrInvalidNumber indicates console input that is not a floating-point number.
	ErrInvalidNumber = constError("invalid number")

	// ErrInputClosed indicates stdin ended before every prompt was answered.
	ErrInputClosed = constError("input closed before all values were entered")

	// ErrUnknownOutputFormat indicates an unsupported --output value.
	ErrUnknownOutputFormat = constError("unknown output format")
)
