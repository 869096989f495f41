package config

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

var (
	// ErrInvalidConfig indicates the config file could not be parsed.
	ErrInvalidConfig = constError("invalid configuration file")

	// ErrInvalidBounds indicates a bound pair without exactly two values.
	ErrInvalidBounds = constError("bounds must have exactly two values")
)

// ErrInvalidSetting indicates a config value outside its allowed range.
var ErrInvalidSetting = constError("invalid setting")
