package directive

import "errors"

// Sentinel errors reported by Parse and Render. Callers match them with
// errors.Is; rendered messages carry position and count context.
var (
	// ErrBadVerb signals a template containing a % sequence other than the
	// supported %.*s placeholder or the %% escape.
	ErrBadVerb = errors.New("directive: unsupported verb")

	// ErrArgumentCount signals a mismatch between a template's placeholder
	// count and the arguments supplied to Render.
	ErrArgumentCount = errors.New("directive: argument count mismatch")

	// ErrLengthExceedsBacking signals an argument length larger than the
	// paired text's authoritative length.
	ErrLengthExceedsBacking = errors.New("directive: length exceeds backing text")

	// ErrNegativeLength signals an argument with a negative length.
	ErrNegativeLength = errors.New("directive: negative length")
)
