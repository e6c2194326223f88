package export

import "errors"

// Kind classifies why an export failed.
type Kind int

// Error kinds.
const (
	KindDatabase   Kind = iota + 1 // opening or querying the database
	KindTimezone                   // malformed timezone
	KindDateFormat                 // malformed selected date
	KindFilesystem                 // creating directories or writing notes
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindDatabase:
		return "database"
	case KindTimezone:
		return "timezone"
	case KindDateFormat:
		return "date format"
	case KindFilesystem:
		return "filesystem"
	default:
		return "unknown"
	}
}

// Error is returned by Export. Its message is meant to be shown to the
// user as-is.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Op == "" {
		return e.Err.Error()
	}
	return e.Op + ": " + e.Err.Error()
}

// Unwrap returns the underlying cause for errors.Is/errors.As support.
func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is an export error of the given kind.
func IsKind(err error, kind Kind) bool {
	var exportErr *Error
	return errors.As(err, &exportErr) && exportErr.Kind == kind
}

func newError(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}
