package store

// Status is the outcome of an update or delete that reached the store.
// A missing row is reported as StatusNotFound with a nil error; errors are
// reserved for storage failures and invalid input, and are always paired with
// StatusNotFound because nothing was changed.
type Status int

const (
	// StatusOK means the row existed and was changed.
	StatusOK Status = 0
	// StatusNotFound means no row had the requested id; nothing was changed.
	StatusNotFound Status = 1
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNotFound:
		return "not found"
	default:
		return "unknown"
	}
}
