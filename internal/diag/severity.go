package diag

// Severity ranks a diagnostic. Only SevError makes a transform session
// fail; the lower levels ride along in the Bag for rendering.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning
	// SevError — единственный уровень, который проваливает прогон.
	SevError
)

// String returns the upper-case form the pretty renderer prints.
func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}
