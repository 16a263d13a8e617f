package domain

import "fmt"

// StatusKind classifies the outcome of a command.
type StatusKind int

const (
	StatusNone StatusKind = iota
	StatusSuccess
	StatusFailure
	StatusError
)

// Prefix returns the literal wire prefix of the kind. These strings,
// including the trailing punctuation, are a contract for external
// tooling that parses command output. Do not change them.
func (k StatusKind) Prefix() string {
	switch k {
	case StatusSuccess:
		return "OK."
	case StatusFailure:
		return "FAILED!"
	case StatusError:
		return "ERROR!"
	default:
		return "NONE."
	}
}

// String returns a lowercase label for the kind, used in logs and
// metric labels.
func (k StatusKind) String() string {
	switch k {
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	case StatusError:
		return "error"
	default:
		return "none"
	}
}

// Status is a single reported command outcome. Commands keep only the
// latest one; every report overwrites the previous.
type Status struct {
	Kind StatusKind
	Text string
}

// Successf builds a SUCCESS status with a formatted explanation.
func Successf(format string, args ...any) Status {
	return Status{Kind: StatusSuccess, Text: fmt.Sprintf(format, args...)}
}

// Failuref builds a FAILURE status with a formatted explanation.
func Failuref(format string, args ...any) Status {
	return Status{Kind: StatusFailure, Text: fmt.Sprintf(format, args...)}
}

// Errorf builds an ERROR status with a formatted explanation.
func Errorf(format string, args ...any) Status {
	return Status{Kind: StatusError, Text: fmt.Sprintf(format, args...)}
}

// Nonef builds a NONE status with a formatted explanation.
func Nonef(format string, args ...any) Status {
	return Status{Kind: StatusNone, Text: fmt.Sprintf(format, args...)}
}

// String renders the status in the wire format: prefix, one space,
// explanation.
func (s Status) String() string {
	if s.Text == "" {
		return s.Kind.Prefix()
	}
	return s.Kind.Prefix() + " " + s.Text
}
