package domain

import "errors"

// ErrLineTooLong is returned when an input line exceeds the scanner's
// limit. The line is consumed, never silently truncated.
var ErrLineTooLong = errors.New("line too long")

// ErrSeparatorsOnly is returned for a non-empty line that contains
// only delimiter characters. Such a line is neither a record nor a
// blank block terminator.
var ErrSeparatorsOnly = errors.New("line contains only separators")

// ErrBadToken is returned when a token is not a valid unsigned 32-bit
// decimal integer.
var ErrBadToken = errors.New("invalid unsigned integer")

// ErrBadNodeID is returned when a token parses to zero in a record
// that requires node IDs. Zero is reserved as the unset node ID.
var ErrBadNodeID = errors.New("invalid node ID")

// IsParseError reports whether err is a per-line parse failure, as
// opposed to a fatal stream failure. Parse failures spoil one record;
// the dataset reader keeps draining the block after them.
func IsParseError(err error) bool {
	return errors.Is(err, ErrLineTooLong) ||
		errors.Is(err, ErrSeparatorsOnly) ||
		errors.Is(err, ErrBadToken) ||
		errors.Is(err, ErrBadNodeID)
}
