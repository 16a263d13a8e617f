package scan

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/gsh/pkg/domain"
)

// RecordKind selects the validation applied to record tokens.
type RecordKind int

const (
	// UintRecord accepts any unsigned 32-bit integer, including zero.
	UintRecord RecordKind = iota
	// NodeIDRecord additionally rejects zero values.
	NodeIDRecord
)

// MaxLineBytes bounds the length of a single input line. A longer line
// is reported as an explicit error, never silently truncated.
const MaxLineBytes = 64 * 1024

// Scanner reads lines and fixed-arity integer records from a stream.
// A session must route both its command lines and its dataset blocks
// through the same Scanner: that is what keeps the stream framed when
// a command's dataset ends and the next command begins.
type Scanner struct {
	r          *bufio.Reader
	delimiters string
	maxLine    int
}

// NewScanner wraps r with the default delimiters and line limit.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{
		r:          bufio.NewReader(r),
		delimiters: DefaultDelimiters,
		maxLine:    MaxLineBytes,
	}
}

// ReadLine reads one line, chomping a single trailing LF or CRLF.
// It returns io.EOF only when the stream is exhausted and nothing was
// read; a final unterminated line is returned first. An over-long line
// is consumed to its end and reported as domain.ErrLineTooLong so the
// next read starts on the following line.
func (s *Scanner) ReadLine() (string, error) {
	line, err := s.r.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	if line == "" && err == io.EOF {
		return "", io.EOF
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	if len(line) > s.maxLine {
		return "", fmt.Errorf("%w (%d bytes)", domain.ErrLineTooLong, len(line))
	}
	return line, nil
}

// ReadRecord reads one line and parses it as a record of the given
// kind. An empty record with a nil error signals a blank line or end
// of stream; both terminate a dataset block. Any invalid token fails
// the whole record.
func (s *Scanner) ReadRecord(kind RecordKind) (domain.Record, error) {
	line, err := s.ReadLine()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	tokens := Split(line, s.delimiters)
	if len(tokens) == 0 {
		if line == "" {
			return nil, nil
		}
		return nil, domain.ErrSeparatorsOnly
	}
	record := make(domain.Record, 0, len(tokens))
	for _, tok := range tokens {
		if !IsValidUint(tok) {
			return nil, fmt.Errorf("%w: %q", domain.ErrBadToken, tok)
		}
		v, err := ParseUint(tok)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", domain.ErrBadToken, tok)
		}
		if kind == NodeIDRecord && v == 0 {
			return nil, fmt.Errorf("%w: %q", domain.ErrBadNodeID, tok)
		}
		record = append(record, v)
	}
	return record, nil
}
