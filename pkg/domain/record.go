package domain

import (
	"strconv"
	"strings"
)

// Record is one parsed line's sequence of unsigned 32-bit integers.
// An empty record is the sentinel for a blank line, which terminates a
// dataset block.
type Record []uint32

// String joins the record's values with single spaces, the same shape
// the parser accepts.
func (r Record) String() string {
	var b strings.Builder
	for i, v := range r {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatUint(uint64(v), 10))
	}
	return b.String()
}

// Dataset is an ordered run of same-width records, as read from one
// blank-line-terminated block of input.
type Dataset []Record
