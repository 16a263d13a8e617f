package command

import (
	"github.com/aretw0/gsh/pkg/domain"
	"github.com/aretw0/gsh/pkg/scan"
)

// ReadDataset reads one blank-line-terminated block of node-ID records
// from s, enforcing that every record has expectedWidth values.
//
// Row-level failures do not stop the scan: the block is drained to its
// terminator so the stream stays aligned for the next command, but
// only the first failure is reported (as an ERROR status on b) to
// avoid flooding an interactive user. The returned ok flag is false if
// any row failed; callers must discard the dataset in that case.
// A fatal (non-EOF) stream failure terminates the block immediately.
func (b *Base) ReadDataset(s *scan.Scanner, expectedWidth int) (domain.Dataset, bool) {
	var dataset domain.Dataset
	ok := true
	b.Successf("")
	for lineno := 1; ; lineno++ {
		record, err := s.ReadRecord(scan.NodeIDRecord)
		switch {
		case err != nil && !domain.IsParseError(err):
			b.Errorf("error reading data set (line %d): %v", lineno, err)
			return dataset, false
		case err != nil:
			if ok {
				b.Errorf("error reading data set (line %d)", lineno)
			}
			ok = false
		case len(record) == 0:
			// Blank line or end of stream ends the block.
			return dataset, ok
		case len(record) != expectedWidth:
			if ok {
				b.Errorf("error reading data set (line %d)", lineno)
			}
			ok = false
		default:
			// Rows after a failure are consumed but not kept; the
			// caller discards the dataset on !ok anyway.
			if ok {
				dataset = append(dataset, record)
			}
		}
	}
}
