package scan

import (
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/aretw0/gsh/pkg/domain"
)

func TestReadLine(t *testing.T) {
	s := NewScanner(strings.NewReader("one\r\ntwo\nthree"))

	for _, want := range []string{"one", "two", "three"} {
		line, err := s.ReadLine()
		if err != nil {
			t.Fatalf("ReadLine() error: %v", err)
		}
		if line != want {
			t.Errorf("ReadLine() = %q, want %q", line, want)
		}
	}

	if _, err := s.ReadLine(); err != io.EOF {
		t.Errorf("ReadLine() at end of stream = %v, want io.EOF", err)
	}
}

func TestReadLineTooLong(t *testing.T) {
	long := strings.Repeat("1", MaxLineBytes+1)
	s := NewScanner(strings.NewReader(long + "\nnext\n"))

	_, err := s.ReadLine()
	if !errors.Is(err, domain.ErrLineTooLong) {
		t.Fatalf("ReadLine() = %v, want ErrLineTooLong", err)
	}

	// The over-long line must be fully consumed so the stream stays
	// aligned to the following line.
	line, err := s.ReadLine()
	if err != nil || line != "next" {
		t.Errorf("ReadLine() after long line = %q, %v, want \"next\"", line, err)
	}
}

func TestReadRecord(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		kind    RecordKind
		want    domain.Record
		wantErr error
	}{
		{name: "pair", input: "1 2\n", kind: NodeIDRecord, want: domain.Record{1, 2}},
		{name: "commas", input: "1,,2\n", kind: NodeIDRecord, want: domain.Record{1, 2}},
		{name: "blank line", input: "\n", kind: NodeIDRecord, want: nil},
		{name: "end of stream", input: "", kind: NodeIDRecord, want: nil},
		{name: "no final newline", input: "3 4", kind: NodeIDRecord, want: domain.Record{3, 4}},
		{name: "separators only", input: " , \n", kind: NodeIDRecord, wantErr: domain.ErrSeparatorsOnly},
		{name: "bad token", input: "1 x\n", kind: NodeIDRecord, wantErr: domain.ErrBadToken},
		{name: "negative", input: "-1\n", kind: NodeIDRecord, wantErr: domain.ErrBadToken},
		{name: "overflow", input: "4294967296\n", kind: UintRecord, wantErr: domain.ErrBadToken},
		{name: "zero node id", input: "0 2\n", kind: NodeIDRecord, wantErr: domain.ErrBadNodeID},
		{name: "zero uint ok", input: "0 2\n", kind: UintRecord, want: domain.Record{0, 2}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec, err := NewScanner(strings.NewReader(tc.input)).ReadRecord(tc.kind)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("ReadRecord() error = %v, want %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadRecord() error: %v", err)
			}
			if len(tc.want) == 0 {
				if len(rec) != 0 {
					t.Errorf("ReadRecord() = %v, want empty record", rec)
				}
				return
			}
			if !reflect.DeepEqual(rec, tc.want) {
				t.Errorf("ReadRecord() = %v, want %v", rec, tc.want)
			}
		})
	}
}

func TestReadRecordKeepsFraming(t *testing.T) {
	// A failed record consumes exactly its own line.
	s := NewScanner(strings.NewReader("bad line\n5 6\n"))

	if _, err := s.ReadRecord(NodeIDRecord); !errors.Is(err, domain.ErrBadToken) {
		t.Fatalf("expected bad token error, got %v", err)
	}
	rec, err := s.ReadRecord(NodeIDRecord)
	if err != nil {
		t.Fatalf("ReadRecord() error: %v", err)
	}
	if !reflect.DeepEqual(rec, domain.Record{5, 6}) {
		t.Errorf("ReadRecord() after failure = %v, want [5 6]", rec)
	}
}
