package polyat

import (
	"fmt"
	"strings"
)

// Record is one FASTQ read: header, sequence, separator, quality.
type Record struct {
	Header string
	Seq    string
	Qual   string
}

// FormatError marks a malformed FASTQ record. Processing of the offending
// file stops, the rest of the run continues.
type FormatError struct {
	Path string
	Line int
	Msg  string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: line %d: %s", e.Path, e.Line, e.Msg)
}

// Scanner groups every 4 consecutive non-empty lines of a Decoder into a
// Record. One Decoder/Scanner pair per file, not restartable.
type Scanner struct {
	dec  *Decoder
	line int
}

func NewScanner(dec *Decoder) *Scanner {
	return &Scanner{dec: dec}
}

// Next returns the next record, or (nil, nil) once the stream is exhausted.
// The stream ending mid-record is a FormatError, as is a header line without
// the leading '@' or a separator line without the leading '+'.
func (s *Scanner) Next() (*Record, error) {
	var (
		lines [4]string
		n     = 0
	)
	for n < 4 {
		if !s.dec.Scan() {
			if err := s.dec.Err(); err != nil {
				return nil, err
			}
			if n == 0 {
				return nil, nil
			}
			return nil, &FormatError{
				Path: s.dec.path,
				Line: s.line,
				Msg:  fmt.Sprintf("truncated record: %d of 4 lines", n),
			}
		}
		s.line++
		var text = strings.TrimSuffix(s.dec.Text(), "\r")
		if text == "" {
			continue
		}
		lines[n] = text
		n++
	}

	if !strings.HasPrefix(lines[0], "@") {
		return nil, &FormatError{
			Path: s.dec.path,
			Line: s.line,
			Msg:  "header line does not start with @",
		}
	}
	if !strings.HasPrefix(lines[2], "+") {
		return nil, &FormatError{
			Path: s.dec.path,
			Line: s.line,
			Msg:  "separator line does not start with +",
		}
	}
	return &Record{
		Header: lines[0],
		Seq:    lines[1],
		Qual:   lines[3],
	}, nil
}
