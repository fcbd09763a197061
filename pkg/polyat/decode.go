package polyat

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	//"compress/gzip"
	gzip "github.com/klauspost/pgzip"
)

// 4MB scanner buffer, enough for long-read platforms
const maxLineSize = 4 * 1024 * 1024

// DecodeError marks a file that could not be opened or whose gzip stream is
// corrupt. The offending file is skipped, not the whole run.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Decoder streams decoded text lines from a plain or gzip-compressed FASTQ
// file without materializing the decompressed content.
type Decoder struct {
	path    string
	file    *os.File
	gzr     *gzip.Reader
	scanner *bufio.Scanner
}

// OpenFastq opens path and selects gzip decompression by the .gz suffix.
func OpenFastq(path string) (*Decoder, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}

	var dec = &Decoder{
		path: path,
		file: file,
	}
	if strings.HasSuffix(path, ".gz") {
		gzr, err := gzip.NewReader(file)
		if err != nil {
			file.Close()
			return nil, &DecodeError{Path: path, Err: err}
		}
		dec.gzr = gzr
		dec.scanner = bufio.NewScanner(gzr)
	} else {
		dec.scanner = bufio.NewScanner(file)
	}
	dec.scanner.Buffer(make([]byte, maxLineSize), maxLineSize)
	return dec, nil
}

// Scan advances to the next decoded line.
func (dec *Decoder) Scan() bool {
	return dec.scanner.Scan()
}

// Text returns the current line without the trailing newline.
func (dec *Decoder) Text() string {
	return dec.scanner.Text()
}

// Err reports the first read error. A gzip stream that turns out corrupt
// mid-file surfaces here as a DecodeError.
func (dec *Decoder) Err() error {
	if err := dec.scanner.Err(); err != nil {
		return &DecodeError{Path: dec.path, Err: err}
	}
	return nil
}

// Close releases the gzip reader, if any, and the file handle.
func (dec *Decoder) Close() error {
	if dec.gzr != nil {
		dec.gzr.Close()
	}
	return dec.file.Close()
}
