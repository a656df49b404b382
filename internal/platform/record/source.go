package record

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// maxLineBytes caps one record line, terminator included.
const maxLineBytes = 1 << 20

// Source opens a fresh reader over a tabular record stream.
type Source interface {
	Open() (io.ReadCloser, error)
}

// FileSource reads records from a file path.
type FileSource string

func (p FileSource) Open() (io.ReadCloser, error) {
	return os.Open(string(p))
}

func (p FileSource) String() string {
	return string(p)
}

// StringSource serves records from memory.
type StringSource string

func (s StringSource) Open() (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(string(s))), nil
}

func (s StringSource) String() string {
	return "memory"
}

// RowFunc receives the 1-based line number and the split fields of a data row.
type RowFunc func(line int, fields []string)

// ReadRows streams every data row of src to fn, skipping the header line.
// A line longer than maxLineBytes is delivered with no fields, so callers skip
// it like any other short row. Only open and read failures are returned; row
// contents are never validated here.
func ReadRows(src Source, fn RowFunc) error {
	rc, err := src.Open()
	if err != nil {
		return fmt.Errorf("open record source: %w", err)
	}
	defer rc.Close()

	reader := bufio.NewReaderSize(rc, 64*1024)
	line := 0
	for {
		text, tooLong, err := readLine(reader)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read record source: %w", err)
		}
		line++
		switch {
		case line == 1:
			// header
		case tooLong:
			fn(line, nil)
		default:
			fn(line, SplitLine(text))
		}
	}
}

// readLine returns the next line without its terminator. An oversized line is
// consumed in full and reported as tooLong with no text. io.EOF is returned
// only once no bytes remain.
func readLine(r *bufio.Reader) (text string, tooLong bool, err error) {
	var buf []byte
	size := 0
	for {
		chunk, readErr := r.ReadSlice('\n')
		size += len(chunk)
		if size > maxLineBytes {
			tooLong, buf = true, nil
		} else {
			buf = append(buf, chunk...)
		}

		switch {
		case errors.Is(readErr, bufio.ErrBufferFull):
			continue
		case errors.Is(readErr, io.EOF):
			if size == 0 {
				return "", false, io.EOF
			}
		case readErr != nil:
			return "", false, readErr
		}
		if tooLong {
			return "", true, nil
		}
		return strings.TrimSuffix(strings.TrimSuffix(string(buf), "\n"), "\r"), false, nil
	}
}
