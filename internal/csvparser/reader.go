package csvparser

import (
	"bufio"
	"fmt"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// maxLineSize bounds a single raw line. Usage report rows are far shorter.
const maxLineSize = 1024 * 1024

// LineReader streams the lines of a usage report one at a time.
//
// The reader strips a leading UTF-8 byte order mark, accepts both "\n" and
// "\r\n" terminators, and numbers lines from 1. A final line terminator
// does not produce an extra empty line.
type LineReader struct {
	scanner *bufio.Scanner
	line    string
	row     int
}

// NewLineReader wraps r in a LineReader.
func NewLineReader(r io.Reader) *LineReader {
	decoded := transform.NewReader(r, unicode.UTF8BOM.NewDecoder())

	scanner := bufio.NewScanner(decoded)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	return &LineReader{scanner: scanner}
}

// Next advances to the next line. It returns false at end of input or on a
// read error; call Err to tell the two apart.
func (lr *LineReader) Next() bool {
	if !lr.scanner.Scan() {
		return false
	}
	lr.row++
	lr.line = lr.scanner.Text()
	return true
}

// Line returns the current line without its terminator.
func (lr *LineReader) Line() string {
	return lr.line
}

// Row returns the 1-based row number of the current line.
func (lr *LineReader) Row() int {
	return lr.row
}

// Err returns the first read error, if any.
func (lr *LineReader) Err() error {
	if err := lr.scanner.Err(); err != nil {
		return fmt.Errorf("failed to read line after row #%d: %w", lr.row, err)
	}
	return nil
}
