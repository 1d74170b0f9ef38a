package polygon

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrMalformedRecord is wrapped by every ParseError.
var ErrMalformedRecord = errors.New("malformed record")

// ParseError describes a record that is not a "row,col" integer pair.
type ParseError struct {
	Line   int
	Record string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s %q: %v", e.Line, ErrMalformedRecord, e.Record, e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrMalformedRecord, e.Err}
}

// Parse reads one "row,col" pair per line. Blank lines are skipped.
func Parse(r io.Reader) ([]Point, error) {
	var points []Point
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		p, err := parseRecord(text)
		if err != nil {
			return nil, &ParseError{Line: line, Record: text, Err: err}
		}
		points = append(points, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return points, nil
}

func parseRecord(text string) (Point, error) {
	rowText, colText, ok := strings.Cut(text, ",")
	if !ok {
		return Point{}, errors.New("missing comma")
	}
	row, err := strconv.ParseInt(strings.TrimSpace(rowText), 10, 64)
	if err != nil {
		return Point{}, err
	}
	col, err := strconv.ParseInt(strings.TrimSpace(colText), 10, 64)
	if err != nil {
		return Point{}, err
	}
	return Point{Row: row, Col: col}, nil
}

// ParseFile parses the points stored at path. The path "-" reads stdin.
func ParseFile(path string) ([]Point, error) {
	if path == "-" {
		return Parse(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	points, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return points, nil
}
