package polygon

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Point
		wantLine int
	}{
		{
			name:     "Example",
			input:    "7,1\n11,1\n11,7\n",
			expected: []Point{{7, 1}, {11, 1}, {11, 7}},
		},
		{
			name:     "No Trailing Newline",
			input:    "1,2\n3,4",
			expected: []Point{{1, 2}, {3, 4}},
		},
		{
			name:     "Blank Lines And Spaces",
			input:    "\n 1, 2 \r\n\n3,4\n",
			expected: []Point{{1, 2}, {3, 4}},
		},
		{
			name:     "Large And Negative",
			input:    "9876543210,-5\n",
			expected: []Point{{9876543210, -5}},
		},
		{
			name:     "Missing Comma",
			input:    "1,2\n34\n",
			wantLine: 2,
		},
		{
			name:     "Not A Number",
			input:    "1,2\n3,4\nx,5\n",
			wantLine: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(tt.input))
			if tt.wantLine != 0 {
				var perr *ParseError
				if !errors.As(err, &perr) {
					t.Fatalf("Parse() error = %v, want *ParseError", err)
				}
				if perr.Line != tt.wantLine {
					t.Errorf("ParseError.Line = %d, want %d", perr.Line, tt.wantLine)
				}
				if !errors.Is(err, ErrMalformedRecord) {
					t.Errorf("errors.Is(err, ErrMalformedRecord) = false")
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Parse() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		points  []Point
		wantErr error
	}{
		{"Square", []Point{{0, 0}, {0, 5}, {5, 5}, {5, 0}}, nil},
		{"Segment", []Point{{0, 0}, {0, 5}}, nil},
		{"Single", []Point{{0, 0}}, ErrTooFewPoints},
		{"Diagonal", []Point{{0, 0}, {3, 3}, {3, 0}}, ErrDiagonalEdge},
		{"Diagonal Closing Edge", []Point{{0, 0}, {0, 4}, {4, 4}, {4, 2}}, ErrDiagonalEdge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.points)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRingAndArea(t *testing.T) {
	square := []Point{{0, 0}, {0, 4}, {3, 4}, {3, 0}}

	ring := Ring(square)
	if len(ring) != 5 || ring[0] != ring[4] {
		t.Fatalf("Ring() = %v, want closed ring of 5 points", ring)
	}
	if ring[1][0] != 4 || ring[1][1] != 0 {
		t.Errorf("Ring()[1] = %v, want X=col 4, Y=row 0", ring[1])
	}

	if got := Area(square); got != 12 {
		t.Errorf("Area() = %v, want 12", got)
	}
	if got := Area(square[:2]); got != 0 {
		t.Errorf("Area() of segment = %v, want 0", got)
	}

	b := Bound(square)
	if b.Min[0] != 0 || b.Min[1] != 0 || b.Max[0] != 4 || b.Max[1] != 3 {
		t.Errorf("Bound() = %v", b)
	}
}
