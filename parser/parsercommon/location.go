package parsercommon

import "fmt"

// Location is a half-open byte range [Start, End) in the path-data source.
type Location struct {
	Start int
	End   int
}

// NewLocation returns a zero-width location at offset.
func NewLocation(offset int) Location {
	return Location{Start: offset, End: offset}
}

// NewRange returns the location covering [start, end).
func NewRange(start, end int) Location {
	return Location{Start: start, End: end}
}

// Merge returns the smallest location covering both l and other.
func (l Location) Merge(other Location) Location {
	return Location{Start: min(l.Start, other.Start), End: max(l.End, other.End)}
}

func (l Location) String() string {
	if l.Start == l.End {
		return fmt.Sprintf("%d", l.Start)
	}
	return fmt.Sprintf("%d-%d", l.Start, l.End)
}

// Locatable is implemented by anything that knows where it came from in the source.
type Locatable interface {
	SourceLocation() Location
}

// LineColumn converts a byte offset into a 1-based line and column.
// Offsets past the end of source are clamped to the end.
func LineColumn(source string, offset int) (line, column int) {
	if offset > len(source) {
		offset = len(source)
	}

	line = 1
	column = 1

	for i := 0; i < offset; i++ {
		if source[i] == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}

	return line, column
}
