package subst

// SegmentKind tells if a Segment is verbatim text or a placeholder
type SegmentKind int

const (
	// TextSegment is text that is copied verbatim to the result
	TextSegment = SegmentKind(iota)

	// PlaceholderSegment is the raw inner text of a {…} region
	PlaceholderSegment
)

// A Segment is one piece of a scanned string.
type Segment struct {
	Kind SegmentKind

	// Text is the verbatim text of a TextSegment or the inner text, without the
	// enclosing braces, of a PlaceholderSegment.
	Text string
}

// scanner states
const (
	outside = iota
	inside
)

// Scan walks the input once, from left to right, and calls yield for each text and placeholder
// segment in the order they appear. The scan stops when yield returns false.
//
// A '{' found inside a placeholder is part of that placeholder's text and a '}' found outside
// of a placeholder is plain text. A placeholder that isn't terminated is yielded, starting with
// its opening brace, as text.
func Scan(input string, yield func(Segment) bool) {
	state := outside

	// start of pending text when outside, position of the opening brace when inside
	start := 0
	for i := 0; i < len(input); i++ {
		c := input[i]
		switch state {
		case outside:
			if c == '{' {
				if i > start && !yield(Segment{TextSegment, input[start:i]}) {
					return
				}
				start = i
				state = inside
			}
		case inside:
			if c == '}' {
				if !yield(Segment{PlaceholderSegment, input[start+1 : i]}) {
					return
				}
				start = i + 1
				state = outside
			}
		}
	}
	if start < len(input) {
		yield(Segment{TextSegment, input[start:]})
	}
}
