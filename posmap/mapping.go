package posmap

import "fmt"

// Kind tells whether a mapping covers an object key or a value token.
type Kind int

const (
	KeyKind Kind = iota
	ValueKind
)

var kindStrings = map[Kind]string{
	KeyKind:   "key",
	ValueKind: "value",
}

func (k Kind) String() string {
	s, ok := kindStrings[k]
	if !ok {
		return fmt.Sprintf("Kind(%d)", k)
	}
	return s
}

// Mapping links one token of rendered JSON text to the span of wire
// bytes that encodes it. Text offsets are byte offsets into the UTF-8
// text; both ranges are half-open. Key mappings cover the key's whole
// encoding including its marker, value mappings likewise.
type Mapping struct {
	TextStart int
	TextEnd   int
	ByteStart int
	ByteEnd   int
	Kind      Kind
}

func (m Mapping) String() string {
	return fmt.Sprintf("%s text %d..%d bytes %d..%d",
		m.Kind, m.TextStart, m.TextEnd, m.ByteStart, m.ByteEnd)
}

// ByteRangeForTextRange unions the byte spans of every mapping whose
// text span overlaps the half-open selection [textStart, textEnd). The
// second result is false when nothing overlaps.
func ByteRangeForTextRange(maps []Mapping, textStart, textEnd int) (start, end int, ok bool) {
	for _, m := range maps {
		if m.TextStart >= textEnd || textStart >= m.TextEnd {
			continue
		}
		if !ok || m.ByteStart < start {
			start = m.ByteStart
		}
		if m.ByteEnd > end {
			end = m.ByteEnd
		}
		ok = true
	}
	return start, end, ok
}

// HexCharRange converts a wire byte span to the character span it
// occupies in a space-separated hex dump, two digits and a separator
// per byte. The trailing separator is excluded.
func HexCharRange(byteStart, byteEnd int) (int, int) {
	if byteEnd <= byteStart {
		return byteStart * 3, byteStart * 3
	}
	return byteStart * 3, byteEnd*3 - 1
}
