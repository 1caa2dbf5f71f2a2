package token

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	ucs := []byte{0, 0}
	cps := []byte{0, 0, 0, 0}
	for _, r := range v {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if unicode.IsControl(r) {
				ucs[0] = byte(r >> 8)
				ucs[1] = byte(r)
				cps = hex.AppendEncode(cps[:0], ucs)
				d = append(d, '\\', 'u', cps[0], cps[1], cps[2], cps[3])
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	d = append(d, '"')
	return string(d)
}

func Unquote(v string) (string, error) {
	n, err := bsEscQuoted([]byte(v))
	if err != nil {
		return "", err
	}
	if n != len(v) {
		return "", ErrUnterminated
	}
	return QuotedToString([]byte(v)), nil
}

// bsEscQuoted validates a double-quoted backslash-escaped string at the
// start of d and returns the number of bytes it spans including both
// quotes.
func bsEscQuoted(d []byte) (int, error) {
	if len(d) == 0 || d[0] != '"' {
		return -1, errors.New("invalid")
	}
	escaped := false
	start := 1
	n := len(d)
	for start < n {
		r, sz := utf8.DecodeRune(d[start:])
		start += sz
		switch r {
		case utf8.RuneError:
			return 0, ErrBadUTF8
		case '"':
			if !escaped {
				return start, nil
			}
			escaped = false
		case 'u':
			if escaped {
				if start+4 > n {
					return start, ErrUnterminated
				}
				if !allHex(d[start : start+4]) {
					return start, ErrBadUnicode
				}
				start += 4
			}
			escaped = false
		case '/', 'b', 'f', 'n', 'r', 't':
			escaped = false
		case '\\':
			escaped = !escaped
		default:
			if unicode.IsControl(r) {
				return start, ErrUnicodeControl
			}
			if escaped {
				return start, ErrBadEscape
			}
			escaped = false
		}
	}
	return 0, ErrUnterminated
}

func allHex(d []byte) bool {
	for _, c := range d {
		if c >= '0' && c <= '9' {
			continue
		}
		if c >= 'a' && c <= 'f' {
			continue
		}
		if c >= 'A' && c <= 'F' {
			continue
		}
		return false
	}
	return true
}

// QuotedToString decodes a validated quoted token into its string value.
// d must span exactly one quoted string including both quotes.
func QuotedToString(d []byte) string {
	b := &strings.Builder{}
	i := 1
	esc := false
	for i < len(d) {
		r, sz := utf8.DecodeRune(d[i:])
		i += sz
		switch r {
		case '\\':
			if esc {
				b.WriteByte('\\')
			}
			esc = !esc
		case '"':
			if !esc {
				if i != len(d) {
					panic(fmt.Sprintf("internal string: trailing %q", string(d[i:])))
				}
				return b.String()
			}
			b.WriteByte('"')
			esc = false
		default:
			if !esc {
				b.WriteRune(r)
				continue
			}
			esc = false
			switch r {
			case 't':
				b.WriteByte('\t')
			case 'n':
				b.WriteByte('\n')
			case 'f':
				b.WriteByte('\f')
			case 'r':
				b.WriteByte('\r')
			case '/':
				b.WriteByte('/')
			case 'b':
				b.WriteByte('\b')
			case 'u':
				r, n := decodeUnicodeEsc(d[i:])
				b.WriteRune(r)
				i += n
			default:
				panic(fmt.Sprintf("internal string %q", string(d)))
			}
		}
	}
	return b.String()
}

// decodeUnicodeEsc decodes the 4 hex digits after a \u escape, combining
// a following \uXXXX low surrogate when the first unit is a high
// surrogate. Returns the rune and bytes consumed.
func decodeUnicodeEsc(d []byte) (rune, int) {
	if len(d) < 4 {
		return utf8.RuneError, len(d)
	}
	dst := []byte{0, 0}
	if _, err := hex.Decode(dst, d[:4]); err != nil {
		return utf8.RuneError, 4
	}
	r := rune(dst[0])<<8 | rune(dst[1])
	if !utf16.IsSurrogate(r) {
		return r, 4
	}
	if len(d) >= 10 && d[4] == '\\' && d[5] == 'u' {
		if _, err := hex.Decode(dst, d[6:10]); err == nil {
			r2 := rune(dst[0])<<8 | rune(dst[1])
			if dec := utf16.DecodeRune(r, r2); dec != utf8.RuneError {
				return dec, 10
			}
		}
	}
	return utf8.RuneError, 4
}
