package token

import "bytes"

// Tokenize scans JSON text into tokens, appending to dst. The returned
// tokens hold subslices of src and positions into a shared PosDoc.
func Tokenize(dst []Token, src []byte) ([]Token, error) {
	doc := NewPosDoc(src)
	n := len(src)
	i := 0
	for i < n {
		c := src[i]
		switch c {
		case '\n':
			doc.nl(i)
			i++
			continue
		case ' ', '\t', '\r':
			i++
			continue
		}
		var tok Token
		tok.Pos = doc.Pos(i)
		switch {
		case c == '{':
			tok.Type = TLCurl
			tok.Bytes = src[i : i+1]
			i++
		case c == '}':
			tok.Type = TRCurl
			tok.Bytes = src[i : i+1]
			i++
		case c == '[':
			tok.Type = TLSquare
			tok.Bytes = src[i : i+1]
			i++
		case c == ']':
			tok.Type = TRSquare
			tok.Bytes = src[i : i+1]
			i++
		case c == ':':
			tok.Type = TColon
			tok.Bytes = src[i : i+1]
			i++
		case c == ',':
			tok.Type = TComma
			tok.Bytes = src[i : i+1]
			i++
		case c == '"':
			m, err := bsEscQuoted(src[i:])
			if err != nil {
				return dst, NewTokenizeErr(err, doc.Pos(i))
			}
			tok.Type = TString
			tok.Bytes = src[i : i+m]
			i += m
		case c == '-' || asciiDigit(c):
			m, isFloat, err := number(src[i:])
			if err != nil {
				return dst, NewTokenizeErr(err, doc.Pos(i))
			}
			tok.Type = TInteger
			if isFloat {
				tok.Type = TFloat
			}
			tok.Bytes = src[i : i+m]
			i += m
		case c == 't':
			m, err := keyword(src[i:], "true", doc.Pos(i))
			if err != nil {
				return dst, err
			}
			tok.Type = TTrue
			tok.Bytes = src[i : i+m]
			i += m
		case c == 'f':
			m, err := keyword(src[i:], "false", doc.Pos(i))
			if err != nil {
				return dst, err
			}
			tok.Type = TFalse
			tok.Bytes = src[i : i+m]
			i += m
		case c == 'n':
			m, err := keyword(src[i:], "null", doc.Pos(i))
			if err != nil {
				return dst, err
			}
			tok.Type = TNull
			tok.Bytes = src[i : i+m]
			i += m
		default:
			return dst, UnexpectedErr(string(src[i:i+1]), doc.Pos(i))
		}
		dst = append(dst, tok)
	}
	if len(dst) == 0 {
		return dst, NewTokenizeErr(ErrEmptyDoc, doc.end())
	}
	return dst, nil
}

func keyword(d []byte, kw string, pos *Pos) (int, error) {
	if len(d) < len(kw) || !bytes.Equal(d[:len(kw)], []byte(kw)) {
		return 0, ExpectedErr(kw, pos)
	}
	return len(kw), nil
}
