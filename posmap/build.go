package posmap

import (
	"strconv"

	"github.com/packview/packview/encode"
	"github.com/packview/packview/format"
	"github.com/packview/packview/msgpack"
)

// Build walks a MessagePack buffer and its rendered JSON text in the
// same depth-first order and links every key and scalar token to the
// wire bytes encoding it. Container punctuation gets no mapping of its
// own. Build never fails: if the two sides ever disagree it returns
// nil rather than partial results.
func Build(data []byte, text string) []Mapping {
	w := &walker{data: data, text: text, ok: true}
	w.value()
	w.ws()
	if !w.ok || w.bpos != len(data) || w.tpos != len(text) {
		return nil
	}
	return w.maps
}

type walker struct {
	data []byte
	text string

	bpos, tpos int
	maps       []Mapping
	ok         bool
}

func (w *walker) fail() {
	w.ok = false
}

func (w *walker) ws() {
	for w.tpos < len(w.text) {
		switch w.text[w.tpos] {
		case ' ', '\t', '\n', '\r':
			w.tpos++
		default:
			return
		}
	}
}

func (w *walker) expect(c byte) {
	if !w.ok {
		return
	}
	if w.tpos >= len(w.text) || w.text[w.tpos] != c {
		w.fail()
		return
	}
	w.tpos++
}

func (w *walker) value() {
	if !w.ok {
		return
	}
	w.ws()
	sh, n, hdr, ok := header(w.data, w.bpos)
	if !ok {
		w.fail()
		return
	}
	switch sh {
	case mapShape:
		w.object(n, hdr)
	case arrayShape:
		w.array(n, hdr)
	case binShape, extShape:
		payload := w.bpos + hdr
		if payload+n > len(w.data) {
			w.fail()
			return
		}
		w.bpos = payload + n
		w.byteArray(payload, n)
	default:
		w.scalar(ValueKind)
	}
}

func (w *walker) object(n, hdr int) {
	w.bpos += hdr
	w.expect('{')
	for i := range n {
		w.key()
		w.ws()
		w.expect(':')
		w.value()
		if i < n-1 {
			w.ws()
			w.expect(',')
		}
	}
	w.ws()
	w.expect('}')
}

func (w *walker) array(n, hdr int) {
	w.bpos += hdr
	w.expect('[')
	for i := range n {
		w.value()
		if i < n-1 {
			w.ws()
			w.expect(',')
		}
	}
	w.ws()
	w.expect(']')
}

// byteArray pairs each payload byte of a binary or ext value with the
// number token rendering it.
func (w *walker) byteArray(payload, n int) {
	w.expect('[')
	for i := range n {
		w.ws()
		tstart := w.tpos
		tend := w.scanBare()
		if !w.ok {
			return
		}
		if w.text[tstart:tend] != strconv.Itoa(int(w.data[payload+i])) {
			w.fail()
			return
		}
		w.maps = append(w.maps, Mapping{
			TextStart: tstart,
			TextEnd:   tend,
			ByteStart: payload + i,
			ByteEnd:   payload + i + 1,
			Kind:      ValueKind,
		})
		w.tpos = tend
		if i < n-1 {
			w.ws()
			w.expect(',')
		}
	}
	w.ws()
	w.expect(']')
}

// key maps an object key. The wire key may be any scalar; the text side
// always shows a quoted field.
func (w *walker) key() {
	if !w.ok {
		return
	}
	bstart := w.bpos
	_, end, err := msgpack.ReadValue(w.data, w.bpos)
	if err != nil {
		w.fail()
		return
	}
	w.ws()
	tstart := w.tpos
	tend := w.scanQuoted()
	if !w.ok {
		return
	}
	w.maps = append(w.maps, Mapping{
		TextStart: tstart,
		TextEnd:   tend,
		ByteStart: bstart,
		ByteEnd:   end,
		Kind:      KeyKind,
	})
	w.bpos = end
	w.tpos = tend
}

// scalar maps one leaf value, checking that the text token at the
// cursor is the one this wire value renders as.
func (w *walker) scalar(kind Kind) {
	bstart := w.bpos
	node, end, err := msgpack.ReadValue(w.data, w.bpos)
	if err != nil {
		w.fail()
		return
	}
	tstart := w.tpos
	var tend int
	if w.tpos < len(w.text) && w.text[w.tpos] == '"' {
		tend = w.scanQuoted()
	} else {
		tend = w.scanBare()
	}
	if !w.ok {
		return
	}
	want, err := encode.ScalarText(node)
	if err != nil || want != w.text[tstart:tend] {
		w.fail()
		return
	}
	w.maps = append(w.maps, Mapping{
		TextStart: tstart,
		TextEnd:   tend,
		ByteStart: bstart,
		ByteEnd:   end,
		Kind:      kind,
	})
	w.bpos = end
	w.tpos = tend
}

// scanQuoted returns the offset one past the closing quote of the
// string token at the cursor.
func (w *walker) scanQuoted() int {
	i := w.tpos
	if i >= len(w.text) || w.text[i] != '"' {
		w.fail()
		return i
	}
	i++
	for i < len(w.text) {
		switch w.text[i] {
		case '\\':
			i += 2
		case '"':
			return i + 1
		default:
			i++
		}
	}
	w.fail()
	return i
}

// scanBare returns the offset one past an unquoted token: a number,
// true, false or null.
func (w *walker) scanBare() int {
	j := w.tpos
	for j < len(w.text) && !tokenEnd(w.text[j]) {
		j++
	}
	if j == w.tpos {
		w.fail()
	}
	return j
}

func tokenEnd(c byte) bool {
	switch c {
	case ',', ':', ']', '}', ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

type shape int

const (
	scalarShape shape = iota
	arrayShape
	mapShape
	binShape
	extShape
)

// header classifies the value at pos. For containers n is the element
// count and hdr the bytes before the first element; for binary and ext
// values n is the payload length and hdr the bytes before the payload.
func header(d []byte, pos int) (sh shape, n, hdr int, ok bool) {
	if pos >= len(d) {
		return 0, 0, 0, false
	}
	c := d[pos]
	m := format.Marker(c)
	switch {
	case m.IsFixmap():
		return mapShape, int(c & format.FixmapMask), 1, true
	case m.IsFixarr():
		return arrayShape, int(c & format.FixarrMask), 1, true
	}
	switch m {
	case format.Map16:
		return countHeader(d, pos, mapShape, 2)
	case format.Map32:
		return countHeader(d, pos, mapShape, 4)
	case format.Array16:
		return countHeader(d, pos, arrayShape, 2)
	case format.Array32:
		return countHeader(d, pos, arrayShape, 4)
	case format.Bin8:
		return countHeader(d, pos, binShape, 1)
	case format.Bin16:
		return countHeader(d, pos, binShape, 2)
	case format.Bin32:
		return countHeader(d, pos, binShape, 4)
	case format.Fixext1:
		return extHeader(d, pos, 1, 2)
	case format.Fixext2:
		return extHeader(d, pos, 2, 2)
	case format.Fixext4:
		return extHeader(d, pos, 4, 2)
	case format.Fixext8:
		return extHeader(d, pos, 8, 2)
	case format.Fixext16:
		return extHeader(d, pos, 16, 2)
	case format.Ext8:
		if _, n, hdr, ok = countHeader(d, pos, extShape, 1); !ok {
			return 0, 0, 0, false
		}
		return extHeader(d, pos, n, hdr+1)
	case format.Ext16:
		if _, n, hdr, ok = countHeader(d, pos, extShape, 2); !ok {
			return 0, 0, 0, false
		}
		return extHeader(d, pos, n, hdr+1)
	case format.Ext32:
		if _, n, hdr, ok = countHeader(d, pos, extShape, 4); !ok {
			return 0, 0, 0, false
		}
		return extHeader(d, pos, n, hdr+1)
	}
	return scalarShape, 0, 1, true
}

func countHeader(d []byte, pos int, sh shape, w int) (shape, int, int, bool) {
	if pos+1+w > len(d) {
		return 0, 0, 0, false
	}
	n := 0
	for _, b := range d[pos+1 : pos+1+w] {
		n = n<<8 | int(b)
	}
	return sh, n, 1 + w, true
}

func extHeader(d []byte, pos, n, hdr int) (shape, int, int, bool) {
	if pos+hdr+n > len(d) {
		return 0, 0, 0, false
	}
	return extShape, n, hdr, true
}
