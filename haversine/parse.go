package haversine

import (
	"strconv"

	"github.com/ardnew/spent/pkg"
)

// Parse deserializes an input file of the shape
//
//	{
//	  "pairs": [
//	    { "x0": 33.64, "y0": -22.58, "x1": -7.91, "y1": 50.39 },
//	    ...
//	  ]
//	}
//
// without reflection or intermediate allocation. Whitespace is tolerated
// anywhere between tokens, pair members may appear in any order, and a
// trailing comma after the last array element is accepted. A pair missing
// any of its four coordinates is rejected. Bytes after the closing brace
// are ignored.
func Parse(buf []byte) (Data, error) {
	p := parser{buf: buf}

	return p.data()
}

// parser consumes the input buffer without copying.
type parser struct {
	buf []byte
	pos int
}

func (p *parser) errf(format string, args ...any) error {
	return pkg.ErrParse.Wrapf("offset %d", p.pos).Wrapf(format, args...)
}

// data parses the top-level object: a single key introducing the pair array.
func (p *parser) data() (Data, error) {
	var d Data

	if err := p.eat('{'); err != nil {
		return d, err
	}

	if _, err := p.key(); err != nil {
		return d, err
	}

	pairs, err := p.array()
	if err != nil {
		return d, err
	}

	if err := p.eat('}'); err != nil {
		return d, err
	}

	d.Pairs = pairs

	return d, nil
}

// array parses the bracketed list of pair objects.
func (p *parser) array() ([]Pair, error) {
	if err := p.eat('['); err != nil {
		return nil, err
	}

	var pairs []Pair

	for {
		p.skipSpace()

		if p.peek() == ']' {
			break
		}

		pair, err := p.pair()
		if err != nil {
			return nil, err
		}

		pairs = append(pairs, pair)

		p.skipSpace()

		if p.peek() == ',' {
			p.pos++
		}
	}

	if err := p.eat(']'); err != nil {
		return nil, err
	}

	return pairs, nil
}

// pair parses one coordinate object. Exactly four members are expected; the
// recognized keys may appear in any order.
func (p *parser) pair() (Pair, error) {
	var pair Pair

	if err := p.eat('{'); err != nil {
		return pair, err
	}

	var x0, y0, x1, y1 *float64

	for i := range 4 {
		if i > 0 {
			if err := p.eat(','); err != nil {
				return pair, err
			}
		}

		name, err := p.key()
		if err != nil {
			return pair, err
		}

		val, err := p.number()
		if err != nil {
			return pair, err
		}

		switch name {
		case "x0":
			x0 = &val
		case "y0":
			y0 = &val
		case "x1":
			x1 = &val
		case "y1":
			y1 = &val
		}
	}

	if err := p.eat('}'); err != nil {
		return pair, err
	}

	if x0 == nil || y0 == nil || x1 == nil || y1 == nil {
		return pair, p.errf("pair is missing a coordinate")
	}

	pair.X0, pair.Y0, pair.X1, pair.Y1 = *x0, *y0, *x1, *y1

	return pair, nil
}

// key parses a quoted alphanumeric member name and its trailing colon.
func (p *parser) key() (string, error) {
	if err := p.eat('"'); err != nil {
		return "", err
	}

	start := p.pos
	for p.pos < len(p.buf) && isAlphanumeric(p.buf[p.pos]) {
		p.pos++
	}

	if p.pos == start {
		return "", p.errf("empty member name")
	}

	name := string(p.buf[start:p.pos])

	if p.pos >= len(p.buf) || p.buf[p.pos] != '"' {
		return "", p.errf("unterminated member name %q", name)
	}

	p.pos++

	if err := p.eat(':'); err != nil {
		return "", err
	}

	return name, nil
}

// number parses a float64 literal.
func (p *parser) number() (float64, error) {
	p.skipSpace()

	start := p.pos
	for p.pos < len(p.buf) && isNumeric(p.buf[p.pos]) {
		p.pos++
	}

	if p.pos == start {
		return 0, p.errf("expected number, found %q", p.peek())
	}

	val, err := strconv.ParseFloat(string(p.buf[start:p.pos]), 64)
	if err != nil {
		return 0, p.errf("malformed number %q", string(p.buf[start:p.pos]))
	}

	return val, nil
}

// eat skips whitespace on both sides of the expected byte.
func (p *parser) eat(c byte) error {
	p.skipSpace()

	if p.pos >= len(p.buf) || p.buf[p.pos] != c {
		return p.errf("expected %q, found %q", c, p.peek())
	}

	p.pos++
	p.skipSpace()

	return nil
}

func (p *parser) skipSpace() {
	for p.pos < len(p.buf) {
		switch p.buf[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

// peek returns the current byte, or 0 at end of input.
func (p *parser) peek() byte {
	if p.pos >= len(p.buf) {
		return 0
	}

	return p.buf[p.pos]
}

func isAlphanumeric(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

func isNumeric(c byte) bool {
	return c >= '0' && c <= '9' ||
		c == '-' || c == '+' || c == '.' || c == 'e' || c == 'E'
}
