package plist

import (
	"fmt"
	"strconv"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// maxDepth bounds container nesting so hostile input cannot exhaust the stack.
const maxDepth = 64

// SyntaxError reports malformed OpenStep text.
type SyntaxError struct {
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("plist: %s at offset %d", e.Msg, e.Offset)
}

type textParser struct {
	src   []byte
	pos   int
	depth int
}

func parseText(data []byte) (Value, error) {
	p := &textParser{src: data}
	if len(data) >= 3 && data[0] == 0xef && data[1] == 0xbb && data[2] == 0xbf {
		p.pos = 3
	}
	if err := p.skipSpace(); err != nil {
		return nil, err
	}
	if p.eof() {
		return nil, p.errorf("empty document")
	}
	v, err := p.value()
	if err != nil {
		return nil, err
	}
	if err := p.skipSpace(); err != nil {
		return nil, err
	}
	if !p.eof() {
		return nil, p.errorf("unexpected %q after end of document", p.src[p.pos])
	}
	return v, nil
}

func (p *textParser) eof() bool { return p.pos >= len(p.src) }

func (p *textParser) errorf(format string, args ...interface{}) error {
	return errors.WithStack(&SyntaxError{Offset: p.pos, Msg: fmt.Sprintf(format, args...)})
}

// skipSpace advances past whitespace and C or C++ style comments.
func (p *textParser) skipSpace() error {
	for !p.eof() {
		c := p.src[p.pos]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v':
			p.pos++
		case c == '/' && p.pos+1 < len(p.src) && p.src[p.pos+1] == '/':
			for !p.eof() && p.src[p.pos] != '\n' {
				p.pos++
			}
		case c == '/' && p.pos+1 < len(p.src) && p.src[p.pos+1] == '*':
			start := p.pos
			p.pos += 2
			for {
				if p.pos+1 >= len(p.src) {
					p.pos = start
					return p.errorf("unterminated comment")
				}
				if p.src[p.pos] == '*' && p.src[p.pos+1] == '/' {
					p.pos += 2
					break
				}
				p.pos++
			}
		default:
			return nil
		}
	}
	return nil
}

func (p *textParser) value() (Value, error) {
	switch c := p.src[p.pos]; {
	case c == '{':
		return p.dict()
	case c == '(':
		return p.array()
	case c == '<':
		return p.data()
	case c == '"' || c == '\'':
		s, err := p.quoted(c)
		if err != nil {
			return nil, err
		}
		return String(s), nil
	case isTokenByte(c):
		return classify(p.token()), nil
	default:
		return nil, p.errorf("unexpected %q", c)
	}
}

func (p *textParser) enter() error {
	p.depth++
	if p.depth > maxDepth {
		return p.errorf("nesting deeper than %d", maxDepth)
	}
	return nil
}

func (p *textParser) dict() (Value, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer func() { p.depth-- }()
	p.pos++ // {

	d := make(Dict)
	for {
		if err := p.skipSpace(); err != nil {
			return nil, err
		}
		if p.eof() {
			return nil, p.errorf("unterminated dictionary")
		}
		if p.src[p.pos] == '}' {
			p.pos++
			return d, nil
		}

		key, err := p.key()
		if err != nil {
			return nil, err
		}
		if err := p.expect('='); err != nil {
			return nil, err
		}
		if err := p.skipSpace(); err != nil {
			return nil, err
		}
		if p.eof() {
			return nil, p.errorf("missing value for key %q", key)
		}
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		d[key] = v

		if err := p.skipSpace(); err != nil {
			return nil, err
		}
		switch {
		case p.eof():
			return nil, p.errorf("unterminated dictionary")
		case p.src[p.pos] == ';':
			p.pos++
		case p.src[p.pos] == '}':
			// the final entry may omit its semicolon
		default:
			return nil, p.errorf("expected ';' after value for key %q, found %q", key, p.src[p.pos])
		}
	}
}

func (p *textParser) key() (string, error) {
	switch c := p.src[p.pos]; {
	case c == '"' || c == '\'':
		return p.quoted(c)
	case isTokenByte(c):
		return p.token(), nil
	default:
		return "", p.errorf("expected dictionary key, found %q", c)
	}
}

func (p *textParser) expect(c byte) error {
	if err := p.skipSpace(); err != nil {
		return err
	}
	if p.eof() {
		return p.errorf("expected %q, found end of input", c)
	}
	if p.src[p.pos] != c {
		return p.errorf("expected %q, found %q", c, p.src[p.pos])
	}
	p.pos++
	return nil
}

func (p *textParser) array() (Value, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer func() { p.depth-- }()
	p.pos++ // (

	a := Array{}
	for {
		if err := p.skipSpace(); err != nil {
			return nil, err
		}
		if p.eof() {
			return nil, p.errorf("unterminated array")
		}
		if p.src[p.pos] == ')' {
			p.pos++
			return a, nil
		}
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		a = append(a, v)

		if err := p.skipSpace(); err != nil {
			return nil, err
		}
		switch {
		case p.eof():
			return nil, p.errorf("unterminated array")
		case p.src[p.pos] == ',':
			p.pos++
		case p.src[p.pos] == ')':
		default:
			return nil, p.errorf("expected ',' or ')' in array, found %q", p.src[p.pos])
		}
	}
}

func (p *textParser) data() (Value, error) {
	start := p.pos
	p.pos++ // <

	var out []byte
	var hi byte
	half := false
	for {
		if p.eof() {
			p.pos = start
			return nil, p.errorf("unterminated data")
		}
		c := p.src[p.pos]
		p.pos++
		switch {
		case c == '>':
			if half {
				return nil, p.errorf("odd number of hex digits in data")
			}
			return Data(out), nil
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
		default:
			n, ok := unhex(c)
			if !ok {
				p.pos--
				return nil, p.errorf("invalid hex digit %q in data", c)
			}
			if half {
				out = append(out, hi<<4|n)
			} else {
				hi = n
			}
			half = !half
		}
	}
}

func (p *textParser) token() string {
	start := p.pos
	for !p.eof() && isTokenByte(p.src[p.pos]) {
		p.pos++
	}
	return string(p.src[start:p.pos])
}

func (p *textParser) quoted(quote byte) (string, error) {
	start := p.pos
	p.pos++

	var b []byte
	for {
		if p.eof() {
			p.pos = start
			return "", p.errorf("unterminated string")
		}
		c := p.src[p.pos]
		p.pos++
		switch c {
		case quote:
			return string(b), nil
		case '\\':
			if p.eof() {
				p.pos = start
				return "", p.errorf("unterminated string")
			}
			b = p.escape(b)
		default:
			b = append(b, c)
		}
	}
}

// escape decodes the escape sequence following a backslash and appends it to b.
func (p *textParser) escape(b []byte) []byte {
	c := p.src[p.pos]
	p.pos++
	switch c {
	case 'a':
		return append(b, '\a')
	case 'b':
		return append(b, '\b')
	case 'f':
		return append(b, '\f')
	case 'n':
		return append(b, '\n')
	case 'r':
		return append(b, '\r')
	case 't':
		return append(b, '\t')
	case 'v':
		return append(b, '\v')
	case 'U', 'u':
		r, ok := p.hexRune()
		if !ok {
			return append(b, c)
		}
		if utf16.IsSurrogate(r) {
			if low, ok := p.lowSurrogate(); ok {
				r = utf16.DecodeRune(r, low)
			} else {
				r = utf8.RuneError
			}
		}
		return utf8.AppendRune(b, r)
	case '0', '1', '2', '3', '4', '5', '6', '7':
		n := rune(c - '0')
		for i := 0; i < 2 && !p.eof() && p.src[p.pos] >= '0' && p.src[p.pos] <= '7'; i++ {
			n = n<<3 | rune(p.src[p.pos]-'0')
			p.pos++
		}
		return utf8.AppendRune(b, n)
	default:
		return append(b, c)
	}
}

// hexRune reads up to four hex digits.
func (p *textParser) hexRune() (rune, bool) {
	var r rune
	n := 0
	for n < 4 && !p.eof() {
		d, ok := unhex(p.src[p.pos])
		if !ok {
			break
		}
		r = r<<4 | rune(d)
		p.pos++
		n++
	}
	return r, n > 0
}

func (p *textParser) lowSurrogate() (rune, bool) {
	if p.pos+2 > len(p.src) || p.src[p.pos] != '\\' || (p.src[p.pos+1] != 'U' && p.src[p.pos+1] != 'u') {
		return 0, false
	}
	save := p.pos
	p.pos += 2
	r, ok := p.hexRune()
	if !ok || r < 0xdc00 || r > 0xdfff {
		p.pos = save
		return 0, false
	}
	return r, true
}

func isTokenByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}
	switch c {
	case '_', '$', '+', '/', ':', '.', '-':
		return true
	}
	return false
}

func unhex(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// classify types an unquoted token. Tokens that look numeric become a Number
// wrapping an Integer or Real; everything else, including integers too large
// for int64, stays a String.
func classify(tok string) Value {
	if !looksNumeric(tok) {
		return String(tok)
	}
	if n, err := strconv.ParseInt(tok, 10, 64); err == nil {
		return Number{Text: tok, Value: Integer(n)}
	}
	if isIntegerToken(tok) {
		return String(tok)
	}
	if f, err := strconv.ParseFloat(tok, 64); err == nil {
		return Number{Text: tok, Value: Real(f)}
	}
	return String(tok)
}

func looksNumeric(tok string) bool {
	if tok == "" {
		return false
	}
	if c := tok[0]; !(c >= '0' && c <= '9') && c != '+' && c != '-' && c != '.' {
		return false
	}
	digits := 0
	for i := 0; i < len(tok); i++ {
		switch c := tok[i]; {
		case c >= '0' && c <= '9':
			digits++
		case c == '+', c == '-', c == '.', c == 'e', c == 'E':
		default:
			return false
		}
	}
	return digits > 0
}

func isIntegerToken(tok string) bool {
	if tok[0] == '+' || tok[0] == '-' {
		tok = tok[1:]
	}
	if tok == "" {
		return false
	}
	for i := 0; i < len(tok); i++ {
		if tok[i] < '0' || tok[i] > '9' {
			return false
		}
	}
	return true
}
