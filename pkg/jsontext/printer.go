package jsontext

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// printer re-emits a decoder's token stream with fixed indentation while
// preserving the original key order and number representation. It exists
// because encoding/json's map-based round trip would sort object keys.
type printer struct {
	dec  *json.Decoder
	buf  *bytes.Buffer
	unit string
}

func newPrinter(dec *json.Decoder, buf *bytes.Buffer, indent int) *printer {
	return &printer{
		dec:  dec,
		buf:  buf,
		unit: strings.Repeat(" ", indent),
	}
}

// value consumes and prints the next value from the token stream.
func (p *printer) value(depth int) error {
	tok, err := p.dec.Token()
	if err != nil {
		return err
	}
	return p.token(tok, depth)
}

func (p *printer) token(tok json.Token, depth int) error {
	if d, ok := tok.(json.Delim); ok {
		if d == '{' {
			return p.object(depth)
		}
		return p.array(depth)
	}
	p.scalar(tok)
	return nil
}

func (p *printer) object(depth int) error {
	if !p.dec.More() {
		if _, err := p.dec.Token(); err != nil {
			return err
		}
		p.buf.WriteString("{}")
		return nil
	}

	p.buf.WriteString("{\n")
	inner := strings.Repeat(p.unit, depth+1)

	for p.dec.More() {
		keyTok, err := p.dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("object key is %T, not string", keyTok)
		}

		p.buf.WriteString(inner)
		p.writeString(key)
		p.buf.WriteString(": ")

		if err := p.value(depth + 1); err != nil {
			return err
		}
		if p.dec.More() {
			p.buf.WriteByte(',')
		}
		p.buf.WriteByte('\n')
	}

	if _, err := p.dec.Token(); err != nil {
		return err
	}
	p.buf.WriteString(strings.Repeat(p.unit, depth))
	p.buf.WriteByte('}')
	return nil
}

func (p *printer) array(depth int) error {
	if !p.dec.More() {
		if _, err := p.dec.Token(); err != nil {
			return err
		}
		p.buf.WriteString("[]")
		return nil
	}

	p.buf.WriteString("[\n")
	inner := strings.Repeat(p.unit, depth+1)

	for p.dec.More() {
		p.buf.WriteString(inner)
		if err := p.value(depth + 1); err != nil {
			return err
		}
		if p.dec.More() {
			p.buf.WriteByte(',')
		}
		p.buf.WriteByte('\n')
	}

	if _, err := p.dec.Token(); err != nil {
		return err
	}
	p.buf.WriteString(strings.Repeat(p.unit, depth))
	p.buf.WriteByte(']')
	return nil
}

func (p *printer) scalar(tok json.Token) {
	switch v := tok.(type) {
	case string:
		p.writeString(v)
	case json.Number:
		p.buf.WriteString(v.String())
	case bool:
		p.buf.WriteString(strconv.FormatBool(v))
	case nil:
		p.buf.WriteString("null")
	default:
		// Decoder tokens are exhaustively covered above; UseNumber keeps
		// float64 out of the stream.
		fmt.Fprintf(p.buf, "%v", v)
	}
}

// writeString emits a JSON string literal without HTML escaping.
func (p *printer) writeString(s string) {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	p.buf.Write(bytes.TrimRight(tmp.Bytes(), "\n"))
}
