// Package wire reads and writes prototype dumps: the msgpack shape in
// which the external PHP lexer hands its token array to phpfix. Each
// element is either a string (a bare one-character symbol) or a
// [kind, text] / [kind, text, line] array.
package wire

import (
	"errors"
	"fmt"
	"io"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"

	"phpfix/internal/token"
)

// ErrBadShape reports a dump element that is neither a string nor a
// two- or three-element array.
var ErrBadShape = errors.New("wire: bad prototype shape")

// Decode reads one prototype dump: a top-level array of elements.
func Decode(r io.Reader) ([]token.Prototype, error) {
	dec := msgpack.NewDecoder(r)
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return nil, fmt.Errorf("wire: read stream header: %w", err)
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: nil stream", ErrBadShape)
	}
	protos := make([]token.Prototype, 0, n)
	for i := 0; i < n; i++ {
		p, err := decodeOne(dec)
		if err != nil {
			return nil, fmt.Errorf("wire: element %d: %w", i, err)
		}
		protos = append(protos, p)
	}
	return protos, nil
}

func decodeOne(dec *msgpack.Decoder) (token.Prototype, error) {
	c, err := dec.PeekCode()
	if err != nil {
		return token.Prototype{}, err
	}
	switch {
	case msgpcode.IsString(c):
		text, err := dec.DecodeString()
		if err != nil {
			return token.Prototype{}, err
		}
		return token.Bare(text), nil
	case msgpcode.IsFixedArray(c), c == msgpcode.Array16, c == msgpcode.Array32:
		return decodeTriple(dec)
	default:
		return token.Prototype{}, fmt.Errorf("%w: msgpack code 0x%02x", ErrBadShape, c)
	}
}

func decodeTriple(dec *msgpack.Decoder) (token.Prototype, error) {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return token.Prototype{}, err
	}
	if n != 2 && n != 3 {
		return token.Prototype{}, fmt.Errorf("%w: array of %d elements", ErrBadShape, n)
	}
	rawKind, err := dec.DecodeInt64()
	if err != nil {
		return token.Prototype{}, fmt.Errorf("kind: %w", err)
	}
	kind, err := safecast.Conv[int](rawKind)
	if err != nil {
		return token.Prototype{}, fmt.Errorf("kind %d: %w", rawKind, err)
	}
	text, err := dec.DecodeString()
	if err != nil {
		return token.Prototype{}, fmt.Errorf("text: %w", err)
	}
	line := 0
	if n == 3 {
		rawLine, err := dec.DecodeInt64()
		if err != nil {
			return token.Prototype{}, fmt.Errorf("line: %w", err)
		}
		line, err = safecast.Conv[int](rawLine)
		if err != nil {
			return token.Prototype{}, fmt.Errorf("line %d: %w", rawLine, err)
		}
	}
	return token.Kinded(token.Kind(kind), text, line), nil
}

// Encode writes prototypes in the same shape Decode reads. Prototypes
// without a recorded line are written as two-element arrays, so a
// decode/encode cycle reproduces the dump byte for byte.
func Encode(w io.Writer, protos []token.Prototype) error {
	enc := msgpack.NewEncoder(w)
	if err := enc.EncodeArrayLen(len(protos)); err != nil {
		return fmt.Errorf("wire: write stream header: %w", err)
	}
	for i, p := range protos {
		if err := encodeOne(enc, p); err != nil {
			return fmt.Errorf("wire: element %d: %w", i, err)
		}
	}
	return nil
}

func encodeOne(enc *msgpack.Encoder, p token.Prototype) error {
	if !p.Kinded {
		return enc.EncodeString(p.Text)
	}
	n := 2
	if p.Line != 0 {
		n = 3
	}
	if err := enc.EncodeArrayLen(n); err != nil {
		return err
	}
	if err := enc.EncodeInt(int64(p.ID)); err != nil {
		return err
	}
	if err := enc.EncodeString(p.Text); err != nil {
		return err
	}
	if n == 3 {
		return enc.EncodeInt(int64(p.Line))
	}
	return nil
}
