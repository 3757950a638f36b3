package wire_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"phpfix/internal/token"
	"phpfix/internal/wire"
)

func TestRoundTrip(t *testing.T) {
	protos := []token.Prototype{
		token.Kinded(310, "<?php ", 1),
		token.Kinded(320, "$greeting", 1),
		token.Bare("="),
		token.Kinded(305, "'hi'", 1),
		token.Bare(";"),
		token.Kinded(256, "\n", 0), // no recorded line
	}

	var buf bytes.Buffer
	if err := wire.Encode(&buf, protos); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	first := append([]byte(nil), buf.Bytes()...)

	got, err := wire.Decode(&buf)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(got) != len(protos) {
		t.Fatalf("decoded %d prototypes, want %d", len(got), len(protos))
	}
	for i := range protos {
		if got[i] != protos[i] {
			t.Fatalf("prototype %d = %+v, want %+v", i, got[i], protos[i])
		}
	}

	// a decode/encode cycle reproduces the dump byte for byte
	var again bytes.Buffer
	if err := wire.Encode(&again, got); err != nil {
		t.Fatalf("re-Encode failed: %v", err)
	}
	if !bytes.Equal(first, again.Bytes()) {
		t.Fatalf("re-encoded dump differs from the original")
	}
}

func TestDecodeEmptyStream(t *testing.T) {
	var buf bytes.Buffer
	if err := wire.Encode(&buf, nil); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	got, err := wire.Decode(&buf)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("decoded %d prototypes from empty dump", len(got))
	}
}

func TestDecodeRejectsBadElement(t *testing.T) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	if err := enc.EncodeArrayLen(1); err != nil {
		t.Fatal(err)
	}
	if err := enc.EncodeBool(true); err != nil {
		t.Fatal(err)
	}

	if _, err := wire.Decode(&buf); !errors.Is(err, wire.ErrBadShape) {
		t.Fatalf("err = %v, want ErrBadShape", err)
	}
}

func TestDecodeRejectsWrongArity(t *testing.T) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	if err := enc.EncodeArrayLen(1); err != nil {
		t.Fatal(err)
	}
	if err := enc.EncodeArrayLen(4); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 4; i++ {
		if err := enc.EncodeInt(0); err != nil {
			t.Fatal(err)
		}
	}

	if _, err := wire.Decode(&buf); !errors.Is(err, wire.ErrBadShape) {
		t.Fatalf("err = %v, want ErrBadShape", err)
	}
}

func TestDecodeRejectsTruncatedDump(t *testing.T) {
	var buf bytes.Buffer
	if err := wire.Encode(&buf, []token.Prototype{token.Kinded(310, "<?php ", 1)}); err != nil {
		t.Fatal(err)
	}
	full := buf.Bytes()

	if _, err := wire.Decode(bytes.NewReader(full[:len(full)-2])); err == nil {
		t.Fatalf("decoding a truncated dump succeeded")
	}
}

func TestDecodeRejectsNonArrayHeader(t *testing.T) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	if err := enc.EncodeString("not a dump"); err != nil {
		t.Fatal(err)
	}
	if _, err := wire.Decode(&buf); err == nil {
		t.Fatalf("decoding a non-array dump succeeded")
	}
}
