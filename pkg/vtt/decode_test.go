package vtt

import (
	"strings"
	"testing"
)

func TestDecode_PlainUTF8(t *testing.T) {
	got, err := Decode([]byte("WEBVTT\n\nhello"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "WEBVTT\n\nhello" {
		t.Errorf("unexpected output %q", got)
	}
}

func TestDecode_UTF8BOMStripped(t *testing.T) {
	got, err := Decode([]byte("\xef\xbb\xbfWEBVTT"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "WEBVTT" {
		t.Errorf("BOM not stripped: %q", got)
	}
}

func TestDecode_UTF16LE(t *testing.T) {
	// "Hi" with a UTF-16LE BOM.
	raw := []byte{0xff, 0xfe, 'H', 0x00, 'i', 0x00}
	got, err := Decode(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Hi" {
		t.Errorf("expected %q, got %q", "Hi", got)
	}
}

func TestDecode_LineBreaksNormalized(t *testing.T) {
	got, err := Decode([]byte("a\r\nb\rc d e"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "a\nb\nc\nd\ne" {
		t.Errorf("line breaks not normalized: %q", got)
	}
}

func TestDecode_InvalidBytesReplaced(t *testing.T) {
	got, err := Decode([]byte("ok\xff\xfeok"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(got, "ok") || !strings.HasSuffix(got, "ok") {
		t.Errorf("surrounding text mangled: %q", got)
	}
	if !strings.Contains(got, "�") {
		t.Errorf("invalid bytes not replaced: %q", got)
	}
}
