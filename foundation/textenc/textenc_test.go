package textenc

import (
	"bytes"
	"io"
	"testing"
)

func roundTrip(t *testing.T, c Codec, text string) []byte {
	t.Helper()

	var buf bytes.Buffer
	w, err := c.Writer(&buf)
	if err != nil {
		t.Fatalf("Writer: %v", err)
	}
	if _, err := io.WriteString(w, text); err != nil {
		t.Fatalf("WriteString: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	r, err := c.Reader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Reader: %v", err)
	}
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(got) != text {
		t.Fatalf("round trip: got %q, expected %q", got, text)
	}

	return buf.Bytes()
}

func TestLegacyUTF8Passthrough(t *testing.T) {
	bs := roundTrip(t, Codec{Mode: Legacy}, "10.0.0.1 host.example #note\n")
	if !bytes.Equal(bs, []byte("10.0.0.1 host.example #note\n")) {
		t.Errorf("plain UTF-8 should pass through untouched: %q", bs)
	}
}

func TestLegacyCodepage(t *testing.T) {
	c := Codec{Mode: Legacy, Codepage: "windows-1252"}
	bs := roundTrip(t, c, "10.0.0.1 host.example #café\n")

	// The é must land on disk as the single 1252 byte, not UTF-8.
	if !bytes.Contains(bs, []byte{0xe9}) || bytes.Contains(bs, []byte{0xc3, 0xa9}) {
		t.Errorf("windows-1252 encoding not applied: %q", bs)
	}
}

func TestUnknownCodepage(t *testing.T) {
	c := Codec{Mode: Legacy, Codepage: "no-such-codepage"}
	if _, err := c.Writer(io.Discard); err == nil {
		t.Error("unknown codepage should error")
	}
}

func TestUnicodeBOM(t *testing.T) {
	bom := []byte{0xff, 0xfe}

	with := roundTrip(t, Codec{Mode: Unicode, BOM: true}, "::1 localhost\n")
	if !bytes.HasPrefix(with, bom) {
		t.Errorf("expected UTF-16LE BOM prefix: %q", with[:4])
	}

	without := roundTrip(t, Codec{Mode: Unicode, BOM: false}, "::1 localhost\n")
	if bytes.HasPrefix(without, bom) {
		t.Error("BOM written despite BOM=false")
	}
}

func TestModeNames(t *testing.T) {
	for _, m := range []Mode{Legacy, Unicode} {
		got, ok := ParseMode(m.String())
		if !ok || got != m {
			t.Errorf("ParseMode(%q) = %v, %v", m.String(), got, ok)
		}
	}

	if _, ok := ParseMode("utf-32"); ok {
		t.Error("unknown mode name should fail")
	}
}
