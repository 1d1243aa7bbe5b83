package printer

import (
	"bytes"
	"testing"
)

func TestKeyValueAlignsToWidth(t *testing.T) {
	doc := NewDocument(20)
	doc.KeyValue("Subtotal", "$100.00")

	if !bytes.Contains(doc.Bytes(), []byte("Subtotal     $100.00\n")) {
		t.Fatalf("unexpected stream %q", doc.Bytes())
	}
}

func TestItemLineTruncatesLongNames(t *testing.T) {
	doc := NewDocument(20)
	doc.ItemLine(2, "Tratamiento de keratina premium", "$950.00")

	out := doc.Bytes()
	idx := bytes.IndexByte(out, '2')
	line := out[idx:]
	if end := bytes.IndexByte(line, '\n'); end >= 0 {
		line = line[:end]
	}
	if len(line) > 20 {
		t.Fatalf("line exceeds paper width: %q", line)
	}
	if !bytes.HasSuffix(line, []byte("$950.00")) {
		t.Fatalf("amount pushed off the line: %q", line)
	}
}

func TestConfigSelectsBackend(t *testing.T) {
	if _, err := NewPrinterFromConfig("usb", "", ""); err == nil {
		t.Errorf("expected usb without a path to fail")
	}
	if _, err := NewPrinterFromConfig("laser", "", ""); err == nil {
		t.Errorf("expected unknown type to fail")
	}
	p, err := NewPrinterFromConfig("", "", "")
	if err != nil {
		t.Fatalf("default type: %v", err)
	}
	if p.IsConnected() {
		t.Errorf("null printer should report disconnected")
	}
	if err := p.Print([]byte("x")); err != nil {
		t.Errorf("null printer should swallow jobs, got %v", err)
	}
}
