package printer

import (
	"bytes"
	"fmt"
	"strings"
)

const (
	esc = 0x1B
	gs  = 0x1D
	lf  = 0x0A
)

// Alignment values for SetAlign.
const (
	AlignLeft   = 0
	AlignCenter = 1
	AlignRight  = 2
)

// Character sizes for SetFontSize.
const (
	FontNormal byte = 0x00
	FontDouble byte = 0x11 // double width and height
)

// Document accumulates an ESC/POS byte stream for one receipt. Width is
// the paper width in characters: 32 for 58mm rolls, 48 for 80mm.
type Document struct {
	buf   bytes.Buffer
	width int
}

// NewDocument starts an initialized document at the given character width.
func NewDocument(charWidth int) *Document {
	if charWidth <= 0 {
		charWidth = 32
	}
	d := &Document{width: charWidth}
	d.buf.Write([]byte{esc, '@'})
	return d
}

// LineFeed advances one line.
func (d *Document) LineFeed() *Document {
	d.buf.WriteByte(lf)
	return d
}

// FeedLines advances n lines, used to push the tail past the cutter.
func (d *Document) FeedLines(n int) *Document {
	for i := 0; i < n; i++ {
		d.buf.WriteByte(lf)
	}
	return d
}

// SetAlign sets the text alignment for subsequent lines.
func (d *Document) SetAlign(align int) *Document {
	d.buf.Write([]byte{esc, 'a', byte(align)})
	return d
}

// SetBold toggles emphasized printing.
func (d *Document) SetBold(on bool) *Document {
	b := byte(0)
	if on {
		b = 1
	}
	d.buf.Write([]byte{esc, 'E', b})
	return d
}

// SetFontSize sets the character size.
func (d *Document) SetFontSize(size byte) *Document {
	d.buf.Write([]byte{gs, '!', size})
	return d
}

// Text writes one line.
func (d *Document) Text(s string) *Document {
	d.buf.WriteString(s)
	d.buf.WriteByte(lf)
	return d
}

// TextF writes one formatted line.
func (d *Document) TextF(format string, args ...interface{}) *Document {
	return d.Text(fmt.Sprintf(format, args...))
}

// Separator writes a rule across the full paper width.
func (d *Document) Separator(char byte) *Document {
	return d.Text(strings.Repeat(string(char), d.width))
}

// KeyValue writes a label on the left and an amount flush right.
func (d *Document) KeyValue(key, value string) *Document {
	pad := d.width - len(key) - len(value)
	if pad < 1 {
		key = truncate(key, d.width-len(value)-1)
		pad = 1
	}
	d.buf.WriteString(key)
	d.buf.WriteString(strings.Repeat(" ", pad))
	return d.Text(value)
}

// ItemLine writes a receipt line as "QTYx name" with the total flush
// right. Long service names are truncated to keep the amount on the line.
func (d *Document) ItemLine(qty int, name, total string) *Document {
	return d.KeyValue(fmt.Sprintf("%dx %s", qty, name), total)
}

// Cut triggers a full paper cut.
func (d *Document) Cut() *Document {
	d.buf.Write([]byte{gs, 'V', 0x00})
	return d
}

// Bytes returns the accumulated stream.
func (d *Document) Bytes() []byte {
	return d.buf.Bytes()
}

func truncate(s string, max int) string {
	if max < 1 {
		return ""
	}
	if len(s) <= max {
		return s
	}
	return s[:max]
}
