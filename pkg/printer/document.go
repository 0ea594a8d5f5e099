package printer

import (
	"bytes"
	"fmt"
	"strings"
)

// ESC/POS command bytes
const (
	escByte = 0x1B
	gsByte  = 0x1D
	lfByte  = 0x0A
)

// Text alignment
const (
	AlignLeft   = 0
	AlignCenter = 1
	AlignRight  = 2
)

// Font size
const (
	FontNormal = 0x00
	FontDouble = 0x11 // double width + double height
)

// Width58mm is the character width of 58mm thermal paper.
const Width58mm = 32

// Document builds an ESC/POS byte stream for a thermal receipt.
type Document struct {
	buf   bytes.Buffer
	width int
}

// NewDocument creates an initialized document with the given character
// width. Anything below 1 falls back to 58mm paper.
func NewDocument(charWidth int) *Document {
	if charWidth <= 0 {
		charWidth = Width58mm
	}
	d := &Document{width: charWidth}
	d.buf.Write([]byte{escByte, '@'})
	return d
}

// LineFeed advances the paper one line.
func (d *Document) LineFeed() *Document {
	d.buf.WriteByte(lfByte)
	return d
}

// FeedLines advances the paper n lines.
func (d *Document) FeedLines(n int) *Document {
	for i := 0; i < n; i++ {
		d.buf.WriteByte(lfByte)
	}
	return d
}

// SetAlign sets text alignment: AlignLeft, AlignCenter, AlignRight.
func (d *Document) SetAlign(align int) *Document {
	d.buf.Write([]byte{escByte, 'a', byte(align)})
	return d
}

// SetBold enables or disables bold text.
func (d *Document) SetBold(on bool) *Document {
	b := byte(0)
	if on {
		b = 1
	}
	d.buf.Write([]byte{escByte, 'E', b})
	return d
}

// SetFontSize sets the character size, FontNormal or FontDouble.
func (d *Document) SetFontSize(size byte) *Document {
	d.buf.Write([]byte{gsByte, '!', size})
	return d
}

// Text writes a line of text followed by a line feed.
func (d *Document) Text(s string) *Document {
	d.buf.WriteString(s)
	d.buf.WriteByte(lfByte)
	return d
}

// Separator prints a full-width separator line.
func (d *Document) Separator(char byte) *Document {
	d.buf.WriteString(strings.Repeat(string(char), d.width))
	d.buf.WriteByte(lfByte)
	return d
}

// KeyValue prints a left-aligned key and a right-aligned value on one line.
func (d *Document) KeyValue(key, value string) *Document {
	spaces := d.width - len(key) - len(value)
	if spaces < 1 {
		spaces = 1
	}
	d.buf.WriteString(key)
	d.buf.WriteString(strings.Repeat(" ", spaces))
	d.buf.WriteString(value)
	d.buf.WriteByte(lfByte)
	return d
}

// ItemRow prints one receipt line: the item name, then an indented
// "qty x price" detail with the subtotal right-aligned.
func (d *Document) ItemRow(name string, qty int, price, subtotal string) *Document {
	d.Text(Ellipsize(name, d.width))

	detail := fmt.Sprintf("  %d x %s", qty, price)
	spaces := d.width - len(detail) - len(subtotal)
	if spaces < 1 {
		spaces = 1
	}
	d.buf.WriteString(detail)
	d.buf.WriteString(strings.Repeat(" ", spaces))
	d.buf.WriteString(subtotal)
	d.buf.WriteByte(lfByte)
	return d
}

// Cut sends the paper cut command.
func (d *Document) Cut() *Document {
	d.buf.Write([]byte{gsByte, 'V', 0x00})
	return d
}

// Bytes returns the accumulated ESC/POS byte stream.
func (d *Document) Bytes() []byte {
	return d.buf.Bytes()
}

// Ellipsize shortens a name that does not fit the given width.
func Ellipsize(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
