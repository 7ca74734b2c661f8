package label

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/duncansachdeva/printlabel/internal/domain/models"
)

// RenderEPL builds a single EPL2 label: clear buffer (N), label
// geometry (q/Q), A-command text lines, a U-type (UPC-A) barcode with
// human-readable digits and a terminating P command that always
// carries the copy count, even for a single copy — EPL prints nothing
// without it. Lines are CRLF-terminated and the payload is encoded to
// CP850, the code page LP2844-class firmware ships with.
func RenderEPL(fields models.LabelFields, size models.PaperSize, l models.LayoutSettings) (models.RenderedJob, error) {
	upc12, err := validate(fields)
	if err != nil {
		return models.RenderedJob{}, err
	}

	width, height := size.Dots()

	title := eplText(truncate(sanitizeCP850(fields.Title, 64), l.TitleMaxChars))
	item := eplText(truncate(sanitizeCP850(fields.ItemNumber, 64), l.ItemMaxChars))
	casepack := truncate(fmt.Sprintf("%d", fields.Casepack), l.CaseMaxChars)

	var b strings.Builder
	line := func(format string, args ...interface{}) {
		fmt.Fprintf(&b, format, args...)
		b.WriteString("\r\n")
	}

	line("N")
	line("q%d", width)
	line("Q%d,24", height)

	line(`A%d,%d,0,%d,%d,%d,N,"%s"`, l.XMargin, l.TitleY, l.TitleFont, l.FontMulX, l.FontMulY, title)
	line(`A%d,%d,0,%d,%d,%d,N,"Item: %s"`, l.XMargin, l.ItemY, l.TextFont, l.FontMulX, l.FontMulY, item)
	line(`A%d,%d,0,%d,%d,%d,N,"Casepack: %s"`, l.XMargin, l.CaseY, l.TextFont, l.FontMulX, l.FontMulY, casepack)

	// Barcode data is unquoted for the U symbology.
	line("B%d,%d,0,U,%d,%d,%d,%s,%s", l.XMargin, l.BarcodeY, l.BarcodeNarrow, l.BarcodeWide, l.BarcodeHeight, l.BarcodeHRI, upc12)

	line("P%d", fields.Copies)

	encoded, _, err := transform.String(charmap.CodePage850.NewEncoder(), b.String())
	if err != nil {
		return models.RenderedJob{}, fmt.Errorf("encoding EPL payload: %w", err)
	}

	return models.RenderedJob{Language: models.LangEPL, Payload: []byte(encoded)}, nil
}

// eplText keeps text safe inside A-command double quotes.
func eplText(s string) string {
	return strings.ReplaceAll(s, `"`, `'`)
}

// sanitizeCP850 keeps printable characters the LP2844 code page can
// represent, so accented titles print instead of being dropped.
// Control characters and anything CP850 has no byte for are removed;
// the payload encode then cannot fail.
func sanitizeCP850(value string, max int) string {
	out := make([]rune, 0, len(value))
	for _, r := range value {
		if r < 0x20 || r == 0x7f {
			continue
		}
		if _, ok := charmap.CodePage850.EncodeRune(r); ok {
			out = append(out, r)
		}
	}
	if len(out) > max {
		out = out[:max]
	}
	return string(out)
}
