package label

import (
	"fmt"
	"strings"

	"github.com/duncansachdeva/printlabel/internal/domain/models"
)

// RenderZPL builds a single ZPL label. The payload is delimited by
// ^XA/^XZ, positions fields per the layout, renders the UPC as a
// ^BU (UPC-A) barcode with human-readable digits and, for copies > 1,
// requests the count with ^PQ. A bare label already means one copy.
func RenderZPL(fields models.LabelFields, size models.PaperSize, l models.LayoutSettings) (models.RenderedJob, error) {
	upc12, err := validate(fields)
	if err != nil {
		return models.RenderedJob{}, err
	}

	width, height := size.Dots()

	title := truncate(SanitizeText(fields.Title, 64), l.TitleMaxChars)
	item := truncate(SanitizeText(fields.ItemNumber, 64), l.ItemMaxChars)
	casepack := truncate(fmt.Sprintf("%d", fields.Casepack), l.CaseMaxChars)

	var b strings.Builder
	b.WriteString("^XA")
	fmt.Fprintf(&b, "^PW%d", width)
	fmt.Fprintf(&b, "^LL%d", height)
	b.WriteString("^LH0,0")
	b.WriteString("^CI28")

	fmt.Fprintf(&b, "^FO%d,%d^A0N,%d,%d^FD%s^FS", l.XMargin, l.TitleY, l.TitleFont, l.TitleFont, title)
	fmt.Fprintf(&b, "^FO%d,%d^A0N,%d,%d^FDItem: %s^FS", l.XMargin, l.ItemY, l.TextFont, l.TextFont, item)
	fmt.Fprintf(&b, "^FO%d,%d^A0N,%d,%d^FDCasepack: %s^FS", l.XMargin, l.CaseY, l.TextFont, l.TextFont, casepack)

	// Module width from the layout, ratio and default height fixed;
	// the ^BU height argument overrides the default anyway.
	fmt.Fprintf(&b, "^BY%d,2,10", l.BarcodeNarrow)
	fmt.Fprintf(&b, "^FO%d,%d^BUN,%d,Y,N^FD%s^FS", l.XMargin, l.BarcodeY, l.BarcodeHeight, upc12)

	if fields.Copies > 1 {
		fmt.Fprintf(&b, "^PQ%d", fields.Copies)
	}
	b.WriteString("^XZ")

	return models.RenderedJob{Language: models.LangZPL, Payload: []byte(b.String())}, nil
}
