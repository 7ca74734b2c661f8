package label

import (
	"fmt"

	"github.com/duncansachdeva/printlabel/internal/domain/models"
)

// Render validates fields and produces the complete payload for the
// given language and size. layout may be nil to use the built-in
// table. The result is self-contained: one language, one label, the
// copy count carried by the language's native directive (^PQ / P).
func Render(fields models.LabelFields, size models.PaperSize, lang models.Language, layout *models.LayoutSettings) (models.RenderedJob, error) {
	l := DefaultLayout(lang, size)
	if layout != nil {
		l = *layout
	}

	switch lang {
	case models.LangZPL:
		return RenderZPL(fields, size, l)
	case models.LangEPL:
		return RenderEPL(fields, size, l)
	}
	return models.RenderedJob{}, fmt.Errorf("unsupported label language %q", lang)
}
