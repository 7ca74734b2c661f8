package label

import "github.com/duncansachdeva/printlabel/internal/domain/models"

type layoutKey struct {
	lang models.Language
	size models.PaperSize
}

// Default field positions per (language, size), in dots at 203 dpi.
// Kept as one flat table rather than branching inside the renderers so
// the renderers stay pure formatting. The per-language tables differ
// slightly because EPL bitmap fonts and ZPL scalable fonts occupy
// different heights for comparable point sizes.
var defaultLayouts = map[layoutKey]models.LayoutSettings{
	{models.LangZPL, models.SizeTwoByOne}: {
		XMargin: 20, TitleY: 10, ItemY: 50, CaseY: 80, BarcodeY: 110,
		TitleFont: 30, TextFont: 24,
		BarcodeHeight: 80, BarcodeNarrow: 2, BarcodeWide: 4, BarcodeHRI: "B",
		TitleMaxChars: 36, ItemMaxChars: 36, CaseMaxChars: 36,
	},
	{models.LangZPL, models.SizeFourBySix}: {
		XMargin: 20, TitleY: 40, ItemY: 110, CaseY: 160, BarcodeY: 220,
		TitleFont: 48, TextFont: 36,
		BarcodeHeight: 300, BarcodeNarrow: 2, BarcodeWide: 4, BarcodeHRI: "B",
		TitleMaxChars: 36, ItemMaxChars: 36, CaseMaxChars: 36,
	},
	{models.LangEPL, models.SizeTwoByOne}: {
		XMargin: 20, TitleY: 8, ItemY: 40, CaseY: 66, BarcodeY: 88,
		TitleFont: 3, TextFont: 3, FontMulX: 1, FontMulY: 1,
		BarcodeHeight: 60, BarcodeNarrow: 2, BarcodeWide: 4, BarcodeHRI: "B",
		TitleMaxChars: 36, ItemMaxChars: 36, CaseMaxChars: 36,
	},
	{models.LangEPL, models.SizeFourBySix}: {
		XMargin: 40, TitleY: 40, ItemY: 110, CaseY: 160, BarcodeY: 210,
		TitleFont: 4, TextFont: 3, FontMulX: 1, FontMulY: 1,
		BarcodeHeight: 280, BarcodeNarrow: 2, BarcodeWide: 4, BarcodeHRI: "B",
		TitleMaxChars: 36, ItemMaxChars: 36, CaseMaxChars: 36,
	},
}

// DefaultLayout returns the built-in layout for a (language, size)
// pair. Unknown sizes fall back to 4x6.
func DefaultLayout(lang models.Language, size models.PaperSize) models.LayoutSettings {
	if l, ok := defaultLayouts[layoutKey{lang, size}]; ok {
		return l
	}
	return defaultLayouts[layoutKey{lang, models.SizeFourBySix}]
}
