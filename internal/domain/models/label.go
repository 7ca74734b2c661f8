package models

// Language identifies the command language a payload is written in.
type Language string

const (
	LangZPL Language = "ZPL"
	LangEPL Language = "EPL"
)

// LanguageOverride is the user-facing language selection. Auto defers
// to name-based detection.
type LanguageOverride string

const (
	OverrideAuto LanguageOverride = "Auto"
	OverrideZPL  LanguageOverride = "ZPL"
	OverrideEPL  LanguageOverride = "EPL"
)

// Language returns the forced language and true when the override is
// explicit, or false when detection should decide.
func (o LanguageOverride) Language() (Language, bool) {
	switch o {
	case OverrideZPL:
		return LangZPL, true
	case OverrideEPL:
		return LangEPL, true
	}
	return "", false
}

// PaperSize identifies one of the supported label stocks.
type PaperSize string

const (
	SizeTwoByOne  PaperSize = "2x1"
	SizeFourBySix PaperSize = "4x6"
)

// DPI is the print resolution all coordinates are expressed in.
const DPI = 203

// Dots returns the label width and height in dots at 203 dpi.
// Unknown sizes fall back to 4x6, same as the layout tables.
func (s PaperSize) Dots() (width, height int) {
	if s == SizeTwoByOne {
		return DPI * 2, DPI
	}
	return DPI * 4, DPI * 6
}

// LabelFields carries the user input for a single print action.
type LabelFields struct {
	ItemNumber string `json:"item_number"`
	UPC        string `json:"upc"` // 11 or 12 digits
	Title      string `json:"title"`
	Casepack   int    `json:"casepack"`
	Copies     int    `json:"copies"`
}

// RenderedJob is a complete, single-language payload ready for raw
// submission. It is immutable once produced.
type RenderedJob struct {
	Language Language
	Payload  []byte
}

// PrinterInfo describes one installed printer as reported by the
// spooler.
type PrinterInfo struct {
	Name      string
	IsDefault bool
}
