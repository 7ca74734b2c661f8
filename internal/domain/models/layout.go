package models

// LayoutSettings describes where fields land on the label, in dots at
// 203 dpi. One instance is always tied to a (language, size) pair:
// TitleFont/TextFont are ^A0 glyph heights for ZPL and font selectors
// (1-5) for EPL.
type LayoutSettings struct {
	XMargin  int `json:"x_margin"`
	TitleY   int `json:"title_y"`
	ItemY    int `json:"item_y"`
	CaseY    int `json:"case_y"`
	BarcodeY int `json:"barcode_y"`

	TitleFont int `json:"title_font"`
	TextFont  int `json:"text_font"`
	// EPL font multipliers; ignored by the ZPL renderer.
	FontMulX int `json:"font_mul_x"`
	FontMulY int `json:"font_mul_y"`

	BarcodeHeight int    `json:"barcode_height"`
	BarcodeNarrow int    `json:"barcode_narrow"`
	BarcodeWide   int    `json:"barcode_wide"`
	BarcodeHRI    string `json:"barcode_hri"` // "B" below, "N" none (EPL)

	TitleMaxChars int `json:"title_max_chars"`
	ItemMaxChars  int `json:"item_max_chars"`
	CaseMaxChars  int `json:"case_max_chars"`
}

// SavedItem is one row of the print history.
type SavedItem struct {
	ID         int64  `json:"id"`
	ItemNumber string `json:"item_number"`
	UPC        string `json:"upc"`
	Title      string `json:"title"`
	Casepack   int    `json:"casepack"`
	CreatedAt  string `json:"created_at"`
}

// LastUsed remembers the printer selection between runs.
type LastUsed struct {
	PrinterName string           `json:"printer_name"`
	Override    LanguageOverride `json:"language"`
	Size        PaperSize        `json:"size"`
}
