// Package label holds the pure core of the application: language
// detection, field validation and ZPL/EPL payload rendering. Nothing
// here touches the OS; everything is deterministic and testable.
package label

import (
	"strings"

	"github.com/duncansachdeva/printlabel/internal/domain/models"
)

// nameRule maps a printer-name substring to a command language. Rules
// are checked in order, first match wins.
type nameRule struct {
	substr string
	lang   models.Language
}

// Known Zebra families. The LP2844 generation is EPL-only; the ZM/Z
// series speak ZPL natively.
var nameRules = []nameRule{
	{"lp2844", models.LangEPL},
	{"lp 2844", models.LangEPL},
	{"2844", models.LangEPL},
	{"zm", models.LangZPL},
	{"zpl", models.LangZPL},
	{"zebra z", models.LangZPL},
}

// Detect resolves the command language for a printer. An explicit
// override always wins; otherwise the printer name is matched against
// the rule table case-insensitively. Unknown names default to ZPL, the
// more common dialect on current hardware. Detect never fails.
func Detect(printerName string, override models.LanguageOverride) models.Language {
	if lang, ok := override.Language(); ok {
		return lang
	}

	lower := strings.ToLower(printerName)
	for _, r := range nameRules {
		if strings.Contains(lower, r.substr) {
			return r.lang
		}
	}
	return models.LangZPL
}
