package label

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duncansachdeva/printlabel/internal/domain/models"
)

func TestRenderEPLRoundTrip(t *testing.T) {
	job, err := Render(widgetFields(), models.SizeFourBySix, models.LangEPL, nil)
	require.NoError(t, err)
	require.Equal(t, models.LangEPL, job.Language)

	payload := string(job.Payload)
	assert.True(t, strings.HasPrefix(payload, "N\r\n"))
	assert.True(t, strings.HasSuffix(payload, "P2\r\n"))
	assert.Contains(t, payload, "q812\r\n")
	assert.Contains(t, payload, "Q1218,24\r\n")
	assert.Contains(t, payload, ",U,2,4,280,B,012345678905\r\n")
	assert.Contains(t, payload, `"Widget"`)
	assert.Contains(t, payload, `"Item: 1234"`)
	assert.Contains(t, payload, `"Casepack: 12"`)
}

func TestRenderEPLAlwaysEmitsPrintCommand(t *testing.T) {
	f := widgetFields()
	f.Copies = 1
	job, err := Render(f, models.SizeTwoByOne, models.LangEPL, nil)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(job.Payload), "P1\r\n"))
}

func TestRenderEPLCopyCount(t *testing.T) {
	for _, n := range []int{1, 2, 40} {
		f := widgetFields()
		f.Copies = n
		job, err := Render(f, models.SizeFourBySix, models.LangEPL, nil)
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(string(job.Payload), fmt.Sprintf("P%d\r\n", n)))
	}
}

func TestRenderEPLSingleLanguage(t *testing.T) {
	// EPL output must never leak ZPL framing.
	job, err := Render(widgetFields(), models.SizeTwoByOne, models.LangEPL, nil)
	require.NoError(t, err)
	assert.NotContains(t, string(job.Payload), "^XA")
	assert.NotContains(t, string(job.Payload), "^XZ")
}

func TestRenderEPLDeterministic(t *testing.T) {
	first, err := Render(widgetFields(), models.SizeTwoByOne, models.LangEPL, nil)
	require.NoError(t, err)
	second, err := Render(widgetFields(), models.SizeTwoByOne, models.LangEPL, nil)
	require.NoError(t, err)
	assert.Equal(t, first.Payload, second.Payload)
}

func TestRenderEPLAccentedTitle(t *testing.T) {
	f := widgetFields()
	f.Title = "Café Münster"

	job, err := Render(f, models.SizeTwoByOne, models.LangEPL, nil)
	require.NoError(t, err)

	// CP850 bytes for é and ü; the UTF-8 forms must not leak through.
	assert.Contains(t, string(job.Payload), "\"Caf\x82 M\x81nster\"")
	assert.NotContains(t, string(job.Payload), "é")
	assert.NotContains(t, string(job.Payload), "ü")
}

func TestRenderEPLQuotesInTitle(t *testing.T) {
	f := widgetFields()
	f.Title = `6" Widget`
	job, err := Render(f, models.SizeTwoByOne, models.LangEPL, nil)
	require.NoError(t, err)
	assert.Contains(t, string(job.Payload), `"6' Widget"`)
}

func TestDefaultLayoutFallsBackToFourBySix(t *testing.T) {
	got := DefaultLayout(models.LangZPL, models.PaperSize("8x10"))
	assert.Equal(t, DefaultLayout(models.LangZPL, models.SizeFourBySix), got)
}
