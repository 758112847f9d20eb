package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gi-scribe/models"
)

func testDraft() *models.PaperDraft {
	draft := &models.PaperDraft{
		UniqueID:    "alphonso-mango-ratnagiri",
		ProductName: "Alphonso Mango",
		Region:      "Ratnagiri",
		Category:    models.CategoryAgricultural,
		Title:       "Alphonso Mango: A Geographical Indication Analysis of Ratnagiri",
		Author:      "GI Research Team",
		Institution: "GI Research Institute",
		Keywords:    []string{"geographical indication", "mango"},
		References:  []string{"WIPO (2021). Geographical Indications: An Introduction."},
		Generated:   make(map[string]models.GeneratedSection),
	}
	for _, name := range models.SectionNames() {
		draft.Generated[name] = models.GeneratedSection{
			Name: name,
			Text: strings.Repeat("A sentence about "+name+". ", 40),
		}
	}
	return draft
}

func TestRenderProducesPDF(t *testing.T) {
	r := NewPDFRenderer(zap.NewNop())
	out, err := r.Render(testDraft())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "%PDF"))
	assert.Greater(t, len(out), 1000)
}

func TestRenderMinimalDraft(t *testing.T) {
	r := NewPDFRenderer(zap.NewNop())
	out, err := r.Render(&models.PaperDraft{
		Title: "Untitled Application",
		Generated: map[string]models.GeneratedSection{
			models.SectionAbstract: {Name: models.SectionAbstract, Text: "Short abstract."},
		},
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "%PDF"))
}

func TestHumanizeSection(t *testing.T) {
	assert.Equal(t, "Literature Review", humanizeSection(models.SectionLiteratureReview))
	assert.Equal(t, "Abstract", humanizeSection(models.SectionAbstract))
}
