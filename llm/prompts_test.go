package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"gi-scribe/models"
)

func TestSectionPromptEmbedded(t *testing.T) {
	for _, section := range models.SectionNames() {
		prompt := SectionPrompt(section)
		assert.Contains(t, prompt, "{data}", "section %s", section)
		assert.NotContains(t, prompt, "{section}", "section %s should have a dedicated template", section)
	}
}

func TestSectionPromptUnknownSectionFallsBack(t *testing.T) {
	prompt := SectionPrompt("appendix")
	assert.Contains(t, prompt, "{data}")
	assert.Contains(t, prompt, `"appendix"`)
}

func TestFormatFields(t *testing.T) {
	got := FormatFields(map[string]string{
		"product_name":      "Alphonso Mango",
		"region_of_origin":  " Ratnagiri ",
		"soil_requirements": "",
	})

	want := strings.Join([]string{
		"Product name: Alphonso Mango",
		"Region of origin: Ratnagiri",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestFormatFieldsEmpty(t *testing.T) {
	assert.Equal(t, "", FormatFields(nil))
	assert.Equal(t, "", FormatFields(map[string]string{"a": "  "}))
}

func TestHumanizeKey(t *testing.T) {
	assert.Equal(t, "Crop plant type", humanizeKey("crop_plant_type"))
	assert.Equal(t, "", humanizeKey(""))
}
