package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"gi-scribe/models"
	"gi-scribe/schema"
)

func newTestClassifier() *Classifier {
	return NewClassifier(schema.NewRegistry(schema.Default()), zap.NewNop())
}

func TestClassifyNumericCodes(t *testing.T) {
	c := newTestClassifier()
	cases := map[string]models.Category{
		"1": models.CategoryAgricultural,
		"2": models.CategoryFood,
		"3": models.CategoryHandicraft,
		"4": models.CategoryTextile,
		"5": models.CategoryNatural,
		"6": models.CategoryUnknown,
		"0": models.CategoryUnknown,
	}
	for code, want := range cases {
		got := c.Classify(models.RawResponse{schema.LabelProductCategory: code})
		assert.Equal(t, want, got, "code %q", code)
	}
}

func TestClassifyFreeText(t *testing.T) {
	c := newTestClassifier()
	cases := map[string]models.Category{
		"Agricultural Products":            models.CategoryAgricultural,
		"Food & Beverages":                 models.CategoryFood,
		"Handicrafts & Artisanal Products": models.CategoryHandicraft,
		"Textiles & Fabrics":               models.CategoryTextile,
		"Natural Products & Extracts":      models.CategoryNatural,
		"Pottery":                          models.CategoryUnknown,
	}
	for text, want := range cases {
		got := c.Classify(models.RawResponse{schema.LabelProductCategory: text})
		assert.Equal(t, want, got, "text %q", text)
	}
}

func TestClassifyCodeAndNameAgree(t *testing.T) {
	c := newTestClassifier()
	byCode := c.Classify(models.RawResponse{schema.LabelProductCategory: "3"})
	byName := c.Classify(models.RawResponse{schema.LabelProductCategory: "Handicrafts & Artisanal Products"})
	assert.Equal(t, models.CategoryHandicraft, byCode)
	assert.Equal(t, byCode, byName)
}

func TestClassifyKeywordOrder(t *testing.T) {
	c := newTestClassifier()
	// Two keywords match; the first category in form order wins.
	got := c.Classify(models.RawResponse{schema.LabelProductCategory: "Agricultural and Natural Products"})
	assert.Equal(t, models.CategoryAgricultural, got)
}

func TestClassifyMissingOrEmpty(t *testing.T) {
	c := newTestClassifier()
	assert.Equal(t, models.CategoryUnknown, c.Classify(models.RawResponse{}))
	assert.Equal(t, models.CategoryUnknown, c.Classify(models.RawResponse{schema.LabelProductCategory: "   "}))
}

func TestClassifyLongLabelVariant(t *testing.T) {
	c := newTestClassifier()
	long := "Select Product Category \n\nChoose the category that best describes your product"
	got := c.Classify(models.RawResponse{long: "Textiles & Fabrics"})
	assert.Equal(t, models.CategoryTextile, got)
}
