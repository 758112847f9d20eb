package services

import (
	"strings"

	"go.uber.org/zap"

	"gi-scribe/models"
	"gi-scribe/schema"
)

// Numeric answer codes from the form's category question, in question order.
var categoryCodes = map[string]models.Category{
	"1": models.CategoryAgricultural,
	"2": models.CategoryFood,
	"3": models.CategoryHandicraft,
	"4": models.CategoryTextile,
	"5": models.CategoryNatural,
}

// Keyword per category for free-text answers. Matched by containment in
// enumeration order, first hit wins.
var categoryKeywords = map[models.Category]string{
	models.CategoryAgricultural: "Agricultural",
	models.CategoryFood:         "Food",
	models.CategoryHandicraft:   "Handicraft",
	models.CategoryTextile:      "Textile",
	models.CategoryNatural:      "Natural",
}

// Classifier assigns a form response to its product category.
type Classifier struct {
	registry *schema.Registry
	logger   *zap.Logger
}

func NewClassifier(registry *schema.Registry, logger *zap.Logger) *Classifier {
	return &Classifier{registry: registry, logger: logger}
}

// Classify reads the category field (any known label variant) and resolves
// it: numeric codes through the ordinal table, free text by keyword
// containment, anything else Unknown. Never fails.
func (c *Classifier) Classify(resp models.RawResponse) models.Category {
	resp = c.registry.Canonicalize(resp)
	value := strings.TrimSpace(resp[schema.LabelProductCategory])
	if value == "" {
		return models.CategoryUnknown
	}
	if cat, ok := categoryCodes[value]; ok {
		return cat
	}
	for _, cat := range models.Categories() {
		if strings.Contains(value, categoryKeywords[cat]) {
			return cat
		}
	}
	c.logger.Debug("unrecognized category answer", zap.String("value", value))
	return models.CategoryUnknown
}
