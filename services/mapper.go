package services

import (
	"strings"

	"go.uber.org/zap"

	"gi-scribe/models"
	"gi-scribe/schema"
)

// SectionMapper shapes a response into the six paper sections. Every section
// starts from its category-invariant base set; the classified category adds
// its extension fields to methodology and results only. Missing answers
// appear as empty strings so downstream prompts see a stable shape.
type SectionMapper struct {
	registry *schema.Registry
	logger   *zap.Logger
}

func NewSectionMapper(registry *schema.Registry, logger *zap.Logger) *SectionMapper {
	return &SectionMapper{registry: registry, logger: logger}
}

// BuildSections returns a fresh SectionedDocument for resp. Deterministic:
// the same response and category always produce the same document.
func (sm *SectionMapper) BuildSections(resp models.RawResponse, cat models.Category) models.SectionedDocument {
	resp = sm.registry.Canonicalize(resp)

	doc := make(models.SectionedDocument, len(models.SectionNames()))
	for _, section := range models.SectionNames() {
		fields := make(map[string]string)
		for _, label := range schema.SectionBase[section] {
			fields[schema.SectionKey(label)] = strings.TrimSpace(resp[label])
		}
		doc[section] = fields
	}

	ext, ok := schema.SectionExtensions[cat]
	if !ok {
		return doc
	}
	for _, label := range ext.Methodology {
		doc[models.SectionMethodology][schema.SectionKey(label)] = strings.TrimSpace(resp[label])
	}
	for _, label := range ext.Results {
		doc[models.SectionResults][schema.SectionKey(label)] = strings.TrimSpace(resp[label])
	}
	return doc
}
