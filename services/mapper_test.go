package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gi-scribe/models"
	"gi-scribe/schema"
)

func newTestMapper() *SectionMapper {
	return NewSectionMapper(schema.NewRegistry(schema.Default()), zap.NewNop())
}

func agriculturalResponse() models.RawResponse {
	return models.RawResponse{
		"Product Name":            "Alphonso Mango",
		"Region of Origin":        "Ratnagiri",
		"Select Product Category": "Agricultural Products",
		"Crop/Plant Type":         "Mangifera indica",
		"Soil Requirements":       "lateritic, well drained",
		"Current Challenges":      "spurious produce sold under the name",
	}
}

func TestBuildSectionsAlwaysSixSections(t *testing.T) {
	sm := newTestMapper()
	for _, cat := range append(models.Categories(), models.CategoryUnknown) {
		doc := sm.BuildSections(agriculturalResponse(), cat)
		require.Len(t, doc, 6, "category %s", cat)
		for _, name := range models.SectionNames() {
			assert.Contains(t, doc, name)
		}
	}
}

func TestBuildSectionsAgricultural(t *testing.T) {
	sm := newTestMapper()
	doc := sm.BuildSections(agriculturalResponse(), models.CategoryAgricultural)

	assert.Equal(t, "Mangifera indica", doc[models.SectionMethodology]["crop_plant_type"])
	assert.Equal(t, "lateritic, well drained", doc[models.SectionMethodology]["soil_requirements"])
	assert.Equal(t, "Alphonso Mango", doc[models.SectionAbstract]["product_name"])
	assert.Equal(t, "Ratnagiri", doc[models.SectionIntroduction]["region_of_origin"])
	assert.Equal(t, "spurious produce sold under the name", doc[models.SectionConclusion]["current_challenges"])

	// Fields of other categories never surface.
	for _, section := range models.SectionNames() {
		assert.NotContains(t, doc[section], "weaving_technique")
		assert.NotContains(t, doc[section], "type_of_handicraft")
	}
}

func TestBuildSectionsExtensionsOnlyMethodologyAndResults(t *testing.T) {
	sm := newTestMapper()
	resp := agriculturalResponse()

	base := sm.BuildSections(resp, models.CategoryUnknown)
	extended := sm.BuildSections(resp, models.CategoryAgricultural)

	assert.Equal(t, base[models.SectionAbstract], extended[models.SectionAbstract])
	assert.Equal(t, base[models.SectionIntroduction], extended[models.SectionIntroduction])
	assert.Equal(t, base[models.SectionLiteratureReview], extended[models.SectionLiteratureReview])
	assert.Equal(t, base[models.SectionConclusion], extended[models.SectionConclusion])
	assert.Greater(t, len(extended[models.SectionMethodology]), len(base[models.SectionMethodology]))
	assert.Greater(t, len(extended[models.SectionResults]), len(base[models.SectionResults]))
}

func TestBuildSectionsUnknownCategoryBaseOnly(t *testing.T) {
	sm := newTestMapper()
	doc := sm.BuildSections(agriculturalResponse(), models.CategoryUnknown)

	for _, section := range models.SectionNames() {
		wantKeys := make(map[string]bool, len(schema.SectionBase[section]))
		for _, label := range schema.SectionBase[section] {
			wantKeys[schema.SectionKey(label)] = true
		}
		require.Len(t, doc[section], len(wantKeys), "section %s", section)
		for key := range doc[section] {
			assert.True(t, wantKeys[key], "unexpected key %s in %s", key, section)
		}
	}
}

func TestBuildSectionsMissingValuesAreEmpty(t *testing.T) {
	sm := newTestMapper()
	doc := sm.BuildSections(models.RawResponse{"Product Name": "Kanchipuram Silk"}, models.CategoryTextile)

	assert.Equal(t, "Kanchipuram Silk", doc[models.SectionAbstract]["product_name"])
	assert.Contains(t, doc[models.SectionMethodology], "weaving_technique")
	assert.Equal(t, "", doc[models.SectionMethodology]["weaving_technique"])
}

func TestBuildSectionsDeterministic(t *testing.T) {
	sm := newTestMapper()
	resp := agriculturalResponse()
	first := sm.BuildSections(resp, models.CategoryAgricultural)
	second := sm.BuildSections(resp, models.CategoryAgricultural)
	assert.Equal(t, first, second)
}

// Every universal and closing field surfaces in at least one section.
func TestSectionBaseCoversUniversalAndClosingPools(t *testing.T) {
	covered := make(map[string]bool)
	for _, labels := range schema.SectionBase {
		for _, label := range labels {
			covered[label] = true
		}
	}
	s := schema.Default()
	for _, label := range s.Universal {
		assert.True(t, covered[label], "universal field %q not covered", label)
	}
	for _, label := range s.Closing {
		assert.True(t, covered[label], "closing field %q not covered", label)
	}
}

// Extension labels stay within their category's conditional pool.
func TestSectionExtensionsDrawFromOwnPool(t *testing.T) {
	s := schema.Default()
	for cat, ext := range schema.SectionExtensions {
		pool := make(map[string]bool, len(s.Conditional[cat]))
		for _, label := range s.Conditional[cat] {
			pool[label] = true
		}
		for _, label := range append(append([]string{}, ext.Methodology...), ext.Results...) {
			assert.True(t, pool[label], "category %s: %q not in its pool", cat, label)
		}
	}
}
