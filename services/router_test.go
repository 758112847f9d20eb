package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"gi-scribe/models"
	"gi-scribe/schema"
)

const (
	labelWeaving    = "Weaving Technique ( Specific weaving techniques and methods used)"
	labelCropType   = "Crop/Plant Type (Scientific name and variety of the plant/crop)"
	labelHandicraft = "Type of Handicraft"
	labelChallenges = "Current Challenges (Main challenges facing production and marketing)"
)

func newTestRouter() *FieldRouter {
	return NewFieldRouter(schema.NewRegistry(schema.Default()), zap.NewNop())
}

func TestRouteKeepsOnlyRelevantPools(t *testing.T) {
	fr := newTestRouter()
	resp := models.RawResponse{
		schema.LabelProductName: "Alphonso Mango",
		schema.LabelRegion:      "Ratnagiri",
		labelCropType:           "Mangifera indica",
		labelWeaving:            "double ikat",
		labelHandicraft:         "pottery",
		labelChallenges:         "market access",
	}

	out := fr.Route(resp, models.CategoryAgricultural)

	assert.Equal(t, "Alphonso Mango", out[schema.LabelProductName])
	assert.Equal(t, "Mangifera indica", out[labelCropType])
	assert.Equal(t, "market access", out[labelChallenges])
	assert.NotContains(t, out, labelWeaving)
	assert.NotContains(t, out, labelHandicraft)
}

func TestRouteUnknownCategory(t *testing.T) {
	fr := newTestRouter()
	resp := models.RawResponse{
		schema.LabelProductName: "Mystery Product",
		labelCropType:           "should be dropped",
		labelWeaving:            "should be dropped",
		labelChallenges:         "kept, closing pool",
	}

	out := fr.Route(resp, models.CategoryUnknown)

	assert.Contains(t, out, schema.LabelProductName)
	assert.Contains(t, out, labelChallenges)
	assert.NotContains(t, out, labelCropType)
	assert.NotContains(t, out, labelWeaving)
}

func TestRouteDropsUnknownLabels(t *testing.T) {
	fr := newTestRouter()
	out := fr.Route(models.RawResponse{
		schema.LabelProductName: "Alphonso Mango",
		"Favourite Color":       "blue",
	}, models.CategoryAgricultural)

	assert.NotContains(t, out, "Favourite Color")
}

func TestRouteSuppressesUnansweredValues(t *testing.T) {
	fr := newTestRouter()
	resp := models.RawResponse{
		schema.LabelProductName: "Alphonso Mango",
		schema.LabelRegion:      "   ",
		labelCropType:           "N/A",
		labelChallenges:         "-",
		schema.LabelCommonNames: "none",
		schema.LabelUniqueID:    "Not Applicable",
	}

	out := fr.Route(resp, models.CategoryAgricultural)

	assert.Equal(t, map[string]string{schema.LabelProductName: "Alphonso Mango"}, out)
}

func TestRouteTrimsValues(t *testing.T) {
	fr := newTestRouter()
	out := fr.Route(models.RawResponse{
		schema.LabelProductName: "  Alphonso Mango  ",
	}, models.CategoryAgricultural)

	assert.Equal(t, "Alphonso Mango", out[schema.LabelProductName])
}

func TestRouteResolvesDriftedLabels(t *testing.T) {
	fr := newTestRouter()
	out := fr.Route(models.RawResponse{
		"Product Name":      "Alphonso Mango",
		" Region of Origin": "Ratnagiri",
	}, models.CategoryAgricultural)

	assert.Equal(t, "Alphonso Mango", out[schema.LabelProductName])
	assert.Equal(t, "Ratnagiri", out[schema.LabelRegion])
}
