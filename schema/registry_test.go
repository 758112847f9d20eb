package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gi-scribe/models"
)

func TestRegistryResolvesDriftedLabels(t *testing.T) {
	reg := NewRegistry(Default())

	cases := []struct {
		drifted string
		want    string
	}{
		{" Region of Origin", LabelRegion},
		{"region of origin", LabelRegion},
		{"Product Name", LabelProductName},
		{"Product Name ( Exact name you want to register for GI protection)", LabelProductName},
		{"Type of Textile", "Type of Textile*"},
		{"Select Product Category \n\nChoose the category that best describes your product", LabelProductCategory},
		{"Cultural Evolution (How has production evolved while maintaining traditional character?)", "Cultural Evolution  (How has production evolved while maintaining traditional character?)"},
		{" Seeds/Planting Material (Source and characteristics of traditional seeds or planting material used)", "Seeds/Planting Material (Source and characteristics of traditional seeds or planting material used)"},
	}
	for _, tc := range cases {
		got, ok := reg.Resolve(tc.drifted)
		require.True(t, ok, "label %q should resolve", tc.drifted)
		assert.Equal(t, tc.want, got)
	}
}

func TestRegistryAmbiguousShortTitles(t *testing.T) {
	reg := NewRegistry(Default())

	// "Traditional Uses" exists in both the textile and the natural pool;
	// the bare short title must not resolve to either.
	_, ok := reg.Resolve("Traditional Uses")
	assert.False(t, ok)

	// The full labels stay resolvable.
	got, ok := reg.Resolve("Traditional Uses (How is this textile traditionally used in society?)")
	require.True(t, ok)
	assert.Equal(t, "Traditional Uses (How is this textile traditionally used in society?)", got)
}

func TestRegistryUnknownLabel(t *testing.T) {
	reg := NewRegistry(Default())
	_, ok := reg.Resolve("Favourite Color")
	assert.False(t, ok)
}

func TestCanonicalize(t *testing.T) {
	reg := NewRegistry(Default())
	resp := models.RawResponse{
		"Product Name":       "Alphonso Mango",
		" Region of Origin":  "Ratnagiri",
		"Favourite Color":    "blue",
	}
	got := reg.Canonicalize(resp)

	assert.Equal(t, "Alphonso Mango", got[LabelProductName])
	assert.Equal(t, "Ratnagiri", got[LabelRegion])
	assert.Equal(t, "blue", got["Favourite Color"])

	// Input stays untouched, output is stable under repetition.
	assert.Equal(t, "Alphonso Mango", resp["Product Name"])
	assert.Equal(t, got, reg.Canonicalize(got))
}
