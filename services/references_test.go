package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildReferenceList(t *testing.T) {
	ordered, warnings := BuildReferenceList([]string{
		"Giovannucci, D. (2009). Guide to Geographical Indications",
		"  ",
		"giovannucci, d. (2009). guide to geographical indications",
		"WIPO (2021). Geographical Indications: An Introduction.",
	})

	assert.Equal(t, []string{
		"Giovannucci, D. (2009). Guide to Geographical Indications",
		"WIPO (2021). Geographical Indications: An Introduction.",
	}, ordered)
	assert.Len(t, warnings, 1)
}

func TestBuildReferenceListEmpty(t *testing.T) {
	ordered, warnings := BuildReferenceList(nil)
	assert.Empty(t, ordered)
	assert.Empty(t, warnings)
}

func TestFormatReference(t *testing.T) {
	assert.Equal(t, "[1] WIPO (2021). An Introduction.", FormatReference(1, "WIPO (2021). An Introduction."))
	assert.Equal(t, "[2] Giovannucci, D. (2009). Guide.", FormatReference(2, " Giovannucci, D. (2009). Guide "))
}

func TestBuildKeywordLine(t *testing.T) {
	assert.Equal(t, "geographical indication, mango, Ratnagiri",
		BuildKeywordLine([]string{"geographical indication", " mango ", "", "Ratnagiri"}))
	assert.Equal(t, "", BuildKeywordLine(nil))
}
