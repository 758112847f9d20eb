package models

// Paper section names in render order.
const (
	SectionAbstract         = "abstract"
	SectionIntroduction     = "introduction"
	SectionLiteratureReview = "literature_review"
	SectionMethodology      = "methodology"
	SectionResults          = "results"
	SectionConclusion       = "conclusion"
)

// SectionNames returns the six paper sections in render order.
func SectionNames() []string {
	return []string{
		SectionAbstract,
		SectionIntroduction,
		SectionLiteratureReview,
		SectionMethodology,
		SectionResults,
		SectionConclusion,
	}
}

// SectionedDocument maps each section name to its normalized field keys and
// values. Built once per response; treated as read-only afterwards.
type SectionedDocument map[string]map[string]string

// GeneratedSection is the prose produced for one section. Fallback marks
// sections that received the templated placeholder instead of generated text.
type GeneratedSection struct {
	Name     string `json:"name"`
	Text     string `json:"text"`
	Fallback bool   `json:"fallback"`
}

// PaperDraft is a fully assembled paper before rendering and persistence.
type PaperDraft struct {
	UniqueID    string
	ProductName string
	Region      string
	Category    Category

	Title       string
	Author      string
	Institution string
	Keywords    []string
	References  []string

	Sections  SectionedDocument
	Generated map[string]GeneratedSection
}

// FallbackSections lists the sections that fell back to placeholder text,
// in render order.
func (d *PaperDraft) FallbackSections() []string {
	var out []string
	for _, name := range SectionNames() {
		if sec, ok := d.Generated[name]; ok && sec.Fallback {
			out = append(out, name)
		}
	}
	return out
}
