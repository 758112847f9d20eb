package schema

import "gi-scribe/models"

// Registry resolves incoming field labels to their canonical schema labels.
// Real response sheets drift from the form: leading or doubled spaces, a
// dropped asterisk, or the long two-line category label. All variants of one
// field resolve to the same canonical label.
type Registry struct {
	schema *FieldSchema
	byNorm map[string]string
}

// NewRegistry builds the lookup table for s. Both the full label and its
// short title are registered; a short title shared by two different fields
// (e.g. "Traditional Uses" in two pools) stays ambiguous and resolves only
// via the full label.
func NewRegistry(s *FieldSchema) *Registry {
	r := &Registry{
		schema: s,
		byNorm: make(map[string]string),
	}
	ambiguous := make(map[string]bool)
	add := func(form, canonical string) {
		if form == "" || ambiguous[form] {
			return
		}
		if existing, ok := r.byNorm[form]; ok && existing != canonical {
			delete(r.byNorm, form)
			ambiguous[form] = true
			return
		}
		r.byNorm[form] = canonical
	}
	for _, label := range s.Labels() {
		add(normalizeLabel(label), label)
		add(normalizeLabel(ShortLabel(label)), label)
	}
	for variant, canonical := range labelAliases {
		add(normalizeLabel(variant), canonical)
	}
	return r
}

// Resolve maps a possibly drifted label to its canonical schema label.
func (r *Registry) Resolve(label string) (string, bool) {
	canonical, ok := r.byNorm[normalizeLabel(label)]
	return canonical, ok
}

// Canonicalize rewrites the response keys to canonical labels. Labels the
// schema does not know are kept verbatim; the router drops them later.
// Idempotent, and the input map is left untouched.
func (r *Registry) Canonicalize(resp models.RawResponse) models.RawResponse {
	out := make(models.RawResponse, len(resp))
	for label, value := range resp {
		if canonical, ok := r.Resolve(label); ok {
			out[canonical] = value
			continue
		}
		out[label] = value
	}
	return out
}

// Schema returns the schema this registry was built from.
func (r *Registry) Schema() *FieldSchema {
	return r.schema
}
