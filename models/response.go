package models

// RawResponse is one form submission: verbatim field labels mapped to the
// submitted values. Labels may carry the source form's whitespace quirks;
// canonicalization happens in the schema registry, not here.
type RawResponse map[string]string

// Clone returns an independent copy of the response.
func (r RawResponse) Clone() RawResponse {
	out := make(RawResponse, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
