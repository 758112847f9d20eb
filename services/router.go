package services

import (
	"strings"

	"go.uber.org/zap"

	"gi-scribe/models"
	"gi-scribe/schema"
)

// Values treated as "not answered" besides the empty string.
var unavailableValues = map[string]bool{
	"n/a":            true,
	"na":             true,
	"none":           true,
	"nil":            true,
	"-":              true,
	"not available":  true,
	"not applicable": true,
}

// FieldRouter selects the fields of a response that are relevant for its
// category: the universal pool, the category's conditional pool, and the
// closing pool. Everything else is dropped, as are unanswered fields.
type FieldRouter struct {
	registry *schema.Registry
	logger   *zap.Logger
}

func NewFieldRouter(registry *schema.Registry, logger *zap.Logger) *FieldRouter {
	return &FieldRouter{registry: registry, logger: logger}
}

// Route returns the relevant canonical-label -> value subset of resp. For
// CategoryUnknown only the universal and closing pools apply. Values are
// trimmed; a fresh map is returned on every call.
func (fr *FieldRouter) Route(resp models.RawResponse, cat models.Category) map[string]string {
	resp = fr.registry.Canonicalize(resp)
	s := fr.registry.Schema()

	relevant := make([]string, 0, len(s.Universal)+len(s.Closing)+len(s.Conditional[cat]))
	relevant = append(relevant, s.Universal...)
	relevant = append(relevant, s.Conditional[cat]...)
	relevant = append(relevant, s.Closing...)

	out := make(map[string]string, len(relevant))
	for _, label := range relevant {
		value, ok := resp[label]
		if !ok || isUnavailable(value) {
			continue
		}
		out[label] = strings.TrimSpace(value)
	}
	fr.logger.Debug("routed response fields",
		zap.String("category", cat.String()),
		zap.Int("kept", len(out)),
		zap.Int("dropped", len(resp)-len(out)))
	return out
}

func isUnavailable(value string) bool {
	t := strings.ToLower(strings.TrimSpace(value))
	return t == "" || unavailableValues[t]
}
