package providers

import (
	"context"
	"errors"

	"gi-scribe/models"
)

// ResponseSource is the interface every response origin (Google Sheets,
// uploaded files) implements. The pipeline does not care where a response
// comes from.
type ResponseSource interface {
	// Fetch returns all form responses in sheet order, as label -> value maps.
	Fetch(ctx context.Context) ([]models.RawResponse, error)

	// Name returns the unique name of the source (e.g. "gsheets").
	Name() string
}

// Failure kinds reported by response sources, checked with errors.Is.
var (
	// ErrAccessDenied: the source exists but rejected our credentials.
	ErrAccessDenied = errors.New("response source: access denied")

	// ErrSourceUnavailable: the source could not be reached or holds no responses.
	ErrSourceUnavailable = errors.New("response source: unavailable")
)
