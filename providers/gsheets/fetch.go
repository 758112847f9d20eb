// Package gsheets reads form responses from a Google Sheets response sheet
// via a service account. Row one carries the field labels, every following
// row is one submission.
package gsheets

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"gi-scribe/models"
	"gi-scribe/providers"
)

// Fetcher is a providers.ResponseSource backed by one spreadsheet tab.
type Fetcher struct {
	svc           *sheets.Service
	spreadsheetID string
	sheetName     string
	logger        *zap.Logger
}

// NewFetcher builds a read-only Sheets client from a service-account
// credentials file.
func NewFetcher(ctx context.Context, credentialsFile, spreadsheetID, sheetName string, logger *zap.Logger) (*Fetcher, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsReadonlyScope),
	)
	if err != nil {
		return nil, fmt.Errorf("sheets client: %w", err)
	}
	return &Fetcher{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
		logger:        logger,
	}, nil
}

func (f *Fetcher) Name() string {
	return "gsheets"
}

// Fetch reads the whole tab. A 403 from the API maps to ErrAccessDenied,
// any other transport failure and an empty tab map to ErrSourceUnavailable.
func (f *Fetcher) Fetch(ctx context.Context) ([]models.RawResponse, error) {
	resp, err := f.svc.Spreadsheets.Values.Get(f.spreadsheetID, f.sheetName).Context(ctx).Do()
	if err != nil {
		var gerr *googleapi.Error
		if errors.As(err, &gerr) && (gerr.Code == 403 || gerr.Code == 401) {
			return nil, fmt.Errorf("%w: spreadsheet %s: %v", providers.ErrAccessDenied, f.spreadsheetID, err)
		}
		return nil, fmt.Errorf("%w: spreadsheet %s: %v", providers.ErrSourceUnavailable, f.spreadsheetID, err)
	}
	if len(resp.Values) < 2 {
		return nil, fmt.Errorf("%w: spreadsheet %s holds no responses", providers.ErrSourceUnavailable, f.spreadsheetID)
	}

	header := make([]string, len(resp.Values[0]))
	for i, cell := range resp.Values[0] {
		header[i] = strings.TrimSpace(fmt.Sprint(cell))
	}

	rows := make([]models.RawResponse, 0, len(resp.Values)-1)
	for _, row := range resp.Values[1:] {
		r := make(models.RawResponse, len(header))
		for i, label := range header {
			if label == "" {
				continue
			}
			if i < len(row) {
				r[label] = fmt.Sprint(row[i])
			} else {
				r[label] = ""
			}
		}
		rows = append(rows, r)
	}
	f.logger.Info("fetched responses from sheet",
		zap.String("spreadsheet_id", f.spreadsheetID),
		zap.String("sheet", f.sheetName),
		zap.Int("responses", len(rows)))
	return rows, nil
}
