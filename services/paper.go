package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gi-scribe/config"
	"gi-scribe/llm"
	"gi-scribe/models"
	"gi-scribe/providers"
	"gi-scribe/schema"
	"gi-scribe/storage"
)

// Parallel Gemini calls per paper.
const maxParallelSections = 3

// SectionGenerator produces the prose for one paper section.
type SectionGenerator interface {
	GenerateSection(ctx context.Context, section string, fields map[string]string) (string, error)
}

// Renderer turns a finished draft into a paginated document.
type Renderer interface {
	Render(draft *models.PaperDraft) ([]byte, error)
}

// ValidationError reports required response fields that are missing.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "incomplete response: missing " + strings.Join(e.Missing, ", ")
}

// GenerateOptions carry per-request paper metadata.
type GenerateOptions struct {
	Title       string
	Author      string
	Institution string
	Keywords    []string
	References  []string
}

// PaperService orchestrates the full pipeline for one response: classify,
// route, map into sections, generate prose, render and store.
type PaperService struct {
	Config     *config.Config
	DB         *gorm.DB
	S3Client   *s3.Client
	Logger     *zap.Logger
	Registry   *schema.Registry
	Classifier *Classifier
	Router     *FieldRouter
	Mapper     *SectionMapper
	Generator  SectionGenerator
	Renderer   Renderer
}

// NewPaperService wires the core components around a shared registry.
// Generator, Renderer, DB and S3Client may be nil; the service degrades to
// placeholder text and skips the corresponding steps.
func NewPaperService(cfg *config.Config, db *gorm.DB, s3c *s3.Client, logger *zap.Logger, generator SectionGenerator, renderer Renderer) *PaperService {
	registry := schema.NewRegistry(schema.Default())
	return &PaperService{
		Config:     cfg,
		DB:         db,
		S3Client:   s3c,
		Logger:     logger,
		Registry:   registry,
		Classifier: NewClassifier(registry, logger),
		Router:     NewFieldRouter(registry, logger),
		Mapper:     NewSectionMapper(registry, logger),
		Generator:  generator,
		Renderer:   renderer,
	}
}

// ProduceDocument runs the core pipeline plus prose generation, without
// rendering or persistence. The six section calls run concurrently behind a
// bounded semaphore; failed sections carry placeholder text and are marked.
func (ps *PaperService) ProduceDocument(ctx context.Context, resp models.RawResponse, opts GenerateOptions) (*models.PaperDraft, error) {
	resp = ps.Registry.Canonicalize(resp)
	if err := ps.validate(resp); err != nil {
		return nil, err
	}

	category := ps.Classifier.Classify(resp)
	routed := ps.Router.Route(resp, category)
	sections := ps.Mapper.BuildSections(resp, category)

	productName := strings.TrimSpace(resp[schema.LabelProductName])
	region := strings.TrimSpace(resp[schema.LabelRegion])

	draft := &models.PaperDraft{
		UniqueID:    ps.responseUniqueID(resp),
		ProductName: productName,
		Region:      region,
		Category:    category,
		Title:       opts.Title,
		Author:      opts.Author,
		Institution: opts.Institution,
		Keywords:    opts.Keywords,
		Sections:    sections,
		Generated:   make(map[string]models.GeneratedSection, len(models.SectionNames())),
	}
	if draft.Title == "" {
		draft.Title = fmt.Sprintf("%s: A Geographical Indication Analysis of %s", productName, region)
	}
	if draft.Author == "" {
		draft.Author = ps.Config.DefaultAuthor
	}
	if draft.Institution == "" {
		draft.Institution = ps.Config.DefaultInstitution
	}
	refs, warnings := BuildReferenceList(opts.References)
	draft.References = refs
	for _, w := range warnings {
		ps.Logger.Warn("reference list cleanup", zap.String("warning", w))
	}

	log := ps.Logger.With(
		zap.String("unique_id", draft.UniqueID),
		zap.String("category", category.String()))
	log.Info("generating paper sections", zap.Int("routed_fields", len(routed)))

	var wg sync.WaitGroup
	var mu sync.Mutex
	sem := make(chan struct{}, maxParallelSections)
	for _, name := range models.SectionNames() {
		wg.Add(1)
		go func(section string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			fields := sections[section]
			text, fallback := ps.generateSection(ctx, log, section, fields)
			mu.Lock()
			draft.Generated[section] = models.GeneratedSection{
				Name:     section,
				Text:     text,
				Fallback: fallback,
			}
			mu.Unlock()
		}(name)
	}
	wg.Wait()

	if fb := draft.FallbackSections(); len(fb) > 0 {
		log.Warn("sections fell back to placeholder text", zap.Strings("sections", fb))
	}
	return draft, nil
}

func (ps *PaperService) generateSection(ctx context.Context, log *zap.Logger, section string, fields map[string]string) (string, bool) {
	if ps.Generator == nil {
		return fallbackSectionText(section, fields), true
	}
	text, err := ps.Generator.GenerateSection(ctx, section, fields)
	if err != nil {
		log.Error("section generation failed", zap.String("section", section), zap.Error(err))
		return fallbackSectionText(section, fields), true
	}
	return text, false
}

// fallbackSectionText is the clearly marked placeholder for a section the
// generator could not produce. The routed data survives verbatim so the
// rendered paper stays reviewable.
func fallbackSectionText(section string, fields map[string]string) string {
	data := llm.FormatFields(fields)
	if data == "" {
		data = "No application data was submitted for this section."
	}
	return "[Automated placeholder - text generation was unavailable for this section.]\n\n" +
		"The submitted application data is reproduced below for manual review.\n\n" + data
}

// ProcessResponse runs ProduceDocument, renders the PDF, uploads it and
// upserts the GeneratedPaper record keyed by unique application ID.
func (ps *PaperService) ProcessResponse(ctx context.Context, resp models.RawResponse, opts GenerateOptions) (*models.GeneratedPaper, error) {
	draft, err := ps.ProduceDocument(ctx, resp, opts)
	if err != nil {
		return nil, err
	}

	sectionsJSON, err := json.Marshal(draft.Generated)
	if err != nil {
		return nil, fmt.Errorf("marshal sections: %w", err)
	}
	record := &models.GeneratedPaper{
		UniqueID:         draft.UniqueID,
		ProductName:      draft.ProductName,
		Category:         draft.Category.String(),
		Region:           draft.Region,
		Title:            draft.Title,
		Author:           draft.Author,
		Institution:      draft.Institution,
		SectionsJSON:     sectionsJSON,
		FallbackSections: strings.Join(draft.FallbackSections(), ","),
		Status:           models.StatusGenerated,
	}

	if ps.Renderer != nil {
		pdf, renderErr := ps.Renderer.Render(draft)
		if renderErr != nil {
			ps.Logger.Error("paper rendering failed", zap.String("unique_id", draft.UniqueID), zap.Error(renderErr))
			record.Status = models.StatusFailed
		} else {
			now := time.Now()
			record.RenderedAt = &now
			record.Status = models.StatusRendered

			if ps.S3Client != nil {
				key := "papers/" + draft.UniqueID + ".pdf"
				link, upErr := storage.UploadPDF(ctx, ps.S3Client, ps.Config, key, pdf)
				if upErr != nil {
					ps.Logger.Error("paper upload failed", zap.String("key", key), zap.Error(upErr))
				} else {
					uploaded := time.Now()
					record.S3Link = link
					record.CloudStored = true
					record.UploadedAt = &uploaded
					record.Status = models.StatusUploaded
				}
			}
		}
	}

	if ps.DB != nil {
		err = ps.DB.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "unique_id"}},
			UpdateAll: true,
		}).Create(record).Error
		if err != nil {
			return nil, fmt.Errorf("store paper: %w", err)
		}
	}
	return record, nil
}

// RunSheetPoll fetches all responses from source and processes the ones
// whose unique application ID is not stored yet. Returns the number of
// papers produced.
func (ps *PaperService) RunSheetPoll(ctx context.Context, source providers.ResponseSource) (int, error) {
	responses, err := source.Fetch(ctx)
	if err != nil {
		return 0, err
	}

	processed := 0
	for i, resp := range responses {
		resp = ps.Registry.Canonicalize(resp)
		uid := ps.responseUniqueID(resp)

		if ps.DB != nil {
			var count int64
			if err := ps.DB.Model(&models.GeneratedPaper{}).Where("unique_id = ?", uid).Count(&count).Error; err != nil {
				ps.Logger.Error("lookup of stored paper failed", zap.String("unique_id", uid), zap.Error(err))
				continue
			}
			if count > 0 {
				continue
			}
		}

		if _, err := ps.ProcessResponse(ctx, resp, GenerateOptions{}); err != nil {
			ps.Logger.Error("response processing failed",
				zap.String("source", source.Name()),
				zap.Int("row", i+2),
				zap.Error(err))
			continue
		}
		processed++
	}
	ps.Logger.Info("sheet poll finished",
		zap.String("source", source.Name()),
		zap.Int("responses", len(responses)),
		zap.Int("new_papers", processed))
	return processed, nil
}

func (ps *PaperService) validate(resp models.RawResponse) error {
	var missing []string
	if strings.TrimSpace(resp[schema.LabelProductName]) == "" {
		missing = append(missing, "product name")
	}
	if strings.TrimSpace(resp[schema.LabelRegion]) == "" {
		missing = append(missing, "region of origin")
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

// responseUniqueID prefers the form's unique application ID and falls back
// to a slug of product name and region.
func (ps *PaperService) responseUniqueID(resp models.RawResponse) string {
	if id := strings.TrimSpace(resp[schema.LabelUniqueID]); id != "" {
		return slugify(id)
	}
	return slugify(resp[schema.LabelProductName] + " " + resp[schema.LabelRegion])
}

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	lastDash := true
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteRune('-')
				lastDash = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
