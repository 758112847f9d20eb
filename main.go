package main

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"gi-scribe/config"
	"gi-scribe/llm"
	"gi-scribe/models"
	"gi-scribe/providers"
	"gi-scribe/providers/gsheets"
	"gi-scribe/providers/tabular"
	"gi-scribe/render"
	"gi-scribe/services"
	"gi-scribe/storage"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	papersGeneratedCounter prometheus.Counter
	sectionFallbackCounter prometheus.Counter
)

func init() {
	papersGeneratedCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "papers_generated_total",
			Help: "Total number of papers generated from form responses.",
		},
	)
	sectionFallbackCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "section_generation_failures_total",
			Help: "Total number of paper sections that fell back to placeholder text.",
		},
	)
	prometheus.MustRegister(papersGeneratedCounter, sectionFallbackCounter)
}

func apiKeyAuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.APISecretKey == "" {
			c.Next()
			return
		}
		apiKey := c.GetHeader("X-API-KEY")
		if apiKey != cfg.APISecretKey {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: Invalid API Key"})
			return
		}
		c.Next()
	}
}

func main() {
	logging, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("can't initialize zap logger: %v", err)
	}
	defer logging.Sync()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("Config load error", zap.Error(err))
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		logging.Fatal("Failed to connect to database", zap.Error(err))
	}
	logging.Info("Successfully connected to papers database.")

	if gin.Mode() == gin.DebugMode {
		logging.Info("Debug mode detected. Dropping tables for fresh start.")
		db.Migrator().DropTable(&models.GeneratedPaper{})
	}
	logging.Info("Running database auto-migration...")
	db.AutoMigrate(&models.GeneratedPaper{})

	s3Client, err := storage.NewS3Client(cfg)
	if err != nil {
		logging.Fatal("S3 client creation failed", zap.Error(err))
	}

	// Without an API key the service still runs; every section then carries
	// the placeholder text.
	var generator services.SectionGenerator
	if cfg.GeminiAPIKey != "" {
		gen, err := llm.NewGenerator(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel, logging)
		if err != nil {
			logging.Fatal("Gemini client creation failed", zap.Error(err))
		}
		generator = gen
	} else {
		logging.Warn("GEMINI_API_KEY not set, sections will use placeholder text")
	}

	renderer := render.NewPDFRenderer(logging)
	paperService := services.NewPaperService(cfg, db, s3Client, logging, generator, renderer)

	var sheetSource providers.ResponseSource
	if cfg.SpreadsheetID != "" {
		fetcher, err := gsheets.NewFetcher(context.Background(), cfg.GoogleCredentialsFile, cfg.SpreadsheetID, cfg.SheetName, logging)
		if err != nil {
			logging.Fatal("Sheets client creation failed", zap.Error(err))
		}
		sheetSource = fetcher
	} else {
		logging.Warn("SPREADSHEET_ID not set, sheet polling disabled")
	}

	router := gin.Default()
	router.Use(gin.Recovery())
	router.Use(apiKeyAuthMiddleware(cfg))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	setupHealthRoutes(router, cfg, generator != nil, sheetSource != nil)
	setupGenerateRoutes(router, cfg, paperService, sheetSource, logging)
	setupPreviewRoutes(router, paperService, logging)
	setupPaperRoutes(router, db, logging)

	if sheetSource != nil {
		cronScheduler := cron.New()
		cronScheduler.AddFunc(cfg.CronSchedule, func() {
			logging.Info("Running scheduled sheet poll...")
			count, err := paperService.RunSheetPoll(context.Background(), sheetSource)
			if err != nil {
				logging.Error("Cron job failed", zap.Error(err))
			} else {
				logging.Info("Cron job completed", zap.Int("new_papers", count))
				papersGeneratedCounter.Add(float64(count))
			}
		})
		cronScheduler.Start()
	}

	logging.Info("Starting server", zap.String("port", cfg.HTTPPort))
	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadTimeout:       30 * time.Second,
		ReadHeaderTimeout: 15 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logging.Fatal("Failed to run server", zap.Error(err))
	}
}

func setupHealthRoutes(router *gin.Engine, cfg *config.Config, generatorReady, sheetsReady bool) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "gi-scribe",
			"modules": gin.H{
				"generator": generatorReady,
				"sheets":    sheetsReady,
				"model":     cfg.GeminiModel,
			},
		})
	})
}

// recordResult bumps the metrics for one finished paper.
func recordResult(record *models.GeneratedPaper) {
	papersGeneratedCounter.Inc()
	if record.FallbackSections != "" {
		n := 1
		for _, r := range record.FallbackSections {
			if r == ',' {
				n++
			}
		}
		sectionFallbackCounter.Add(float64(n))
	}
}

// writePipelineError maps pipeline failures to HTTP status codes.
func writePipelineError(c *gin.Context, log *zap.Logger, err error) {
	var vErr *services.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": vErr.Error(), "missing": vErr.Missing})
	case errors.Is(err, providers.ErrAccessDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, providers.ErrSourceUnavailable):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	case errors.Is(err, llm.ErrGenerationFailed):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		log.Error("Paper generation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "paper generation failed"})
	}
}

func setupGenerateRoutes(router *gin.Engine, cfg *config.Config, paperService *services.PaperService, sheetSource providers.ResponseSource, log *zap.Logger) {
	rg := router.Group("/papers/generate")

	// POST /papers/generate - run the pipeline on a spreadsheet row.
	rg.POST("/", func(c *gin.Context) {
		var req struct {
			SpreadsheetID string   `json:"spreadsheet_id"`
			SheetName     string   `json:"sheet_name"`
			RowIndex      *int     `json:"row_index"`
			Title         string   `json:"title"`
			Author        string   `json:"author"`
			Institution   string   `json:"institution"`
			Keywords      []string `json:"keywords"`
			References    []string `json:"references"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		source := sheetSource
		if req.SpreadsheetID != "" && (sheetSource == nil || req.SpreadsheetID != cfg.SpreadsheetID) {
			sheetName := req.SheetName
			if sheetName == "" {
				sheetName = cfg.SheetName
			}
			fetcher, err := gsheets.NewFetcher(c.Request.Context(), cfg.GoogleCredentialsFile, req.SpreadsheetID, sheetName, log)
			if err != nil {
				log.Error("Sheets client creation failed", zap.Error(err))
				c.JSON(http.StatusBadGateway, gin.H{"error": "could not reach spreadsheet"})
				return
			}
			source = fetcher
		}
		if source == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no spreadsheet configured; pass spreadsheet_id"})
			return
		}

		responses, err := source.Fetch(c.Request.Context())
		if err != nil {
			writePipelineError(c, log, err)
			return
		}

		// Default: the most recent submission.
		idx := len(responses) - 1
		if req.RowIndex != nil {
			idx = *req.RowIndex
		}
		if idx < 0 || idx >= len(responses) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "row_index out of range", "responses": len(responses)})
			return
		}

		record, err := paperService.ProcessResponse(c.Request.Context(), responses[idx], services.GenerateOptions{
			Title:       req.Title,
			Author:      req.Author,
			Institution: req.Institution,
			Keywords:    req.Keywords,
			References:  req.References,
		})
		if err != nil {
			writePipelineError(c, log, err)
			return
		}
		recordResult(record)
		c.JSON(http.StatusCreated, record)
	})

	// POST /papers/generate/upload - run the pipeline on an uploaded CSV/XLSX.
	rg.POST("/upload", func(c *gin.Context) {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
			return
		}
		if !tabular.Supported(fileHeader.Filename) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported file type, want csv or xlsx"})
			return
		}
		f, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "could not read file"})
			return
		}
		defer f.Close()
		data, err := io.ReadAll(io.LimitReader(f, cfg.MaxUploadSize+1))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "could not read file"})
			return
		}

		reader := tabular.NewReader(cfg.MaxUploadSize, log)
		responses, err := reader.Read(fileHeader.Filename, data)
		if err != nil {
			if errors.Is(err, providers.ErrSourceUnavailable) {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		idx := len(responses) - 1
		if v := c.PostForm("row_index"); v != "" {
			parsed, err := strconv.Atoi(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "row_index must be a number"})
				return
			}
			idx = parsed
		}
		if idx < 0 || idx >= len(responses) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "row_index out of range", "responses": len(responses)})
			return
		}

		record, err := paperService.ProcessResponse(c.Request.Context(), responses[idx], services.GenerateOptions{
			Title:       c.PostForm("title"),
			Author:      c.PostForm("author"),
			Institution: c.PostForm("institution"),
		})
		if err != nil {
			writePipelineError(c, log, err)
			return
		}
		recordResult(record)
		c.JSON(http.StatusCreated, record)
	})
}

// setupPreviewRoutes exposes the core pipeline without generation or
// rendering, for workflow callers that only need the routed sections.
func setupPreviewRoutes(router *gin.Engine, paperService *services.PaperService, log *zap.Logger) {
	router.POST("/papers/preview-sections", func(c *gin.Context) {
		var req struct {
			Response map[string]string `json:"response" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body. 'response' field is required."})
			return
		}

		resp := models.RawResponse(req.Response)
		category := paperService.Classifier.Classify(resp)
		routed := paperService.Router.Route(resp, category)
		sections := paperService.Mapper.BuildSections(resp, category)

		c.JSON(http.StatusOK, gin.H{
			"category":      category,
			"routed_fields": routed,
			"sections":      sections,
		})
	})
}

func setupPaperRoutes(router *gin.Engine, db *gorm.DB, log *zap.Logger) {
	rg := router.Group("/papers")

	rg.GET("/", func(c *gin.Context) {
		var papers []models.GeneratedPaper
		if err := db.Order("created_at desc").Find(&papers).Error; err != nil {
			log.Error("Database query for all papers failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}
		c.JSON(http.StatusOK, papers)
	})

	rg.POST("/query", func(c *gin.Context) {
		type PaperQuery struct {
			UniqueID    string `json:"unique_id"`
			Category    string `json:"category"`
			Region      string `json:"region"`
			Status      string `json:"status"`
			CloudStored *bool  `json:"cloud_stored"`
			Limit       int    `json:"limit"`
		}

		var req PaperQuery
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		query := db.Model(&models.GeneratedPaper{})
		if req.UniqueID != "" {
			query = query.Where("unique_id = ?", req.UniqueID)
		}
		if req.Category != "" {
			query = query.Where("category = ?", req.Category)
		}
		if req.Region != "" {
			query = query.Where("region ILIKE ?", "%"+req.Region+"%")
		}
		if req.Status != "" {
			query = query.Where("status = ?", req.Status)
		}
		if req.CloudStored != nil {
			query = query.Where("cloud_stored = ?", *req.CloudStored)
		}
		if req.Limit > 0 {
			query = query.Limit(req.Limit)
		}

		var papers []models.GeneratedPaper
		if err := query.Order("created_at desc").Find(&papers).Error; err != nil {
			log.Error("Database query for papers failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}
		c.JSON(http.StatusOK, papers)
	})

	rg.GET("/:id", func(c *gin.Context) {
		id := c.Param("id")
		var paper models.GeneratedPaper
		if err := db.First(&paper, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "paper not found"})
				return
			}
			log.Error("Database error while fetching paper", zap.String("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}
		c.JSON(http.StatusOK, paper)
	})
}
