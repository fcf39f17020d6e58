package main

import (
	"log"
	"log/slog"
	"net/http"

	"github.com/csg33k/hr-review-portal/internal/adapters/onboardingapi"
	"github.com/csg33k/hr-review-portal/internal/adapters/pdf"
	sqliteadapter "github.com/csg33k/hr-review-portal/internal/adapters/sqlite"
	"github.com/csg33k/hr-review-portal/internal/config"
	"github.com/csg33k/hr-review-portal/internal/handlers"
	"github.com/csg33k/hr-review-portal/internal/review"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	logger := cfg.Logger()
	slog.SetDefault(logger)

	repo, err := sqliteadapter.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer repo.Close()

	api := onboardingapi.New(cfg.APIURL,
		onboardingapi.WithTimeout(cfg.HTTPTimeout),
		onboardingapi.WithLogger(logger),
	)
	h := handlers.New(api, repo, pdf.New(),
		handlers.WithTable(review.NewTable(cfg.EndpointOverrides)),
		handlers.WithAssetBaseURL(cfg.AssetBaseURL),
		handlers.WithHRUserID(cfg.HRUserID),
		handlers.WithLogger(logger),
	)

	slog.Info("HR review portal running", "url", "http://localhost:"+cfg.Port)
	slog.Info("configuration", "db", cfg.DBPath, "api", cfg.APIURL, "endpoint_overrides", len(cfg.EndpointOverrides))
	if err := http.ListenAndServe(":"+cfg.Port, h.Routes()); err != nil {
		log.Fatal(err)
	}
}
