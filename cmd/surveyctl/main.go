// surveyctl loads a survey CSV export and prints its aggregates as tables.
// It reads either one of the configured survey types or an arbitrary file.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/surveydash/survey-server/internal/config"
	"github.com/surveydash/survey-server/internal/report"
	"github.com/surveydash/survey-server/internal/repository"
	"github.com/surveydash/survey-server/internal/repository/models"
	"github.com/surveydash/survey-server/internal/service"
	"github.com/surveydash/survey-server/pkg/csvnorm"
)

func main() {
	_ = godotenv.Load(".env")

	cfg := config.LoadFromEnv()

	file := flag.String("file", "", "path to a survey CSV export; overrides -type")
	surveyType := flag.String("type", "opening", "survey type: opening or closing")
	flag.Parse()

	normalizer := csvnorm.New(csvnorm.WithAnchors(cfg.HeaderAnchors...))

	dataset, err := loadDataset(cfg, normalizer, *file, *surveyType)
	if err != nil {
		log.Fatalf("Failed to load survey data: %v", err)
	}

	summary, err := service.Summarize(dataset)
	if err != nil {
		log.Fatalf("Cannot summarize survey: %v", err)
	}

	distributions, err := service.RankedDistributions(dataset)
	if err != nil {
		log.Fatalf("Cannot build distributions: %v", err)
	}

	fmt.Println(report.Render(summary, distributions))
}

func loadDataset(cfg *config.Config, normalizer *csvnorm.Normalizer, file, surveyType string) (*csvnorm.Dataset, error) {
	if file != "" {
		raw, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", file, err)
		}
		return normalizer.Normalize(string(raw))
	}

	parsed, err := models.ParseSurveyType(surveyType)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, surveyType)
	}

	repo := repository.NewSurveyFileRepository(cfg.DataDir, map[models.SurveyType]string{
		models.SurveyTypeOpening: cfg.OpeningSurveyFile,
		models.SurveyTypeClosing: cfg.ClosingSurveyFile,
	}, normalizer)

	return repo.Load(context.Background(), parsed)
}
