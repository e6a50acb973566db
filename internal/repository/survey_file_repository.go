package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/surveydash/survey-server/internal/repository/models"
	"github.com/surveydash/survey-server/pkg/csvnorm"
)

// SurveyFileRepository loads survey datasets from CSV exports on disk. The
// source files live outside the web root and are read fresh on every call;
// nothing is retained between loads.
type SurveyFileRepository struct {
	dataDir    string
	files      map[models.SurveyType]string
	normalizer *csvnorm.Normalizer
}

func NewSurveyFileRepository(dataDir string, files map[models.SurveyType]string, normalizer *csvnorm.Normalizer) *SurveyFileRepository {
	if normalizer == nil {
		normalizer = csvnorm.New()
	}
	return &SurveyFileRepository{
		dataDir:    dataDir,
		files:      files,
		normalizer: normalizer,
	}
}

// Load resolves the survey type to its configured file, reads it and runs
// the normalizer on its contents.
func (r *SurveyFileRepository) Load(ctx context.Context, surveyType models.SurveyType) (*csvnorm.Dataset, error) {
	name, ok := r.files[surveyType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", models.ErrInvalidSurveyType, surveyType)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := filepath.Join(r.dataDir, name)
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read survey file %s: %w", path, err)
	}

	dataset, err := r.normalizer.Normalize(string(raw))
	if err != nil {
		return nil, fmt.Errorf("normalize survey file %s: %w", path, err)
	}

	return dataset, nil
}
