package service

import (
	"context"

	"github.com/surveydash/survey-server/internal/repository/models"
	"github.com/surveydash/survey-server/pkg/csvnorm"
)

// SurveyRepository defines the interface for dataset loading operations for service.
type SurveyRepository interface {
	Load(ctx context.Context, surveyType models.SurveyType) (*csvnorm.Dataset, error)
}
