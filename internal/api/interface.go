package api

import (
	"context"

	"github.com/surveydash/survey-server/internal/repository/models"
	"github.com/surveydash/survey-server/internal/service"
	"github.com/surveydash/survey-server/pkg/csvnorm"
)

type SurveyService interface {
	Records(ctx context.Context, surveyType models.SurveyType) ([]csvnorm.Record, error)
	Summary(ctx context.Context, surveyType models.SurveyType) (service.SurveySummary, error)
	Distributions(ctx context.Context, surveyType models.SurveyType) ([]service.QuestionDistribution, error)
}
