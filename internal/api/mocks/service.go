package mocks

import (
	"context"
	"errors"

	"github.com/surveydash/survey-server/internal/repository/models"
	"github.com/surveydash/survey-server/internal/service"
	"github.com/surveydash/survey-server/pkg/csvnorm"
)

// MockSurveyService is a mock implementation of the SurveyService interface
// for testing the HTTP handlers.
type MockSurveyService struct {
	RecordsFunc       func(ctx context.Context, surveyType models.SurveyType) ([]csvnorm.Record, error)
	SummaryFunc       func(ctx context.Context, surveyType models.SurveyType) (service.SurveySummary, error)
	DistributionsFunc func(ctx context.Context, surveyType models.SurveyType) ([]service.QuestionDistribution, error)
}

// Records implements the SurveyService interface
func (m *MockSurveyService) Records(ctx context.Context, surveyType models.SurveyType) ([]csvnorm.Record, error) {
	if m.RecordsFunc != nil {
		return m.RecordsFunc(ctx, surveyType)
	}
	return nil, errors.New("RecordsFunc not implemented")
}

// Summary implements the SurveyService interface
func (m *MockSurveyService) Summary(ctx context.Context, surveyType models.SurveyType) (service.SurveySummary, error) {
	if m.SummaryFunc != nil {
		return m.SummaryFunc(ctx, surveyType)
	}
	return service.SurveySummary{}, errors.New("SummaryFunc not implemented")
}

// Distributions implements the SurveyService interface
func (m *MockSurveyService) Distributions(ctx context.Context, surveyType models.SurveyType) ([]service.QuestionDistribution, error) {
	if m.DistributionsFunc != nil {
		return m.DistributionsFunc(ctx, surveyType)
	}
	return nil, errors.New("DistributionsFunc not implemented")
}
