package mocks

import (
	"context"
	"errors"

	"github.com/surveydash/survey-server/internal/repository/models"
	"github.com/surveydash/survey-server/pkg/csvnorm"
)

// MockSurveyRepository is a mock implementation of the SurveyRepository
// interface for testing the service layer.
type MockSurveyRepository struct {
	LoadFunc func(ctx context.Context, surveyType models.SurveyType) (*csvnorm.Dataset, error)
}

// Load implements the SurveyRepository interface
func (m *MockSurveyRepository) Load(ctx context.Context, surveyType models.SurveyType) (*csvnorm.Dataset, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx, surveyType)
	}
	return nil, errors.New("LoadFunc not implemented")
}
