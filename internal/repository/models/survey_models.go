package models

import "errors"

// SurveyType selects which of the two configured source files to load.
type SurveyType string

const (
	SurveyTypeOpening SurveyType = "opening"
	SurveyTypeClosing SurveyType = "closing"
)

var ErrInvalidSurveyType = errors.New("invalid survey type")

// ParseSurveyType validates a raw request parameter against the accepted
// survey type literals.
func ParseSurveyType(raw string) (SurveyType, error) {
	switch SurveyType(raw) {
	case SurveyTypeOpening:
		return SurveyTypeOpening, nil
	case SurveyTypeClosing:
		return SurveyTypeClosing, nil
	default:
		return "", ErrInvalidSurveyType
	}
}
