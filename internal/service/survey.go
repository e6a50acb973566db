package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/surveydash/survey-server/internal/repository/models"
	"github.com/surveydash/survey-server/pkg/csvnorm"
)

var (
	ErrNoData        = errors.New("no survey data")
	ErrSourceFailure = errors.New("survey source failure")
)

const (
	labelStronglyAgree = "Strongly Agree"
	labelAgree         = "Agree"
	labelDisagree      = "Disagree"
)

// LikertScale is the fixed seven-point response set, ordered from most
// positive to most negative. Values outside this set are ignored by the
// aggregation routines.
var LikertScale = []string{
	"Strongly Agree",
	"Agree",
	"Somewhat Agree",
	"Neutral",
	"Somewhat Disagree",
	"Disagree",
	"Strongly Disagree",
}

// metadataColumns are respondent fields that must never classify as
// questions, whatever their values look like.
var metadataColumns = map[string]struct{}{
	"First Name":   {},
	"Last Name":    {},
	"Title":        {},
	"Organization": {},
}

// ClassifyQuestions returns the columns that look like Likert survey items,
// in file-column order. Classification samples the first record only; it is
// not re-validated against later rows.
func ClassifyQuestions(dataset *csvnorm.Dataset) []string {
	if dataset == nil || len(dataset.Records) == 0 {
		return nil
	}

	first := dataset.Records[0]
	var questions []string
	for _, column := range dataset.Columns {
		value := first[column]
		if value == "" {
			continue
		}
		if !strings.Contains(value, "Agree") && !strings.Contains(value, "Disagree") {
			continue
		}
		if strings.HasPrefix(column, "Response") || strings.Contains(column, "ID") {
			continue
		}
		if _, ok := metadataColumns[column]; ok {
			continue
		}
		questions = append(questions, column)
	}
	return questions
}

// RankQuestions orders questions descending by their exact "Strongly Agree"
// count. The sort is stable, so ties keep file-column order.
func RankQuestions(dataset *csvnorm.Dataset, questions []string) []string {
	ranked := make([]string, len(questions))
	copy(ranked, questions)

	sort.SliceStable(ranked, func(i, j int) bool {
		return countResponses(dataset, ranked[i], labelStronglyAgree) > countResponses(dataset, ranked[j], labelStronglyAgree)
	})
	return ranked
}

// Distribution counts each Likert category for one question. Empty cells and
// values outside the scale are excluded from both the counts and the
// percentage denominator; zero-count categories are omitted.
func Distribution(dataset *csvnorm.Dataset, question string) QuestionDistribution {
	counts := make(map[string]int, len(LikertScale))
	total := 0
	for _, label := range LikertScale {
		n := countResponses(dataset, question, label)
		counts[label] = n
		total += n
	}

	distribution := QuestionDistribution{Question: question}
	if total == 0 {
		return distribution
	}

	for _, label := range LikertScale {
		if counts[label] == 0 {
			continue
		}
		distribution.Responses = append(distribution.Responses, ResponseCount{
			Label:      label,
			Count:      counts[label],
			Percentage: roundPercent(counts[label], total),
		})
	}
	return distribution
}

// RankedDistributions builds the distribution for every classified question,
// in ranked order.
func RankedDistributions(dataset *csvnorm.Dataset) ([]QuestionDistribution, error) {
	questions := ClassifyQuestions(dataset)
	if len(dataset.Records) == 0 || len(questions) == 0 {
		return nil, ErrNoData
	}

	ranked := RankQuestions(dataset, questions)
	distributions := make([]QuestionDistribution, 0, len(ranked))
	for _, question := range ranked {
		distributions = append(distributions, Distribution(dataset, question))
	}
	return distributions, nil
}

// Summarize computes the executive summary over all classified questions.
//
// Positive-response rates use the total record count as denominator, unlike
// Distribution which uses the non-empty response count. The lowest-rated
// entry reports the exact "Disagree" rate rather than a positive rate. Both
// asymmetries match the dashboard's published numbers and are kept on
// purpose.
func Summarize(dataset *csvnorm.Dataset) (SurveySummary, error) {
	questions := ClassifyQuestions(dataset)
	total := len(dataset.Records)
	if total == 0 || len(questions) == 0 {
		return SurveySummary{}, ErrNoData
	}

	positiveRates := make(map[string]int, len(questions))
	ratesSum := 0
	for _, question := range questions {
		positive := countResponses(dataset, question, labelStronglyAgree) + countResponses(dataset, question, labelAgree)
		rate := roundPercent(positive, total)
		positiveRates[question] = rate
		ratesSum += rate
	}

	ranked := RankQuestions(dataset, questions)
	top := ranked[0]
	bottom := ranked[len(ranked)-1]

	averages := make(map[string]int, len(LikertScale))
	for _, label := range LikertScale {
		averages[label] = CategoryAverage(dataset, questions, label)
	}

	return SurveySummary{
		ExecutiveSummary: ExecutiveSummary{
			TotalResponses: total,
			HighestRated: RatedQuestion{
				Question:   top,
				Percentage: positiveRates[top],
			},
			LowestRated: RatedQuestion{
				Question:   bottom,
				Percentage: roundPercent(countResponses(dataset, bottom, labelDisagree), total),
			},
			OverallSatisfaction: int(math.Round(float64(ratesSum) / float64(len(questions)))),
		},
		CategoryAverages: averages,
	}, nil
}

// CategoryAverage is the mean percentage of one response label across the
// given questions, each over the total record count.
func CategoryAverage(dataset *csvnorm.Dataset, questions []string, label string) int {
	total := len(dataset.Records)
	if total == 0 || len(questions) == 0 {
		return 0
	}

	sum := 0
	for _, question := range questions {
		sum += roundPercent(countResponses(dataset, question, label), total)
	}
	return int(math.Round(float64(sum) / float64(len(questions))))
}

func countResponses(dataset *csvnorm.Dataset, question, label string) int {
	count := 0
	for _, record := range dataset.Records {
		if record[question] == label {
			count++
		}
	}
	return count
}

func roundPercent(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(count) / float64(total)))
}

// SurveyService handles dataset loading and survey aggregation.
type SurveyService struct {
	datasets SurveyRepository
	logger   *zap.Logger
}

// NewSurveyService creates a new SurveyService instance.
func NewSurveyService(datasets SurveyRepository, logger *zap.Logger) *SurveyService {
	if datasets == nil {
		panic("datasets must not be nil")
	}
	if logger == nil {
		l, _ := zap.NewProduction()
		logger = l
	}
	return &SurveyService{
		datasets: datasets,
		logger:   logger,
	}
}

// Records loads a survey dataset and returns its normalized records.
func (s *SurveyService) Records(ctx context.Context, surveyType models.SurveyType) ([]csvnorm.Record, error) {
	dataset, err := s.load(ctx, surveyType)
	if err != nil {
		return nil, err
	}

	s.logger.Info("loaded survey records",
		zap.String("survey_type", string(surveyType)),
		zap.Int("records", len(dataset.Records)))

	return dataset.Records, nil
}

// Summary loads a survey dataset and computes its executive summary.
func (s *SurveyService) Summary(ctx context.Context, surveyType models.SurveyType) (SurveySummary, error) {
	dataset, err := s.load(ctx, surveyType)
	if err != nil {
		return SurveySummary{}, err
	}

	summary, err := Summarize(dataset)
	if err != nil {
		return SurveySummary{}, err
	}

	s.logger.Info("computed survey summary",
		zap.String("survey_type", string(surveyType)),
		zap.Int("total_responses", summary.TotalResponses),
		zap.Int("overall_satisfaction", summary.OverallSatisfaction))

	return summary, nil
}

// Distributions loads a survey dataset and returns per-question response
// distributions in ranked order.
func (s *SurveyService) Distributions(ctx context.Context, surveyType models.SurveyType) ([]QuestionDistribution, error) {
	dataset, err := s.load(ctx, surveyType)
	if err != nil {
		return nil, err
	}

	return RankedDistributions(dataset)
}

func (s *SurveyService) load(ctx context.Context, surveyType models.SurveyType) (*csvnorm.Dataset, error) {
	dataset, err := s.datasets.Load(ctx, surveyType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceFailure, err)
	}
	return dataset, nil
}
