// Package scoring turns PHQ-9 and GAD-7 answers into an AssessmentResult.
// It does no I/O and holds no shared state.
package scoring

import (
	"time"

	"mindcare/internal/model"
)

// Scorer computes assessment results. The zero value uses time.Now.
type Scorer struct {
	now func() time.Time
}

// NewScorer creates a scorer stamping results with now()
func NewScorer(now func() time.Time) *Scorer {
	return &Scorer{now: now}
}

// Score validates and scores a questionnaire response. It returns an
// *IncompleteAssessmentError when any item is missing or out of range.
func (s *Scorer) Score(resp *model.AssessmentResponse) (*model.AssessmentResult, error) {
	phq9, gad7, err := Validate(resp)
	if err != nil {
		return nil, err
	}
	return s.ScoreValues(phq9, gad7), nil
}

// ScoreValues scores answers that were already validated by Validate
func (s *Scorer) ScoreValues(phq9, gad7 []int) *model.AssessmentResult {
	phq9Score := sum(phq9)
	gad7Score := sum(gad7)
	moods := MoodPercentages(phq9Score, gad7Score)

	return &model.AssessmentResult{
		PHQ9Score:       phq9Score,
		GAD7Score:       gad7Score,
		PHQ9Severity:    PHQ9Severity(phq9Score),
		GAD7Severity:    GAD7Severity(gad7Score),
		MoodPercentages: moods,
		DominantMood:    Dominant(moods),
		WellnessScore:   WellnessScore(phq9Score, gad7Score),
		AIPersonality:   PersonalityFor(phq9Score + gad7Score),
		CompletedAt:     s.clock(),
	}
}

// Validate checks a response and returns its answers as plain values
func Validate(resp *model.AssessmentResponse) (phq9, gad7 []int, err error) {
	if phq9, err = collect("PHQ-9", resp.PHQ9Answers, model.PHQ9Items); err != nil {
		return nil, nil, err
	}
	if gad7, err = collect("GAD-7", resp.GAD7Answers, model.GAD7Items); err != nil {
		return nil, nil, err
	}
	return phq9, gad7, nil
}

func (s *Scorer) clock() time.Time {
	if s == nil || s.now == nil {
		return time.Now()
	}
	return s.now()
}

func collect(scale string, answers []*int, want int) ([]int, error) {
	if len(answers) != want {
		return nil, &IncompleteAssessmentError{Scale: scale, Item: -1, Got: len(answers), Want: want}
	}
	values := make([]int, want)
	for i, a := range answers {
		if a == nil || *a < 0 || *a > model.MaxItem {
			return nil, &IncompleteAssessmentError{Scale: scale, Item: i, Got: len(answers), Want: want}
		}
		values[i] = *a
	}
	return values, nil
}

func sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}
