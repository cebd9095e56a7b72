package scoring

import (
	"errors"
	"fmt"
)

// ErrIncompleteAssessment matches any *IncompleteAssessmentError via errors.Is
var ErrIncompleteAssessment = errors.New("incomplete assessment")

// IncompleteAssessmentError reports the first unanswered questionnaire item.
// Item is zero-based; Item == -1 means the answer list has the wrong length.
type IncompleteAssessmentError struct {
	Scale string
	Item  int
	Got   int
	Want  int
}

func (e *IncompleteAssessmentError) Error() string {
	if e.Item < 0 {
		return fmt.Sprintf("incomplete assessment: %s has %d of %d answers", e.Scale, e.Got, e.Want)
	}
	return fmt.Sprintf("incomplete assessment: %s item %d is unanswered", e.Scale, e.Item+1)
}

func (e *IncompleteAssessmentError) Is(target error) bool {
	return target == ErrIncompleteAssessment
}
