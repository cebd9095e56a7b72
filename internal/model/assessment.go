package model

import "time"

// Severity is a PHQ-9 or GAD-7 severity band
type Severity string

const (
	SeverityMinimal          Severity = "Minimal"
	SeverityMild             Severity = "Mild"
	SeverityModerate         Severity = "Moderate"
	SeverityModeratelySevere Severity = "Moderately Severe"
	SeveritySevere           Severity = "Severe"
)

// Mood is one of the six derived mood categories
type Mood string

const (
	MoodHappy     Mood = "happy"
	MoodCalm      Mood = "calm"
	MoodSad       Mood = "sad"
	MoodStressed  Mood = "stressed"
	MoodAnxious   Mood = "anxious"
	MoodDepressed Mood = "depressed"
)

// Moods lists every mood in tie-break order
var Moods = []Mood{MoodHappy, MoodCalm, MoodSad, MoodStressed, MoodAnxious, MoodDepressed}

// Personality is the response tone used by the counselor bot
type Personality string

const (
	PersonalityEncouraging Personality = "encouraging"
	PersonalitySupportive  Personality = "supportive"
	PersonalityGentle      Personality = "gentle"
	PersonalityCaring      Personality = "caring"
	PersonalityCrisis      Personality = "crisis"
)

// Personalities lists every personality from mildest to most severe
var Personalities = []Personality{
	PersonalityEncouraging,
	PersonalitySupportive,
	PersonalityGentle,
	PersonalityCaring,
	PersonalityCrisis,
}

const (
	PHQ9Items = 9
	GAD7Items = 7
	MaxItem   = 3

	PHQ9MaxScore     = PHQ9Items * MaxItem
	GAD7MaxScore     = GAD7Items * MaxItem
	CombinedMaxScore = PHQ9MaxScore + GAD7MaxScore
)

// AssessmentResponse holds the raw questionnaire answers as submitted by a form.
// A nil entry is an unanswered item.
type AssessmentResponse struct {
	PHQ9Answers []*int `json:"phq9Answers"`
	GAD7Answers []*int `json:"gad7Answers"`
}

// DominantMood is the mood with the highest percentage
type DominantMood struct {
	Mood       Mood `json:"mood" bson:"mood"`
	Percentage int  `json:"percentage" bson:"percentage"`
}

// AssessmentResult is derived once from a complete AssessmentResponse
type AssessmentResult struct {
	PHQ9Score       int          `json:"phq9Score" bson:"phq9Score"`
	GAD7Score       int          `json:"gad7Score" bson:"gad7Score"`
	PHQ9Severity    Severity     `json:"phq9Severity" bson:"phq9Severity"`
	GAD7Severity    Severity     `json:"gad7Severity" bson:"gad7Severity"`
	MoodPercentages map[Mood]int `json:"moodPercentages" bson:"moodPercentages"`
	DominantMood    DominantMood `json:"dominantMood" bson:"dominantMood"`
	WellnessScore   int          `json:"wellnessScore" bson:"wellnessScore"`
	AIPersonality   Personality  `json:"aiPersonality" bson:"aiPersonality"`
	CompletedAt     time.Time    `json:"completedAt" bson:"completedAt"`
}

// CombinedScore is phq9Score + gad7Score
func (r *AssessmentResult) CombinedScore() int {
	return r.PHQ9Score + r.GAD7Score
}

// Assessment is a stored, scored questionnaire submission
type Assessment struct {
	ID          string           `json:"id" bson:"_id"`
	UserID      string           `json:"userId" bson:"userId"`
	College     string           `json:"college" bson:"college"`
	PHQ9Answers []int            `json:"phq9Answers" bson:"phq9Answers"`
	GAD7Answers []int            `json:"gad7Answers" bson:"gad7Answers"`
	Result      AssessmentResult `json:"result" bson:"result"`
}

// AssessmentSubmitResponse is returned after a successful submission
type AssessmentSubmitResponse struct {
	Assessment      *Assessment `json:"assessment"`
	Recommendations []string    `json:"recommendations"`
}

// Answers converts plain values into a form-style answer list
func Answers(values ...int) []*int {
	out := make([]*int, len(values))
	for i := range values {
		v := values[i]
		out[i] = &v
	}
	return out
}

// RepeatAnswer builds n answers all equal to value
func RepeatAnswer(value, n int) []*int {
	values := make([]int, n)
	for i := range values {
		values[i] = value
	}
	return Answers(values...)
}
