package scoring

import (
	"errors"
	"testing"
	"time"

	"mindcare/internal/model"
)

var fixedNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func newTestScorer() *Scorer {
	return NewScorer(func() time.Time { return fixedNow })
}

// answersSumming spreads total across n items, filling from the front
func answersSumming(total, n int) []*int {
	values := make([]int, n)
	for i := range values {
		v := total
		if v > model.MaxItem {
			v = model.MaxItem
		}
		values[i] = v
		total -= v
	}
	return model.Answers(values...)
}

func TestScore_AllZero(t *testing.T) {
	res, err := newTestScorer().Score(&model.AssessmentResponse{
		PHQ9Answers: model.RepeatAnswer(0, 9),
		GAD7Answers: model.RepeatAnswer(0, 7),
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.PHQ9Score != 0 || res.GAD7Score != 0 {
		t.Fatalf("scores = %d/%d, want 0/0", res.PHQ9Score, res.GAD7Score)
	}
	if res.WellnessScore != 100 {
		t.Fatalf("wellness = %d, want 100", res.WellnessScore)
	}
	if res.AIPersonality != model.PersonalityEncouraging {
		t.Fatalf("personality = %s, want encouraging", res.AIPersonality)
	}
	if res.PHQ9Severity != model.SeverityMinimal || res.GAD7Severity != model.SeverityMinimal {
		t.Fatalf("severities = %s/%s, want Minimal/Minimal", res.PHQ9Severity, res.GAD7Severity)
	}
	if res.DominantMood.Mood != model.MoodHappy || res.DominantMood.Percentage != 100 {
		t.Fatalf("dominant = %+v, want happy 100 (ties with calm)", res.DominantMood)
	}
	if !res.CompletedAt.Equal(fixedNow) {
		t.Fatalf("completedAt = %v, want %v", res.CompletedAt, fixedNow)
	}
}

func TestScore_AllMax(t *testing.T) {
	res, err := newTestScorer().Score(&model.AssessmentResponse{
		PHQ9Answers: model.RepeatAnswer(3, 9),
		GAD7Answers: model.RepeatAnswer(3, 7),
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.PHQ9Score != 27 || res.GAD7Score != 21 {
		t.Fatalf("scores = %d/%d, want 27/21", res.PHQ9Score, res.GAD7Score)
	}
	if res.WellnessScore != 0 {
		t.Fatalf("wellness = %d, want 0", res.WellnessScore)
	}
	if res.AIPersonality != model.PersonalityCrisis {
		t.Fatalf("personality = %s, want crisis", res.AIPersonality)
	}
	if res.PHQ9Severity != model.SeveritySevere || res.GAD7Severity != model.SeveritySevere {
		t.Fatalf("severities = %s/%s, want Severe/Severe", res.PHQ9Severity, res.GAD7Severity)
	}
	// stressed and depressed both reach 100; stressed comes first
	if res.DominantMood.Mood != model.MoodStressed || res.DominantMood.Percentage != 100 {
		t.Fatalf("dominant = %+v, want stressed 100", res.DominantMood)
	}
}

func TestScore_MidCase(t *testing.T) {
	res, err := newTestScorer().Score(&model.AssessmentResponse{
		PHQ9Answers: answersSumming(10, 9),
		GAD7Answers: answersSumming(10, 7),
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.CombinedScore() != 20 {
		t.Fatalf("combined = %d, want 20", res.CombinedScore())
	}
	if res.AIPersonality != model.PersonalityGentle {
		t.Fatalf("personality = %s, want gentle", res.AIPersonality)
	}
	if res.WellnessScore != 58 {
		t.Fatalf("wellness = %d, want 58", res.WellnessScore)
	}
}

func TestScore_ScoreRanges(t *testing.T) {
	s := newTestScorer()
	for p := 0; p <= model.PHQ9MaxScore; p++ {
		for g := 0; g <= model.GAD7MaxScore; g++ {
			res, err := s.Score(&model.AssessmentResponse{
				PHQ9Answers: answersSumming(p, 9),
				GAD7Answers: answersSumming(g, 7),
			})
			if err != nil {
				t.Fatalf("p=%d g=%d: unexpected err: %v", p, g, err)
			}
			if res.PHQ9Score != p || res.GAD7Score != g {
				t.Fatalf("scores = %d/%d, want %d/%d", res.PHQ9Score, res.GAD7Score, p, g)
			}
			for _, m := range model.Moods {
				v, ok := res.MoodPercentages[m]
				if !ok || v < 0 || v > 100 {
					t.Fatalf("p=%d g=%d: mood %s = %d (present=%v)", p, g, m, v, ok)
				}
			}
			if res.WellnessScore < 0 || res.WellnessScore > 100 {
				t.Fatalf("wellness out of range: %d", res.WellnessScore)
			}
		}
	}
}

func TestWellnessScore_Monotonic(t *testing.T) {
	prev := 101
	for combined := 0; combined <= model.CombinedMaxScore; combined++ {
		p := combined
		if p > model.PHQ9MaxScore {
			p = model.PHQ9MaxScore
		}
		w := WellnessScore(p, combined-p)
		if w > prev {
			t.Fatalf("wellness increased at combined=%d: %d > %d", combined, w, prev)
		}
		prev = w
	}
}

func TestPHQ9Severity_Boundaries(t *testing.T) {
	cases := []struct {
		score int
		want  model.Severity
	}{
		{0, model.SeverityMinimal},
		{4, model.SeverityMinimal},
		{5, model.SeverityMild},
		{9, model.SeverityMild},
		{10, model.SeverityModerate},
		{14, model.SeverityModerate},
		{15, model.SeverityModeratelySevere},
		{19, model.SeverityModeratelySevere},
		{20, model.SeveritySevere},
		{27, model.SeveritySevere},
	}
	for _, c := range cases {
		if got := PHQ9Severity(c.score); got != c.want {
			t.Fatalf("PHQ9Severity(%d) = %s, want %s", c.score, got, c.want)
		}
	}
}

func TestGAD7Severity_Boundaries(t *testing.T) {
	cases := []struct {
		score int
		want  model.Severity
	}{
		{4, model.SeverityMinimal},
		{5, model.SeverityMild},
		{9, model.SeverityMild},
		{10, model.SeverityModerate},
		{14, model.SeverityModerate},
		{15, model.SeveritySevere},
		{21, model.SeveritySevere},
	}
	for _, c := range cases {
		if got := GAD7Severity(c.score); got != c.want {
			t.Fatalf("GAD7Severity(%d) = %s, want %s", c.score, got, c.want)
		}
	}
}

func TestPersonalityFor(t *testing.T) {
	cases := []struct {
		combined int
		want     model.Personality
	}{
		{0, model.PersonalityEncouraging},
		{8, model.PersonalityEncouraging},
		{9, model.PersonalitySupportive},
		{16, model.PersonalitySupportive},
		{17, model.PersonalityGentle},
		{24, model.PersonalityGentle},
		{25, model.PersonalityCaring},
		{32, model.PersonalityCaring},
		{33, model.PersonalityCrisis},
		{48, model.PersonalityCrisis},
	}
	for _, c := range cases {
		if got := PersonalityFor(c.combined); got != c.want {
			t.Fatalf("PersonalityFor(%d) = %s, want %s", c.combined, got, c.want)
		}
	}
}

func TestDominant_MatchesMaximum(t *testing.T) {
	order := make(map[model.Mood]int, len(model.Moods))
	for i, m := range model.Moods {
		order[m] = i
	}
	for p := 0; p <= model.PHQ9MaxScore; p++ {
		for g := 0; g <= model.GAD7MaxScore; g++ {
			moods := MoodPercentages(p, g)
			d := Dominant(moods)
			if moods[d.Mood] != d.Percentage {
				t.Fatalf("p=%d g=%d: dominant %+v disagrees with map value %d", p, g, d, moods[d.Mood])
			}
			for _, m := range model.Moods {
				if moods[m] > d.Percentage {
					t.Fatalf("p=%d g=%d: %s=%d beats dominant %+v", p, g, m, moods[m], d)
				}
				if moods[m] == d.Percentage && order[m] < order[d.Mood] {
					t.Fatalf("p=%d g=%d: tie not broken by order, got %s over %s", p, g, d.Mood, m)
				}
			}
		}
	}
}

func TestDominant_TieBreak(t *testing.T) {
	moods := map[model.Mood]int{
		model.MoodHappy:     10,
		model.MoodCalm:      40,
		model.MoodSad:       40,
		model.MoodStressed:  5,
		model.MoodAnxious:   40,
		model.MoodDepressed: 0,
	}
	d := Dominant(moods)
	if d.Mood != model.MoodCalm || d.Percentage != 40 {
		t.Fatalf("dominant = %+v, want calm 40", d)
	}
}

func TestScore_Incomplete(t *testing.T) {
	three := 3
	withNil := model.RepeatAnswer(1, 9)
	withNil[4] = nil
	outOfRange := model.RepeatAnswer(1, 7)
	bad := 4
	outOfRange[6] = &bad

	cases := []struct {
		name  string
		resp  *model.AssessmentResponse
		scale string
		item  int
	}{
		{"eight phq9 answers", &model.AssessmentResponse{PHQ9Answers: model.RepeatAnswer(1, 8), GAD7Answers: model.RepeatAnswer(1, 7)}, "PHQ-9", -1},
		{"nil phq9 item", &model.AssessmentResponse{PHQ9Answers: withNil, GAD7Answers: model.RepeatAnswer(1, 7)}, "PHQ-9", 4},
		{"missing gad7", &model.AssessmentResponse{PHQ9Answers: model.RepeatAnswer(1, 9)}, "GAD-7", -1},
		{"out of range gad7", &model.AssessmentResponse{PHQ9Answers: model.RepeatAnswer(1, 9), GAD7Answers: outOfRange}, "GAD-7", 6},
		{"too many gad7", &model.AssessmentResponse{PHQ9Answers: model.RepeatAnswer(1, 9), GAD7Answers: append(model.RepeatAnswer(1, 7), &three)}, "GAD-7", -1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			res, err := newTestScorer().Score(c.resp)
			if res != nil {
				t.Fatalf("expected no result, got %+v", res)
			}
			if !errors.Is(err, ErrIncompleteAssessment) {
				t.Fatalf("expected ErrIncompleteAssessment, got %v", err)
			}
			var ie *IncompleteAssessmentError
			if !errors.As(err, &ie) {
				t.Fatalf("expected *IncompleteAssessmentError, got %T", err)
			}
			if ie.Scale != c.scale || ie.Item != c.item {
				t.Fatalf("error = %+v, want scale %s item %d", ie, c.scale, c.item)
			}
		})
	}
}

func TestScorer_ZeroValueUsesClock(t *testing.T) {
	var s Scorer
	before := time.Now()
	res := s.ScoreValues(make([]int, 9), make([]int, 7))
	if res.CompletedAt.Before(before) {
		t.Fatalf("completedAt %v before %v", res.CompletedAt, before)
	}
}
