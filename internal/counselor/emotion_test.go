package counselor

import (
	"testing"

	"mindcare/internal/model"
)

func TestDetectEmotion(t *testing.T) {
	cases := []struct {
		text string
		want model.Emotion
	}{
		{"I'm so nervous about tomorrow", model.EmotionAnxious},
		{"feeling empty and sad", model.EmotionSad},
		{"I'm furious with my roommate", model.EmotionAngry},
		{"too much pressure this week", model.EmotionStressed},
		{"I have no friends here", model.EmotionLonely},
		{"I'm excited!", model.EmotionHappy},
		{"hello", model.EmotionNeutral},
	}
	for _, c := range cases {
		if got := DetectEmotion(c.text); got != c.want {
			t.Fatalf("DetectEmotion(%q) = %s, want %s", c.text, got, c.want)
		}
	}
}

func TestGuidance_ReturnsCopy(t *testing.T) {
	g := Guidance(model.EmotionSad)
	if len(g) == 0 {
		t.Fatal("expected guidance for sad")
	}
	g[0] = "mutated"
	if Guidance(model.EmotionSad)[0] == "mutated" {
		t.Fatal("Guidance must not expose the shared table")
	}
	if len(Guidance(model.Emotion("unknown"))) == 0 {
		t.Fatal("expected neutral guidance for unknown emotion")
	}
}

func TestRecommendations(t *testing.T) {
	if recs := Recommendations(nil); len(recs) != 1 {
		t.Fatalf("expected one prompt to take the assessment, got %v", recs)
	}

	well := &model.AssessmentResult{PHQ9Severity: model.SeverityMinimal, GAD7Severity: model.SeverityMinimal, AIPersonality: model.PersonalityEncouraging}
	if recs := Recommendations(well); len(recs) != 1 {
		t.Fatalf("expected a single keep-going message, got %v", recs)
	}

	severe := &model.AssessmentResult{PHQ9Severity: model.SeveritySevere, GAD7Severity: model.SeveritySevere, AIPersonality: model.PersonalityCrisis}
	if recs := Recommendations(severe); len(recs) != 3 {
		t.Fatalf("expected three recommendations, got %v", recs)
	}
}
