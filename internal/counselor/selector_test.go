package counselor

import (
	"math/rand/v2"
	"strings"
	"testing"

	"mindcare/internal/model"
)

// fixedRand always returns the same index, clamped to n-1
type fixedRand int

func (f fixedRand) IntN(n int) int {
	if int(f) >= n {
		return n - 1
	}
	return int(f)
}

func TestDetectBucket(t *testing.T) {
	cases := []struct {
		text string
		want model.Bucket
	}{
		{"I feel so hopeless and sad", model.BucketCrisis},
		{"sometimes I think about SUICIDE", model.BucketCrisis},
		{"I'm really stressed about exams", model.BucketNegative},
		{"stressed but happy", model.BucketNegative},
		{"Feeling great today!", model.BucketPositive},
		{"what time is it", model.BucketNeutral},
		{"", model.BucketNeutral},
	}
	for _, c := range cases {
		if got := DetectBucket(c.text); got != c.want {
			t.Fatalf("DetectBucket(%q) = %s, want %s", c.text, got, c.want)
		}
	}
}

func TestResponses_EveryCellFilled(t *testing.T) {
	for _, p := range model.Personalities {
		for _, b := range model.Buckets {
			if len(lookup(p, b)) == 0 {
				t.Fatalf("no templates for %s/%s", p, b)
			}
		}
	}
}

func TestSelect_Deterministic(t *testing.T) {
	s := NewSelector(fixedRand(0))
	score := 72
	vars := TemplateVars{WellnessScore: &score, DominantMood: model.MoodCalm}

	got, bucket := s.Select(model.PersonalityEncouraging, "I'm feeling great", vars)
	if bucket != model.BucketPositive {
		t.Fatalf("bucket = %s, want positive", bucket)
	}
	want := "That's wonderful to hear! Your wellness score of 72 shows you're doing really well. Keep it up!"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	got, _ = NewSelector(fixedRand(1)).Select(model.PersonalityEncouraging, "great", vars)
	if !strings.Contains(got, "mostly calm lately") {
		t.Fatalf("expected dominant mood substituted, got %q", got)
	}
}

func TestSelect_SeededRandIsRepeatable(t *testing.T) {
	a := NewSelector(rand.New(rand.NewPCG(1, 2)))
	b := NewSelector(rand.New(rand.NewPCG(1, 2)))
	for i := 0; i < 20; i++ {
		ra := a.SelectForBucket(model.PersonalitySupportive, model.BucketNegative, TemplateVars{})
		rb := b.SelectForBucket(model.PersonalitySupportive, model.BucketNegative, TemplateVars{})
		if ra != rb {
			t.Fatalf("draw %d differs: %q vs %q", i, ra, rb)
		}
	}
}

func TestSelect_NoPlaceholdersLeft(t *testing.T) {
	for _, p := range model.Personalities {
		for _, b := range model.Buckets {
			for i := range lookup(p, b) {
				got := NewSelector(fixedRand(i)).SelectForBucket(p, b, TemplateVars{})
				if strings.Contains(got, "${") {
					t.Fatalf("%s/%s[%d] left a placeholder: %q", p, b, i, got)
				}
			}
		}
	}
}

func TestSelect_MissingWellnessUsesDefault(t *testing.T) {
	got := NewSelector(fixedRand(0)).SelectForBucket(model.PersonalityEncouraging, model.BucketPositive, TemplateVars{})
	if !strings.Contains(got, "not yet measured") {
		t.Fatalf("got %q", got)
	}
}

func TestSelect_UnknownPersonalityFallsBack(t *testing.T) {
	got, _ := NewSelector(fixedRand(0)).Select(model.Personality("robotic"), "hello", TemplateVars{})
	if got != FallbackResponse {
		t.Fatalf("got %q, want fallback", got)
	}
	got = NewSelector(fixedRand(0)).SelectForBucket(model.PersonalityGentle, model.Bucket("weird"), TemplateVars{})
	if got != FallbackResponse {
		t.Fatalf("got %q, want fallback", got)
	}
}

func TestVarsFromResult(t *testing.T) {
	if v := VarsFromResult(nil); v.WellnessScore != nil {
		t.Fatalf("expected nil wellness for nil result")
	}
	v := VarsFromResult(&model.AssessmentResult{WellnessScore: 40, DominantMood: model.DominantMood{Mood: model.MoodSad}})
	if v.WellnessScore == nil || *v.WellnessScore != 40 || v.DominantMood != model.MoodSad {
		t.Fatalf("unexpected vars %+v", v)
	}
}
