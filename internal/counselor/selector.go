// Package counselor implements the rule-based counselor bot: keyword bucket
// detection, canned responses per personality, and fallback emotion guidance.
package counselor

import (
	"strconv"
	"strings"
	"sync"

	"mindcare/internal/model"
)

// RandSource picks an index in [0,n). *rand.Rand from math/rand/v2 satisfies it.
type RandSource interface {
	IntN(n int) int
}

// TemplateVars are substituted into response templates
type TemplateVars struct {
	WellnessScore *int
	DominantMood  model.Mood
}

// VarsFromResult builds template vars from an assessment result; nil is allowed
func VarsFromResult(r *model.AssessmentResult) TemplateVars {
	if r == nil {
		return TemplateVars{}
	}
	score := r.WellnessScore
	return TemplateVars{WellnessScore: &score, DominantMood: r.DominantMood.Mood}
}

// Selector chooses canned responses. It is safe for concurrent use.
type Selector struct {
	mu  sync.Mutex
	rnd RandSource
}

// NewSelector creates a selector drawing from rnd
func NewSelector(rnd RandSource) *Selector {
	return &Selector{rnd: rnd}
}

// Select detects the bucket of message and returns a filled template for it
func (s *Selector) Select(personality model.Personality, message string, vars TemplateVars) (string, model.Bucket) {
	bucket := DetectBucket(message)
	return s.SelectForBucket(personality, bucket, vars), bucket
}

// SelectForBucket returns a filled template for an already known bucket
func (s *Selector) SelectForBucket(personality model.Personality, bucket model.Bucket, vars TemplateVars) string {
	templates := lookup(personality, bucket)
	if len(templates) == 0 {
		return FallbackResponse
	}
	s.mu.Lock()
	i := s.rnd.IntN(len(templates))
	s.mu.Unlock()
	return fill(templates[i], vars)
}

func lookup(personality model.Personality, bucket model.Bucket) []string {
	p, ok := personalityIndex(personality)
	if !ok {
		return nil
	}
	b, ok := bucketIndex(bucket)
	if !ok {
		return nil
	}
	return responses[p][b]
}

func fill(template string, vars TemplateVars) string {
	wellness := "not yet measured"
	if vars.WellnessScore != nil {
		wellness = strconv.Itoa(*vars.WellnessScore)
	}
	mood := string(vars.DominantMood)
	if mood == "" {
		mood = string(model.MoodCalm)
	}
	return strings.NewReplacer(
		"${wellnessScore}", wellness,
		"${dominantMood}", mood,
	).Replace(template)
}
