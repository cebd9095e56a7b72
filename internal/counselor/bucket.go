package counselor

import (
	"strings"

	"mindcare/internal/model"
)

var crisisKeywords = []string{
	"suicide", "suicidal", "kill myself", "end my life", "want to die",
	"self harm", "self-harm", "hurt myself", "no reason to live", "hopeless",
}

var negativeKeywords = []string{
	"sad", "depressed", "anxious", "anxiety", "worried", "stressed", "stress",
	"lonely", "alone", "tired", "exhausted", "angry", "upset", "scared",
	"afraid", "overwhelmed", "panic", "cry", "crying", "bad", "terrible", "awful",
}

var positiveKeywords = []string{
	"happy", "good", "great", "better", "fine", "calm", "relaxed", "excited",
	"grateful", "thankful", "proud", "hopeful", "okay", "amazing", "glad",
}

// DetectBucket classifies a message by naive substring matching.
// Crisis wins over negative, negative over positive.
func DetectBucket(text string) model.Bucket {
	lower := strings.ToLower(text)
	switch {
	case containsAny(lower, crisisKeywords):
		return model.BucketCrisis
	case containsAny(lower, negativeKeywords):
		return model.BucketNegative
	case containsAny(lower, positiveKeywords):
		return model.BucketPositive
	default:
		return model.BucketNeutral
	}
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
