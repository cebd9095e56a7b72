package counselor

import (
	"strings"

	"mindcare/internal/model"
)

var emotionKeywords = []struct {
	emotion  model.Emotion
	keywords []string
}{
	{model.EmotionAnxious, []string{"anxious", "anxiety", "nervous", "worried", "panic", "scared", "afraid"}},
	{model.EmotionSad, []string{"sad", "depressed", "down", "cry", "crying", "hopeless", "empty"}},
	{model.EmotionAngry, []string{"angry", "mad", "furious", "annoyed", "frustrated", "hate"}},
	{model.EmotionStressed, []string{"stressed", "stress", "overwhelmed", "pressure", "exam", "deadline", "tired"}},
	{model.EmotionLonely, []string{"lonely", "alone", "isolated", "no friends", "left out"}},
	{model.EmotionHappy, []string{"happy", "great", "good", "excited", "glad", "better"}},
}

// DetectEmotion returns the first emotion whose keywords appear in text
func DetectEmotion(text string) model.Emotion {
	lower := strings.ToLower(text)
	for _, e := range emotionKeywords {
		if containsAny(lower, e.keywords) {
			return e.emotion
		}
	}
	return model.EmotionNeutral
}

var guidance = map[model.Emotion][]string{
	model.EmotionAnxious: {
		"Try box breathing: in for 4, hold for 4, out for 4, hold for 4.",
		"Name five things you can see and four you can hear to ground yourself.",
		"Write down the worry and one small thing you can do about it today.",
	},
	model.EmotionSad: {
		"Reach out to a friend or family member, even with a short message.",
		"Step outside for a ten-minute walk if you can.",
		"Be gentle with yourself. It's okay to rest.",
	},
	model.EmotionAngry: {
		"Pause before responding. Take a few slow breaths.",
		"Move your body: a brisk walk or stretching can release tension.",
		"Write out what you're feeling without sending it to anyone.",
	},
	model.EmotionStressed: {
		"Break your work into small tasks and start with the easiest one.",
		"Use a 25-minute focus timer followed by a 5-minute break.",
		"Protect your sleep. A rested mind handles pressure better.",
	},
	model.EmotionLonely: {
		"Join a club, study group or campus event this week.",
		"Send a message to someone you haven't talked to in a while.",
		"Consider booking a chat session with a counsellor.",
	},
	model.EmotionHappy: {
		"Note what made today good so you can come back to it.",
		"Share the good moment with someone you care about.",
	},
	model.EmotionNeutral: {
		"Check in with yourself: how are your sleep, meals and movement?",
		"A short mindfulness exercise can help you notice how you feel.",
	},
}

// Guidance returns coping suggestions for an emotion
func Guidance(emotion model.Emotion) []string {
	if g, ok := guidance[emotion]; ok {
		return append([]string(nil), g...)
	}
	return append([]string(nil), guidance[model.EmotionNeutral]...)
}

// Recommendations returns next steps based on the severity bands of a result
func Recommendations(r *model.AssessmentResult) []string {
	if r == nil {
		return []string{"Complete the PHQ-9 and GAD-7 check-in to get personalised suggestions."}
	}

	var recs []string
	switch r.PHQ9Severity {
	case model.SeverityModeratelySevere, model.SeveritySevere:
		recs = append(recs, "Book a session with a counsellor as soon as possible to talk about your low mood.")
	case model.SeverityModerate:
		recs = append(recs, "Consider talking to a counsellor about how you've been feeling.")
	case model.SeverityMild:
		recs = append(recs, "Keep a regular routine with sleep, meals and some daily movement.")
	}
	switch r.GAD7Severity {
	case model.SeveritySevere:
		recs = append(recs, "Your anxiety score is high. A counsellor can help you with coping strategies.")
	case model.SeverityModerate:
		recs = append(recs, "Practise a breathing or grounding exercise when you feel anxious.")
	case model.SeverityMild:
		recs = append(recs, "Short mindfulness breaks during study can help keep worry in check.")
	}
	if r.AIPersonality == model.PersonalityCrisis {
		recs = append(recs, "If you ever feel unsafe, contact a crisis helpline or emergency services immediately.")
	}
	if len(recs) == 0 {
		recs = append(recs, "You're doing well. Keep up the habits that support you and check in again in two weeks.")
	}
	return recs
}
