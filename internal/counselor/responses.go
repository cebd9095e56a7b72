package counselor

import "mindcare/internal/model"

const (
	encouraging = iota
	supportive
	gentle
	caring
	crisis
	numPersonalities
)

const (
	positive = iota
	neutral
	negative
	crisisBucket
	numBuckets
)

// FallbackResponse is returned when no template matches
const FallbackResponse = "I'm here to listen. Tell me a little more about how you're feeling today."

func personalityIndex(p model.Personality) (int, bool) {
	switch p {
	case model.PersonalityEncouraging:
		return encouraging, true
	case model.PersonalitySupportive:
		return supportive, true
	case model.PersonalityGentle:
		return gentle, true
	case model.PersonalityCaring:
		return caring, true
	case model.PersonalityCrisis:
		return crisis, true
	}
	return 0, false
}

func bucketIndex(b model.Bucket) (int, bool) {
	switch b {
	case model.BucketPositive:
		return positive, true
	case model.BucketNeutral:
		return neutral, true
	case model.BucketNegative:
		return negative, true
	case model.BucketCrisis:
		return crisisBucket, true
	}
	return 0, false
}

// Templates may use ${wellnessScore} and ${dominantMood}.
var responses = [numPersonalities][numBuckets][]string{
	encouraging: {
		positive: {
			"That's wonderful to hear! Your wellness score of ${wellnessScore} shows you're doing really well. Keep it up!",
			"Love that energy! You've been mostly ${dominantMood} lately, so let's build on it. What went well today?",
		},
		neutral: {
			"Thanks for checking in. With a wellness score of ${wellnessScore}, you're in a good place. What's on your mind?",
			"Good to see you! Anything you'd like to talk through today?",
		},
		negative: {
			"Everyone has off days, and it's okay to feel this way. Your overall wellness is ${wellnessScore}, so you have strength to lean on. What happened?",
			"I hear you. Even when things feel heavy, small steps help. Want to try a two-minute breathing exercise together?",
		},
		crisisBucket: {
			"I'm really glad you told me. What you're feeling matters, and you don't have to face it alone. Please reach out to a counsellor or a helpline right now.",
		},
	},
	supportive: {
		positive: {
			"I'm glad today feels better. Noticing good moments is a real skill. What helped?",
			"That's great progress. Your wellness score is ${wellnessScore} and moments like this count.",
		},
		neutral: {
			"I'm here for you. Your recent check-in suggests you've been feeling mostly ${dominantMood}. How has today been?",
			"Thanks for sharing. Would it help to talk about sleep, study, or something else?",
		},
		negative: {
			"That sounds hard, and it makes sense that you feel this way. Would you like to talk about what's weighing on you most?",
			"You're not alone in this. Many students feel ${dominantMood} at times. Let's take it one step at a time.",
		},
		crisisBucket: {
			"Thank you for trusting me with this. Your safety matters most. Please contact a counsellor or a crisis helpline now. I can help you book a session.",
		},
	},
	gentle: {
		positive: {
			"I'm really happy to hear that. Let's hold on to this feeling. What made today a little lighter?",
			"That's lovely. Small good moments matter, especially when things have been tough.",
		},
		neutral: {
			"Take your time. I'm here whenever you're ready to share.",
			"Your wellness score is ${wellnessScore}, and it's okay to go slowly. How are you feeling right now?",
		},
		negative: {
			"I'm sorry you're going through this. Your feelings are valid. Would a short grounding exercise help right now?",
			"It sounds like things have been heavy. You've been feeling mostly ${dominantMood}, so please be kind to yourself today.",
		},
		crisisBucket: {
			"I'm very concerned about what you've shared, and I care about your safety. Please reach out to a counsellor or a crisis helpline right away.",
		},
	},
	caring: {
		positive: {
			"I'm so glad there's some light today. Hold on to it, and remember you can always talk to your counsellor too.",
		},
		neutral: {
			"I'm here with you. With a wellness score of ${wellnessScore}, it might really help to talk to a counsellor this week. Shall I help you book a session?",
			"How are you holding up? You don't have to carry everything by yourself.",
		},
		negative: {
			"That sounds really painful. You deserve support. Please consider booking a session with a counsellor. Would you like me to help?",
			"I can hear how ${dominantMood} you've been feeling. Talking to someone you trust, or a counsellor, can make a real difference.",
		},
		crisisBucket: {
			"Your safety is the most important thing right now. Please contact a crisis helpline or your counsellor immediately. You are not alone.",
		},
	},
	crisis: {
		positive: {
			"I'm glad you're having a better moment. Your recent check-in showed you've been struggling, so please stay in touch with your counsellor.",
		},
		neutral: {
			"I'm here for you. Your recent assessment suggests you're going through a lot. A counsellor can support you, and reaching out today would be a good step.",
		},
		negative: {
			"I'm really sorry you're feeling this way. Please talk to a counsellor as soon as you can. You deserve support and you don't have to go through this alone.",
		},
		crisisBucket: {
			"Please reach out for help right now. Contact a crisis helpline or emergency services, or go to someone you trust. Your life matters.",
		},
	},
}
