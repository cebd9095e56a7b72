package model

import (
	"sort"
	"strings"
	"time"
)

// Bucket is the coarse mood of a chat message
type Bucket string

const (
	BucketPositive Bucket = "positive"
	BucketNeutral  Bucket = "neutral"
	BucketNegative Bucket = "negative"
	BucketCrisis   Bucket = "crisis"
)

// Buckets lists every bucket
var Buckets = []Bucket{BucketPositive, BucketNeutral, BucketNegative, BucketCrisis}

// Emotion is the fallback emotion detected from free text
type Emotion string

const (
	EmotionAnxious  Emotion = "anxious"
	EmotionSad      Emotion = "sad"
	EmotionAngry    Emotion = "angry"
	EmotionStressed Emotion = "stressed"
	EmotionLonely   Emotion = "lonely"
	EmotionHappy    Emotion = "happy"
	EmotionNeutral  Emotion = "neutral"
)

const BotSenderID = "counselor-bot"

type ChatMessage struct {
	ID             string    `json:"id" bson:"_id"`
	ConversationID string    `json:"conversationId" bson:"conversationId"`
	SenderID       string    `json:"senderId" bson:"senderId"`
	RecipientID    string    `json:"recipientId" bson:"recipientId"`
	Bot            bool      `json:"bot" bson:"bot"`
	Text           string    `json:"text" bson:"text"`
	Bucket         Bucket    `json:"bucket,omitempty" bson:"bucket,omitempty"`
	CreatedAt      time.Time `json:"createdAt" bson:"createdAt"`
}

// BotConversationID is the conversation between a user and the counselor bot
func BotConversationID(userID string) string {
	return "bot:" + userID
}

// DirectConversationID is stable regardless of who sends first
func DirectConversationID(a, b string) string {
	ids := []string{a, b}
	sort.Strings(ids)
	return strings.Join(ids, ":")
}

// ConversationParticipants returns the user ids taking part in a conversation
func ConversationParticipants(conversationID string) []string {
	if strings.HasPrefix(conversationID, "bot:") {
		return []string{strings.TrimPrefix(conversationID, "bot:")}
	}
	return strings.Split(conversationID, ":")
}

type ChatRequest struct {
	Text string `json:"text"`
}

// BotReply is the counselor bot's answer to one message
type BotReply struct {
	Message         *ChatMessage `json:"message"`
	Bucket          Bucket       `json:"bucket"`
	Emotion         Emotion      `json:"emotion"`
	Personality     Personality  `json:"personality"`
	Guidance        []string     `json:"guidance"`
	CrisisResources []string     `json:"crisisResources,omitempty"`
}

// CrisisAlert is pushed to counsellors when a student may be at risk
type CrisisAlert struct {
	StudentID string    `json:"studentId"`
	College   string    `json:"college"`
	Reason    string    `json:"reason"`
	ReportID  string    `json:"reportId,omitempty"`
	RaisedAt  time.Time `json:"raisedAt"`
}
