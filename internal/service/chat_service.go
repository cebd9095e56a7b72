package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"

	"mindcare/internal/config"
	"mindcare/internal/counselor"
	"mindcare/internal/model"
	"mindcare/internal/repository"
)

// ChatService runs the counselor bot and direct messaging
type ChatService struct {
	selector    *counselor.Selector
	assessments *AssessmentService
	chats       repository.ChatRepo
	users       repository.UserRepo
	notifier    *CrisisNotifier
	broadcaster Broadcaster
	cfg         config.CounselorConfig
	now         func() time.Time
}

// NewChatService creates a new chat service
func NewChatService(
	selector *counselor.Selector,
	assessments *AssessmentService,
	chats repository.ChatRepo,
	users repository.UserRepo,
	notifier *CrisisNotifier,
	cfg config.CounselorConfig,
) *ChatService {
	return &ChatService{
		selector:    selector,
		assessments: assessments,
		chats:       chats,
		users:       users,
		notifier:    notifier,
		broadcaster: noopBroadcaster{},
		cfg:         cfg,
		now:         time.Now,
	}
}

// SetBroadcaster sets the realtime broadcaster (set after hub is created)
func (s *ChatService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// BotReply answers a message with the personality of the sender's latest assessment
func (s *ChatService) BotReply(ctx context.Context, actor *model.UserClaims, text string) (*model.BotReply, error) {
	text, err := s.cleanText(text)
	if err != nil {
		return nil, err
	}

	latest, err := s.assessments.Latest(ctx, actor.UserID)
	if err != nil {
		log.WithError(err).WithField("user_id", actor.UserID).Warn("chat without assessment context")
		latest = nil
	}

	personality := s.cfg.DefaultPersonality
	var result *model.AssessmentResult
	if latest != nil {
		result = &latest.Result
		personality = result.AIPersonality
	}

	replyText, bucket := s.selector.Select(personality, text, counselor.VarsFromResult(result))
	emotion := counselor.DetectEmotion(text)

	conversationID := model.BotConversationID(actor.UserID)
	now := s.now()
	incoming := &model.ChatMessage{
		ID:             uuid.New().String(),
		ConversationID: conversationID,
		SenderID:       actor.UserID,
		RecipientID:    model.BotSenderID,
		Text:           text,
		Bucket:         bucket,
		CreatedAt:      now,
	}
	reply := &model.ChatMessage{
		ID:             uuid.New().String(),
		ConversationID: conversationID,
		SenderID:       model.BotSenderID,
		RecipientID:    actor.UserID,
		Bot:            true,
		Text:           replyText,
		Bucket:         bucket,
		CreatedAt:      now.Add(time.Millisecond),
	}
	for _, msg := range []*model.ChatMessage{incoming, reply} {
		if err := s.chats.Create(ctx, msg); err != nil {
			return nil, err
		}
	}

	out := &model.BotReply{
		Message:     reply,
		Bucket:      bucket,
		Emotion:     emotion,
		Personality: personality,
		Guidance:    counselor.Guidance(emotion),
	}

	if bucket == model.BucketCrisis {
		out.CrisisResources = append([]string(nil), s.cfg.Helplines...)
		if _, err := s.notifier.Raise(ctx, actor.UserID, actor.College, "crisis language in counselor chat", ""); err != nil {
			log.WithError(err).WithField("user_id", actor.UserID).Error("failed to store crisis report")
		}
	}

	return out, nil
}

// SendDirect delivers a message between a student and a staff member of the same college
func (s *ChatService) SendDirect(ctx context.Context, actor *model.UserClaims, to, text string) (*model.ChatMessage, error) {
	text, err := s.cleanText(text)
	if err != nil {
		return nil, err
	}
	if to == actor.UserID {
		return nil, fmt.Errorf("%w: cannot message yourself", ErrInvalidInput)
	}

	recipient, err := s.users.GetByID(ctx, to)
	if err != nil {
		return nil, err
	}
	if recipient == nil || !recipient.Active {
		return nil, ErrNotFound
	}
	if !canMessage(actor, recipient) {
		return nil, ErrForbidden
	}

	msg := &model.ChatMessage{
		ID:             uuid.New().String(),
		ConversationID: model.DirectConversationID(actor.UserID, recipient.ID),
		SenderID:       actor.UserID,
		RecipientID:    recipient.ID,
		Text:           text,
		Bucket:         counselor.DetectBucket(text),
		CreatedAt:      s.now(),
	}
	if err := s.chats.Create(ctx, msg); err != nil {
		return nil, err
	}

	s.broadcaster.SendToUser(recipient.ID, model.EventChatMessage, msg)

	// A student writing in crisis terms to a counsellor still alerts the whole college
	if actor.Role == model.RoleStudent && msg.Bucket == model.BucketCrisis {
		if _, err := s.notifier.Raise(ctx, actor.UserID, actor.College, "crisis language in direct message", ""); err != nil {
			log.WithError(err).WithField("user_id", actor.UserID).Error("failed to store crisis report")
		}
	}

	return msg, nil
}

// History returns the messages of a conversation the actor takes part in
func (s *ChatService) History(ctx context.Context, actor *model.UserClaims, conversationID string, limit int) ([]*model.ChatMessage, error) {
	if conversationID == "" {
		return nil, fmt.Errorf("%w: conversation id is required", ErrInvalidInput)
	}
	if actor.Role != model.RoleAdmin && !lo.Contains(model.ConversationParticipants(conversationID), actor.UserID) {
		return nil, ErrForbidden
	}
	if limit <= 0 || limit > s.cfg.HistoryLimit {
		limit = s.cfg.HistoryLimit
	}
	return s.chats.ListByConversation(ctx, conversationID, limit)
}

func (s *ChatService) cleanText(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("%w: message is empty", ErrInvalidInput)
	}
	if s.cfg.MaxMessageLength > 0 && utf8.RuneCountInString(text) > s.cfg.MaxMessageLength {
		return "", fmt.Errorf("%w: message longer than %d characters", ErrInvalidInput, s.cfg.MaxMessageLength)
	}
	return text, nil
}

// canMessage allows messages between a student and a counsellor of the same
// college. Admins can message anyone.
func canMessage(actor *model.UserClaims, recipient *model.User) bool {
	if actor.Role == model.RoleAdmin {
		return true
	}
	if actor.College != recipient.College {
		return false
	}
	switch actor.Role {
	case model.RoleStudent:
		return recipient.Role == model.RoleCounsellor
	case model.RoleCounsellor:
		return recipient.Role == model.RoleStudent
	}
	return false
}
