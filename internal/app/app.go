package app

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mindcare/internal/cache"
	"mindcare/internal/config"
	"mindcare/internal/counselor"
	"mindcare/internal/repository"
	"mindcare/internal/scoring"
	"mindcare/internal/service"
	"mindcare/internal/transport/rest"
	"mindcare/internal/transport/ws"
)

const connectTimeout = 10 * time.Second

// App holds the storage clients and the stores built on them
type App struct {
	Config *config.Config
	Mongo  *mongo.Client
	DB     *mongo.Database
	Redis  *redis.Client

	Users       repository.UserRepo
	Assessments repository.AssessmentRepo
	Sessions    repository.SessionRepo
	Reports     repository.ReportRepo
	Feedback    repository.FeedbackRepo
	Chats       repository.ChatRepo

	LastAssessment cache.AssessmentCache
	RiskBoard      cache.RiskBoard
	Dashboards     cache.DashboardCache
	Tokens         cache.TokenCache
}

// SetupLogging configures the global logrus logger
func SetupLogging(cfg config.LogConfig) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
	if cfg.Format == "text" {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	} else {
		log.SetFormatter(&log.JSONFormatter{})
	}
}

// Connect dials MongoDB and Redis, ensures indexes and builds every store
func Connect(ctx context.Context, cfg *config.Config) (*App, error) {
	dialCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	mongoClient, err := mongo.Connect(dialCtx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := mongoClient.Ping(dialCtx, nil); err != nil {
		mongoClient.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	log.WithField("database", cfg.Mongo.Database).Info("connected to MongoDB")

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := rdb.Ping(dialCtx).Err(); err != nil {
		rdb.Close()
		mongoClient.Disconnect(ctx)
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	log.WithField("addr", cfg.Redis.Addr).Info("connected to Redis")

	db := mongoClient.Database(cfg.Mongo.Database)
	repository.EnsureIndexes(ctx, db)

	return &App{
		Config: cfg,
		Mongo:  mongoClient,
		DB:     db,
		Redis:  rdb,

		Users:       repository.NewUserRepo(db),
		Assessments: repository.NewAssessmentRepo(db),
		Sessions:    repository.NewSessionRepo(db),
		Reports:     repository.NewReportRepo(db),
		Feedback:    repository.NewFeedbackRepo(db),
		Chats:       repository.NewChatRepo(db),

		LastAssessment: cache.NewAssessmentCache(rdb, cfg.Cache.LastAssessmentTTL),
		RiskBoard:      cache.NewRiskBoard(rdb),
		Dashboards:     cache.NewDashboardCache(rdb, cfg.Cache.DashboardTTL),
		Tokens:         cache.NewTokenCache(rdb),
	}, nil
}

// Close releases both storage clients
func (a *App) Close(ctx context.Context) {
	if err := a.Redis.Close(); err != nil {
		log.WithError(err).Warn("failed to close redis")
	}
	if err := a.Mongo.Disconnect(ctx); err != nil {
		log.WithError(err).Warn("failed to disconnect mongo")
	}
}

// Container wires the services on top of the stores and points every
// notifier at hub
func (a *App) Container(hub *ws.Hub) *rest.Container {
	cfg := a.Config

	seed := cfg.Counselor.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	selector := counselor.NewSelector(rand.New(rand.NewPCG(seed, seed>>1|1)))

	authSvc := service.NewAuthService(a.Users, a.Tokens, cfg.JWT, cfg.Demo)
	notifier := service.NewCrisisNotifier(a.Reports)
	assessmentSvc := service.NewAssessmentService(scoring.NewScorer(time.Now), a.Assessments, a.Users, a.LastAssessment, a.RiskBoard, a.Dashboards, notifier)
	chatSvc := service.NewChatService(selector, assessmentSvc, a.Chats, a.Users, notifier, cfg.Counselor)
	sessionSvc := service.NewSessionService(a.Sessions, a.Users)
	feedbackSvc := service.NewFeedbackService(a.Feedback)
	userSvc := service.NewUserService(a.Users, authSvc, assessmentSvc)

	// Inject broadcaster (hub implements service.Broadcaster)
	notifier.SetBroadcaster(hub)
	chatSvc.SetBroadcaster(hub)
	sessionSvc.SetBroadcaster(hub)
	userSvc.SetBroadcaster(hub)

	return &rest.Container{
		AuthService:       authSvc,
		UserService:       userSvc,
		AssessmentService: assessmentSvc,
		ChatService:       chatSvc,
		SessionService:    sessionSvc,
		ReportService:     service.NewReportService(a.Reports, a.Users, a.Dashboards),
		DashboardService:  service.NewDashboardService(assessmentSvc, sessionSvc, feedbackSvc, a.Assessments, a.Reports, a.Users, a.RiskBoard, a.Dashboards),
		FeedbackService:   feedbackSvc,
		WSHub:             hub,
		CORS:              cfg.CORS,
	}
}
