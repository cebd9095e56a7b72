package rest

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"
	"github.com/swaggo/swag"

	"mindcare/internal/config"
	"mindcare/internal/model"
	"mindcare/internal/service"
	"mindcare/internal/transport/rest/handler"
	"mindcare/internal/transport/rest/middleware"
	"mindcare/internal/transport/ws"

	_ "mindcare/docs"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService       *service.AuthService
	UserService       *service.UserService
	AssessmentService *service.AssessmentService
	ChatService       *service.ChatService
	SessionService    *service.SessionService
	ReportService     *service.ReportService
	DashboardService  *service.DashboardService
	FeedbackService   *service.FeedbackService
	WSHub             *ws.Hub
	CORS              config.CORSConfig
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	userHandler := handler.NewUserHandler(c.UserService)
	assessmentHandler := handler.NewAssessmentHandler(c.AssessmentService)
	chatHandler := handler.NewChatHandler(c.ChatService)
	sessionHandler := handler.NewSessionHandler(c.SessionService)
	reportHandler := handler.NewReportHandler(c.ReportService)
	dashboardHandler := handler.NewDashboardHandler(c.DashboardService)
	feedbackHandler := handler.NewFeedbackHandler(c.FeedbackService)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService, c.ChatService, c.CORS.Origins())

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)
	staff := middleware.RequireRole(model.RoleCounsellor, model.RoleCollegeHead, model.RoleAdmin)

	// CORS middleware (apply first)
	r.Use(cors.New(cors.Options{
		AllowedOrigins: c.CORS.Origins(),
		AllowedMethods: c.CORS.Methods(),
		AllowedHeaders: c.CORS.Headers(),
	}).Handler)
	r.Use(middleware.Logging)

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	r.HandleFunc("/swagger/doc.json", swaggerDoc).Methods("GET")

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/register", authHandler.Register).Methods("POST", "OPTIONS")
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")

	// WebSocket route (token in query param)
	v1.HandleFunc("/ws", wsHandler.ServeWS).Methods("GET")

	// Authenticated routes, any role
	authed := v1.NewRoute().Subrouter()
	authed.Use(authMW.RequireAuth)

	authed.HandleFunc("/auth/logout", authHandler.Logout).Methods("POST", "OPTIONS")
	authed.HandleFunc("/me", userHandler.Me).Methods("GET", "OPTIONS")
	authed.HandleFunc("/me", userHandler.UpdateMe).Methods("PUT", "OPTIONS")
	authed.HandleFunc("/users/{id}", userHandler.Get).Methods("GET", "OPTIONS")
	authed.HandleFunc("/assessments", assessmentHandler.History).Methods("GET", "OPTIONS")
	authed.HandleFunc("/assessments/latest", assessmentHandler.Latest).Methods("GET", "OPTIONS")
	authed.HandleFunc("/chat/direct/{userId}", chatHandler.Direct).Methods("POST", "OPTIONS")
	authed.HandleFunc("/chat/conversations/{id}/messages", chatHandler.Messages).Methods("GET", "OPTIONS")
	authed.HandleFunc("/sessions", sessionHandler.List).Methods("GET", "OPTIONS")
	authed.HandleFunc("/sessions/{id}/cancel", sessionHandler.Cancel).Methods("POST", "OPTIONS")
	authed.HandleFunc("/dashboard", dashboardHandler.Get).Methods("GET", "OPTIONS")
	authed.HandleFunc("/feedback", feedbackHandler.Submit).Methods("POST", "OPTIONS")

	// Student routes
	studentRoutes := authed.NewRoute().Subrouter()
	studentRoutes.Use(middleware.RequireRole(model.RoleStudent))

	studentRoutes.HandleFunc("/assessments", assessmentHandler.Submit).Methods("POST", "OPTIONS")
	studentRoutes.HandleFunc("/chat/bot", chatHandler.Bot).Methods("POST", "OPTIONS")
	studentRoutes.HandleFunc("/sessions", sessionHandler.Book).Methods("POST", "OPTIONS")

	// Counsellor routes
	counsellorRoutes := authed.NewRoute().Subrouter()
	counsellorRoutes.Use(middleware.RequireRole(model.RoleCounsellor))

	counsellorRoutes.HandleFunc("/sessions/{id}/confirm", sessionHandler.Confirm).Methods("POST", "OPTIONS")
	counsellorRoutes.HandleFunc("/sessions/{id}/complete", sessionHandler.Complete).Methods("POST", "OPTIONS")
	counsellorRoutes.HandleFunc("/reports", reportHandler.Create).Methods("POST", "OPTIONS")

	// Staff routes
	staffRoutes := authed.NewRoute().Subrouter()
	staffRoutes.Use(staff)

	staffRoutes.HandleFunc("/users", userHandler.List).Methods("GET", "OPTIONS")
	staffRoutes.HandleFunc("/users/{id}/counsellor", userHandler.AssignCounsellor).Methods("POST", "OPTIONS")
	staffRoutes.HandleFunc("/assessments/risk", assessmentHandler.RiskBoard).Methods("GET", "OPTIONS")
	staffRoutes.HandleFunc("/reports", reportHandler.List).Methods("GET", "OPTIONS")
	staffRoutes.HandleFunc("/reports/{id}/status", reportHandler.UpdateStatus).Methods("PUT", "OPTIONS")

	// Admin routes
	adminRoutes := authed.NewRoute().Subrouter()
	adminRoutes.Use(middleware.RequireRole(model.RoleAdmin))

	adminRoutes.HandleFunc("/users", userHandler.Create).Methods("POST", "OPTIONS")
	adminRoutes.HandleFunc("/users/{id}/active", userHandler.SetActive).Methods("POST", "OPTIONS")
	adminRoutes.HandleFunc("/feedback", feedbackHandler.List).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/feedback/summary", feedbackHandler.Summary).Methods("GET", "OPTIONS")

	return r
}

func swaggerDoc(w http.ResponseWriter, r *http.Request) {
	doc, err := swag.ReadDoc()
	if err != nil {
		log.WithError(err).Error("failed to render swagger doc")
		http.Error(w, "swagger doc unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(doc))
}
