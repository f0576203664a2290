package api

import (
	"github.com/gin-gonic/gin"

	"github.com/capitalizeai/scoring-api/internal/middleware"
	"github.com/capitalizeai/scoring-api/internal/service"
	"github.com/capitalizeai/scoring-api/internal/service/pubsub"
	"github.com/capitalizeai/scoring-api/pkg/logger"
)

type Server struct {
	organization *OrganizationHandler
	profile      *ProfileHandler
	apiKey       *APIKeyHandler
	scoring      *ScoringHandler
	analytics    *AnalyticsHandler
	billing      *BillingHandler
	transaction  *TransactionHandler
	websocket    *WebSocketHandler
	auth         *middleware.AuthMiddleware
	apiKeyAuth   *middleware.APIKeyMiddleware
	rateLimit    *middleware.RateLimitMiddleware
	validation   *middleware.ValidationMiddleware
}

func NewServer(
	organizationService *service.OrganizationService,
	profileService *service.ProfileService,
	apiKeyService *service.APIKeyService,
	scoringService *service.ScoringService,
	analyticsService *service.AnalyticsService,
	billingService *service.BillingService,
	transactionService *service.TransactionService,
	auth *middleware.AuthMiddleware,
	rateLimit *middleware.RateLimitMiddleware,
	validation *middleware.ValidationMiddleware,
	logger *logger.Logger,
	pubsub *pubsub.RedisPubSub,
) *Server {
	return &Server{
		organization: NewOrganizationHandler(organizationService),
		profile:      NewProfileHandler(profileService),
		apiKey:       NewAPIKeyHandler(apiKeyService),
		scoring:      NewScoringHandler(scoringService),
		analytics:    NewAnalyticsHandler(analyticsService),
		billing:      NewBillingHandler(billingService),
		transaction:  NewTransactionHandler(transactionService),
		websocket:    NewWebSocketHandler(logger, pubsub),
		auth:         auth,
		apiKeyAuth:   middleware.NewAPIKeyMiddleware(apiKeyService),
		rateLimit:    rateLimit,
		validation:   validation,
	}
}

func (s *Server) SetupRoutes(api *gin.RouterGroup) {
	// Apply security middleware first
	api.Use(s.validation.BlockSuspiciousPatterns())
	api.Use(s.validation.SanitizeInput())
	api.Use(s.validation.ValidateRequestSize(10 * 1024 * 1024)) // 10MB max
	api.Use(s.validation.ValidateContentType("application/json", "text/plain"))

	// Apply global rate limiting
	api.Use(s.rateLimit.GlobalRateLimit(10000)) // 10k requests per minute per IP

	{
		orgs := api.Group("/orgs", s.auth.JWTAuth())
		{
			orgs.POST("", s.organization.CreateOrganization)
			orgs.GET("", s.organization.ListOrganizations)
			orgs.GET("/:id", s.organization.GetOrganization)
			orgs.PATCH("/:id", s.organization.UpdateOrganization)
			orgs.GET("/:id/members", s.organization.ListMembers)
			orgs.POST("/:id/members", s.auth.RequireRole("admin"), s.organization.AddMember)
		}

		profile := api.Group("/profile", s.auth.JWTAuth())
		{
			profile.GET("", s.profile.GetProfile)
			profile.PUT("", s.profile.UpdateProfile)
		}

		apiKeys := api.Group("/api-keys", s.auth.JWTAuth(), s.rateLimit.OrgRateLimit(), s.auth.RequireRole("admin"))
		{
			apiKeys.POST("", s.apiKey.CreateAPIKey)
			apiKeys.GET("", s.apiKey.ListAPIKeys)
			apiKeys.DELETE("/:id", s.apiKey.DeactivateAPIKey)
		}

		scoring := api.Group("/scoring", s.auth.JWTAuth(), s.rateLimit.OrgRateLimit())
		{
			scoring.POST("", s.scoring.SubmitScoring)
			scoring.GET("", s.scoring.ListScorings)
			scoring.GET("/:id", s.scoring.GetScoring)
			scoring.DELETE("/archive", s.auth.RequireRole("admin"), s.scoring.ScheduleArchive)
			scoring.GET("/stream", s.websocket.HandleWebSocket)
		}

		// Machine clients authenticate with an API key instead of a JWT
		score := api.Group("/score", s.apiKeyAuth.APIKeyAuth("scoring:write"), s.rateLimit.OrgRateLimit())
		{
			score.POST("", s.scoring.SubmitScoring)
		}

		analytics := api.Group("/analytics", s.auth.JWTAuth(), s.rateLimit.OrgRateLimit())
		{
			analytics.GET("/dashboard", s.analytics.GetDashboardStats)
		}

		billing := api.Group("/billing", s.auth.JWTAuth(), s.rateLimit.OrgRateLimit())
		{
			billing.GET("/usage", s.billing.GetUsageSummary)
		}

		transactions := api.Group("/transactions", s.auth.JWTAuth(), s.rateLimit.OrgRateLimit())
		{
			transactions.POST("/bulk", s.transaction.BulkCreateTransactions)
			transactions.GET("/stats", s.transaction.GetSubjectStats)
		}
	}
}

// StartWebSocketHub starts the WebSocket hub for broadcasting scorings
func (s *Server) StartWebSocketHub() {
	go s.websocket.Start()
}

// GetWebSocketHandler returns the WebSocket handler for wiring up broadcasting
func (s *Server) GetWebSocketHandler() *WebSocketHandler {
	return s.websocket
}
