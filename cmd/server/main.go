package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/sawai-h/saas-rbac-api/internal/authz"
	"github.com/sawai-h/saas-rbac-api/internal/config"
	"github.com/sawai-h/saas-rbac-api/internal/database"
	"github.com/sawai-h/saas-rbac-api/internal/handlers"
	"github.com/sawai-h/saas-rbac-api/internal/middleware"
	"github.com/sawai-h/saas-rbac-api/internal/repository"
	"github.com/sawai-h/saas-rbac-api/internal/services"
	"github.com/sawai-h/saas-rbac-api/internal/token"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	db := database.GetDB()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	orgRepo := repository.NewOrganizationRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	inviteRepo := repository.NewInviteRepository(db)

	// Identity provider and authorization core
	tokens := token.NewProvider([]byte(cfg.JWTSecret), cfg.JWTIssuer, cfg.JWTTTL)
	engine := authz.NewEngine()
	resolver := services.NewMembershipResolver(orgRepo)
	guard := services.NewGuard(resolver, engine)

	// Services
	authService := services.NewAuthService(userRepo, orgRepo)
	orgService := services.NewOrganizationService(orgRepo)
	projectService := services.NewProjectService(projectRepo)
	memberService := services.NewMemberService(orgRepo)
	inviteService := services.NewInviteService(inviteRepo, userRepo, orgRepo)
	billingService := services.NewBillingService(orgRepo, projectRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, tokens)
	orgHandler := handlers.NewOrganizationHandler(guard, orgService)
	projectHandler := handlers.NewProjectHandler(guard, projectService)
	memberHandler := handlers.NewMemberHandler(guard, memberService)
	inviteHandler := handlers.NewInviteHandler(guard, inviteService)
	billingHandler := handlers.NewBillingHandler(guard, billingService)

	// Initialize Gin router
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.GET("/profile", middleware.RequireAuth(tokens), authHandler.GetProfile)
		}

		// Organization routes (protected)
		orgs := api.Group("/organizations")
		orgs.Use(middleware.RequireAuth(tokens))
		{
			orgs.POST("", orgHandler.CreateOrganization)
			orgs.GET("", orgHandler.ListOrganizations)
			orgs.GET("/:slug", orgHandler.GetOrganization)
			orgs.GET("/:slug/membership", orgHandler.GetMembership)
			orgs.PUT("/:slug", orgHandler.UpdateOrganization)
			orgs.DELETE("/:slug", orgHandler.ShutdownOrganization)
			orgs.PATCH("/:slug/owner", orgHandler.TransferOrganization)

			orgs.GET("/:slug/billing", billingHandler.GetBilling)

			orgs.POST("/:slug/projects", projectHandler.CreateProject)
			orgs.GET("/:slug/projects", projectHandler.ListProjects)
			orgs.GET("/:slug/projects/:projectSlug", projectHandler.GetProject)
			orgs.PUT("/:slug/projects/:projectId", projectHandler.UpdateProject)
			orgs.DELETE("/:slug/projects/:projectId", projectHandler.DeleteProject)

			orgs.GET("/:slug/members", memberHandler.ListMembers)
			orgs.PUT("/:slug/members/:memberId", memberHandler.UpdateMember)
			orgs.DELETE("/:slug/members/:memberId", memberHandler.RemoveMember)

			orgs.POST("/:slug/invites", inviteHandler.CreateInvite)
			orgs.GET("/:slug/invites", inviteHandler.ListInvites)
			orgs.DELETE("/:slug/invites/:inviteId", inviteHandler.RevokeInvite)
		}

		// Invite routes acting as the invited user (protected)
		invites := api.Group("/invites")
		invites.Use(middleware.RequireAuth(tokens))
		{
			invites.GET("/pending", inviteHandler.ListPendingInvites)
			invites.POST("/:inviteId/accept", inviteHandler.AcceptInvite)
			invites.POST("/:inviteId/reject", inviteHandler.RejectInvite)
		}
	}

	// Start server
	log.Printf("Server starting on %s", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
