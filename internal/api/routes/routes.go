package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"group-registry-backend/internal/api/handlers"
	"group-registry-backend/internal/api/middleware"
	"group-registry-backend/internal/auth"
	"group-registry-backend/internal/config"
	"group-registry-backend/internal/repository"
	"group-registry-backend/internal/service"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	groupRepo := repository.NewGroupRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)
	inviteLinkRepo := repository.NewInviteLinkRepository(db)
	codeLookupRepo := repository.NewCodeLookupRepository(db)
	usernameRepo := repository.NewUsernameRepository(db)

	// Initialize services
	groupService := service.NewGroupService(groupRepo, codeLookupRepo, validator)
	membershipService := service.NewMembershipService(membershipRepo, validator)
	inviteLinkService := service.NewInviteLinkService(inviteLinkRepo, validator)
	usernameService := service.NewUsernameService(usernameRepo, validator)

	// Initialize auth
	authConfig, err := auth.LoadAuthConfig(cfg.AuthConfigPath)
	if err != nil {
		log.Printf("Warning: Failed to load auth config: %v", err)
		authConfig = nil
	}

	var authMiddleware *auth.AuthMiddleware
	if authConfig != nil {
		authService, err := auth.NewAuthService(authConfig)
		if err != nil {
			log.Printf("Warning: Failed to initialize auth service: %v", err)
		} else {
			authMiddleware = auth.NewAuthMiddleware(authService)
		}
	}

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	groupHandler := handlers.NewGroupHandler(groupService)
	membershipHandler := handlers.NewMembershipHandler(membershipService)
	inviteLinkHandler := handlers.NewInviteLinkHandler(inviteLinkService)
	usernameHandler := handlers.NewUsernameHandler(usernameService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	v1 := router.Group("/api/v1")

	// Public lookup routes (no auth required)
	lookup := v1.Group("/lookup")
	{
		lookup.GET("/groups/:code", groupHandler.ResolveGroupByCode)
		lookup.GET("/usernames/:name", usernameHandler.LookupUsername)
	}

	// Everything else requires authentication
	if authMiddleware != nil {
		v1.Use(authMiddleware.RequireAuth())
	}

	{
		// Group routes
		groups := v1.Group("/groups")
		{
			groups.POST("", groupHandler.CreateGroup)
			groups.GET("/:id", groupHandler.GetGroup)
			groups.POST("/:id/code", groupHandler.SetGroupCode)
			groups.PUT("/:id/settings", groupHandler.UpdateGroupSettings)

			// Membership routes
			groups.GET("/:id/members", membershipHandler.ListMembers)
			groups.POST("/:id/members", membershipHandler.JoinGroup)
			groups.POST("/:id/members/invite", membershipHandler.InviteMember)
			groups.DELETE("/:id/members/me", membershipHandler.LeaveGroup)
			groups.PUT("/:id/members/me/last-read", membershipHandler.UpdateLastRead)
			groups.GET("/:id/members/:identity", membershipHandler.GetMember)
			groups.DELETE("/:id/members/:identity", membershipHandler.KickMember)
			groups.PUT("/:id/members/:identity/role", membershipHandler.UpdateMemberRole)

			// Invite link routes
			groups.POST("/:id/invites", inviteLinkHandler.CreateInviteLink)
			groups.DELETE("/:id/invites/:code", inviteLinkHandler.RevokeInviteLink)
			groups.POST("/:id/invites/:code/redeem", inviteLinkHandler.RedeemInviteLink)
		}

		// Username routes
		usernames := v1.Group("/usernames")
		{
			usernames.POST("", usernameHandler.RegisterUsername)
			usernames.PUT("/:name/owner", usernameHandler.TransferUsername)
			usernames.PUT("/:name/key", usernameHandler.UpdateUsernameKey)
			usernames.DELETE("/:name", usernameHandler.ReleaseUsername)
		}
	}

	return router
}
