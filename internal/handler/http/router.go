package http

import (
	"net/http"
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/danielmek/hotelhub/internal/domain/contract"
	"github.com/danielmek/hotelhub/internal/handler/http/dto"
	"github.com/danielmek/hotelhub/internal/handler/http/middleware"
	"github.com/danielmek/hotelhub/internal/infrastructure/metrics"
	"github.com/danielmek/hotelhub/internal/domain/entity"
	usecasecontract "github.com/danielmek/hotelhub/internal/usecase/contract"
)

type Router struct {
	authHandler   *AuthHandler
	hotelHandler  *HotelHandler
	adminHandler  *AdminHandler
	uploadHandler *UploadHandler
	userUsecase   usecasecontract.IUserUseCase
	config        usecasecontract.IConfigProvider
}

func NewRouter(userUsecase usecasecontract.IUserUseCase, hotelUsecase usecasecontract.IHotelUseCase, storage contract.IFileStorage, mediaRepo contract.IMediaRepository, uuidGen contract.IUUIDGenerator, config usecasecontract.IConfigProvider) *Router {
	return &Router{
		authHandler:   NewAuthHandler(userUsecase),
		hotelHandler:  NewHotelHandler(hotelUsecase),
		adminHandler:  NewAdminHandler(userUsecase),
		uploadHandler: NewUploadHandler(storage, mediaRepo, uuidGen, config.GetMaxUploadSizeMB()),
		userUsecase:   userUsecase,
		config:        config,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	origins := r.config.GetCORSOrigins()
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	// rate limiter configuration
	lmt := tollbooth.NewLimiter(10, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage("Too many requests, please try again later.")
	router.Use(middleware.RateLimiter(lmt))
	router.Use(metrics.Middleware())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.Response{Success: true, Message: "ok"})
	})
	if dir := r.config.GetUploadDir(); dir != "" {
		router.Static("/uploads", dir)
	}

	api := router.Group("/api")

	// Public routes (no authentication required)
	auth := api.Group("/auth")
	{
		auth.POST("/register", r.authHandler.Register)
		auth.POST("/login", r.authHandler.Login)
	}

	// Protected routes (authentication required)
	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleWare(r.userUsecase))
	{
		protected.GET("/auth/profile", r.authHandler.GetProfile)
		protected.PUT("/auth/profile", r.authHandler.UpdateProfile)
		protected.PUT("/auth/password", r.authHandler.ChangePassword)

		// Hotel routes. Listing and reads are ownership-scoped inside the
		// usecase, so merchants only ever see their own hotels.
		protected.POST("/hotels", r.hotelHandler.CreateHotelHandler)
		protected.GET("/hotels", r.hotelHandler.GetHotelsHandler)
		protected.GET("/hotels/stats", r.hotelHandler.GetHotelStatsHandler)
		protected.GET("/hotels/:id", r.hotelHandler.GetHotelHandler)
		protected.PUT("/hotels/:id", r.hotelHandler.UpdateHotelHandler)
		protected.DELETE("/hotels/:id", r.hotelHandler.DeleteHotelHandler)
		protected.PUT("/hotels/:id/submit", r.hotelHandler.SubmitHotelHandler)
		protected.PUT("/hotels/:id/toggle", r.hotelHandler.ToggleHotelHandler)

		// Uploads
		protected.POST("/upload/single", r.uploadHandler.UploadFile)
		protected.POST("/upload/multiple", r.uploadHandler.UploadFiles)
		protected.GET("/uploads", r.uploadHandler.ListUploads)
		protected.DELETE("/uploads/:id", r.uploadHandler.DeleteUpload)

		// Audit requires an admin role
		audit := protected.Group("/")
		audit.Use(middleware.RequireRoles(entity.UserRoleAdmin, entity.UserRoleSuperAdmin))
		{
			audit.PUT("/hotels/:id/audit", r.hotelHandler.AuditHotelHandler)
		}

		// Admin account management, super_admin only
		admins := protected.Group("/admins")
		admins.Use(middleware.RequireRoles(entity.UserRoleSuperAdmin))
		{
			admins.POST("", r.adminHandler.CreateAdmin)
			admins.GET("", r.adminHandler.ListAdmins)
			admins.PUT("/:id/status", r.adminHandler.UpdateAdminStatus)
		}
	}
}
