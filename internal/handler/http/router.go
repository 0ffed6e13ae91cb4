package http

import (
	"strings"
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/didip/tollbooth_gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/peiwenliu/sharecircle/internal/domain/contract"
	"github.com/peiwenliu/sharecircle/internal/domain/entity"
	"github.com/peiwenliu/sharecircle/internal/handler/http/middleware"
	"github.com/peiwenliu/sharecircle/internal/infrastructure/metrics"
	usecasecontract "github.com/peiwenliu/sharecircle/internal/usecase/contract"
)

type Router struct {
	userHandler     *UserHandler
	eventHandler    *EventHandler
	materialHandler *MaterialHandler
	landmarkHandler *LandmarkHandler
	commentHandler  *CommentHandler
	userUC          usecasecontract.IUserUseCase
	imageStorage    contract.IImageStorage
}

func NewRouter(
	userUC usecasecontract.IUserUseCase,
	eventUC usecasecontract.IEventUseCase,
	materialUC usecasecontract.IMaterialUseCase,
	landmarkUC usecasecontract.ILandmarkUseCase,
	commentUC usecasecontract.ICommentUseCase,
	imageStorage contract.IImageStorage,
) *Router {
	return &Router{
		userHandler:     NewUserHandler(userUC, eventUC, materialUC, landmarkUC),
		eventHandler:    NewEventHandler(eventUC),
		materialHandler: NewMaterialHandler(materialUC),
		landmarkHandler: NewLandmarkHandler(landmarkUC),
		commentHandler:  NewCommentHandler(commentUC),
		userUC:          userUC,
		imageStorage:    imageStorage,
	}
}

// allowOrigin accepts requests with no origin (server-to-server) and the
// hosted frontends; everything else is rejected.
func allowOrigin(origin string) bool {
	if origin == "" {
		return true
	}
	return strings.Contains(origin, "github.io") ||
		strings.Contains(origin, "localhost") ||
		strings.Contains(origin, "127.0.0.1")
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowOriginFunc:  allowOrigin,
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
	router.Use(tollbooth_gin.LimitHandler(lmt))
	router.Use(metrics.RequestMetrics())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	auth := middleware.Auth(r.userUC)
	uploadRequired := middleware.Upload(r.imageStorage, true)
	uploadOptional := middleware.Upload(r.imageStorage, false)

	user := router.Group("/user")
	{
		user.POST("", r.userHandler.Register)
		user.POST("/login", r.userHandler.Login)
		user.PATCH("/extend", auth, r.userHandler.Extend)
		user.GET("/profile", auth, r.userHandler.Profile)
		user.DELETE("/logout", auth, r.userHandler.Logout)
		user.PATCH("/change", auth, uploadOptional, r.userHandler.Change)
		user.GET("", auth, middleware.Admin(), r.userHandler.List)

		user.GET("/event", auth, r.userHandler.OwnEvents)
		user.GET("/share", auth, r.userHandler.OwnMaterials(entity.MaterialTypeShare))
		user.GET("/find", auth, r.userHandler.OwnMaterials(entity.MaterialTypeFind))
		user.GET("/landmark", auth, r.userHandler.OwnLandmarks)

		user.POST("/toggleFavorite", auth, r.userHandler.ToggleFavorite)
		user.GET("/mark", auth, r.userHandler.FavoriteEvents)
		user.PATCH("/mark", auth, r.userHandler.RemoveFavorite)
	}

	event := router.Group("/event")
	{
		event.POST("", auth, uploadRequired, r.eventHandler.Create)
		event.GET("", r.eventHandler.List)
		event.GET("/all", r.eventHandler.List)
		event.GET("/:id", r.eventHandler.Get)
		event.PATCH("/:id", auth, uploadOptional, r.eventHandler.Update)
		event.DELETE("/:id", auth, r.eventHandler.Delete)
	}

	material := router.Group("/material")
	{
		material.POST("", auth, uploadRequired, r.materialHandler.Create)
		material.GET("", r.materialHandler.List(""))
		material.GET("/share", r.materialHandler.List(entity.MaterialTypeShare))
		material.GET("/find", r.materialHandler.List(entity.MaterialTypeFind))
		material.GET("/share/all", auth, r.materialHandler.List(entity.MaterialTypeShare))
		material.GET("/find/all", auth, r.materialHandler.List(entity.MaterialTypeFind))
		material.POST("/donate", auth, r.materialHandler.Donate)
		material.GET("/:id", r.materialHandler.Get)
		material.PATCH("/:id", auth, uploadOptional, r.materialHandler.Update)
		material.DELETE("/:id", auth, r.materialHandler.Delete)
	}

	landmark := router.Group("/landmark")
	{
		landmark.POST("", auth, r.landmarkHandler.Create)
		landmark.GET("", r.landmarkHandler.List)
		landmark.GET("/:id", r.landmarkHandler.Get)
		landmark.PATCH("/:id", auth, r.landmarkHandler.Update)
		landmark.DELETE("/:id", auth, r.landmarkHandler.Delete)
	}

	comment := router.Group("/comment")
	{
		comment.POST("", auth, r.commentHandler.Create)
		comment.GET("/:id", auth, r.commentHandler.ListByMaterial)
		comment.PATCH("/:id", auth, r.commentHandler.Update)
		comment.DELETE("/:id", auth, r.commentHandler.Delete)
	}
}
