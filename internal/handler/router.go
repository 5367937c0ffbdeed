package handler

import (
	"net/http"

	"gamecatalog/backend/internal/catalog"
	"gamecatalog/backend/internal/hub"
	"gamecatalog/backend/internal/metrics"
	"gamecatalog/backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	// Swagger imports
	_ "gamecatalog/backend/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Deps are the collaborators the router hands to its handlers.
// Only Store is required.
type Deps struct {
	Store   catalog.Store
	Hub     *hub.Hub
	Metrics *metrics.Recorder
	Logger  *zap.Logger
	Swagger bool
}

// NewRouter builds the gin engine serving the catalog API.
func NewRouter(deps Deps) *gin.Engine {
	useJSONFieldNames()

	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	games := NewGameHandler(deps.Store, deps.Hub, deps.Metrics, log)

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(middleware.Recovery(log), middleware.Logging(log), deps.Metrics.Middleware())

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, ErrorResponse{Detail: detailNotFound})
	})
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, ErrorResponse{Detail: detailMethodNotAllowed})
	})

	router.GET("/", Root)
	router.GET("/ping", Ping)

	gameRoutes := router.Group("/games")
	{
		gameRoutes.GET("", games.GetGames)
		gameRoutes.POST("", games.CreateGame)
		gameRoutes.GET("/:id", games.GetGameByID)
		gameRoutes.PUT("/:id", games.UpdateGame)
		gameRoutes.DELETE("/:id", games.DeleteGame)
	}

	router.GET("/events", games.StreamEvents)

	if deps.Metrics != nil {
		router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}
	if deps.Swagger {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return router
}
