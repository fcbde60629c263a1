package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/mrcash/rewards/internal/server/http/handlers"
	"github.com/mrcash/rewards/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.RewardsFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	balanceHandler := handlers.NewBalanceHandler(facade)
	offerWallHandler := handlers.NewOfferWallHandler(facade)
	postbackHandler := handlers.NewPostbackHandler(facade)

	api := engine.Group("/api")
	api.GET("/postback/:wall", postbackHandler.Credit)
	api.POST("/postback/:wall", postbackHandler.Credit)

	user := api.Group("/user")
	user.POST("/register", authHandler.Register)
	user.POST("/login", authHandler.Login)

	userAuth := user.Group("")
	userAuth.Use(middleware.AuthRequired(facade))
	userAuth.GET("/balance", balanceHandler.Summary)
	userAuth.GET("/balance/stream", balanceHandler.Stream)
	userAuth.POST("/balance/withdraw", balanceHandler.Withdraw)
	userAuth.GET("/withdrawals", balanceHandler.Withdrawals)
	userAuth.GET("/offerwalls", offerWallHandler.Walls)
	userAuth.GET("/payment-methods", offerWallHandler.PaymentMethods)

	return engine
}
