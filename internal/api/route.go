package api

import (
	"Conexus/internal/api/config"
	"Conexus/internal/api/middleware"
	"Conexus/internal/pkg/cache"
	"Conexus/internal/pkg/logger"
	"Conexus/internal/pkg/security"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup, tokenManager *security.TokenManager, c cache.Cache, cfg *config.Config) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r, cfg.Logstash.Index, cfg.Logstash.Token)

	authRequired := middleware.AuthMiddleware(tokenManager, c)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		userGroup := apiGroup.Group("/user")
		{
			// Open endpoints.
			userGroup.POST("/login", group.UserHandler.Login)
			userGroup.POST("/login/phone", group.UserHandler.LoginByPhone)
			userGroup.POST("/register", group.UserHandler.Register)
			userGroup.POST("/sms/send", group.UserHandler.SendSmsCode)
			userGroup.POST("/sms/check", group.UserHandler.CheckSmsCode)

			authGroup := userGroup.Group("")
			authGroup.Use(authRequired)
			{
				authGroup.POST("/logout", group.UserHandler.Logout)
				authGroup.GET("/info", group.UserHandler.GetUserInfo)
				authGroup.PUT("/profile", group.UserHandler.UpdateProfile)
			}
		}

		networkGroup := apiGroup.Group("/network")
		networkGroup.Use(authRequired)
		{
			networkGroup.POST("/connect/:user_id", group.NetworkHandler.Connect)
			networkGroup.DELETE("/connect/:user_id", group.NetworkHandler.Disconnect)
			networkGroup.GET("", group.NetworkHandler.GetNetwork)
			networkGroup.GET("/value", group.NetworkHandler.GetNetworkValue)
			networkGroup.GET("/analytics", group.NetworkHandler.GetNetworkAnalytics)
		}

		inviteGroup := apiGroup.Group("/invites")
		{
			// Click tracking is open: anyone following an invite link hits it.
			inviteGroup.POST("/click/:invite_id", group.InviteHandler.TrackClick)

			authGroup := inviteGroup.Group("")
			authGroup.Use(authRequired)
			{
				authGroup.POST("", group.InviteHandler.CreateInvite)
				authGroup.GET("", group.InviteHandler.GetInvites)
				authGroup.GET("/analytics/:invite_id", group.InviteHandler.GetInviteAnalytics)
			}
		}

		analyticsGroup := apiGroup.Group("/analytics")
		analyticsGroup.Use(authRequired)
		{
			analyticsGroup.GET("/network-growth", group.AnalyticsHandler.GetNetworkGrowth)
			analyticsGroup.GET("/engagement", group.AnalyticsHandler.GetUserEngagement)
			analyticsGroup.GET("/invite-effectiveness", group.AnalyticsHandler.GetInviteEffectiveness)
			analyticsGroup.GET("/network-value", group.AnalyticsHandler.GetNetworkValue)
		}

		metricsGroup := apiGroup.Group("/metrics")
		metricsGroup.Use(authRequired)
		{
			metricsGroup.GET("/network/7d", group.NetworkMetricHandler.GetMetrics7Days)
			metricsGroup.GET("/network/30d", group.NetworkMetricHandler.GetMetrics30Days)
		}
	}

	return r
}
