package app

import (
	"net/http"

	"github.com/BrunoMartendal/webhook-pix2/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (a *App) RegisterRoutes(webhook *handlers.WebhookHandler, keys *handlers.KeyHandler, charges *handlers.ChargeHandler) {
	pix := a.Router.Group("/webhook/pix")
	pix.POST("", webhook.ReceiveNotification)
	pix.GET("/status", webhook.Status)

	keyGroup := a.Router.Group("/keys")
	keyGroup.GET("", keys.ListKeys)
	keyGroup.POST("", keys.AddKey)
	keyGroup.DELETE("/:id", keys.DeleteKey)

	a.Router.POST("/charges", charges.CreateCharge)
	a.Router.GET("/transactions", charges.ListTransactions)

	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	a.Router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
