package routes

import (
	"orcafacil/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes        = "/quotes"
	PathKeywords      = "/keywords"
	PathNotifications = "/notifications"
)

func addQuoteRoutes(rg *gin.RouterGroup, h *handlers.QuoteHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", h.CreateQuote)
		quotes.GET("/:id", h.GetQuote)
		quotes.PATCH("/:id/status", h.UpdateQuoteStatus)
	}
}

func addKeywordRoutes(rg *gin.RouterGroup, h *handlers.KeywordHandler) {
	keywords := rg.Group(PathKeywords)
	{
		keywords.POST("", h.CreateKeyword)
		keywords.GET("", h.ListKeywords)
		keywords.PATCH("/:id/ativa", h.UpdateKeywordAtiva)
	}
}

func addNotificationRoutes(rg *gin.RouterGroup, h *handlers.NotificationHandler) {
	notifications := rg.Group(PathNotifications)
	{
		notifications.GET("", h.ListAll)
		notifications.GET("/unread", h.ListUnread)
		notifications.GET("/overdue", h.ListOverdue)
		notifications.GET("/active", h.ListActive)
		notifications.GET("/upcoming", h.ListUpcoming)
		notifications.GET("/summary", h.Summary)

		notifications.PATCH("/:id/read", h.MarkRead)
		notifications.PATCH("/read-all", h.MarkAllRead)
		notifications.DELETE("/:id", h.Delete)

		notifications.POST("/generate/:id", h.GenerateForQuote)
		notifications.POST("/process-all", h.ProcessAllAccepted)
	}
}
