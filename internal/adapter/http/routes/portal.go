package routes

import (
	"cip_portal/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPortal    = "/portal"
	PathAssistant = "/assistant"
)

func addPortalRoutes(rg *gin.RouterGroup, portalHandler *handlers.PortalHandler, assistantHandler *handlers.AssistantHandler) {
	portal := rg.Group(PathPortal)
	{
		portal.GET("/summary", portalHandler.GetSummary)
		portal.GET("/announcements", portalHandler.GetAnnouncements)
		portal.GET("/insights", portalHandler.GetInsights)
	}

	assistant := rg.Group(PathAssistant)
	{
		assistant.POST("/messages", assistantHandler.PostMessage)
		assistant.GET("/templates", assistantHandler.ListTemplates)
		assistant.GET("/templates/:kind", assistantHandler.GetTemplate)
	}
}
