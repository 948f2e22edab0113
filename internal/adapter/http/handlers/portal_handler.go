package handlers

import (
	"net/http"

	"cip_portal/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

// PortalHandler serves the static dashboard content: account summary,
// announcements and market insights. The data is fixed reference
// material, so the handler reads it straight from the domain layer.

type PortalHandler struct{}

func NewPortalHandler() *PortalHandler {
	return &PortalHandler{}
}

// GetSummary returns the distributor's credit and balance snapshot.
func (h *PortalHandler) GetSummary(c *gin.Context) {
	c.JSON(http.StatusOK, entities.DefaultAccountSummary())
}

// GetAnnouncements returns the pinned portal announcements.
func (h *PortalHandler) GetAnnouncements(c *gin.Context) {
	c.JSON(http.StatusOK, entities.DefaultAnnouncements())
}

// GetInsights returns the current market insight cards.
func (h *PortalHandler) GetInsights(c *gin.Context) {
	c.JSON(http.StatusOK, entities.DefaultInsights())
}
