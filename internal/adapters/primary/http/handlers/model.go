package handlers

import (
	"net/http"

	"housing-price-service/internal/adapters/primary/http/dto"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Ready reports whether a model is loaded and predictions can be served.
func (h *Handler) Ready(c *gin.Context) {
	if !h.registry.IsReady() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

func (h *Handler) ModelInfo(c *gin.Context) {
	info, err := h.registry.Describe()
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToModelInfoResponse(info))
}
