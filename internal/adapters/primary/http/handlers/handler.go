package handlers

import (
	"net/http"

	"housing-price-service/internal/core/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	registry   *services.ModelRegistry
	predictSvc *services.PredictionService
	historySvc *services.HistoryService
	sessionSvc *services.SessionService
	metrics    http.Handler
}

func New(
	registry *services.ModelRegistry,
	predictSvc *services.PredictionService,
	historySvc *services.HistoryService,
	sessionSvc *services.SessionService,
	metrics http.Handler,
) *Handler {
	return &Handler{
		registry:   registry,
		predictSvc: predictSvc,
		historySvc: historySvc,
		sessionSvc: sessionSvc,
		metrics:    metrics,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	// Probes
	r.GET("/health", h.Health)
	r.GET("/ready", h.Ready)
	if h.metrics != nil {
		r.GET("/metrics", gin.WrapH(h.metrics))
	}

	// Model
	r.GET("/model/info", h.ModelInfo)
	r.POST("/predict", h.Predict)

	// Prediction history
	r.GET("/predictions", h.ListPredictions)
	r.DELETE("/predictions/:id", h.DeletePrediction)

	// Auth placeholder
	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)
}
