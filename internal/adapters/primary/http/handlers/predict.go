package handlers

import (
	"net/http"
	"strconv"

	"housing-price-service/internal/adapters/primary/http/dto"
	"housing-price-service/internal/core/domain"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) Predict(c *gin.Context) {
	var req dto.PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.predictSvc.Predict(c.Request.Context(), domain.FeatureMap(req.Features))
	if err != nil {
		log.WithError(err).Warn("predict failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPredictResponse(result))
}

func (h *Handler) ListPredictions(c *gin.Context) {
	records, err := h.historySvc.List(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("list predictions failed")
		mapDomainError(c, err)
		return
	}

	items := make([]dto.PredictionRecordResponse, 0, len(records))
	for _, r := range records {
		items = append(items, dto.ToPredictionRecordResponse(r))
	}

	c.JSON(http.StatusOK, items)
}

func (h *Handler) DeletePrediction(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid prediction id"})
		return
	}

	deleted, err := h.historySvc.Delete(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Error("delete prediction failed")
		mapDomainError(c, err)
		return
	}

	msg := "prediction " + strconv.FormatInt(id, 10) + " deleted"
	if !deleted {
		msg = "prediction " + strconv.FormatInt(id, 10) + " not present, nothing to delete"
	}
	c.JSON(http.StatusOK, dto.DeletePredictionResponse{Message: msg, Deleted: deleted})
}
