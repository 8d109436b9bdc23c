package handlers

import (
	"net/http"

	"housing-price-service/internal/adapters/primary/http/dto"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) Register(c *gin.Context) {
	var req dto.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.sessionSvc.Register(c.Request.Context(), req.Username, req.Password); err != nil {
		log.WithError(err).WithField("username", req.Username).Info("register rejected")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.MessageResponse{Message: "user registered"})
}

func (h *Handler) Login(c *gin.Context) {
	var req dto.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.sessionSvc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Token: token, Message: "login successful"})
}
