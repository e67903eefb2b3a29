package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskledger/internal/models"
)

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{Status: "ok"})
}
