package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/ace2884/OR/internal/geocache"
	"github.com/ace2884/OR/internal/render"
	"github.com/ace2884/OR/internal/store"
)

type Handler struct {
	Employees *store.EmployeeStore
	Tickets   *store.TicketStore
	Geocache  *geocache.Cache
	Renderer  render.Renderer
	Validator *validator.Validate
	Logger    zerolog.Logger
}

func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "geocache_entries": h.Geocache.Len()})
}

func writeError(c *gin.Context, status int, code string, message string, details any) {
	c.JSON(status, gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}
