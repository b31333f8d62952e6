package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ace2884/OR/internal/models"
	"github.com/ace2884/OR/internal/store"
)

type CreateTicketRequest struct {
	Username        string `json:"username" validate:"required"`
	Location        string `json:"location" validate:"required"`
	Contact         string `json:"contact" validate:"required"`
	ProblemCategory string `json:"problem_occured" validate:"required"`
}

// @Summary Create ticket
// @Description Create a customer ticket; a unique ticket_number is generated
// @Tags tickets
// @Accept json
// @Produce json
// @Param ticket body CreateTicketRequest true "Ticket"
// @Success 201 {object} models.Ticket
// @Failure 400 {object} map[string]any
// @Router /api/tickets [post]
func (h *Handler) TicketCreate(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid JSON body", err.Error())
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing required fields", err.Error())
		return
	}

	ticket, err := h.Tickets.Create(models.Ticket{
		Username:        req.Username,
		Location:        req.Location,
		Contact:         req.Contact,
		ProblemCategory: req.ProblemCategory,
	})
	if err != nil {
		h.Logger.Error().Err(err).Msg("failed to save ticket")
		writeError(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to save ticket", err.Error())
		return
	}
	c.JSON(http.StatusCreated, ticket)
}

// @Summary List tickets
// @Tags tickets
// @Produce json
// @Param username query string false "Username filter"
// @Param ticket_number query string false "Ticket number filter"
// @Success 200 {object} map[string]any
// @Router /api/tickets [get]
func (h *Handler) TicketsList(c *gin.Context) {
	tickets, err := h.Tickets.List(c.Query("username"), c.Query("ticket_number"))
	if err != nil {
		if errors.Is(err, store.ErrNoData) {
			// No ticket was ever created; an empty list, not an error.
			c.JSON(http.StatusOK, gin.H{"customers": []models.Ticket{}, "count": 0})
			return
		}
		writeError(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to read tickets", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": tickets, "count": len(tickets)})
}
