package api

import (
	"errors"
	"net/http"

	"rooftop-wizard/internal/handler/dto/request"
	"rooftop-wizard/internal/handler/dto/response"
	"rooftop-wizard/internal/handler/httperr"
	"rooftop-wizard/internal/handler/middleware"
	"rooftop-wizard/internal/usecase/commands"
	"rooftop-wizard/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type WizardHandler struct {
	commands commands.WizardCommands
	queries  queries.WizardQueries
}

func NewWizardHandler(cmds commands.WizardCommands, qrys queries.WizardQueries) *WizardHandler {
	return &WizardHandler{
		commands: cmds,
		queries:  qrys,
	}
}

// OpenSession godoc
// @Summary Open a booking wizard session
// @Tags wizard
// @Accept json
// @Produce json
// @Param request body request.OpenWizardRequest true "Rooftop summary"
// @Success 201 {object} response.SessionResponse
// @Failure 400 {object} map[string]string
// @Router /api/wizard/sessions [post]
func (h *WizardHandler) OpenSession(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req request.OpenWizardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.commands.Open(c.Request.Context(), userID, commands.OpenWizardInput{
		Rooftop: req.Rooftop.ToParams(),
	})
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.FromSessionView(view))
}

// GetSession godoc
// @Summary Get the current wizard session state
// @Tags wizard
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.SessionResponse
// @Failure 404 {object} map[string]string
// @Router /api/wizard/sessions/{id} [get]
func (h *WizardHandler) GetSession(c *gin.Context) {
	userID, sessionID, ok := h.sessionScope(c)
	if !ok {
		return
	}

	view, err := h.queries.GetSession(c.Request.Context(), userID, sessionID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		case errors.Is(err, queries.ErrSessionAccessDenied):
			c.JSON(http.StatusForbidden, gin.H{"error": "Session belongs to another user"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get session"})
		}
		return
	}

	c.JSON(http.StatusOK, response.FromSessionView(view))
}

// SelectDate godoc
// @Summary Select the reservation date
// @Tags wizard
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body request.SelectDateRequest true "Date in YYYY-MM-DD"
// @Success 200 {object} response.SessionResponse
// @Failure 400 {object} map[string]string
// @Router /api/wizard/sessions/{id}/date [post]
func (h *WizardHandler) SelectDate(c *gin.Context) {
	userID, sessionID, ok := h.sessionScope(c)
	if !ok {
		return
	}

	var req request.SelectDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.commands.SelectDate(c.Request.Context(), userID, sessionID, req.Date)
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromSessionView(view))
}

// SetTimes godoc
// @Summary Edit the reservation time window
// @Tags wizard
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body request.SetTimesRequest true "Start and/or end hour"
// @Success 200 {object} response.SessionResponse
// @Failure 400 {object} map[string]string
// @Router /api/wizard/sessions/{id}/times [post]
func (h *WizardHandler) SetTimes(c *gin.Context) {
	userID, sessionID, ok := h.sessionScope(c)
	if !ok {
		return
	}

	var req request.SetTimesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if req.IsEmpty() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "startHour or endHour is required"})
		return
	}

	view, err := h.commands.SetTimes(c.Request.Context(), userID, sessionID, req.StartHour, req.EndHour)
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromSessionView(view))
}

// UpdatePayment godoc
// @Summary Update payment card fields
// @Tags wizard
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body request.UpdatePaymentRequest true "Card fields to update"
// @Success 200 {object} response.SessionResponse
// @Failure 409 {object} map[string]string
// @Router /api/wizard/sessions/{id}/payment [post]
func (h *WizardHandler) UpdatePayment(c *gin.Context) {
	userID, sessionID, ok := h.sessionScope(c)
	if !ok {
		return
	}

	var req request.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.commands.UpdatePayment(c.Request.Context(), userID, sessionID, req.ToUpdate())
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromSessionView(view))
}

// Advance godoc
// @Summary Run the current step's primary action
// @Tags wizard
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.AdvanceResponse
// @Failure 422 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /api/wizard/sessions/{id}/next [post]
func (h *WizardHandler) Advance(c *gin.Context) {
	userID, sessionID, ok := h.sessionScope(c)
	if !ok {
		return
	}

	outcome, err := h.commands.Advance(c.Request.Context(), userID, sessionID)
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromAdvanceOutcome(outcome))
}

// Back godoc
// @Summary Step back, cancelling the wizard from the first step
// @Tags wizard
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.AdvanceResponse
// @Router /api/wizard/sessions/{id}/back [post]
func (h *WizardHandler) Back(c *gin.Context) {
	userID, sessionID, ok := h.sessionScope(c)
	if !ok {
		return
	}

	outcome, err := h.commands.Back(c.Request.Context(), userID, sessionID)
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromAdvanceOutcome(outcome))
}

func (h *WizardHandler) sessionScope(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return uuid.Nil, uuid.Nil, false
	}

	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session ID"})
		return uuid.Nil, uuid.Nil, false
	}

	return userID, sessionID, true
}

func (h *WizardHandler) respondCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
	case errors.Is(err, commands.ErrSessionAccessDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": "Session belongs to another user"})
	case errors.Is(err, commands.ErrInvalidRooftop):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rooftop summary"})
	case errors.Is(err, commands.ErrInvalidDate):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or past date"})
	case errors.Is(err, commands.ErrInvalidTimeSlot):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid time slot"})
	case errors.Is(err, commands.ErrAdvanceBlocked):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Select an available date first"})
	case errors.Is(err, commands.ErrWrongStep):
		c.JSON(http.StatusConflict, gin.H{"error": "Operation not allowed on current step"})
	case errors.Is(err, commands.ErrSubmissionInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": "Booking submission already in progress"})
	case errors.Is(err, commands.ErrSubmissionFailed):
		c.JSON(http.StatusBadGateway, gin.H{"error": "Booking submission failed"})
	case errors.Is(err, commands.ErrAvailabilityFailed):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Availability check failed", nil)
	default:
		// Keeps the original error on the context for the request logger.
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
