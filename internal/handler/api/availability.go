package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	reqdto "healthsched/internal/handler/dto/request"
	resdto "healthsched/internal/handler/dto/response"
	"healthsched/internal/handler/httperr"
	"healthsched/internal/handler/middleware"
	"healthsched/internal/usecase/commands"
	"healthsched/internal/usecase/queries"
	"healthsched/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	availabilities commands.AvailabilityCommands
	slots          commands.SlotCommands
	slotQueries    queries.SlotQueries
}

func NewAvailabilityHandler(
	availabilities commands.AvailabilityCommands,
	slots commands.SlotCommands,
	slotQueries queries.SlotQueries,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilities: availabilities,
		slots:          slots,
		slotQueries:    slotQueries,
	}
}

// @Summary Create availability
// @Description Declare a working window and generate its appointment slots
// @Tags availability
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateAvailabilityRequest true "Availability"
// @Success 201 {object} resdto.CreateAvailabilityResponse
// @Failure 400 {object} map[string]any
// @Failure 401 {object} map[string]any
// @Router /availability [post]
func (h *AvailabilityHandler) CreateAvailability(c *gin.Context) {
	providerID, ok := middleware.GetSubjectID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingSubject, "Internal server error", nil)
		return
	}

	var req reqdto.CreateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.availabilities.Create(c.Request.Context(), req, providerID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDomainValidation):
			fields, _ := shared.AsFieldErrors(err)
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Validation failed", fields)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCreateAvailabilityResult(result))
}

// @Summary Provider calendar
// @Description List the authenticated provider's slots within a date range
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param from query string true "Range start (RFC 3339)"
// @Param to query string true "Range end (RFC 3339)"
// @Success 200 {object} resdto.SlotListResponse
// @Failure 400 {object} map[string]any
// @Router /availability/calendar [get]
func (h *AvailabilityHandler) Calendar(c *gin.Context) {
	providerID, ok := middleware.GetSubjectID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingSubject, "Internal server error", nil)
		return
	}

	from, to, err := parseTimeRange(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	views, err := h.slotQueries.ProviderCalendar(c.Request.Context(), providerID, from, to)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlotViews(views))
}

// @Summary Booked appointments for provider
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} resdto.BookedPageResponse
// @Router /availability/booked [get]
func (h *AvailabilityHandler) BookedAppointments(c *gin.Context) {
	providerID, ok := middleware.GetSubjectID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingSubject, "Internal server error", nil)
		return
	}

	page, size := parsePaging(c)
	result, err := h.slotQueries.BookedByProvider(c.Request.Context(), providerID, page, size)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookedPage(result))
}

// @Summary Delete slot
// @Description Remove a slot that has not been booked
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param id path string true "Slot ID"
// @Success 204
// @Failure 403 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Failure 409 {object} map[string]any
// @Router /availability/slots/{id} [delete]
func (h *AvailabilityHandler) DeleteSlot(c *gin.Context) {
	providerID, ok := middleware.GetSubjectID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingSubject, "Internal server error", nil)
		return
	}

	slotID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid slot ID", nil)
		return
	}

	if err := h.slots.Delete(c.Request.Context(), slotID, providerID); err != nil {
		respondSlotAdminError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Update slot status
// @Description Move a slot to cancelled or blocked
// @Tags availability
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Slot ID"
// @Success 204
// @Failure 403 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Failure 409 {object} map[string]any
// @Router /availability/slots/{id}/status [patch]
func (h *AvailabilityHandler) UpdateSlotStatus(c *gin.Context) {
	providerID, ok := middleware.GetSubjectID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingSubject, "Internal server error", nil)
		return
	}

	slotID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid slot ID", nil)
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.slots.UpdateStatus(c.Request.Context(), slotID, providerID, req.Status); err != nil {
		respondSlotAdminError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// errMissingSubject covers the impossible case of an authenticated route
// reached without the middleware having stored the subject.
var errMissingSubject = errors.New("authenticated subject missing from context")

func respondSlotAdminError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrSlotNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Slot not found", nil)
	case errors.Is(err, commands.ErrNotSlotOwner):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Slot belongs to another provider", nil)
	case errors.Is(err, commands.ErrSlotBooked):
		httperr.AbortWithError(c, http.StatusConflict, err, "Slot is booked", nil)
	case errors.Is(err, commands.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid slot status", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func parseTimeRange(c *gin.Context) (time.Time, time.Time, error) {
	from, err := parseTimeParam(c.Query("from"))
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("from must be an RFC 3339 timestamp or YYYY-MM-DD date")
	}
	to, err := parseTimeParam(c.Query("to"))
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("to must be an RFC 3339 timestamp or YYYY-MM-DD date")
	}
	if !to.After(from) {
		return time.Time{}, time.Time{}, errors.New("to must be after from")
	}
	return from, to, nil
}

// parseTimeParam accepts a full timestamp or a bare date; a date means
// midnight UTC, so a date-only range [d1, d2] covers d1 up to d2's midnight.
func parseTimeParam(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

func parsePaging(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", "20"))
	if err != nil || size < 1 {
		size = 20
	}
	return page, size
}
