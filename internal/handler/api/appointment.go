package api

import (
	"errors"
	"net/http"

	resdto "healthsched/internal/handler/dto/response"
	"healthsched/internal/handler/httperr"
	"healthsched/internal/handler/middleware"
	"healthsched/internal/infra"
	"healthsched/internal/usecase/commands"
	"healthsched/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AppointmentHandler struct {
	bookings    commands.BookingCommands
	slotQueries queries.SlotQueries
}

func NewAppointmentHandler(bookings commands.BookingCommands, slotQueries queries.SlotQueries) *AppointmentHandler {
	return &AppointmentHandler{
		bookings:    bookings,
		slotQueries: slotQueries,
	}
}

// @Summary Search available slots
// @Description Search bookable slots within a time range, optionally by provider
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param from query string true "Range start (RFC 3339)"
// @Param to query string true "Range end (RFC 3339)"
// @Param provider_id query string false "Provider ID"
// @Success 200 {object} resdto.SlotListResponse
// @Failure 400 {object} map[string]any
// @Router /appointments/search [get]
func (h *AppointmentHandler) Search(c *gin.Context) {
	from, to, err := parseTimeRange(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	var providerID *uuid.UUID
	if raw := c.Query("provider_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid provider ID", nil)
			return
		}
		providerID = &id
	}

	views, err := h.slotQueries.SearchAvailable(c.Request.Context(), providerID, from, to)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlotViews(views))
}

// @Summary Get slot
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Slot ID"
// @Success 200 {object} resdto.SlotResponse
// @Failure 404 {object} map[string]any
// @Router /appointments/slots/{id} [get]
func (h *AppointmentHandler) GetSlot(c *gin.Context) {
	slotID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid slot ID", nil)
		return
	}

	view, err := h.slotQueries.GetByID(c.Request.Context(), slotID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Slot not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlotView(view))
}

// @Summary Book slot
// @Description Book an available slot for the authenticated patient
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Slot ID"
// @Success 200 {object} resdto.SlotResponse
// @Failure 404 {object} map[string]any
// @Failure 409 {object} map[string]any
// @Router /appointments/slots/{id}/book [post]
func (h *AppointmentHandler) BookSlot(c *gin.Context) {
	patientID, ok := middleware.GetSubjectID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingSubject, "Internal server error", nil)
		return
	}

	slotID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid slot ID", nil)
		return
	}

	result, err := h.bookings.BookSlot(c.Request.Context(), slotID, patientID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrSlotNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Slot not found", nil)
		case errors.Is(err, commands.ErrSlotNotAvailable):
			httperr.AbortWithError(c, http.StatusConflict, err, "Slot is not available", nil)
		case errors.Is(err, commands.ErrBookingContended):
			httperr.AbortWithError(c, http.StatusConflict, err, "Slot is being booked by another request", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlotView(result.Slot))
}

// @Summary Booked appointments for patient
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} resdto.BookedPageResponse
// @Router /appointments/booked [get]
func (h *AppointmentHandler) BookedAppointments(c *gin.Context) {
	patientID, ok := middleware.GetSubjectID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingSubject, "Internal server error", nil)
		return
	}

	page, size := parsePaging(c)
	result, err := h.slotQueries.BookedByPatient(c.Request.Context(), patientID, page, size)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookedPage(result))
}
