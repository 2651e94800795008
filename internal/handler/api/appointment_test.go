//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"healthsched/internal/handler/api"
	"healthsched/internal/infra"
	"healthsched/internal/pkg/jwt"
	"healthsched/internal/usecase/commands"
	"healthsched/internal/usecase/queries"
	"healthsched/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type stubBookingCommands struct {
	result *commands.BookingResult
	err    error

	gotSlotID    uuid.UUID
	gotPatientID uuid.UUID
}

func (s *stubBookingCommands) BookSlot(_ context.Context, slotID, patientID uuid.UUID) (*commands.BookingResult, error) {
	s.gotSlotID = slotID
	s.gotPatientID = patientID
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

type stubSlotQueries struct {
	view      *queries.SlotView
	views     []*queries.SlotView
	page      *queries.BookedPage
	err       error
	gotFrom   time.Time
	gotTo     time.Time
	gotFilter *uuid.UUID
}

func (s *stubSlotQueries) GetByID(context.Context, uuid.UUID) (*queries.SlotView, error) {
	return s.view, s.err
}

func (s *stubSlotQueries) ProviderCalendar(_ context.Context, _ uuid.UUID, from, to time.Time) ([]*queries.SlotView, error) {
	s.gotFrom, s.gotTo = from, to
	return s.views, s.err
}

func (s *stubSlotQueries) SearchAvailable(_ context.Context, providerID *uuid.UUID, from, to time.Time) ([]*queries.SlotView, error) {
	s.gotFilter = providerID
	s.gotFrom, s.gotTo = from, to
	return s.views, s.err
}

func (s *stubSlotQueries) BookedByProvider(context.Context, uuid.UUID, int, int) (*queries.BookedPage, error) {
	return s.page, s.err
}

func (s *stubSlotQueries) BookedByPatient(context.Context, uuid.UUID, int, int) (*queries.BookedPage, error) {
	return s.page, s.err
}

type AppointmentHandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	bookings  *stubBookingCommands
	slots     *stubSlotQueries
	patientID uuid.UUID
}

func (s *AppointmentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.bookings = &stubBookingCommands{}
	s.slots = &stubSlotQueries{}
	s.patientID = uuid.New()

	handler := api.NewAppointmentHandler(s.bookings, s.slots)

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("subject_id", s.patientID)
		c.Set("role", jwt.RolePatient)
		c.Next()
	}

	s.router.GET("/appointments/search", authMiddleware, handler.Search)
	s.router.GET("/appointments/slots/:id", authMiddleware, handler.GetSlot)
	s.router.POST("/appointments/slots/:id/book", authMiddleware, handler.BookSlot)
	s.router.GET("/appointments/booked", authMiddleware, handler.BookedAppointments)
}

func TestAppointmentHandlerSuite(t *testing.T) {
	suite.Run(t, new(AppointmentHandlerTestSuite))
}

func (s *AppointmentHandlerTestSuite) TestBookSlot() {
	slotID := uuid.New()
	url := "/appointments/slots/" + slotID.String() + "/book"

	s.Run("success: returns 200 with the booked slot", func() {
		s.bookings.err = nil
		s.bookings.result = &commands.BookingResult{Slot: &queries.SlotView{ID: slotID, Status: "booked"}}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")

		s.Equal(http.StatusOK, rec.Code)
		s.Equal(slotID, s.bookings.gotSlotID)
		s.Equal(s.patientID, s.bookings.gotPatientID)
		s.Contains(rec.Body.String(), `"status":"booked"`)
	})

	s.Run("unknown slot: returns 404", func() {
		s.bookings.err = commands.ErrSlotNotFound
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("taken slot: returns 409", func() {
		s.bookings.err = commands.ErrSlotNotAvailable
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("contended slot: returns 409", func() {
		s.bookings.err = commands.ErrBookingContended
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("malformed slot id: returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/appointments/slots/not-a-uuid/book", nil, "token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("no token: returns 401", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *AppointmentHandlerTestSuite) TestSearch() {
	s.Run("passes the range and provider filter through", func() {
		providerID := uuid.New()
		s.slots.views = []*queries.SlotView{{ID: uuid.New(), Status: "available"}}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/appointments/search?from=2025-06-02&to=2025-06-03&provider_id="+providerID.String(), nil, "token")

		s.Equal(http.StatusOK, rec.Code)
		s.Require().NotNil(s.slots.gotFilter)
		s.Equal(providerID, *s.slots.gotFilter)
		s.Equal(time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), s.slots.gotFrom)
		s.Contains(rec.Body.String(), `"count":1`)
	})

	s.Run("missing range: returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments/search", nil, "token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("to before from: returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/appointments/search?from=2025-06-03&to=2025-06-02", nil, "token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("bad provider filter: returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/appointments/search?from=2025-06-02&to=2025-06-03&provider_id=nope", nil, "token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *AppointmentHandlerTestSuite) TestGetSlot() {
	slotID := uuid.New()

	s.Run("found: returns 200", func() {
		s.slots.err = nil
		s.slots.view = &queries.SlotView{ID: slotID, Status: "available"}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments/slots/"+slotID.String(), nil, "token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("missing: returns 404", func() {
		s.slots.err = infra.WrapRepoErr("slot not found", nil, infra.KindNotFound)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments/slots/"+slotID.String(), nil, "token")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}
