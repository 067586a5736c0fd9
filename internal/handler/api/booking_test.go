//go:build unit

package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"campusbook/internal/domain/user"
	"campusbook/internal/handler/api"
	"campusbook/internal/usecase/commands"
	"campusbook/internal/usecase/queries"
	commandsmock "campusbook/tests/mock/commands"
	queriesmock "campusbook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
	userID       uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", user.RoleStudent)
		c.Next()
	}

	s.router.POST("/bookings", authMiddleware, s.handler.CreateBooking)
	s.router.GET("/bookings/:id", authMiddleware, s.handler.GetBooking)
	s.router.PATCH("/bookings/:id", authMiddleware, s.handler.UpdateBookingInterval)
	s.router.DELETE("/bookings/:id", authMiddleware, s.handler.CancelBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) perform(method, url string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer test-token")

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *BookingHandlerTestSuite) sampleView() *queries.BookingView {
	return &queries.BookingView{
		ID:           uuid.New(),
		ResourceID:   uuid.New(),
		ResourceName: "Room A",
		ResourceKind: "room",
		UserID:       s.userID,
		UserName:     "Dana",
		StartTime:    time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
		EndTime:      time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC),
		Status:       "confirmed",
	}
}

func (s *BookingHandlerTestSuite) createBody() map[string]any {
	return map[string]any{
		"resource_id": uuid.New().String(),
		"start_time":  "2026-03-02T10:00:00Z",
		"end_time":    "2026-03-02T12:00:00Z",
	}
}

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"

	s.Run("returns 201 for an admitted booking", func() {
		view := s.sampleView()
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(view, nil).Times(1)

		rec := s.perform(http.MethodPost, url, s.createBody())

		s.Equal(http.StatusCreated, rec.Code)
		var body map[string]any
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Equal(view.ID.String(), body["id"])
		s.Equal("confirmed", body["status"])
	})

	s.Run("returns 409 when capacity is exceeded", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrCapacityExceeded).Times(1)

		rec := s.perform(http.MethodPost, url, s.createBody())
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("returns 404 for unknown resource", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrResourceNotFound).Times(1)

		rec := s.perform(http.MethodPost, url, s.createBody())
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("returns 404 for inactive resource", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrResourceUnavailable).Times(1)

		rec := s.perform(http.MethodPost, url, s.createBody())
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("returns 400 for an invalid interval", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrInvalidInterval).Times(1)

		rec := s.perform(http.MethodPost, url, s.createBody())
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("returns 503 when storage is unavailable", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrStorageUnavailable).Times(1)

		rec := s.perform(http.MethodPost, url, s.createBody())
		s.Equal(http.StatusServiceUnavailable, rec.Code)
	})

	s.Run("returns 400 for malformed body", func() {
		rec := s.perform(http.MethodPost, url, map[string]any{"resource_id": "not-a-uuid"})
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("returns 401 without token", func() {
		req := httptest.NewRequest(http.MethodPost, url, bytes.NewReader(nil))
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *BookingHandlerTestSuite) TestUpdateBookingInterval() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String()
	body := map[string]any{
		"start_time": "2026-03-02T13:00:00Z",
		"end_time":   "2026-03-02T14:00:00Z",
	}

	s.Run("returns 200 with the updated booking", func() {
		view := s.sampleView()
		s.mockCommands.EXPECT().
			UpdateInterval(gomock.Any(), bookingID, commands.Actor{UserID: s.userID, Role: user.RoleStudent}, gomock.Any(), gomock.Any()).
			Return(view, nil).Times(1)

		rec := s.perform(http.MethodPatch, url, body)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("returns 403 for foreign booking", func() {
		s.mockCommands.EXPECT().
			UpdateInterval(gomock.Any(), bookingID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrForbidden).Times(1)

		rec := s.perform(http.MethodPatch, url, body)
		s.Equal(http.StatusForbidden, rec.Code)
	})

	s.Run("returns 409 for inactive booking", func() {
		s.mockCommands.EXPECT().
			UpdateInterval(gomock.Any(), bookingID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrBookingNotActive).Times(1)

		rec := s.perform(http.MethodPatch, url, body)
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("returns 400 for a bad booking id", func() {
		rec := s.perform(http.MethodPatch, "/bookings/not-a-uuid", body)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *BookingHandlerTestSuite) TestCancelBooking() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String()

	s.Run("returns 204 on success", func() {
		s.mockCommands.EXPECT().
			Cancel(gomock.Any(), bookingID, gomock.Any()).
			Return(nil).Times(1)

		rec := s.perform(http.MethodDelete, url, nil)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("returns 404 for unknown booking", func() {
		s.mockCommands.EXPECT().
			Cancel(gomock.Any(), bookingID, gomock.Any()).
			Return(commands.ErrBookingNotFound).Times(1)

		rec := s.perform(http.MethodDelete, url, nil)
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *BookingHandlerTestSuite) TestGetBooking() {
	view := s.sampleView()
	url := "/bookings/" + view.ID.String()

	s.Run("returns 200 with the booking", func() {
		s.mockQueries.EXPECT().GetBooking(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := s.perform(http.MethodGet, url, nil)
		s.Equal(http.StatusOK, rec.Code)

		var body map[string]any
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Equal("Room A", body["resourceName"])
	})

	s.Run("returns 404 for unknown booking", func() {
		s.mockQueries.EXPECT().GetBooking(gomock.Any(), view.ID).
			Return(nil, queries.ErrBookingNotFound).Times(1)

		rec := s.perform(http.MethodGet, url, nil)
		s.Equal(http.StatusNotFound, rec.Code)
	})
}
