package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/seat-booking/booking/internal/errs"
	"github.com/Astemirdum/seat-booking/booking/internal/handler"
	"github.com/Astemirdum/seat-booking/booking/internal/model"
	"github.com/Astemirdum/seat-booking/pkg/auth"

	service_mocks "github.com/Astemirdum/seat-booking/booking/internal/handler/mocks"
)

const (
	userID    = "5b1f2f0e-8d2c-4f55-9d1a-3c0e6a7b9f10"
	adminID   = "0c7a9b1e-2f3d-4e5a-8b6c-7d8e9f0a1b2c"
	libraryID = "83575e12-7ce0-48ee-9931-51919ff3c9ee"
	seatID    = "f7cdc58f-2caf-4b15-9727-f89dcc629b27"
	rsvID     = "1d2c3b4a-5e6f-4a7b-8c9d-0e1f2a3b4c5d"
)

var (
	user      = auth.Principal{UserID: userID, Email: "user@mail.com", Role: auth.RoleUser}
	admin     = auth.Principal{UserID: adminID, Email: "admin@mail.com", Role: auth.RoleAdmin}
	librarian = auth.Principal{UserID: userID, Email: "user@mail.com", Role: auth.RoleLibrarian}
)

type response struct {
	expectedCode int
	expectedBody string
}

type testServer struct {
	e      *echo.Echo
	svc    *service_mocks.MockBookingService
	issuer *auth.Issuer
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	c := gomock.NewController(t)
	svc := service_mocks.NewMockBookingService(c)
	issuer := auth.NewIssuer(auth.Config{Secret: "test-secret", TTL: time.Hour})
	log := zap.NewExample().Named("test")
	h := handler.New(svc, issuer, log)
	return &testServer{e: h.NewRouter(), svc: svc, issuer: issuer}
}

func (s *testServer) do(t *testing.T, method, target, body string, p *auth.Principal) *httptest.ResponseRecorder {
	t.Helper()
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, http.NoBody)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if p != nil {
		token, _, err := s.issuer.Issue(*p)
		require.NoError(t, err)
		r.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.e.ServeHTTP(w, r)
	return w
}

func at(h int) time.Time {
	return time.Date(2024, 5, 6, h, 0, 0, 0, time.UTC)
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)
	w := s.do(t, http.MethodGet, "/manage/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "OK", w.Body.String())
}

func TestHandler_CreateReservation(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *service_mocks.MockBookingService)

	rsv := model.Reservation{
		ID:        rsvID,
		UserID:    userID,
		SeatID:    seatID,
		StartTime: at(10),
		EndTime:   at(12),
		Status:    model.ReservationActive,
		CreatedAt: at(9),
		UpdatedAt: at(9),
	}
	validBody := `{"seatId":"` + seatID + `","startTime":"2024-05-06T10:00:00Z","endTime":"2024-05-06T12:00:00Z"}`
	req := model.CreateReservationRequest{SeatID: seatID, StartTime: at(10), EndTime: at(12)}

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		body         string
		principal    *auth.Principal
		response     response
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockBookingService) {
				r.EXPECT().CreateReservation(gomock.Any(), userID, req).Return(rsv, nil)
			},
			body:      validBody,
			principal: &user,
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"success":true,"message":"reservation created","data":{"id":"` + rsvID + `","userId":"` + userID + `","seatId":"` + seatID + `","startTime":"2024-05-06T10:00:00Z","endTime":"2024-05-06T12:00:00Z","status":"ACTIVE","createdAt":"2024-05-06T09:00:00Z","updatedAt":"2024-05-06T09:00:00Z"}}`,
			},
		},
		{
			name:         "err. end before start",
			mockBehavior: func(r *service_mocks.MockBookingService) {},
			body:         `{"seatId":"` + seatID + `","startTime":"2024-05-06T12:00:00Z","endTime":"2024-05-06T10:00:00Z"}`,
			principal:    &user,
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"success":false,"message":"validation failed","errors":["endTime must be after startTime"]}`,
			},
		},
		{
			name:         "err. malformed body",
			mockBehavior: func(r *service_mocks.MockBookingService) {},
			body:         `{"seatId":`,
			principal:    &user,
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"success":false,"message":"invalid request body"}`,
			},
		},
		{
			name: "err. slot taken",
			mockBehavior: func(r *service_mocks.MockBookingService) {
				r.EXPECT().CreateReservation(gomock.Any(), userID, req).
					Return(model.Reservation{}, errs.Conflict("seat is already reserved for this time slot"))
			},
			body:      validBody,
			principal: &user,
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"success":false,"message":"seat is already reserved for this time slot"}`,
			},
		},
		{
			name: "err. seat not found",
			mockBehavior: func(r *service_mocks.MockBookingService) {
				r.EXPECT().CreateReservation(gomock.Any(), userID, req).
					Return(model.Reservation{}, errs.Business("seat not found"))
			},
			body:      validBody,
			principal: &user,
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"success":false,"message":"seat not found"}`,
			},
		},
		{
			name:         "err. no token",
			mockBehavior: func(r *service_mocks.MockBookingService) {},
			body:         validBody,
			response: response{
				expectedCode: http.StatusUnauthorized,
				expectedBody: `{"success":false,"message":"no token provided"}`,
			},
		},
		{
			name: "err. internal",
			mockBehavior: func(r *service_mocks.MockBookingService) {
				r.EXPECT().CreateReservation(gomock.Any(), userID, req).
					Return(model.Reservation{}, errors.New("db internal"))
			},
			body:      validBody,
			principal: &user,
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"success":false,"message":"internal server error"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := newTestServer(t)
			tt.mockBehavior(s.svc)

			w := s.do(t, http.MethodPost, "/users/me/reservations", tt.body, tt.principal)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_CancelReservation(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *service_mocks.MockBookingService)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		id           string
		response     response
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockBookingService) {
				r.EXPECT().CancelReservation(gomock.Any(), userID, rsvID).
					Return(model.Reservation{ID: rsvID, Status: model.ReservationCancelled}, nil)
			},
			id: rsvID,
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"success":true,"message":"reservation cancelled","data":{"id":"` + rsvID + `","userId":"","seatId":"","startTime":"0001-01-01T00:00:00Z","endTime":"0001-01-01T00:00:00Z","status":"CANCELLED","createdAt":"0001-01-01T00:00:00Z","updatedAt":"0001-01-01T00:00:00Z"}}`,
			},
		},
		{
			name: "err. someone else's reservation",
			mockBehavior: func(r *service_mocks.MockBookingService) {
				r.EXPECT().CancelReservation(gomock.Any(), userID, rsvID).
					Return(model.Reservation{}, errs.NotFound("reservation"))
			},
			id: rsvID,
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"success":false,"message":"reservation not found"}`,
			},
		},
		{
			name:         "err. invalid id",
			mockBehavior: func(r *service_mocks.MockBookingService) {},
			id:           "42",
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"success":false,"message":"invalid reservation id"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := newTestServer(t)
			tt.mockBehavior(s.svc)

			w := s.do(t, http.MethodDelete, "/users/me/reservations/"+tt.id, "", &user)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_ListMyReservations(t *testing.T) {
	t.Parallel()
	start, end := at(0), at(23)

	var tests = []struct {
		name         string
		mockBehavior func(r *service_mocks.MockBookingService)
		query        string
		response     response
	}{
		{
			name: "ok. status and range",
			mockBehavior: func(r *service_mocks.MockBookingService) {
				r.EXPECT().ListUserReservations(gomock.Any(), userID, model.ReservationFilter{
					Status:    model.ReservationActive,
					StartDate: &start,
					EndDate:   &end,
				}).Return([]model.Reservation{}, nil)
			},
			query: "?status=ACTIVE&startDate=2024-05-06T00:00:00Z&endDate=2024-05-06T23:00:00Z",
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"success":true,"data":[]}`,
			},
		},
		{
			name: "ok. half range ignored",
			mockBehavior: func(r *service_mocks.MockBookingService) {
				r.EXPECT().ListUserReservations(gomock.Any(), userID, model.ReservationFilter{}).
					Return([]model.Reservation{}, nil)
			},
			query: "?startDate=2024-05-06T00:00:00Z",
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"success":true,"data":[]}`,
			},
		},
		{
			name:         "err. invalid status",
			mockBehavior: func(r *service_mocks.MockBookingService) {},
			query:        "?status=PENDING",
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"success":false,"message":"invalid status","errors":["status must be one of [ACTIVE CANCELLED COMPLETED]"]}`,
			},
		},
		{
			name:         "err. invalid date",
			mockBehavior: func(r *service_mocks.MockBookingService) {},
			query:        "?startDate=yesterday",
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"success":false,"message":"invalid startDate","errors":["startDate must be an RFC3339 datetime"]}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := newTestServer(t)
			tt.mockBehavior(s.svc)

			w := s.do(t, http.MethodGet, "/users/me/reservations"+tt.query, "", &user)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}
