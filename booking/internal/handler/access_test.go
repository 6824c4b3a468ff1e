package handler_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/seat-booking/booking/internal/errs"
	"github.com/Astemirdum/seat-booking/booking/internal/model"
	"github.com/Astemirdum/seat-booking/pkg/auth"

	service_mocks "github.com/Astemirdum/seat-booking/booking/internal/handler/mocks"
)

func TestHandler_AssignLibrarian(t *testing.T) {
	t.Parallel()
	body := `{"libraryId":"` + libraryID + `"}`

	var tests = []struct {
		name         string
		mockBehavior func(r *service_mocks.MockBookingService)
		principal    *auth.Principal
		body         string
		response     response
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockBookingService) {
				r.EXPECT().AssignLibrarian(gomock.Any(), userID, libraryID).
					Return(model.User{ID: userID, Email: "user@mail.com", Name: "Reader", Role: auth.RoleLibrarian}, nil)
			},
			principal: &admin,
			body:      body,
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"success":true,"message":"librarian assigned","data":{"id":"` + userID + `","email":"user@mail.com","name":"Reader","role":"LIBRARIAN","createdAt":"0001-01-01T00:00:00Z","updatedAt":"0001-01-01T00:00:00Z"}}`,
			},
		},
		{
			name:         "err. not admin",
			mockBehavior: func(r *service_mocks.MockBookingService) {},
			principal:    &user,
			body:         body,
			response: response{
				expectedCode: http.StatusForbidden,
				expectedBody: `{"success":false,"message":"not authorized to perform this action"}`,
			},
		},
		{
			name: "err. already librarian",
			mockBehavior: func(r *service_mocks.MockBookingService) {
				r.EXPECT().AssignLibrarian(gomock.Any(), userID, libraryID).
					Return(model.User{}, errs.Conflict("user is already a librarian"))
			},
			principal: &admin,
			body:      body,
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"success":false,"message":"user is already a librarian"}`,
			},
		},
		{
			name:         "err. library id required",
			mockBehavior: func(r *service_mocks.MockBookingService) {},
			principal:    &admin,
			body:         `{}`,
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"success":false,"message":"validation failed","errors":["libraryId is required"]}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := newTestServer(t)
			tt.mockBehavior(s.svc)

			w := s.do(t, http.MethodPost, "/users/"+userID+"/librarian", tt.body, tt.principal)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_CreateSeat(t *testing.T) {
	t.Parallel()
	body := `{"code":"A101","floor":"1","area":"quiet"}`
	req := model.SeatRequest{Code: "A101", Floor: "1", Area: "quiet"}

	var tests = []struct {
		name         string
		mockBehavior func(r *service_mocks.MockBookingService)
		principal    *auth.Principal
		response     response
	}{
		{
			name: "ok. owning librarian",
			mockBehavior: func(r *service_mocks.MockBookingService) {
				r.EXPECT().AuthorizeLibrary(gomock.Any(), librarian, libraryID).Return(nil)
				r.EXPECT().CreateSeat(gomock.Any(), libraryID, req).Return(model.Seat{
					ID: seatID, Code: "A101", Floor: "1", Area: "quiet",
					Status: model.SeatAvailable, LibraryID: libraryID,
				}, nil)
			},
			principal: &librarian,
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"success":true,"message":"seat created","data":{"id":"` + seatID + `","code":"A101","floor":"1","area":"quiet","status":"AVAILABLE","libraryId":"` + libraryID + `","createdAt":"0001-01-01T00:00:00Z","updatedAt":"0001-01-01T00:00:00Z"}}`,
			},
		},
		{
			name: "err. librarian of another library",
			mockBehavior: func(r *service_mocks.MockBookingService) {
				r.EXPECT().AuthorizeLibrary(gomock.Any(), librarian, libraryID).
					Return(errs.Forbidden("you are not authorized to manage this library"))
			},
			principal: &librarian,
			response: response{
				expectedCode: http.StatusForbidden,
				expectedBody: `{"success":false,"message":"you are not authorized to manage this library"}`,
			},
		},
		{
			name:         "err. plain user",
			mockBehavior: func(r *service_mocks.MockBookingService) {},
			principal:    &user,
			response: response{
				expectedCode: http.StatusForbidden,
				expectedBody: `{"success":false,"message":"not authorized to perform this action"}`,
			},
		},
		{
			name: "err. duplicate code",
			mockBehavior: func(r *service_mocks.MockBookingService) {
				r.EXPECT().AuthorizeLibrary(gomock.Any(), admin, libraryID).Return(nil)
				r.EXPECT().CreateSeat(gomock.Any(), libraryID, req).
					Return(model.Seat{}, errs.Conflict("seat with this code already exists in this library"))
			},
			principal: &admin,
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"success":false,"message":"seat with this code already exists in this library"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := newTestServer(t)
			tt.mockBehavior(s.svc)

			w := s.do(t, http.MethodPost, "/libraries/"+libraryID+"/seats", body, tt.principal)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_ListSeatReservations(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)
	s.svc.EXPECT().AuthorizeSeat(gomock.Any(), librarian, seatID).Return(errs.NotFound("seat"))

	w := s.do(t, http.MethodGet, "/seats/"+seatID+"/reservations", "", &librarian)

	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, `{"success":false,"message":"seat not found"}`, strings.Trim(w.Body.String(), "\n"))
}
