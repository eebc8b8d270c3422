package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"

	"github.com/AnshDabra27/jet-set-go/internal/domain"
	"github.com/AnshDabra27/jet-set-go/internal/handler/dto"
	hmocks "github.com/AnshDabra27/jet-set-go/internal/handler/mocks"
	"github.com/AnshDabra27/jet-set-go/internal/middleware"
)

const testUserID = "8d1f1f2e-9f3a-4c6b-8a6f-0e1d2c3b4a59"

func setupRouter(t *testing.T) (*hmocks.MockTourSvc, *hmocks.MockBookingSvc, *hmocks.MockUserSvc, http.Handler) {
	t.Helper()
	tourSvc := hmocks.NewMockTourSvc(t)
	bookingSvc := hmocks.NewMockBookingSvc(t)
	userSvc := hmocks.NewMockUserSvc(t)

	h := NewHandler(tourSvc, bookingSvc, userSvc)

	// stands in for the JWT middleware
	fakeAuth := func(c *ginext.Context) {
		c.Set(middleware.UserIDKey, testUserID)
		c.Next()
	}

	r := ginext.New("test")
	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.GET("/profile", fakeAuth, h.GetProfile)
		auth.PUT("/profile", fakeAuth, h.UpdateProfile)

		tours := api.Group("/tours")
		tours.GET("", h.ListTours)
		tours.GET("/:id", h.GetTour)
		tours.POST("", h.CreateTour)
		tours.PUT("/:id", h.UpdateTour)
		tours.DELETE("/:id", h.DeleteTour)

		bookings := api.Group("/bookings", fakeAuth)
		bookings.POST("", h.CreateBooking)
		bookings.GET("/my-bookings", h.MyBookings)
		bookings.GET("/:id", h.GetBooking)
		bookings.DELETE("/:id", h.CancelBooking)
	}

	return tourSvc, bookingSvc, userSvc, r
}

// --- Auth ---

func TestHandler_Register_Success(t *testing.T) {
	_, _, userSvc, r := setupRouter(t)

	user := &domain.User{
		ID:        uuid.New().String(),
		Name:      "Alice",
		Email:     "alice@example.com",
		Role:      domain.RoleUser,
		CreatedAt: time.Now(),
	}
	userSvc.EXPECT().Register(mock.Anything, mock.Anything).Return(user, "signed-token", nil)

	body, _ := json.Marshal(dto.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "signed-token", resp.Token)
	assert.Equal(t, "alice@example.com", resp.User.Email)
}

func TestHandler_Register_BadEmail(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{"name":"Alice","email":"not-an-email","password":"secret123"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Register_EmailTaken(t *testing.T) {
	_, _, userSvc, r := setupRouter(t)

	userSvc.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, "", domain.ErrEmailTaken)

	body, _ := json.Marshal(dto.RegisterRequest{
		Name:     "Alice",
		Email:    "taken@example.com",
		Password: "secret123",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Login_Success(t *testing.T) {
	_, _, userSvc, r := setupRouter(t)

	user := &domain.User{ID: "u1", Email: "alice@example.com", Role: domain.RoleUser, CreatedAt: time.Now()}
	userSvc.EXPECT().Login(mock.Anything, mock.Anything).Return(user, "signed-token", nil)

	body, _ := json.Marshal(dto.LoginRequest{Email: "alice@example.com", Password: "secret123"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "signed-token", resp.Token)
}

func TestHandler_Login_InvalidCredentials(t *testing.T) {
	_, _, userSvc, r := setupRouter(t)

	userSvc.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, "", domain.ErrInvalidCredentials)

	body, _ := json.Marshal(dto.LoginRequest{Email: "alice@example.com", Password: "wrong"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_GetProfile_Success(t *testing.T) {
	_, _, userSvc, r := setupRouter(t)

	user := &domain.User{ID: testUserID, Name: "Alice", Email: "alice@example.com", Role: domain.RoleUser, CreatedAt: time.Now()}
	userSvc.EXPECT().Profile(mock.Anything, testUserID).Return(user, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Alice", resp.Name)
}

func TestHandler_UpdateProfile_Success(t *testing.T) {
	_, _, userSvc, r := setupRouter(t)

	user := &domain.User{ID: testUserID, Name: "Alicia", Email: "alice@example.com", Role: domain.RoleUser, CreatedAt: time.Now()}
	userSvc.EXPECT().UpdateProfile(mock.Anything, testUserID, mock.Anything).Return(user, nil)

	body := []byte(`{"name":"Alicia"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/auth/profile", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Alicia", resp.Name)
}

// --- Tours ---

func TestHandler_ListTours_Success(t *testing.T) {
	tourSvc, _, _, r := setupRouter(t)

	tours := []*domain.Tour{
		{ID: "t1", Title: "Alpine Trek", CreatedAt: time.Now(), UpdatedAt: time.Now()},
		{ID: "t2", Title: "Desert Safari", CreatedAt: time.Now(), UpdatedAt: time.Now()},
	}
	tourSvc.EXPECT().List(mock.Anything).Return(tours, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/tours", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.TourResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestHandler_GetTour_Success(t *testing.T) {
	tourSvc, _, _, r := setupRouter(t)

	tourID := uuid.New().String()
	tour := &domain.Tour{ID: tourID, Title: "Alpine Trek", Price: 200, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	tourSvc.EXPECT().GetByID(mock.Anything, tourID).Return(tour, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/tours/"+tourID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.TourResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Alpine Trek", resp.Title)
}

func TestHandler_GetTour_InvalidID(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/tours/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetTour_NotFound(t *testing.T) {
	tourSvc, _, _, r := setupRouter(t)

	tourID := uuid.New().String()
	tourSvc.EXPECT().GetByID(mock.Anything, tourID).Return(nil, domain.ErrTourNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/tours/"+tourID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_CreateTour_Success(t *testing.T) {
	tourSvc, _, _, r := setupRouter(t)

	tour := &domain.Tour{
		ID:           uuid.New().String(),
		Title:        "Alpine Trek",
		Price:        200,
		MaxGroupSize: 4,
		Difficulty:   domain.DifficultyMedium,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	tourSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(tour, nil)

	body, _ := json.Marshal(dto.CreateTourRequest{
		Title:        "Alpine Trek",
		Description:  "Five days in the mountains",
		Location:     "Switzerland",
		Price:        200,
		Duration:     "5 days",
		MaxGroupSize: 4,
		Difficulty:   "medium",
		Image:        "alpine.jpg",
		StartDates:   []string{"2026-06-01"},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/tours", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.TourResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Alpine Trek", resp.Title)
}

func TestHandler_CreateTour_MissingFields(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{"title":"Alpine Trek"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/tours", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateTour_BadDifficulty(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{"title":"X","description":"Y","location":"Z","price":100,"duration":"1 day","maxGroupSize":5,"difficulty":"extreme","image":"x.jpg"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/tours", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateTour_BadStartDate(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{"title":"X","description":"Y","location":"Z","price":100,"duration":"1 day","maxGroupSize":5,"difficulty":"easy","image":"x.jpg","startDates":["not-a-date"]}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/tours", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateTour_Success(t *testing.T) {
	tourSvc, _, _, r := setupRouter(t)

	tourID := uuid.New().String()
	tour := &domain.Tour{ID: tourID, Title: "Alpine Trek Deluxe", Price: 250, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	tourSvc.EXPECT().Update(mock.Anything, tourID, mock.Anything).Return(tour, nil)

	body := []byte(`{"title":"Alpine Trek Deluxe","price":250}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/tours/"+tourID, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.TourResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Alpine Trek Deluxe", resp.Title)
}

func TestHandler_UpdateTour_NotFound(t *testing.T) {
	tourSvc, _, _, r := setupRouter(t)

	tourID := uuid.New().String()
	tourSvc.EXPECT().Update(mock.Anything, tourID, mock.Anything).Return(nil, domain.ErrTourNotFound)

	body := []byte(`{"title":"X"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/tours/"+tourID, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_DeleteTour_Success(t *testing.T) {
	tourSvc, _, _, r := setupRouter(t)

	tourID := uuid.New().String()
	tourSvc.EXPECT().Delete(mock.Anything, tourID).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/tours/"+tourID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Tour deleted successfully", resp.Message)
}

func TestHandler_DeleteTour_NotFound(t *testing.T) {
	tourSvc, _, _, r := setupRouter(t)

	tourID := uuid.New().String()
	tourSvc.EXPECT().Delete(mock.Anything, tourID).Return(domain.ErrTourNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/tours/"+tourID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Bookings ---

func TestHandler_CreateBooking_Success(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	tourID := uuid.New().String()
	booking := &domain.Booking{
		ID:             uuid.New().String(),
		TourID:         tourID,
		UserID:         testUserID,
		StartDate:      time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		NumberOfPeople: 3,
		TotalPrice:     600,
		Status:         domain.BookingStatusPending,
		CreatedAt:      time.Now(),
	}

	bookingSvc.EXPECT().Create(mock.Anything, mock.Anything, testUserID).Return(booking, nil)

	body, _ := json.Marshal(dto.CreateBookingRequest{
		TourID:         tourID,
		StartDate:      "2026-06-01",
		NumberOfPeople: 3,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 600.0, resp.TotalPrice)
	assert.Equal(t, "pending", resp.Status)
}

func TestHandler_CreateBooking_TourNotFound(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	tourID := uuid.New().String()
	bookingSvc.EXPECT().Create(mock.Anything, mock.Anything, testUserID).Return(nil, domain.ErrTourNotFound)

	body, _ := json.Marshal(dto.CreateBookingRequest{
		TourID:         tourID,
		StartDate:      "2026-06-01",
		NumberOfPeople: 3,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_CreateBooking_ZeroPeople(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{"tourId":"` + uuid.New().String() + `","startDate":"2026-06-01","numberOfPeople":0}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBooking_BadDate(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{"tourId":"` + uuid.New().String() + `","startDate":"not-a-date","numberOfPeople":2}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_MyBookings_Success(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	bookings := []*domain.BookingWithTour{
		{
			Booking: domain.Booking{ID: "b1", TourID: "t1", UserID: testUserID, Status: domain.BookingStatusPending, CreatedAt: time.Now()},
			Tour:    &domain.Tour{ID: "t1", Title: "Alpine Trek", CreatedAt: time.Now(), UpdatedAt: time.Now()},
		},
		{
			Booking: domain.Booking{ID: "b2", TourID: "gone", UserID: testUserID, Status: domain.BookingStatusPending, CreatedAt: time.Now()},
			Tour:    nil,
		},
	}
	bookingSvc.EXPECT().ListByUser(mock.Anything, testUserID).Return(bookings, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/my-bookings", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingWithTourResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "Alpine Trek", resp[0].Tour.Title)
	assert.Nil(t, resp[1].Tour)
}

func TestHandler_GetBooking_Success(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	bookingID := uuid.New().String()
	details := &domain.BookingDetails{
		Booking: domain.Booking{ID: bookingID, TourID: "t1", UserID: testUserID, TotalPrice: 600, Status: domain.BookingStatusPending, CreatedAt: time.Now()},
		Tour:    &domain.Tour{ID: "t1", Title: "Alpine Trek", CreatedAt: time.Now(), UpdatedAt: time.Now()},
		User:    domain.BookingOwner{ID: testUserID, Name: "Alice", Email: "alice@example.com"},
	}
	bookingSvc.EXPECT().Get(mock.Anything, bookingID, testUserID).Return(details, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/"+bookingID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Alice", resp.User.Name)
	assert.Equal(t, "Alpine Trek", resp.Tour.Title)
}

func TestHandler_GetBooking_Forbidden(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	bookingID := uuid.New().String()
	bookingSvc.EXPECT().Get(mock.Anything, bookingID, testUserID).Return(nil, domain.ErrForbidden)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/"+bookingID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_GetBooking_NotFound(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	bookingID := uuid.New().String()
	bookingSvc.EXPECT().Get(mock.Anything, bookingID, testUserID).Return(nil, domain.ErrBookingNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/"+bookingID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_CancelBooking_Success(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	bookingID := uuid.New().String()
	// the service is handed only the booking id, never the caller
	bookingSvc.EXPECT().Cancel(mock.Anything, bookingID).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/bookings/"+bookingID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Booking cancelled and deleted successfully", resp.Message)
}

func TestHandler_CancelBooking_NotFound(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	bookingID := uuid.New().String()
	bookingSvc.EXPECT().Cancel(mock.Anything, bookingID).Return(domain.ErrBookingNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/bookings/"+bookingID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_CancelBooking_InvalidID(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/bookings/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_HandleError_InternalError(t *testing.T) {
	tourSvc, _, _, r := setupRouter(t)

	tourSvc.EXPECT().List(mock.Anything).Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/tours", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "internal server error", resp.Error)
}
