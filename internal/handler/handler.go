package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/AnshDabra27/jet-set-go/internal/domain"
	"github.com/AnshDabra27/jet-set-go/internal/handler/dto"
	"github.com/AnshDabra27/jet-set-go/internal/middleware"
)

type TourSvc interface {
	Create(ctx context.Context, input domain.CreateTourInput) (*domain.Tour, error)
	GetByID(ctx context.Context, id string) (*domain.Tour, error)
	List(ctx context.Context) ([]*domain.Tour, error)
	Update(ctx context.Context, id string, input domain.UpdateTourInput) (*domain.Tour, error)
	Delete(ctx context.Context, id string) error
}

type BookingSvc interface {
	Create(ctx context.Context, input domain.CreateBookingInput, userID string) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.BookingWithTour, error)
	Get(ctx context.Context, bookingID, requestingUserID string) (*domain.BookingDetails, error)
	Cancel(ctx context.Context, bookingID string) error
}

type UserSvc interface {
	Register(ctx context.Context, input domain.RegisterInput) (*domain.User, string, error)
	Login(ctx context.Context, input domain.LoginInput) (*domain.User, string, error)
	Profile(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, input domain.UpdateProfileInput) (*domain.User, error)
}

type Handler struct {
	tourService    TourSvc
	bookingService BookingSvc
	userService    UserSvc
}

func NewHandler(tourService TourSvc, bookingService BookingSvc, userService UserSvc) *Handler {
	return &Handler{
		tourService:    tourService,
		bookingService: bookingService,
		userService:    userService,
	}
}

// Auth

func (h *Handler) Register(c *ginext.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, signed, err := h.userService.Register(c.Request.Context(), domain.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{Token: signed, User: dto.ToUserResponse(user)})
}

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, signed, err := h.userService.Login(c.Request.Context(), domain.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{Token: signed, User: dto.ToUserResponse(user)})
}

func (h *Handler) GetProfile(c *ginext.Context) {
	user, err := h.userService.Profile(c.Request.Context(), c.GetString(middleware.UserIDKey))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) UpdateProfile(c *ginext.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.userService.UpdateProfile(
		c.Request.Context(),
		c.GetString(middleware.UserIDKey),
		domain.UpdateProfileInput{Name: req.Name, Email: req.Email},
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// Tours

func (h *Handler) ListTours(c *ginext.Context) {
	tours, err := h.tourService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.TourResponse, 0, len(tours))
	for _, t := range tours {
		resp = append(resp, dto.ToTourResponse(t))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetTour(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid tour id"})
		return
	}

	tour, err := h.tourService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTourResponse(tour))
}

func (h *Handler) CreateTour(c *ginext.Context) {
	var req dto.CreateTourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input, err := req.ToInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	tour, err := h.tourService.Create(c.Request.Context(), input)
	if err != nil {
		// The admin surface reports any create failure as a bad request.
		c.Set("error", err.Error())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, dto.ToTourResponse(tour))
}

func (h *Handler) UpdateTour(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid tour id"})
		return
	}

	var req dto.UpdateTourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input, err := req.ToInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	tour, err := h.tourService.Update(c.Request.Context(), id, input)
	if err != nil {
		if errors.Is(err, domain.ErrTourNotFound) {
			h.handleError(c, err)
			return
		}
		c.Set("error", err.Error())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.ToTourResponse(tour))
}

func (h *Handler) DeleteTour(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid tour id"})
		return
	}

	if err := h.tourService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Tour deleted successfully"})
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input, err := req.ToInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.Create(c.Request.Context(), input, c.GetString(middleware.UserIDKey))
	if err != nil {
		// A missing tour is a 404; every other create failure surfaces as a
		// bad request with the underlying message.
		c.Set("error", err.Error())
		if errors.Is(err, domain.ErrTourNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) MyBookings(c *ginext.Context) {
	bookings, err := h.bookingService.ListByUser(c.Request.Context(), c.GetString(middleware.UserIDKey))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingWithTourResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingWithTourResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	details, err := h.bookingService.Get(c.Request.Context(), id, c.GetString(middleware.UserIDKey))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingDetailsResponse(details))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	if err := h.bookingService.Cancel(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Booking cancelled and deleted successfully"})
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrTourNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
