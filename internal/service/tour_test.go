package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/AnshDabra27/jet-set-go/internal/domain"
	"github.com/AnshDabra27/jet-set-go/internal/service/ports/mocks"
)

func validCreateTourInput() domain.CreateTourInput {
	return domain.CreateTourInput{
		Title:        "Alpine Trek",
		Description:  "Five days in the mountains",
		Location:     "Switzerland",
		Price:        200,
		Duration:     "5 days",
		MaxGroupSize: 4,
		Difficulty:   domain.DifficultyMedium,
		Image:        "alpine.jpg",
		StartDates:   []time.Time{time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)},
		Highlights:   []string{"Glacier crossing"},
		Included:     []string{"Guide"},
		NotIncluded:  []string{"Flights"},
	}
}

func TestTourService_Create_Success(t *testing.T) {
	repo := mocks.NewMockTourRepo(t)
	svc := NewTourService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	tour, err := svc.Create(context.Background(), validCreateTourInput())

	require.NoError(t, err)
	assert.Equal(t, "Alpine Trek", tour.Title)
	assert.Equal(t, 200.0, tour.Price)
	assert.Equal(t, 4, tour.MaxGroupSize)
	assert.Equal(t, domain.DifficultyMedium, tour.Difficulty)
	assert.NotEmpty(t, tour.ID)
	assert.False(t, tour.CreatedAt.IsZero())
	assert.Equal(t, tour.CreatedAt, tour.UpdatedAt)
}

func TestTourService_Create_EmptyTitle(t *testing.T) {
	svc := NewTourService(nil)

	input := validCreateTourInput()
	input.Title = ""

	_, err := svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTourService_Create_ZeroPrice(t *testing.T) {
	svc := NewTourService(nil)

	input := validCreateTourInput()
	input.Price = 0

	_, err := svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTourService_Create_ZeroGroupSize(t *testing.T) {
	svc := NewTourService(nil)

	input := validCreateTourInput()
	input.MaxGroupSize = 0

	_, err := svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTourService_Create_BadDifficulty(t *testing.T) {
	svc := NewTourService(nil)

	input := validCreateTourInput()
	input.Difficulty = "extreme"

	_, err := svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTourService_Create_RepoError(t *testing.T) {
	repo := mocks.NewMockTourRepo(t)
	svc := NewTourService(repo)

	repoErr := errors.New("db error")
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(repoErr)

	_, err := svc.Create(context.Background(), validCreateTourInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, repoErr)
}

func TestTourService_GetByID_Success(t *testing.T) {
	repo := mocks.NewMockTourRepo(t)
	svc := NewTourService(repo)

	repo.EXPECT().GetByID(mock.Anything, "t1").Return(&domain.Tour{ID: "t1", Title: "Alpine Trek"}, nil)

	tour, err := svc.GetByID(context.Background(), "t1")

	require.NoError(t, err)
	assert.Equal(t, "Alpine Trek", tour.Title)
}

func TestTourService_GetByID_NotFound(t *testing.T) {
	repo := mocks.NewMockTourRepo(t)
	svc := NewTourService(repo)

	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrTourNotFound)

	_, err := svc.GetByID(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTourNotFound)
}

func TestTourService_List_Success(t *testing.T) {
	repo := mocks.NewMockTourRepo(t)
	svc := NewTourService(repo)

	tours := []*domain.Tour{
		{ID: "t1", Title: "Alpine Trek"},
		{ID: "t2", Title: "Desert Safari"},
	}
	repo.EXPECT().List(mock.Anything).Return(tours, nil)

	result, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestTourService_Update_Success(t *testing.T) {
	repo := mocks.NewMockTourRepo(t)
	svc := NewTourService(repo)

	existing := &domain.Tour{
		ID:           "t1",
		Title:        "Alpine Trek",
		Description:  "Five days",
		Location:     "Switzerland",
		Price:        200,
		Duration:     "5 days",
		MaxGroupSize: 4,
		Difficulty:   domain.DifficultyMedium,
		Image:        "alpine.jpg",
		CreatedAt:    time.Now().Add(-24 * time.Hour),
		UpdatedAt:    time.Now().Add(-24 * time.Hour),
	}

	repo.EXPECT().GetByID(mock.Anything, "t1").Return(existing, nil)
	repo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	newTitle := "Alpine Trek Deluxe"
	newPrice := 250.0
	tour, err := svc.Update(context.Background(), "t1", domain.UpdateTourInput{
		Title: &newTitle,
		Price: &newPrice,
	})

	require.NoError(t, err)
	assert.Equal(t, "Alpine Trek Deluxe", tour.Title)
	assert.Equal(t, 250.0, tour.Price)
	// untouched fields survive the patch
	assert.Equal(t, "Switzerland", tour.Location)
	assert.True(t, tour.UpdatedAt.After(tour.CreatedAt))
}

func TestTourService_Update_NotFound(t *testing.T) {
	repo := mocks.NewMockTourRepo(t)
	svc := NewTourService(repo)

	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrTourNotFound)

	newTitle := "X"
	_, err := svc.Update(context.Background(), "missing", domain.UpdateTourInput{Title: &newTitle})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTourNotFound)
}

func TestTourService_Update_BadDifficulty(t *testing.T) {
	repo := mocks.NewMockTourRepo(t)
	svc := NewTourService(repo)

	existing := &domain.Tour{
		ID:           "t1",
		Price:        200,
		MaxGroupSize: 4,
		Difficulty:   domain.DifficultyMedium,
	}
	repo.EXPECT().GetByID(mock.Anything, "t1").Return(existing, nil)

	bad := domain.Difficulty("extreme")
	_, err := svc.Update(context.Background(), "t1", domain.UpdateTourInput{Difficulty: &bad})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTourService_Delete_Success(t *testing.T) {
	repo := mocks.NewMockTourRepo(t)
	svc := NewTourService(repo)

	repo.EXPECT().Delete(mock.Anything, "t1").Return(nil)

	err := svc.Delete(context.Background(), "t1")

	require.NoError(t, err)
}

func TestTourService_Delete_NotFound(t *testing.T) {
	repo := mocks.NewMockTourRepo(t)
	svc := NewTourService(repo)

	repo.EXPECT().Delete(mock.Anything, "missing").Return(domain.ErrTourNotFound)

	err := svc.Delete(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTourNotFound)
}
