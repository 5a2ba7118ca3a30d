package usecase_test

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"youtube-lite/domain/model"
	"youtube-lite/domain/repository"
	"youtube-lite/usecase"
)

func TestLegacyList_FallsBackToMockCatalog(t *testing.T) {
	legacyRepo := new(MockLegacyRepo)
	uc := usecase.NewLegacyUsecase(legacyRepo)
	legacyRepo.On("List", mock.Anything).Return(nil, errors.New("connection refused"))

	videos := uc.List(context.Background())
	assert.Len(t, videos, 8)
	for i, v := range videos {
		assert.Equal(t, strconv.Itoa(i+1), v.ID)
	}
}

func TestLegacyList_UsesStoreWhenHealthy(t *testing.T) {
	legacyRepo := new(MockLegacyRepo)
	uc := usecase.NewLegacyUsecase(legacyRepo)
	stored := []model.LegacyVideo{{ID: "db-1", Title: "From MySQL"}}
	legacyRepo.On("List", mock.Anything).Return(stored, nil)

	assert.Equal(t, stored, uc.List(context.Background()))
}

func TestLegacyList_HealthyEmptyStoreStaysEmpty(t *testing.T) {
	legacyRepo := new(MockLegacyRepo)
	uc := usecase.NewLegacyUsecase(legacyRepo)
	legacyRepo.On("List", mock.Anything).Return([]model.LegacyVideo{}, nil)

	videos := uc.List(context.Background())
	assert.NotNil(t, videos)
	assert.Empty(t, videos)
}

func TestLegacyGet_FallbackMatchesRequestedID(t *testing.T) {
	legacyRepo := new(MockLegacyRepo)
	uc := usecase.NewLegacyUsecase(legacyRepo)
	legacyRepo.On("GetByID", mock.Anything, "5").Return(nil, errors.New("down"))

	video := uc.Get(context.Background(), "5")
	assert.Equal(t, "5", video.ID)

	// During an outage an unknown id degrades to the first catalog entry.
	legacyRepo.On("GetByID", mock.Anything, "999").Return(nil, errors.New("down"))
	video = uc.Get(context.Background(), "999")
	assert.Equal(t, "1", video.ID)
}

func TestLegacyGet_HealthyStoreMissChecksCatalogThenNil(t *testing.T) {
	legacyRepo := new(MockLegacyRepo)
	uc := usecase.NewLegacyUsecase(legacyRepo)

	// A miss on a healthy store still resolves catalog ids.
	legacyRepo.On("GetByID", mock.Anything, "5").Return(nil, repository.ErrNotFound)
	video := uc.Get(context.Background(), "5")
	assert.Equal(t, "5", video.ID)

	// An id unknown to both the store and the catalog resolves to nothing.
	legacyRepo.On("GetByID", mock.Anything, "999").Return(nil, repository.ErrNotFound)
	assert.Nil(t, uc.Get(context.Background(), "999"))
}

func TestLegacySearch_FallbackFiltersCaseInsensitively(t *testing.T) {
	legacyRepo := new(MockLegacyRepo)
	uc := usecase.NewLegacyUsecase(legacyRepo)
	legacyRepo.On("Search", mock.Anything, "lofi", 20).Return(nil, errors.New("down"))

	videos := uc.Search(context.Background(), "lofi")
	assert.Len(t, videos, 1)
	assert.Equal(t, "Chill Lofi Beats to Code/Relax To", videos[0].Title)
}

func TestLegacySearch_EmptyTerm(t *testing.T) {
	uc := usecase.NewLegacyUsecase(new(MockLegacyRepo))
	assert.Empty(t, uc.Search(context.Background(), "  "))
}
