package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"nautica/config"
	"nautica/infras/otel/mocks"
	s3Mocks "nautica/infras/s3/mocks"
	boatMocks "nautica/internal/domains/boat/mocks"
	"nautica/internal/domains/boat/model"
	"nautica/internal/domains/boat/service"
	"nautica/shared/cache"
	cacheMocks "nautica/shared/cache/mocks"
	"nautica/shared/failure"
	"nautica/shared/money"
)

type boatMockSet struct {
	repo      *boatMocks.MockBoat
	photoRepo *boatMocks.MockBoatPhoto
	storage   *s3Mocks.MockS3
	redis     *cacheMocks.MockRedisCache
}

func newBoatService(t *testing.T) (service.Boat, *boatMockSet) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	set := &boatMockSet{
		repo:      boatMocks.NewMockBoat(ctrl),
		photoRepo: boatMocks.NewMockBoatPhoto(ctrl),
		storage:   s3Mocks.NewMockS3(ctrl),
		redis:     cacheMocks.NewMockRedisCache(ctrl),
	}

	svc := service.New(set.repo, set.photoRepo, set.storage, &config.Config{}, set.redis, mocks.NewOtel())

	return svc, set
}

func TestBoatService_Get(t *testing.T) {
	sailboat := model.Boat{
		ID:             "boat-1",
		Name:           "Veleiro Azul",
		Category:       "sailboat",
		Active:         true,
		BasePriceDaily: money.FromCents(100000),
	}

	t.Run("resolves photos alongside the listing", func(t *testing.T) {
		svc, set := newBoatService(t)

		set.redis.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cache.Nil)

		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(sailboat, nil)

		set.photoRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.BoatPhoto{
				{StorageRef: "https://cdn.example.com/boat-1.jpg"},
				{StorageRef: "photos/boat-1-deck.jpg"},
			}, nil)

		set.storage.EXPECT().
			PresignObjectURL(gomock.Any(), gomock.Any(), "photos/boat-1-deck.jpg").
			Return("https://s3.example.com/photos/boat-1-deck.jpg?sig=abc", nil)

		set.redis.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.Get(context.Background(), "boat-1")

		assert.NoError(t, err)
		assert.Equal(t, "Veleiro Azul", res.Name)
		assert.Equal(t, []string{
			"https://cdn.example.com/boat-1.jpg",
			"https://s3.example.com/photos/boat-1-deck.jpg?sig=abc",
		}, res.PhotoURLs)
	})

	t.Run("unknown boat", func(t *testing.T) {
		svc, set := newBoatService(t)

		set.redis.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cache.Nil)

		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Boat{}, nil)

		_, err := svc.Get(context.Background(), "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestBoatService_SearchActive(t *testing.T) {
	svc, set := newBoatService(t)

	set.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Boat{
			{ID: "boat-1", Name: "Iate Branco", Category: "yacht", Active: true},
		}, nil)

	set.photoRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil)

	res, err := svc.SearchActive(context.Background(), "yacht", "", 5)

	assert.NoError(t, err)
	assert.Len(t, res, 1)
	assert.Equal(t, "Iate Branco", res[0].Name)
}
