package repository

//go:generate go run go.uber.org/mock/mockgen -source=./photo.go -destination=../mocks/photo_mock.go -package=mocks

import (
	"context"
	"nautica/infras/otel"
	"nautica/infras/postgres"
	"nautica/internal/domains/boat/model"
	gDto "nautica/shared/dto"
	gRepo "nautica/shared/repository"
)

type BoatPhoto interface {
	Insert(ctx context.Context, model model.BoatPhoto) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.BoatPhoto, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type photoRepositoryImpl struct {
	gRepo.Repository[model.BoatPhoto]
	db   *postgres.Connection
	otel otel.Otel
}

func NewPhoto(db *postgres.Connection, otel otel.Otel) BoatPhoto {
	return &photoRepositoryImpl{
		Repository: gRepo.NewRepository[model.BoatPhoto](model.PhotoEntityName, model.PhotoTableName, model.PhotoFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
