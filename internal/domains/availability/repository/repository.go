package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"nautica/infras/otel"
	"nautica/infras/postgres"
	"nautica/internal/domains/availability/model"
	gDto "nautica/shared/dto"
	gRepo "nautica/shared/repository"
)

type AvailabilityBlock interface {
	Insert(ctx context.Context, model model.AvailabilityBlock) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.AvailabilityBlock, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.AvailabilityBlock]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) AvailabilityBlock {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.AvailabilityBlock](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
