package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"nautica/infras/otel"
	"nautica/infras/postgres"
	"nautica/internal/domains/boat/model"
	gDto "nautica/shared/dto"
	gRepo "nautica/shared/repository"
)

type Boat interface {
	Insert(ctx context.Context, model model.Boat) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Boat, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Boat, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Boat]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Boat {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Boat](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
