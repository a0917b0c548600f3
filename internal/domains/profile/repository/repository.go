package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"nautica/infras/otel"
	"nautica/infras/postgres"
	"nautica/internal/domains/profile/model"
	gDto "nautica/shared/dto"
	gRepo "nautica/shared/repository"
)

type LoyaltyProfile interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.LoyaltyProfile, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.LoyaltyProfile]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) LoyaltyProfile {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.LoyaltyProfile](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
