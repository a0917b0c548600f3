package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"nautica/config"
	"nautica/infras/otel"
	"nautica/infras/s3"
	"nautica/internal/domains/boat/model"
	"nautica/internal/domains/boat/model/dto"
	"nautica/internal/domains/boat/repository"
	"nautica/shared"
	"nautica/shared/cache"
	"nautica/shared/constant"
	gDto "nautica/shared/dto"
	"nautica/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBoat    = "boat:get"
	cacheGetAllBoat = "boat:gets"
	cacheCountBoat  = "boat:count"
)

type Boat interface {
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBoatsResponse, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BoatResponse, error)
	SearchActive(ctx context.Context, category, ownerID string, limit int) ([]dto.BoatResponse, error)
}

type serviceImpl struct {
	repo      repository.Boat
	photoRepo repository.BoatPhoto
	storage   s3.S3
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(repo repository.Boat, photoRepo repository.BoatPhoto, storage s3.S3, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Boat {
	return &serviceImpl{
		repo:      repo,
		photoRepo: photoRepo,
		storage:   storage,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBoatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBoat, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for boats")

		return res, nil
	}

	total, err := s.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count boats")

		return res, fmt.Errorf("failed to count boats: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get boats")

		return res, fmt.Errorf("failed to get boats: %w", err)
	}

	photoURLs := make(map[string][]string, len(models))
	for _, mod := range models {
		photoURLs[mod.ID] = s.resolvePhotoURLs(ctx, mod.ID)
	}

	res.FromModels(models, photoURLs, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save boats to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count boats")

		return res, fmt.Errorf("failed to count boats: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BoatResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBoat, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for boat")

		return res, nil
	}

	boat, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get boat")

		return res, fmt.Errorf("failed to get boat: %w", err)
	}

	if boat.ID == constant.Empty {
		return res, failure.NotFound("boat not found") // nolint:wrapcheck
	}

	res.FromModel(boat, s.resolvePhotoURLs(ctx, boat.ID))

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save boat to cache")
		}
	}()

	return res, nil
}

// SearchActive returns active listings for one category, optionally scoped
// to a single marina owner. Category may be empty to match all.
func (s *serviceImpl) SearchActive(ctx context.Context, category, ownerID string, limit int) (res []dto.BoatResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SearchActive")
	defer scope.End()
	defer scope.TraceIfError(err)

	filters := []any{
		gDto.Filter{
			Field:    model.FieldActive,
			Value:    true,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		},
	}

	if category != constant.Empty {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldCategory,
			Value:    category,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	if ownerID != constant.Empty {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldOwnerID,
			Value:    ownerID,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	params := gDto.QueryParams{
		Page:    1,
		Limit:   limit,
		SortBy:  model.FieldName,
		SortDir: gDto.SortDirAsc,
	}

	models, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{Filters: filters, Operator: gDto.FilterGroupOperatorAnd})
	if err != nil {
		log.Error().Err(err).Msg("failed to search boats")

		return nil, fmt.Errorf("failed to search boats: %w", err)
	}

	res = make([]dto.BoatResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod, s.resolvePhotoURLs(ctx, mod.ID))
	}

	return res, nil
}

func (s *serviceImpl) resolvePhotoURLs(ctx context.Context, boatID string) []string {
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.PhotoFieldBoatID,
				Value:    boatID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.PhotoTableName,
			},
		},
	}

	params := gDto.QueryParams{
		Page:    1,
		Limit:   constant.DefaultValueLimit,
		SortBy:  model.PhotoFieldSortOrder,
		SortDir: gDto.SortDirAsc,
	}

	photos, err := s.photoRepo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Str("boatID", boatID).Msg("failed to load boat photos")

		return nil
	}

	urls := make([]string, 0, len(photos))

	for _, photo := range photos {
		if photo.IsAbsoluteURL() {
			urls = append(urls, photo.StorageRef)

			continue
		}

		url, err := s.storage.PresignObjectURL(ctx, constant.Empty, photo.StorageRef)
		if err != nil {
			log.Error().Err(err).Str("boatID", boatID).Msg("failed to presign boat photo")

			continue
		}

		urls = append(urls, url)
	}

	return urls
}
