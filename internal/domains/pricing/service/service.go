package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"nautica/infras/otel"
	"nautica/internal/domains/pricing/model"
	"nautica/internal/domains/pricing/model/dto"
	"nautica/internal/domains/pricing/repository"
	profileModel "nautica/internal/domains/profile/model"
	profileRepo "nautica/internal/domains/profile/repository"
	"nautica/shared/constant"
	gDto "nautica/shared/dto"
	"nautica/shared/money"
)

type Pricing interface {
	QuoteBoatDay(ctx context.Context, boatID string, basePrice money.Money, date time.Time, subjectID string) (dto.Breakdown, error)
}

type serviceImpl struct {
	ruleRepo    repository.PricingRule
	profileRepo profileRepo.LoyaltyProfile
	calendar    *Calendar
	otel        otel.Otel
}

func New(ruleRepo repository.PricingRule, profileRepo profileRepo.LoyaltyProfile, calendar *Calendar, otel otel.Otel) Pricing {
	return &serviceImpl{
		ruleRepo:    ruleRepo,
		profileRepo: profileRepo,
		calendar:    calendar,
		otel:        otel,
	}
}

func (s *serviceImpl) QuoteBoatDay(ctx context.Context, boatID string, basePrice money.Money, date time.Time, subjectID string) (res dto.Breakdown, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".QuoteBoatDay")
	defer scope.End()
	defer scope.TraceIfError(err)

	rules, err := s.rulesForBoat(ctx, boatID)
	if err != nil {
		return res, err
	}

	completedRentals := s.completedRentals(ctx, subjectID)

	return Quote(basePrice, date, s.calendar.IsHoliday(date), rules, completedRentals), nil
}

func (s *serviceImpl) rulesForBoat(ctx context.Context, boatID string) ([]model.PricingRule, error) {
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBoatID,
				Value:    boatID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldActive,
				Value:    true,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
		Operator: gDto.FilterGroupOperatorAnd,
	}

	rules, err := s.ruleRepo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Str("boatID", boatID).Msg("failed to load pricing rules")

		return nil, fmt.Errorf("failed to load pricing rules: %w", err)
	}

	return rules, nil
}

// completedRentals looks up the renter's loyalty profile. A missing
// profile or anonymous subject simply quotes without the discount.
func (s *serviceImpl) completedRentals(ctx context.Context, subjectID string) int {
	if subjectID == constant.Empty {
		return 0
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    profileModel.FieldUserID,
				Value:    subjectID,
				Operator: gDto.FilterOperatorEq,
				Table:    profileModel.TableName,
			},
		},
	}

	profile, err := s.profileRepo.Get(ctx, filter)
	if err != nil {
		log.Warn().Err(err).Str("subjectID", subjectID).Msg("failed to load loyalty profile, quoting without discount")

		return 0
	}

	return profile.TotalRentals
}
