package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"nautica/config"
	"nautica/infras/otel"
	"nautica/internal/domains/availability/model"
	"nautica/internal/domains/availability/model/dto"
	"nautica/internal/domains/availability/repository"
	bookingModel "nautica/internal/domains/booking/model"
	bookingRepo "nautica/internal/domains/booking/repository"
	"nautica/shared"
	"nautica/shared/constant"
	gDto "nautica/shared/dto"
)

type Availability interface {
	Window(ctx context.Context, boatID string, from time.Time, days int) (dto.WindowResponse, error)
}

type serviceImpl struct {
	blockRepo   repository.AvailabilityBlock
	bookingRepo bookingRepo.Booking
	cfg         *config.Config
	otel        otel.Otel
}

func New(blockRepo repository.AvailabilityBlock, bookingRepo bookingRepo.Booking, cfg *config.Config, otel otel.Otel) Availability {
	return &serviceImpl{
		blockRepo:   blockRepo,
		bookingRepo: bookingRepo,
		cfg:         cfg,
		otel:        otel,
	}
}

// BuildWindow partitions the horizon into available and blocked days.
// Every day lands in exactly one list and both come out sorted because the
// horizon is walked in order.
func BuildWindow(from time.Time, days int, blocked map[string]struct{}) (available, unavailable []string) {
	available = make([]string, 0, days)
	unavailable = make([]string, 0)

	for offset := range days {
		day := from.AddDate(0, 0, offset).Format(constant.CalendarDateFormat)

		if _, ok := blocked[day]; ok {
			unavailable = append(unavailable, day)

			continue
		}

		available = append(available, day)
	}

	return available, unavailable
}

func (s *serviceImpl) Window(ctx context.Context, boatID string, from time.Time, days int) (res dto.WindowResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Window")
	defer scope.End()
	defer scope.TraceIfError(err)

	if days <= 0 {
		days = s.cfg.Marketplace.AvailabilityHorizonDays
	}

	fromDay := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	toDay := fromDay.AddDate(0, 0, days-1)

	// Recomputed on every request. Blocks are also written by the owner
	// dashboard directly against the store, so a cached window could keep
	// advertising a freshly blocked day.
	blocked := map[string]struct{}{}

	blocks, err := s.manualBlocks(ctx, boatID, fromDay, toDay)
	if err != nil {
		return res, err
	}

	for _, block := range blocks {
		blocked[block.BlockDate.Format(constant.CalendarDateFormat)] = struct{}{}
	}

	bookings, err := s.activeBookings(ctx, boatID, fromDay, toDay)
	if err != nil {
		return res, err
	}

	for _, booking := range bookings {
		blocked[booking.BookingDate.Format(constant.CalendarDateFormat)] = struct{}{}
	}

	available, unavailable := BuildWindow(fromDay, days, blocked)

	res = dto.WindowResponse{
		BoatID:    boatID,
		From:      fromDay.Format(constant.CalendarDateFormat),
		Days:      days,
		Available: available,
		Blocked:   unavailable,
	}

	return res, nil
}

func (s *serviceImpl) manualBlocks(ctx context.Context, boatID string, from, to time.Time) ([]model.AvailabilityBlock, error) {
	filters := []any{
		gDto.Filter{
			Field:    model.FieldBoatID,
			Value:    boatID,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		},
		gDto.Filter{
			Field:    model.FieldAvailable,
			Value:    false,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		},
	}
	filters = append(filters, shared.FilterByDateRange(model.FieldBlockDate, model.TableName, from, to)...)

	blocks, err := s.blockRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{Filters: filters, Operator: gDto.FilterGroupOperatorAnd})
	if err != nil {
		log.Error().Err(err).Str("boatID", boatID).Msg("failed to load availability blocks")

		return nil, fmt.Errorf("failed to load availability blocks: %w", err)
	}

	return blocks, nil
}

func (s *serviceImpl) activeBookings(ctx context.Context, boatID string, from, to time.Time) ([]bookingModel.Booking, error) {
	filters := []any{
		gDto.Filter{
			Field:    bookingModel.FieldBoatID,
			Value:    boatID,
			Operator: gDto.FilterOperatorEq,
			Table:    bookingModel.TableName,
		},
		gDto.Filter{
			Field:    bookingModel.FieldStatus,
			Value:    bookingModel.ActiveStatuses(),
			Operator: gDto.FilterOperatorIn,
			Table:    bookingModel.TableName,
		},
	}
	filters = append(filters, shared.FilterByDateRange(bookingModel.FieldBookingDate, bookingModel.TableName, from, to)...)

	bookings, err := s.bookingRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{Filters: filters, Operator: gDto.FilterGroupOperatorAnd})
	if err != nil {
		log.Error().Err(err).Str("boatID", boatID).Msg("failed to load active bookings")

		return nil, fmt.Errorf("failed to load active bookings: %w", err)
	}

	return bookings, nil
}
