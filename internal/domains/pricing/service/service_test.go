package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"nautica/config"
	"nautica/infras/otel/mocks"
	pricingMocks "nautica/internal/domains/pricing/mocks"
	"nautica/internal/domains/pricing/model"
	"nautica/internal/domains/pricing/service"
	profileMocks "nautica/internal/domains/profile/mocks"
	profileModel "nautica/internal/domains/profile/model"
	"nautica/shared/money"
)

func TestPricingService_QuoteBoatDay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRules := pricingMocks.NewMockPricingRule(ctrl)
	mockProfiles := profileMocks.NewMockLoyaltyProfile(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Marketplace.Holidays = []string{"2026-09-07"}

	svc := service.New(mockRules, mockProfiles, service.NewCalendar(cfg), mockOtel)

	tests := []struct {
		name      string
		date      time.Time
		subjectID string
		setupMock func()
		wantTotal int64
		wantErr   bool
	}{
		{
			name:      "holiday rule with milestone discount",
			date:      monday, // configured as a holiday
			subjectID: "renter-1",
			setupMock: func() {
				mockRules.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.PricingRule{{Kind: model.KindHoliday, Modifier: 1.5, Active: true}}, nil)

				mockProfiles.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(profileModel.LoyaltyProfile{ID: "p1", UserID: "renter-1", TotalRentals: 5}, nil)
			},
			wantTotal: 135000,
		},
		{
			name:      "anonymous subject quotes without discount",
			date:      saturday,
			subjectID: "",
			setupMock: func() {
				mockRules.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.PricingRule{{Kind: model.KindWeekend, Modifier: 1.2, Active: true}}, nil)
			},
			wantTotal: 120000,
		},
		{
			name:      "missing profile quotes without discount",
			date:      saturday,
			subjectID: "renter-2",
			setupMock: func() {
				mockRules.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, nil)

				mockProfiles.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(profileModel.LoyaltyProfile{}, errors.New("connection refused"))
			},
			wantTotal: 100000,
		},
		{
			name:      "rule lookup failure",
			date:      saturday,
			subjectID: "renter-1",
			setupMock: func() {
				mockRules.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			got, err := svc.QuoteBoatDay(context.Background(), "boat-1", money.FromCents(100000), tt.date, tt.subjectID)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantTotal, got.Total.Cents())
		})
	}
}
