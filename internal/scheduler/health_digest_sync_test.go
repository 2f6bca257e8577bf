package scheduler

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/Gracehouse247/noble-clarity-engine-sub000/infrastructure/repository"
	"github.com/Gracehouse247/noble-clarity-engine-sub000/infrastructure/repository/mocks"
	"github.com/Gracehouse247/noble-clarity-engine-sub000/internal/domain"
)

func TestHealthDigestSyncService_processBusinessDigest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBusinessRepo := mocks.NewMockBusinessRepository(ctrl)
	mockSnapshotRepo := mocks.NewMockSnapshotRepository(ctrl)
	mockDigestRepo := mocks.NewMockHealthDigestRepository(ctrl)

	service := &HealthDigestSyncService{
		businessRepo: mockBusinessRepo,
		snapshotRepo: mockSnapshotRepo,
		digestRepo:   mockDigestRepo,
	}

	digestDate := time.Date(2026, 8, 29, 6, 0, 0, 0, time.UTC)

	business := &domain.BusinessProfile{
		ID:       "biz01",
		Name:     "Noble Corp",
		Industry: "Technology",
	}

	snapshot := &domain.FinancialSnapshot{
		ID:                 "snap01",
		BusinessID:         "biz01",
		Period:             "2026-07",
		Industry:           "SaaS (Software)",
		Revenue:            500000,
		COGS:               200000,
		OperatingExpenses:  150000,
		InterestExpense:    5000,
		TaxExpense:         25000,
		CurrentAssets:      120000,
		Inventory:          25000,
		CurrentLiabilities: 60000,
		TotalLiabilities:   150000,
		TotalEquity:        300000,
	}

	tests := []struct {
		name     string
		setup    func()
		expected bool
	}{
		{
			name: "Deve salvar o resumo com score calculado sobre o snapshot mais recente",
			setup: func() {
				mockSnapshotRepo.EXPECT().
					GetLatestByBusiness("biz01").
					Return(snapshot, nil)

				mockDigestRepo.EXPECT().
					SaveOrUpdate(gomock.Any()).
					DoAndReturn(func(entry *repository.HealthDigestEntry) error {
						assert.Equal(t, "biz01", entry.BusinessID)
						assert.Equal(t, "2026-07", entry.Period)
						assert.Equal(t, digestDate, entry.DigestDate)
						assert.NotNil(t, entry.Score)
						assert.NotNil(t, entry.KPIs)
						assert.Greater(t, entry.Score.Total, 0)
						return nil
					})
			},
			expected: true,
		},
		{
			name: "Deve pular negócio sem snapshot",
			setup: func() {
				mockSnapshotRepo.EXPECT().
					GetLatestByBusiness("biz01").
					Return(nil, nil)
			},
			expected: false,
		},
		{
			name: "Deve pular negócio com erro de leitura",
			setup: func() {
				mockSnapshotRepo.EXPECT().
					GetLatestByBusiness("biz01").
					Return(nil, errors.New("falha no banco"))
			},
			expected: false,
		},
		{
			name: "Deve pular negócio quando a escrita do resumo falha",
			setup: func() {
				mockSnapshotRepo.EXPECT().
					GetLatestByBusiness("biz01").
					Return(snapshot, nil)

				mockDigestRepo.EXPECT().
					SaveOrUpdate(gomock.Any()).
					Return(errors.New("falha no banco"))
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			processed := service.processBusinessDigest(business, digestDate)

			assert.Equal(t, tt.expected, processed)
		})
	}
}
