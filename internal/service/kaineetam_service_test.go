package service

import (
	"context"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"kaineetam/internal/errors"
	"kaineetam/internal/model"
)

// MockKaineetamRepository is a mock implementation of KaineetamRepository.
type MockKaineetamRepository struct {
	mock.Mock
}

func (m *MockKaineetamRepository) Append(ctx context.Context, entry *model.KaineetamLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockKaineetamRepository) ListByBlessing(ctx context.Context, blessingCode string) ([]model.KaineetamLog, error) {
	args := m.Called(ctx, blessingCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.KaineetamLog), args.Error(1)
}

func testBlessing() *model.Blessing {
	return &model.Blessing{
		Code:          "ab12cd34",
		RecipientName: "Asha",
		SenderName:    "Raj",
		UPIID:         "raj@bank",
		Tone:          model.ToneModern,
		Message:       "Wishing you gold, growth, and good vibes!",
	}
}

func TestKaineetamService_Confirm(t *testing.T) {
	tests := []struct {
		name          string
		giverName     string
		amount        decimal.Decimal
		note          string
		setupMock     func(*MockKaineetamRepository)
		expectedError error
		invalidFields []string
	}{
		{
			name:      "successful confirmation",
			giverName: "Maya",
			amount:    decimal.NewFromInt(101),
			note:      "Vishu ashamsakal!",
			setupMock: func(m *MockKaineetamRepository) {
				m.On("Append", mock.Anything, mock.AnythingOfType("*model.KaineetamLog")).Return(nil)
			},
		},
		{
			name:          "missing giver name",
			giverName:     "   ",
			amount:        decimal.NewFromInt(101),
			setupMock:     func(m *MockKaineetamRepository) {},
			expectedError: &errors.ValidationError{},
			invalidFields: []string{"giver_name"},
		},
		{
			name:          "amount below one rupee",
			giverName:     "Maya",
			amount:        decimal.RequireFromString("0.5"),
			setupMock:     func(m *MockKaineetamRepository) {},
			expectedError: errors.ErrInvalidAmount,
		},
		{
			name:          "zero amount",
			giverName:     "Maya",
			amount:        decimal.Zero,
			setupMock:     func(m *MockKaineetamRepository) {},
			expectedError: errors.ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blessingRepo := new(MockBlessingRepository)
			logRepo := new(MockKaineetamRepository)
			tt.setupMock(logRepo)

			svc := NewKaineetamService(blessingRepo, logRepo)
			entry, err := svc.Confirm(context.Background(), "ab12cd34", tt.giverName, tt.amount, tt.note)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Nil(t, entry)
				if len(tt.invalidFields) > 0 {
					var vErr *errors.ValidationError
					assert.ErrorAs(t, err, &vErr)
					assert.Equal(t, tt.invalidFields, vErr.Fields)
				} else {
					assert.ErrorIs(t, err, tt.expectedError)
				}
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, entry)
				assert.Equal(t, "ab12cd34", entry.BlessingCode)
				assert.Equal(t, "Maya", entry.GiverName)
				assert.Equal(t, "101.00", entry.Amount)
			}

			logRepo.AssertExpectations(t)
		})
	}
}

func TestKaineetamService_Confirm_NoDeduplication(t *testing.T) {
	blessingRepo := new(MockBlessingRepository)
	logRepo := new(MockKaineetamRepository)
	logRepo.On("Append", mock.Anything, mock.AnythingOfType("*model.KaineetamLog")).Return(nil).Times(2)

	svc := NewKaineetamService(blessingRepo, logRepo)

	// the same confirmation twice intentionally records two gifts
	_, err := svc.Confirm(context.Background(), "ab12cd34", "Maya", decimal.NewFromInt(101), "")
	assert.NoError(t, err)
	_, err = svc.Confirm(context.Background(), "ab12cd34", "Maya", decimal.NewFromInt(101), "")
	assert.NoError(t, err)

	logRepo.AssertExpectations(t)
}

func TestKaineetamService_Dashboard(t *testing.T) {
	base := time.Date(2026, time.April, 14, 9, 0, 0, 0, time.UTC)

	t.Run("aggregates reported gifts", func(t *testing.T) {
		blessingRepo := new(MockBlessingRepository)
		logRepo := new(MockKaineetamRepository)
		blessingRepo.On("FindByCode", mock.Anything, "ab12cd34").Return(testBlessing(), nil)
		logRepo.On("ListByBlessing", mock.Anything, "ab12cd34").Return([]model.KaineetamLog{
			{ID: 1, BlessingCode: "ab12cd34", GiverName: "Maya", Amount: "101.00", CreatedAt: base},
			{ID: 2, BlessingCode: "ab12cd34", GiverName: "Deepa", Amount: "51.00", CreatedAt: base.Add(time.Hour)},
		}, nil)

		svc := NewKaineetamService(blessingRepo, logRepo)
		summary, err := svc.Dashboard(context.Background(), "ab12cd34")
		assert.NoError(t, err)
		assert.Equal(t, 2, summary.Count)
		assert.Equal(t, "152.00", summary.Total.StringFixed(2))
		assert.Equal(t, "76.00", summary.Average.StringFixed(2))
		assert.NotNil(t, summary.TopGiver)
		assert.Equal(t, "Maya", summary.TopGiver.GiverName)

		// detail view is newest first
		assert.Len(t, summary.Entries, 2)
		assert.Equal(t, "Deepa", summary.Entries[0].GiverName)
		assert.Equal(t, "Maya", summary.Entries[1].GiverName)
	})

	t.Run("empty log", func(t *testing.T) {
		blessingRepo := new(MockBlessingRepository)
		logRepo := new(MockKaineetamRepository)
		blessingRepo.On("FindByCode", mock.Anything, "ab12cd34").Return(testBlessing(), nil)
		logRepo.On("ListByBlessing", mock.Anything, "ab12cd34").Return([]model.KaineetamLog{}, nil)

		svc := NewKaineetamService(blessingRepo, logRepo)
		summary, err := svc.Dashboard(context.Background(), "ab12cd34")
		assert.NoError(t, err)
		assert.Equal(t, 0, summary.Count)
		assert.True(t, summary.Total.IsZero())
		assert.True(t, summary.Average.IsZero(), "average is zero when there are no gifts")
		assert.Nil(t, summary.TopGiver)
		assert.Empty(t, summary.Entries)
	})

	t.Run("unknown blessing", func(t *testing.T) {
		blessingRepo := new(MockBlessingRepository)
		logRepo := new(MockKaineetamRepository)
		blessingRepo.On("FindByCode", mock.Anything, "unknown1").Return(nil, gorm.ErrRecordNotFound)

		svc := NewKaineetamService(blessingRepo, logRepo)
		summary, err := svc.Dashboard(context.Background(), "unknown1")
		assert.ErrorIs(t, err, errors.ErrBlessingNotFound)
		assert.Nil(t, summary)
	})

	t.Run("malformed stored amount contributes zero", func(t *testing.T) {
		blessingRepo := new(MockBlessingRepository)
		logRepo := new(MockKaineetamRepository)
		blessingRepo.On("FindByCode", mock.Anything, "ab12cd34").Return(testBlessing(), nil)
		logRepo.On("ListByBlessing", mock.Anything, "ab12cd34").Return([]model.KaineetamLog{
			{ID: 1, GiverName: "Maya", Amount: "abc", CreatedAt: base},
			{ID: 2, GiverName: "Deepa", Amount: "50.00", CreatedAt: base.Add(time.Minute)},
		}, nil)

		svc := NewKaineetamService(blessingRepo, logRepo)
		summary, err := svc.Dashboard(context.Background(), "ab12cd34")
		assert.NoError(t, err, "a corrupt entry must not fail the dashboard")
		assert.Equal(t, 2, summary.Count)
		assert.Equal(t, "50.00", summary.Total.StringFixed(2))
		assert.Equal(t, "Deepa", summary.TopGiver.GiverName)
	})
}

func TestAggregate_TopGiverTieBreak(t *testing.T) {
	base := time.Date(2026, time.April, 14, 9, 0, 0, 0, time.UTC)
	logs := []model.KaineetamLog{
		{ID: 1, GiverName: "Anu", Amount: "100.00", CreatedAt: base},
		{ID: 2, GiverName: "Biju", Amount: "50.00", CreatedAt: base.Add(time.Minute)},
		{ID: 3, GiverName: "Chitra", Amount: "100.00", CreatedAt: base.Add(2 * time.Minute)},
	}

	// first occurrence in arrival order wins, and repeatedly so
	for i := 0; i < 10; i++ {
		summary := aggregate(logs)
		assert.Equal(t, "Anu", summary.TopGiver.GiverName)
		assert.Equal(t, "250.00", summary.Total.StringFixed(2))
	}
}

func TestKaineetamService_ExportCSV(t *testing.T) {
	base := time.Date(2026, time.April, 14, 9, 0, 0, 0, time.UTC)

	blessingRepo := new(MockBlessingRepository)
	logRepo := new(MockKaineetamRepository)
	blessingRepo.On("FindByCode", mock.Anything, "ab12cd34").Return(testBlessing(), nil)
	logRepo.On("ListByBlessing", mock.Anything, "ab12cd34").Return([]model.KaineetamLog{
		{ID: 1, GiverName: "Maya", Amount: "101.00", Note: "Vishu ashamsakal!", CreatedAt: base},
		{ID: 2, GiverName: "Deepa", Amount: "51.00", CreatedAt: base.Add(time.Hour)},
	}, nil)

	svc := NewKaineetamService(blessingRepo, logRepo)
	data, err := svc.ExportCSV(context.Background(), "ab12cd34")
	assert.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, records, 3)
	assert.Equal(t, []string{"Time Received", "Giver Name", "Amount", "Message"}, records[0])
	// newest first
	assert.Equal(t, []string{"2026-04-14 10:00:00", "Deepa", "51.00", ""}, records[1])
	assert.Equal(t, []string{"2026-04-14 09:00:00", "Maya", "101.00", "Vishu ashamsakal!"}, records[2])
}
