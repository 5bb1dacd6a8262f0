package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"kaineetam/internal/errors"
	"kaineetam/internal/model"
)

// MockBlessingRepository is a mock implementation of BlessingRepository.
type MockBlessingRepository struct {
	mock.Mock
}

func (m *MockBlessingRepository) Create(ctx context.Context, blessing *model.Blessing) error {
	args := m.Called(ctx, blessing)
	return args.Error(0)
}

func (m *MockBlessingRepository) FindByCode(ctx context.Context, code string) (*model.Blessing, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Blessing), args.Error(1)
}

func (m *MockBlessingRepository) ListBySender(ctx context.Context, senderID uuid.UUID) ([]model.Blessing, error) {
	args := m.Called(ctx, senderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Blessing), args.Error(1)
}

func newBlessingServiceForTest(repo *MockBlessingRepository) BlessingService {
	return NewBlessingService(repo, nil, NewUPIBuilder(), NewQRRenderer(nil))
}

func TestBlessingService_Create(t *testing.T) {
	tests := []struct {
		name          string
		input         CreateBlessingInput
		setupMock     func(*MockBlessingRepository)
		expectedError error
		missingFields []string
	}{
		{
			name: "successful creation",
			input: CreateBlessingInput{
				RecipientName: "Asha",
				SenderName:    "Raj",
				UPIID:         "raj@bank",
				Tone:          model.ToneModern,
			},
			setupMock: func(m *MockBlessingRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Blessing")).Return(nil)
			},
		},
		{
			name: "custom message is kept",
			input: CreateBlessingInput{
				RecipientName: "Appu",
				SenderName:    "Lakshmi",
				UPIID:         "lakshmi@upi",
				Tone:          model.ToneTraditional,
				CustomMessage: "  Vishu ashamsakal!  ",
			},
			setupMock: func(m *MockBlessingRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Blessing")).Return(nil)
			},
		},
		{
			name: "missing fields are reported together",
			input: CreateBlessingInput{
				SenderName: "  ",
				Tone:       model.ToneModern,
			},
			setupMock:     func(m *MockBlessingRepository) {},
			expectedError: &errors.ValidationError{},
			missingFields: []string{"recipient_name", "sender_name", "upi_id"},
		},
		{
			name: "unknown tone is rejected, not defaulted",
			input: CreateBlessingInput{
				RecipientName: "Asha",
				SenderName:    "Raj",
				UPIID:         "raj@bank",
				Tone:          model.Tone("grumpy"),
			},
			setupMock:     func(m *MockBlessingRepository) {},
			expectedError: errors.ErrUnknownTone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockBlessingRepository)
			tt.setupMock(mockRepo)

			svc := newBlessingServiceForTest(mockRepo)
			blessing, links, err := svc.Create(context.Background(), tt.input)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Nil(t, blessing)
				assert.Nil(t, links)
				if len(tt.missingFields) > 0 {
					var vErr *errors.ValidationError
					assert.ErrorAs(t, err, &vErr)
					assert.Equal(t, tt.missingFields, vErr.Fields)
				} else {
					assert.ErrorIs(t, err, tt.expectedError)
				}
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, blessing)
				assert.Len(t, blessing.Code, 8)
				assert.NotEmpty(t, blessing.Message)
				assert.Contains(t, blessingCatalog[tt.input.Tone], blessing.Message)
				assert.Equal(t, "/?page=view&code="+blessing.Code, links.View)
				assert.Equal(t, "/?page=dashboard&code="+blessing.Code, links.Dashboard)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestBlessingService_Create_UniqueCodes(t *testing.T) {
	mockRepo := new(MockBlessingRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Blessing")).Return(nil)
	svc := newBlessingServiceForTest(mockRepo)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		blessing, _, err := svc.Create(context.Background(), CreateBlessingInput{
			RecipientName: "Asha",
			SenderName:    "Raj",
			UPIID:         "raj@bank",
			Tone:          model.ToneSimple,
		})
		assert.NoError(t, err)
		assert.False(t, seen[blessing.Code], "duplicate code %s", blessing.Code)
		seen[blessing.Code] = true
	}
}

func TestBlessingService_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mockRepo := new(MockBlessingRepository)
		stored := &model.Blessing{
			Code:          "ab12cd34",
			RecipientName: "Asha",
			SenderName:    "Raj",
			UPIID:         "raj@bank",
			Tone:          model.ToneModern,
			Message:       "Wishing you gold, growth, and good vibes!",
		}
		mockRepo.On("FindByCode", mock.Anything, "ab12cd34").Return(stored, nil)

		svc := newBlessingServiceForTest(mockRepo)
		blessing, err := svc.Get(context.Background(), "ab12cd34")
		assert.NoError(t, err)
		assert.Equal(t, stored, blessing)
		mockRepo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo := new(MockBlessingRepository)
		mockRepo.On("FindByCode", mock.Anything, "missing1").Return(nil, gorm.ErrRecordNotFound)

		svc := newBlessingServiceForTest(mockRepo)
		blessing, err := svc.Get(context.Background(), "missing1")
		assert.ErrorIs(t, err, errors.ErrBlessingNotFound)
		assert.Nil(t, blessing)
		mockRepo.AssertExpectations(t)
	})
}

func TestBlessingService_BuildPaymentRequest(t *testing.T) {
	stored := &model.Blessing{
		Code:          "ab12cd34",
		RecipientName: "Asha",
		SenderName:    "Raj Kumar",
		UPIID:         "raj@bank",
		Tone:          model.ToneModern,
		Message:       "Wishing you gold, growth, and good vibes!",
	}

	t.Run("link and image", func(t *testing.T) {
		mockRepo := new(MockBlessingRepository)
		mockRepo.On("FindByCode", mock.Anything, "ab12cd34").Return(stored, nil)

		svc := newBlessingServiceForTest(mockRepo)
		pr, err := svc.BuildPaymentRequest(context.Background(), "ab12cd34", decimal.NewFromInt(101))
		assert.NoError(t, err)
		assert.Equal(t, "upi://pay?pa=raj@bank&pn=Raj%20Kumar&am=101.00&cu=INR&tn=Vishu%20Kaineetam", pr.Link)
		assert.NotEmpty(t, pr.QRPNG)
	})

	t.Run("non-positive amount", func(t *testing.T) {
		mockRepo := new(MockBlessingRepository)
		mockRepo.On("FindByCode", mock.Anything, "ab12cd34").Return(stored, nil)

		svc := newBlessingServiceForTest(mockRepo)
		pr, err := svc.BuildPaymentRequest(context.Background(), "ab12cd34", decimal.Zero)
		assert.ErrorIs(t, err, errors.ErrNothingToEncode)
		assert.Nil(t, pr)
	})

	t.Run("unknown code", func(t *testing.T) {
		mockRepo := new(MockBlessingRepository)
		mockRepo.On("FindByCode", mock.Anything, "missing1").Return(nil, gorm.ErrRecordNotFound)

		svc := newBlessingServiceForTest(mockRepo)
		pr, err := svc.BuildPaymentRequest(context.Background(), "missing1", decimal.NewFromInt(51))
		assert.ErrorIs(t, err, errors.ErrBlessingNotFound)
		assert.Nil(t, pr)
	})
}
