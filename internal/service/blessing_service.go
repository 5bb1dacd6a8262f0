package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"kaineetam/internal/cache"
	"kaineetam/internal/errors"
	"kaineetam/internal/model"
	"kaineetam/internal/repository"
)

const (
	blessingCacheTTL = 5 * time.Minute
	blessingCodeLen  = 8
	maxCustomMessage = 200
)

// ShareLinks are the relative links handed to the sender at creation time.
// They are page/query encodings; no absolute domain is baked in.
type ShareLinks struct {
	View      string `json:"view_link"`
	Dashboard string `json:"dashboard_link"`
}

// CreateBlessingInput carries the creation form fields. All state travels as
// explicit parameters; the service never reads ambient session state.
type CreateBlessingInput struct {
	RecipientName string
	SenderName    string
	UPIID         string
	Tone          model.Tone
	CustomMessage string
	SenderID      *uuid.UUID
}

// PaymentRequest is a freshly built payment link plus its scannable form.
type PaymentRequest struct {
	Link  string
	QRPNG []byte
}

// BlessingService drives the blessing lifecycle: create, view, and payment
// request assembly.
type BlessingService interface {
	Create(ctx context.Context, input CreateBlessingInput) (*model.Blessing, *ShareLinks, error)
	Get(ctx context.Context, code string) (*model.Blessing, error)
	BuildPaymentRequest(ctx context.Context, code string, amount decimal.Decimal) (*PaymentRequest, error)
	ListBySender(ctx context.Context, senderID uuid.UUID) ([]model.Blessing, error)
}

type blessingService struct {
	repo  repository.BlessingRepository
	cache *cache.Client
	upi   *UPIBuilder
	qr    *QRRenderer
}

// NewBlessingService creates a new blessing service.
func NewBlessingService(repo repository.BlessingRepository, cache *cache.Client, upi *UPIBuilder, qr *QRRenderer) BlessingService {
	return &blessingService{
		repo:  repo,
		cache: cache,
		upi:   upi,
		qr:    qr,
	}
}

func (s *blessingService) cacheKey(code string) string {
	return fmt.Sprintf("blessing:%s", code)
}

// Create validates the form fields, resolves the blessing message from the
// tone, persists the record and returns it with its share links. Nothing is
// persisted on validation failure.
func (s *blessingService) Create(ctx context.Context, input CreateBlessingInput) (*model.Blessing, *ShareLinks, error) {
	recipient := strings.TrimSpace(input.RecipientName)
	sender := strings.TrimSpace(input.SenderName)
	upiID := strings.TrimSpace(input.UPIID)
	custom := strings.TrimSpace(input.CustomMessage)

	var missing []string
	if recipient == "" {
		missing = append(missing, "recipient_name")
	}
	if sender == "" {
		missing = append(missing, "sender_name")
	}
	if upiID == "" {
		missing = append(missing, "upi_id")
	}
	if len(custom) > maxCustomMessage {
		missing = append(missing, "custom_message")
	}
	if len(missing) > 0 {
		return nil, nil, errors.NewValidationError(missing...)
	}

	message, err := ResolveBlessing(input.Tone)
	if err != nil {
		return nil, nil, err
	}

	blessing := &model.Blessing{
		Code:          newBlessingCode(),
		RecipientName: recipient,
		SenderName:    sender,
		UPIID:         upiID,
		Tone:          input.Tone,
		CustomMessage: custom,
		Message:       message,
		SenderID:      input.SenderID,
	}

	if err := s.repo.Create(ctx, blessing); err != nil {
		return nil, nil, fmt.Errorf("create blessing: %w", err)
	}

	links := &ShareLinks{
		View:      fmt.Sprintf("/?page=view&code=%s", blessing.Code),
		Dashboard: fmt.Sprintf("/?page=dashboard&code=%s", blessing.Code),
	}
	return blessing, links, nil
}

// Get retrieves a blessing by code with caching. Records are immutable, so a
// cached copy can never go stale.
func (s *blessingService) Get(ctx context.Context, code string) (*model.Blessing, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(code)); data != nil {
		var cached model.Blessing
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	blessing, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrBlessingNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(blessing); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(code), payload, blessingCacheTTL)
	}

	return blessing, nil
}

// BuildPaymentRequest builds the UPI link and QR image for paying the
// blessing's sender the given amount.
func (s *blessingService) BuildPaymentRequest(ctx context.Context, code string, amount decimal.Decimal) (*PaymentRequest, error) {
	blessing, err := s.Get(ctx, code)
	if err != nil {
		return nil, err
	}

	link, err := s.upi.BuildLink(blessing.UPIID, blessing.SenderName, amount)
	if err != nil {
		return nil, err
	}

	png, err := s.qr.RenderPNG(ctx, link)
	if err != nil {
		return nil, err
	}

	return &PaymentRequest{Link: link, QRPNG: png}, nil
}

// ListBySender returns blessings created by an authenticated sender.
func (s *blessingService) ListBySender(ctx context.Context, senderID uuid.UUID) ([]model.Blessing, error) {
	blessings, err := s.repo.ListBySender(ctx, senderID)
	if err != nil {
		return nil, fmt.Errorf("list blessings: %w", err)
	}
	return blessings, nil
}

// newBlessingCode issues a short shareable identifier. The UUID prefix keeps
// codes typeable while staying effectively unique at this write volume.
func newBlessingCode() string {
	return uuid.New().String()[:blessingCodeLen]
}
