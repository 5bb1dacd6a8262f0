package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"kaineetam/internal/errors"
	"kaineetam/internal/model"
	"kaineetam/internal/repository"
)

const maxNoteLength = 150

// csvTimeLayout matches the dashboard's human-readable timestamp rendering.
const csvTimeLayout = "2006-01-02 15:04:05"

var minKaineetam = decimal.NewFromInt(1)

// DashboardEntry is one confirmed kaineetam in the dashboard detail view.
type DashboardEntry struct {
	GiverName  string          `json:"giver_name"`
	Amount     decimal.Decimal `json:"amount"`
	Note       string          `json:"note,omitempty"`
	ReceivedAt time.Time       `json:"received_at"`
}

// DashboardSummary aggregates a blessing's payment log.
type DashboardSummary struct {
	Blessing *model.Blessing  `json:"blessing"`
	Total    decimal.Decimal  `json:"total"`
	Count    int              `json:"count"`
	Average  decimal.Decimal  `json:"average"`
	TopGiver *DashboardEntry  `json:"top_giver,omitempty"`
	Entries  []DashboardEntry `json:"entries"`
}

// KaineetamService records self-reported payment confirmations and computes
// the sender's dashboard over them.
type KaineetamService interface {
	Confirm(ctx context.Context, blessingCode, giverName string, amount decimal.Decimal, note string) (*model.KaineetamLog, error)
	Dashboard(ctx context.Context, blessingCode string) (*DashboardSummary, error)
	ExportCSV(ctx context.Context, blessingCode string) ([]byte, error)
}

type kaineetamService struct {
	blessingRepo repository.BlessingRepository
	logRepo      repository.KaineetamRepository
}

// NewKaineetamService creates a new kaineetam service.
func NewKaineetamService(blessingRepo repository.BlessingRepository, logRepo repository.KaineetamRepository) KaineetamService {
	return &kaineetamService{
		blessingRepo: blessingRepo,
		logRepo:      logRepo,
	}
}

// Confirm appends a payment confirmation. The entry is durable once Confirm
// returns, so a dashboard read immediately reflects it. Confirmations are
// unauthenticated self-reports and intentionally not deduplicated: submitting
// twice records two gifts.
func (s *kaineetamService) Confirm(ctx context.Context, blessingCode, giverName string, amount decimal.Decimal, note string) (*model.KaineetamLog, error) {
	giverName = strings.TrimSpace(giverName)
	note = strings.TrimSpace(note)

	var invalid []string
	if giverName == "" {
		invalid = append(invalid, "giver_name")
	}
	if len(note) > maxNoteLength {
		invalid = append(invalid, "note")
	}
	if len(invalid) > 0 {
		return nil, errors.NewValidationError(invalid...)
	}
	if amount.LessThan(minKaineetam) {
		return nil, errors.ErrInvalidAmount
	}

	entry := &model.KaineetamLog{
		BlessingCode: blessingCode,
		GiverName:    giverName,
		Amount:       amount.StringFixed(2),
		Note:         note,
	}

	if err := s.logRepo.Append(ctx, entry); err != nil {
		return nil, fmt.Errorf("append kaineetam log: %w", err)
	}
	return entry, nil
}

// Dashboard fetches the blessing and its full payment log and aggregates it.
func (s *kaineetamService) Dashboard(ctx context.Context, blessingCode string) (*DashboardSummary, error) {
	blessing, err := s.blessingRepo.FindByCode(ctx, blessingCode)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrBlessingNotFound
		}
		return nil, err
	}

	logs, err := s.logRepo.ListByBlessing(ctx, blessingCode)
	if err != nil {
		return nil, fmt.Errorf("list kaineetam logs: %w", err)
	}

	summary := aggregate(logs)
	summary.Blessing = blessing
	return summary, nil
}

// aggregate computes dashboard statistics over entries in arrival order.
//
// Tie-break policy: when several entries share the maximum amount, the first
// in arrival order is the top giver.
func aggregate(logs []model.KaineetamLog) *DashboardSummary {
	summary := &DashboardSummary{
		Total:   decimal.Zero,
		Average: decimal.Zero,
		Count:   len(logs),
		Entries: make([]DashboardEntry, 0, len(logs)),
	}

	var topIdx = -1
	var topAmount decimal.Decimal
	for i, entry := range logs {
		amount := parseAmount(entry.Amount)
		summary.Total = summary.Total.Add(amount)
		if topIdx < 0 || amount.GreaterThan(topAmount) {
			topIdx = i
			topAmount = amount
		}
		summary.Entries = append(summary.Entries, DashboardEntry{
			GiverName:  entry.GiverName,
			Amount:     amount,
			Note:       entry.Note,
			ReceivedAt: entry.CreatedAt,
		})
	}

	if topIdx >= 0 {
		top := summary.Entries[topIdx]
		summary.TopGiver = &top
	}
	if summary.Count > 0 {
		summary.Average = summary.Total.DivRound(decimal.NewFromInt(int64(summary.Count)), 2)
	}

	// detail view is newest-first
	sort.SliceStable(summary.Entries, func(i, j int) bool {
		return summary.Entries[i].ReceivedAt.After(summary.Entries[j].ReceivedAt)
	})

	return summary
}

// parseAmount reads a stored amount, coercing unparseable values to zero. A
// single corrupt entry must not take down the whole dashboard.
func parseAmount(raw string) decimal.Decimal {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero
	}
	return amount
}

// ExportCSV renders the dashboard detail view as CSV, newest-first.
func (s *kaineetamService) ExportCSV(ctx context.Context, blessingCode string) ([]byte, error) {
	summary, err := s.Dashboard(ctx, blessingCode)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"Time Received", "Giver Name", "Amount", "Message"}); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, entry := range summary.Entries {
		record := []string{
			entry.ReceivedAt.Format(csvTimeLayout),
			entry.GiverName,
			entry.Amount.StringFixed(2),
			entry.Note,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write csv record: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
