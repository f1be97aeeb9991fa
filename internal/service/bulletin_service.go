package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/tdiabate/farmpay/internal/model"
	"github.com/tdiabate/farmpay/internal/repository"
	"github.com/tdiabate/farmpay/internal/settlement"
)

type BulletinStore interface {
	Create(ctx context.Context, bulletin model.Bulletin, weighingIDs []uuid.UUID) (*model.Bulletin, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Bulletin, error)
	ListByFarmer(ctx context.Context, farmerID uuid.UUID, status *model.BulletinStatus) ([]model.Bulletin, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.BulletinStatus, validatedAt, cancelledAt *time.Time) error
}

type PDFGenerator interface {
	Generate(doc model.BulletinDocument) ([]byte, error)
}

// BulletinService reconciles unpaid weighings with the credit ledger and
// owns the bulletin lifecycle: DRAFT -> VALIDATED or DRAFT -> CANCELLED,
// both terminal.
type BulletinService struct {
	bulletins BulletinStore
	weighings WeighingStore
	credits   CreditStore
	farmers   FarmerGetter
	pdf       PDFGenerator
}

func NewBulletinService(
	bulletins BulletinStore,
	weighings WeighingStore,
	credits CreditStore,
	farmers FarmerGetter,
	pdf PDFGenerator,
) *BulletinService {
	return &BulletinService{
		bulletins: bulletins,
		weighings: weighings,
		credits:   credits,
		farmers:   farmers,
		pdf:       pdf,
	}
}

type CreateBulletinInput struct {
	FarmerID    uuid.UUID
	Period      string
	WeighingIDs []uuid.UUID
	Principal   model.Principal
}

type FileResult struct {
	FileName string
	Content  []byte
}

// UnpaidWeighings returns the farmer's weighings not covered by any
// non-cancelled bulletin.
func (s *BulletinService) UnpaidWeighings(ctx context.Context, farmerID uuid.UUID) ([]model.Weighing, error) {
	if _, err := s.farmers.Get(ctx, farmerID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.weighings.ListUnpaidByFarmer(ctx, farmerID)
}

// Create settles a batch of weighings into a draft bulletin: it sums their
// net amounts, withholds outstanding credit up to that sum, and attaches the
// weighings. A weighing billed elsewhere since the caller checked
// eligibility fails the whole create with ErrConflict.
func (s *BulletinService) Create(ctx context.Context, input CreateBulletinInput) (*model.Bulletin, error) {
	if !input.Principal.CanSettle() {
		return nil, ErrPermissionDenied
	}
	if input.FarmerID == uuid.Nil {
		return nil, fmt.Errorf("%w: farmer_id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(input.Period) == "" {
		return nil, fmt.Errorf("%w: period is required", ErrInvalidInput)
	}
	if len(input.WeighingIDs) == 0 {
		return nil, fmt.Errorf("%w: at least one weighing is required", ErrInvalidInput)
	}

	if _, err := s.farmers.Get(ctx, input.FarmerID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	weighings, err := s.weighings.ListByIDs(ctx, input.WeighingIDs)
	if err != nil {
		return nil, err
	}
	if len(weighings) != len(input.WeighingIDs) {
		return nil, fmt.Errorf("%w: unknown weighing in selection", ErrNotFound)
	}

	gross := decimal.Zero
	for _, weighing := range weighings {
		if weighing.FarmerID != input.FarmerID {
			return nil, fmt.Errorf("%w: weighing %s belongs to another farmer", ErrInvalidInput, weighing.ID)
		}
		gross = gross.Add(weighing.NetAmount)
	}

	pending, err := s.credits.SumOutstanding(ctx, input.FarmerID)
	if err != nil {
		return nil, err
	}
	deduction := settlement.ApplyCreditDeduction(gross, pending)

	bulletin := model.Bulletin{
		FarmerID:        input.FarmerID,
		Period:          strings.TrimSpace(input.Period),
		GrossAmount:     gross,
		CreditsDeducted: deduction.CreditsDeducted,
		NetAmount:       deduction.NetAmount,
		Status:          model.BulletinStatusDraft,
		GeneratedDate:   dateOnly(time.Now()),
		CreatedByUserID: input.Principal.UserID,
	}

	saved, err := s.bulletins.Create(ctx, bulletin, input.WeighingIDs)
	if err != nil {
		if errors.Is(err, repository.ErrWeighingAlreadyBilled) {
			return nil, fmt.Errorf("%w: weighing already on a bulletin", ErrConflict)
		}
		return nil, err
	}
	return saved, nil
}

// Validate moves a draft bulletin to VALIDATED, making it payable.
func (s *BulletinService) Validate(ctx context.Context, id uuid.UUID, principal model.Principal) (*model.Bulletin, error) {
	return s.transition(ctx, id, principal, model.BulletinStatusValidated)
}

// Cancel moves a draft bulletin to CANCELLED, releasing its weighings back
// to the unpaid pool.
func (s *BulletinService) Cancel(ctx context.Context, id uuid.UUID, principal model.Principal) (*model.Bulletin, error) {
	return s.transition(ctx, id, principal, model.BulletinStatusCancelled)
}

func (s *BulletinService) transition(ctx context.Context, id uuid.UUID, principal model.Principal, target model.BulletinStatus) (*model.Bulletin, error) {
	if !principal.CanSettle() {
		return nil, ErrPermissionDenied
	}

	bulletin, err := s.bulletins.Get(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if bulletin.Status != model.BulletinStatusDraft {
		return nil, fmt.Errorf("%w: bulletin is %s", ErrConflict, bulletin.Status)
	}

	now := time.Now()
	var validatedAt, cancelledAt *time.Time
	switch target {
	case model.BulletinStatusValidated:
		validatedAt = &now
	case model.BulletinStatusCancelled:
		cancelledAt = &now
	}

	if err := s.bulletins.UpdateStatus(ctx, id, target, validatedAt, cancelledAt); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	bulletin.Status = target
	bulletin.ValidatedAt = validatedAt
	bulletin.CancelledAt = cancelledAt
	return bulletin, nil
}

func (s *BulletinService) Get(ctx context.Context, id uuid.UUID) (*model.Bulletin, error) {
	bulletin, err := s.bulletins.Get(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return bulletin, nil
}

func (s *BulletinService) ListByFarmer(ctx context.Context, farmerID uuid.UUID, status *model.BulletinStatus) ([]model.Bulletin, error) {
	return s.bulletins.ListByFarmer(ctx, farmerID, status)
}

// GeneratePDF renders the printable payment bulletin.
func (s *BulletinService) GeneratePDF(ctx context.Context, id uuid.UUID) (*FileResult, error) {
	bulletin, err := s.bulletins.Get(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	farmer, err := s.farmers.Get(ctx, bulletin.FarmerID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	weighings, err := s.weighings.ListByIDs(ctx, bulletin.WeighingIDs)
	if err != nil {
		return nil, err
	}

	outstanding, err := s.credits.SumOutstanding(ctx, bulletin.FarmerID)
	if err != nil {
		return nil, err
	}

	// A draft still owes its deduction, so the projected balance subtracts
	// it. Once the bulletin left DRAFT the ledger already reflects whatever
	// was actually collected; re-printing must not subtract again.
	outstandingAfter := outstanding
	if bulletin.Status == model.BulletinStatusDraft {
		outstandingAfter = outstanding.Sub(bulletin.CreditsDeducted)
	}

	content, err := s.pdf.Generate(model.BulletinDocument{
		Bulletin:          *bulletin,
		Farmer:            *farmer,
		Weighings:         weighings,
		OutstandingBefore: outstanding,
		OutstandingAfter:  outstandingAfter,
	})
	if err != nil {
		return nil, err
	}

	fileName := fmt.Sprintf("bulletin-%s-%s.pdf",
		sanitizeFileName(farmer.FullName()),
		sanitizeFileName(bulletin.Period),
	)
	return &FileResult{FileName: fileName, Content: content}, nil
}

func dateOnly(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sanitizeFileName(input string) string {
	result := make([]rune, 0, len(input))
	for _, r := range input {
		switch {
		case r >= 'a' && r <= 'z':
			result = append(result, r)
		case r >= 'A' && r <= 'Z':
			result = append(result, r)
		case r >= '0' && r <= '9':
			result = append(result, r)
		case r == '-', r == '_':
			result = append(result, r)
		default:
			result = append(result, '-')
		}
	}
	return strings.Trim(string(result), "-")
}
