package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tdiabate/farmpay/internal/model"
)

type ReportStore interface {
	ListTransporterGroups(ctx context.Context) ([]model.WeighingGroup, error)
	ListFarmerGroups(ctx context.Context) ([]model.WeighingGroup, error)
	WeighingCountsByTransporter(ctx context.Context, farmerID uuid.UUID, from, to time.Time) ([]model.WeighingGroup, error)
	WeighingCountsByFarmer(ctx context.Context, transporterID uuid.UUID, from, to time.Time) ([]model.WeighingGroup, error)
	ListDetailsByTransporter(ctx context.Context, farmerID, transporterID uuid.UUID, from, to time.Time) ([]model.WeighingDetail, error)
	ListDetailsByFarmer(ctx context.Context, transporterID, farmerID uuid.UUID, from, to time.Time) ([]model.WeighingDetail, error)
}

type TransporterGetter interface {
	GetTransporter(ctx context.Context, id uuid.UUID) (*model.Transporter, error)
}

type ExcelGenerator interface {
	Generate(report model.WeighingReport) ([]byte, error)
}

type ReportService struct {
	repo         ReportStore
	farmers      FarmerGetter
	transporters TransporterGetter
	excel        ExcelGenerator
}

func NewReportService(repo ReportStore, farmers FarmerGetter, transporters TransporterGetter, excel ExcelGenerator) *ReportService {
	return &ReportService{
		repo:         repo,
		farmers:      farmers,
		transporters: transporters,
		excel:        excel,
	}
}

type GenerateReportInput struct {
	Mode        model.ReportMode
	TargetID    uuid.UUID
	PeriodStart time.Time
	PeriodEnd   time.Time
	Principal   model.Principal
}

func (s *ReportService) GenerateReport(ctx context.Context, input GenerateReportInput) (*FileResult, error) {
	if !input.Principal.CanSettle() {
		return nil, ErrPermissionDenied
	}
	if input.TargetID == uuid.Nil {
		return nil, fmt.Errorf("%w: target_id is required", ErrInvalidInput)
	}
	if input.PeriodStart.IsZero() || input.PeriodEnd.IsZero() {
		return nil, fmt.Errorf("%w: period dates are required", ErrInvalidInput)
	}

	periodStart := dateOnly(input.PeriodStart)
	periodEnd := dateOnly(input.PeriodEnd)
	if periodStart.After(periodEnd) {
		return nil, fmt.Errorf("%w: period_start must be before or equal to period_end", ErrInvalidInput)
	}

	endExclusive := periodEnd.Add(24 * time.Hour)

	var targetName string
	var groups []model.WeighingGroup

	switch input.Mode {
	case model.ReportModeFarmer:
		farmer, err := s.farmers.Get(ctx, input.TargetID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, ErrNotFound
			}
			return nil, err
		}
		targetName = farmer.FullName()

		base, err := s.repo.ListTransporterGroups(ctx)
		if err != nil {
			return nil, err
		}
		counts, err := s.repo.WeighingCountsByTransporter(ctx, input.TargetID, periodStart, endExclusive)
		if err != nil {
			return nil, err
		}
		groups = mergeGroups(base, counts)

		for i := range groups {
			if groups[i].ID == uuid.Nil {
				continue
			}
			details, err := s.repo.ListDetailsByTransporter(ctx, input.TargetID, groups[i].ID, periodStart, endExclusive)
			if err != nil {
				return nil, err
			}
			groups[i].Weighings = details
		}

	case model.ReportModeTransporter:
		transporter, err := s.transporters.GetTransporter(ctx, input.TargetID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, ErrNotFound
			}
			return nil, err
		}
		targetName = transporter.Name

		base, err := s.repo.ListFarmerGroups(ctx)
		if err != nil {
			return nil, err
		}
		counts, err := s.repo.WeighingCountsByFarmer(ctx, input.TargetID, periodStart, endExclusive)
		if err != nil {
			return nil, err
		}
		groups = mergeGroups(base, counts)

		for i := range groups {
			if groups[i].ID == uuid.Nil {
				continue
			}
			details, err := s.repo.ListDetailsByFarmer(ctx, input.TargetID, groups[i].ID, periodStart, endExclusive)
			if err != nil {
				return nil, err
			}
			groups[i].Weighings = details
		}

	default:
		return nil, fmt.Errorf("%w: invalid report mode", ErrInvalidInput)
	}

	totalWeighings := int64(0)
	for _, group := range groups {
		totalWeighings += group.WeighingCount
	}

	report := model.WeighingReport{
		Mode:           input.Mode,
		TargetID:       input.TargetID,
		TargetName:     targetName,
		PeriodStart:    periodStart,
		PeriodEnd:      periodEnd,
		TotalWeighings: totalWeighings,
		Groups:         groups,
	}

	content, err := s.excel.Generate(report)
	if err != nil {
		return nil, err
	}

	return &FileResult{
		FileName: s.buildFileName(report),
		Content:  content,
	}, nil
}

func (s *ReportService) buildFileName(report model.WeighingReport) string {
	mode := strings.ToLower(string(report.Mode))
	target := sanitizeFileName(report.TargetName)
	if target == "" {
		target = report.TargetID.String()
	}
	period := fmt.Sprintf("%s-%s", report.PeriodStart.Format("20060102"), report.PeriodEnd.Format("20060102"))
	return fmt.Sprintf("weighings-%s-%s-%s.xlsx", mode, target, period)
}

func mergeGroups(base []model.WeighingGroup, counts []model.WeighingGroup) []model.WeighingGroup {
	result := make([]model.WeighingGroup, 0, len(base)+len(counts))
	index := make(map[uuid.UUID]int, len(base))

	for _, group := range base {
		result = append(result, group)
		index[group.ID] = len(result) - 1
	}

	for _, group := range counts {
		if pos, ok := index[group.ID]; ok {
			result[pos].WeighingCount = group.WeighingCount
			if result[pos].Name == "" {
				result[pos].Name = group.Name
			}
			continue
		}
		result = append(result, group)
		index[group.ID] = len(result) - 1
	}

	return result
}
