package excel

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/tdiabate/farmpay/internal/model"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate builds the weighing report workbook: one summary sheet plus one
// detail sheet per group (transporters for a farmer report, farmers for a
// transporter report).
func (g *Generator) Generate(report model.WeighingReport) ([]byte, error) {
	file := excelize.NewFile()

	summarySheet := "Synthèse"
	file.SetSheetName("Sheet1", summarySheet)
	if err := g.writeSummary(file, summarySheet, report); err != nil {
		return nil, err
	}

	usedNames := map[string]struct{}{summarySheet: {}}
	for _, group := range report.Groups {
		sheetName := buildSheetName(report.Mode, group.Name, group.ID, usedNames)
		usedNames[sheetName] = struct{}{}

		file.NewSheet(sheetName)
		if err := g.writeDetail(file, sheetName, report, group); err != nil {
			return nil, err
		}
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeSummary(file *excelize.File, sheet string, report model.WeighingReport) error {
	modeLabel, groupLabel := reportLabels(report.Mode)
	totalWeight, totalAmount := sumReport(report)

	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Type de rapport")
	set("B1", modeLabel)
	set("A2", modeLabel)
	set("B2", report.TargetName)
	set("A3", "Début de période")
	set("B3", formatDate(report.PeriodStart))
	set("A4", "Fin de période")
	set("B4", formatDate(report.PeriodEnd))
	set("A5", "Nombre de pesées")
	set("B5", report.TotalWeighings)
	set("A6", "Poids net total, kg")
	set("B6", totalWeight.StringFixed(2))
	set("A7", "Montant net total")
	set("B7", totalAmount.StringFixed(2))

	tableRow := 9
	set(fmt.Sprintf("A%d", tableRow), groupLabel)
	set(fmt.Sprintf("B%d", tableRow), "Nombre de pesées")
	set(fmt.Sprintf("C%d", tableRow), "Poids net, kg")
	set(fmt.Sprintf("D%d", tableRow), "Montant net")

	for i, group := range report.Groups {
		groupWeight, groupAmount := sumGroup(group)
		row := tableRow + 1 + i
		set(fmt.Sprintf("A%d", row), group.Name)
		set(fmt.Sprintf("B%d", row), group.WeighingCount)
		set(fmt.Sprintf("C%d", row), groupWeight.StringFixed(2))
		set(fmt.Sprintf("D%d", row), groupAmount.StringFixed(2))
	}

	_ = file.SetColWidth(sheet, "A", "A", 40)
	_ = file.SetColWidth(sheet, "B", "B", 18)
	_ = file.SetColWidth(sheet, "C", "D", 16)
	return nil
}

func (g *Generator) writeDetail(file *excelize.File, sheet string, report model.WeighingReport, group model.WeighingGroup) error {
	modeLabel, groupLabel := reportLabels(report.Mode)
	groupWeight, groupAmount := sumGroup(group)

	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Type de rapport")
	set("B1", modeLabel)
	set("A2", modeLabel)
	set("B2", report.TargetName)
	set("A3", groupLabel)
	set("B3", group.Name)
	set("A4", "Début de période")
	set("B4", formatDate(report.PeriodStart))
	set("A5", "Fin de période")
	set("B5", formatDate(report.PeriodEnd))
	set("A6", "Nombre de pesées")
	set("B6", group.WeighingCount)
	set("A7", "Poids net, kg")
	set("B7", groupWeight.StringFixed(2))
	set("A8", "Montant net")
	set("B8", groupAmount.StringFixed(2))

	tableRow := 10
	headers := []string{
		"Date",
		"Ticket",
		"Immatriculation",
		counterpartLabel(report.Mode),
		"Poids net, kg",
		"Montant net",
	}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, tableRow)
		set(cell, header)
	}

	for i, weighing := range group.Weighings {
		row := tableRow + 1 + i
		set(fmt.Sprintf("A%d", row), formatDateTime(weighing.WeighedAt))
		set(fmt.Sprintf("B%d", row), weighing.TicketNumber)
		set(fmt.Sprintf("C%d", row), formatString(weighing.PlateNumber))
		set(fmt.Sprintf("D%d", row), counterpartName(report.Mode, weighing))
		set(fmt.Sprintf("E%d", row), weighing.NetWeightKg.StringFixed(2))
		set(fmt.Sprintf("F%d", row), weighing.NetAmount.StringFixed(2))
	}

	_ = file.SetColWidth(sheet, "A", "A", 20)
	_ = file.SetColWidth(sheet, "B", "C", 18)
	_ = file.SetColWidth(sheet, "D", "D", 32)
	_ = file.SetColWidth(sheet, "E", "F", 14)
	return nil
}

func reportLabels(mode model.ReportMode) (string, string) {
	switch mode {
	case model.ReportModeFarmer:
		return "Planteur", "Transporteur"
	case model.ReportModeTransporter:
		return "Transporteur", "Planteur"
	default:
		return "Rapport", "Groupe"
	}
}

// counterpartLabel names the per-row column opposite the report target.
func counterpartLabel(mode model.ReportMode) string {
	if mode == model.ReportModeFarmer {
		return "Transporteur"
	}
	return "Planteur"
}

func counterpartName(mode model.ReportMode, weighing model.WeighingDetail) string {
	if mode == model.ReportModeFarmer {
		return formatString(weighing.TransporterName)
	}
	return formatString(weighing.FarmerName)
}

func buildSheetName(mode model.ReportMode, name string, id uuid.UUID, used map[string]struct{}) string {
	_, groupLabel := reportLabels(mode)
	base := fmt.Sprintf("%s - %s", groupLabel, strings.TrimSpace(name))
	if strings.TrimSpace(name) == "" {
		base = fmt.Sprintf("%s - %s", groupLabel, id.String())
	}
	base = truncateRunes(sanitizeSheetName(base), 31)

	nameCandidate := base
	counter := 2
	for {
		if _, exists := used[nameCandidate]; !exists {
			return nameCandidate
		}
		suffix := fmt.Sprintf("-%d", counter)
		nameCandidate = truncateRunes(base, 31-len(suffix)) + suffix
		counter++
	}
}

// truncateRunes cuts on rune boundaries; accented names must not end up with
// a split UTF-8 sequence in the sheet name.
func truncateRunes(value string, max int) string {
	runes := []rune(value)
	if len(runes) <= max {
		return value
	}
	return string(runes[:max])
}

func sanitizeSheetName(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return "Feuille"
	}

	replacer := strings.NewReplacer(
		"[", "-",
		"]", "-",
		":", "-",
		"*", "-",
		"?", "-",
		"/", "-",
		"\\", "-",
	)
	value = replacer.Replace(value)
	value = strings.TrimSpace(value)
	if value == "" {
		return "Feuille"
	}
	return value
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func formatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04:05")
}

func formatString(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func sumGroup(group model.WeighingGroup) (decimal.Decimal, decimal.Decimal) {
	weight := decimal.Zero
	amount := decimal.Zero
	for _, weighing := range group.Weighings {
		weight = weight.Add(weighing.NetWeightKg)
		amount = amount.Add(weighing.NetAmount)
	}
	return weight, amount
}

func sumReport(report model.WeighingReport) (decimal.Decimal, decimal.Decimal) {
	weight := decimal.Zero
	amount := decimal.Zero
	for _, group := range report.Groups {
		groupWeight, groupAmount := sumGroup(group)
		weight = weight.Add(groupWeight)
		amount = amount.Add(groupAmount)
	}
	return weight, amount
}
