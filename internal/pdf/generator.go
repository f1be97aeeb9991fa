package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/tdiabate/farmpay/internal/model"
)

const fontName = "Helvetica"

type Generator struct {
	cooperativeName string
}

func NewGenerator(cooperativeName string) *Generator {
	return &Generator{cooperativeName: cooperativeName}
}

// Generate renders the printable payment bulletin handed to the farmer on
// settlement day.
func (g *Generator) Generate(doc model.BulletinDocument) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont(fontName, "B", 14)
	pdf.CellFormat(0, 10, tr(g.cooperativeName), "", 1, "C", false, 0, "")

	pdf.SetFont(fontName, "B", 12)
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("Bulletin de paiement — %s", doc.Bulletin.Period)), "", 1, "C", false, 0, "")
	pdf.SetFont(fontName, "", 10)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Établi le %s — statut: %s", formatDate(doc.Bulletin.GeneratedDate), doc.Bulletin.Status)), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	addFarmerBlock(pdf, tr, doc.Farmer)
	pdf.Ln(4)

	pdf.SetFont(fontName, "B", 12)
	pdf.CellFormat(0, 8, tr("Pesées réglées"), "", 1, "L", false, 0, "")

	headers := []string{"Date", "Ticket", "Poids net (kg)", "Prix/kg", "Montant net"}
	colWidths := []float64{30, 35, 40, 35, 40}
	drawTableRow(pdf, tr, headers, colWidths, true)

	for _, weighing := range doc.Weighings {
		row := []string{
			formatDate(weighing.WeighedAt),
			weighing.TicketNumber,
			formatAmount(weighing.NetWeightKg),
			formatAmount(weighing.PricePerKg),
			formatAmount(weighing.NetAmount),
		}
		drawTableRow(pdf, tr, row, colWidths, false)
	}

	pdf.Ln(2)
	pdf.SetFont(fontName, "", 11)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Montant brut: %s", formatAmount(doc.Bulletin.GrossAmount))), "", 1, "R", false, 0, "")
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Crédits retenus: %s", formatAmount(doc.Bulletin.CreditsDeducted))), "", 1, "R", false, 0, "")
	pdf.SetFont(fontName, "B", 11)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Net à payer: %s", formatAmount(doc.Bulletin.NetAmount))), "", 1, "R", false, 0, "")

	pdf.Ln(2)
	pdf.SetFont(fontName, "", 10)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Solde crédit avant règlement: %s, après règlement: %s",
		formatAmount(doc.OutstandingBefore),
		formatAmount(doc.OutstandingAfter),
	)), "", 1, "L", false, 0, "")

	pdf.Ln(6)
	pdf.SetFont(fontName, "B", 12)
	pdf.CellFormat(0, 8, tr("Signatures"), "", 1, "L", false, 0, "")
	signatureBlock(pdf, tr, "Le planteur", doc.Farmer.FullName())
	signatureBlock(pdf, tr, "La coopérative", "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func addFarmerBlock(pdf *gofpdf.Fpdf, tr func(string) string, farmer model.Farmer) {
	pdf.SetFont(fontName, "B", 11)
	pdf.CellFormat(0, 6, tr("Planteur"), "", 1, "L", false, 0, "")
	pdf.SetFont(fontName, "", 10)
	lines := []string{
		farmer.FullName(),
		fmt.Sprintf("Village: %s", safeValue(farmer.Village)),
		fmt.Sprintf("Téléphone: %s", safeValue(farmer.Phone)),
	}
	for _, line := range lines {
		pdf.MultiCell(0, 5, tr(line), "", "L", false)
	}
}

func drawTableRow(pdf *gofpdf.Fpdf, tr func(string) string, cols []string, widths []float64, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont(fontName, style, 10)
	for i, col := range cols {
		align := "L"
		if i > 1 {
			align = "R"
		}
		pdf.CellFormat(widths[i], 8, tr(col), "1", 0, align, false, 0, "")
	}
	pdf.Ln(-1)
}

func signatureBlock(pdf *gofpdf.Fpdf, tr func(string) string, label, name string) {
	pdf.SetFont(fontName, "", 11)
	pdf.CellFormat(0, 10, tr(fmt.Sprintf("%s: ______________________ /%s/", label, safeValue(name))), "", 1, "L", false, 0, "")
}

func safeValue(value string) string {
	if strings.TrimSpace(value) == "" {
		return "—"
	}
	return value
}

func formatAmount(value decimal.Decimal) string {
	return value.StringFixed(2)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "—"
	}
	return t.Format("02.01.2006")
}
