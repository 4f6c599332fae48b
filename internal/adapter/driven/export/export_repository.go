package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/inheeen/sales-bonus/internal/domain/entity"
	"github.com/inheeen/sales-bonus/internal/domain/repository"
	"github.com/jung-kurt/gofpdf"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct {
	now func() time.Time
}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{now: time.Now}
}

// --- Funções de Exportação do Relatório de Vendas ---

func (r *ExportRepositoryImpl) ExportToCSV(report entity.SalesReport, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	headers := []string{
		"Rank", "Seller ID", "Name", "Revenue", "Profit", "Sales Count", "Bonus", "Top Products",
	}
	if err := writer.Write(headers); err != nil {
		return "", fmt.Errorf("error writing CSV header: %w", err)
	}

	for i, row := range report.Entries {
		record := []string{
			strconv.Itoa(i + 1),
			row.SellerID,
			row.Name,
			formatAmount(row.Revenue),
			formatAmount(row.Profit),
			strconv.Itoa(row.SalesCount),
			formatAmount(row.Bonus),
			formatTopProducts(row.TopProducts, "; "),
		}
		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("error writing CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("error flushing CSV file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportToJSON(report entity.SalesReport, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportToPDF(report entity.SalesReport, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{40, 40, 40}
	headerTextColor := [3]int{255, 255, 255}
	sectionTitleColor := [3]int{0, 0, 0}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	footer := func(page int) {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		footerText := fmt.Sprintf("Generated by Sales Bonus Report | %s | run %s", report.GeneratedAt.Format("2006-01-02"), report.RunID)
		pdf.CellFormat(0, 10, tr(footerText), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 10, tr(fmt.Sprintf("Page %d", page)), "", 0, "R", false, 0, "")
	}

	// Página de resumo com o ranking
	pdf.AddPage()
	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, tr("  Seller Performance Report"), "", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	strategies := fmt.Sprintf("  Revenue strategy: %s | Bonus strategy: %s", report.RevenueStrategy, report.BonusStrategy)
	pdf.CellFormat(0, 8, tr(strategies), "", 1, "L", true, 0, "")
	pdf.Ln(8)

	widths := []float64{12, 28, 50, 28, 28, 16, 28}
	headers := []string{"#", "Seller ID", "Name", "Revenue", "Profit", "Sales", "Bonus"}
	pdf.SetFont("Arial", "B", 9)
	pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, tr(h), "B", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for i, row := range report.Entries {
		name := truncateName(row.Name, 30)
		cells := []string{
			strconv.Itoa(i + 1),
			row.SellerID,
			name,
			formatAmount(row.Revenue),
			formatAmount(row.Profit),
			strconv.Itoa(row.SalesCount),
			formatAmount(row.Bonus),
		}
		for j, c := range cells {
			pdf.CellFormat(widths[j], 6, tr(c), "", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
	footer(1)

	// Uma página por vendedor com os produtos mais vendidos
	for i, row := range report.Entries {
		pdf.AddPage()

		pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
		pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, 12, tr(fmt.Sprintf("  #%d %s", i+1, row.Name)), "", 1, "L", true, 0, "")

		pdf.SetFont("Arial", "", 10)
		pdf.SetFillColor(240, 240, 240)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		pdf.CellFormat(0, 8, tr(fmt.Sprintf("  Seller ID: %s", row.SellerID)), "", 1, "L", true, 0, "")
		pdf.Ln(10)

		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, "Summary")
		pdf.Ln(7)
		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)

		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		summary := fmt.Sprintf("Revenue: %s\nProfit: %s\nSales: %d\nBonus: %s",
			formatAmount(row.Revenue), formatAmount(row.Profit), row.SalesCount, formatAmount(row.Bonus))
		pdf.MultiCell(190, 5, tr(summary), "", "L", false)
		pdf.Ln(8)

		if len(row.TopProducts) > 0 {
			pdf.SetFont("Arial", "B", 12)
			pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
			pdf.Cell(0, 8, "Top Products")
			pdf.Ln(7)
			pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
			pdf.Ln(4)

			pdf.SetFont("Arial", "", 10)
			pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
			pdf.MultiCell(190, 5, tr(formatTopProducts(row.TopProducts, "\n")), "", "L", false)
		}

		footer(i + 2)
	}

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- Funções Auxiliares ---

// generateFilename cria um nome de arquivo único com timestamp e garante que o diretório exista.
func (r *ExportRepositoryImpl) generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	now := time.Now
	if r.now != nil {
		now = r.now
	}
	timestamp := now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}

// truncateName corta s em no máximo limit runas, terminando com "...".
func truncateName(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-3]) + "..."
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatTopProducts(top []entity.TopProduct, sep string) string {
	parts := make([]string, 0, len(top))
	for _, p := range top {
		parts = append(parts, fmt.Sprintf("%s x%d", p.SKU, p.Quantity))
	}
	return strings.Join(parts, sep)
}
