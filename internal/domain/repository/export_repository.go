package repository

import (
	"github.com/inheeen/sales-bonus/internal/domain/entity"
)

type ExportRepository interface {
	ExportToCSV(report entity.SalesReport, filename string, outputDir string) (string, error)
	ExportToJSON(report entity.SalesReport, filename string, outputDir string) (string, error)
	ExportToPDF(report entity.SalesReport, filename string, outputDir string) (string, error)
}
