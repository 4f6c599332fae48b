package main

import (
	"fmt"
	"os"

	"github.com/inheeen/sales-bonus/internal/adapter/driven/aws"
	"github.com/inheeen/sales-bonus/internal/adapter/driven/config"
	"github.com/inheeen/sales-bonus/internal/adapter/driven/dataset"
	"github.com/inheeen/sales-bonus/internal/adapter/driven/export"
	"github.com/inheeen/sales-bonus/internal/adapter/driving/cli"
	"github.com/inheeen/sales-bonus/internal/application/usecase"
	"github.com/inheeen/sales-bonus/pkg/console"
	"github.com/inheeen/sales-bonus/pkg/version"
)

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	// Inicializa os repositórios
	storageRepo := aws.NewS3Repository()
	datasetRepo := dataset.NewDatasetRepository(storageRepo)
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	consoleImpl := console.NewConsole()

	// Inicializa o caso de uso
	reportUseCase := usecase.NewReportUseCase(
		datasetRepo,
		exportRepo,
		configRepo,
		storageRepo,
		consoleImpl,
	)

	app.SetReportUseCase(reportUseCase)
	app.SetConfigRepository(configRepo)

	// Executa o aplicativo
	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
