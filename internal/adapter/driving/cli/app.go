package cli

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/inheeen/sales-bonus/pkg/version"

	"github.com/inheeen/sales-bonus/internal/adapter/driving/httpapi"
	"github.com/inheeen/sales-bonus/internal/application/usecase"
	"github.com/inheeen/sales-bonus/internal/domain/repository"
	"github.com/inheeen/sales-bonus/internal/shared/types"
	"github.com/spf13/cobra"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd       *cobra.Command
	reportUseCase *usecase.ReportUseCase
	configRepo    repository.ConfigRepository
	version       string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:          "sales-bonus",
		Short:        "Seller performance and bonus report",
		Version:      formattedVersion,
		SilenceUsage: true,
		RunE:         app.runCommand,
	}

	rootCmd.SetVersionTemplate(`{{printf "Sales Bonus Report version: %s\n" .Version}}`)

	rootCmd.Flags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.Flags().StringP("data", "i", "", "Dataset file (JSON, YAML or TOML), local path or s3://bucket/key")
	rootCmd.Flags().StringP("report-name", "n", "", "Specify the base name for the report file (without extension)")
	rootCmd.Flags().StringSliceP("report-type", "y", []string{"csv"}, "Specify report types: csv, json, pdf")
	rootCmd.Flags().StringP("dir", "d", "", "Directory to save the report files (default: current directory)")
	rootCmd.Flags().String("revenue-strategy", "simple", "Revenue strategy: simple, gross")
	rootCmd.Flags().String("bonus-strategy", "profit", "Bonus strategy: profit")
	rootCmd.Flags().StringP("profile", "p", "", "AWS profile used for s3:// datasets and report uploads")
	rootCmd.Flags().String("s3-bucket", "", "Upload exported reports to this S3 bucket")
	rootCmd.Flags().String("s3-prefix", "", "Key prefix for uploaded reports")
	rootCmd.Flags().Bool("chart", false, "Display a profit bar chart per seller")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the report over HTTP (configured through SALES_BONUS_* variables)",
		RunE:  app.runServe,
	}
	rootCmd.AddCommand(serveCmd)

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs() (*types.CLIArgs, error) {
	flags := app.rootCmd.Flags()
	configFile, _ := flags.GetString("config-file")
	data, _ := flags.GetString("data")
	reportName, _ := flags.GetString("report-name")
	reportType, _ := flags.GetStringSlice("report-type")
	dir, _ := flags.GetString("dir")
	revenueStrategy, _ := flags.GetString("revenue-strategy")
	bonusStrategy, _ := flags.GetString("bonus-strategy")
	profile, _ := flags.GetString("profile")
	s3Bucket, _ := flags.GetString("s3-bucket")
	s3Prefix, _ := flags.GetString("s3-prefix")
	chart, _ := flags.GetBool("chart")

	// Set default directory to current working directory if not specified
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		dir = cwd
	} else {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		dir = absDir
	}

	args := &types.CLIArgs{
		ConfigFile:      configFile,
		DataPath:        data,
		ReportName:      reportName,
		ReportType:      reportType,
		Dir:             dir,
		RevenueStrategy: revenueStrategy,
		BonusStrategy:   bonusStrategy,
		Profile:         profile,
		S3Bucket:        s3Bucket,
		S3Prefix:        s3Prefix,
		Chart:           chart,
	}

	return args, nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, args []string) error {
	displayWelcomeBanner(app.version)

	go version.CheckLatestVersion(app.version)

	cliArgs, err := app.parseArgs()
	if err != nil {
		return err
	}

	// Valores do arquivo de configuração só preenchem flags não informadas
	if err := app.reportUseCase.ApplyConfigFile(cliArgs, cmd.Flags().Changed); err != nil {
		return err
	}

	return app.reportUseCase.RunReport(cmd.Context(), cliArgs)
}

// runServe inicia o servidor HTTP até receber SIGINT/SIGTERM.
func (app *CLIApp) runServe(cmd *cobra.Command, args []string) error {
	cfg, err := app.configRepo.LoadServerConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := httpapi.NewLogger(cfg.LogLevel)
	return httpapi.Serve(ctx, *cfg, app.reportUseCase, logger)
}

// SetReportUseCase sets the report use case for the CLI app.
func (app *CLIApp) SetReportUseCase(useCase *usecase.ReportUseCase) {
	app.reportUseCase = useCase
}

// SetConfigRepository sets the repository used to read server settings.
func (app *CLIApp) SetConfigRepository(repo repository.ConfigRepository) {
	app.configRepo = repo
}
