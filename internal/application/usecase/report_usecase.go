package usecase

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/inheeen/sales-bonus/internal/application/analyzer"
	"github.com/inheeen/sales-bonus/internal/domain/entity"
	"github.com/inheeen/sales-bonus/internal/domain/repository"
	"github.com/inheeen/sales-bonus/internal/domain/strategy"
	"github.com/inheeen/sales-bonus/internal/shared/types"
	"github.com/inheeen/sales-bonus/pkg/console"
)

// ReportUseCase handles the seller report functionality.
type ReportUseCase struct {
	datasetRepo repository.DatasetRepository
	exportRepo  repository.ExportRepository
	configRepo  repository.ConfigRepository
	storageRepo repository.StorageRepository
	console     types.ConsoleInterface
	now         func() time.Time
	newRunID    func() string
}

// NewReportUseCase creates a new report use case.
func NewReportUseCase(
	datasetRepo repository.DatasetRepository,
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	storageRepo repository.StorageRepository,
	console types.ConsoleInterface,
) *ReportUseCase {
	return &ReportUseCase{
		datasetRepo: datasetRepo,
		exportRepo:  exportRepo,
		configRepo:  configRepo,
		storageRepo: storageRepo,
		console:     console,
		now:         time.Now,
		newRunID:    func() string { return uuid.NewString() },
	}
}

// ApplyConfigFile carrega o arquivo de configuração e preenche os argumentos
// que não foram informados na linha de comando. isSet reports whether a flag
// was given explicitly.
func (uc *ReportUseCase) ApplyConfigFile(args *types.CLIArgs, isSet func(flag string) bool) error {
	if args.ConfigFile == "" {
		return nil
	}

	cfg, err := uc.configRepo.LoadConfigFile(args.ConfigFile)
	if err != nil {
		return err
	}

	setString := func(flag string, dst *string, v string) {
		if v != "" && !isSet(flag) {
			*dst = v
		}
	}

	setString("data", &args.DataPath, cfg.Data)
	setString("report-name", &args.ReportName, cfg.ReportName)
	setString("revenue-strategy", &args.RevenueStrategy, cfg.RevenueStrategy)
	setString("bonus-strategy", &args.BonusStrategy, cfg.BonusStrategy)
	setString("profile", &args.Profile, cfg.Profile)
	setString("s3-bucket", &args.S3Bucket, cfg.S3Bucket)
	setString("s3-prefix", &args.S3Prefix, cfg.S3Prefix)

	if cfg.Dir != "" && !isSet("dir") {
		absDir, err := filepath.Abs(cfg.Dir)
		if err != nil {
			return err
		}
		args.Dir = absDir
	}
	if len(cfg.ReportType) > 0 && !isSet("report-type") {
		args.ReportType = cfg.ReportType
	}
	if cfg.Chart && !isSet("chart") {
		args.Chart = true
	}

	return nil
}

// BuildReport analyzes ds with the named strategies and wraps the result with
// run metadata.
func (uc *ReportUseCase) BuildReport(ds *entity.Dataset, revenueName, bonusName string, diag analyzer.Diagnostics) (entity.SalesReport, error) {
	revenue, err := strategy.Revenue(revenueName)
	if err != nil {
		return entity.SalesReport{}, err
	}
	bonus, err := strategy.Bonus(bonusName)
	if err != nil {
		return entity.SalesReport{}, err
	}

	a, err := analyzer.NewSalesAnalyzer(revenue, bonus, analyzer.WithDiagnostics(diag))
	if err != nil {
		return entity.SalesReport{}, err
	}

	entries, err := a.Analyze(ds)
	if err != nil {
		return entity.SalesReport{}, err
	}

	return entity.SalesReport{
		RunID:           uc.newRunID(),
		GeneratedAt:     uc.now().UTC(),
		RevenueStrategy: strategyName(revenueName, strategy.RevenueSimple),
		BonusStrategy:   strategyName(bonusName, strategy.BonusProfit),
		Entries:         entries,
	}, nil
}

// RunReport executa a funcionalidade principal do relatório.
func (uc *ReportUseCase) RunReport(ctx context.Context, args *types.CLIArgs) error {
	if args.DataPath == "" {
		return fmt.Errorf("%w: use --data or set 'data' in the config file", types.ErrMissingData)
	}

	status := uc.console.Status(fmt.Sprintf("Loading dataset from %s...", args.DataPath))
	ds, err := uc.datasetRepo.LoadDataset(ctx, args.Profile, args.DataPath)
	status.Stop()
	if err != nil {
		return err
	}

	report, err := uc.BuildReport(ds, args.RevenueStrategy, args.BonusStrategy, consoleDiagnostics{console: uc.console})
	if err != nil {
		return err
	}

	table := uc.createReportTable()
	for i, entry := range report.Entries {
		uc.addEntryToTable(table, i, entry)
	}
	uc.console.Print(table.Render())

	if args.Chart {
		values := make([]types.SellerValue, 0, len(report.Entries))
		for _, entry := range report.Entries {
			values = append(values, types.SellerValue{Name: entry.Name, Value: entry.Profit})
		}
		uc.console.DisplayProfitBars(values)
	}

	if args.ReportName == "" || len(args.ReportType) == 0 {
		return nil
	}

	for _, reportType := range args.ReportType {
		var (
			exported string
			err      error
		)

		switch strings.ToLower(strings.TrimSpace(reportType)) {
		case "csv":
			exported, err = uc.exportRepo.ExportToCSV(report, args.ReportName, args.Dir)
		case "json":
			exported, err = uc.exportRepo.ExportToJSON(report, args.ReportName, args.Dir)
		case "pdf":
			exported, err = uc.exportRepo.ExportToPDF(report, args.ReportName, args.Dir)
		default:
			uc.console.LogWarning("Unknown report type '%s', skipping", reportType)
			continue
		}

		if err != nil {
			uc.console.LogError("Failed to export to %s: %s", strings.ToUpper(reportType), err)
			continue
		}
		uc.console.LogSuccess("Successfully exported to %s: %s", strings.ToUpper(reportType), exported)

		if args.S3Bucket != "" {
			uc.publish(ctx, args, exported)
		}
	}

	return nil
}

func (uc *ReportUseCase) publish(ctx context.Context, args *types.CLIArgs, filePath string) {
	if uc.storageRepo == nil {
		uc.console.LogError("No object storage configured, %s was not uploaded", filePath)
		return
	}

	key := path.Join(args.S3Prefix, filepath.Base(filePath))
	uri, err := uc.storageRepo.UploadFile(ctx, args.Profile, args.S3Bucket, key, filePath)
	if err != nil {
		uc.console.LogError("Failed to upload %s: %s", filePath, err)
		return
	}
	uc.console.LogSuccess("Uploaded report to %s", uri)
}

func (uc *ReportUseCase) createReportTable() types.TableInterface {
	table := uc.console.CreateTable()
	table.AddColumn("Rank")
	table.AddColumn("Seller")
	table.AddColumn("Revenue")
	table.AddColumn("Profit")
	table.AddColumn("Sales")
	table.AddColumn("Bonus")
	table.AddColumn("Top Products")
	return table
}

func (uc *ReportUseCase) addEntryToTable(table types.TableInterface, rank int, entry entity.ReportEntry) {
	profit := console.BrightGreen(fmt.Sprintf("%.2f", entry.Profit))
	if entry.Profit < 0 {
		profit = console.BrightRed(fmt.Sprintf("%.2f", entry.Profit))
	}

	top := make([]string, 0, len(entry.TopProducts))
	for _, p := range entry.TopProducts {
		top = append(top, fmt.Sprintf("%s: %d", p.SKU, p.Quantity))
	}

	table.AddRow(
		rank+1,
		console.BrightCyan(entry.Name)+"\n"+entry.SellerID,
		fmt.Sprintf("%.2f", entry.Revenue),
		profit,
		entry.SalesCount,
		console.BrightYellow(fmt.Sprintf("%.2f", entry.Bonus)),
		strings.Join(top, "\n"),
	)
}

func strategyName(name, fallback string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return fallback
	}
	return name
}
