package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inheeen/sales-bonus/internal/application/analyzer"
	"github.com/inheeen/sales-bonus/internal/domain/entity"
	"github.com/inheeen/sales-bonus/internal/shared/types"
)

// ============================================================================
// FAKES
// ============================================================================

type fakeDatasetRepo struct {
	ds          *entity.Dataset
	err         error
	gotProfile  string
	gotLocation string
}

func (f *fakeDatasetRepo) LoadDataset(ctx context.Context, profile, location string) (*entity.Dataset, error) {
	f.gotProfile, f.gotLocation = profile, location
	return f.ds, f.err
}

func (f *fakeDatasetRepo) DecodeDataset(data []byte, format string) (*entity.Dataset, error) {
	return f.ds, f.err
}

type fakeExportRepo struct {
	exported []string
	reports  []entity.SalesReport
	failPDF  bool
}

func (f *fakeExportRepo) record(kind string, report entity.SalesReport, name, dir string) (string, error) {
	f.exported = append(f.exported, kind)
	f.reports = append(f.reports, report)
	return fmt.Sprintf("%s/%s.%s", dir, name, kind), nil
}

func (f *fakeExportRepo) ExportToCSV(report entity.SalesReport, name, dir string) (string, error) {
	return f.record("csv", report, name, dir)
}

func (f *fakeExportRepo) ExportToJSON(report entity.SalesReport, name, dir string) (string, error) {
	return f.record("json", report, name, dir)
}

func (f *fakeExportRepo) ExportToPDF(report entity.SalesReport, name, dir string) (string, error) {
	if f.failPDF {
		return "", errors.New("disk full")
	}
	return f.record("pdf", report, name, dir)
}

type fakeConfigRepo struct {
	cfg *types.Config
	err error
}

func (f *fakeConfigRepo) LoadConfigFile(string) (*types.Config, error) { return f.cfg, f.err }
func (f *fakeConfigRepo) LoadServerConfig() (*types.ServerConfig, error) {
	return &types.ServerConfig{}, nil
}

type fakeStorage struct {
	uploads []string
}

func (f *fakeStorage) GetObject(ctx context.Context, profile, bucket, key string) ([]byte, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeStorage) UploadFile(ctx context.Context, profile, bucket, key, filePath string) (string, error) {
	uri := fmt.Sprintf("s3://%s/%s", bucket, key)
	f.uploads = append(f.uploads, profile+"|"+uri+"|"+filePath)
	return uri, nil
}

type fakeTable struct {
	columns []string
	rows    [][]interface{}
}

func (t *fakeTable) AddColumn(name string, _ ...interface{}) { t.columns = append(t.columns, name) }
func (t *fakeTable) AddRow(cells ...interface{})             { t.rows = append(t.rows, cells) }
func (t *fakeTable) Render() string                          { return fmt.Sprintf("table(%d rows)", len(t.rows)) }

type fakeStatus struct{}

func (fakeStatus) Update(string) {}
func (fakeStatus) Stop()         {}

type fakeConsole struct {
	infos    []string
	warnings []string
	errors   []string
	success  []string
	printed  []string
	table    *fakeTable
	bars     []types.SellerValue
}

func (c *fakeConsole) Print(a ...interface{})                 { c.printed = append(c.printed, fmt.Sprint(a...)) }
func (c *fakeConsole) Printf(format string, a ...interface{}) { c.Print(fmt.Sprintf(format, a...)) }
func (c *fakeConsole) Println(a ...interface{})               { c.Print(a...) }
func (c *fakeConsole) LogInfo(format string, a ...interface{}) {
	c.infos = append(c.infos, fmt.Sprintf(format, a...))
}
func (c *fakeConsole) LogWarning(format string, a ...interface{}) {
	c.warnings = append(c.warnings, fmt.Sprintf(format, a...))
}
func (c *fakeConsole) LogError(format string, a ...interface{}) {
	c.errors = append(c.errors, fmt.Sprintf(format, a...))
}
func (c *fakeConsole) LogSuccess(format string, a ...interface{}) {
	c.success = append(c.success, fmt.Sprintf(format, a...))
}
func (c *fakeConsole) Status(string) types.StatusHandle { return fakeStatus{} }
func (c *fakeConsole) CreateTable() types.TableInterface {
	c.table = &fakeTable{}
	return c.table
}
func (c *fakeConsole) DisplayProfitBars(values []types.SellerValue) { c.bars = values }

func sampleDataset() *entity.Dataset {
	return &entity.Dataset{
		Sellers: []entity.Seller{
			{ID: "seller_1", FirstName: "Alexey", LastName: "Petrov"},
			{ID: "seller_2", FirstName: "Ivan", LastName: "Ivanov"},
		},
		Products: []entity.Product{{SKU: "SKU_001", PurchasePrice: 50}},
		PurchaseRecords: []entity.PurchaseRecord{
			{SellerID: "seller_1", Items: []entity.LineItem{{SKU: "SKU_001", SalePrice: 100, Quantity: 2, Discount: 10}}},
			{SellerID: "seller_2", Items: []entity.LineItem{{SKU: "SKU_001", SalePrice: 60, Quantity: 1}, {SKU: "SKU_404", Quantity: 1}}},
			{SellerID: "seller_9", Items: []entity.LineItem{{SKU: "SKU_001", SalePrice: 60, Quantity: 1}}},
		},
	}
}

type fixture struct {
	uc      *ReportUseCase
	data    *fakeDatasetRepo
	export  *fakeExportRepo
	config  *fakeConfigRepo
	storage *fakeStorage
	console *fakeConsole
}

func newFixture() *fixture {
	f := &fixture{
		data:    &fakeDatasetRepo{ds: sampleDataset()},
		export:  &fakeExportRepo{},
		config:  &fakeConfigRepo{cfg: &types.Config{}},
		storage: &fakeStorage{},
		console: &fakeConsole{},
	}
	f.uc = NewReportUseCase(f.data, f.export, f.config, f.storage, f.console)
	f.uc.now = func() time.Time { return time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC) }
	f.uc.newRunID = func() string { return "run-42" }
	return f
}

// ============================================================================
// TESTS
// ============================================================================

func TestRunReportDisplaysAndExports(t *testing.T) {
	f := newFixture()
	args := &types.CLIArgs{
		DataPath:   "data.json",
		Profile:    "analytics",
		ReportName: "bonus",
		ReportType: []string{"csv", "JSON", "xml"},
		Dir:        "/tmp/out",
		S3Bucket:   "reports",
		S3Prefix:   "2024/03",
		Chart:      true,
	}

	require.NoError(t, f.uc.RunReport(context.Background(), args))

	assert.Equal(t, "analytics", f.data.gotProfile)
	assert.Equal(t, "data.json", f.data.gotLocation)

	require.NotNil(t, f.console.table)
	assert.Len(t, f.console.table.rows, 2)
	assert.Equal(t, 1, f.console.table.rows[0][0])
	assert.Equal(t, []string{"table(2 rows)"}, f.console.printed)

	assert.Equal(t, []types.SellerValue{{Name: "Alexey Petrov", Value: 80}, {Name: "Ivan Ivanov", Value: 10}}, f.console.bars)

	assert.Equal(t, []string{"csv", "json"}, f.export.exported)
	report := f.export.reports[0]
	assert.Equal(t, "run-42", report.RunID)
	assert.Equal(t, "simple", report.RevenueStrategy)
	assert.Equal(t, "profit", report.BonusStrategy)
	assert.Equal(t, "seller_1", report.Entries[0].SellerID)

	assert.Equal(t, []string{
		"analytics|s3://reports/2024/03/bonus.csv|/tmp/out/bonus.csv",
		"analytics|s3://reports/2024/03/bonus.json|/tmp/out/bonus.json",
	}, f.storage.uploads)

	assert.Contains(t, f.console.warnings, "Unknown report type 'xml', skipping")
	assert.Contains(t, f.console.warnings, "Seller 'seller_9' not found, purchase record skipped")
	assert.Contains(t, f.console.warnings, "Product 'SKU_404' not found (seller 'seller_2'), line item skipped")
	assert.Contains(t, f.console.infos, "Dataset loaded: 2 sellers, 1 products, 3 purchase records")
}

func TestRunReportWithoutExport(t *testing.T) {
	f := newFixture()
	require.NoError(t, f.uc.RunReport(context.Background(), &types.CLIArgs{DataPath: "data.json"}))
	assert.Empty(t, f.export.exported)
	assert.Empty(t, f.storage.uploads)
	assert.Nil(t, f.console.bars)
}

func TestRunReportExportFailureIsLogged(t *testing.T) {
	f := newFixture()
	f.export.failPDF = true
	err := f.uc.RunReport(context.Background(), &types.CLIArgs{
		DataPath: "data.json", ReportName: "bonus", ReportType: []string{"pdf", "csv"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"csv"}, f.export.exported)
	require.Len(t, f.console.errors, 1)
	assert.Contains(t, f.console.errors[0], "disk full")
}

func TestRunReportErrors(t *testing.T) {
	t.Run("no data path", func(t *testing.T) {
		f := newFixture()
		err := f.uc.RunReport(context.Background(), &types.CLIArgs{})
		assert.ErrorIs(t, err, types.ErrMissingData)
	})

	t.Run("load failure", func(t *testing.T) {
		f := newFixture()
		f.data.err = errors.New("boom")
		err := f.uc.RunReport(context.Background(), &types.CLIArgs{DataPath: "x.json"})
		assert.EqualError(t, err, "boom")
	})

	t.Run("empty purchase records", func(t *testing.T) {
		f := newFixture()
		f.data.ds.PurchaseRecords = nil
		err := f.uc.RunReport(context.Background(), &types.CLIArgs{DataPath: "x.json"})
		assert.ErrorIs(t, err, types.ErrMissingData)
		assert.Nil(t, f.console.table)
	})

	t.Run("unknown strategy", func(t *testing.T) {
		f := newFixture()
		err := f.uc.RunReport(context.Background(), &types.CLIArgs{DataPath: "x.json", BonusStrategy: "flat"})
		assert.ErrorIs(t, err, types.ErrInvalidConfiguration)
	})
}

func TestBuildReportCollectsDiagnostics(t *testing.T) {
	f := newFixture()
	collector := analyzer.NewCollector()

	report, err := f.uc.BuildReport(sampleDataset(), "GROSS", "", collector)
	require.NoError(t, err)

	assert.Equal(t, "gross", report.RevenueStrategy)
	assert.Equal(t, "profit", report.BonusStrategy)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), report.GeneratedAt)
	// gross ignores the 10% discount: 200 - 100
	assert.Equal(t, 100.0, report.Entries[0].Profit)
	assert.Len(t, collector.Warnings(), 2)
}

func TestApplyConfigFile(t *testing.T) {
	f := newFixture()
	f.config.cfg = &types.Config{
		Data:            "from-config.json",
		ReportName:      "cfg-report",
		ReportType:      []string{"pdf"},
		RevenueStrategy: "gross",
		S3Bucket:        "bucket",
		Chart:           true,
	}

	args := &types.CLIArgs{
		ConfigFile: "cfg.toml",
		ReportName: "cli-report",
		ReportType: []string{"csv"},
	}
	explicit := map[string]bool{"report-name": true}

	require.NoError(t, f.uc.ApplyConfigFile(args, func(flag string) bool { return explicit[flag] }))

	assert.Equal(t, "from-config.json", args.DataPath)
	assert.Equal(t, "cli-report", args.ReportName)
	assert.Equal(t, []string{"pdf"}, args.ReportType)
	assert.Equal(t, "gross", args.RevenueStrategy)
	assert.Equal(t, "bucket", args.S3Bucket)
	assert.True(t, args.Chart)
}

func TestApplyConfigFileErrors(t *testing.T) {
	f := newFixture()
	f.config.err = errors.New("bad file")

	assert.NoError(t, f.uc.ApplyConfigFile(&types.CLIArgs{}, func(string) bool { return false }))
	assert.EqualError(t, f.uc.ApplyConfigFile(&types.CLIArgs{ConfigFile: "x.toml"}, func(string) bool { return false }), "bad file")
}
