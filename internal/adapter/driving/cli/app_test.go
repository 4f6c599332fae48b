package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgsDefaults(t *testing.T) {
	app := NewCLIApp("1.0.0")
	require.NoError(t, app.rootCmd.ParseFlags([]string{"--data", "data.json"}))

	args, err := app.parseArgs()
	require.NoError(t, err)

	assert.Equal(t, "data.json", args.DataPath)
	assert.Equal(t, []string{"csv"}, args.ReportType)
	assert.Equal(t, "simple", args.RevenueStrategy)
	assert.Equal(t, "profit", args.BonusStrategy)
	assert.NotEmpty(t, args.Dir)
	assert.False(t, args.Chart)
}

func TestParseArgsFlags(t *testing.T) {
	app := NewCLIApp("1.0.0")
	require.NoError(t, app.rootCmd.ParseFlags([]string{
		"-i", "s3://sales/data.yaml",
		"-n", "bonus",
		"-y", "csv,json,pdf",
		"-d", "out",
		"-p", "analytics",
		"--revenue-strategy", "gross",
		"--s3-bucket", "reports",
		"--s3-prefix", "2024",
		"--chart",
	}))

	args, err := app.parseArgs()
	require.NoError(t, err)

	assert.Equal(t, "s3://sales/data.yaml", args.DataPath)
	assert.Equal(t, "bonus", args.ReportName)
	assert.Equal(t, []string{"csv", "json", "pdf"}, args.ReportType)
	assert.True(t, len(args.Dir) > len("out"))
	assert.Equal(t, "analytics", args.Profile)
	assert.Equal(t, "gross", args.RevenueStrategy)
	assert.Equal(t, "reports", args.S3Bucket)
	assert.Equal(t, "2024", args.S3Prefix)
	assert.True(t, args.Chart)
	assert.True(t, app.rootCmd.Flags().Changed("revenue-strategy"))
	assert.False(t, app.rootCmd.Flags().Changed("bonus-strategy"))
}

func TestServeCommandRegistered(t *testing.T) {
	app := NewCLIApp("1.0.0")
	cmd, _, err := app.rootCmd.Find([]string{"serve"})
	require.NoError(t, err)
	assert.Equal(t, "serve", cmd.Name())
}
