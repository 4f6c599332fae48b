package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile      string
	DataPath        string
	ReportName      string
	ReportType      []string
	Dir             string
	RevenueStrategy string
	BonusStrategy   string
	Profile         string
	S3Bucket        string
	S3Prefix        string
	Chart           bool
}
