package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of console output.
	OutputMode string

	// DatabaseBackend represents the database backend of the record store.
	DatabaseBackend string

	// ArtifactKind identifies one analytical artifact.
	ArtifactKind string

	// RunStatus is the overall result of one pipeline run.
	RunStatus string

	// ExportFormat is the file format of a protocol export.
	ExportFormat string
)

// Date and time layouts used by the store and the deriver.
const (
	DateLayout = "02-01-2006" // DD-MM-YYYY
	TimeLayout = "15:04"      // HH:MM
)

// Analysis constants.
const (
	HoursPerDay        = 24
	MinForecastRecords = 5  // Below this a trend line is meaningless
	DefaultHorizonDays = 14 // Forecast horizon
	DefaultTopCauses   = 10 // Rows in the ranked cause chart
	HistoryTailPoints  = 30 // Historical records drawn next to the forecast
	DurationBins       = 20 // Bins of the duration distribution
	MinImpact          = 1
	MaxImpact          = 5
)

// All output modes supported.
const (
	TextOut OutputMode = "text" // default
	CSVOut  OutputMode = "csv"
	JSONOut OutputMode = "json"
)

// All store backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
)

// All export formats supported.
const (
	ParquetExport ExportFormat = "parquet"
	PDFExport     ExportFormat = "pdf"
	XLSXExport    ExportFormat = "xlsx"
)

// All artifact kinds, in pipeline order.
const (
	TrendArtifact     ArtifactKind = "trend"
	HistogramArtifact ArtifactKind = "histogram"
	CausesArtifact    ArtifactKind = "causes"
	HoursArtifact     ArtifactKind = "hours"
	ForecastArtifact  ArtifactKind = "forecast"
)

// All run statuses.
const (
	StatusNoData  RunStatus = "no_data"
	StatusSuccess RunStatus = "success"
	StatusPartial RunStatus = "partial"
	StatusFailed  RunStatus = "failed"
)

// AllArtifactKinds lists every artifact kind in the order the pipeline produces them.
var AllArtifactKinds = []ArtifactKind{
	TrendArtifact,
	HistogramArtifact,
	CausesArtifact,
	HoursArtifact,
	ForecastArtifact,
}

// ArtifactFileNames maps each artifact kind to its fixed file name.
// The numeric prefix keeps a directory listing in pipeline order.
var ArtifactFileNames = map[ArtifactKind]string{
	TrendArtifact:     "01_trend_duration.png",
	HistogramArtifact: "02_duration_histogram.png",
	CausesArtifact:    "03_top_causes.png",
	HoursArtifact:     "04_hour_of_day.png",
	ForecastArtifact:  "05_forecast.png",
}

// ValidOutputModes is the set of accepted output modes.
var ValidOutputModes = map[OutputMode]any{
	TextOut: nil,
	CSVOut:  nil,
	JSONOut: nil,
}

// ValidDatabaseBackends is the set of accepted store backends.
var ValidDatabaseBackends = map[DatabaseBackend]any{
	SQLiteBackend:     nil,
	MySQLBackend:      nil,
	PostgreSQLBackend: nil,
}

// ValidExportFormats is the set of accepted export formats.
var ValidExportFormats = map[ExportFormat]any{
	ParquetExport: nil,
	PDFExport:     nil,
	XLSXExport:    nil,
}
