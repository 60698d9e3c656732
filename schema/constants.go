package schema

// Custom string types for type safety.
type (
	// MetricKey represents one of the numeric leaderboard metrics.
	MetricKey string

	// OutputMode represents the format of the output.
	OutputMode string
)

// Numeric leaderboard metrics, in report order.
const (
	CommitsMetric  MetricKey = "commits"
	FilesMetric    MetricKey = "files"
	MaxFilesMetric MetricKey = "max_files"
	AddsMetric     MetricKey = "adds"
	MaxAddsMetric  MetricKey = "max_adds"
	DelsMetric     MetricKey = "dels"
	MaxDelsMetric  MetricKey = "max_dels"
)

// All output modes supported.
const (
	TextOut OutputMode = "text" // default
	CSVOut  OutputMode = "csv"
	JSONOut OutputMode = "json"
)

// AllMetricKeys lists the numeric metrics in the order their sections are printed.
var AllMetricKeys = []MetricKey{
	CommitsMetric,
	FilesMetric,
	MaxFilesMetric,
	AddsMetric,
	MaxAddsMetric,
	DelsMetric,
	MaxDelsMetric,
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut: {},
	CSVOut:  {},
	JSONOut: {},
}

// metricTitles maps each metric to its report section heading.
var metricTitles = map[MetricKey]string{
	CommitsMetric:  "NUMBER OF COMMITS",
	FilesMetric:    "CHANGED FILES",
	MaxFilesMetric: "MAX CHANGED FILES PER COMMIT",
	AddsMetric:     "LINES OF ADDITIONS",
	MaxAddsMetric:  "MAX LINES OF ADDITIONS PER COMMIT",
	DelsMetric:     "LINES OF DELETIONS",
	MaxDelsMetric:  "MAX LINES OF DELETIONS PER COMMIT",
}

// Title returns the report section heading for a metric.
func (k MetricKey) Title() string {
	return metricTitles[k]
}
