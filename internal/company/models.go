package company

// DataQualityCorrupted marks a record for penalty treatment in imputation
// and news scoring.
const DataQualityCorrupted = "CORRUPTED"

// Company is one candidate company parsed from the input table. Numeric
// fields are nil when the source value was missing or unparseable; after
// imputation ESGScore is guaranteed non-nil.
type Company struct {
	Name            string
	RevenueGrowth   *float64
	EBITDAMargin    *float64
	DebtToEquity    *float64
	Volatility      *float64
	ESGScore        *float64
	OperationalRisk string
	DataQuality     string
	IsCorrupted     bool
	DataIssues      []string
	ESGImputed      bool
}

// Names returns company names in load order. Load order is the tie-break
// for the final ranking, so callers must not re-sort this.
func Names(companies []Company) []string {
	names := make([]string, len(companies))
	for i, c := range companies {
		names[i] = c.Name
	}
	return names
}
