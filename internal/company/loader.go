package company

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// numericColumns maps CSV header names to setters, in the order the
// columns are validated. The order determines the order of DataIssues
// entries for a row.
var numericColumns = []struct {
	header string
	assign func(*Company, *float64)
}{
	{"Revenue_Growth_3Y", func(c *Company, v *float64) { c.RevenueGrowth = v }},
	{"EBITDA_Margin", func(c *Company, v *float64) { c.EBITDAMargin = v }},
	{"Debt_to_Equity", func(c *Company, v *float64) { c.DebtToEquity = v }},
	{"Volatility_1Y", func(c *Company, v *float64) { c.Volatility = v }},
	{"ESG_Score", func(c *Company, v *float64) { c.ESGScore = v }},
}

// missingMarkers are raw cell values treated as absent rather than
// unparseable.
var missingMarkers = map[string]bool{
	"?":    true,
	"":     true,
	"N/A":  true,
	"None": true,
}

// Loader parses the company table into validated records.
type Loader struct {
	log zerolog.Logger
}

// NewLoader creates a company table loader.
func NewLoader(log zerolog.Logger) *Loader {
	return &Loader{log: log}
}

// LoadFile reads and parses a company CSV file. Row order is preserved;
// it is the tie-break order for the final ranking.
func (l *Loader) LoadFile(path string) ([]Company, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening company table: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading company table: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("company table %s has no header row", path)
	}

	header := rows[0]
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	required := []string{"Company"}
	for _, col := range numericColumns {
		required = append(required, col.header)
	}
	required = append(required, "Operational_Risk", "Data_Quality_Flag")
	for _, name := range required {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("company table %s missing column %q", path, name)
		}
	}

	companies := make([]Company, 0, len(rows)-1)
	for _, row := range rows[1:] {
		c := parseRow(row, index)
		if len(c.DataIssues) > 0 {
			l.log.Debug().
				Str("company", c.Name).
				Strs("issues", c.DataIssues).
				Msg("Data issues in company row")
		}
		companies = append(companies, c)
	}

	l.log.Info().
		Int("companies", len(companies)).
		Str("path", path).
		Msg("Company table loaded")
	return companies, nil
}

// parseRow converts one CSV row into a Company, recording a diagnostic
// for every missing or unparseable numeric cell.
func parseRow(row []string, index map[string]int) Company {
	c := Company{Name: strings.TrimSpace(row[index["Company"]])}

	for _, col := range numericColumns {
		raw := strings.TrimSpace(row[index[col.header]])
		if missingMarkers[raw] {
			col.assign(&c, nil)
			c.DataIssues = append(c.DataIssues, "Missing "+col.header)
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			col.assign(&c, nil)
			c.DataIssues = append(c.DataIssues, fmt.Sprintf("Unparseable %s: %s", col.header, raw))
			continue
		}
		col.assign(&c, &v)
	}

	c.OperationalRisk = strings.TrimSpace(row[index["Operational_Risk"]])
	c.DataQuality = strings.TrimSpace(row[index["Data_Quality_Flag"]])
	c.IsCorrupted = c.DataQuality == DataQualityCorrupted
	return c
}
