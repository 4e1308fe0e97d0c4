package pipeline

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arryl/dealrank/internal/config"
)

const companiesCSV = `Company,Revenue_Growth_3Y,EBITDA_Margin,Debt_to_Equity,Volatility_1Y,ESG_Score,Operational_Risk,Data_Quality_Flag
Alpha Textiles,12.0,20.0,1.0,18.0,70,Low,OK
Beta Mining,30.0,10.0,2.5,40.0,?,Medium,CORRUPTED
Gamma Foods,6.0,15.0,1.5,22.0,64,High,OK
`

const newsText = `Alpha Textiles reported strong growth this quarter.

Beta Mining faces a lawsuit amid weak demand.
`

const memoText = `We prefer low volatility and would avoid leverage. ESG is important.`

const keywordsJSON = `{
  "positive": ["strong", "growth", "record"],
  "negative": ["decline", "lawsuit", "weak"],
  "uncertainty": ["may", "uncertain"]
}`

func setupDataset(t *testing.T) (datasetDir string, cfg *config.Config) {
	t.Helper()
	datasetDir = t.TempDir()

	write := func(name, content string) {
		require.NoError(t, os.WriteFile(filepath.Join(datasetDir, name), []byte(content), 0o644))
	}
	write(CompaniesFile, companiesCSV)
	write(NewsFile, newsText)
	write(MemoFile, memoText)

	keywordsPath := filepath.Join(t.TempDir(), "keywords.json")
	require.NoError(t, os.WriteFile(keywordsPath, []byte(keywordsJSON), 0o644))

	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.Keywords.Path = keywordsPath
	return datasetDir, cfg
}

func TestRunEndToEnd(t *testing.T) {
	datasetDir, cfg := setupDataset(t)
	p := New(cfg, zerolog.Nop())

	result, err := p.Run(datasetDir)
	require.NoError(t, err)
	require.NotNil(t, result.Submission)
	require.Len(t, result.Steps, 7)
	for _, step := range result.Steps {
		assert.NoError(t, step.Err, "step %s", step.Name)
	}

	sub := result.Submission
	// Alpha leads on every component; Beta is floored by double
	// constraint breach and corruption.
	assert.Equal(t, []string{"Alpha Textiles", "Gamma Foods", "Beta Mining"}, sub.FinalRanking)
	assert.Equal(t, "Alpha Textiles", sub.RecommendedCompany)

	// Base 0.80 minus corruption (0.07) and imputation (0.05); the top
	// gap is wide so no gap decrement.
	assert.Equal(t, 0.68, sub.ConfidenceScore)
	assert.Equal(t, []string{"Corrupted data present", "ESG values were imputed"}, sub.UncertaintyFactors)

	assert.Equal(t, "Volatility below 20.0", sub.ConstraintTranslation.ModerateRisk)
	assert.Equal(t, "Debt_to_Equity below 1.5", sub.ConstraintTranslation.AvoidExcessLeverage)
	assert.Equal(t, "Minimum ESG score 75", sub.ConstraintTranslation.ESGPriority)
	assert.Equal(t, "false", sub.ConstraintTranslation.Stability)

	// Component scores of the winner.
	top := result.Assessment.Ranking[0]
	assert.Equal(t, 0.7, top.Financial)
	assert.Equal(t, 1.0, top.Risk)
	assert.Equal(t, 1.0, top.News)
	assert.Equal(t, 0.91, top.Final)

	// Report files land in the dataset directory.
	assert.FileExists(t, filepath.Join(datasetDir, "submission.json"))
	assert.FileExists(t, filepath.Join(datasetDir, "report.md"))
}

func TestRunIsDeterministic(t *testing.T) {
	datasetDir, cfg := setupDataset(t)
	p := New(cfg, zerolog.Nop())

	first, err := p.Run(datasetDir)
	require.NoError(t, err)
	second, err := p.Run(datasetDir)
	require.NoError(t, err)

	// Identical reports modulo runtime.
	a, b := *first.Submission, *second.Submission
	a.RuntimeSeconds, b.RuntimeSeconds = 0, 0
	aj, _ := json.Marshal(a)
	bj, _ := json.Marshal(b)
	assert.JSONEq(t, string(aj), string(bj))
}

func TestRunFailsWithoutCompanies(t *testing.T) {
	datasetDir, cfg := setupDataset(t)
	require.NoError(t, os.Remove(filepath.Join(datasetDir, CompaniesFile)))

	p := New(cfg, zerolog.Nop())
	_, err := p.Run(datasetDir)
	require.Error(t, err)

	// No partial report.
	assert.NoFileExists(t, filepath.Join(datasetDir, "submission.json"))
}

func TestRunFailsWhenNoValidESG(t *testing.T) {
	datasetDir, cfg := setupDataset(t)
	csv := `Company,Revenue_Growth_3Y,EBITDA_Margin,Debt_to_Equity,Volatility_1Y,ESG_Score,Operational_Risk,Data_Quality_Flag
Solo Co,10.0,10.0,1.0,20.0,?,Low,OK
`
	require.NoError(t, os.WriteFile(filepath.Join(datasetDir, CompaniesFile), []byte(csv), 0o644))

	p := New(cfg, zerolog.Nop())
	_, err := p.Run(datasetDir)
	require.Error(t, err)
	assert.NoFileExists(t, filepath.Join(datasetDir, "submission.json"))
}

func TestRunFailsOnMissingNumericField(t *testing.T) {
	datasetDir, cfg := setupDataset(t)
	csv := `Company,Revenue_Growth_3Y,EBITDA_Margin,Debt_to_Equity,Volatility_1Y,ESG_Score,Operational_Risk,Data_Quality_Flag
Alpha Textiles,12.0,20.0,1.0,18.0,70,Low,OK
Beta Mining,?,10.0,2.5,40.0,60,Medium,OK
`
	require.NoError(t, os.WriteFile(filepath.Join(datasetDir, CompaniesFile), []byte(csv), 0o644))

	p := New(cfg, zerolog.Nop())
	_, err := p.Run(datasetDir)
	require.ErrorContains(t, err, "Revenue_Growth_3Y")
	assert.NoFileExists(t, filepath.Join(datasetDir, "submission.json"))
}

func TestDryRun(t *testing.T) {
	datasetDir, cfg := setupDataset(t)
	p := New(cfg, zerolog.Nop())

	result := p.DryRun(datasetDir)
	require.Len(t, result.Steps, 5)
	for _, step := range result.Steps[:4] {
		assert.Contains(t, step.Summary, "found", "step %s", step.Name)
	}
	assert.NoFileExists(t, filepath.Join(datasetDir, "submission.json"))
}
