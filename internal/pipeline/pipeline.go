// Package pipeline orchestrates the scoring run: load, impute, extract,
// translate, score, rank, compose. A run is synchronous and single-pass;
// the first failing step aborts with no partial report written.
package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/arryl/dealrank/internal/company"
	"github.com/arryl/dealrank/internal/config"
	"github.com/arryl/dealrank/internal/impute"
	"github.com/arryl/dealrank/internal/keywords"
	"github.com/arryl/dealrank/internal/memo"
	"github.com/arryl/dealrank/internal/news"
	"github.com/arryl/dealrank/internal/rank"
	"github.com/arryl/dealrank/internal/report"
	"github.com/arryl/dealrank/internal/scoring"
)

// Fixed input filenames inside the dataset directory.
const (
	CompaniesFile = "companies.csv"
	NewsFile      = "news.txt"
	MemoFile      = "client_memo.txt"
)

// StepResult holds the result of a single pipeline step.
type StepResult struct {
	Name    string
	Summary string
	Err     error
}

// Result holds the results of a full pipeline run.
type Result struct {
	Steps        []StepResult
	Submission   *report.Submission
	Assessment   rank.Assessment
	OutputPath   string
	MarkdownPath string
}

// Pipeline runs the scoring and ranking stages over one dataset batch.
type Pipeline struct {
	cfg *config.Config
	log zerolog.Logger
}

// New creates a pipeline.
func New(cfg *config.Config, log zerolog.Logger) *Pipeline {
	return &Pipeline{cfg: cfg, log: log}
}

// Run executes the full pipeline against a dataset directory. On error
// the returned Result carries the failed step; no report is written.
func (p *Pipeline) Run(datasetDir string) (*Result, error) {
	start := time.Now()
	runID := uuid.NewString()[:8]
	log := p.log.With().Str("run_id", runID).Str("dataset", datasetDir).Logger()

	r := &Result{}
	fail := func(name string, err error) (*Result, error) {
		r.Steps = append(r.Steps, StepResult{Name: name, Err: err})
		log.Error().Err(err).Str("step", name).Msg("Pipeline step failed")
		return r, err
	}

	// Step 1: Load companies.
	log.Info().Msg("Step 1/7: Loading company table")
	loader := company.NewLoader(log)
	companies, err := loader.LoadFile(filepath.Join(datasetDir, CompaniesFile))
	if err != nil {
		return fail("Load", err)
	}
	issues := 0
	for _, c := range companies {
		issues += len(c.DataIssues)
	}
	r.Steps = append(r.Steps, StepResult{
		Name:    "Load",
		Summary: fmt.Sprintf("Loaded %d companies (%d data issues)", len(companies), issues),
	})

	// Step 2: Impute missing ESG.
	log.Info().Msg("Step 2/7: Imputing missing ESG scores")
	companies, err = impute.ESG(companies)
	if err != nil {
		return fail("Impute", err)
	}
	imputed := 0
	for _, c := range companies {
		if c.ESGImputed {
			imputed++
		}
	}
	r.Steps = append(r.Steps, StepResult{
		Name:    "Impute",
		Summary: fmt.Sprintf("Imputed ESG for %d of %d companies", imputed, len(companies)),
	})

	// Step 3: Extract news sentiment.
	log.Info().Msg("Step 3/7: Extracting news sentiment")
	taxonomy, err := keywords.Load(p.cfg.Keywords.Path)
	if err != nil {
		return fail("News", err)
	}
	extractor := news.NewExtractor(taxonomy, log)
	signals, err := extractor.ExtractFile(filepath.Join(datasetDir, NewsFile))
	if err != nil {
		return fail("News", err)
	}
	r.Steps = append(r.Steps, StepResult{
		Name:    "News",
		Summary: fmt.Sprintf("Extracted %d sentiment signals", len(signals)),
	})

	// Step 4: Translate client constraints.
	log.Info().Msg("Step 4/7: Translating client memo")
	constraints, err := memo.TranslateFile(filepath.Join(datasetDir, MemoFile))
	if err != nil {
		return fail("Constraints", err)
	}
	r.Steps = append(r.Steps, StepResult{
		Name: "Constraints",
		Summary: fmt.Sprintf("max_volatility=%.1f max_debt_to_equity=%.1f min_esg=%d stability=%t",
			constraints.MaxVolatility, constraints.MaxDebtToEquity,
			constraints.MinESGScore, constraints.StabilityPreference),
	})

	// Step 5: Score.
	log.Info().Msg("Step 5/7: Scoring companies")
	financial, err := scoring.Financial(companies)
	if err != nil {
		return fail("Score", err)
	}
	risk, err := scoring.Risk(companies, constraints)
	if err != nil {
		return fail("Score", err)
	}
	newsScores := scoring.News(companies, signals)
	r.Steps = append(r.Steps, StepResult{
		Name:    "Score",
		Summary: fmt.Sprintf("Scored %d companies on financial, risk and news", len(companies)),
	})

	// Step 6: Rank.
	log.Info().Msg("Step 6/7: Ranking")
	anyCorrupted, anyImputed := false, false
	for _, c := range companies {
		anyCorrupted = anyCorrupted || c.IsCorrupted
		anyImputed = anyImputed || c.ESGImputed
	}
	assessment := rank.Rank(company.Names(companies), financial, risk, newsScores, anyCorrupted, anyImputed)
	r.Assessment = assessment
	r.Steps = append(r.Steps, StepResult{
		Name: "Rank",
		Summary: fmt.Sprintf("Recommended %s (confidence %.2f, gap %.4f)",
			assessment.Recommended, assessment.Confidence, assessment.TopGap),
	})

	// Step 7: Compose and write the report.
	log.Info().Msg("Step 7/7: Composing report")
	sub := report.Build(p.cfg.Report.TeamName, p.cfg.Report.Members, constraints, assessment, time.Since(start).Seconds())
	outPath, err := report.WriteJSON(sub, datasetDir, p.cfg.Output.JSONFilename)
	if err != nil {
		return fail("Compose", err)
	}
	markdown := report.ComposeMarkdown(sub, assessment, companies)
	mdPath, err := report.WriteMarkdown(markdown, datasetDir, p.cfg.Output.MarkdownFilename)
	if err != nil {
		return fail("Compose", err)
	}
	r.Submission = sub
	r.OutputPath = outPath
	r.MarkdownPath = mdPath
	r.Steps = append(r.Steps, StepResult{
		Name:    "Compose",
		Summary: fmt.Sprintf("Report written to %s", outPath),
	})

	log.Info().
		Str("recommended", assessment.Recommended).
		Float64("confidence", assessment.Confidence).
		Msg("Pipeline complete")
	return r, nil
}

// DryRun reports which inputs are present without scoring or writing.
func (p *Pipeline) DryRun(datasetDir string) *Result {
	r := &Result{}

	check := func(name, path string) {
		summary := fmt.Sprintf("[dry-run] found: %s", path)
		if _, err := os.Stat(path); err != nil {
			summary = fmt.Sprintf("[dry-run] missing: %s", path)
		}
		r.Steps = append(r.Steps, StepResult{Name: name, Summary: summary})
	}

	check("Companies", filepath.Join(datasetDir, CompaniesFile))
	check("News", filepath.Join(datasetDir, NewsFile))
	check("Memo", filepath.Join(datasetDir, MemoFile))
	check("Keywords", p.cfg.Keywords.Path)
	r.Steps = append(r.Steps, StepResult{
		Name: "Output",
		Summary: fmt.Sprintf("[dry-run] would write %s and %s",
			filepath.Join(datasetDir, p.cfg.Output.JSONFilename),
			filepath.Join(datasetDir, p.cfg.Output.MarkdownFilename)),
	})
	return r
}
