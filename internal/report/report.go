// Package report builds and writes the final recommendation report.
package report

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/arryl/dealrank/internal/memo"
	"github.com/arryl/dealrank/internal/rank"
)

const architectureSummary = "Three-scorer ensemble: financial strength (growth + margin), " +
	"risk assessment (volatility + leverage + operational risk with " +
	"constraint penalties), and news sentiment. Weighted combination " +
	"with risk heaviest (45%) for cautious investor profile."

const methodologyDescription = "Financial: 40% growth + 60% margin. " +
	"Risk: normalized volatility + leverage + operational risk, " +
	"minus 0.3 penalty per constraint breach. " +
	"News: keyword sentiment [-1,1] mapped to [0,1]. " +
	"Combined: 30% financial + 45% risk + 25% news."

var dataCleaningSteps = []string{
	"Parsed CSV with type validation; missing values set to None",
	"Flagged CORRUPTED rows for penalty treatment",
	"Imputed missing ESG via penalized median (0.9x for corrupted)",
}

// Submission is the final report object. Field order matches the
// serialized output.
type Submission struct {
	TeamName              string                `json:"team_name"`
	Members               []string              `json:"members"`
	ArchitectureSummary   string                `json:"architecture_summary"`
	DataCleaningSteps     []string              `json:"data_cleaning_steps"`
	ConstraintTranslation ConstraintTranslation `json:"constraint_translation"`
	ScoringMethodology    ScoringMethodology    `json:"scoring_methodology"`
	FinalRanking          []string              `json:"final_ranking"`
	RecommendedCompany    string                `json:"recommended_company"`
	ConfidenceScore       float64               `json:"confidence_score"`
	UncertaintyFactors    []string              `json:"uncertainty_factors"`
	RuntimeSeconds        float64               `json:"runtime_seconds"`
}

// ConstraintTranslation echoes the derived constraints as display strings.
type ConstraintTranslation struct {
	ModerateRisk        string `json:"moderate_risk"`
	AvoidExcessLeverage string `json:"avoid_excess_leverage"`
	ESGPriority         string `json:"esg_priority"`
	Stability           string `json:"stability"`
}

// ScoringMethodology documents the composite weights.
type ScoringMethodology struct {
	FinancialWeight float64 `json:"financial_weight"`
	RiskWeight      float64 `json:"risk_weight"`
	NewsWeight      float64 `json:"news_weight"`
	Description     string  `json:"description"`
}

// Build assembles the submission from run outputs. runtimeSeconds is
// rounded to 1 decimal.
func Build(teamName string, members []string, constraints memo.Constraints, assessment rank.Assessment, runtimeSeconds float64) *Submission {
	return &Submission{
		TeamName:            teamName,
		Members:             members,
		ArchitectureSummary: architectureSummary,
		DataCleaningSteps:   dataCleaningSteps,
		ConstraintTranslation: ConstraintTranslation{
			ModerateRisk:        fmt.Sprintf("Volatility below %.1f", constraints.MaxVolatility),
			AvoidExcessLeverage: fmt.Sprintf("Debt_to_Equity below %.1f", constraints.MaxDebtToEquity),
			ESGPriority:         fmt.Sprintf("Minimum ESG score %d", constraints.MinESGScore),
			Stability:           fmt.Sprintf("%t", constraints.StabilityPreference),
		},
		ScoringMethodology: ScoringMethodology{
			FinancialWeight: rank.WeightFinancial,
			RiskWeight:      rank.WeightRisk,
			NewsWeight:      rank.WeightNews,
			Description:     methodologyDescription,
		},
		FinalRanking:       assessment.Names(),
		RecommendedCompany: assessment.Recommended,
		ConfidenceScore:    assessment.Confidence,
		UncertaintyFactors: assessment.UncertaintyFactors,
		RuntimeSeconds:     math.Round(runtimeSeconds*10) / 10,
	}
}

// WriteJSON serializes the submission as indented JSON into the dataset
// directory and returns the output path.
func WriteJSON(sub *Submission, datasetDir, filename string) (string, error) {
	data, err := json.MarshalIndent(sub, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding submission: %w", err)
	}
	path := filepath.Join(datasetDir, filename)
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return "", fmt.Errorf("writing submission: %w", err)
	}
	return path, nil
}
