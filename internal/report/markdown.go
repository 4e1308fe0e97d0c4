package report

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/arryl/dealrank/internal/company"
	"github.com/arryl/dealrank/internal/rank"
)

var md = goldmark.New()

// ComposeMarkdown assembles a human-readable report alongside the JSON
// submission: recommendation, ranked score table, constraint echo, and
// per-company data issues.
func ComposeMarkdown(sub *Submission, assessment rank.Assessment, companies []company.Company) string {
	var sections []string

	sections = append(sections, fmt.Sprintf("# Investment Recommendation\n\n**Recommended: %s** (confidence %.2f)",
		sub.RecommendedCompany, sub.ConfidenceScore))

	var table strings.Builder
	table.WriteString("## Ranking\n\n")
	table.WriteString("| Rank | Company | Financial | Risk | News | Final |\n")
	table.WriteString("|-----:|---------|----------:|-----:|-----:|------:|\n")
	for i, e := range assessment.Ranking {
		fmt.Fprintf(&table, "| %d | %s | %.4f | %.4f | %.4f | %.4f |\n",
			i+1, e.Name, e.Financial, e.Risk, e.News, e.Final)
	}
	sections = append(sections, strings.TrimRight(table.String(), "\n"))

	ct := sub.ConstraintTranslation
	sections = append(sections, "## Client Constraints\n\n"+strings.Join([]string{
		"- " + ct.ModerateRisk,
		"- " + ct.AvoidExcessLeverage,
		"- " + ct.ESGPriority,
		"- Stability preference: " + ct.Stability,
	}, "\n"))

	if len(sub.UncertaintyFactors) > 0 {
		var lines []string
		for _, f := range sub.UncertaintyFactors {
			lines = append(lines, "- "+f)
		}
		sections = append(sections, "## Uncertainty\n\n"+strings.Join(lines, "\n"))
	}

	var issueLines []string
	for _, c := range companies {
		for _, issue := range c.DataIssues {
			issueLines = append(issueLines, fmt.Sprintf("- %s: %s", c.Name, issue))
		}
	}
	if len(issueLines) > 0 {
		sections = append(sections, "## Data Issues\n\n"+strings.Join(issueLines, "\n"))
	}

	sections = append(sections, "## Methodology\n\n"+sub.ScoringMethodology.Description)

	return strings.Join(sections, "\n\n---\n\n") + "\n"
}

// WriteMarkdown writes the composed markdown report into the dataset
// directory and returns the output path.
func WriteMarkdown(content, datasetDir, filename string) (string, error) {
	path := filepath.Join(datasetDir, filename)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("writing markdown report: %w", err)
	}
	return path, nil
}

// ExportHTML renders a markdown report file to a standalone HTML file
// next to it and returns the HTML path.
func ExportHTML(markdownPath string) (string, error) {
	source, err := os.ReadFile(markdownPath)
	if err != nil {
		return "", fmt.Errorf("reading markdown report: %w", err)
	}

	var body bytes.Buffer
	if err := md.Convert(source, &body); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}

	var page bytes.Buffer
	page.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	page.WriteString("<title>Investment Recommendation</title>\n</head>\n<body>\n")
	page.Write(body.Bytes())
	page.WriteString("</body>\n</html>\n")

	htmlPath := strings.TrimSuffix(markdownPath, filepath.Ext(markdownPath)) + ".html"
	if err := os.WriteFile(htmlPath, page.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("writing html report: %w", err)
	}
	return htmlPath, nil
}
