// Package keywords loads the sentiment keyword taxonomy. The taxonomy
// path is an explicit configuration input rather than a fixed lookup in
// the process working directory.
package keywords

import (
	"encoding/json"
	"fmt"
	"os"
)

// Taxonomy holds the three keyword lists used for sentiment extraction.
type Taxonomy struct {
	Positive    []string `json:"positive"`
	Negative    []string `json:"negative"`
	Uncertainty []string `json:"uncertainty"`
}

// Load reads a taxonomy JSON file.
func Load(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading keyword taxonomy: %w", err)
	}
	var tax Taxonomy
	if err := json.Unmarshal(data, &tax); err != nil {
		return nil, fmt.Errorf("parsing keyword taxonomy %s: %w", path, err)
	}
	if len(tax.Positive) == 0 && len(tax.Negative) == 0 && len(tax.Uncertainty) == 0 {
		return nil, fmt.Errorf("keyword taxonomy %s has no keyword lists", path)
	}
	return &tax, nil
}
