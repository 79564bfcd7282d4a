package jobs

import (
	"encoding/json"
	"fmt"
	"os"
)

// SaveResults writes postings to a file as indented JSON.
func SaveResults(postings []EnrichedPosting, filename string) error {
	data, err := json.MarshalIndent(postings, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}
