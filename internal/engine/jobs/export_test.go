package jobs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestSaveResults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.json")
	postings := []EnrichedPosting{
		{Title: "Go Developer", Company: "Acme", Location: "Berlin", ApplyURL: "https://e/1", MarketAlignment: 40},
	}

	if err := SaveResults(postings, path); err != nil {
		t.Fatalf("SaveResults() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	var got []EnrichedPosting
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Go Developer" {
		t.Errorf("round trip = %+v", got)
	}
}

func TestSaveResultsBadPath(t *testing.T) {
	err := SaveResults(nil, filepath.Join(t.TempDir(), "missing", "jobs.json"))
	if err == nil {
		t.Fatal("SaveResults expected error for unwritable path")
	}
}
