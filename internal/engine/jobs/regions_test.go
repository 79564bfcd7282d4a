package jobs

import (
	"reflect"
	"testing"
)

func TestCountriesFor(t *testing.T) {
	tests := []struct {
		name     string
		region   string
		contains string
		empty    bool
	}{
		{"europe has germany", "europe", "germany", false},
		{"mena has uae", "mena", "united arab emirates", false},
		{"mena has ksa alias", "mena", "ksa", false},
		{"north africa has morocco", "north africa", "morocco", false},
		{"sub-saharan has nigeria", "sub-saharan africa", "nigeria", false},
		{"asia has india", "asia", "india", false},
		{"north america has mexico", "north america", "mexico", false},
		{"case insensitive", "EUROPE", "france", false},
		{"unknown region", "atlantis", "", true},
		{"empty region", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CountriesFor(tt.region)
			if tt.empty {
				if len(got) != 0 {
					t.Fatalf("CountriesFor(%q) = %d entries, want none", tt.region, len(got))
				}
				return
			}
			if len(got) == 0 {
				t.Fatalf("CountriesFor(%q) returned no entries", tt.region)
			}
			found := false
			for _, c := range got {
				if c == tt.contains {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("CountriesFor(%q) missing %q", tt.region, tt.contains)
			}
		})
	}
}

func TestPreferredDefault(t *testing.T) {
	tests := []struct {
		region string
		want   string
	}{
		{"mena", "united arab emirates"},
		{"north africa", "morocco"},
		{"sub-saharan africa", "south africa"},
		{"europe", "germany"},
		{"north america", "united states"},
		{"asia", "india"},
		{"Europe", "germany"},
		{"atlantis", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := PreferredDefault(tt.region); got != tt.want {
			t.Errorf("PreferredDefault(%q) = %q, want %q", tt.region, got, tt.want)
		}
	}
}

func TestPriorsFor(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		wantTech []string
		wantRem  float64
	}{
		{"europe", "europe", []string{"typescript", "react", "java", "cloud"}, 0.7},
		{"mena", "mena", []string{"javascript", "react", "node", "devops"}, 0.5},
		{"north africa wins over plain match", "north africa", []string{"python", "javascript", "react", "node", "devops"}, 0.6},
		{"sub-saharan", "sub-saharan africa", []string{"python", "java", "cloud", "data"}, 0.5},
		{"substring of location", "somewhere in europe", []string{"typescript", "react", "java", "cloud"}, 0.7},
		{"case insensitive", "MENA", []string{"javascript", "react", "node", "devops"}, 0.5},
		{"unknown falls back", "mars", []string{}, 0.6},
		{"empty falls back", "", []string{}, 0.6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PriorsFor(tt.in)
			if !reflect.DeepEqual(got.Tech, tt.wantTech) {
				t.Errorf("PriorsFor(%q).Tech = %v, want %v", tt.in, got.Tech, tt.wantTech)
			}
			if got.Remote != tt.wantRem {
				t.Errorf("PriorsFor(%q).Remote = %v, want %v", tt.in, got.Remote, tt.wantRem)
			}
		})
	}
}

// Every region with a country list must have a preferred default inside that list.
func TestPreferredDefaultIsMember(t *testing.T) {
	for region := range regionCountries {
		def := PreferredDefault(region)
		if def == "" {
			t.Errorf("region %q has no preferred default", region)
			continue
		}
		found := false
		for _, c := range CountriesFor(region) {
			if c == def {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("preferred default %q not in country list of %q", def, region)
		}
	}
}
