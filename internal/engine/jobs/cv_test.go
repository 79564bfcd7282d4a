package jobs

import (
	"reflect"
	"strings"
	"testing"
)

func TestExtractSkills(t *testing.T) {
	text := `Senior engineer with Python and React experience.
Built services on AWS with Docker and Kubernetes. Strong communication skills.`

	got := ExtractSkills(text)
	for _, want := range []string{"python", "react", "aws", "docker", "kubernetes", "communication"} {
		found := false
		for _, s := range got {
			if s == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("ExtractSkills missing %q, got %v", want, got)
		}
	}

	if !sortedStrings(got) {
		t.Errorf("ExtractSkills output not sorted: %v", got)
	}

	if got := ExtractSkills("I like gardening"); len(got) != 0 {
		t.Errorf("ExtractSkills on unrelated text = %v, want none", got)
	}
}

func sortedStrings(s []string) bool {
	for i := 1; i < len(s); i++ {
		if s[i-1] > s[i] {
			return false
		}
	}
	return true
}

func TestExtractExperienceYears(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"plain", "7 years of experience in backend systems", 7},
		{"plus sign", "10+ years experience", 10},
		{"in the field", "3 years in the field", 3},
		{"range", "5 to 7 years experience", 5},
		{"case insensitive", "8 Years Of Experience", 8},
		{"not stated defaults", "passionate engineer", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractExperienceYears(tt.text); got != tt.want {
				t.Errorf("extractExperienceYears(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractEducation(t *testing.T) {
	got := extractEducation("Bachelor of Science in Computer Science, 2018")
	if len(got) == 0 {
		t.Fatal("extractEducation returned nothing")
	}
	if !strings.HasPrefix(got[0], "Bachelor") {
		t.Errorf("first entry = %q, want Bachelor degree", got[0])
	}

	got = extractEducation("no formal education listed")
	if !reflect.DeepEqual(got, []string{"Bachelor's Degree"}) {
		t.Errorf("default education = %v", got)
	}
}

func TestExtractCertifications(t *testing.T) {
	got := extractCertifications("AWS Certified Solutions Architect, PMP certified, AWS Certified DevOps")
	if len(got) != 2 {
		t.Fatalf("got %v, want AWS and PMP once each", got)
	}
	if got[0] != "AWS" || got[1] != "PMP" {
		t.Errorf("got %v, want [AWS PMP]", got)
	}

	if got := extractCertifications("no certs here"); len(got) != 0 {
		t.Errorf("got %v, want none", got)
	}
}

func TestDetermineJobCategories(t *testing.T) {
	tests := []struct {
		name   string
		skills []string
		years  int
		want   []string
	}{
		{"data science wins over frontend", []string{"python", "pandas", "react"}, 3, []string{"Data Science & AI"}},
		{"frontend", []string{"javascript", "react", "css"}, 3, []string{"Frontend Development"}},
		{"backend", []string{"python", "django"}, 3, []string{"Backend Development"}},
		{"devops", []string{"go", "docker", "kubernetes"}, 3, []string{"DevOps & Cloud"}},
		{"plain software dev", []string{"java"}, 3, []string{"Software Development"}},
		{"business plus pm", []string{"excel", "leadership"}, 3, []string{"Business Analytics & Finance", "Project Management & Leadership"}},
		{"senior tier fallback", nil, 8, []string{"Senior Professional"}},
		{"mid tier fallback", nil, 3, []string{"Mid-Level Professional"}},
		{"entry tier fallback", nil, 1, []string{"Entry-Level Professional"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetermineJobCategories(tt.skills, tt.years)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DetermineJobCategories(%v, %d) = %v, want %v", tt.skills, tt.years, got, tt.want)
			}
		})
	}
}

func TestGenerateJobKeywords(t *testing.T) {
	got := GenerateJobKeywords([]string{"Backend Development"}, []string{"python", "django", "go"})
	want := "Backend Developer OR Python Developer OR Java Developer OR API Developer OR Python Developer OR Django Developer"
	if got != want {
		t.Errorf("GenerateJobKeywords = %q, want %q", got, want)
	}

	// Many categories cap out at 10 terms.
	got = GenerateJobKeywords([]string{"Data Science & AI", "Frontend Development", "Backend Development"}, nil)
	if n := len(strings.Split(got, " OR ")); n != 10 {
		t.Errorf("keyword count = %d, want capped at 10", n)
	}

	if got := GenerateJobKeywords(nil, nil); got != "" {
		t.Errorf("GenerateJobKeywords(nil, nil) = %q, want empty", got)
	}
}

func TestSuggestedRoles(t *testing.T) {
	tests := []struct {
		name       string
		categories []string
		years      int
		want       []string
	}{
		{"senior prefix", []string{"Backend Development"}, 6, []string{"Senior Backend Developer", "Senior Python Developer"}},
		{"mid no prefix", []string{"Backend Development"}, 3, []string{"Backend Developer", "Python Developer"}},
		{"junior prefix", []string{"Backend Development"}, 1, []string{"Junior Backend Developer", "Junior Python Developer"}},
		{
			"capped at 5",
			[]string{"Backend Development", "Frontend Development", "DevOps & Cloud"},
			3,
			[]string{"Backend Developer", "Python Developer", "Frontend Developer", "React Developer", "DevOps Engineer"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := suggestedRoles(tt.categories, tt.years)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("suggestedRoles(%v, %d) = %v, want %v", tt.categories, tt.years, got, tt.want)
			}
		})
	}
}

func TestAnalyzeCV(t *testing.T) {
	resume := `Jane Doe
Senior Software Engineer with 6 years of experience.
Skills: Python, Django, PostgreSQL, Docker.
B.S. in Computer Science.
AWS Certified Solutions Architect.`

	got := AnalyzeCV(resume)
	if got.ExperienceYears != 6 {
		t.Errorf("ExperienceYears = %d, want 6", got.ExperienceYears)
	}
	if len(got.Skills) == 0 {
		t.Fatal("no skills extracted")
	}
	if !reflect.DeepEqual(got.JobCategories, []string{"Backend Development"}) {
		t.Errorf("JobCategories = %v", got.JobCategories)
	}
	if len(got.Certifications) != 1 || got.Certifications[0] != "AWS" {
		t.Errorf("Certifications = %v", got.Certifications)
	}
	if !strings.Contains(got.JobKeywords, " OR ") {
		t.Errorf("JobKeywords = %q, want OR-joined query", got.JobKeywords)
	}
	if len(got.SuggestedRoles) == 0 || !strings.HasPrefix(got.SuggestedRoles[0], "Senior ") {
		t.Errorf("SuggestedRoles = %v, want senior-prefixed", got.SuggestedRoles)
	}
}
