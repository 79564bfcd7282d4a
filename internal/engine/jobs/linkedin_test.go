package jobs

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/anatolykoptev/go_career/internal/engine"
)

const sampleGuestAPIHTML = `
<ul class="jobs-search__results-list">
  <li>
    <div class="base-card">
      <a class="base-card__full-link" href="https://www.linkedin.com/jobs/view/golang-developer-at-acme-4335742219?refId=abc&amp;trackingId=xyz">
        <span class="sr-only">Golang Developer</span>
      </a>
      <div class="base-search-card__info">
        <h3 class="base-search-card__title">
          Golang Developer
        </h3>
        <h4 class="base-search-card__subtitle">
          <a>Acme Corp</a>
        </h4>
        <div class="base-search-card__metadata">
          <span class="job-search-card__location">Dubai, United Arab Emirates</span>
          <time class="job-search-card__listdate" datetime="2025-08-14">2 weeks ago</time>
        </div>
      </div>
    </div>
  </li>
  <li>
    <div class="base-card">
      <a class="base-card__full-link" href="https://www.linkedin.com/jobs/view/4111222333"></a>
      <h3 class="base-search-card__title">Backend Engineer</h3>
      <h4 class="base-search-card__subtitle">Globex</h4>
      <span class="job-search-card__location">Remote - Egypt</span>
      <time class="job-search-card__listdate--new">3 days ago</time>
    </div>
  </li>
  <li>
    <div class="base-card">
      <h3 class="base-search-card__title">No Link Job</h3>
      <h4 class="base-search-card__subtitle">Initech</h4>
      <span class="job-search-card__location">Cairo, Egypt</span>
    </div>
  </li>
</ul>
`

func TestParsePostingsHTML(t *testing.T) {
	got := ParsePostingsHTML(sampleGuestAPIHTML)
	if len(got) != 2 {
		t.Fatalf("ParsePostingsHTML returned %d postings, want 2", len(got))
	}

	first := got[0]
	if first.Title != "Golang Developer" {
		t.Errorf("Title = %q", first.Title)
	}
	if first.Company != "Acme Corp" {
		t.Errorf("Company = %q", first.Company)
	}
	if first.Location != "Dubai, United Arab Emirates" {
		t.Errorf("Location = %q", first.Location)
	}
	if want := "https://www.linkedin.com/jobs/view/golang-developer-at-acme-4335742219"; first.ApplyURL != want {
		t.Errorf("ApplyURL = %q, want tracking params stripped: %q", first.ApplyURL, want)
	}
	if first.PostedDate != "2025-08-14" {
		t.Errorf("PostedDate = %q, want datetime attribute preferred over relative text", first.PostedDate)
	}

	second := got[1]
	if second.Title != "Backend Engineer" {
		t.Errorf("second Title = %q", second.Title)
	}
	if second.ApplyURL != "https://www.linkedin.com/jobs/view/4111222333" {
		t.Errorf("second ApplyURL = %q", second.ApplyURL)
	}
	if second.PostedDate != "3 days ago" {
		t.Errorf("second PostedDate = %q, want relative text from listdate--new variant", second.PostedDate)
	}
}

func TestParsePostingsHTMLListdateFallsBackToText(t *testing.T) {
	body := `<li>
		<a class="base-card__full-link" href="https://www.linkedin.com/jobs/view/4000000001"></a>
		<h3 class="base-search-card__title">T</h3>
		<h4 class="base-search-card__subtitle">C</h4>
		<span class="job-search-card__location">L</span>
		<time class="job-search-card__listdate">1 week ago</time>
	</li>`

	got := ParsePostingsHTML(body)
	if len(got) != 1 {
		t.Fatalf("got %d postings, want 1", len(got))
	}
	if got[0].PostedDate != "1 week ago" {
		t.Errorf("PostedDate = %q, want relative text when datetime attr missing", got[0].PostedDate)
	}
}

func TestParsePostingsHTMLEmpty(t *testing.T) {
	for _, body := range []string{"", "<ul></ul>", "not html at all"} {
		if got := ParsePostingsHTML(body); len(got) != 0 {
			t.Errorf("ParsePostingsHTML(%q) = %d postings, want 0", body, len(got))
		}
	}
}

func TestExtractJobID(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://www.linkedin.com/jobs/view/4335742219", "4335742219"},
		{"https://www.linkedin.com/jobs/view/golang-developer-at-ceipal-4335742219", "4335742219"},
		{"https://www.linkedin.com/jobs/view/4335742219?refId=abc", "4335742219"},
		{"https://www.linkedin.com/jobs/search/?keywords=go", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := ExtractJobID(tt.url); got != tt.want {
			t.Errorf("ExtractJobID(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}

func TestFetchJobDetailsCached(t *testing.T) {
	engine.InitCache("", time.Minute, 100, time.Hour)
	ctx := context.Background()

	url := "https://www.linkedin.com/jobs/view/4335742219"
	engine.CacheSetJobDetails(ctx, url, "**Title:** Go Developer")

	got, err := FetchJobDetails(ctx, url)
	if err != nil {
		t.Fatalf("FetchJobDetails() error = %v", err)
	}
	if got != "**Title:** Go Developer" {
		t.Errorf("FetchJobDetails() = %q, want cached details", got)
	}
}

func TestExtractJSONLD(t *testing.T) {
	page := `<html><head>
<script type="application/ld+json">
{"@context":"http://schema.org","@type":"JobPosting","title":"Go Developer","description":"<p>Build services</p>","hiringOrganization":{"@type":"Organization","name":"Acme"},"jobLocation":{"@type":"Place","address":{"addressLocality":"Dubai","addressCountry":"AE"}},"employmentType":"FULL_TIME","baseSalary":{"currency":"USD","value":{"minValue":90000,"maxValue":120000}}}
</script>
</head><body></body></html>`

	got := extractJSONLD(page)
	for _, want := range []string{
		"**Title:** Go Developer",
		"**Company:** Acme",
		"**Location:** Dubai, AE",
		"**Type:** FULL_TIME",
		"**Salary:** 90000-120000 USD",
		"Build services",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("extractJSONLD output missing %q\ngot:\n%s", want, got)
		}
	}
}

func TestExtractJSONLDMissing(t *testing.T) {
	if got := extractJSONLD("<html><body>no structured data</body></html>"); got != "" {
		t.Errorf("extractJSONLD = %q, want empty", got)
	}
}

func TestExtractJobDescription(t *testing.T) {
	page := `<html><body>
<div class="show-more-less-html__markup"><p>We are hiring.</p><ul><li>Go</li></ul></div>
</body></html>`

	got := extractJobDescription(page)
	if !strings.Contains(got, "<p>We are hiring.</p>") {
		t.Errorf("extractJobDescription = %q, want inner HTML of markup div", got)
	}

	if got := extractJobDescription("<html><body><div>plain</div></body></html>"); got != "" {
		t.Errorf("extractJobDescription = %q, want empty when no known container", got)
	}
}
