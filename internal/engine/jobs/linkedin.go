package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"golang.org/x/net/html"

	"github.com/anatolykoptev/go_career/internal/engine"
)

// LinkedIn Guest API endpoint — returns HTML, no auth required.
const linkedInGuestAPI = "https://www.linkedin.com/jobs-guest/jobs/api/seeMoreJobPostings/search"

// PageSize is the number of job cards the Guest API returns per page.
const PageSize = 25

// RawPosting is a single job card as scraped from the source, before any
// classification.
type RawPosting struct {
	Title      string `json:"title"`
	Company    string `json:"company"`
	Location   string `json:"location"`
	ApplyURL   string `json:"job_link"`
	PostedDate string `json:"posted_date"`
}

// PageFetcher fetches one result page starting at the given offset.
type PageFetcher func(ctx context.Context, keywords, location string, start int) ([]RawPosting, error)

// Scraper paginates through the job source, accumulating postings.
type Scraper struct {
	Fetch PageFetcher
	Pacer Pacer
}

// NewScraper returns a Scraper backed by the live Guest API with the
// configured inter-page delay.
func NewScraper() *Scraper {
	return &Scraper{
		Fetch: FetchPage,
		Pacer: NewPacer(engine.Cfg.ScrapePageDelayMin, engine.Cfg.ScrapePageDelayMax),
	}
}

// Scrape collects up to maxJobs postings, one page at a time. A page error
// aborts pagination and returns whatever accumulated so far; the caller gets
// partial results rather than an error.
func (s *Scraper) Scrape(ctx context.Context, keywords, location string, maxJobs int) []RawPosting {
	var collected []RawPosting
	seen := make(map[string]bool)

	for start := 0; len(collected) < maxJobs; start += PageSize {
		if start > 0 {
			if err := s.Pacer.Wait(ctx); err != nil {
				break
			}
		}

		page, err := s.Fetch(ctx, keywords, location, start)
		if err != nil {
			engine.IncrScrapeErrors()
			slog.Warn("scrape: page fetch failed, returning partial results",
				slog.Int("start", start), slog.Int("collected", len(collected)), slog.Any("error", err))
			break
		}
		engine.IncrScrapePages()

		if len(page) == 0 {
			break
		}

		for _, p := range page {
			// The apply URL is unique per posting (query already stripped);
			// title+location alone would collapse distinct postings that
			// share a generic title in the same city.
			key := p.ApplyURL
			if key == "" {
				key = engine.CanonicalJobKey(p.Title, p.Location)
			}
			if seen[key] {
				continue
			}
			seen[key] = true
			collected = append(collected, p)
		}
	}

	if len(collected) > maxJobs {
		collected = collected[:maxJobs]
	}
	return collected
}

// FetchPage queries the Guest API for one page of job cards.
func FetchPage(ctx context.Context, keywords, location string, start int) ([]RawPosting, error) {
	u, err := url.Parse(linkedInGuestAPI)
	if err != nil {
		return nil, err
	}

	q := u.Query()
	q.Set("keywords", keywords)
	if location != "" {
		q.Set("location", location)
	}
	q.Set("start", fmt.Sprintf("%d", start))
	u.RawQuery = q.Encode()

	body, err := linkedInRequest(ctx, u.String())
	if err != nil {
		return nil, err
	}

	return ParsePostingsHTML(string(body)), nil
}

// linkedInRequest fetches a LinkedIn URL using BrowserClient (Chrome TLS fingerprint)
// when available, falling back to standard net/http client.
// LinkedIn blocks non-browser TLS fingerprints, so BrowserClient is strongly preferred.
func linkedInRequest(ctx context.Context, targetURL string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, engine.Cfg.FetchTimeout)
	defer cancel()

	if engine.Cfg.BrowserClient != nil {
		headers := engine.ChromeHeaders()
		headers["accept"] = "text/html,application/xhtml+xml,application/xml;q=0.9"
		headers["referer"] = "https://www.linkedin.com/"

		return engine.RetryDo(ctx, engine.DefaultRetryConfig, func() ([]byte, error) {
			d, s, e := engine.Cfg.BrowserClient.Do("GET", targetURL, headers, nil)
			if e != nil {
				return nil, e
			}
			if s != http.StatusOK {
				return nil, engine.StatusError("linkedin", s)
			}
			return d, nil
		})
	}

	// Fallback: standard HTTP client
	req, err := http.NewRequestWithContext(ctx, "GET", targetURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", engine.UserAgentChrome)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := engine.RetryHTTP(ctx, engine.DefaultRetryConfig, func() (*http.Response, error) {
		return engine.Cfg.HTTPClient.Do(req)
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("linkedin status %d", resp.StatusCode)
	}

	return io.ReadAll(io.LimitReader(resp.Body, 512*1024))
}

// ParsePostingsHTML extracts job cards from the Guest API HTML response
// using golang.org/x/net/html for robust tree-based parsing. Cards missing
// any required field are dropped.
func ParsePostingsHTML(body string) []RawPosting {
	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		return nil
	}

	var postings []RawPosting
	for _, li := range findElements(doc, "li") {
		p := parseJobCard(li)
		if p.Title == "" || p.Company == "" || p.Location == "" || p.ApplyURL == "" {
			slog.Debug("scrape: dropping incomplete card",
				slog.String("title", p.Title), slog.String("company", p.Company))
			continue
		}
		postings = append(postings, p)
	}
	return postings
}

// parseJobCard extracts a RawPosting from an <li> node.
func parseJobCard(li *html.Node) RawPosting {
	var p RawPosting

	if link := findByClass(li, "base-card__full-link"); link != nil {
		if href := getAttr(link, "href"); href != "" {
			// Strip tracking query params
			p.ApplyURL = strings.TrimSpace(strings.SplitN(href, "?", 2)[0])
		}
	}

	if n := findByClass(li, "base-search-card__title"); n != nil {
		p.Title = strings.TrimSpace(textContent(n))
	}

	if n := findByClass(li, "base-search-card__subtitle"); n != nil {
		p.Company = strings.TrimSpace(textContent(n))
	}

	if n := findByClass(li, "job-search-card__location"); n != nil {
		p.Location = strings.TrimSpace(textContent(n))
	}

	// Prefer ISO datetime attribute over relative text
	if n := findByClass(li, "job-search-card__listdate"); n != nil {
		if dt := getAttr(n, "datetime"); dt != "" {
			p.PostedDate = strings.TrimSpace(dt)
		} else {
			p.PostedDate = strings.TrimSpace(textContent(n))
		}
	}

	return p
}

// jobIDRe extracts job ID from LinkedIn job URLs.
// Matches both /jobs/view/4335742219 and /jobs/view/golang-developer-at-ceipal-4335742219
var jobIDRe = regexp.MustCompile(`/jobs/view/[^?]*?(\d{7,})`)

// ExtractJobID extracts the numeric job ID from an apply URL.
func ExtractJobID(jobURL string) string {
	if m := jobIDRe.FindStringSubmatch(jobURL); m != nil {
		return m[1]
	}
	return ""
}

// --- HTML tree helpers ---

// getAttr returns the value of an attribute on a node, or "".
func getAttr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// hasClass checks if a node's class attribute contains the given class name.
func hasClass(n *html.Node, className string) bool {
	return strings.Contains(getAttr(n, "class"), className)
}

// textContent recursively extracts all text from a node.
func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(textContent(c))
	}
	return sb.String()
}

// findByClass finds the first descendant element with the given class.
func findByClass(n *html.Node, className string) *html.Node {
	if n.Type == html.ElementNode && hasClass(n, className) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByClass(c, className); found != nil {
			return found
		}
	}
	return nil
}

// findElements finds all descendant elements with the given tag name.
func findElements(n *html.Node, tag string) []*html.Node {
	var results []*html.Node
	if n.Type == html.ElementNode && n.Data == tag {
		results = append(results, n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		results = append(results, findElements(c, tag)...)
	}
	return results
}

// FetchJobDetails fetches a single job page and extracts structured data
// from the JSON-LD schema.org/JobPosting block. Results are cached by URL.
func FetchJobDetails(ctx context.Context, jobURL string) (string, error) {
	if cached, ok := engine.CacheGetJobDetails(ctx, jobURL); ok {
		return cached, nil
	}
	engine.IncrJobDetailsRequests()

	details, err := fetchJobDetailsUncached(ctx, jobURL)
	if err != nil {
		return "", err
	}

	engine.CacheSetJobDetails(ctx, jobURL, details)
	return details, nil
}

func fetchJobDetailsUncached(ctx context.Context, jobURL string) (string, error) {
	bodyBytes, err := linkedInRequest(ctx, jobURL)
	if err != nil {
		return "", err
	}

	page := string(bodyBytes)

	if jsonLD := extractJSONLD(page); jsonLD != "" {
		return jsonLD, nil
	}

	// Fallback: extract description section via html-to-markdown
	if descHTML := extractJobDescription(page); descHTML != "" {
		md, err := htmltomarkdown.ConvertString(descHTML)
		if err == nil && md != "" {
			return md, nil
		}
	}

	return "", fmt.Errorf("no job details found")
}

// extractJSONLD extracts and formats the schema.org/JobPosting JSON-LD block.
func extractJSONLD(page string) string {
	marker := `"@type":"JobPosting"`
	markerAlt := `"@type": "JobPosting"`

	idx := strings.Index(page, marker)
	if idx == -1 {
		idx = strings.Index(page, markerAlt)
	}
	if idx == -1 {
		return ""
	}

	// Find the enclosing <script> tag
	scriptStart := strings.LastIndex(page[:idx], "<script")
	if scriptStart == -1 {
		return ""
	}
	scriptEnd := strings.Index(page[scriptStart:], "</script>")
	if scriptEnd == -1 {
		return ""
	}

	scriptContent := page[scriptStart : scriptStart+scriptEnd]
	jsonStart := strings.Index(scriptContent, ">")
	if jsonStart == -1 {
		return ""
	}
	jsonStr := strings.TrimSpace(scriptContent[jsonStart+1:])

	var data map[string]interface{}
	if err := json.Unmarshal([]byte(jsonStr), &data); err != nil {
		return ""
	}

	var parts []string

	if title, ok := data["title"].(string); ok {
		parts = append(parts, "**Title:** "+title)
	}
	if desc, ok := data["description"].(string); ok {
		if md, err := htmltomarkdown.ConvertString(desc); err == nil {
			desc = md
		}
		if len(desc) > 3000 {
			desc = desc[:3000] + "..."
		}
		parts = append(parts, "**Description:**\n"+desc)
	}
	if org, ok := data["hiringOrganization"].(map[string]interface{}); ok {
		if name, ok := org["name"].(string); ok {
			parts = append(parts, "**Company:** "+name)
		}
	}
	if loc, ok := data["jobLocation"].(map[string]interface{}); ok {
		if addr, ok := loc["address"].(map[string]interface{}); ok {
			locParts := []string{}
			if city, ok := addr["addressLocality"].(string); ok {
				locParts = append(locParts, city)
			}
			if country, ok := addr["addressCountry"].(string); ok {
				locParts = append(locParts, country)
			}
			if len(locParts) > 0 {
				parts = append(parts, "**Location:** "+strings.Join(locParts, ", "))
			}
		}
	}
	if empType, ok := data["employmentType"].(string); ok {
		parts = append(parts, "**Type:** "+empType)
	}
	if salary, ok := data["baseSalary"].(map[string]interface{}); ok {
		if val, ok := salary["value"].(map[string]interface{}); ok {
			min, _ := val["minValue"].(float64)
			max, _ := val["maxValue"].(float64)
			currency, _ := salary["currency"].(string)
			if min > 0 || max > 0 {
				parts = append(parts, fmt.Sprintf("**Salary:** %.0f-%.0f %s", min, max, currency))
			}
		}
	}

	return strings.Join(parts, "\n\n")
}

// extractJobDescription extracts the job description HTML section using tree parsing.
func extractJobDescription(body string) string {
	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		return ""
	}
	classes := []string{
		"show-more-less-html__markup",
		"description__text",
		"job-description",
	}
	for _, cls := range classes {
		if n := findByClass(doc, cls); n != nil {
			return renderChildren(n)
		}
	}
	return ""
}

// renderChildren returns the inner HTML of a node as a string.
func renderChildren(n *html.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		html.Render(&sb, c)
	}
	return sb.String()
}
