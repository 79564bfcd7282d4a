package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"

	"github.com/anatolykoptev/go_career/internal/engine"
)

// githubAPIBase is a var so tests can point it at a local server.
var githubAPIBase = "https://api.github.com"

// GitHubProfile is the aggregated public footprint of a GitHub user.
type GitHubProfile struct {
	Username           string         `json:"username"`
	Name               string         `json:"name,omitempty"`
	AvatarURL          string         `json:"avatar_url,omitempty"`
	Bio                string         `json:"bio,omitempty"`
	Company            string         `json:"company,omitempty"`
	Location           string         `json:"location,omitempty"`
	Blog               string         `json:"blog,omitempty"`
	PublicRepos        int            `json:"public_repos"`
	Followers          int            `json:"followers"`
	Following          int            `json:"following"`
	TotalStars         int            `json:"total_stars"`
	TotalForks         int            `json:"total_forks"`
	Languages          map[string]int `json:"languages"`
	RecentActivity     []GitHubEvent  `json:"recent_activity"`
	Orgs               []string       `json:"orgs"`
	TopRepos           []GitHubRepo   `json:"top_repos"`
	ProfileScore       float64        `json:"profile_score"`
	CollaborationScore float64        `json:"collaboration_score"`
}

// GitHubRepo is a repository summary for the top-repos list.
type GitHubRepo struct {
	Name        string `json:"name"`
	Stars       int    `json:"stars"`
	Language    string `json:"language,omitempty"`
	HTMLURL     string `json:"html_url"`
	Description string `json:"description,omitempty"`
}

// GitHubEvent is a recent public activity entry.
type GitHubEvent struct {
	Type      string `json:"type"`
	Repo      string `json:"repo"`
	CreatedAt string `json:"created_at"`
}

type ghUser struct {
	Name        string `json:"name"`
	AvatarURL   string `json:"avatar_url"`
	Bio         string `json:"bio"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Blog        string `json:"blog"`
	PublicRepos int    `json:"public_repos"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
}

type ghRepo struct {
	Name        string `json:"name"`
	Stars       int    `json:"stargazers_count"`
	Forks       int    `json:"forks_count"`
	Language    string `json:"language"`
	HTMLURL     string `json:"html_url"`
	Description string `json:"description"`
}

type ghEvent struct {
	Type string `json:"type"`
	Repo struct {
		Name string `json:"name"`
	} `json:"repo"`
	CreatedAt string `json:"created_at"`
}

type ghOrg struct {
	Login string `json:"login"`
}

// languageProbeLimit caps the per-repo language requests.
const languageProbeLimit = 30

// AnalyzeGitHubProfile aggregates a user's public GitHub footprint: core
// profile, repositories with a language byte histogram, recent activity and
// organizations. Secondary requests degrade leniently; only the core user
// lookup is fatal.
func AnalyzeGitHubProfile(ctx context.Context, username string) (*GitHubProfile, error) {
	engine.IncrGitHubRequests()

	var profile *GitHubProfile
	err := engine.TrackOperation(ctx, "github:"+username, func(ctx context.Context) error {
		var err error
		profile, err = analyzeGitHub(ctx, username)
		return err
	})
	return profile, err
}

func analyzeGitHub(ctx context.Context, username string) (*GitHubProfile, error) {
	var user ghUser
	if err := githubGet(ctx, fmt.Sprintf("%s/users/%s", githubAPIBase, url.PathEscape(username)), &user); err != nil {
		return nil, fmt.Errorf("github user %s: %w", username, err)
	}

	var repos []ghRepo
	if err := githubGet(ctx, fmt.Sprintf("%s/users/%s/repos?per_page=100&sort=updated&direction=desc", githubAPIBase, url.PathEscape(username)), &repos); err != nil {
		repos = nil
	}

	totalStars, totalForks := 0, 0
	languages := make(map[string]int)
	for i, r := range repos {
		totalStars += r.Stars
		totalForks += r.Forks
		if i < languageProbeLimit {
			var langs map[string]int
			if err := githubGet(ctx, fmt.Sprintf("%s/repos/%s/%s/languages", githubAPIBase, url.PathEscape(username), url.PathEscape(r.Name)), &langs); err == nil {
				for lang, bytes := range langs {
					languages[lang] += bytes
				}
			}
		}
	}

	var events []ghEvent
	if err := githubGet(ctx, fmt.Sprintf("%s/users/%s/events/public?per_page=20", githubAPIBase, url.PathEscape(username)), &events); err != nil {
		events = nil
	}
	var activity []GitHubEvent
	for i, ev := range events {
		if i >= 10 {
			break
		}
		activity = append(activity, GitHubEvent{Type: ev.Type, Repo: ev.Repo.Name, CreatedAt: ev.CreatedAt})
	}

	var orgs []ghOrg
	if err := githubGet(ctx, fmt.Sprintf("%s/users/%s/orgs", githubAPIBase, url.PathEscape(username)), &orgs); err != nil {
		orgs = nil
	}
	orgNames := make([]string, 0, len(orgs))
	for _, o := range orgs {
		orgNames = append(orgNames, o.Login)
	}

	topSource := make([]ghRepo, len(repos))
	copy(topSource, repos)
	sort.SliceStable(topSource, func(i, j int) bool { return topSource[i].Stars > topSource[j].Stars })
	if len(topSource) > 5 {
		topSource = topSource[:5]
	}
	topRepos := make([]GitHubRepo, 0, len(topSource))
	for _, r := range topSource {
		topRepos = append(topRepos, GitHubRepo{
			Name: r.Name, Stars: r.Stars, Language: r.Language,
			HTMLURL: r.HTMLURL, Description: r.Description,
		})
	}

	return &GitHubProfile{
		Username:           username,
		Name:               user.Name,
		AvatarURL:          user.AvatarURL,
		Bio:                user.Bio,
		Company:            user.Company,
		Location:           user.Location,
		Blog:               user.Blog,
		PublicRepos:        user.PublicRepos,
		Followers:          user.Followers,
		Following:          user.Following,
		TotalStars:         totalStars,
		TotalForks:         totalForks,
		Languages:          languages,
		RecentActivity:     activity,
		Orgs:               orgNames,
		TopRepos:           topRepos,
		ProfileScore:       profileScore(user, totalStars, len(languages)),
		CollaborationScore: collaborationScore(totalForks, len(orgNames), len(activity)),
	}, nil
}

// profileScore is a rough visibility heuristic, bounded to [0, 100].
func profileScore(u ghUser, totalStars, languageCount int) float64 {
	score := float64(u.Followers)*0.5 + float64(totalStars)*0.3 +
		float64(u.PublicRepos)*0.5 + float64(languageCount)*2
	return clamp100(score)
}

// collaborationScore is a rough teamwork heuristic, bounded to [0, 100].
func collaborationScore(totalForks, orgCount, recentEvents int) float64 {
	score := float64(totalForks)*0.5 + float64(orgCount)*10 + float64(recentEvents)*2
	return clamp100(score)
}

func clamp100(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// githubGet performs an authenticated GET with retry and decodes JSON into out.
func githubGet(ctx context.Context, u string, out any) error {
	ctx, cancel := context.WithTimeout(ctx, engine.Cfg.FetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, "GET", u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", engine.UserAgentBot)
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")
	if engine.Cfg.GithubToken != "" {
		req.Header.Set("Authorization", "Bearer "+engine.Cfg.GithubToken)
	}

	resp, err := engine.RetryHTTP(ctx, engine.DefaultRetryConfig, func() (*http.Response, error) {
		return engine.Cfg.HTTPClient.Do(req)
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("github: not found")
	case resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("github: rate limited, set GITHUB_TOKEN for higher limits")
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("github API status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
