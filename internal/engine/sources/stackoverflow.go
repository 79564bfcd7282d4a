package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/anatolykoptev/go_career/internal/engine"
)

// stackExchangeAPIBase is a var so tests can point it at a local server.
var stackExchangeAPIBase = "https://api.stackexchange.com/2.3"

// StackOverflowProfile is the aggregated public footprint of a Stack
// Overflow user.
type StackOverflowProfile struct {
	UserID             string         `json:"user_id"`
	DisplayName        string         `json:"display_name,omitempty"`
	Reputation         int            `json:"reputation"`
	BadgeCounts        map[string]int `json:"badge_counts"`
	ProfileImage       string         `json:"profile_image,omitempty"`
	Location           string         `json:"location,omitempty"`
	WebsiteURL         string         `json:"website_url,omitempty"`
	AboutMe            string         `json:"about_me,omitempty"`
	ViewCount          int            `json:"view_count"`
	CreationDate       string         `json:"creation_date,omitempty"`
	LastAccessDate     string         `json:"last_access_date,omitempty"`
	Answers            int            `json:"answers"`
	Questions          int            `json:"questions"`
	AcceptedAnswerRate *float64       `json:"accepted_answer_rate"`
	TopTags            []AnswerTag    `json:"top_tags"`
	TopQuestionTags    []QuestionTag  `json:"top_question_tags"`
	RecentQuestions    []RecentPost   `json:"recent_questions"`
	RecentAnswers      []RecentPost   `json:"recent_answers"`
}

// AnswerTag summarizes a user's answering activity in one tag.
type AnswerTag struct {
	TagName     string `json:"tag_name"`
	AnswerCount int    `json:"answer_count"`
	AnswerScore int    `json:"answer_score"`
}

// QuestionTag summarizes a user's asking activity in one tag.
type QuestionTag struct {
	TagName       string `json:"tag_name"`
	QuestionCount int    `json:"question_count"`
	QuestionScore int    `json:"question_score"`
}

// RecentPost is a recent question or answer with a direct link.
type RecentPost struct {
	Title        string `json:"title,omitempty"`
	Score        int    `json:"score"`
	Link         string `json:"link,omitempty"`
	CreationDate string `json:"creation_date,omitempty"`
}

type soUser struct {
	DisplayName    string         `json:"display_name"`
	Reputation     int            `json:"reputation"`
	BadgeCounts    map[string]int `json:"badge_counts"`
	ProfileImage   string         `json:"profile_image"`
	Location       string         `json:"location"`
	WebsiteURL     string         `json:"website_url"`
	AboutMe        string         `json:"about_me"`
	ViewCount      int            `json:"view_count"`
	CreationDate   int64          `json:"creation_date"`
	LastAccessDate int64          `json:"last_access_date"`
}

type soAnswer struct {
	AnswerID     int64 `json:"answer_id"`
	QuestionID   int64 `json:"question_id"`
	Score        int   `json:"score"`
	IsAccepted   bool  `json:"is_accepted"`
	CreationDate int64 `json:"creation_date"`
}

type soQuestion struct {
	Title        string `json:"title"`
	Score        int    `json:"score"`
	Link         string `json:"link"`
	CreationDate int64  `json:"creation_date"`
}

type soAnswerTag struct {
	TagName     string `json:"tag_name"`
	AnswerCount int    `json:"answer_count"`
	AnswerScore int    `json:"answer_score"`
}

type soQuestionTag struct {
	TagName       string `json:"tag_name"`
	QuestionCount int    `json:"question_count"`
	QuestionScore int    `json:"question_score"`
}

// AnalyzeStackOverflowProfile aggregates a user's Stack Overflow footprint:
// core profile, first 100 answers/questions, acceptance rate and top tags.
// Tag and post lookups degrade leniently; the user lookup is fatal.
func AnalyzeStackOverflowProfile(ctx context.Context, userID string) (*StackOverflowProfile, error) {
	engine.IncrStackOverflowRequests()

	var users []soUser
	if err := soGet(ctx, "/users/"+url.PathEscape(userID), nil, &users); err != nil {
		return nil, fmt.Errorf("stackoverflow user %s: %w", userID, err)
	}
	if len(users) == 0 {
		return nil, fmt.Errorf("stackoverflow user %s not found", userID)
	}
	user := users[0]

	listParams := url.Values{"pagesize": {"100"}, "order": {"desc"}, "sort": {"activity"}}
	var answers []soAnswer
	if err := soGet(ctx, "/users/"+url.PathEscape(userID)+"/answers", listParams, &answers); err != nil {
		answers = nil
	}
	var questions []soQuestion
	if err := soGet(ctx, "/users/"+url.PathEscape(userID)+"/questions", listParams, &questions); err != nil {
		questions = nil
	}

	var acceptedRate *float64
	if len(answers) > 0 {
		accepted := 0
		for _, a := range answers {
			if a.IsAccepted {
				accepted++
			}
		}
		rate := float64(accepted) / float64(len(answers)) * 100
		rate = float64(int(rate*10+0.5)) / 10 // one decimal
		acceptedRate = &rate
	}

	var answerTags []soAnswerTag
	if err := soGet(ctx, "/users/"+url.PathEscape(userID)+"/top-answer-tags", nil, &answerTags); err != nil {
		answerTags = nil
	}
	var questionTags []soQuestionTag
	if err := soGet(ctx, "/users/"+url.PathEscape(userID)+"/top-question-tags", nil, &questionTags); err != nil {
		questionTags = nil
	}

	topTags := make([]AnswerTag, 0, 10)
	for i, t := range answerTags {
		if i >= 10 {
			break
		}
		topTags = append(topTags, AnswerTag(t))
	}
	topQTags := make([]QuestionTag, 0, 10)
	for i, t := range questionTags {
		if i >= 10 {
			break
		}
		topQTags = append(topQTags, QuestionTag(t))
	}

	recentQuestions := make([]RecentPost, 0, 5)
	for i, q := range questions {
		if i >= 5 {
			break
		}
		recentQuestions = append(recentQuestions, RecentPost{
			Title: q.Title, Score: q.Score, Link: q.Link,
			CreationDate: unixISO(q.CreationDate),
		})
	}
	recentAnswers := make([]RecentPost, 0, 5)
	for i, a := range answers {
		if i >= 5 {
			break
		}
		link := ""
		switch {
		case a.AnswerID != 0:
			link = fmt.Sprintf("https://stackoverflow.com/a/%d", a.AnswerID)
		case a.QuestionID != 0:
			link = fmt.Sprintf("https://stackoverflow.com/q/%d", a.QuestionID)
		}
		recentAnswers = append(recentAnswers, RecentPost{
			Score: a.Score, Link: link,
			CreationDate: unixISO(a.CreationDate),
		})
	}

	return &StackOverflowProfile{
		UserID:             userID,
		DisplayName:        user.DisplayName,
		Reputation:         user.Reputation,
		BadgeCounts:        user.BadgeCounts,
		ProfileImage:       user.ProfileImage,
		Location:           user.Location,
		WebsiteURL:         user.WebsiteURL,
		AboutMe:            engine.TruncateAtWord(engine.CleanHTML(user.AboutMe), 500),
		ViewCount:          user.ViewCount,
		CreationDate:       unixISO(user.CreationDate),
		LastAccessDate:     unixISO(user.LastAccessDate),
		Answers:            len(answers),
		Questions:          len(questions),
		AcceptedAnswerRate: acceptedRate,
		TopTags:            topTags,
		TopQuestionTags:    topQTags,
		RecentQuestions:    recentQuestions,
		RecentAnswers:      recentAnswers,
	}, nil
}

// unixISO formats a Unix timestamp as ISO 8601 UTC, or "" for zero.
func unixISO(ts int64) string {
	if ts == 0 {
		return ""
	}
	return time.Unix(ts, 0).UTC().Format(time.RFC3339)
}

// soGet queries the Stack Exchange API and decodes the items wrapper into out.
func soGet(ctx context.Context, path string, params url.Values, out any) error {
	ctx, cancel := context.WithTimeout(ctx, engine.Cfg.FetchTimeout)
	defer cancel()

	q := url.Values{"site": {"stackoverflow"}}
	for k, vs := range params {
		q[k] = vs
	}
	if engine.Cfg.StackExchangeKey != "" {
		q.Set("key", engine.Cfg.StackExchangeKey)
	}

	req, err := http.NewRequestWithContext(ctx, "GET", stackExchangeAPIBase+path+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", engine.UserAgentBot)

	resp, err := engine.RetryHTTP(ctx, engine.DefaultRetryConfig, func() (*http.Response, error) {
		return engine.Cfg.HTTPClient.Do(req)
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("stackexchange API status %d", resp.StatusCode)
	}

	var wrapper struct {
		Items json.RawMessage `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&wrapper); err != nil {
		return err
	}
	if wrapper.Items == nil {
		return nil
	}
	return json.Unmarshal(wrapper.Items, out)
}
