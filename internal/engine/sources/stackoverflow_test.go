package sources

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStackOverflowStub(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/users/12345", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("site") != "stackoverflow" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		fmt.Fprint(w, `{"items":[{"display_name":"Jon","reputation":9001,"badge_counts":{"gold":2,"silver":10,"bronze":30},"location":"Earth","about_me":"<p>I write <b>answers</b></p>","creation_date":1217514151}]}`)
	})
	mux.HandleFunc("/users/12345/answers", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"items":[
			{"answer_id":111,"question_id":11,"score":42,"is_accepted":true,"creation_date":1700000000},
			{"answer_id":222,"question_id":22,"score":7,"is_accepted":false,"creation_date":1700000100},
			{"answer_id":0,"question_id":33,"score":1,"is_accepted":true,"creation_date":0}
		]}`)
	})
	mux.HandleFunc("/users/12345/questions", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"items":[
			{"title":"How do I exit vim?","score":9999,"link":"https://stackoverflow.com/q/1","creation_date":1600000000}
		]}`)
	})
	mux.HandleFunc("/users/12345/top-answer-tags", func(w http.ResponseWriter, r *http.Request) {
		var items string
		for i := 0; i < 12; i++ {
			if i > 0 {
				items += ","
			}
			items += fmt.Sprintf(`{"tag_name":"tag%d","answer_count":%d,"answer_score":%d}`, i, 12-i, 100-i)
		}
		fmt.Fprint(w, `{"items":[`+items+`]}`)
	})
	mux.HandleFunc("/users/12345/top-question-tags", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"items":[{"tag_name":"go","question_count":3,"question_score":12}]}`)
	})
	mux.HandleFunc("/users/0", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"items":[]}`)
	})
	return httptest.NewServer(mux)
}

func TestAnalyzeStackOverflowProfile(t *testing.T) {
	initTestEngine(t)
	srv := newStackOverflowStub(t)
	defer srv.Close()

	orig := stackExchangeAPIBase
	stackExchangeAPIBase = srv.URL
	defer func() { stackExchangeAPIBase = orig }()

	p, err := AnalyzeStackOverflowProfile(context.Background(), "12345")
	require.NoError(t, err)

	assert.Equal(t, "12345", p.UserID)
	assert.Equal(t, "Jon", p.DisplayName)
	assert.Equal(t, 9001, p.Reputation)
	assert.Equal(t, 2, p.BadgeCounts["gold"])
	assert.Equal(t, "I write answers", p.AboutMe, "about_me HTML stripped")
	assert.Equal(t, 3, p.Answers)
	assert.Equal(t, 1, p.Questions)

	// 2 of 3 answers accepted, one decimal.
	require.NotNil(t, p.AcceptedAnswerRate)
	assert.Equal(t, 66.7, *p.AcceptedAnswerRate)

	assert.Len(t, p.TopTags, 10, "top tags capped at 10 of 12")
	assert.Equal(t, "tag0", p.TopTags[0].TagName)
	require.Len(t, p.TopQuestionTags, 1)
	assert.Equal(t, "go", p.TopQuestionTags[0].TagName)

	require.Len(t, p.RecentQuestions, 1)
	assert.Equal(t, "How do I exit vim?", p.RecentQuestions[0].Title)

	require.Len(t, p.RecentAnswers, 3)
	assert.Equal(t, "https://stackoverflow.com/a/111", p.RecentAnswers[0].Link)
	assert.Equal(t, "https://stackoverflow.com/q/33", p.RecentAnswers[2].Link, "question link when answer id missing")
	assert.Equal(t, "", p.RecentAnswers[2].CreationDate, "zero timestamp renders empty")
	assert.NotEmpty(t, p.RecentAnswers[0].CreationDate)

	assert.NotEmpty(t, p.CreationDate)
}

func TestAnalyzeStackOverflowProfileNotFound(t *testing.T) {
	initTestEngine(t)
	srv := newStackOverflowStub(t)
	defer srv.Close()

	orig := stackExchangeAPIBase
	stackExchangeAPIBase = srv.URL
	defer func() { stackExchangeAPIBase = orig }()

	_, err := AnalyzeStackOverflowProfile(context.Background(), "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestAnalyzeStackOverflowProfileNoAnswers(t *testing.T) {
	initTestEngine(t)
	mux := http.NewServeMux()
	mux.HandleFunc("/users/7", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"items":[{"display_name":"Quiet","reputation":1}]}`)
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"items":[]}`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	orig := stackExchangeAPIBase
	stackExchangeAPIBase = srv.URL
	defer func() { stackExchangeAPIBase = orig }()

	p, err := AnalyzeStackOverflowProfile(context.Background(), "7")
	require.NoError(t, err)
	assert.Nil(t, p.AcceptedAnswerRate, "no answers means no rate, not zero")
	assert.Zero(t, p.Answers)
}

func TestUnixISO(t *testing.T) {
	assert.Equal(t, "", unixISO(0))
	assert.Equal(t, "2023-11-14T22:13:20Z", unixISO(1700000000))
}
