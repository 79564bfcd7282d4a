package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/anatolykoptev/go-kit/llm"

	"github.com/anatolykoptev/go_career/internal/engine"
)

// InterviewQuestion is one generated question with assessment metadata.
type InterviewQuestion struct {
	Question      string   `json:"question"`
	Type          string   `json:"type"`
	Competencies  []string `json:"competencies"`
	Difficulty    int      `json:"difficulty"`
	SuggestedTime int      `json:"suggested_time"`
	LookingFor    string   `json:"looking_for"`
}

// ResponseAnalysis scores a candidate's answer on a 1-10 scale per axis.
type ResponseAnalysis struct {
	OverallScore           int      `json:"overall_score"`
	ContentQuality         int      `json:"content_quality"`
	StructureClarity       int      `json:"structure_clarity"`
	Relevance              int      `json:"relevance"`
	Specificity            int      `json:"specificity"`
	ConfidenceLevel        int      `json:"confidence_level"`
	Strengths              []string `json:"strengths"`
	Weaknesses             []string `json:"weaknesses"`
	SpecificFeedback       string   `json:"specific_feedback"`
	ImprovementSuggestions []string `json:"improvement_suggestions"`
	FollowUpQuestions      []string `json:"follow_up_questions"`
}

// InterviewProfile aggregates all response analyses of a session.
type InterviewProfile struct {
	PerformanceLevel       string             `json:"performance_level"`
	PerformanceDescription string             `json:"performance_description"`
	AverageScores          map[string]float64 `json:"average_scores"`
	TopStrengths           []string           `json:"top_strengths"`
	KeyWeaknesses          []string           `json:"key_weaknesses"`
	ImprovementAreas       []string           `json:"improvement_areas"`
	TotalQuestions         int                `json:"total_questions"`
	Recommendations        []string           `json:"recommendations"`
	NextSteps              []string           `json:"next_steps"`
}

// GenerateQuestions asks the LLM for role-specific interview questions,
// falling back to a fixed generic set when generation or parsing fails.
func GenerateQuestions(ctx context.Context, jobDescription, interviewType string, numQuestions int) []InterviewQuestion {
	engine.IncrInterviewSessions()

	if interviewType == "" {
		interviewType = "mixed"
	}
	if numQuestions <= 0 {
		numQuestions = 8
	}

	prompt := fmt.Sprintf(engine.PromptInterviewQuestions, numQuestions, jobDescription, interviewType)
	questions, err := engine.PromptJSON[[]InterviewQuestion](ctx, prompt,
		llm.WithChatTemperature(0.7),
	)
	if err != nil || questions == nil || len(*questions) == 0 {
		slog.Warn("interview: question generation failed, using fallback", slog.Any("error", err))
		return fallbackQuestions(numQuestions)
	}

	qs := *questions
	if len(qs) > numQuestions {
		qs = qs[:numQuestions]
	}
	return qs
}

// AnalyzeResponse scores a candidate answer via the LLM with a neutral
// fallback analysis when the LLM is unavailable or returns junk.
func AnalyzeResponse(ctx context.Context, question, response, questionType string) ResponseAnalysis {
	if questionType == "" {
		questionType = "general"
	}

	prompt := fmt.Sprintf(engine.PromptResponseAnalysis, question, questionType, response)
	analysis, err := engine.PromptJSON[ResponseAnalysis](ctx, prompt,
		llm.WithChatTemperature(0.3),
	)
	if err != nil {
		slog.Warn("interview: response analysis failed, using fallback", slog.Any("error", err))
		return fallbackAnalysis()
	}

	a := *analysis
	a.OverallScore = clampScore(a.OverallScore)
	a.ContentQuality = clampScore(a.ContentQuality)
	a.StructureClarity = clampScore(a.StructureClarity)
	a.Relevance = clampScore(a.Relevance)
	a.Specificity = clampScore(a.Specificity)
	a.ConfidenceLevel = clampScore(a.ConfidenceLevel)
	return a
}

// clampScore bounds a score to the 1-10 scale.
func clampScore(n int) int {
	if n < 1 {
		return 1
	}
	if n > 10 {
		return 10
	}
	return n
}

// GenerateInterviewProfile aggregates per-response analyses into a session
// profile. Computed locally; no LLM call.
func GenerateInterviewProfile(responses []ResponseAnalysis) (InterviewProfile, error) {
	if len(responses) == 0 {
		return InterviewProfile{}, fmt.Errorf("no responses provided for analysis")
	}

	n := float64(len(responses))
	avg := map[string]float64{
		"overall_score":     0,
		"content_quality":   0,
		"structure_clarity": 0,
		"relevance":         0,
		"specificity":       0,
		"confidence_level":  0,
	}
	var strengths, weaknesses, improvements []string
	for _, r := range responses {
		avg["overall_score"] += float64(r.OverallScore)
		avg["content_quality"] += float64(r.ContentQuality)
		avg["structure_clarity"] += float64(r.StructureClarity)
		avg["relevance"] += float64(r.Relevance)
		avg["specificity"] += float64(r.Specificity)
		avg["confidence_level"] += float64(r.ConfidenceLevel)
		strengths = append(strengths, r.Strengths...)
		weaknesses = append(weaknesses, r.Weaknesses...)
		improvements = append(improvements, r.ImprovementSuggestions...)
	}
	for k := range avg {
		avg[k] /= n
	}

	level, description := performanceLevel(avg["overall_score"])

	return InterviewProfile{
		PerformanceLevel:       level,
		PerformanceDescription: description,
		AverageScores:          avg,
		TopStrengths:           mostCommon(strengths, 5),
		KeyWeaknesses:          mostCommon(weaknesses, 5),
		ImprovementAreas:       mostCommon(improvements, 5),
		TotalQuestions:         len(responses),
		Recommendations:        recommendations(avg, weaknesses),
		NextSteps:              nextSteps(level),
	}, nil
}

func performanceLevel(overall float64) (string, string) {
	switch {
	case overall >= 8:
		return "Excellent", "Outstanding interview performance with strong communication and relevant examples."
	case overall >= 6:
		return "Good", "Solid interview performance with room for improvement in specific areas."
	case overall >= 4:
		return "Fair", "Basic interview performance with several areas needing development."
	default:
		return "Needs Improvement", "Interview performance requires significant improvement and practice."
	}
}

// mostCommon returns up to limit items ordered by frequency, ties broken by
// first appearance.
func mostCommon(items []string, limit int) []string {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	var uniq []string
	for i, it := range items {
		if counts[it] == 0 {
			firstSeen[it] = i
			uniq = append(uniq, it)
		}
		counts[it]++
	}
	sort.SliceStable(uniq, func(i, j int) bool {
		if counts[uniq[i]] != counts[uniq[j]] {
			return counts[uniq[i]] > counts[uniq[j]]
		}
		return firstSeen[uniq[i]] < firstSeen[uniq[j]]
	})
	if len(uniq) > limit {
		uniq = uniq[:limit]
	}
	return uniq
}

func recommendations(scores map[string]float64, weaknesses []string) []string {
	var recs []string
	if scores["structure_clarity"] < 6 {
		recs = append(recs, "Practice structuring your responses using frameworks like STAR (Situation, Task, Action, Result)")
	}
	if scores["specificity"] < 6 {
		recs = append(recs, "Include more specific examples, metrics, and quantifiable results in your responses")
	}
	if scores["confidence_level"] < 6 {
		recs = append(recs, "Work on projecting confidence through practice and preparation")
	}
	if scores["content_quality"] < 6 {
		recs = append(recs, "Focus on directly addressing the question asked and staying on topic")
	}

	lower := strings.ToLower(strings.Join(weaknesses, " "))
	if strings.Contains(lower, "communication") {
		recs = append(recs, "Practice clear and concise communication")
	}
	if strings.Contains(lower, "examples") {
		recs = append(recs, "Prepare specific examples for common behavioral questions")
	}

	if len(recs) > 5 {
		recs = recs[:5]
	}
	return recs
}

func nextSteps(level string) []string {
	switch level {
	case "Excellent":
		return []string{
			"Continue practicing to maintain your strong performance",
			"Consider advanced interview techniques and leadership scenarios",
			"Help others improve their interview skills",
		}
	case "Good":
		return []string{
			"Focus on the identified improvement areas",
			"Practice with mock interviews",
			"Prepare more specific examples for common questions",
		}
	default:
		return []string{
			"Dedicate time to interview preparation and practice",
			"Work on fundamental communication skills",
			"Consider professional interview coaching",
			"Practice with friends or mentors",
		}
	}
}

func fallbackQuestions(numQuestions int) []InterviewQuestion {
	qs := []InterviewQuestion{
		{
			Question:      "Tell me about yourself and your relevant experience for this role.",
			Type:          "general",
			Competencies:  []string{"communication", "self-presentation", "experience"},
			Difficulty:    2,
			SuggestedTime: 3,
			LookingFor:    "Clear communication, relevant experience, confidence",
		},
		{
			Question:      "What interests you most about this position and our company?",
			Type:          "general",
			Competencies:  []string{"motivation", "research", "cultural-fit"},
			Difficulty:    2,
			SuggestedTime: 2,
			LookingFor:    "Genuine interest, company knowledge, motivation",
		},
		{
			Question:      "Describe a challenging project you worked on and how you overcame obstacles.",
			Type:          "behavioral",
			Competencies:  []string{"problem-solving", "persistence", "project-management"},
			Difficulty:    3,
			SuggestedTime: 4,
			LookingFor:    "Problem-solving approach, resilience, specific examples",
		},
		{
			Question:      "How do you handle working under pressure or tight deadlines?",
			Type:          "behavioral",
			Competencies:  []string{"stress-management", "time-management", "prioritization"},
			Difficulty:    3,
			SuggestedTime: 3,
			LookingFor:    "Stress management strategies, time management skills",
		},
		{
			Question:      "Tell me about a time you had to learn something new quickly.",
			Type:          "behavioral",
			Competencies:  []string{"learning-agility", "adaptability", "initiative"},
			Difficulty:    3,
			SuggestedTime: 3,
			LookingFor:    "Learning approach, adaptability, initiative",
		},
		{
			Question:      "Describe a situation where you had to work with a difficult team member.",
			Type:          "behavioral",
			Competencies:  []string{"teamwork", "conflict-resolution", "communication"},
			Difficulty:    4,
			SuggestedTime: 4,
			LookingFor:    "Conflict resolution skills, emotional intelligence",
		},
		{
			Question:      "What are your greatest strengths and how do they apply to this role?",
			Type:          "general",
			Competencies:  []string{"self-awareness", "role-relevance", "communication"},
			Difficulty:    2,
			SuggestedTime: 3,
			LookingFor:    "Self-awareness, role alignment, specific examples",
		},
		{
			Question:      "Where do you see yourself in 5 years?",
			Type:          "general",
			Competencies:  []string{"career-planning", "ambition", "goal-setting"},
			Difficulty:    2,
			SuggestedTime: 2,
			LookingFor:    "Career vision, ambition, realistic planning",
		},
	}
	if numQuestions < len(qs) {
		qs = qs[:numQuestions]
	}
	return qs
}

func fallbackAnalysis() ResponseAnalysis {
	return ResponseAnalysis{
		OverallScore:     6,
		ContentQuality:   6,
		StructureClarity: 6,
		Relevance:        6,
		Specificity:      6,
		ConfidenceLevel:  6,
		Strengths:        []string{"Response provided", "Attempted to address question"},
		Weaknesses:       []string{"Could use more specific examples", "Structure could be improved"},
		SpecificFeedback: "Thank you for your response. Consider adding more specific examples and structuring your answer with clear points.",
		ImprovementSuggestions: []string{
			"Use the STAR method (Situation, Task, Action, Result) for behavioral questions",
			"Include specific examples and metrics when possible",
			"Structure your response with clear beginning, middle, and end",
		},
		FollowUpQuestions: []string{
			"Can you provide a specific example?",
			"What was the outcome of that situation?",
		},
	}
}
