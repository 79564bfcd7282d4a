package engine

// LLM prompt templates — data only, no logic.

// PromptInterviewQuestions generates interview questions for a job description.
// Args: number of questions, job description, interview type.
const PromptInterviewQuestions = `You are an expert HR professional and interview coach. Generate %d high-quality interview questions for this job description:

Job Description:
%s

Interview Type: %s

For each question, provide:
1. The question text
2. Question type (behavioral/technical/situational/general)
3. Expected competencies/skills being assessed
4. Difficulty level (1-5, where 1=easy, 5=expert)
5. Suggested response time (in minutes)
6. What the interviewer is looking for

Respond with valid JSON only (no markdown, no ` + "```" + `json block): a JSON array where each question is an object with these fields:
- question: string
- type: string
- competencies: array of strings
- difficulty: integer (1-5)
- suggested_time: integer (minutes)
- looking_for: string

Make the questions:
- Relevant to the specific role and company
- Progressive in difficulty
- Mix of question types if the interview type is "mixed"
- Professional and fair
- Designed to assess both technical and soft skills

Return only the JSON array, no additional text.`

// PromptResponseAnalysis scores a candidate's answer to an interview question.
// Args: question, question type, response.
const PromptResponseAnalysis = `You are an expert interview coach and HR professional. Analyze this interview response:

Question: %s
Question Type: %s
Response: %s

Provide a comprehensive analysis in JSON format with these fields:

{
  "overall_score": integer (1-10),
  "content_quality": integer (1-10),
  "structure_clarity": integer (1-10),
  "relevance": integer (1-10),
  "specificity": integer (1-10),
  "confidence_level": integer (1-10),
  "strengths": array of strings,
  "weaknesses": array of strings,
  "specific_feedback": string,
  "improvement_suggestions": array of strings,
  "follow_up_questions": array of strings
}

Scoring criteria:
- Content Quality: How well does the response address the question?
- Structure & Clarity: Is the response well-organized and easy to follow?
- Relevance: How relevant is the response to the specific question?
- Specificity: Does the response include specific examples and details?
- Confidence Level: Does the response demonstrate confidence and conviction?

Provide constructive, actionable feedback that helps the candidate improve.

Return only the JSON object, no additional text.`

// PromptResumeRewrite rewrites resume text for clarity and ATS friendliness.
// Args: resume text.
const PromptResumeRewrite = `You are an expert career coach and professional resume writer specialized in creating resumes optimized for both humans and Applicant Tracking Systems (ATS). Your task is to rewrite the following resume text to:

Improve clarity, professionalism, and impact.

Highlight quantifiable achievements, skills, and results (whenever possible).

Use strong action verbs and concise phrasing.

Ensure the tone is confident but not exaggerated.

Maintain consistent tense (past for completed roles, present for current role).

Avoid filler words, passive voice, and vague terms.

Make the text ATS-friendly by naturally including relevant keywords.

Here is the text to rewrite: %s

Output requirements:
- Return ONLY the polished, professional version of the resume text.
- Do NOT include any explanations, lists, or sections like "Key improvements made".
- Do NOT add commentary or headings. Output must be the resume content only.`

// PromptCareerReport builds a strategic development summary from a resume.
// Args: resume text.
const PromptCareerReport = `You are a highly skilled career strategist and personal development expert. Your task is to analyze the provided resume and generate a concise, strategic summary that guides the individual's career planning and professional growth. This summary should be insightful, empathetic, and highly actionable.

Structure your analysis with three distinct sections, using the following headings:

### Strengths
Highlight the individual's core competencies, unique value proposition, and significant achievements. Identify transferable skills and quantifiable successes that can be leveraged for future roles.

### Areas for Growth
Identify key skills, knowledge, or experiences that are missing or could be developed to advance their career. These should be framed as opportunities rather than weaknesses, aligning with their stated or implied career goals.

### Actionable Recommendations
Provide a clear, step-by-step plan. Offer specific and practical advice, such as a list of relevant certifications, technical skills to learn, networking strategies, or types of projects to pursue. Ensure these recommendations directly address the identified areas for growth and help the individual achieve their career aspirations.

---

Resume:
%s

Strategic Summary:`

// PromptAggregateReport synthesizes a career insights report from several sources.
// Args: resume summary, interview profile, github, stackoverflow, job market.
const PromptAggregateReport = `You are an expert career strategist. Create a concise, action-oriented Career Insights Report synthesizing the provided sources. Use clear headings, short paragraphs, and bullet points. Avoid fluff.

Include these sections:

### Snapshot
- One-paragraph overview of candidate strengths and target roles.

### Public Footprint Highlights
- Summarize notable contributions/activities across GitHub and StackOverflow.

### Strengths
- Concrete skills, achievements, and differentiators.

### Areas for Growth
- Gaps to close for target roles. Keep constructive and specific.

### Job Market Readiness (Region-aware)
- Brief on role-market fit and region considerations from job data.

### Action Plan (next 30-60 days)
- 5-8 specific, high-impact actions (learning, projects, networking, certifications).

---
Resume summary:
%s

Interview profile:
%s

GitHub:
%s

StackOverflow:
%s

Job market:
%s

Report:`

// PromptRegionalInsights summarizes a regional tech job market for a role.
// Args: current date, region, in-demand technologies, remote share percent, target role.
const PromptRegionalInsights = `You are a regional tech job market analyst. Current date: %s.

Region: %s
In-demand technologies in this region: %s
Estimated remote-work share: %d%%
Target role: %s

Write a concise market brief (4-6 short paragraphs or bullet groups) covering:
- Demand outlook for the target role in this region
- Which of the in-demand technologies matter most for the role
- Remote vs on-site expectations
- Networking and hiring-culture notes for the region
- 3-5 concrete positioning tips for a candidate

Plain text with simple headings. No markdown tables. Do not invent statistics beyond the inputs; qualify estimates as estimates.`
