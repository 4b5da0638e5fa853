package services

import "fmt"

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

const comparisonInstructions = `You are an expert HR professional and recruitment specialist. Your task is to carefully analyze a CV against a job description and provide a structured and realistic evaluation.

Your analysis must be tightly coupled with the specific requirements and language in the job description. Score should reflect how well the candidate's profile aligns with the actual needs of the role, especially in terms of domain relevance.

GENERAL RULES:
- Evaluate based on how well the skills, experience, and education align with the job description as written, not in isolation.
- Do not use fixed weights. Instead, derive importance from the JD itself:
  - If the JD emphasizes experience: prioritize that.
  - If the JD requires a degree in a specific field: treat missing it as a major issue.
  - If the JD says degree is optional or unspecified: focus more on practical skills and experience.
- Reward adjacent domain knowledge only if it could realistically transfer (e.g., frontend dev applying to backend role gets partial credit).

SCORING LOGIC (Guideline):
- Score must range between 0 (completely irrelevant) to 100 (perfect match).
- Low scores (0-30): Candidate has little or no relevant skills/education/experience.
- Medium scores (31-70): Some relevant overlap, but gaps exist in key areas.
- High scores (71-100): Strong match in key areas and minimal gaps.
- Education mismatch in a field-requiring JD = score should be heavily penalized.
- Experience mismatch in a field-requiring JD = score must reflect that gap.
- Degree not required? Don't penalize if the candidate has strong hands-on experience.

IMPORTANT: If the candidate has no domain-relevant experience or education, the score should NOT exceed 40 - even if they show good general qualities (like discipline or communication). Penalize mismatches realistically.

Please respond in the following JSON format only:
{
  "score": 85,
  "feedback": {
    "skillsAlignment": "Strong match in React, Node.js, and database technologies...",
    "experienceRelevance": "5 years of relevant experience in web development...",
    "educationFit": "Bachelor's degree in Computer Science aligns well...",
    "overallStrengths": "Excellent technical skills, good project experience...",
    "areasForImprovement": "Could highlight leadership experience and soft skills..."
  }
}`

// BuildComparisonPrompt embeds the CV text and job description into the fixed
// evaluation instruction template.
func (pb *PromptBuilder) BuildComparisonPrompt(cvText, jobDescription string) string {
	return fmt.Sprintf(`%s
CV Content:
%s

Job Description:
%s

Analysis:`, comparisonInstructions, cvText, jobDescription)
}
