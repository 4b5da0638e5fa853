package services

import (
	"context"
	"errors"
	"testing"
	"time"
)

type stubGemini struct {
	responses []string
	errs      []error
	calls     int

	lastPrompt string
}

func (s *stubGemini) GenerateText(_ context.Context, prompt string, _ float32) (string, error) {
	s.lastPrompt = prompt
	idx := s.calls
	s.calls++

	var err error
	if idx < len(s.errs) {
		err = s.errs[idx]
	}
	if err != nil {
		return "", err
	}

	if idx < len(s.responses) {
		return s.responses[idx], nil
	}
	return s.responses[len(s.responses)-1], nil
}

const validScoreJSON = `{
  "score": 85,
  "feedback": {
    "skillsAlignment": "Strong match",
    "experienceRelevance": "Relevant",
    "educationFit": "Good",
    "overallStrengths": "Solid",
    "areasForImprovement": "Leadership"
  }
}`

func TestScoreMatchParsesValidResponse(t *testing.T) {
	stub := &stubGemini{responses: []string{validScoreJSON}}
	scorer := NewMatchScorer(stub, time.Second, 1)

	result := scorer.ScoreMatch(context.Background(), "cv text", "jd text")

	if result.Score != 85 {
		t.Errorf("Score = %d, want 85", result.Score)
	}
	if result.Feedback.SkillsAlignment != "Strong match" {
		t.Errorf("SkillsAlignment = %q", result.Feedback.SkillsAlignment)
	}
	if stub.lastPrompt == "" {
		t.Fatal("expected prompt to be sent")
	}
}

func TestScoreMatchStripsMarkdownFences(t *testing.T) {
	stub := &stubGemini{responses: []string{"Here is my analysis:\n```json\n" + validScoreJSON + "\n```"}}
	scorer := NewMatchScorer(stub, time.Second, 1)

	result := scorer.ScoreMatch(context.Background(), "cv", "jd")

	if result.Score != 85 {
		t.Errorf("Score = %d, want 85", result.Score)
	}
}

func TestScoreMatchDegradedOnError(t *testing.T) {
	stub := &stubGemini{errs: []error{errors.New("quota exceeded")}, responses: []string{""}}
	scorer := NewMatchScorer(stub, time.Second, 1)

	result := scorer.ScoreMatch(context.Background(), "cv", "jd")

	if result.Score != 0 {
		t.Errorf("Score = %d, want 0", result.Score)
	}
	if result.Feedback.SkillsAlignment != unableToAnalyze {
		t.Errorf("SkillsAlignment = %q, want degraded message", result.Feedback.SkillsAlignment)
	}
	if result.Feedback.AreasForImprovement != unableToAnalyze {
		t.Errorf("AreasForImprovement = %q, want degraded message", result.Feedback.AreasForImprovement)
	}
}

func TestScoreMatchDegradedOnInvalidPayload(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"not json", "the candidate looks great"},
		{"score out of range", `{"score": 150, "feedback": {"skillsAlignment": "a", "experienceRelevance": "b", "educationFit": "c", "overallStrengths": "d", "areasForImprovement": "e"}}`},
		{"negative score", `{"score": -5, "feedback": {"skillsAlignment": "a", "experienceRelevance": "b", "educationFit": "c", "overallStrengths": "d", "areasForImprovement": "e"}}`},
		{"missing feedback field", `{"score": 50, "feedback": {"skillsAlignment": "a", "experienceRelevance": "b", "educationFit": "c", "overallStrengths": "d"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubGemini{responses: []string{tt.response}}
			scorer := NewMatchScorer(stub, time.Second, 1)

			result := scorer.ScoreMatch(context.Background(), "cv", "jd")

			if result.Score != 0 {
				t.Errorf("Score = %d, want 0", result.Score)
			}
			if result.Feedback.EducationFit != unableToAnalyze {
				t.Errorf("EducationFit = %q, want degraded message", result.Feedback.EducationFit)
			}
		})
	}
}

func TestScoreMatchRetriesThenSucceeds(t *testing.T) {
	stub := &stubGemini{
		errs:      []error{errors.New("transient"), nil},
		responses: []string{"", validScoreJSON},
	}
	scorer := NewMatchScorer(stub, time.Second, 2)

	result := scorer.ScoreMatch(context.Background(), "cv", "jd")

	if stub.calls != 2 {
		t.Errorf("calls = %d, want 2", stub.calls)
	}
	if result.Score != 85 {
		t.Errorf("Score = %d, want 85", result.Score)
	}
}
