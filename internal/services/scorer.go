package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Sehar1999/applicant-tracking-system/internal/models"
)

const scoringTemperature = 0.3

// retryDelays is the backoff schedule between scoring attempts.
var retryDelays = []time.Duration{1 * time.Second, 2 * time.Second, 5 * time.Second}

const unableToAnalyze = "Unable to analyze due to processing error"

// MatchScorer evaluates a CV against a job description. ScoreMatch never
// fails: any remote or parsing problem yields a degraded zero-score result so
// one document's scoring trouble cannot abort a batch.
type MatchScorer interface {
	ScoreMatch(ctx context.Context, cvText, jobDescription string) *models.MatchResult
}

type matchScorer struct {
	gemini        GeminiService
	promptBuilder *PromptBuilder
	timeout       time.Duration
	maxAttempts   int
}

func NewMatchScorer(gemini GeminiService, timeout time.Duration, maxAttempts int) MatchScorer {
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	return &matchScorer{
		gemini:        gemini,
		promptBuilder: NewPromptBuilder(),
		timeout:       timeout,
		maxAttempts:   maxAttempts,
	}
}

// ScoreMatch implements MatchScorer.
func (m *matchScorer) ScoreMatch(ctx context.Context, cvText, jobDescription string) *models.MatchResult {
	prompt := m.promptBuilder.BuildComparisonPrompt(CleanText(cvText), jobDescription)

	result, err := m.scoreWithRetry(ctx, prompt)
	if err != nil {
		log.Printf("⚠️  Scoring failed, returning degraded result: %v\n", err)
		return degradedResult()
	}

	return result
}

func (m *matchScorer) scoreWithRetry(ctx context.Context, prompt string) (*models.MatchResult, error) {
	var lastErr error

	for attempt := 1; attempt <= m.maxAttempts; attempt++ {
		result, err := m.scoreOnce(ctx, prompt)
		if err == nil {
			return result, nil
		}

		lastErr = err

		if attempt >= m.maxAttempts {
			break
		}

		delay := retryDelays[len(retryDelays)-1]
		if attempt-1 < len(retryDelays) {
			delay = retryDelays[attempt-1]
		}

		log.Printf("⚠️  Scoring attempt %d failed: %v. Retrying in %s...\n", attempt, err, delay)

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("context cancelled: %w", ctx.Err())
		case <-time.After(delay):
		}
	}

	return nil, fmt.Errorf("failed after %d attempts: %w", m.maxAttempts, lastErr)
}

func (m *matchScorer) scoreOnce(ctx context.Context, prompt string) (*models.MatchResult, error) {
	callCtx := ctx
	if m.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}

	response, err := m.gemini.GenerateText(callCtx, prompt, scoringTemperature)
	if err != nil {
		return nil, fmt.Errorf("failed to generate evaluation: %w", err)
	}

	var result models.MatchResult
	if err := parseJSONResponse(response, &result); err != nil {
		return nil, fmt.Errorf("failed to parse evaluation response: %w", err)
	}

	if err := validateMatchResult(&result); err != nil {
		return nil, fmt.Errorf("invalid evaluation response: %w", err)
	}

	return &result, nil
}

func validateMatchResult(result *models.MatchResult) error {
	if result.Score < 0 || result.Score > 100 {
		return fmt.Errorf("score %d out of range [0,100]", result.Score)
	}

	fields := map[string]string{
		"skillsAlignment":     result.Feedback.SkillsAlignment,
		"experienceRelevance": result.Feedback.ExperienceRelevance,
		"educationFit":        result.Feedback.EducationFit,
		"overallStrengths":    result.Feedback.OverallStrengths,
		"areasForImprovement": result.Feedback.AreasForImprovement,
	}
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("missing feedback field %q", name)
		}
	}

	return nil
}

func degradedResult() *models.MatchResult {
	return &models.MatchResult{
		Score: 0,
		Feedback: models.CVFeedback{
			SkillsAlignment:     unableToAnalyze,
			ExperienceRelevance: unableToAnalyze,
			EducationFit:        unableToAnalyze,
			OverallStrengths:    unableToAnalyze,
			AreasForImprovement: unableToAnalyze,
		},
	}
}

func parseJSONResponse(response string, target interface{}) error {
	// The model may wrap its JSON in markdown fences
	jsonStr := extractJSON(response)

	if err := json.Unmarshal([]byte(jsonStr), target); err != nil {
		return fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	return nil
}

// extractJSON pulls a JSON object or array out of text that might contain
// markdown or other formatting around it.
func extractJSON(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	startObj := strings.Index(text, "{")
	startArr := strings.Index(text, "[")
	endObj := strings.LastIndex(text, "}")
	endArr := strings.LastIndex(text, "]")

	if startObj != -1 && endObj != -1 && endObj > startObj {
		return text[startObj : endObj+1]
	} else if startArr != -1 && endArr != -1 && endArr > startArr {
		return text[startArr : endArr+1]
	}

	return text
}
