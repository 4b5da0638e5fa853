package models

import "time"

// APIResponse is the envelope every endpoint returns.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthUser struct {
	ID    uint    `json:"id"`
	Name  *string `json:"name"`
	Email string  `json:"email"`
	Role  string  `json:"role"`
}

type AuthData struct {
	User        AuthUser `json:"user"`
	AccessToken string   `json:"accessToken"`
}

type UploadData struct {
	ID         uint      `json:"id"`
	FileURL    string    `json:"fileUrl"`
	FileType   string    `json:"fileType"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// CVFeedback is the five-part structured feedback the scoring model returns.
type CVFeedback struct {
	SkillsAlignment     string `json:"skillsAlignment"`
	ExperienceRelevance string `json:"experienceRelevance"`
	EducationFit        string `json:"educationFit"`
	OverallStrengths    string `json:"overallStrengths"`
	AreasForImprovement string `json:"areasForImprovement"`
}

// MatchResult is the scoring client's output: a 0-100 score plus feedback.
type MatchResult struct {
	Score    int        `json:"score"`
	Feedback CVFeedback `json:"feedback"`
}

type SuccessfulFile struct {
	ID       uint       `json:"id"`
	FileName string     `json:"fileName"`
	FileURL  string     `json:"fileUrl"`
	Score    int        `json:"score"`
	Feedback CVFeedback `json:"feedback"`
}

type FailedFile struct {
	FileName string `json:"fileName"`
	Error    string `json:"error"`
}

// ComparisonData is the comparison endpoint's response payload.
type ComparisonData struct {
	FilesProcessed   int              `json:"filesProcessed"`
	TotalFiles       int              `json:"totalFiles"`
	SuccessfulFiles  []SuccessfulFile `json:"successfulFiles"`
	FailedFiles      []FailedFile     `json:"failedFiles"`
	JobDescription   string           `json:"jobDescription"`
	JobDescriptionID *uint            `json:"jobDescriptionId,omitempty"`
}
