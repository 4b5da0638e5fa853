package services

import "github.com/Sehar1999/applicant-tracking-system/internal/models"

// AssembleReport partitions per-document outcomes into the comparison
// response payload. Pure aggregation: outcome order is preserved within each
// list, so completion timing never shows in the output.
func AssembleReport(outcomes []DocumentOutcome, totalFiles int, jobDescription string, jobDescriptionID *uint) *models.ComparisonData {
	successfulFiles := make([]models.SuccessfulFile, 0, len(outcomes))
	failedFiles := make([]models.FailedFile, 0)

	for _, outcome := range outcomes {
		switch {
		case outcome.Success != nil:
			successfulFiles = append(successfulFiles, *outcome.Success)
		case outcome.Failure != nil:
			failedFiles = append(failedFiles, *outcome.Failure)
		}
	}

	return &models.ComparisonData{
		FilesProcessed:   len(successfulFiles),
		TotalFiles:       totalFiles,
		SuccessfulFiles:  successfulFiles,
		FailedFiles:      failedFiles,
		JobDescription:   jobDescription,
		JobDescriptionID: jobDescriptionID,
	}
}
