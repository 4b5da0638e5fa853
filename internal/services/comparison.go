package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/Sehar1999/applicant-tracking-system/internal/models"
	"github.com/Sehar1999/applicant-tracking-system/internal/repositories"
)

// ValidationError is a request-level precondition failure. It aborts the
// whole comparison before anything is processed; every other failure becomes
// a per-document outcome instead.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ComparisonRequest is the normalized comparison input: exactly one job
// description source plus a mixed set of stored references and fresh uploads.
type ComparisonRequest struct {
	JobDescription   string
	JobDescriptionID *uint
	FileIDs          []uint
	Uploads          []RawUpload
}

// DocumentOutcome is the terminal state of one document's pipeline.
type DocumentOutcome struct {
	Success *models.SuccessfulFile
	Failure *models.FailedFile
}

type ComparisonService interface {
	Compare(ctx context.Context, user *models.User, req ComparisonRequest) (*models.ComparisonData, error)
}

type comparisonService struct {
	jdRepo         repositories.JobDescriptionRepository
	attachmentRepo repositories.AttachmentRepository
	blobStore      BlobStore
	resolver       FileResolver
	extractor      TextExtractor
	scorer         MatchScorer
}

func NewComparisonService(
	jdRepo repositories.JobDescriptionRepository,
	attachmentRepo repositories.AttachmentRepository,
	blobStore BlobStore,
	resolver FileResolver,
	extractor TextExtractor,
	scorer MatchScorer,
) ComparisonService {
	return &comparisonService{
		jdRepo:         jdRepo,
		attachmentRepo: attachmentRepo,
		blobStore:      blobStore,
		resolver:       resolver,
		extractor:      extractor,
		scorer:         scorer,
	}
}

// Compare implements ComparisonService. Per-document pipelines run
// concurrently; each settles independently and the final lists preserve the
// input order (existing documents first, then uploads).
func (c *comparisonService) Compare(ctx context.Context, user *models.User, req ComparisonRequest) (*models.ComparisonData, error) {
	if err := c.validate(user, &req); err != nil {
		return nil, err
	}

	jdText, jdID, err := c.resolveJobDescription(user, &req)
	if err != nil {
		return nil, err
	}

	documents := c.resolver.Resolve(ctx, user.ID, req.FileIDs, req.Uploads)

	outcomes := make([]DocumentOutcome, len(documents))

	var wg sync.WaitGroup
	for i := range documents {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			outcomes[idx] = c.processDocument(ctx, user, &documents[idx], jdText)
		}(i)
	}
	wg.Wait()

	return AssembleReport(outcomes, len(documents), jdText, jdID), nil
}

func (c *comparisonService) validate(user *models.User, req *ComparisonRequest) error {
	req.JobDescription = strings.TrimSpace(req.JobDescription)

	hasInline := req.JobDescription != ""
	hasReference := req.JobDescriptionID != nil

	if !hasInline && !hasReference {
		return newValidationError("Job description is required")
	}
	if hasInline && hasReference {
		return newValidationError("Provide either a job description or a job description ID, not both")
	}

	total := len(req.FileIDs) + len(req.Uploads)
	if total == 0 {
		return newValidationError("No files provided")
	}

	if quota := user.DocumentQuota(); total > quota {
		return newValidationError("You can only upload up to %d files", quota)
	}

	return nil
}

// resolveJobDescription returns the effective JD text and, when a recruiter
// submitted fresh text, the id of the auto-saved JobDescription. The
// auto-save is best-effort: a persistence failure is logged and the
// comparison carries on without an id.
func (c *comparisonService) resolveJobDescription(user *models.User, req *ComparisonRequest) (string, *uint, error) {
	if req.JobDescriptionID != nil {
		jd, err := c.jdRepo.FindOwned(*req.JobDescriptionID, user.ID)
		if err != nil {
			return "", nil, newValidationError("Job description not found")
		}

		return jd.Description, &jd.ID, nil
	}

	if !user.IsRecruiter() {
		return req.JobDescription, nil, nil
	}

	jd := &models.JobDescription{
		Description: req.JobDescription,
		UserID:      user.ID,
	}
	if err := c.jdRepo.Create(jd); err != nil {
		log.Printf("⚠️  Failed to auto-save job description: %v\n", err)
		return req.JobDescription, nil, nil
	}

	return req.JobDescription, &jd.ID, nil
}

// processDocument runs one document's pipeline to completion. Every failure
// path converts into a Failure outcome for this document alone.
func (c *comparisonService) processDocument(ctx context.Context, user *models.User, doc *ResolvedDocument, jdText string) DocumentOutcome {
	if doc.ResolveErr != nil {
		return failureOutcome(doc.DisplayName, doc.ResolveErr.Error())
	}

	text, err := c.extractor.Extract(doc.Data, doc.Format)
	if err != nil {
		return failureOutcome(doc.DisplayName, fmt.Sprintf("Failed to parse file %s: %v", doc.DisplayName, err))
	}

	attachmentID := doc.AttachmentID
	fileURL := doc.FileURL

	if doc.Store {
		locator, err := c.blobStore.Put(ctx, doc.Data, user.ID)
		if err != nil {
			return failureOutcome(doc.DisplayName, fmt.Sprintf("Failed to store file %s: %v", doc.DisplayName, err))
		}

		attachment := &models.Attachment{
			FileURL:        locator,
			FileType:       models.FileTypeCV,
			AttachableID:   user.ID,
			AttachableType: models.AttachableTypeUser,
		}
		if err := c.attachmentRepo.Create(attachment); err != nil {
			// Without a persisted record the document cannot be referenced
			// later; drop the orphaned blob and fail this document.
			if delErr := c.blobStore.Delete(ctx, locator); delErr != nil {
				log.Printf("⚠️  Failed to clean up orphaned blob %s: %v\n", locator, delErr)
			}
			return failureOutcome(doc.DisplayName, fmt.Sprintf("Failed to save file record for %s: %v", doc.DisplayName, err))
		}

		attachmentID = attachment.ID
		fileURL = attachment.FileURL
	}

	result := c.scorer.ScoreMatch(ctx, text, jdText)

	return DocumentOutcome{
		Success: &models.SuccessfulFile{
			ID:       attachmentID,
			FileName: doc.DisplayName,
			FileURL:  fileURL,
			Score:    result.Score,
			Feedback: result.Feedback,
		},
	}
}

func failureOutcome(fileName, message string) DocumentOutcome {
	return DocumentOutcome{
		Failure: &models.FailedFile{
			FileName: fileName,
			Error:    message,
		},
	}
}
