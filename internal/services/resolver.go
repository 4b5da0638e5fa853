package services

import (
	"context"
	"fmt"

	"github.com/Sehar1999/applicant-tracking-system/internal/models"
	"github.com/Sehar1999/applicant-tracking-system/internal/repositories"
)

// RawUpload is a freshly uploaded binary payload, decoupled from the HTTP
// layer.
type RawUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ResolvedDocument is one entry of the uniform working set the orchestrator
// fans out over. A document that failed resolution carries ResolveErr and is
// converted into a failure outcome without aborting its siblings.
type ResolvedDocument struct {
	DisplayName string
	Data        []byte
	Format      DocumentFormat

	// Store marks a fresh upload that must be persisted as a side effect of
	// processing. Already-stored documents carry their attachment instead.
	Store        bool
	AttachmentID uint
	FileURL      string

	ResolveErr error
}

// FileResolver normalizes a comparison request's mixed input (stored-document
// references plus new payloads) into an ordered working set: existing
// documents first in request order, then new uploads in upload order.
type FileResolver interface {
	Resolve(ctx context.Context, ownerID uint, fileIDs []uint, uploads []RawUpload) []ResolvedDocument
}

type fileResolver struct {
	attachmentRepo repositories.AttachmentRepository
	blobStore      BlobStore
}

func NewFileResolver(attachmentRepo repositories.AttachmentRepository, blobStore BlobStore) FileResolver {
	return &fileResolver{
		attachmentRepo: attachmentRepo,
		blobStore:      blobStore,
	}
}

// Resolve implements FileResolver.
func (f *fileResolver) Resolve(ctx context.Context, ownerID uint, fileIDs []uint, uploads []RawUpload) []ResolvedDocument {
	resolved := make([]ResolvedDocument, 0, len(fileIDs)+len(uploads))

	for _, id := range fileIDs {
		resolved = append(resolved, f.resolveExisting(ctx, ownerID, id))
	}

	for _, upload := range uploads {
		resolved = append(resolved, ResolvedDocument{
			DisplayName: upload.Filename,
			Data:        upload.Data,
			Format:      FormatFromContentType(upload.ContentType),
			Store:       true,
		})
	}

	return resolved
}

func (f *fileResolver) resolveExisting(ctx context.Context, ownerID uint, id uint) ResolvedDocument {
	displayName := fmt.Sprintf("File ID: %d", id)

	attachment, err := f.attachmentRepo.FindOwned(id, ownerID, models.FileTypeCV)
	if err != nil {
		return ResolvedDocument{
			DisplayName: displayName,
			ResolveErr:  fmt.Errorf("file not found or access denied"),
		}
	}

	data, err := f.blobStore.Get(ctx, attachment.FileURL)
	if err != nil {
		return ResolvedDocument{
			DisplayName: displayName,
			ResolveErr:  fmt.Errorf("failed to fetch file from storage: %w", err),
		}
	}

	// Storage drops the original filename, so the declared content type is
	// gone; the magic number is authoritative here.
	return ResolvedDocument{
		DisplayName:  displayName,
		Data:         data,
		Format:       DetectFormat(data),
		AttachmentID: attachment.ID,
		FileURL:      attachment.FileURL,
	}
}
