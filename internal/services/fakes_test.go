package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Sehar1999/applicant-tracking-system/internal/models"
)

// fakeAttachmentRepo is an in-memory AttachmentRepository.
type fakeAttachmentRepo struct {
	mu          sync.Mutex
	nextID      uint
	attachments map[uint]models.Attachment
	failCreate  bool
	createCalls int
}

func newFakeAttachmentRepo() *fakeAttachmentRepo {
	return &fakeAttachmentRepo{nextID: 1, attachments: make(map[uint]models.Attachment)}
}

func (f *fakeAttachmentRepo) add(ownerID uint, fileType, fileURL string) uint {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := f.nextID
	f.nextID++
	f.attachments[id] = models.Attachment{
		ID:             id,
		FileURL:        fileURL,
		FileType:       fileType,
		AttachableID:   ownerID,
		AttachableType: models.AttachableTypeUser,
	}
	return id
}

func (f *fakeAttachmentRepo) Create(attachment *models.Attachment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	if f.failCreate {
		return errors.New("database unavailable")
	}
	attachment.ID = f.nextID
	f.nextID++
	f.attachments[attachment.ID] = *attachment
	return nil
}

func (f *fakeAttachmentRepo) FindOwned(id uint, ownerID uint, fileType string) (*models.Attachment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	attachment, ok := f.attachments[id]
	if !ok || attachment.AttachableID != ownerID || attachment.FileType != fileType {
		return nil, errors.New("attachment not found")
	}
	return &attachment, nil
}

func (f *fakeAttachmentRepo) FindOwnedAny(id uint, ownerID uint) (*models.Attachment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	attachment, ok := f.attachments[id]
	if !ok || attachment.AttachableID != ownerID {
		return nil, errors.New("attachment not found")
	}
	return &attachment, nil
}

func (f *fakeAttachmentRepo) ListOwned(ownerID uint, fileType string) ([]models.Attachment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []models.Attachment
	for _, attachment := range f.attachments {
		if attachment.AttachableID == ownerID && attachment.FileType == fileType {
			result = append(result, attachment)
		}
	}
	return result, nil
}

func (f *fakeAttachmentRepo) FindProfile(ownerID uint) (*models.Attachment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, attachment := range f.attachments {
		if attachment.AttachableID == ownerID && attachment.FileType == models.FileTypeProfile {
			return &attachment, nil
		}
	}
	return nil, errors.New("attachment not found")
}

func (f *fakeAttachmentRepo) UpdateFileURL(id uint, fileURL string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	attachment, ok := f.attachments[id]
	if !ok {
		return errors.New("attachment not found")
	}
	attachment.FileURL = fileURL
	f.attachments[id] = attachment
	return nil
}

func (f *fakeAttachmentRepo) Delete(id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.attachments, id)
	return nil
}

// fakeBlobStore is an in-memory BlobStore.
type fakeBlobStore struct {
	mu      sync.Mutex
	nextID  int
	blobs   map[string][]byte
	failPut bool
	deleted []string
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{blobs: make(map[string][]byte)}
}

func (f *fakeBlobStore) put(locator string, data []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.blobs[locator] = data
}

func (f *fakeBlobStore) Put(_ context.Context, data []byte, ownerID uint) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failPut {
		return "", errors.New("storage unavailable")
	}
	f.nextID++
	locator := fmt.Sprintf("users/%d/blob-%d", ownerID, f.nextID)
	f.blobs[locator] = data
	return locator, nil
}

func (f *fakeBlobStore) Get(_ context.Context, locator string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.blobs[locator]
	if !ok {
		return nil, errors.New("blob not found")
	}
	return data, nil
}

func (f *fakeBlobStore) Delete(_ context.Context, locator string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.blobs, locator)
	f.deleted = append(f.deleted, locator)
	return nil
}

func (f *fakeBlobStore) EnsureRoot() error {
	return nil
}

// fakeJDRepo is an in-memory JobDescriptionRepository.
type fakeJDRepo struct {
	mu         sync.Mutex
	nextID     uint
	jds        map[uint]models.JobDescription
	failCreate bool
	created    int
}

func newFakeJDRepo() *fakeJDRepo {
	return &fakeJDRepo{nextID: 1, jds: make(map[uint]models.JobDescription)}
}

func (f *fakeJDRepo) add(ownerID uint, description string) uint {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := f.nextID
	f.nextID++
	f.jds[id] = models.JobDescription{ID: id, Description: description, UserID: ownerID}
	return id
}

func (f *fakeJDRepo) Create(jd *models.JobDescription) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created++
	if f.failCreate {
		return errors.New("database unavailable")
	}
	jd.ID = f.nextID
	f.nextID++
	f.jds[jd.ID] = *jd
	return nil
}

func (f *fakeJDRepo) FindOwned(id uint, ownerID uint) (*models.JobDescription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	jd, ok := f.jds[id]
	if !ok || jd.UserID != ownerID {
		return nil, errors.New("job description not found")
	}
	return &jd, nil
}

func (f *fakeJDRepo) ListOwned(ownerID uint) ([]models.JobDescription, error) {
	return nil, nil
}

func (f *fakeJDRepo) Update(jd *models.JobDescription) error {
	return nil
}

func (f *fakeJDRepo) Delete(id uint) error {
	return nil
}

// fakeExtractor dispatches on a per-test function.
type fakeExtractor struct {
	extractFn func(data []byte, format DocumentFormat) (string, error)
}

func (f *fakeExtractor) Extract(data []byte, format DocumentFormat) (string, error) {
	if f.extractFn != nil {
		return f.extractFn(data, format)
	}
	return string(data), nil
}

// fakeScorer returns a fixed score and records what it was asked to compare.
type fakeScorer struct {
	mu    sync.Mutex
	score int
	calls []string
}

func (f *fakeScorer) ScoreMatch(_ context.Context, cvText, _ string) *models.MatchResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, cvText)
	return &models.MatchResult{
		Score: f.score,
		Feedback: models.CVFeedback{
			SkillsAlignment:     "ok",
			ExperienceRelevance: "ok",
			EducationFit:        "ok",
			OverallStrengths:    "ok",
			AreasForImprovement: "ok",
		},
	}
}
