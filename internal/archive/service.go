package archive

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Shivamsahlot17/AI-Resume-and-Cover-letter-generator/internal/shared/storage/object"
	"github.com/Shivamsahlot17/AI-Resume-and-Cover-letter-generator/internal/shared/telemetry"
)

// Service keeps generated PDFs for their owners.
type Service struct {
	Repo  Repo
	Store object.ObjectStore
	Now   func() time.Time
	NewID func() string
}

// NewService constructs a Service with wall clock time and random UUIDs.
func NewService(repo Repo, store object.ObjectStore) *Service {
	return &Service{Repo: repo, Store: store, Now: time.Now, NewID: uuid.NewString}
}

// SaveInput describes a freshly rendered document.
type SaveInput struct {
	UserID     string
	Kind       Kind
	TemplateID string
	Title      string
	PDF        []byte
}

// Save stores the PDF bytes and records the document. If the record cannot be
// written the stored object is removed again.
func (s *Service) Save(ctx context.Context, in SaveInput) (Document, error) {
	if strings.TrimSpace(in.UserID) == "" || !in.Kind.Valid() || len(in.PDF) == 0 {
		return Document{}, ErrInvalidInput
	}
	if s.Repo == nil || s.Store == nil {
		return Document{}, errors.New("missing dependencies")
	}

	id := s.newID()
	key := object.DocumentKey(in.UserID, string(in.Kind), id)
	size, err := s.Store.Put(ctx, key, PDFMimeType, bytes.NewReader(in.PDF))
	if err != nil {
		return Document{}, fmt.Errorf("store document: %w", err)
	}

	doc := Document{
		ID:         id,
		UserID:     in.UserID,
		Kind:       in.Kind,
		TemplateID: in.TemplateID,
		Title:      in.Title,
		StorageKey: key,
		MimeType:   PDFMimeType,
		SizeBytes:  size,
		CreatedAt:  s.now().UTC(),
	}
	if err := s.Repo.Create(ctx, doc); err != nil {
		if delErr := s.Store.Delete(ctx, key); delErr != nil {
			telemetry.Error("archive.cleanup_failed", map[string]any{
				"document_id": id,
				"error":       delErr,
			})
		}
		return Document{}, fmt.Errorf("record document: %w", err)
	}
	return doc, nil
}

// Get returns a document by ID for a user.
func (s *Service) Get(ctx context.Context, userID, documentID string) (Document, error) {
	if userID == "" || documentID == "" {
		return Document{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, userID, documentID)
}

// List returns a user's documents newest-first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Document, error) {
	if userID == "" {
		return nil, ErrInvalidInput
	}
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

// Open returns the document and a reader over its PDF bytes. The caller
// closes the reader.
func (s *Service) Open(ctx context.Context, userID, documentID string) (Document, io.ReadCloser, error) {
	doc, err := s.Get(ctx, userID, documentID)
	if err != nil {
		return Document{}, nil, err
	}
	rc, err := s.Store.Open(ctx, doc.StorageKey)
	if err != nil {
		return Document{}, nil, fmt.Errorf("open document: %w", err)
	}
	return doc, rc, nil
}

func (s *Service) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

func (s *Service) newID() string {
	if s.NewID == nil {
		return uuid.NewString()
	}
	return s.NewID()
}
