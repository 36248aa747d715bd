package archive

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func newPGRepo(t *testing.T) (*PGRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return &PGRepo{DB: db}, mock
}

var columns = []string{"id", "user_id", "kind", "template_id", "title", "storage_key", "mime_type", "size_bytes", "created_at"}

func TestPGRepoCreate(t *testing.T) {
	repo, mock := newPGRepo(t)
	doc := Document{
		ID:         "doc-1",
		UserID:     "user-1",
		Kind:       KindResume,
		TemplateID: "modern",
		Title:      "Jane Doe",
		StorageKey: "abc/resume/doc-1.pdf",
		MimeType:   PDFMimeType,
		SizeBytes:  1234,
		CreatedAt:  time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC),
	}

	mock.ExpectExec("INSERT INTO generated_documents").
		WithArgs(doc.ID, doc.UserID, "resume", doc.TemplateID, doc.Title, doc.StorageKey, doc.MimeType, doc.SizeBytes, doc.CreatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), doc); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByID(t *testing.T) {
	created := time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)

	t.Run("owner", func(t *testing.T) {
		repo, mock := newPGRepo(t)
		mock.ExpectQuery("SELECT (.+) FROM generated_documents").
			WithArgs("doc-1").
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow("doc-1", "user-1", "cover_letter", "", "", "k", PDFMimeType, int64(10), created))

		doc, err := repo.GetByID(context.Background(), "user-1", "doc-1")
		if err != nil {
			t.Fatalf("GetByID: %v", err)
		}
		if doc.Kind != KindCoverLetter || doc.SizeBytes != 10 {
			t.Fatalf("unexpected document %+v", doc)
		}
	})

	t.Run("foreign", func(t *testing.T) {
		repo, mock := newPGRepo(t)
		mock.ExpectQuery("SELECT (.+) FROM generated_documents").
			WithArgs("doc-1").
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow("doc-1", "user-1", "resume", "classic", "", "k", PDFMimeType, int64(10), created))

		if _, err := repo.GetByID(context.Background(), "user-2", "doc-1"); !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("missing", func(t *testing.T) {
		repo, mock := newPGRepo(t)
		mock.ExpectQuery("SELECT (.+) FROM generated_documents").
			WithArgs("doc-x").
			WillReturnError(sql.ErrNoRows)

		if _, err := repo.GetByID(context.Background(), "user-1", "doc-x"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestPGRepoListByUserClampsLimit(t *testing.T) {
	repo, mock := newPGRepo(t)
	created := time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT (.+) FROM generated_documents").
		WithArgs("user-1", maxListLimit, 0).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("doc-2", "user-1", "resume", "modern", "", "k2", PDFMimeType, int64(20), created.Add(time.Hour)).
			AddRow("doc-1", "user-1", "resume", "classic", "", "k1", PDFMimeType, int64(10), created))

	docs, err := repo.ListByUser(context.Background(), "user-1", 500, -3)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(docs) != 2 || docs[0].ID != "doc-2" {
		t.Fatalf("unexpected documents %+v", docs)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
