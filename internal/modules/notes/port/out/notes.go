package out

import (
	"context"

	"aperture/internal/modules/notes/domain"
)

type NoteStore interface {
	Save(ctx context.Context, note domain.Note) (string, error)
	FindByID(ctx context.Context, id string) (domain.Note, error)
	List(ctx context.Context) ([]domain.Note, error)
	Delete(ctx context.Context, id string) error
}

type NoteIndexProjector interface {
	Reset(ctx context.Context) error
	UpsertNote(ctx context.Context, note domain.Note) error
	DeleteNote(ctx context.Context, id string) error
	ListNotes(ctx context.Context) ([]domain.IndexEntry, error)
	SearchNotes(ctx context.Context, query string) ([]domain.IndexEntry, error)
}

// TextExtractor pulls plain text out of a document on disk.
type TextExtractor interface {
	ExtractText(ctx context.Context, path string) (string, error)
}
