package ports

import (
	"context"

	"github.com/aretw0/turing/pkg/domain"
)

// ResultStore persists the records of finished runs.
type ResultStore interface {
	// Save persists rec under rec.ID, replacing any previous record.
	Save(ctx context.Context, rec *domain.RunRecord) error

	// Load retrieves a record by id.
	// Returns domain.ErrRunNotFound if the run does not exist.
	Load(ctx context.Context, id string) (*domain.RunRecord, error)

	// Delete removes a record. Deleting an unknown id is not an error.
	Delete(ctx context.Context, id string) error

	// List returns the ids of the stored runs in lexical order.
	List(ctx context.Context) ([]string, error)
}
