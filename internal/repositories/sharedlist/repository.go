// Package sharedlist stores rendered army lists so the tabletop mod can pull
// them by id.
package sharedlist

import (
	"context"
	"time"

	"github.com/KirkDiggler/opr-tts-api/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=sharedlistmock github.com/KirkDiggler/opr-tts-api/internal/repositories/sharedlist Repository

// Repository defines the storage operations for shared lists
type Repository interface {
	// Create stores a new shareable output under a generated id
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a shared list by id
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes a shared list
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// CreateInput defines the input for creating a shared list
type CreateInput struct {
	List *entities.ShareableOutput
	// TTL overrides the repository default. Zero uses the default.
	TTL time.Duration
}

// CreateOutput defines the output for creating a shared list
type CreateOutput struct {
	SharedList *entities.SharedList
}

// GetInput defines the input for getting a shared list
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a shared list
type GetOutput struct {
	SharedList *entities.SharedList
}

// DeleteInput defines the input for deleting a shared list
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a shared list
type DeleteOutput struct{}
