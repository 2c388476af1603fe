package store

import (
	"context"

	"github.com/ayoisaiah/doze/internal/models"
)

// DB is the local session storage interface.
type DB interface {
	// Insert assigns the next id to sess, saves it and returns the id.
	Insert(ctx context.Context, sess *models.Session) (int64, error)
	// Put saves a session under its id, overwriting any previous value.
	Put(ctx context.Context, sess *models.Session) error
	// Delete removes the session with the given id.
	Delete(ctx context.Context, id int64) error
	// All returns every stored session in ascending id order.
	All(ctx context.Context) ([]models.Session, error)
	// ReplaceAll discards the stored sessions and saves sessions in their
	// place within a single transaction
	ReplaceAll(ctx context.Context, sessions []models.Session) error
	// Close ends the database connection
	Close() error
}
