// Package firestore adapts the Cloud Firestore document store to the
// service storage interfaces. The app data lives in the named database
// "appdata", matching the deployed project layout.
package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/hearth-app/hearth/internal/config"
)

const (
	threadsCollection  = "threads"
	commentsCollection = "comments"
	notesCollection    = "notes"
	profilesCollection = "profiles"
	usersCollection    = "users"
)

type Storage struct {
	client *firestore.Client
}

func New(ctx context.Context, cfg config.Firestore) (*Storage, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	database := cfg.DatabaseId
	if database == "" {
		database = firestore.DefaultDatabaseID
	}

	client, err := firestore.NewClientWithDatabase(ctx, cfg.ProjectId, database, opts...)
	if err != nil {
		return nil, err
	}
	return &Storage{client: client}, nil
}

func (s *Storage) Close() error {
	return s.client.Close()
}

// Ping satisfies the readiness probe: a cheap read that fails fast when the
// store is unreachable.
func (s *Storage) Ping(ctx context.Context) error {
	_, err := s.client.Collections(ctx).Next()
	if err != nil && !isIteratorDone(err) {
		return err
	}
	return nil
}

func isIteratorDone(err error) bool {
	return err == iterator.Done
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

func isAlreadyExists(err error) bool {
	return status.Code(err) == codes.AlreadyExists
}
