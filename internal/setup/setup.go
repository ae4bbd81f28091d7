package setup

import (
	"context"
	"fmt"
	"time"

	"github.com/hearth-app/hearth/internal/auth"
	"github.com/hearth-app/hearth/internal/config"
	"github.com/hearth-app/hearth/internal/handler"
	"github.com/hearth-app/hearth/internal/service"
	"github.com/hearth-app/hearth/internal/storage/firestore"
	"github.com/hearth-app/hearth/internal/storage/memory"
	"github.com/hearth-app/hearth/internal/utils"
)

// Storage is the full persistence surface one backend must provide.
type Storage interface {
	service.ThreadStorage
	service.CommentStorage
	service.NoteStorage
	service.ProfileStorage
	service.UserStorage

	Ping(ctx context.Context) error
	Close() error
}

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Config   *config.Config
	Storage  Storage
	Verifier auth.TokenVerifier
	Handler  *handler.Handler
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	var storage Storage
	switch cfg.Public.Storage {
	case "firestore":
		fs, err := firestore.New(ctx, cfg.Public.Firestore)
		if err != nil {
			return nil, fmt.Errorf("connecting to firestore: %w", err)
		}
		storage = fs
	case "memory", "":
		storage = memory.New()
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Public.Storage)
	}

	var verifier auth.TokenVerifier
	switch cfg.Public.AuthMode {
	case "firebase":
		fb, err := auth.NewFirebase(ctx, cfg.Public.Firestore.ProjectId, cfg.Public.Firestore.CredentialsFile)
		if err != nil {
			storage.Close()
			return nil, fmt.Errorf("initializing firebase auth: %w", err)
		}
		verifier = fb
	case "jwt", "":
		verifier = auth.NewJwt(cfg.JwtKey(), 24*time.Hour)
	default:
		storage.Close()
		return nil, fmt.Errorf("unknown auth mode %q", cfg.Public.AuthMode)
	}

	thread := service.NewThread(storage, &utils.ThreadValidator{
		MaxTitleLen:   cfg.Public.MaxTitleLen,
		MaxContentLen: cfg.Public.MaxContentLen,
	})
	comment := service.NewComment(storage, &utils.CommentValidator{
		MaxContentLen: cfg.Public.MaxContentLen,
	})
	note := service.NewNote(storage, &utils.NoteValidator{
		MaxTitleLen: cfg.Public.MaxTitleLen,
	})
	profile := service.NewProfile(storage)
	user := service.NewUser(storage)

	h := handler.New(thread, comment, note, profile, user, storage)

	return &Dependencies{
		Config:   cfg,
		Storage:  storage,
		Verifier: verifier,
		Handler:  h,
	}, nil
}
