package handler

import (
	"context"

	"github.com/hearth-app/hearth/internal/service"
)

// HealthChecker is whatever the readiness probe should ping, normally the
// storage backend.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	thread  service.ThreadService
	comment service.CommentService
	note    service.NoteService
	profile service.ProfileService
	user    service.UserService
	health  HealthChecker
}

func New(
	thread service.ThreadService,
	comment service.CommentService,
	note service.NoteService,
	profile service.ProfileService,
	user service.UserService,
	health HealthChecker,
) *Handler {
	return &Handler{thread, comment, note, profile, user, health}
}
