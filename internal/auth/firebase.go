package auth

import (
	"context"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"github.com/hearth-app/hearth/internal/domain"
	internal_errors "github.com/hearth-app/hearth/internal/errors"
	"github.com/hearth-app/hearth/internal/logger"
)

// Firebase verifies Google ID tokens issued to the web client.
type Firebase struct {
	client *fbauth.Client
}

func NewFirebase(ctx context.Context, projectId, credentialsFile string) (*Firebase, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectId}, opts...)
	if err != nil {
		return nil, err
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, err
	}
	return &Firebase{client: client}, nil
}

func (f *Firebase) Verify(ctx context.Context, token string) (*domain.User, error) {
	decoded, err := f.client.VerifyIDToken(ctx, token)
	if err != nil {
		logger.Log.Debug("id token rejected", "error", err)
		return nil, internal_errors.Unauthorized("Invalid access token")
	}

	email, _ := decoded.Claims["email"].(string)
	return &domain.User{Id: decoded.UID, Email: email}, nil
}
