package remote

import (
	"context"
	"net/http"

	"github.com/PlayLink-CC/playlink-sub000/internal/data/entity"

	"go.uber.org/zap"
)

type SessionAPI interface {
	// Authenticate resolves the cookie carried in ctx to a user. An
	// anonymous session returns (nil, nil), not an error.
	Authenticate(ctx context.Context) (*entity.AuthenticatedUser, error)
	Login(ctx context.Context, email, password string) (*entity.AuthenticatedUser, []*http.Cookie, error)
	Logout(ctx context.Context) error
}

type sessionAPI struct {
	client *Client
	log    *zap.Logger
}

func NewSessionAPI(client *Client, log *zap.Logger) SessionAPI {
	return &sessionAPI{client: client, log: log.With(zap.String("api", "session"))}
}

func (a *sessionAPI) Authenticate(ctx context.Context) (*entity.AuthenticatedUser, error) {
	var out struct {
		Authenticated bool                      `json:"authenticated"`
		User          *entity.AuthenticatedUser `json:"user"`
	}

	if err := a.client.do(ctx, http.MethodGet, "/api/users/authenticate", nil, nil, &out); err != nil {
		return nil, err
	}

	if !out.Authenticated {
		return nil, nil
	}

	return out.User, nil
}

func (a *sessionAPI) Login(ctx context.Context, email, password string) (*entity.AuthenticatedUser, []*http.Cookie, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
	}

	var out struct {
		User  *entity.AuthenticatedUser `json:"user"`
		Token string                    `json:"token"`
	}

	cookies, err := a.client.doWithCookies(ctx, http.MethodPost, "/api/users/login", body, &out)
	if err != nil {
		return nil, nil, err
	}

	return out.User, cookies, nil
}

func (a *sessionAPI) Logout(ctx context.Context) error {
	return a.client.do(ctx, http.MethodPost, "/api/users/logout", nil, nil, nil)
}
