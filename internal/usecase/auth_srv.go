package usecase

import (
	"context"
	"fmt"
	"net/http"

	"github.com/PlayLink-CC/playlink-sub000/internal/data/entity"
	"github.com/PlayLink-CC/playlink-sub000/internal/data/remote"
	"github.com/PlayLink-CC/playlink-sub000/internal/dto/request"
	"github.com/PlayLink-CC/playlink-sub000/pkg/utils"

	"go.uber.org/zap"
)

type AuthService interface {
	Login(ctx context.Context, req *request.LoginRequest) (*entity.AuthenticatedUser, []*http.Cookie, error)
	Logout(ctx context.Context) error
	// CurrentSession resolves the cookie in ctx; (nil, nil) is anonymous.
	CurrentSession(ctx context.Context) (*entity.AuthenticatedUser, error)
}

type authService struct {
	sessions remote.SessionAPI
	log      *zap.Logger
}

func NewAuthService(sessions remote.SessionAPI, log *zap.Logger) AuthService {
	return &authService{
		sessions: sessions,
		log:      log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*entity.AuthenticatedUser, []*http.Cookie, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, cookies, err := s.sessions.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, nil, err
	}

	s.log.Info("User logged in",
		zap.Int64("user_id", user.ID),
		zap.String("account_type", string(user.AccountType)),
	)

	return user, cookies, nil
}

func (s *authService) Logout(ctx context.Context) error {
	return s.sessions.Logout(ctx)
}

func (s *authService) CurrentSession(ctx context.Context) (*entity.AuthenticatedUser, error) {
	return s.sessions.Authenticate(ctx)
}
