package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/chat-identity/internal/auth"
	"github.com/spec-kit/chat-identity/internal/config"
	"github.com/spec-kit/chat-identity/internal/domain"
	"github.com/spec-kit/chat-identity/internal/events"
	"github.com/spec-kit/chat-identity/internal/repository"
	apperrors "github.com/spec-kit/chat-identity/pkg/util"
)

// Session bundles the artifacts returned to a caller after a successful
// registration or login.
type Session struct {
	AccountID   string
	AccessToken string
	ClientID    string
	DisplayName string
	AvatarRef   string
	ExpiresAt   time.Time
}

// AuthService coordinates registration and login flows.
type AuthService struct {
	accounts   repository.AccountRepository
	dispatcher events.Dispatcher
	tokenMgr   *auth.TokenManager
	bcryptCost int
	logger     *zap.Logger
}

// AuthDependencies encapsulates collaborator requirements for the auth service.
type AuthDependencies struct {
	AccountRepo repository.AccountRepository
	Dispatcher  events.Dispatcher
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, logger *zap.Logger, deps AuthDependencies) *AuthService {
	return &AuthService{
		accounts:   deps.AccountRepo,
		dispatcher: deps.Dispatcher,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLHours),
		bcryptCost: cfg.Auth.BcryptCost,
		logger:     logger,
	}
}

// Register creates an account for an unclaimed phone number and issues a
// session for it. Performs exactly one store write.
func (s *AuthService) Register(ctx context.Context, phone, password string) (*Session, error) {
	account, err := s.register(ctx, phone, password)
	if err != nil {
		return nil, err
	}

	session, err := s.issueSession(account)
	if err != nil {
		return nil, err
	}

	s.logger.Info("account registered", zap.String("phone", phone), zap.String("account_id", account.ID))
	s.publish(ctx, events.Event{
		Type:      events.EventAccountRegistered,
		AccountID: account.ID,
		Payload: events.AccountRegisteredPayload{
			Phone:       account.Phone,
			DisplayName: account.DisplayName,
			ClientID:    session.ClientID,
		},
	})
	return session, nil
}

// Login authenticates an existing account and issues a fresh session.
// Performs zero store writes.
func (s *AuthService) Login(ctx context.Context, phone, password string) (*Session, error) {
	account, err := s.login(ctx, phone, password)
	if err != nil {
		return nil, err
	}

	session, err := s.issueSession(account)
	if err != nil {
		return nil, err
	}

	s.logger.Info("login succeeded", zap.String("phone", phone), zap.String("account_id", account.ID))
	s.publish(ctx, events.Event{
		Type:      events.EventLoginSucceeded,
		AccountID: account.ID,
		Payload: events.LoginSucceededPayload{
			Phone:    account.Phone,
			ClientID: session.ClientID,
		},
	})
	return session, nil
}

func (s *AuthService) register(ctx context.Context, phone, password string) (*domain.Account, error) {
	if _, err := s.accounts.FindByPhone(ctx, phone); err == nil {
		return nil, apperrors.NewConflict("phone already registered", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewInternalError(err)
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	account := &domain.Account{
		Phone:          phone,
		CredentialHash: hash,
		DisplayName:    phone,
		AvatarRef:      "",
		Status:         domain.AccountStatusActive,
	}
	if err := s.accounts.Insert(ctx, account); err != nil {
		// The store's uniqueness constraint closes the race two concurrent
		// registrations leave open after both pass the pre-check.
		if errors.Is(err, repository.ErrPhoneTaken) {
			return nil, apperrors.NewConflict("phone already registered", nil)
		}
		return nil, apperrors.NewInternalError(err)
	}
	return account, nil
}

func (s *AuthService) login(ctx context.Context, phone, password string) (*domain.Account, error) {
	account, err := s.accounts.FindByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Warn("login failed: phone not registered", zap.String("phone", phone))
			return nil, apperrors.NewInvalidCredentials()
		}
		return nil, apperrors.NewInternalError(err)
	}

	if !auth.VerifyPassword(account.CredentialHash, password) {
		s.logger.Warn("login failed: wrong password", zap.String("phone", phone))
		return nil, apperrors.NewInvalidCredentials()
	}
	return account, nil
}

func (s *AuthService) issueSession(account *domain.Account) (*Session, error) {
	clientID := auth.NewClientID()
	token, expiresAt, err := s.tokenMgr.Issue(account.ID, clientID)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return &Session{
		AccountID:   account.ID,
		AccessToken: token,
		ClientID:    clientID,
		DisplayName: account.DisplayName,
		AvatarRef:   account.AvatarRef,
		ExpiresAt:   expiresAt,
	}, nil
}

func (s *AuthService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = time.Now()
	_ = s.dispatcher.Publish(ctx, event)
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
