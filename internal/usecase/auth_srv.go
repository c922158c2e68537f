package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"waitwise/internal/data/entity"
	"waitwise/internal/data/state"
	"waitwise/internal/dto/request"
	"waitwise/internal/dto/response"
	"waitwise/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Login(ctx context.Context, req request.LoginRequest) (*response.AuthResponse, error)
	Register(ctx context.Context, req request.RegisterRequest) (*response.AuthResponse, error)
	Logout(ctx context.Context, token uuid.UUID) error
	Authenticate(ctx context.Context, token uuid.UUID) (entity.User, error)
}

type authService struct {
	store *state.Store
	log   *zap.Logger
}

func NewAuthService(store *state.Store, log *zap.Logger) AuthService {
	return &authService{
		store: store,
		log:   log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Login(ctx context.Context, req request.LoginRequest) (*response.AuthResponse, error) {
	user, ok := s.store.UserByEmail(req.Email)
	if !ok || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("login rejected", zap.String("email", req.Email))
		return nil, errors.New("invalid email or password")
	}

	sess := s.store.CreateSession(user.ID)

	if s.store.Preferences().SlotConfirmed {
		first := strings.SplitN(user.Name, " ", 2)[0]
		s.store.PushNotification(
			fmt.Sprintf("Welcome back, %s! 👋", first),
			"You're signed in to WaitWise.",
			"✅", entity.NotificationSystem)
	}

	s.log.Info("user logged in", zap.String("user_id", user.ID.String()))
	return &response.AuthResponse{
		Token: sess.Token.String(),
		User:  response.ToUserResponse(user),
	}, nil
}

func (s *authService) Register(ctx context.Context, req request.RegisterRequest) (*response.AuthResponse, error) {
	user := entity.User{
		ID:        uuid.New(),
		Email:     strings.ToLower(req.Email),
		Name:      req.Name,
		Phone:     req.Phone,
		Role:      entity.RoleUser,
		CreatedAt: time.Now(),
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("failed to hash password", zap.Error(err))
		return nil, errors.New("failed to register user")
	}
	user.PasswordHash = hash

	if err := s.store.CreateUser(user); err != nil {
		if errors.Is(err, state.ErrEmailTaken) {
			return nil, errors.New("email already registered")
		}
		return nil, err
	}

	sess := s.store.CreateSession(user.ID)
	s.log.Info("user registered", zap.String("user_id", user.ID.String()))
	return &response.AuthResponse{
		Token: sess.Token.String(),
		User:  response.ToUserResponse(user),
	}, nil
}

// Logout revokes the session and empties the inbox, matching the
// single-device model where notifications live with the signed-in
// session.
func (s *authService) Logout(ctx context.Context, token uuid.UUID) error {
	s.store.RevokeSession(token)
	s.store.ClearInbox()
	return nil
}

func (s *authService) Authenticate(ctx context.Context, token uuid.UUID) (entity.User, error) {
	user, err := s.store.SessionUser(token)
	if err != nil {
		return entity.User{}, errors.New("unauthorized")
	}
	return user, nil
}
