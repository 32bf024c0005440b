package service

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/iliyamo/fashion-trend-analysis/internal/model"
	"github.com/iliyamo/fashion-trend-analysis/internal/repository"
	"github.com/iliyamo/fashion-trend-analysis/internal/utils"
)

// UserRepository is implemented by *repository.UserRepo.
type UserRepository interface {
	List(ctx context.Context) ([]model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, u model.User) (int64, error)
	Update(ctx context.Context, id int64, u model.User) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// TokenRepository is implemented by *repository.TokenRepo.
type TokenRepository interface {
	StoreRefresh(ctx context.Context, userID int64, tokenHash string, exp time.Time) error
	ValidateRefresh(ctx context.Context, tokenHash string) (int64, error)
	RevokeByHash(ctx context.Context, tokenHash string) error
	RevokeAllForUser(ctx context.Context, userID int64) error
}

type AuthConfig struct {
	JWTSecret      string
	AccessTTL      time.Duration
	RefreshTTLDays int
	BcryptCost     int
}

// Session is what a successful login or refresh hands back.
type Session struct {
	User    model.User
	Access  utils.AccessToken
	Refresh utils.RefreshToken
}

// RegisterInput carries the self-registration form.
type RegisterInput struct {
	Username     string
	Email        string
	Password     string
	DesignerName string
	Address      string
	Phone        string
	Role         string
}

// selfAssignable lists the roles a user may pick at registration.
var selfAssignable = map[string]bool{
	model.RoleUser:     true,
	model.RoleAnalyst:  true,
	model.RoleDesigner: true,
}

type AuthService struct {
	users  UserRepository
	tokens TokenRepository
	cfg    AuthConfig
}

func NewAuthService(users UserRepository, tokens TokenRepository, cfg AuthConfig) *AuthService {
	return &AuthService{users: users, tokens: tokens, cfg: cfg}
}

// Register creates a user and returns its id.  A taken username or email
// is a ValidationError.  Roles outside the self-assignable set are stored
// as USER.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (int64, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.Username == "" || in.Email == "" || in.Password == "" {
		return 0, &ValidationError{Msg: "username, email and password are required"}
	}

	taken, err := s.users.ExistsByUsername(ctx, in.Username)
	if err != nil {
		return 0, err
	}
	if taken {
		return 0, &ValidationError{Field: "username", Msg: "username already taken"}
	}
	taken, err = s.users.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return 0, err
	}
	if taken {
		return 0, &ValidationError{Field: "email", Msg: "email already registered"}
	}

	hash, err := utils.HashPassword(in.Password, s.cfg.BcryptCost)
	if errors.Is(err, utils.ErrPasswordTooLong) {
		return 0, &ValidationError{Field: "password", Msg: err.Error()}
	}
	if err != nil {
		return 0, errors.Wrap(err, "hash password")
	}
	role := strings.ToUpper(strings.TrimSpace(in.Role))
	if !selfAssignable[role] {
		role = model.RoleUser
	}

	id, err := s.users.Create(ctx, model.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		DesignerName: in.DesignerName,
		Address:      in.Address,
		Phone:        in.Phone,
		Role:         role,
	})
	if repository.IsDuplicate(err) {
		// lost a race with a concurrent registration
		return 0, &ValidationError{Field: "username", Msg: "username or email already taken"}
	}
	return id, err
}

// Login verifies the credentials and opens a session.  Unknown users and
// wrong passwords both yield ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (*Session, error) {
	u, err := s.users.GetByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !utils.VerifyPassword(u.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	if utils.NeedsRehash(u.PasswordHash, s.cfg.BcryptCost) {
		s.rehash(ctx, *u, password)
	}
	return s.issue(ctx, *u)
}

// rehash upgrades a stored hash to the configured cost.  Failures are
// ignored; the old hash stays valid.
func (s *AuthService) rehash(ctx context.Context, u model.User, password string) {
	hash, err := utils.HashPassword(password, s.cfg.BcryptCost)
	if err != nil {
		return
	}
	u.PasswordHash = hash
	_, _ = s.users.Update(ctx, u.ID, u)
}

// Refresh rotates a refresh token: the presented one is revoked and a new
// pair is issued.
func (s *AuthService) Refresh(ctx context.Context, raw string) (*Session, error) {
	hash := utils.HashRefreshRaw(strings.TrimSpace(raw))
	u, err := s.refreshOwner(ctx, hash)
	if err != nil {
		return nil, err
	}
	if err := s.tokens.RevokeByHash(ctx, hash); err != nil {
		return nil, err
	}
	return s.issue(ctx, *u)
}

// RefreshAccess issues a new access token and keeps the refresh token.
func (s *AuthService) RefreshAccess(ctx context.Context, raw string) (utils.AccessToken, error) {
	u, err := s.refreshOwner(ctx, utils.HashRefreshRaw(strings.TrimSpace(raw)))
	if err != nil {
		return utils.AccessToken{}, err
	}
	return utils.NewAccessToken(s.cfg.JWTSecret, u.ID, u.Username, u.Role, s.cfg.AccessTTL)
}

func (s *AuthService) refreshOwner(ctx context.Context, hash string) (*model.User, error) {
	uid, err := s.tokens.ValidateRefresh(ctx, hash)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidRefreshToken
	}
	if err != nil {
		return nil, err
	}
	u, err := s.users.GetByID(ctx, uid)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidRefreshToken
	}
	return u, err
}

// Logout revokes every refresh token of userID when it is known (the
// caller presented a valid access token), otherwise only the presented
// refresh token.
func (s *AuthService) Logout(ctx context.Context, raw string, userID int64) error {
	if userID > 0 {
		return s.tokens.RevokeAllForUser(ctx, userID)
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return &ValidationError{Field: "refresh_token", Msg: "required"}
	}
	hash := utils.HashRefreshRaw(raw)
	if _, err := s.refreshOwner(ctx, hash); err != nil {
		return err
	}
	return s.tokens.RevokeByHash(ctx, hash)
}

func (s *AuthService) issue(ctx context.Context, u model.User) (*Session, error) {
	access, err := utils.NewAccessToken(s.cfg.JWTSecret, u.ID, u.Username, u.Role, s.cfg.AccessTTL)
	if err != nil {
		return nil, errors.Wrap(err, "issue access token")
	}
	refresh, err := utils.NewRefreshToken(s.cfg.RefreshTTLDays)
	if err != nil {
		return nil, errors.Wrap(err, "issue refresh token")
	}
	if err := s.tokens.StoreRefresh(ctx, u.ID, utils.HashRefreshRaw(refresh.Raw), refresh.Exp); err != nil {
		return nil, err
	}
	return &Session{User: u, Access: access, Refresh: refresh}, nil
}
