package service

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/iliyamo/fashion-trend-analysis/internal/model"
	"github.com/iliyamo/fashion-trend-analysis/internal/repository"
	"github.com/iliyamo/fashion-trend-analysis/internal/utils"
)

var knownRoles = map[string]bool{
	model.RoleUser:     true,
	model.RoleAnalyst:  true,
	model.RoleDesigner: true,
	model.RoleAdmin:    true,
}

// UserUpdate is a full profile replacement.  An empty Password keeps the
// stored hash; an empty Role keeps the stored role.
type UserUpdate struct {
	Username     string
	Email        string
	Password     string
	DesignerName string
	Address      string
	Phone        string
	Role         string
}

// UserService backs the user administration endpoints.
type UserService struct {
	repo       UserRepository
	bcryptCost int
}

func NewUserService(repo UserRepository, bcryptCost int) *UserService {
	return &UserService{repo: repo, bcryptCost: bcryptCost}
}

func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id int64) (*model.User, error) {
	return s.repo.GetByID(ctx, id)
}

// Update returns false when the user does not exist.
func (s *UserService) Update(ctx context.Context, id int64, in UserUpdate) (bool, error) {
	cur, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	next := model.User{
		Username:     strings.TrimSpace(in.Username),
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		PasswordHash: cur.PasswordHash,
		DesignerName: in.DesignerName,
		Address:      in.Address,
		Phone:        in.Phone,
		Role:         cur.Role,
	}
	if next.Username == "" || next.Email == "" {
		return false, &ValidationError{Msg: "username and email are required"}
	}
	if r := strings.ToUpper(strings.TrimSpace(in.Role)); r != "" {
		if !knownRoles[r] {
			return false, &ValidationError{Field: "role", Msg: "unknown role"}
		}
		next.Role = r
	}
	if in.Password != "" {
		next.PasswordHash, err = utils.HashPassword(in.Password, s.bcryptCost)
		if errors.Is(err, utils.ErrPasswordTooLong) {
			return false, &ValidationError{Field: "password", Msg: err.Error()}
		}
		if err != nil {
			return false, errors.Wrap(err, "hash password")
		}
	}

	ok, err := s.repo.Update(ctx, id, next)
	if repository.IsDuplicate(err) {
		return false, &ValidationError{Field: "username", Msg: "username or email already taken"}
	}
	return ok, err
}

func (s *UserService) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repo.Delete(ctx, id)
}
