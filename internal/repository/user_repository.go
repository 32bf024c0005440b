package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/iliyamo/fashion-trend-analysis/internal/model"
)

type UserRepo struct{ db *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{db: db} }

const userColumns = `user_id, username, email, password_hash, designer_name, address, phone, role`

func scanUser(s rowScanner) (model.User, error) {
	var u model.User
	var designerName, address, phone sql.NullString
	if err := s.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash,
		&designerName, &address, &phone, &u.Role); err != nil {
		return u, err
	}
	u.DesignerName = designerName.String
	u.Address = address.String
	u.Phone = phone.String
	return u, nil
}

// normEmail lower-cases and trims an email the same way on write and lookup.
func normEmail(email string) string { return strings.ToLower(strings.TrimSpace(email)) }

func (r *UserRepo) List(ctx context.Context) ([]model.User, error) {
	return queryList(ctx, r.db, "user.list", `SELECT `+userColumns+` FROM fashion_user`, scanUser)
}

func (r *UserRepo) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return r.getOne(ctx, "user.get", `SELECT `+userColumns+` FROM fashion_user WHERE user_id = ? LIMIT 1`, id)
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.getOne(ctx, "user.get_by_username",
		`SELECT `+userColumns+` FROM fashion_user WHERE username = ? LIMIT 1`, strings.TrimSpace(username))
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.getOne(ctx, "user.get_by_email",
		`SELECT `+userColumns+` FROM fashion_user WHERE email = ? LIMIT 1`, normEmail(email))
}

func (r *UserRepo) getOne(ctx context.Context, op, q string, arg any) (*model.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, q, arg))
	if err != nil {
		return nil, wrap(op, err)
	}
	return &u, nil
}

func (r *UserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, "user.exists_by_username",
		`SELECT EXISTS(SELECT 1 FROM fashion_user WHERE username = ?)`, strings.TrimSpace(username))
}

func (r *UserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "user.exists_by_email",
		`SELECT EXISTS(SELECT 1 FROM fashion_user WHERE email = ?)`, normEmail(email))
}

func (r *UserRepo) exists(ctx context.Context, op, q string, arg any) (bool, error) {
	var ok bool
	if err := r.db.QueryRowContext(ctx, q, arg).Scan(&ok); err != nil {
		return false, wrap(op, err)
	}
	return ok, nil
}

// Create inserts a user whose PasswordHash is already computed. A taken
// username or email surfaces as a DataAccessError with CodeDuplicateKey.
func (r *UserRepo) Create(ctx context.Context, u model.User) (int64, error) {
	return insert(ctx, r.db, "user.create", `
		INSERT INTO fashion_user (username, email, password_hash, designer_name, address, phone, role)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		strings.TrimSpace(u.Username), normEmail(u.Email), u.PasswordHash,
		u.DesignerName, u.Address, u.Phone, u.Role)
}

func (r *UserRepo) Update(ctx context.Context, id int64, u model.User) (bool, error) {
	return execAffected(ctx, r.db, "user.update", `
		UPDATE fashion_user
		SET username = ?, email = ?, password_hash = ?, designer_name = ?, address = ?, phone = ?, role = ?
		WHERE user_id = ?`,
		strings.TrimSpace(u.Username), normEmail(u.Email), u.PasswordHash,
		u.DesignerName, u.Address, u.Phone, u.Role, id)
}

func (r *UserRepo) Delete(ctx context.Context, id int64) (bool, error) {
	return execAffected(ctx, r.db, "user.delete", `DELETE FROM fashion_user WHERE user_id = ?`, id)
}
