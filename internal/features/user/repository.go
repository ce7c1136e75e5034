package user

import (
	"context"
	"database/sql"
	"time"

	"go-frameshop/internal/database"
)

type User struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UserRepository interface {
	// FindAdmin looks an admin user up by name or email.
	FindAdmin(ctx context.Context, username string) (*User, error)
	Create(ctx context.Context, u *User) (int, error)
}

type UserRepositoryImpl struct {
	db *sql.DB
}

func NewUserRepository(pg *database.PostgresDB) UserRepository {
	return &UserRepositoryImpl{db: pg.DB}
}

func (r *UserRepositoryImpl) FindAdmin(ctx context.Context, username string) (*User, error) {
	var u User
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, email, password, role, status, created_at, updated_at
		FROM users
		WHERE (email = $1 OR name = $1) AND role = 'admin'`, username).
		Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Role, &u.Status,
			&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepositoryImpl) Create(ctx context.Context, u *User) (int, error) {
	if u.Role == "" {
		u.Role = "user"
	}
	if u.Status == "" {
		u.Status = "active"
	}

	var id int
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO users (name, email, password, role, status)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (email) DO NOTHING
		RETURNING id`,
		u.Name, u.Email, u.Password, u.Role, u.Status).Scan(&id)
	if err != nil {
		return 0, err
	}
	u.ID = id
	return id, nil
}
