package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/piyush898784/rentz/internal/domain"
	"github.com/piyush898784/rentz/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateWithProfile(ctx context.Context, u *domain.User, p *domain.Profile) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	userQuery := `INSERT INTO users (username, email, first_name, last_name, password_hash, created_on)
	              VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	if err := tx.QueryRowContext(ctx, userQuery, u.Username, u.Email, u.FirstName, u.LastName, u.PasswordHash, time.Now()).Scan(&u.ID); err != nil {
		return err
	}

	p.UserID = u.ID
	profileQuery := `INSERT INTO profiles (user_id, role, phone_number, address, created_on)
	                 VALUES ($1, $2, $3, $4, $5) RETURNING id`
	if err := tx.QueryRowContext(ctx, profileQuery, p.UserID, p.Role, p.PhoneNumber, p.Address, time.Now()).Scan(&p.ID); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT id, username, email, first_name, last_name, password_hash, created_on FROM users WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.Username, &u.Email, &u.FirstName, &u.LastName, &u.PasswordHash, &u.CreatedOn)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT id, username, email, first_name, last_name, password_hash, created_on FROM users WHERE username = $1`
	err := r.db.QueryRowContext(ctx, query, username).Scan(&u.ID, &u.Username, &u.Email, &u.FirstName, &u.LastName, &u.PasswordHash, &u.CreatedOn)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepository) GetProfile(ctx context.Context, userID int32) (*domain.Profile, error) {
	p := &domain.Profile{}
	query := `SELECT id, user_id, role, COALESCE(phone_number, ''), COALESCE(address, ''), created_on FROM profiles WHERE user_id = $1`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&p.ID, &p.UserID, &p.Role, &p.PhoneNumber, &p.Address, &p.CreatedOn)
	if err != nil {
		return nil, err
	}
	return p, nil
}
