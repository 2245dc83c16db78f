package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresUserRepository struct {
	db *pgxpool.Pool
}

func NewPostgresUserRepository(db *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) Save(ctx context.Context, user *HouseholdUser) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO household_users (id, email, password_hash)
		VALUES ($1, $2, $3)
	`, user.ID, user.Email, user.PasswordHash)
	return err
}

func (r *PostgresUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	row := r.db.QueryRow(ctx, `SELECT 1 FROM household_users WHERE email=$1 LIMIT 1`, email)

	var exists int
	if err := row.Scan(&exists); err != nil {
		return false, nil
	}
	return true, nil
}

func (r *PostgresUserRepository) FindByEmail(ctx context.Context, email string) (*HouseholdUser, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, email, password_hash
		FROM household_users WHERE email=$1
	`, email)

	user := &HouseholdUser{}
	if err := row.Scan(&user.ID, &user.Email, &user.PasswordHash); err != nil {
		return nil, errors.New("user not found")
	}
	return user, nil
}
