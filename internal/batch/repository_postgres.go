package batch

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Load(ctx context.Context) (Schedule, error) {
	rows, err := r.db.Query(ctx, `
		SELECT day, meal, axel, prisca FROM meal_schedule
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	schedule := make(Schedule)
	for rows.Next() {
		var key SlotKey
		var sel Selection
		if err := rows.Scan(&key.Day, &key.Meal, &sel.Axel, &sel.Prisca); err != nil {
			return nil, err
		}
		schedule[key] = sel
	}
	return schedule, rows.Err()
}

func (r *PostgresRepository) SaveSlot(ctx context.Context, key SlotKey, sel Selection) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO meal_schedule (day, meal, axel, prisca)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (day, meal) DO UPDATE SET
			axel = EXCLUDED.axel,
			prisca = EXCLUDED.prisca
	`, key.Day, key.Meal, sel.Axel, sel.Prisca)
	return err
}

// Replace swaps the stored schedule atomically.
func (r *PostgresRepository) Replace(ctx context.Context, s Schedule) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM meal_schedule`); err != nil {
		return err
	}
	for key, sel := range s {
		_, err := tx.Exec(ctx, `
			INSERT INTO meal_schedule (day, meal, axel, prisca)
			VALUES ($1, $2, $3, $4)
		`, key.Day, key.Meal, sel.Axel, sel.Prisca)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *PostgresRepository) Clear(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `DELETE FROM meal_schedule`)
	return err
}
