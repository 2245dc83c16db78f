package plan

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Load(ctx context.Context, person Person) (Profile, bool, error) {
	var p Profile
	err := r.db.QueryRow(ctx, `
		SELECT weight_kg, height_cm, age_years, sex,
		       weekly_sport_minutes, deficit_kcal,
		       option_galettes, option_cheese_grams
		FROM profiles WHERE person = $1
	`, string(person)).Scan(
		&p.WeightKg, &p.HeightCm, &p.AgeYears, &p.Sex,
		&p.SportMinWeek, &p.DeficitKcal,
		&p.OptGalettes, &p.OptCheeseG,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return Profile{}, false, nil
	}
	if err != nil {
		return Profile{}, false, err
	}
	return p, true, nil
}

func (r *PostgresRepository) Save(ctx context.Context, person Person, p Profile) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO profiles (
			person, weight_kg, height_cm, age_years, sex,
			weekly_sport_minutes, deficit_kcal,
			option_galettes, option_cheese_grams, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		ON CONFLICT (person) DO UPDATE SET
			weight_kg = EXCLUDED.weight_kg,
			height_cm = EXCLUDED.height_cm,
			age_years = EXCLUDED.age_years,
			sex = EXCLUDED.sex,
			weekly_sport_minutes = EXCLUDED.weekly_sport_minutes,
			deficit_kcal = EXCLUDED.deficit_kcal,
			option_galettes = EXCLUDED.option_galettes,
			option_cheese_grams = EXCLUDED.option_cheese_grams,
			updated_at = NOW()
	`, string(person), p.WeightKg, p.HeightCm, p.AgeYears, p.Sex,
		p.SportMinWeek, p.DeficitKcal, p.OptGalettes, p.OptCheeseG)
	return err
}
