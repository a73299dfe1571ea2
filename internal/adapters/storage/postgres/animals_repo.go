package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"digital-zoo/internal/domain/zoo"
)

type AnimalsRepo struct {
	db *sql.DB
}

func NewAnimalsRepo(db *sql.DB) *AnimalsRepo {
	return &AnimalsRepo{db: db}
}

func (r *AnimalsRepo) Create(ctx context.Context, rec zoo.Record) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO animals (
			id, kind,
			name, age, species,
			diet, habitat,
			created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		rec.ID,
		string(rec.Kind),
		rec.Name,
		rec.Age,
		rec.Species,
		rec.Diet,
		rec.Habitat,
		rec.CreatedAt,
	)
	return err
}

func (r *AnimalsRepo) GetByID(ctx context.Context, id string) (zoo.Record, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return zoo.Record{}, zoo.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, kind,
			name, age, species,
			diet, habitat,
			created_at
		FROM animals
		WHERE id = $1
	`, id)

	rec, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zoo.Record{}, zoo.ErrNotFound
		}
		return zoo.Record{}, err
	}
	return rec, nil
}

func (r *AnimalsRepo) List(ctx context.Context) ([]zoo.Record, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, kind,
			name, age, species,
			diet, habitat,
			created_at
		FROM animals
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]zoo.Record, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}

	return out, rows.Err()
}

func (r *AnimalsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM animals WHERE id = $1`, strings.TrimSpace(id))
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return zoo.ErrNotFound
	}
	return nil
}

// scanner cubre *sql.Row y *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(s scanner) (zoo.Record, error) {
	var (
		rec  zoo.Record
		kind string
	)
	if err := s.Scan(
		&rec.ID,
		&kind,
		&rec.Name,
		&rec.Age,
		&rec.Species,
		&rec.Diet,
		&rec.Habitat,
		&rec.CreatedAt,
	); err != nil {
		return zoo.Record{}, err
	}
	rec.Kind = zoo.Kind(kind)
	return rec, nil
}
