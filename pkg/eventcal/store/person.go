package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mkarpinski/eventcal/pkg/eventcal/domain"
)

// AddPerson validates the field values, inserts a new person row, and
// returns the assigned identifier.
func (s *Store) AddPerson(ctx context.Context, name, email string) (int64, error) {
	p, err := domain.NewPerson(name, email)
	if err != nil {
		return 0, err
	}

	var id int64
	err = s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO people (name, email) VALUES (?, ?)
		`, p.Name, p.Email)
		if err != nil {
			return fmt.Errorf("insert person: %w", err)
		}
		id, err = res.LastInsertId()
		return err
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// RemovePerson deletes the person row and their enrollment join rows.
// The events the person was enrolled in are untouched.
func (s *Store) RemovePerson(ctx context.Context, id int64) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if err := personExists(ctx, tx, id); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM enrollments WHERE person_id = ?`, id); err != nil {
			return fmt.Errorf("detach enrollments: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM people WHERE id = ?`, id); err != nil {
			return fmt.Errorf("delete person: %w", err)
		}
		return nil
	})
}

// ModifyPerson applies a partial update to the person with the given
// id. A nil field pointer leaves that field unchanged.
func (s *Store) ModifyPerson(ctx context.Context, id int64, name, email *string) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		p := &domain.Person{ID: id}
		err := tx.QueryRowContext(ctx, `
			SELECT name, email FROM people WHERE id = ?
		`, id).Scan(&p.Name, &p.Email)
		if errors.Is(err, sql.ErrNoRows) {
			return &domain.NotFoundError{Entity: domain.EntityPerson}
		}
		if err != nil {
			return fmt.Errorf("load person: %w", err)
		}

		if name != nil {
			if err := p.SetName(*name); err != nil {
				return err
			}
		}
		if email != nil {
			if err := p.SetEmail(*email); err != nil {
				return err
			}
		}

		if _, err := tx.ExecContext(ctx, `
			UPDATE people SET name = ?, email = ? WHERE id = ?
		`, p.Name, p.Email, id); err != nil {
			return fmt.Errorf("update person: %w", err)
		}
		return nil
	})
}

// FindPeopleByName returns records for all people with the exact given
// name.
func (s *Store) FindPeopleByName(ctx context.Context, name string) ([]PersonRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, email FROM people WHERE name = ?
	`, name)
	if err != nil {
		return nil, fmt.Errorf("query people: %w", err)
	}
	defer rows.Close()

	records := []PersonRecord{}
	for rows.Next() {
		var r PersonRecord
		if err := rows.Scan(&r.ID, &r.Name, &r.Email); err != nil {
			return nil, fmt.Errorf("scan person: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// personExists returns NotFound if no person row has the given id.
func personExists(ctx context.Context, tx *sql.Tx, id int64) error {
	var one int
	err := tx.QueryRowContext(ctx, `SELECT 1 FROM people WHERE id = ?`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return &domain.NotFoundError{Entity: domain.EntityPerson}
	}
	if err != nil {
		return fmt.Errorf("check person: %w", err)
	}
	return nil
}

// personIDByEmail resolves a person by their (assumed unique) email.
func personIDByEmail(ctx context.Context, tx *sql.Tx, email string) (int64, error) {
	var id int64
	err := tx.QueryRowContext(ctx, `SELECT id FROM people WHERE email = ?`, email).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, &domain.NotFoundError{Entity: domain.EntityPerson}
	}
	if err != nil {
		return 0, fmt.Errorf("look up person by email: %w", err)
	}
	return id, nil
}
