package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mkarpinski/eventcal/pkg/eventcal/domain"
)

// AddVenue validates the field values, inserts a new venue row, and
// returns the assigned identifier. address may be nil.
func (s *Store) AddVenue(ctx context.Context, name string, address *string) (int64, error) {
	v, err := domain.NewVenue(name, address)
	if err != nil {
		return 0, err
	}

	var id int64
	err = s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO venues (name, address) VALUES (?, ?)
		`, v.Name, v.Address)
		if err != nil {
			return fmt.Errorf("insert venue: %w", err)
		}
		id, err = res.LastInsertId()
		return err
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// RemoveVenue deletes the venue row. Events referencing it keep
// existing with their venue reference cleared.
func (s *Store) RemoveVenue(ctx context.Context, id int64) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if err := venueExists(ctx, tx, id); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `UPDATE events SET venue_id = NULL WHERE venue_id = ?`, id); err != nil {
			return fmt.Errorf("detach events: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM venues WHERE id = ?`, id); err != nil {
			return fmt.Errorf("delete venue: %w", err)
		}
		return nil
	})
}

// ModifyVenue applies a partial update to the venue with the given id.
// A nil field pointer leaves that field unchanged.
func (s *Store) ModifyVenue(ctx context.Context, id int64, name, address *string) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		v := &domain.Venue{ID: id}
		err := tx.QueryRowContext(ctx, `
			SELECT name, address FROM venues WHERE id = ?
		`, id).Scan(&v.Name, &v.Address)
		if errors.Is(err, sql.ErrNoRows) {
			return &domain.NotFoundError{Entity: domain.EntityVenue}
		}
		if err != nil {
			return fmt.Errorf("load venue: %w", err)
		}

		if name != nil {
			if err := v.SetName(*name); err != nil {
				return err
			}
		}
		if address != nil {
			if err := v.SetAddress(address); err != nil {
				return err
			}
		}

		if _, err := tx.ExecContext(ctx, `
			UPDATE venues SET name = ?, address = ? WHERE id = ?
		`, v.Name, v.Address, id); err != nil {
			return fmt.Errorf("update venue: %w", err)
		}
		return nil
	})
}

// FindVenuesByName returns records for all venues with the exact given
// name.
func (s *Store) FindVenuesByName(ctx context.Context, name string) ([]VenueRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, address FROM venues WHERE name = ?
	`, name)
	if err != nil {
		return nil, fmt.Errorf("query venues: %w", err)
	}
	defer rows.Close()

	records := []VenueRecord{}
	for rows.Next() {
		var r VenueRecord
		if err := rows.Scan(&r.ID, &r.Name, &r.Address); err != nil {
			return nil, fmt.Errorf("scan venue: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// venueExists returns NotFound if no venue row has the given id.
func venueExists(ctx context.Context, tx *sql.Tx, id int64) error {
	var one int
	err := tx.QueryRowContext(ctx, `SELECT 1 FROM venues WHERE id = ?`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return &domain.NotFoundError{Entity: domain.EntityVenue}
	}
	if err != nil {
		return fmt.Errorf("check venue: %w", err)
	}
	return nil
}
