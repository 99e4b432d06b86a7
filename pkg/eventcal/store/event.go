package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mkarpinski/eventcal/pkg/eventcal/domain"
)

// AddEvent validates the field values, inserts a new event row, and
// returns the assigned identifier.
func (s *Store) AddEvent(ctx context.Context, name, startDate, startTime, endDate, endTime, description string) (int64, error) {
	e, err := domain.NewEvent(name, startDate, startTime, endDate, endTime, description)
	if err != nil {
		return 0, err
	}

	var id int64
	err = s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO events (name, start_date, start_time, end_date, end_time, description)
			VALUES (?, ?, ?, ?, ?, ?)
		`, e.Name, e.StartDate, e.StartTime, e.EndDate, e.EndTime, e.Description)
		if err != nil {
			return fmt.Errorf("insert event: %w", err)
		}
		id, err = res.LastInsertId()
		return err
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// RemoveEvent deletes the event row and its enrollment join rows.
// Enrolled people are untouched.
func (s *Store) RemoveEvent(ctx context.Context, id int64) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if err := eventExists(ctx, tx, id); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM enrollments WHERE event_id = ?`, id); err != nil {
			return fmt.Errorf("detach enrollments: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id); err != nil {
			return fmt.Errorf("delete event: %w", err)
		}
		return nil
	})
}

// ModifyEvent applies a partial update to the event with the given id.
// A nil field pointer leaves that field unchanged. The row is loaded
// first, so a missing id fails before any field validation runs.
func (s *Store) ModifyEvent(ctx context.Context, id int64, name, startDate, startTime, endDate, endTime, description *string) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		e, err := loadEvent(ctx, tx, id)
		if err != nil {
			return err
		}

		if name != nil {
			if err := e.SetName(*name); err != nil {
				return err
			}
		}
		if startDate != nil {
			if err := e.SetStartDate(*startDate); err != nil {
				return err
			}
		}
		if startTime != nil {
			if err := e.SetStartTime(*startTime); err != nil {
				return err
			}
		}
		if endDate != nil {
			if err := e.SetEndDate(*endDate); err != nil {
				return err
			}
		}
		if endTime != nil {
			if err := e.SetEndTime(*endTime); err != nil {
				return err
			}
		}
		if description != nil {
			e.SetDescription(*description)
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE events
			SET name = ?, start_date = ?, start_time = ?, end_date = ?, end_time = ?, description = ?
			WHERE id = ?
		`, e.Name, e.StartDate, e.StartTime, e.EndDate, e.EndTime, e.Description, id)
		if err != nil {
			return fmt.Errorf("update event: %w", err)
		}
		return nil
	})
}

// FindEventsByName returns flattened records for all events with the
// exact given name.
func (s *Store) FindEventsByName(ctx context.Context, name string) ([]EventRecord, error) {
	return s.queryEvents(ctx, `
		SELECT e.id, e.name, e.start_date, e.start_time, e.end_date, e.end_time, e.description, v.name
		FROM events e LEFT JOIN venues v ON e.venue_id = v.id
		WHERE e.name = ?
	`, name)
}

// AssignVenue links an event to a venue.
func (s *Store) AssignVenue(ctx context.Context, venueID, eventID int64) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if err := eventExists(ctx, tx, eventID); err != nil {
			return err
		}
		if err := venueExists(ctx, tx, venueID); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `UPDATE events SET venue_id = ? WHERE id = ?`, venueID, eventID)
		if err != nil {
			return fmt.Errorf("assign venue: %w", err)
		}
		return nil
	})
}

// UnassignVenue clears an event's venue reference.
func (s *Store) UnassignVenue(ctx context.Context, eventID int64) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if err := eventExists(ctx, tx, eventID); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `UPDATE events SET venue_id = NULL WHERE id = ?`, eventID)
		if err != nil {
			return fmt.Errorf("unassign venue: %w", err)
		}
		return nil
	})
}

// FindEventsAtVenue returns events taking place at venues with the
// exact given name.
func (s *Store) FindEventsAtVenue(ctx context.Context, venueName string) ([]EventRecord, error) {
	return s.queryEvents(ctx, `
		SELECT e.id, e.name, e.start_date, e.start_time, e.end_date, e.end_time, e.description, v.name
		FROM events e JOIN venues v ON e.venue_id = v.id
		WHERE v.name = ?
	`, venueName)
}

// queryEvents runs a query whose columns match EventRecord.
func (s *Store) queryEvents(ctx context.Context, query string, args ...any) ([]EventRecord, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	records := []EventRecord{}
	for rows.Next() {
		var r EventRecord
		if err := rows.Scan(&r.ID, &r.Name, &r.StartDate, &r.StartTime, &r.EndDate, &r.EndTime, &r.Description, &r.VenueName); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// loadEvent reads one event row into a domain entity, bypassing the
// validating setters; the row was validated when written.
func loadEvent(ctx context.Context, tx *sql.Tx, id int64) (*domain.Event, error) {
	e := &domain.Event{ID: id}
	err := tx.QueryRowContext(ctx, `
		SELECT name, start_date, start_time, end_date, end_time, description, venue_id
		FROM events WHERE id = ?
	`, id).Scan(&e.Name, &e.StartDate, &e.StartTime, &e.EndDate, &e.EndTime, &e.Description, &e.VenueID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Entity: domain.EntityEvent}
	}
	if err != nil {
		return nil, fmt.Errorf("load event: %w", err)
	}
	return e, nil
}

// eventExists returns NotFound if no event row has the given id.
func eventExists(ctx context.Context, tx *sql.Tx, id int64) error {
	var one int
	err := tx.QueryRowContext(ctx, `SELECT 1 FROM events WHERE id = ?`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return &domain.NotFoundError{Entity: domain.EntityEvent}
	}
	if err != nil {
		return fmt.Errorf("check event: %w", err)
	}
	return nil
}
