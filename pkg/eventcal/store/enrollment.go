package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mkarpinski/eventcal/pkg/eventcal/domain"
)

// The enrollments join table is the single source of truth for the
// person-event relation. Both directions (a person's events, an
// event's attendees) are read as views over it, so the two sides
// cannot drift apart.

// Enroll signs the person with the given email up for an event.
// Enrolling twice is a no-op; the relation is a set.
func (s *Store) Enroll(ctx context.Context, email string, eventID int64) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		personID, err := personIDByEmail(ctx, tx, email)
		if err != nil {
			return err
		}
		if err := eventExists(ctx, tx, eventID); err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO enrollments (person_id, event_id) VALUES (?, ?)
			ON CONFLICT (person_id, event_id) DO NOTHING
		`, personID, eventID)
		if err != nil {
			return fmt.Errorf("insert enrollment: %w", err)
		}
		return nil
	})
}

// Withdraw removes the person with the given email from an event.
// Withdrawing when not enrolled is a no-op.
func (s *Store) Withdraw(ctx context.Context, email string, eventID int64) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		personID, err := personIDByEmail(ctx, tx, email)
		if err != nil {
			return err
		}
		if err := eventExists(ctx, tx, eventID); err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `
			DELETE FROM enrollments WHERE person_id = ? AND event_id = ?
		`, personID, eventID)
		if err != nil {
			return fmt.Errorf("delete enrollment: %w", err)
		}
		return nil
	})
}

// FindEventsForPerson returns the events the person with the given
// email is enrolled in.
func (s *Store) FindEventsForPerson(ctx context.Context, email string) ([]EventRecord, error) {
	var exists int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM people WHERE email = ?`, email).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Entity: domain.EntityPerson}
	}
	if err != nil {
		return nil, fmt.Errorf("look up person by email: %w", err)
	}

	return s.queryEvents(ctx, `
		SELECT e.id, e.name, e.start_date, e.start_time, e.end_date, e.end_time, e.description, v.name
		FROM events e
		JOIN enrollments en ON en.event_id = e.id
		JOIN people p ON p.id = en.person_id
		LEFT JOIN venues v ON e.venue_id = v.id
		WHERE p.email = ?
	`, email)
}

// FindAttendees returns the people enrolled in the event with the
// given id.
func (s *Store) FindAttendees(ctx context.Context, eventID int64) ([]PersonRecord, error) {
	var exists int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM events WHERE id = ?`, eventID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Entity: domain.EntityEvent}
	}
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT p.id, p.name, p.email
		FROM people p JOIN enrollments en ON en.person_id = p.id
		WHERE en.event_id = ?
	`, eventID)
	if err != nil {
		return nil, fmt.Errorf("query attendees: %w", err)
	}
	defer rows.Close()

	records := []PersonRecord{}
	for rows.Next() {
		var r PersonRecord
		if err := rows.Scan(&r.ID, &r.Name, &r.Email); err != nil {
			return nil, fmt.Errorf("scan attendee: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
