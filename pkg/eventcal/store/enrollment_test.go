package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarpinski/eventcal/pkg/eventcal/domain"
	"github.com/mkarpinski/eventcal/pkg/eventcal/store"
)

func TestEnrollWithdraw_Inverse(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	eventID, err := s.AddEvent(ctx, "party",
		"2024-01-13", "20:00", "2024-01-14", "05:00",
		"the ending hour is approximate")
	require.NoError(t, err)
	personID, err := s.AddPerson(ctx, "Marian Paździoch", "marian@pazdzioch.pl")
	require.NoError(t, err)

	require.NoError(t, s.Enroll(ctx, "marian@pazdzioch.pl", eventID))

	attendees, err := s.FindAttendees(ctx, eventID)
	require.NoError(t, err)
	assert.Contains(t, attendees, store.PersonRecord{
		ID: personID, Name: "Marian Paździoch", Email: "marian@pazdzioch.pl",
	})

	events, err := s.FindEventsForPerson(ctx, "marian@pazdzioch.pl")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, eventID, events[0].ID)

	require.NoError(t, s.Withdraw(ctx, "marian@pazdzioch.pl", eventID))

	attendees, err = s.FindAttendees(ctx, eventID)
	require.NoError(t, err)
	assert.Empty(t, attendees)

	events, err = s.FindEventsForPerson(ctx, "marian@pazdzioch.pl")
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestEnroll_TwiceIsSetSemantics(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	eventID, err := s.AddEvent(ctx, "meetup",
		"2024-02-01", "18:00", "2024-02-01", "20:00", "")
	require.NoError(t, err)
	_, err = s.AddPerson(ctx, "Halina", "halina@kiepska.pl")
	require.NoError(t, err)

	require.NoError(t, s.Enroll(ctx, "halina@kiepska.pl", eventID))
	require.NoError(t, s.Enroll(ctx, "halina@kiepska.pl", eventID))

	attendees, err := s.FindAttendees(ctx, eventID)
	require.NoError(t, err)
	assert.Len(t, attendees, 1)
}

func TestEnroll_UnknownEmail(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	eventID := addEvent(t, s, "meetup")

	err := s.Enroll(ctx, "nobody@nowhere.pl", eventID)
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestEnroll_UnknownEvent(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	_, err := s.AddPerson(ctx, "Halina", "halina@kiepska.pl")
	require.NoError(t, err)

	err = s.Enroll(ctx, "halina@kiepska.pl", 404)
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestRemoveEvent_DetachesButKeepsPeople(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	eventID := addEvent(t, s, "party")
	_, err := s.AddPerson(ctx, "Ferdynand", "ferdek@kiepski.pl")
	require.NoError(t, err)
	require.NoError(t, s.Enroll(ctx, "ferdek@kiepski.pl", eventID))

	require.NoError(t, s.RemoveEvent(ctx, eventID))

	// The join row is gone with the event; the person record stays.
	records, err := s.FindPeopleByName(ctx, "Ferdynand")
	require.NoError(t, err)
	require.Len(t, records, 1)

	events, err := s.FindEventsForPerson(ctx, "ferdek@kiepski.pl")
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestRemovePerson_DetachesButKeepsEvents(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	eventID := addEvent(t, s, "party")
	personID, err := s.AddPerson(ctx, "Ferdynand", "ferdek@kiepski.pl")
	require.NoError(t, err)
	require.NoError(t, s.Enroll(ctx, "ferdek@kiepski.pl", eventID))

	require.NoError(t, s.RemovePerson(ctx, personID))

	records, err := s.FindEventsByName(ctx, "party")
	require.NoError(t, err)
	require.Len(t, records, 1)

	attendees, err := s.FindAttendees(ctx, eventID)
	require.NoError(t, err)
	assert.Empty(t, attendees)
}

func TestFindAttendees_UnknownEvent(t *testing.T) {
	_, err := newTestStore(t).FindAttendees(context.Background(), 404)
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestFindEventsForPerson_UnknownEmail(t *testing.T) {
	_, err := newTestStore(t).FindEventsForPerson(context.Background(), "x@y.pl")
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}
