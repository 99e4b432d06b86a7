package dispatch

import (
	"context"

	"github.com/mkarpinski/eventcal/pkg/eventcal/store"
)

// Handler executes one named operation against an open store handle.
// Results are limited to nil, an int64 identifier, or a slice of flat
// records, so they cross the remote transport unchanged.
type Handler func(ctx context.Context, st *store.Store, args Args) (any, error)

// Operation names exposed by both transports.
const (
	OpInit             = "init"
	OpEventAdd         = "event.add"
	OpEventRemove      = "event.remove"
	OpEventModify      = "event.modify"
	OpEventFindByName  = "event.findByName"
	OpEventAssign      = "event.assignVenue"
	OpEventUnassign    = "event.unassignVenue"
	OpEventAttendees   = "event.findAttendees"
	OpVenueAdd         = "venue.add"
	OpVenueRemove      = "venue.remove"
	OpVenueModify      = "venue.modify"
	OpVenueFindByName  = "venue.findByName"
	OpVenueFindEvents  = "venue.findEvents"
	OpPersonAdd        = "person.add"
	OpPersonRemove     = "person.remove"
	OpPersonModify     = "person.modify"
	OpPersonFindByName = "person.findByName"
	OpPersonFindEvents = "person.findEvents"
	OpEnroll           = "enroll"
	OpWithdraw         = "withdraw"
)

// newOps builds the static operation registry. Built once per
// dispatcher; names outside this map are rejected, never evaluated.
func newOps() map[string]Handler {
	return map[string]Handler{
		OpInit: func(ctx context.Context, st *store.Store, args Args) (any, error) {
			if err := args.arity(0); err != nil {
				return nil, err
			}
			return nil, st.Init(ctx)
		},

		OpEventAdd: func(ctx context.Context, st *store.Store, args Args) (any, error) {
			if err := args.arity(6); err != nil {
				return nil, err
			}
			var fields [6]string
			for i := range fields {
				s, err := args.str(i)
				if err != nil {
					return nil, err
				}
				fields[i] = s
			}
			return st.AddEvent(ctx, fields[0], fields[1], fields[2], fields[3], fields[4], fields[5])
		},

		OpEventRemove: func(ctx context.Context, st *store.Store, args Args) (any, error) {
			if err := args.arity(1); err != nil {
				return nil, err
			}
			id, err := args.id(0)
			if err != nil {
				return nil, err
			}
			return nil, st.RemoveEvent(ctx, id)
		},

		OpEventModify: func(ctx context.Context, st *store.Store, args Args) (any, error) {
			if err := args.arity(7); err != nil {
				return nil, err
			}
			id, err := args.id(0)
			if err != nil {
				return nil, err
			}
			var fields [6]*string
			for i := range fields {
				s, err := args.optStr(i + 1)
				if err != nil {
					return nil, err
				}
				fields[i] = s
			}
			return nil, st.ModifyEvent(ctx, id, fields[0], fields[1], fields[2], fields[3], fields[4], fields[5])
		},

		OpEventFindByName: func(ctx context.Context, st *store.Store, args Args) (any, error) {
			if err := args.arity(1); err != nil {
				return nil, err
			}
			name, err := args.str(0)
			if err != nil {
				return nil, err
			}
			records, err := st.FindEventsByName(ctx, name)
			if err != nil {
				return nil, err
			}
			return flattenEvents(records), nil
		},

		OpEventAssign: func(ctx context.Context, st *store.Store, args Args) (any, error) {
			if err := args.arity(2); err != nil {
				return nil, err
			}
			venueID, err := args.id(0)
			if err != nil {
				return nil, err
			}
			eventID, err := args.id(1)
			if err != nil {
				return nil, err
			}
			return nil, st.AssignVenue(ctx, venueID, eventID)
		},

		OpEventUnassign: func(ctx context.Context, st *store.Store, args Args) (any, error) {
			if err := args.arity(1); err != nil {
				return nil, err
			}
			eventID, err := args.id(0)
			if err != nil {
				return nil, err
			}
			return nil, st.UnassignVenue(ctx, eventID)
		},

		OpEventAttendees: func(ctx context.Context, st *store.Store, args Args) (any, error) {
			if err := args.arity(1); err != nil {
				return nil, err
			}
			eventID, err := args.id(0)
			if err != nil {
				return nil, err
			}
			records, err := st.FindAttendees(ctx, eventID)
			if err != nil {
				return nil, err
			}
			return flattenPeople(records), nil
		},

		OpVenueAdd: func(ctx context.Context, st *store.Store, args Args) (any, error) {
			if err := args.arity(2); err != nil {
				return nil, err
			}
			name, err := args.str(0)
			if err != nil {
				return nil, err
			}
			address, err := args.optStr(1)
			if err != nil {
				return nil, err
			}
			return st.AddVenue(ctx, name, address)
		},

		OpVenueRemove: func(ctx context.Context, st *store.Store, args Args) (any, error) {
			if err := args.arity(1); err != nil {
				return nil, err
			}
			id, err := args.id(0)
			if err != nil {
				return nil, err
			}
			return nil, st.RemoveVenue(ctx, id)
		},

		OpVenueModify: func(ctx context.Context, st *store.Store, args Args) (any, error) {
			if err := args.arity(3); err != nil {
				return nil, err
			}
			id, err := args.id(0)
			if err != nil {
				return nil, err
			}
			name, err := args.optStr(1)
			if err != nil {
				return nil, err
			}
			address, err := args.optStr(2)
			if err != nil {
				return nil, err
			}
			return nil, st.ModifyVenue(ctx, id, name, address)
		},

		OpVenueFindByName: func(ctx context.Context, st *store.Store, args Args) (any, error) {
			if err := args.arity(1); err != nil {
				return nil, err
			}
			name, err := args.str(0)
			if err != nil {
				return nil, err
			}
			records, err := st.FindVenuesByName(ctx, name)
			if err != nil {
				return nil, err
			}
			return flattenVenues(records), nil
		},

		OpVenueFindEvents: func(ctx context.Context, st *store.Store, args Args) (any, error) {
			if err := args.arity(1); err != nil {
				return nil, err
			}
			name, err := args.str(0)
			if err != nil {
				return nil, err
			}
			records, err := st.FindEventsAtVenue(ctx, name)
			if err != nil {
				return nil, err
			}
			return flattenEvents(records), nil
		},

		OpPersonAdd: func(ctx context.Context, st *store.Store, args Args) (any, error) {
			if err := args.arity(2); err != nil {
				return nil, err
			}
			name, err := args.str(0)
			if err != nil {
				return nil, err
			}
			email, err := args.str(1)
			if err != nil {
				return nil, err
			}
			return st.AddPerson(ctx, name, email)
		},

		OpPersonRemove: func(ctx context.Context, st *store.Store, args Args) (any, error) {
			if err := args.arity(1); err != nil {
				return nil, err
			}
			id, err := args.id(0)
			if err != nil {
				return nil, err
			}
			return nil, st.RemovePerson(ctx, id)
		},

		OpPersonModify: func(ctx context.Context, st *store.Store, args Args) (any, error) {
			if err := args.arity(3); err != nil {
				return nil, err
			}
			id, err := args.id(0)
			if err != nil {
				return nil, err
			}
			name, err := args.optStr(1)
			if err != nil {
				return nil, err
			}
			email, err := args.optStr(2)
			if err != nil {
				return nil, err
			}
			return nil, st.ModifyPerson(ctx, id, name, email)
		},

		OpPersonFindByName: func(ctx context.Context, st *store.Store, args Args) (any, error) {
			if err := args.arity(1); err != nil {
				return nil, err
			}
			name, err := args.str(0)
			if err != nil {
				return nil, err
			}
			records, err := st.FindPeopleByName(ctx, name)
			if err != nil {
				return nil, err
			}
			return flattenPeople(records), nil
		},

		OpPersonFindEvents: func(ctx context.Context, st *store.Store, args Args) (any, error) {
			if err := args.arity(1); err != nil {
				return nil, err
			}
			email, err := args.str(0)
			if err != nil {
				return nil, err
			}
			records, err := st.FindEventsForPerson(ctx, email)
			if err != nil {
				return nil, err
			}
			return flattenEvents(records), nil
		},

		OpEnroll: func(ctx context.Context, st *store.Store, args Args) (any, error) {
			if err := args.arity(2); err != nil {
				return nil, err
			}
			email, err := args.str(0)
			if err != nil {
				return nil, err
			}
			eventID, err := args.id(1)
			if err != nil {
				return nil, err
			}
			return nil, st.Enroll(ctx, email, eventID)
		},

		OpWithdraw: func(ctx context.Context, st *store.Store, args Args) (any, error) {
			if err := args.arity(2); err != nil {
				return nil, err
			}
			email, err := args.str(0)
			if err != nil {
				return nil, err
			}
			eventID, err := args.id(1)
			if err != nil {
				return nil, err
			}
			return nil, st.Withdraw(ctx, email, eventID)
		},
	}
}

// flattenEvents converts typed records into the flat shape shared by
// both transports.
func flattenEvents(records []store.EventRecord) []map[string]any {
	out := make([]map[string]any, len(records))
	for i, r := range records {
		out[i] = r.Flat()
	}
	return out
}

func flattenVenues(records []store.VenueRecord) []map[string]any {
	out := make([]map[string]any, len(records))
	for i, r := range records {
		out[i] = r.Flat()
	}
	return out
}

func flattenPeople(records []store.PersonRecord) []map[string]any {
	out := make([]map[string]any, len(records))
	for i, r := range records {
		out[i] = r.Flat()
	}
	return out
}
