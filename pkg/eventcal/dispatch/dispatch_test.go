package dispatch_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarpinski/eventcal/pkg/eventcal/dispatch"
	"github.com/mkarpinski/eventcal/pkg/eventcal/domain"
)

// fakeCaller records forwarded calls and plays back canned responses.
type fakeCaller struct {
	calls  []string
	result any
	err    error
}

func (f *fakeCaller) Call(_ context.Context, op string, _ []any) (any, error) {
	f.calls = append(f.calls, op)
	return f.result, f.err
}

func newLocalDispatcher(t *testing.T) (*dispatch.Dispatcher, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "calendar.db")
	d := dispatch.New(dispatch.Config{StorePath: dbPath})
	_, err := d.Call(context.Background(), "init", nil, false)
	require.NoError(t, err)
	return d, dbPath
}

func TestCall_UnknownOp(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "calendar.db")
	remote := &fakeCaller{}
	d := dispatch.New(dispatch.Config{StorePath: dbPath}, dispatch.WithRemote(remote))

	for _, isRemote := range []bool{false, true} {
		_, err := d.Call(ctx, "event.explode", nil, isRemote)
		require.Error(t, err)
		assert.True(t, dispatch.IsUnknownOp(err))
	}

	// Neither path touched a store or the remote endpoint.
	_, statErr := os.Stat(dbPath)
	assert.True(t, os.IsNotExist(statErr))
	assert.Empty(t, remote.calls)
}

func TestCall_LocalRoundTrip(t *testing.T) {
	ctx := context.Background()
	d, _ := newLocalDispatcher(t)

	res, err := d.Call(ctx, "event.add", []any{
		"lecture", "2024-01-14", "14:15", "2024-01-14", "16:00", "type systems",
	}, false)
	require.NoError(t, err)
	id, ok := res.(int64)
	require.True(t, ok)

	res, err = d.Call(ctx, "event.findByName", []any{"lecture"}, false)
	require.NoError(t, err)
	records, ok := res.([]map[string]any)
	require.True(t, ok)
	require.Len(t, records, 1)
	assert.Equal(t, map[string]any{
		"id":          id,
		"name":        "lecture",
		"start_date":  "2024-01-14",
		"start_time":  "14:15",
		"end_date":    "2024-01-14",
		"end_time":    "16:00",
		"description": "type systems",
		"venue_name":  nil,
	}, records[0])
}

func TestCall_LocalEnrollFlow(t *testing.T) {
	ctx := context.Background()
	d, _ := newLocalDispatcher(t)

	res, err := d.Call(ctx, "event.add", []any{
		"party", "2024-01-13", "20:00", "2024-01-14", "05:00", "",
	}, false)
	require.NoError(t, err)
	eventID := res.(int64)

	_, err = d.Call(ctx, "person.add", []any{"Marian Paździoch", "marian@pazdzioch.pl"}, false)
	require.NoError(t, err)

	_, err = d.Call(ctx, "enroll", []any{"marian@pazdzioch.pl", eventID}, false)
	require.NoError(t, err)

	res, err = d.Call(ctx, "event.findAttendees", []any{eventID}, false)
	require.NoError(t, err)
	attendees := res.([]map[string]any)
	require.Len(t, attendees, 1)
	assert.Equal(t, "marian@pazdzioch.pl", attendees[0]["email"])

	_, err = d.Call(ctx, "withdraw", []any{"marian@pazdzioch.pl", eventID}, false)
	require.NoError(t, err)

	res, err = d.Call(ctx, "event.findAttendees", []any{eventID}, false)
	require.NoError(t, err)
	assert.Empty(t, res.([]map[string]any))
}

func TestCall_ModifyWithNilsKeepsFields(t *testing.T) {
	ctx := context.Background()
	d, _ := newLocalDispatcher(t)

	res, err := d.Call(ctx, "event.add", []any{
		"lecture", "2024-01-14", "14:15", "2024-01-14", "16:00", "type systems",
	}, false)
	require.NoError(t, err)
	id := res.(int64)

	_, err = d.Call(ctx, "event.modify", []any{id, "renamed", nil, nil, nil, nil, nil}, false)
	require.NoError(t, err)

	res, err = d.Call(ctx, "event.findByName", []any{"renamed"}, false)
	require.NoError(t, err)
	records := res.([]map[string]any)
	require.Len(t, records, 1)
	assert.Equal(t, "type systems", records[0]["description"])
	assert.Equal(t, "14:15", records[0]["start_time"])
}

func TestCall_RemoteForwardsVerbatim(t *testing.T) {
	ctx := context.Background()
	remote := &fakeCaller{result: int64(7)}
	d := dispatch.New(dispatch.Config{StorePath: filepath.Join(t.TempDir(), "unused.db")},
		dispatch.WithRemote(remote))

	res, err := d.Call(ctx, "person.add", []any{"Ferdynand", "ferdek@kiepski.pl"}, true)
	require.NoError(t, err)
	assert.Equal(t, int64(7), res)
	assert.Equal(t, []string{"person.add"}, remote.calls)
}

func TestCall_RemoteWithoutCaller(t *testing.T) {
	d := dispatch.New(dispatch.Config{StorePath: filepath.Join(t.TempDir(), "unused.db")})
	_, err := d.Call(context.Background(), "init", nil, true)
	assert.ErrorIs(t, err, dispatch.ErrNoRemote)
}

func TestCall_ArgumentDecoding(t *testing.T) {
	ctx := context.Background()
	d, _ := newLocalDispatcher(t)

	tests := []struct {
		name string
		op   string
		args []any
	}{
		{"wrong arity", "event.add", []any{"just a name"}},
		{"id as string", "event.remove", []any{"seven"}},
		{"fractional id", "event.remove", []any{1.5}},
		{"string as int", "enroll", []any{"a@b.pl", "seven"}},
		{"int as string", "person.add", []any{42, "a@b.pl"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := d.Call(ctx, tt.op, tt.args, false)
			require.Error(t, err)
			assert.True(t, domain.IsValidation(err))
		})
	}

	// JSON-decoded identifiers arrive as float64 and are accepted.
	res, err := d.Call(ctx, "event.add", []any{
		"x", "2024-01-01", "10:00", "2024-01-01", "11:00", "",
	}, false)
	require.NoError(t, err)
	_, err = d.Call(ctx, "event.remove", []any{float64(res.(int64))}, false)
	assert.NoError(t, err)
}

func TestOps_CoversOperationSurface(t *testing.T) {
	d := dispatch.New(dispatch.Config{})
	ops := d.Ops()

	want := []string{
		"enroll", "event.add", "event.assignVenue", "event.findAttendees",
		"event.findByName", "event.modify", "event.remove", "event.unassignVenue",
		"init", "person.add", "person.findByName", "person.findEvents",
		"person.modify", "person.remove", "venue.add", "venue.findByName",
		"venue.findEvents", "venue.modify", "venue.remove", "withdraw",
	}
	assert.Equal(t, want, ops)
}
