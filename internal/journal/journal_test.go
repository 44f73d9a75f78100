package journal

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/doudizhu-tally/internal/config"
	"github.com/palemoky/doudizhu-tally/internal/tally"
)

func newTestRecorder(t *testing.T, maxLen int64) (*RedisRecorder, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	return NewRedisRecorder(client, "test:journal", maxLen), mr
}

func TestEncodeDecode(t *testing.T) {
	t.Parallel()

	at := time.UnixMilli(1_700_000_000_123)
	entry := Entry{
		Session:   "s-1",
		Kind:      tally.EventIncrement,
		Row:       3,
		Col:       2,
		Delta:     2,
		Remaining: 9,
		At:        at,
	}

	data, err := Encode(entry)
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, entry.Session, decoded.Session)
	assert.Equal(t, entry.Kind, decoded.Kind)
	assert.Equal(t, entry.Row, decoded.Row)
	assert.Equal(t, entry.Col, decoded.Col)
	assert.Equal(t, entry.Delta, decoded.Delta)
	assert.Equal(t, entry.Remaining, decoded.Remaining)
	assert.True(t, at.Equal(decoded.At))
}

func TestDecode_Invalid(t *testing.T) {
	t.Parallel()

	_, err := Decode([]byte{0xff, 0xff, 0xff})
	assert.Error(t, err)

	data, err := Encode(Entry{Kind: tally.EventKind(42)})
	require.NoError(t, err)
	_, err = Decode(data)
	assert.Error(t, err, "unknown kinds are rejected")
}

func TestRedisRecorder_WriteRecent(t *testing.T) {
	t.Parallel()

	rec, _ := newTestRecorder(t, 0)
	defer func() { _ = rec.Close() }()
	ctx := context.Background()

	require.NoError(t, rec.Write(ctx, Entry{Session: rec.Session(), Kind: tally.EventIncrement, Row: 1, Col: 1, Delta: 1, Remaining: 11}))
	require.NoError(t, rec.Write(ctx, Entry{Session: rec.Session(), Kind: tally.EventUndo, Row: 1, Col: 1, Delta: 1, Remaining: 12}))

	entries, err := rec.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, tally.EventUndo, entries[0].Kind, "newest first")
	assert.Equal(t, tally.EventIncrement, entries[1].Kind)
	assert.Equal(t, rec.Session(), entries[0].Session)

	none, err := rec.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestRedisRecorder_TrimsToMaxLen(t *testing.T) {
	t.Parallel()

	rec, mr := newTestRecorder(t, 3)
	defer func() { _ = rec.Close() }()
	ctx := context.Background()

	for i := range 5 {
		require.NoError(t, rec.Write(ctx, Entry{Kind: tally.EventIncrement, Row: i}))
	}

	items, err := mr.List("test:journal")
	require.NoError(t, err)
	assert.Len(t, items, 3)

	entries, err := rec.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, 4, entries[0].Row)
	assert.Equal(t, 2, entries[2].Row)
}

func TestRedisRecorder_RecordFlushesOnClose(t *testing.T) {
	t.Parallel()

	rec, mr := newTestRecorder(t, 0)
	fixed := time.UnixMilli(1_700_000_000_000)
	rec.now = func() time.Time { return fixed }

	rec.Record(tally.Event{Kind: tally.EventIncrement, Row: 0, Col: 1, Delta: 1, Remaining: 11})
	rec.Record(tally.Event{Kind: tally.EventReset, Row: -1, Col: -1})
	require.NoError(t, rec.Close())

	items, err := mr.List("test:journal")
	require.NoError(t, err)
	require.Len(t, items, 2)

	newest, err := Decode([]byte(items[0]))
	require.NoError(t, err)
	assert.Equal(t, tally.EventReset, newest.Kind)
	assert.Equal(t, -1, newest.Row)
	assert.True(t, fixed.Equal(newest.At))

	// Closed recorders ignore further events.
	assert.NotPanics(t, func() {
		rec.Record(tally.Event{Kind: tally.EventUndo})
	})
	assert.NoError(t, rec.Close(), "close is idempotent")
}

func TestOpen(t *testing.T) {
	t.Parallel()

	t.Run("disabled", func(t *testing.T) {
		t.Parallel()
		rec, err := Open(config.JournalConfig{Enabled: false})
		require.NoError(t, err)
		assert.IsType(t, Nop{}, rec)
		assert.NoError(t, rec.Close())
	})

	t.Run("enabled", func(t *testing.T) {
		t.Parallel()
		mr := miniredis.RunT(t)
		rec, err := Open(config.JournalConfig{Enabled: true, Addr: mr.Addr(), Key: "k", MaxLen: 10})
		require.NoError(t, err)
		require.IsType(t, &RedisRecorder{}, rec)

		rec.Record(tally.Event{Kind: tally.EventClear, Row: 2, Col: 3, Remaining: 5})
		require.NoError(t, rec.Close())

		items, err := mr.List("k")
		require.NoError(t, err)
		assert.Len(t, items, 1)
	})

	t.Run("unreachable", func(t *testing.T) {
		t.Parallel()
		mr := miniredis.RunT(t)
		addr := mr.Addr()
		mr.Close()

		rec, err := Open(config.JournalConfig{Enabled: true, Addr: addr, Key: "k"})
		assert.Error(t, err)
		assert.Nil(t, rec)
	})
}
