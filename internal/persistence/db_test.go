package persistence

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/mogul/internal/engine"
	"github.com/talgya/mogul/internal/player"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "save.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	db := openTestDB(t)

	g := &engine.GameState{
		Turn:   5,
		Player: &player.Player{Name: "Sam", Country: "FR", Money: 42_000},
		Reports: []engine.QuarterReport{
			{Quarter: 4, BusinessNet: 1_200, ClosingMoney: 40_000},
			{Quarter: 5, BusinessNet: 2_000, ClosingMoney: 42_000},
		},
		Notifications: []engine.Notification{
			{ID: "n1", Type: "info", Title: "Hello", Message: "World", Date: "Y2 Q1"},
		},
	}
	require.NoError(t, db.SaveState(g))

	loaded, err := db.LoadLatest()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, 5, loaded.Turn)
	assert.Equal(t, int64(42_000), loaded.Player.Money)
	assert.Len(t, loaded.Reports, 2)

	byTurn, err := db.LoadTurn(5)
	require.NoError(t, err)
	assert.Equal(t, "Sam", byTurn.Player.Name)

	last, err := db.GetMeta("last_turn")
	require.NoError(t, err)
	assert.Equal(t, "5", last)
}

func TestLoadLatest_EmptyDatabase(t *testing.T) {
	db := openTestDB(t)

	g, err := db.LoadLatest()
	require.NoError(t, err)
	assert.Nil(t, g)
}

func TestReports_OldestFirst(t *testing.T) {
	db := openTestDB(t)

	g := &engine.GameState{
		Turn: 3,
		Reports: []engine.QuarterReport{
			{Quarter: 1, ClosingMoney: 100},
			{Quarter: 2, ClosingMoney: 200},
			{Quarter: 3, ClosingMoney: 300},
		},
	}
	require.NoError(t, db.SaveState(g))

	got, err := db.Reports(2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 2, got[0].Quarter)
	assert.Equal(t, 3, got[1].Quarter)
}

func TestMarkNotificationRead(t *testing.T) {
	db := openTestDB(t)

	g := &engine.GameState{
		Turn: 1,
		Notifications: []engine.Notification{
			{ID: "n1", Type: "warning", Title: "T", Message: "M", Date: "Y1 Q1"},
		},
	}
	require.NoError(t, db.SaveState(g))
	require.NoError(t, db.MarkNotificationRead("n1"))

	var read int
	require.NoError(t, db.conn.Get(&read,
		"SELECT is_read FROM notifications WHERE id = ?", "n1"))
	assert.Equal(t, 1, read)
}
