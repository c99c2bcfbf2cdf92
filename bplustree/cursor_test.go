package bplus

import (
	"math/rand"
	"path/filepath"
	"testing"

	"MiniDB/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanEmptyTable(t *testing.T) {
	table := openTestTable(t)

	c := table.Start()
	assert.True(t, c.EndOfTable())
	assert.Empty(t, scanKeys(table))
}

func TestScanYieldsStrictlyIncreasingKeys(t *testing.T) {
	table := openTestTable(t)

	ids := seq(1, 50)
	rng := rand.New(rand.NewSource(7))
	rng.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })
	mustInsert(t, table, ids...)

	keys := scanKeys(table)
	require.Len(t, keys, 50)
	for i := 1; i < len(keys); i++ {
		assert.Less(t, keys[i-1], keys[i])
	}
}

func TestCursorValueMatchesRow(t *testing.T) {
	table := openTestTable(t)
	mustInsert(t, table, 11)

	c := table.Start()
	require.False(t, c.EndOfTable())

	var row types.Row
	types.DeserializeRow(c.Value(), &row)
	assert.Equal(t, uint32(11), row.ID)
	assert.Equal(t, "user11", row.UsernameString())
}

func TestPersistenceAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "persist.db")

	table, err := Open(path)
	require.NoError(t, err)
	mustInsert(t, table, seq(1, 5)...)
	require.NoError(t, table.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	assert.Equal(t, seq(1, 5), scanKeys(reopened))

	row, err := reopened.Get(3)
	require.NoError(t, err)
	assert.Equal(t, "user3", row.UsernameString())
	assert.Equal(t, "person3@example.com", row.EmailString())
}

func TestPersistenceOfMultiLevelTree(t *testing.T) {
	path := filepath.Join(t.TempDir(), "persist_split.db")

	table, err := Open(path)
	require.NoError(t, err)
	mustInsert(t, table, seq(1, 30)...)
	require.NoError(t, table.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	assert.Equal(t, seq(1, 30), scanKeys(reopened))
	checkTreeInvariants(t, reopened)

	// The reopened tree keeps accepting writes
	mustInsert(t, reopened, seq(31, 35)...)
	require.NoError(t, reopened.Delete(1))
	assert.Equal(t, seq(2, 35), scanKeys(reopened))
}
