package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontdesk-backend/models"
)

func TestRoomLookups(t *testing.T) {
	db := newTestDB(t)
	repo := NewRoomRepository(db)

	createRoom(t, db, "r1", models.RoomTypeDouble, "201")
	occupied := createRoom(t, db, "r2", models.RoomTypeDouble, "202")
	occupied.MarkOccupied()
	require.NoError(t, repo.Update(&occupied))

	room, err := repo.LoadByNumber("201")
	require.NoError(t, err)
	assert.Equal(t, "r1", room.RoomID)

	_, err = repo.LoadByNumber("999")
	assert.ErrorIs(t, err, ErrRoomNotFound)

	count, err := repo.CountByType(models.RoomTypeDouble)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	empty, err := repo.ListEmptyByType(models.RoomTypeDouble)
	require.NoError(t, err)
	require.Len(t, empty, 1)
	assert.Equal(t, "r1", empty[0].RoomID)
}

func TestExistsByNumberExcluding(t *testing.T) {
	db := newTestDB(t)
	repo := NewRoomRepository(db)

	createRoom(t, db, "r1", models.RoomTypeDouble, "201")
	createRoom(t, db, "r2", models.RoomTypeDouble, "202")

	// a room keeping its own number is not a collision
	taken, err := repo.ExistsByNumberExcluding("201", "r1")
	require.NoError(t, err)
	assert.False(t, taken)

	taken, err = repo.ExistsByNumberExcluding("202", "r1")
	require.NoError(t, err)
	assert.True(t, taken)
}

func TestUpdateUnknownRoom(t *testing.T) {
	db := newTestDB(t)
	repo := NewRoomRepository(db)

	ghost := models.Room{RoomID: "ghost", RoomTypeID: models.RoomTypeSingle, RoomNumber: "101"}
	ghost.MarkEmpty()
	assert.ErrorIs(t, repo.Update(&ghost), ErrRoomNotFound)
}
