package memory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VitalyVL1/filmorate/internal/models"
	"github.com/VitalyVL1/filmorate/internal/storage"
)

func newUser(email, login string) *models.User {
	return &models.User{
		Email:    email,
		Login:    login,
		Name:     login,
		Birthday: models.NewDate(1990, time.March, 14),
	}
}

func TestUserStorage_CreateAndFind(t *testing.T) {
	store := NewUserStorage()

	created, err := store.Create(newUser("alice@example.com", "alice"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	found, err := store.FindByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", found.Email)
	assert.Empty(t, found.Friends)

	_, err = store.FindByID(42)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestUserStorage_IDsGrowFromCurrentMax(t *testing.T) {
	store := NewUserStorage()

	first, err := store.Create(newUser("a@example.com", "a"))
	require.NoError(t, err)
	second, err := store.Create(newUser("b@example.com", "b"))
	require.NoError(t, err)
	assert.Equal(t, first.ID+1, second.ID)

	_, err = store.RemoveByID(second.ID)
	require.NoError(t, err)

	third, err := store.Create(newUser("c@example.com", "c"))
	require.NoError(t, err)
	assert.Equal(t, second.ID, third.ID)
}

func TestUserStorage_ContainsEmail(t *testing.T) {
	store := NewUserStorage()

	created, err := store.Create(newUser("alice@example.com", "alice"))
	require.NoError(t, err)

	used, err := store.ContainsEmail("Alice@Example.com", 0)
	require.NoError(t, err)
	assert.True(t, used, "email comparison should ignore case")

	used, err = store.ContainsEmail("alice@example.com", created.ID)
	require.NoError(t, err)
	assert.False(t, used, "the owner is excluded from the check")

	used, err = store.ContainsEmail("bob@example.com", 0)
	require.NoError(t, err)
	assert.False(t, used)
}

func TestUserStorage_AddFriendUnconfirmedIsOneWay(t *testing.T) {
	store := NewUserStorage()
	alice, _ := store.Create(newUser("alice@example.com", "alice"))
	bob, _ := store.Create(newUser("bob@example.com", "bob"))

	require.NoError(t, store.AddFriend(alice, bob, models.StatusUnconfirmed))

	aliceNow, err := store.FindByID(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusUnconfirmed, aliceNow.Friends[bob.ID])

	bobNow, err := store.FindByID(bob.ID)
	require.NoError(t, err)
	assert.NotContains(t, bobNow.Friends, alice.ID)
}

func TestUserStorage_AddFriendConfirmedIsMutual(t *testing.T) {
	store := NewUserStorage()
	alice, _ := store.Create(newUser("alice@example.com", "alice"))
	bob, _ := store.Create(newUser("bob@example.com", "bob"))

	require.NoError(t, store.AddFriend(alice, bob, models.StatusConfirmed))

	aliceNow, _ := store.FindByID(alice.ID)
	bobNow, _ := store.FindByID(bob.ID)
	assert.Equal(t, models.StatusConfirmed, aliceNow.Friends[bob.ID])
	assert.Equal(t, models.StatusConfirmed, bobNow.Friends[alice.ID])
}

func TestUserStorage_RemoveFriendKeepsReciprocalEdge(t *testing.T) {
	store := NewUserStorage()
	alice, _ := store.Create(newUser("alice@example.com", "alice"))
	bob, _ := store.Create(newUser("bob@example.com", "bob"))

	require.NoError(t, store.AddFriend(alice, bob, models.StatusConfirmed))
	require.NoError(t, store.RemoveFriend(alice, bob))

	aliceNow, _ := store.FindByID(alice.ID)
	bobNow, _ := store.FindByID(bob.ID)
	assert.NotContains(t, aliceNow.Friends, bob.ID)
	assert.Equal(t, models.StatusConfirmed, bobNow.Friends[alice.ID], "only the caller's edge is removed")
}

func TestUserStorage_FindFriends(t *testing.T) {
	store := NewUserStorage()
	alice, _ := store.Create(newUser("alice@example.com", "alice"))
	bob, _ := store.Create(newUser("bob@example.com", "bob"))
	carol, _ := store.Create(newUser("carol@example.com", "carol"))

	require.NoError(t, store.AddFriend(alice, carol, models.StatusUnconfirmed))
	require.NoError(t, store.AddFriend(alice, bob, models.StatusConfirmed))

	friends, err := store.FindFriends(alice)
	require.NoError(t, err)
	require.Len(t, friends, 2)
	assert.Equal(t, bob.ID, friends[0].ID, "friends come back ordered by id")
	assert.Equal(t, carol.ID, friends[1].ID)

	friends, err = store.FindFriends(bob)
	require.NoError(t, err)
	assert.Len(t, friends, 1)
}

func TestUserStorage_FindCommonFriends(t *testing.T) {
	store := NewUserStorage()
	alice, _ := store.Create(newUser("alice@example.com", "alice"))
	bob, _ := store.Create(newUser("bob@example.com", "bob"))
	carol, _ := store.Create(newUser("carol@example.com", "carol"))

	require.NoError(t, store.AddFriend(alice, carol, models.StatusUnconfirmed))
	require.NoError(t, store.AddFriend(bob, carol, models.StatusUnconfirmed))

	common, err := store.FindCommonFriends(alice, bob)
	require.NoError(t, err)
	require.Len(t, common, 1)
	assert.Equal(t, carol.ID, common[0].ID)

	common, err = store.FindCommonFriends(alice, carol)
	require.NoError(t, err)
	assert.Empty(t, common)
}

func TestUserStorage_RemoveByIDCleansUpEdges(t *testing.T) {
	store := NewUserStorage()
	alice, _ := store.Create(newUser("alice@example.com", "alice"))
	bob, _ := store.Create(newUser("bob@example.com", "bob"))

	require.NoError(t, store.AddFriend(alice, bob, models.StatusConfirmed))

	removed, err := store.RemoveByID(bob.ID)
	require.NoError(t, err)
	assert.Equal(t, bob.ID, removed.ID)

	aliceNow, _ := store.FindByID(alice.ID)
	assert.NotContains(t, aliceNow.Friends, bob.ID)

	_, err = store.RemoveByID(bob.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestUserStorage_UpdateOverwrites(t *testing.T) {
	store := NewUserStorage()
	alice, _ := store.Create(newUser("alice@example.com", "alice"))

	alice.Name = "Alice A."
	updated, err := store.Update(alice)
	require.NoError(t, err)
	assert.Equal(t, "Alice A.", updated.Name)

	_, err = store.Update(&models.User{ID: 42, Email: "x@example.com", Login: "x"})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestUserStorage_ResultsDoNotAliasInternalState(t *testing.T) {
	store := NewUserStorage()
	alice, _ := store.Create(newUser("alice@example.com", "alice"))
	bob, _ := store.Create(newUser("bob@example.com", "bob"))
	require.NoError(t, store.AddFriend(alice, bob, models.StatusUnconfirmed))

	found, _ := store.FindByID(alice.ID)
	found.Friends[99] = models.StatusConfirmed
	found.Email = "tampered@example.com"

	again, _ := store.FindByID(alice.ID)
	assert.NotContains(t, again.Friends, int64(99))
	assert.Equal(t, "alice@example.com", again.Email)
}
