package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VitalyVL1/filmorate/internal/models"
	"github.com/VitalyVL1/filmorate/internal/storage"
	"github.com/VitalyVL1/filmorate/internal/storage/memory"
)

func newUserService() *UserService {
	return NewUserService(memory.NewUserStorage())
}

func sampleUser(email, login string) *models.User {
	return &models.User{
		Email:    email,
		Login:    login,
		Birthday: models.NewDate(1990, time.March, 14),
	}
}

func TestUserService_CreateDefaultsBlankName(t *testing.T) {
	svc := newUserService()

	created, err := svc.Create(sampleUser("alice@example.com", "alice"))
	require.NoError(t, err)
	assert.Equal(t, "alice", created.Name, "blank display name falls back to login")

	named := sampleUser("bob@example.com", "bob")
	named.Name = "Bob B."
	created, err = svc.Create(named)
	require.NoError(t, err)
	assert.Equal(t, "Bob B.", created.Name)

	blank := sampleUser("carol@example.com", "carol")
	blank.Name = "   "
	created, err = svc.Create(blank)
	require.NoError(t, err)
	assert.Equal(t, "carol", created.Name)
}

func TestUserService_CreateRejectsDuplicateEmail(t *testing.T) {
	svc := newUserService()

	_, err := svc.Create(sampleUser("alice@example.com", "alice"))
	require.NoError(t, err)

	_, err = svc.Create(sampleUser("alice@example.com", "alice2"))
	assert.ErrorIs(t, err, storage.ErrDuplicate)
}

func TestUserService_UpdateMergesFields(t *testing.T) {
	svc := newUserService()
	created, err := svc.Create(sampleUser("alice@example.com", "alice"))
	require.NoError(t, err)

	newLogin := "alice2"
	updated, err := svc.Update(UserUpdate{ID: created.ID, Login: &newLogin})
	require.NoError(t, err)
	assert.Equal(t, "alice2", updated.Login)
	assert.Equal(t, "alice@example.com", updated.Email, "omitted fields keep their values")
	assert.Equal(t, created.Birthday, updated.Birthday)
}

func TestUserService_UpdateEmailUniqueness(t *testing.T) {
	svc := newUserService()
	alice, err := svc.Create(sampleUser("alice@example.com", "alice"))
	require.NoError(t, err)
	_, err = svc.Create(sampleUser("bob@example.com", "bob"))
	require.NoError(t, err)

	taken := "bob@example.com"
	_, err = svc.Update(UserUpdate{ID: alice.ID, Email: &taken})
	assert.ErrorIs(t, err, storage.ErrDuplicate)

	own := "ALICE@example.com"
	updated, err := svc.Update(UserUpdate{ID: alice.ID, Email: &own})
	require.NoError(t, err)
	assert.Equal(t, own, updated.Email, "re-supplying your own email is not a conflict")
}

func TestUserService_UpdateRequiresID(t *testing.T) {
	svc := newUserService()

	_, err := svc.Update(UserUpdate{})
	assert.ErrorIs(t, err, ErrValidation)

	name := "ghost"
	_, err = svc.Update(UserUpdate{ID: 42, Name: &name})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestUserService_AddFriend(t *testing.T) {
	svc := newUserService()
	alice, _ := svc.Create(sampleUser("alice@example.com", "alice"))
	bob, _ := svc.Create(sampleUser("bob@example.com", "bob"))

	t.Run("DefaultsToOneWayEdge", func(t *testing.T) {
		owner, err := svc.AddFriend(alice.ID, bob.ID, "UNCONFIRMED")
		require.NoError(t, err)
		assert.Equal(t, models.StatusUnconfirmed, owner.Friends[bob.ID])

		bobNow, _ := svc.FindByID(bob.ID)
		assert.NotContains(t, bobNow.Friends, alice.ID)
	})

	t.Run("ConfirmedInstallsReciprocal", func(t *testing.T) {
		_, err := svc.AddFriend(alice.ID, bob.ID, "CONFIRMED")
		require.NoError(t, err)

		bobNow, _ := svc.FindByID(bob.ID)
		assert.Equal(t, models.StatusConfirmed, bobNow.Friends[alice.ID])
	})

	t.Run("UnknownStatusIsRejected", func(t *testing.T) {
		_, err := svc.AddFriend(alice.ID, bob.ID, "pending")
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("SelfFriendshipIsRejected", func(t *testing.T) {
		_, err := svc.AddFriend(alice.ID, alice.ID, "UNCONFIRMED")
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("UnknownUsersAreRejected", func(t *testing.T) {
		_, err := svc.AddFriend(alice.ID, 42, "UNCONFIRMED")
		assert.ErrorIs(t, err, storage.ErrNotFound)

		_, err = svc.AddFriend(42, alice.ID, "UNCONFIRMED")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestUserService_RemoveFriend(t *testing.T) {
	svc := newUserService()
	alice, _ := svc.Create(sampleUser("alice@example.com", "alice"))
	bob, _ := svc.Create(sampleUser("bob@example.com", "bob"))

	_, err := svc.AddFriend(alice.ID, bob.ID, "CONFIRMED")
	require.NoError(t, err)

	owner, err := svc.RemoveFriend(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.NotContains(t, owner.Friends, bob.ID)

	bobNow, _ := svc.FindByID(bob.ID)
	assert.Contains(t, bobNow.Friends, alice.ID, "the reciprocal edge survives")

	_, err = svc.RemoveFriend(alice.ID, 42)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestUserService_FindCommonFriends(t *testing.T) {
	svc := newUserService()
	alice, _ := svc.Create(sampleUser("alice@example.com", "alice"))
	bob, _ := svc.Create(sampleUser("bob@example.com", "bob"))
	carol, _ := svc.Create(sampleUser("carol@example.com", "carol"))

	_, err := svc.AddFriend(alice.ID, carol.ID, "UNCONFIRMED")
	require.NoError(t, err)
	_, err = svc.AddFriend(bob.ID, carol.ID, "UNCONFIRMED")
	require.NoError(t, err)

	common, err := svc.FindCommonFriends(alice.ID, bob.ID)
	require.NoError(t, err)
	require.Len(t, common, 1)
	assert.Equal(t, carol.ID, common[0].ID)

	common, err = svc.FindCommonFriends(bob.ID, carol.ID)
	require.NoError(t, err)
	assert.Empty(t, common)
}
