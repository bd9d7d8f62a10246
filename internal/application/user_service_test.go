package application

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memberhub/memberhub/internal/domain/entity"
	"github.com/memberhub/memberhub/internal/infrastructure/memory"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newUserService(t *testing.T) (*UserService, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	return NewUserService(store.Users(), store.Profiles(), store.Posts(), testLogger()), store
}

func mustCreateUser(t *testing.T, store *memory.Store, email string) *entity.User {
	t.Helper()
	u := &entity.User{FirstName: "First", LastName: "Last", Email: email, SubscribedToUserIDs: []string{}}
	require.NoError(t, store.Users().Create(u))
	return u
}

func TestDeleteLoneUserRemovesOnlyThatUser(t *testing.T) {
	svc, store := newUserService(t)
	u := mustCreateUser(t, store, "lone@example.com")
	other := mustCreateUser(t, store, "other@example.com")

	deleted, err := svc.Delete(u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.ID, deleted.ID)

	users, err := store.Users().FindAll()
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, other.ID, users[0].ID)
}

func TestDeleteUserCascadesToProfileAndPosts(t *testing.T) {
	svc, store := newUserService(t)
	u := mustCreateUser(t, store, "owner@example.com")

	profile := &entity.Profile{UserID: u.ID, MemberTypeID: "basic"}
	require.NoError(t, store.Profiles().Create(profile))
	post1 := &entity.Post{Title: "one", Content: "c", UserID: u.ID}
	post2 := &entity.Post{Title: "two", Content: "c", UserID: u.ID}
	require.NoError(t, store.Posts().Create(post1))
	require.NoError(t, store.Posts().Create(post2))

	_, err := svc.Delete(u.ID)
	require.NoError(t, err)

	_, err = store.Profiles().GetByID(profile.ID)
	assert.Error(t, err)
	posts, err := store.Posts().FindByUserID(u.ID)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestDeleteUserPrunesSubscriberLists(t *testing.T) {
	svc, store := newUserService(t)
	target := mustCreateUser(t, store, "target@example.com")
	follower := mustCreateUser(t, store, "follower@example.com")
	keeper := mustCreateUser(t, store, "keeper@example.com")

	follower.SubscribedToUserIDs = []string{target.ID, keeper.ID, target.ID}
	require.NoError(t, store.Users().Update(follower))

	_, err := svc.Delete(target.ID)
	require.NoError(t, err)

	got, err := store.Users().GetByID(follower.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{keeper.ID}, got.SubscribedToUserIDs)
}

func TestDeleteMissingUserReportsNotFound(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.Delete("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSubscribeAppendsWithoutDedup(t *testing.T) {
	svc, store := newUserService(t)
	acting := mustCreateUser(t, store, "acting@example.com")
	target := mustCreateUser(t, store, "target@example.com")

	_, err := svc.Subscribe(acting.ID, target.ID)
	require.NoError(t, err)
	updated, err := svc.Subscribe(acting.ID, target.ID)
	require.NoError(t, err)

	// Repeated subscribe calls accumulate duplicates.
	assert.Equal(t, []string{acting.ID, acting.ID}, updated.SubscribedToUserIDs)
}

func TestSubscribeMissingTarget(t *testing.T) {
	svc, store := newUserService(t)
	acting := mustCreateUser(t, store, "acting@example.com")

	_, err := svc.Subscribe(acting.ID, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSubscribeToSelfRejected(t *testing.T) {
	svc, store := newUserService(t)
	u := mustCreateUser(t, store, "self@example.com")

	_, err := svc.Subscribe(u.ID, u.ID)
	assert.ErrorIs(t, err, ErrPrecondition)

	got, err := store.Users().GetByID(u.ID)
	require.NoError(t, err)
	assert.Empty(t, got.SubscribedToUserIDs)
}

func TestUnsubscribeRemovesAllOccurrences(t *testing.T) {
	svc, store := newUserService(t)
	acting := mustCreateUser(t, store, "acting@example.com")
	target := mustCreateUser(t, store, "target@example.com")
	other := mustCreateUser(t, store, "other@example.com")

	target.SubscribedToUserIDs = []string{acting.ID, other.ID, acting.ID}
	require.NoError(t, store.Users().Update(target))

	updated, err := svc.Unsubscribe(acting.ID, target.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{other.ID}, updated.SubscribedToUserIDs)
}

func TestUnsubscribeWhenNotSubscribedLeavesListUnchanged(t *testing.T) {
	svc, store := newUserService(t)
	acting := mustCreateUser(t, store, "acting@example.com")
	target := mustCreateUser(t, store, "target@example.com")
	other := mustCreateUser(t, store, "other@example.com")

	target.SubscribedToUserIDs = []string{other.ID}
	require.NoError(t, store.Users().Update(target))

	_, err := svc.Unsubscribe(acting.ID, target.ID)
	assert.ErrorIs(t, err, ErrPrecondition)

	got, err := store.Users().GetByID(target.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{other.ID}, got.SubscribedToUserIDs)
}

func TestUnsubscribeMissingTarget(t *testing.T) {
	svc, store := newUserService(t)
	acting := mustCreateUser(t, store, "acting@example.com")

	_, err := svc.Unsubscribe(acting.ID, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateUserPartialPatch(t *testing.T) {
	svc, store := newUserService(t)
	u := mustCreateUser(t, store, "patch@example.com")

	first := "Grace"
	updated, err := svc.Update(u.ID, UpdateUserInput{FirstName: &first})
	require.NoError(t, err)
	assert.Equal(t, "Grace", updated.FirstName)
	assert.Equal(t, "patch@example.com", updated.Email)

	_, err = svc.Update("missing", UpdateUserInput{FirstName: &first})
	assert.ErrorIs(t, err, ErrNotFound)
}
