package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memberhub/memberhub/internal/infrastructure/memory"
)

func newMemberTypeService(t *testing.T) *MemberTypeService {
	t.Helper()
	store := memory.NewStore()
	return NewMemberTypeService(store.MemberTypes(), testLogger())
}

func TestMemberTypeUpdateRejectsSentinelID(t *testing.T) {
	svc := newMemberTypeService(t)

	discount := 15
	_, err := svc.Update("fakeId", UpdateMemberTypeInput{Discount: &discount})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestMemberTypeUpdateUnknownID(t *testing.T) {
	svc := newMemberTypeService(t)

	discount := 15
	_, err := svc.Update("platinum", UpdateMemberTypeInput{Discount: &discount})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemberTypeUpdateAppliesPartialChanges(t *testing.T) {
	svc := newMemberTypeService(t)

	discount := 15
	mt, err := svc.Update("basic", UpdateMemberTypeInput{Discount: &discount})
	require.NoError(t, err)
	assert.Equal(t, 15, mt.Discount)
	assert.Equal(t, 20, mt.MonthPostsLimit)

	limit := 50
	mt, err = svc.Update("basic", UpdateMemberTypeInput{MonthPostsLimit: &limit})
	require.NoError(t, err)
	assert.Equal(t, 15, mt.Discount)
	assert.Equal(t, 50, mt.MonthPostsLimit)
}

func TestMemberTypeGet(t *testing.T) {
	svc := newMemberTypeService(t)

	mt, err := svc.Get("business")
	require.NoError(t, err)
	assert.Equal(t, 5, mt.Discount)

	_, err = svc.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
