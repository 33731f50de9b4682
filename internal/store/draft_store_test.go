package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mathangi54/travel-booking-client/internal/models"
)

func TestDraftStoreRoundTrip(t *testing.T) {
	drafts := NewDraftStore(NewMemoryStore())

	loaded, err := drafts.LoadDraft()
	require.NoError(t, err)
	assert.Nil(t, loaded, "empty store has no draft")

	draft := models.NewBookingDraft()
	draft.SelectedPackage = models.PackagePremium
	draft.TravelerCount = 4
	draft.TravelDate = time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC)
	draft.TotalAmount = 800
	draft.PersonalInfo = models.PersonalInfo{
		FullName: "Nimal Perera",
		Email:    "nimal@example.com",
		Phone:    "0771234567",
	}
	draft.CurrentStep = 3

	require.NoError(t, drafts.SaveDraft(draft))

	loaded, err = drafts.LoadDraft()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, draft.ID, loaded.ID)
	assert.Equal(t, draft.SelectedPackage, loaded.SelectedPackage)
	assert.Equal(t, draft.TravelerCount, loaded.TravelerCount)
	assert.True(t, draft.TravelDate.Equal(loaded.TravelDate))
	assert.Equal(t, draft.TotalAmount, loaded.TotalAmount)
	assert.Equal(t, draft.PersonalInfo, loaded.PersonalInfo)
	assert.Equal(t, draft.CurrentStep, loaded.CurrentStep)

	require.NoError(t, drafts.ClearDraft())
	loaded, err = drafts.LoadDraft()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestDraftStoreDropsCorruptDraft(t *testing.T) {
	kv := NewMemoryStore()
	require.NoError(t, kv.Set(KeyCurrentBooking, "{broken"))

	drafts := NewDraftStore(kv)
	loaded, err := drafts.LoadDraft()
	require.NoError(t, err)
	assert.Nil(t, loaded)

	_, ok := kv.Get(KeyCurrentBooking)
	assert.False(t, ok, "corrupt entry removed")
}

func TestReturnPath(t *testing.T) {
	drafts := NewDraftStore(NewMemoryStore())

	_, ok := drafts.ReturnPath()
	assert.False(t, ok)

	require.NoError(t, drafts.SetReturnPath("/booking"))
	path, ok := drafts.ReturnPath()
	require.True(t, ok)
	assert.Equal(t, "/booking", path)

	require.NoError(t, drafts.ClearReturnPath())
	_, ok = drafts.ReturnPath()
	assert.False(t, ok)
}
