package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewBookingDraftDefaults(t *testing.T) {
	draft := NewBookingDraft()

	assert.NotEqual(t, uuid.Nil, draft.ID)
	assert.Equal(t, PackageStandard, draft.SelectedPackage)
	assert.Equal(t, 1, draft.TravelerCount)
	assert.Equal(t, StaticPackageCatalog[PackageStandard].PerPersonPrice, draft.TotalAmount,
		"a fresh draft is already priced for its defaults")
	assert.Equal(t, 1, draft.CurrentStep)
	assert.False(t, draft.Confirmed)

	y, m, d := time.Now().Date()
	assert.True(t, draft.TravelDate.Equal(time.Date(y, m, d, 0, 0, 0, 0, time.UTC)),
		"default travel date is today's calendar date")
}

func TestPackageKindIsValid(t *testing.T) {
	assert.True(t, PackageStandard.IsValid())
	assert.True(t, PackagePremium.IsValid())
	assert.True(t, PackageDeluxe.IsValid())
	assert.False(t, PackageKind("platinum").IsValid())
}
