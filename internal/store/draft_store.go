package store

import (
	"encoding/json"
	"fmt"

	"github.com/mathangi54/travel-booking-client/internal/models"
)

// Well-known store keys. The token keys mirror the web client, which wrote
// the auth token under both a primary and a legacy key.
const (
	KeyCurrentBooking     = "currentBooking"
	KeyRedirectAfterLogin = "redirectAfterLogin"
	KeyToken              = "token"
	KeyLegacyToken        = "authToken"
	KeyUser               = "user"
)

// DraftStore persists the in-progress booking draft and the post-login
// return marker across navigation and login redirects.
type DraftStore struct {
	kv KeyValueStore
}

// NewDraftStore wraps a KeyValueStore with draft-typed accessors.
func NewDraftStore(kv KeyValueStore) *DraftStore {
	return &DraftStore{kv: kv}
}

// SaveDraft serializes the draft under the current-booking key.
func (s *DraftStore) SaveDraft(draft *models.BookingDraft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to serialize booking draft: %w", err)
	}
	if err := s.kv.Set(KeyCurrentBooking, string(data)); err != nil {
		return fmt.Errorf("failed to persist booking draft: %w", err)
	}
	return nil
}

// LoadDraft returns the persisted draft, or (nil, nil) when none is stored.
// A corrupt entry is treated as absent and removed.
func (s *DraftStore) LoadDraft() (*models.BookingDraft, error) {
	raw, ok := s.kv.Get(KeyCurrentBooking)
	if !ok {
		return nil, nil
	}

	var draft models.BookingDraft
	if err := json.Unmarshal([]byte(raw), &draft); err != nil {
		// Drop the unreadable entry so the wizard falls through to
		// catalog hydration instead of failing on every visit.
		_ = s.kv.Delete(KeyCurrentBooking)
		return nil, nil
	}

	return &draft, nil
}

// ClearDraft removes the persisted draft.
func (s *DraftStore) ClearDraft() error {
	return s.kv.Delete(KeyCurrentBooking)
}

// SetReturnPath records where to send the user after a successful login.
func (s *DraftStore) SetReturnPath(path string) error {
	return s.kv.Set(KeyRedirectAfterLogin, path)
}

// ReturnPath returns the recorded post-login destination, if any.
func (s *DraftStore) ReturnPath() (string, bool) {
	return s.kv.Get(KeyRedirectAfterLogin)
}

// ClearReturnPath removes the post-login destination marker.
func (s *DraftStore) ClearReturnPath() error {
	return s.kv.Delete(KeyRedirectAfterLogin)
}
