package flow

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mathangi54/travel-booking-client/internal/auth"
	"github.com/mathangi54/travel-booking-client/internal/models"
	"github.com/mathangi54/travel-booking-client/internal/store"
)

// Wizard steps. Confirmed is terminal for the session.
const (
	StepSelectPackage = 1
	StepPersonalInfo  = 2
	StepReviewConfirm = 3
	StepConfirmed     = 4
)

// Well-known navigation targets.
const (
	PathHome     = "/"
	PathPackages = "/packages"
	PathLogin    = "/login"
	PathBooking  = "/booking"
)

// TourCatalog reads the backend tour catalog and can trigger a seed.
type TourCatalog interface {
	GetTours(ctx context.Context) ([]models.Tour, error)
	GetTour(ctx context.Context, id int) (*models.Tour, error)
	SeedTours(ctx context.Context) error
}

// BookingSubmitter creates a booking against the backend.
type BookingSubmitter interface {
	CreateBooking(ctx context.Context, req models.CreateBookingRequest, token string) (*models.Booking, error)
}

// ConnectivityProbe tests backend reachability without fetching business
// data.
type ConnectivityProbe interface {
	CheckReachable(ctx context.Context) (bool, string)
}

// Navigator moves the user to another screen. Implementations decide what a
// path means (router push, terminal message, test recorder).
type Navigator interface {
	NavigateTo(path string)
}

// Entry carries the navigation state the wizard was opened with.
type Entry struct {
	// Package is an explicit tour payload from a catalog card.
	Package *models.Tour

	// PackageID is an identifier-only hint; zero means absent.
	PackageID int
}

// Options tunes controller behavior.
type Options struct {
	// RedirectDelay is how long to linger before the post-error and
	// post-confirmation navigations.
	RedirectDelay time.Duration

	// ReturnPath is the wizard's own path, recorded as the post-login
	// destination when submission is interrupted for authentication.
	ReturnPath string
}

// DefaultOptions returns the production settings.
func DefaultOptions() Options {
	return Options{
		RedirectDelay: 2 * time.Second,
		ReturnPath:    PathBooking,
	}
}

// Controller owns the booking draft and drives the three-step wizard: data
// hydration, per-step validation, connectivity tracking and submission.
// It is bound to a single wizard screen; create a fresh one per visit.
type Controller struct {
	catalog   TourCatalog
	submitter BookingSubmitter
	probe     ConnectivityProbe
	session   auth.Session
	drafts    *store.DraftStore
	nav       Navigator
	logger    *logrus.Logger
	opts      Options

	mu               sync.Mutex
	draft            *models.BookingDraft
	connectivity     ConnectivityState
	connectivityDiag string
	fieldErrors      map[string]string
	pageError        string
	lastError        *FlowError
	submitting       bool
	confirmedBooking *models.Booking
}

// NewController wires a booking flow controller. All collaborators are
// injected; none may be nil except nav, which defaults to a no-op.
func NewController(
	catalog TourCatalog,
	submitter BookingSubmitter,
	probe ConnectivityProbe,
	session auth.Session,
	drafts *store.DraftStore,
	nav Navigator,
	logger *logrus.Logger,
	opts Options,
) *Controller {
	if nav == nil {
		nav = noopNavigator{}
	}
	return &Controller{
		catalog:      catalog,
		submitter:    submitter,
		probe:        probe,
		session:      session,
		drafts:       drafts,
		nav:          nav,
		logger:       logger,
		opts:         opts,
		draft:        models.NewBookingDraft(),
		connectivity: ConnectivityChecking,
		fieldErrors:  make(map[string]string),
	}
}

type noopNavigator struct{}

func (noopNavigator) NavigateTo(string) {}

// Draft returns a copy of the working draft for display.
func (c *Controller) Draft() models.BookingDraft {
	c.mu.Lock()
	defer c.mu.Unlock()
	return *c.draft
}

// CurrentStep returns the active wizard step.
func (c *Controller) CurrentStep() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft.CurrentStep
}

// Connectivity returns the current reachability state and its diagnostic.
func (c *Controller) Connectivity() (ConnectivityState, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connectivity, c.connectivityDiag
}

// FieldErrors returns the per-field validation error map for the active
// step. Empty map means the step may advance.
func (c *Controller) FieldErrors() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make(map[string]string, len(c.fieldErrors))
	for k, v := range c.fieldErrors {
		out[k] = v
	}
	return out
}

// PageError returns the blocking page-level error, if any.
func (c *Controller) PageError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pageError
}

// LastError returns the most recent classified submission error, if any.
func (c *Controller) LastError() *FlowError {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastError
}

// ConfirmedBooking returns the created booking once the wizard reaches the
// confirmed state.
func (c *Controller) ConfirmedBooking() *models.Booking {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.confirmedBooking
}

// SetPackage selects a static tier and recomputes the total.
func (c *Controller) SetPackage(kind models.PackageKind) {
	if !kind.IsValid() {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft.SelectedPackage = kind
	c.recomputeTotalLocked()
}

// SetTravelerCount updates the traveler count. The typed value is kept on
// the draft even when out of range, the way the form keeps whatever was
// entered; the recorded field error then blocks the step gate.
func (c *Controller) SetTravelerCount(count int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.draft.TravelerCount = count
	if count < models.MinTravelers || count > models.MaxTravelers {
		c.fieldErrors["numberOfPeople"] = msgInvalidTravelers
	} else {
		delete(c.fieldErrors, "numberOfPeople")
	}
	c.recomputeTotalLocked()
}

// SetTravelDate updates the travel date. Dates before today record a field
// error and are rejected. Both sides are compared by calendar date so that
// today's date is accepted regardless of the wall clock or zone.
func (c *Controller) SetTravelDate(date time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if startOfDay(date).Before(startOfDay(time.Now())) {
		c.fieldErrors["travelDate"] = "Travel date cannot be in the past"
		return
	}
	delete(c.fieldErrors, "travelDate")
	c.draft.TravelDate = date
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SetPersonalInfo replaces the contact details and clears their stale field
// errors, the same way typing into an errored input clears it.
func (c *Controller) SetPersonalInfo(info models.PersonalInfo) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.draft.PersonalInfo = info
	for _, key := range []string{"fullName", "email", "phone"} {
		delete(c.fieldErrors, key)
	}
	c.lastError = nil
}

// SetSourceTour pins the wizard to a live catalog tour; its price becomes
// the pricing source of truth.
func (c *Controller) SetSourceTour(tour *models.Tour) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft.SourceTour = tour
	c.recomputeTotalLocked()
}

// UnitPrice returns the active per-person price: the source tour's when one
// is set, otherwise the selected static tier's.
func (c *Controller) UnitPrice() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.unitPriceLocked()
}

func (c *Controller) unitPriceLocked() float64 {
	if c.draft.SourceTour != nil {
		return c.draft.SourceTour.Price
	}
	return models.StaticPackageCatalog[c.draft.SelectedPackage].PerPersonPrice
}

// recomputeTotalLocked keeps the total invariant: unit price times traveler
// count, never stale. Caller must hold the lock.
func (c *Controller) recomputeTotalLocked() {
	c.draft.TotalAmount = c.unitPriceLocked() * float64(c.draft.TravelerCount)
}

// NextStep advances the wizard when the active step validates. It returns
// true when the step changed.
func (c *Controller) NextStep() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.draft.CurrentStep >= StepReviewConfirm {
		return false
	}

	switch c.draft.CurrentStep {
	case StepSelectPackage:
		if !c.validateStep1Locked() {
			return false
		}
	case StepPersonalInfo:
		if !c.validateStep2Locked() {
			return false
		}
	}

	c.draft.CurrentStep++
	c.lastError = nil
	return true
}

// PrevStep moves back one step. Always permitted from steps 2 and 3.
func (c *Controller) PrevStep() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.draft.CurrentStep <= StepSelectPackage || c.draft.CurrentStep > StepReviewConfirm {
		return false
	}
	c.draft.CurrentStep--
	c.lastError = nil
	return true
}

// RetryConnectivity re-runs the reachability probe on demand.
func (c *Controller) RetryConnectivity(ctx context.Context) ConnectivityState {
	c.mu.Lock()
	c.connectivity = ConnectivityChecking
	c.mu.Unlock()

	reachable, diag := c.probe.CheckReachable(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if reachable {
		c.connectivity = ConnectivityConnected
		c.connectivityDiag = ""
	} else {
		c.connectivity = ConnectivityDisconnected
		c.connectivityDiag = diag
	}
	return c.connectivity
}

// navigateAfterDelay waits out the redirect delay, then navigates, unless
// the wizard context is cancelled first. With a zero delay it runs inline
// so callers observe the navigation synchronously.
func (c *Controller) navigateAfterDelay(ctx context.Context, path string) {
	if c.opts.RedirectDelay <= 0 {
		c.nav.NavigateTo(path)
		return
	}

	go func() {
		select {
		case <-time.After(c.opts.RedirectDelay):
			c.nav.NavigateTo(path)
		case <-ctx.Done():
		}
	}()
}
