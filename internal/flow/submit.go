package flow

import (
	"context"

	"github.com/mathangi54/travel-booking-client/internal/api"
	"github.com/mathangi54/travel-booking-client/internal/auth"
	"github.com/mathangi54/travel-booking-client/internal/models"
)

// Submit runs the booking submission pipeline from the review step. It is a
// linear sequence of fallible checks, composed top to bottom; the first
// failure aborts, is classified, and becomes the controller's last error.
// The wizard stays interactive after any failure.
//
// A second Submit while one is pending is rejected outright.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.submitting {
		c.mu.Unlock()
		return newFlowError(ErrorBusy, "A booking submission is already in progress.", nil)
	}
	if c.draft.Confirmed {
		c.mu.Unlock()
		return newFlowError(ErrorBusy, "This booking is already confirmed.", nil)
	}
	c.submitting = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.submitting = false
		c.mu.Unlock()
	}()

	steps := []func(context.Context) *FlowError{
		c.revalidateContact,
		c.ensureConnectivity,
		c.ensureCatalogNonEmpty,
		c.ensureTargetTour,
		c.ensureAuthenticated,
	}
	for _, step := range steps {
		if ferr := step(ctx); ferr != nil {
			c.recordError(ferr)
			return ferr
		}
	}

	if ferr := c.send(ctx); ferr != nil {
		c.recordError(ferr)
		return ferr
	}
	return nil
}

// revalidateContact re-checks the step 2 fields; stale edits must not reach
// the network.
func (c *Controller) revalidateContact(context.Context) *FlowError {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.validateStep2Locked() {
		return newFlowError(ErrorValidation, "Please correct the highlighted fields.", nil)
	}
	return nil
}

// ensureConnectivity re-probes rather than trusting a possibly stale
// connected flag.
func (c *Controller) ensureConnectivity(ctx context.Context) *FlowError {
	if state := c.RetryConnectivity(ctx); state != ConnectivityConnected {
		return newFlowError(ErrorConnectivity, msgNoBackend, nil)
	}
	return nil
}

func (c *Controller) ensureCatalogNonEmpty(ctx context.Context) *FlowError {
	tours, err := c.ensureToursExist(ctx)
	if err != nil {
		if api.IsTimeout(err) {
			c.markDisconnected("catalog request timed out")
			return newFlowError(ErrorTimeout, msgSubmitTimeout, err)
		}
		return newFlowError(ErrorServer, api.ErrorMessage(err, msgNoTours), err)
	}
	if len(tours) == 0 {
		return newFlowError(ErrorServer, msgNoTours, nil)
	}
	return nil
}

// ensureTargetTour re-validates that the tour being booked still exists; it
// may have been removed since hydration.
func (c *Controller) ensureTargetTour(ctx context.Context) *FlowError {
	id := c.targetTourID()

	if _, err := c.catalog.GetTour(ctx, id); err != nil {
		if api.IsNotFound(err) {
			c.mu.Lock()
			c.pageError = msgTourGone
			c.mu.Unlock()
			c.navigateAfterDelay(ctx, PathPackages)
			return newFlowError(ErrorNotFound, msgTourGone, err)
		}
		if api.IsTimeout(err) {
			c.markDisconnected("tour check timed out")
			return newFlowError(ErrorTimeout, msgSubmitTimeout, err)
		}
		return newFlowError(ErrorServer, api.ErrorMessage(err, msgSubmitFallback), err)
	}
	return nil
}

// ensureAuthenticated applies the three-signal check. When it fails, the
// draft and a return marker are persisted before redirecting to login so
// the wizard is resumable, and no network submission happens.
func (c *Controller) ensureAuthenticated(context.Context) *FlowError {
	if c.session.IsAuthenticated() {
		return nil
	}

	kind, message := ErrorAuthRequired, msgLoginRequired
	if token, ok := c.session.Token(); ok && auth.IsTokenExpired(token) {
		kind, message = ErrorAuthExpired, msgSessionExpired
		if err := c.session.ClearCredentials(); err != nil {
			c.logger.WithError(err).Warn("Failed to clear expired credentials")
		}
	}

	c.armAuthInterrupt()
	return newFlowError(kind, message, nil)
}

// armAuthInterrupt persists the draft plus the return-to-booking marker and
// sends the user to the login screen. Wizard state is left intact.
func (c *Controller) armAuthInterrupt() {
	c.mu.Lock()
	draft := *c.draft
	c.mu.Unlock()

	if err := c.drafts.SaveDraft(&draft); err != nil {
		c.logger.WithError(err).Error("Failed to persist booking draft before login redirect")
	}
	if err := c.drafts.SetReturnPath(c.opts.ReturnPath); err != nil {
		c.logger.WithError(err).Error("Failed to record post-login return path")
	}

	c.nav.NavigateTo(PathLogin)
}

func (c *Controller) targetTourID() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.draft.SourceTour != nil {
		return c.draft.SourceTour.ID
	}
	return models.StaticPackageCatalog[c.draft.SelectedPackage].CatalogID
}

// buildRequest constructs the submission payload from the draft.
func (c *Controller) buildRequest() models.CreateBookingRequest {
	c.mu.Lock()
	defer c.mu.Unlock()

	return models.CreateBookingRequest{
		TourID:              c.targetTourIDLocked(),
		TravelDate:          c.draft.TravelDate.Format("2006-01-02"),
		Guests:              c.draft.TravelerCount,
		TotalPrice:          c.draft.TotalAmount,
		CustomerName:        c.draft.PersonalInfo.FullName,
		CustomerEmail:       c.draft.PersonalInfo.Email,
		CustomerPhone:       c.draft.PersonalInfo.Phone,
		SpecialRequests:     c.draft.PersonalInfo.SpecialRequests,
		PackageType:         string(c.draft.SelectedPackage),
		PreferredStarRating: 3,
		NumberOfChildren:    0,
		IdempotencyKey:      c.draft.ID.String(),
	}
}

func (c *Controller) targetTourIDLocked() int {
	if c.draft.SourceTour != nil {
		return c.draft.SourceTour.ID
	}
	return models.StaticPackageCatalog[c.draft.SelectedPackage].CatalogID
}

// send performs the booking call and handles the three interesting failure
// shapes: timeout, auth expiry, and everything else.
func (c *Controller) send(ctx context.Context) *FlowError {
	req := c.buildRequest()
	token, _ := c.session.Token()

	booking, err := c.submitter.CreateBooking(ctx, req, token)
	if err != nil {
		ferr := classifySubmitError(err)

		switch ferr.Kind {
		case ErrorTimeout:
			c.markDisconnected("booking request timed out")
		case ErrorAuthExpired:
			// Stored credentials are dead; re-arm the login interrupt so
			// the draft survives the re-login round trip.
			if clearErr := c.session.ClearCredentials(); clearErr != nil {
				c.logger.WithError(clearErr).Warn("Failed to clear expired credentials")
			}
			c.armAuthInterrupt()
		}

		c.logger.WithError(err).WithField("kind", ferr.Kind).Warn("Booking submission failed")
		return ferr
	}

	c.mu.Lock()
	c.draft.Confirmed = true
	c.draft.CurrentStep = StepConfirmed
	c.confirmedBooking = booking
	c.lastError = nil
	c.mu.Unlock()

	if err := c.drafts.ClearDraft(); err != nil {
		c.logger.WithError(err).Warn("Failed to clear persisted draft after confirmation")
	}
	if err := c.drafts.ClearReturnPath(); err != nil {
		c.logger.WithError(err).Warn("Failed to clear return marker after confirmation")
	}

	c.logger.WithField("booking_id", booking.ID).Info("Booking confirmed")
	c.navigateAfterDelay(ctx, PathHome)
	return nil
}

func (c *Controller) markDisconnected(diag string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.connectivity = ConnectivityDisconnected
	c.connectivityDiag = diag
}

func (c *Controller) recordError(ferr *FlowError) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastError = ferr
}
