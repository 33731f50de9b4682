package flow

import (
	"context"

	"github.com/mathangi54/travel-booking-client/internal/api"
	"github.com/mathangi54/travel-booking-client/internal/models"
)

// Initialize hydrates the draft once, on wizard entry. The connectivity
// probe runs concurrently with hydration; the two only meet when hydration
// needs to know whether an identifier lookup is worth attempting.
//
// Resolution order is strict and short-circuits: explicit navigation
// payload, then persisted draft, then identifier lookup, then catalog
// default with a hardcoded last-resort tour.
func (c *Controller) Initialize(ctx context.Context, entry Entry) error {
	probeDone := make(chan struct{})
	go func() {
		defer close(probeDone)
		c.RetryConnectivity(ctx)
	}()

	// 1. Explicit package payload carried by navigation.
	if entry.Package != nil {
		c.logger.WithField("tour", entry.Package.String()).Debug("Hydrating from navigation payload")
		c.SetSourceTour(entry.Package)
		return nil
	}

	// 2. Persisted draft, typically left by a login interrupt.
	if draft, err := c.drafts.LoadDraft(); err == nil && draft != nil {
		c.logger.WithField("draft_id", draft.ID).Info("Resuming persisted booking draft")
		c.adoptDraft(draft)
		// The interrupt is consumed; the return marker goes with it.
		_ = c.drafts.ClearReturnPath()
		return nil
	}

	// 3. Identifier-only navigation: needs the backend, so wait for the
	// probe before deciding whether to fetch.
	if entry.PackageID != 0 {
		<-probeDone
		return c.hydrateFromID(ctx, entry.PackageID)
	}

	// 4. No hints at all: fall back to the catalog.
	c.hydrateFromCatalog(ctx)
	return nil
}

func (c *Controller) adoptDraft(draft *models.BookingDraft) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if draft.CurrentStep < StepSelectPackage || draft.CurrentStep > StepReviewConfirm {
		draft.CurrentStep = StepSelectPackage
	}
	if !draft.SelectedPackage.IsValid() {
		draft.SelectedPackage = models.PackageStandard
	}
	draft.Confirmed = false

	c.draft = draft
	c.fieldErrors = make(map[string]string)
	c.recomputeTotalLocked()
}

func (c *Controller) hydrateFromID(ctx context.Context, id int) error {
	state, _ := c.Connectivity()
	if state != ConnectivityConnected {
		return c.failHydration(ctx, msgNoBackend, newFlowError(ErrorConnectivity, msgNoBackend, nil))
	}

	tour, err := c.catalog.GetTour(ctx, id)
	if err != nil {
		c.logger.WithError(err).WithField("tour_id", id).Warn("Tour lookup failed during hydration")
		if api.IsNotFound(err) {
			return c.failHydration(ctx, msgTourGone, newFlowError(ErrorNotFound, msgTourGone, err))
		}
		return c.failHydration(ctx, msgLoadTourFailed, newFlowError(ErrorServer, msgLoadTourFailed, err))
	}

	c.SetSourceTour(tour)
	return nil
}

// failHydration records a blocking page error and schedules the redirect
// back to the catalog listing. The redirect is tied to the wizard context
// and is dropped if the wizard is torn down first.
func (c *Controller) failHydration(ctx context.Context, message string, ferr *FlowError) error {
	c.mu.Lock()
	c.pageError = message
	c.lastError = ferr
	c.mu.Unlock()

	c.navigateAfterDelay(ctx, PathPackages)
	return ferr
}

// hydrateFromCatalog uses the first available tour, seeding an empty
// catalog first, and falls back to the hardcoded default so the wizard is
// never unusable.
func (c *Controller) hydrateFromCatalog(ctx context.Context) {
	tours, err := c.ensureToursExist(ctx)
	if err != nil || len(tours) == 0 {
		if err != nil {
			c.logger.WithError(err).Warn("Catalog unavailable, using default tour")
		}
		fallback := models.DefaultTour
		c.SetSourceTour(&fallback)
		return
	}

	tour := tours[0]
	c.SetSourceTour(&tour)
}

// ensureToursExist fetches the catalog, triggering a seed and refetching
// only when it comes back empty. A non-empty catalog never issues a seed.
func (c *Controller) ensureToursExist(ctx context.Context) ([]models.Tour, error) {
	tours, err := c.catalog.GetTours(ctx)
	if err != nil {
		return nil, err
	}
	if len(tours) > 0 {
		return tours, nil
	}

	c.logger.Info("Tour catalog empty, requesting seed")
	if err := c.catalog.SeedTours(ctx); err != nil {
		return nil, err
	}

	return c.catalog.GetTours(ctx)
}
