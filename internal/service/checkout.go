package service

import (
	"context"
	"sync"

	"github.com/guttosm/cart-sync/internal/client"
	"github.com/guttosm/cart-sync/internal/domain/model"
	"github.com/guttosm/cart-sync/internal/i18n"
	"github.com/guttosm/cart-sync/internal/metrics"
	"github.com/rs/zerolog"
)

// CheckoutOrchestrator submits the persisted selection and delivery info as
// an order. Both are checked before any network call, selection first.
type CheckoutOrchestrator struct {
	mu          sync.Locker
	client      client.CartClient
	store       *CheckoutStore
	selection   *SelectionTracker
	audit       auditor
	loginPath   string
	landingPath string
}

// NewCheckoutOrchestrator creates an orchestrator. mu is the owning session's lock.
func NewCheckoutOrchestrator(mu sync.Locker, c client.CartClient, store *CheckoutStore, selection *SelectionTracker, loginPath, landingPath string) *CheckoutOrchestrator {
	return &CheckoutOrchestrator{
		mu:          mu,
		client:      c,
		store:       store,
		selection:   selection,
		loginPath:   loginPath,
		landingPath: landingPath,
	}
}

// Submit places the order. On success the delivery info and the submitted
// lines' selection are cleared and the shopper is sent to the landing page;
// lines marked while the order was in flight stay selected. Any failure
// keeps every persisted value.
func (o *CheckoutOrchestrator) Submit(ctx context.Context) (model.Outcome, error) {
	o.mu.Lock()
	selected, info, err := o.store.State(ctx)
	o.mu.Unlock()
	if err != nil {
		return model.Outcome{}, err
	}

	if len(selected) == 0 {
		return o.finish(ctx, invalid(i18n.NoticeKeySelectionRequired, ""), selected), nil
	}
	if info == nil {
		return o.finish(ctx, invalid(i18n.NoticeKeyDeliveryInfoRequired, ""), selected), nil
	}

	res := o.client.SubmitOrder(ctx, *info, selected)

	switch res.Outcome {
	case model.OutcomeApplied:
		o.mu.Lock()
		defer o.mu.Unlock()
		if err := o.store.Clear(ctx); err != nil {
			return model.Outcome{}, err
		}
		if err := o.selection.Release(ctx, selected); err != nil {
			return model.Outcome{}, err
		}
		return o.finish(ctx, model.Outcome{
			Status:   model.OutcomeApplied,
			Notice:   model.NewNotice(model.NoticeSuccess, i18n.NoticeKeyOrderPlaced),
			Redirect: o.landingPath,
		}, selected), nil

	case model.OutcomeAuthRequired:
		return o.finish(ctx, authRequired(o.loginPath), selected), nil

	default:
		if res.Err != nil {
			zerolog.Ctx(ctx).Warn().Err(res.Err).Msg("Order submission failed")
		}
		return o.finish(ctx, failed(res.Message, i18n.NoticeKeyOrderFailed), selected), nil
	}
}

func (o *CheckoutOrchestrator) finish(ctx context.Context, outcome model.Outcome, selected []string) model.Outcome {
	metrics.RecordCheckoutSubmission(string(outcome.Status))
	o.audit.record(ctx, ActionCheckout, outcome, map[string]interface{}{"selected_products": selected})
	return outcome
}
