package presenter

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pkordes/big-trip/internal/domain"
)

// Dispatcher is the single entry point for user-initiated mutations.
// It applies nothing locally: the points store changes only after the remote
// side confirmed, so a failure needs no rollback.
type Dispatcher struct {
	points PointsMutator
	log    *slog.Logger
}

// NewDispatcher constructs a Dispatcher writing to points.
func NewDispatcher(points PointsMutator, log *slog.Logger) *Dispatcher {
	if log == nil {
		log = slog.Default()
	}
	return &Dispatcher{points: points, log: log}
}

// Dispatch forwards action to the matching store operation with the caller's
// update classification. For ActionDelete only point.ID is used.
func (d *Dispatcher) Dispatch(ctx context.Context, action domain.UserAction, kind domain.UpdateType, point domain.Point) error {
	d.log.DebugContext(ctx, "dispatch", "action", action, "update", kind, "id", point.ID)

	var err error
	switch action {
	case domain.ActionAdd:
		_, err = d.points.AddPoint(ctx, kind, point)
	case domain.ActionUpdate:
		_, err = d.points.UpdatePoint(ctx, kind, point)
	case domain.ActionDelete:
		err = d.points.DeletePoint(ctx, kind, point.ID)
	default:
		err = fmt.Errorf("%w: unknown action %d", domain.ErrValidation, int(action))
	}
	if err != nil {
		return fmt.Errorf("presenter.Dispatcher.Dispatch %s: %w", action, err)
	}
	return nil
}
