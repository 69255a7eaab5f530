package presenter

import (
	"context"
	"time"

	"github.com/pkordes/big-trip/internal/domain"
)

// draftSlot is the orchestrator's single open-draft slot.
type draftSlot interface {
	openDraft(owner draftOwner)
	closeDraft(owner draftOwner)
}

// draftOwner is anything that can hold the slot. discardDraft is called when
// another owner takes the slot.
type draftOwner interface {
	discardDraft()
}

// actionDispatcher is satisfied by *Dispatcher.
type actionDispatcher interface {
	Dispatch(ctx context.Context, action domain.UserAction, kind domain.UpdateType, point domain.Point) error
}

// PointController owns the fragment of one committed point. It shows the
// point card in ModeViewing and the edit form in ModeEditing.
// Once destroyed every method is a no-op.
type PointController struct {
	point     domain.Point
	editor    *Editor
	surface   ItemSurface
	dispatch  actionDispatcher
	catalog   func() Catalog
	slot      draftSlot
	destroyed bool
}

func newPointController(surface ItemSurface, dispatch actionDispatcher, catalog func() Catalog, slot draftSlot) *PointController {
	c := &PointController{
		surface:  surface,
		dispatch: dispatch,
		catalog:  catalog,
		slot:     slot,
	}
	c.editor = newEditor(catalog, c.render)
	return c
}

// Point returns the committed point this controller shows.
func (c *PointController) Point() domain.Point { return c.point.Clone() }

// Editor exposes the field handlers of the edit form.
func (c *PointController) Editor() *Editor { return c.editor }

// Mode is shorthand for Editor().Mode().
func (c *PointController) Mode() Mode { return c.editor.Mode() }

// Destroyed reports whether the orchestrator has dropped this controller.
func (c *PointController) Destroyed() bool { return c.destroyed }

func (c *PointController) init(p domain.Point) {
	c.point = p.Clone()
	c.render()
}

// Refresh replaces the committed point after a confirmed in-place change.
// The editor is closed only when its own save produced p; an idle draft is kept.
func (c *PointController) Refresh(p domain.Point) {
	if c.destroyed {
		return
	}
	c.point = p.Clone()
	if c.editor.Mode() != ModeViewing && c.editor.Status() == StatusSaving {
		c.closeEditor()
	}
	c.render()
}

// OpenEditor switches to ModeEditing with a draft copied from the committed
// point. Any other open draft is discarded first.
func (c *PointController) OpenEditor() {
	if c.destroyed || c.editor.Mode() == ModeEditing {
		return
	}
	c.slot.openDraft(c)
	c.editor.open(ModeEditing, DraftFromPoint(c.point))
	c.render()
}

// Cancel discards the draft and returns to the point card. No store is touched.
func (c *PointController) Cancel() {
	if c.destroyed || c.editor.Mode() == ModeViewing {
		return
	}
	c.closeEditor()
	c.render()
}

// Submit validates the draft and dispatches an update. Changes to dates or
// price can move the point in the filtered and sorted list and are sent as
// UpdateMinor; everything else is UpdatePatch.
// On failure the editor stays open with the draft and StatusFailed.
func (c *PointController) Submit(ctx context.Context) error {
	if c.destroyed {
		return ErrNotEditing
	}
	p, err := c.editor.prepare(c.point.ID)
	if err != nil {
		return err
	}

	err = c.dispatch.Dispatch(ctx, domain.ActionUpdate, classify(c.point, p), p)
	return c.settle(err)
}

// Delete dispatches removal of the point from the open edit form.
func (c *PointController) Delete(ctx context.Context) error {
	if c.destroyed || c.editor.Mode() != ModeEditing {
		return ErrNotEditing
	}
	if c.editor.busy() {
		return domain.ErrConcurrentEdit
	}
	c.editor.setStatus(StatusDeleting, nil)

	err := c.dispatch.Dispatch(ctx, domain.ActionDelete, domain.UpdateMinor, c.point)
	return c.settle(err)
}

// ToggleFavorite flips the favourite flag of the committed point. It is only
// available on the card; with the editor open it returns ErrNotEditing.
// The card only changes once the store confirms with a patch.
func (c *PointController) ToggleFavorite(ctx context.Context) error {
	if c.destroyed {
		return nil
	}
	if c.editor.Mode() != ModeViewing {
		return ErrNotEditing
	}
	p := c.point.Clone()
	p.IsFavorite = !p.IsFavorite
	return c.dispatch.Dispatch(ctx, domain.ActionUpdate, domain.UpdatePatch, p)
}

// settle records the outcome of a dispatch started from the editor.
// On success the store notification has already refreshed or destroyed this
// controller; if neither happened the point vanished meanwhile and the
// editor is closed.
func (c *PointController) settle(err error) error {
	if c.destroyed {
		return err
	}
	if err != nil {
		c.editor.setStatus(StatusFailed, err)
		return err
	}
	if c.editor.Mode() != ModeViewing {
		c.closeEditor()
		c.render()
	}
	return nil
}

func (c *PointController) closeEditor() {
	c.editor.close()
	c.slot.closeDraft(c)
}

func (c *PointController) discardDraft() {
	if c.destroyed {
		return
	}
	c.editor.close()
	c.render()
}

func (c *PointController) destroy() {
	if c.destroyed {
		return
	}
	if c.editor.Mode() != ModeViewing {
		c.closeEditor()
	}
	c.destroyed = true
	c.surface.Destroy()
}

func (c *PointController) render() {
	if c.destroyed {
		return
	}
	if c.editor.Mode() == ModeViewing {
		c.surface.RenderPoint(c.point, c.catalog())
		return
	}
	c.surface.RenderEditor(c.editor.Frame())
}

// classify picks the update kind for an edit of committed into next.
func classify(committed, next domain.Point) domain.UpdateType {
	if !committed.DateFrom.Equal(next.DateFrom) ||
		!committed.DateTo.Equal(next.DateTo) ||
		committed.BasePrice != next.BasePrice {
		return domain.UpdateMinor
	}
	return domain.UpdatePatch
}

// PointCreator owns the new-point form. It lives in ModeCreating from open
// until it is destroyed by cancel, by another draft taking the slot or by the
// rebuild that follows a confirmed add.
type PointCreator struct {
	editor    *Editor
	surface   ItemSurface
	dispatch  actionDispatcher
	slot      draftSlot
	destroyed bool
}

func newPointCreator(surface ItemSurface, dispatch actionDispatcher, catalog func() Catalog, slot draftSlot) *PointCreator {
	c := &PointCreator{surface: surface, dispatch: dispatch, slot: slot}
	c.editor = newEditor(catalog, c.render)
	return c
}

// Editor exposes the field handlers of the new-point form.
func (c *PointCreator) Editor() *Editor { return c.editor }

// Destroyed reports whether the form has been closed.
func (c *PointCreator) Destroyed() bool { return c.destroyed }

func (c *PointCreator) open(now time.Time) {
	c.slot.openDraft(c)
	c.editor.open(ModeCreating, BlankDraft(now))
	c.render()
}

// Submit validates the draft and dispatches an add classified UpdateMajor.
func (c *PointCreator) Submit(ctx context.Context) error {
	if c.destroyed {
		return ErrNotEditing
	}
	p, err := c.editor.prepare("")
	if err != nil {
		return err
	}

	err = c.dispatch.Dispatch(ctx, domain.ActionAdd, domain.UpdateMajor, p)
	if c.destroyed {
		return err
	}
	if err != nil {
		c.editor.setStatus(StatusFailed, err)
		return err
	}
	c.destroy()
	return nil
}

// Cancel closes the form without touching any store.
func (c *PointCreator) Cancel() { c.destroy() }

func (c *PointCreator) discardDraft() { c.destroy() }

func (c *PointCreator) destroy() {
	if c.destroyed {
		return
	}
	c.destroyed = true
	c.editor.close()
	c.slot.closeDraft(c)
	c.surface.Destroy()
}

func (c *PointCreator) render() {
	if c.destroyed {
		return
	}
	c.surface.RenderEditor(c.editor.Frame())
}
