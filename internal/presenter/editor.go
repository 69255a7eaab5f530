package presenter

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/pkordes/big-trip/internal/domain"
)

// Mode is the state of an Editor.
type Mode int

const (
	ModeViewing Mode = iota
	ModeEditing
	ModeCreating
)

func (m Mode) String() string {
	switch m {
	case ModeEditing:
		return "editing"
	case ModeCreating:
		return "creating"
	}
	return "viewing"
}

// Status is the progress of the last submit or delete of an open editor.
type Status int

const (
	StatusIdle Status = iota
	StatusSaving
	StatusDeleting
	// StatusFailed means the remote side rejected the last save or delete.
	// The draft is kept so the user can retry.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusSaving:
		return "saving"
	case StatusDeleting:
		return "deleting"
	case StatusFailed:
		return "failed"
	}
	return "idle"
}

// ErrNotEditing is returned by field handlers and submit when the editor is
// closed, and by the favourite toggle while it is open.
var ErrNotEditing = fmt.Errorf("%w: editor is not open", domain.ErrValidation)

// Draft is the transient, point-shaped state of an open editor. It diverges
// from the committed point until a save is confirmed and is discarded on cancel.
// PriceInput keeps the raw text the user typed; it is parsed on submit.
type Draft struct {
	Type          domain.PointType `json:"type"`
	DestinationID string           `json:"destination"`
	PriceInput    string           `json:"base_price"`
	DateFrom      time.Time        `json:"date_from"`
	DateTo        time.Time        `json:"date_to"`
	OfferIDs      []string         `json:"offers"`
	IsFavorite    bool             `json:"is_favorite"`
}

// DraftFromPoint copies a committed point into a new draft.
func DraftFromPoint(p domain.Point) Draft {
	return Draft{
		Type:          p.Type,
		DestinationID: p.DestinationID,
		PriceInput:    strconv.Itoa(p.BasePrice),
		DateFrom:      p.DateFrom,
		DateTo:        p.DateTo,
		OfferIDs:      slices.Clone(p.OfferIDs),
		IsFavorite:    p.IsFavorite,
	}
}

// BlankDraft is the template a new point starts from.
func BlankDraft(now time.Time) Draft {
	start := now.Truncate(time.Minute)
	return Draft{
		Type:       domain.DefaultPointType,
		PriceInput: "0",
		DateFrom:   start,
		DateTo:     start,
	}
}

func (d Draft) clone() Draft {
	d.OfferIDs = slices.Clone(d.OfferIDs)
	return d
}

// Validate checks the draft against the catalog it will be saved with.
// The returned error wraps domain.ErrValidation.
func (d Draft) Validate(c Catalog) error {
	err := validation.ValidateStruct(&d,
		validation.Field(&d.Type, validation.Required, validation.By(knownType)),
		validation.Field(&d.DestinationID, validation.Required, validation.By(func(v interface{}) error {
			if _, ok := c.Destination(v.(string)); !ok {
				return errors.New("unknown destination")
			}
			return nil
		})),
		validation.Field(&d.PriceInput, validation.Required, validation.By(nonNegativeInt)),
		validation.Field(&d.DateFrom, validation.Required),
		validation.Field(&d.DateTo, validation.Required, validation.By(func(v interface{}) error {
			if v.(time.Time).Before(d.DateFrom) {
				return errors.New("must not be before date_from")
			}
			return nil
		})),
		validation.Field(&d.OfferIDs, validation.By(func(v interface{}) error {
			ids, _ := v.([]string)
			group := c.OfferGroup(d.Type)
			seen := make(map[string]bool, len(ids))
			for _, id := range ids {
				if _, ok := group.Find(id); !ok {
					return fmt.Errorf("offer %q is not available for %s", id, d.Type)
				}
				if seen[id] {
					return fmt.Errorf("offer %q selected twice", id)
				}
				seen[id] = true
			}
			return nil
		})),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}
	return nil
}

// Point converts a validated draft into a point with the given id.
func (d Draft) Point(id string, c Catalog) (domain.Point, error) {
	if err := d.Validate(c); err != nil {
		return domain.Point{}, err
	}
	price, _ := strconv.Atoi(strings.TrimSpace(d.PriceInput))
	return domain.Point{
		ID:            id,
		Type:          d.Type,
		DestinationID: d.DestinationID,
		BasePrice:     price,
		DateFrom:      d.DateFrom,
		DateTo:        d.DateTo,
		OfferIDs:      slices.Clone(d.OfferIDs),
		IsFavorite:    d.IsFavorite,
	}, nil
}

func knownType(v interface{}) error {
	if !v.(domain.PointType).Valid() {
		return errors.New("unknown point type")
	}
	return nil
}

func nonNegativeInt(v interface{}) error {
	n, err := strconv.Atoi(strings.TrimSpace(v.(string)))
	if err != nil {
		return errors.New("must be a whole number")
	}
	if n < 0 {
		return errors.New("must not be negative")
	}
	if n > domain.MaxBasePrice {
		return fmt.Errorf("must not exceed %d", domain.MaxBasePrice)
	}
	return nil
}

// Editor is the per-item draft state machine. Field handlers change only the
// draft; those that affect dependent fields call onChange so the owner can
// re-render, the price handler does not.
type Editor struct {
	mode   Mode
	draft  Draft
	status Status
	err    error

	catalog  func() Catalog
	onChange func()
}

func newEditor(catalog func() Catalog, onChange func()) *Editor {
	return &Editor{catalog: catalog, onChange: onChange}
}

func (e *Editor) Mode() Mode     { return e.mode }
func (e *Editor) Status() Status { return e.status }

// Err is the last validation or remote error, cleared on the next submit.
func (e *Editor) Err() error { return e.err }

// Draft returns a copy of the current draft.
func (e *Editor) Draft() Draft { return e.draft.clone() }

// Frame snapshots the editor for rendering.
func (e *Editor) Frame() EditorFrame {
	return EditorFrame{
		Mode:    e.mode,
		Status:  e.status,
		Draft:   e.draft.clone(),
		Err:     e.err,
		Catalog: e.catalog(),
	}
}

// SetType switches the point type. Selected offers belong to the previous
// type's catalog, so they are cleared.
func (e *Editor) SetType(t domain.PointType) error {
	if err := e.editable(); err != nil {
		return err
	}
	if !t.Valid() {
		return fmt.Errorf("%w: unknown point type %q", domain.ErrValidation, t)
	}
	e.draft.Type = t
	e.draft.OfferIDs = nil
	e.onChange()
	return nil
}

// SetDestination resolves name against the catalog. A name that matches no
// destination clears the selection; submit will then reject the draft.
func (e *Editor) SetDestination(name string) error {
	if err := e.editable(); err != nil {
		return err
	}
	e.draft.DestinationID = ""
	if d, ok := e.catalog().DestinationByName(strings.TrimSpace(name)); ok {
		e.draft.DestinationID = d.ID
	}
	e.onChange()
	return nil
}

// ToggleOffer selects or deselects an offer of the current type.
func (e *Editor) ToggleOffer(id string) error {
	if err := e.editable(); err != nil {
		return err
	}
	if _, ok := e.catalog().OfferGroup(e.draft.Type).Find(id); !ok {
		return fmt.Errorf("%w: offer %q is not available for %s", domain.ErrValidation, id, e.draft.Type)
	}
	if i := slices.Index(e.draft.OfferIDs, id); i >= 0 {
		e.draft.OfferIDs = slices.Delete(slices.Clone(e.draft.OfferIDs), i, i+1)
	} else {
		e.draft.OfferIDs = append(slices.Clone(e.draft.OfferIDs), id)
	}
	e.onChange()
	return nil
}

// SetDateFrom moves the start. An end before the new start is pulled up to it.
func (e *Editor) SetDateFrom(t time.Time) error {
	if err := e.editable(); err != nil {
		return err
	}
	e.draft.DateFrom = t
	if e.draft.DateTo.Before(t) {
		e.draft.DateTo = t
	}
	e.onChange()
	return nil
}

// SetDateTo moves the end. An end before the start is clamped to the start.
func (e *Editor) SetDateTo(t time.Time) error {
	if err := e.editable(); err != nil {
		return err
	}
	if t.Before(e.draft.DateFrom) {
		t = e.draft.DateFrom
	}
	e.draft.DateTo = t
	e.onChange()
	return nil
}

// SetPrice stores the raw price text without re-rendering.
func (e *Editor) SetPrice(text string) error {
	if err := e.editable(); err != nil {
		return err
	}
	e.draft.PriceInput = text
	return nil
}

func (e *Editor) editable() error {
	if e.mode == ModeViewing {
		return ErrNotEditing
	}
	if e.busy() {
		return domain.ErrConcurrentEdit
	}
	return nil
}

func (e *Editor) busy() bool {
	return e.status == StatusSaving || e.status == StatusDeleting
}

func (e *Editor) open(mode Mode, d Draft) {
	e.mode = mode
	e.draft = d
	e.status = StatusIdle
	e.err = nil
}

func (e *Editor) close() {
	e.mode = ModeViewing
	e.draft = Draft{}
	e.status = StatusIdle
	e.err = nil
}

// prepare validates the draft for a submit and moves to StatusSaving.
// A validation failure keeps the editor open and records the error.
func (e *Editor) prepare(id string) (domain.Point, error) {
	if e.mode == ModeViewing {
		return domain.Point{}, ErrNotEditing
	}
	if e.busy() {
		return domain.Point{}, domain.ErrConcurrentEdit
	}
	p, err := e.draft.Point(id, e.catalog())
	if err != nil {
		e.err = err
		e.onChange()
		return domain.Point{}, err
	}
	e.setStatus(StatusSaving, nil)
	return p, nil
}

func (e *Editor) setStatus(s Status, err error) {
	e.status = s
	e.err = err
	e.onChange()
}
