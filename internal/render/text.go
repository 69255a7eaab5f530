// Package render draws the itinerary as styled terminal text. Text implements
// every presenter surface and keeps the latest fragment of each so String can
// assemble the whole page at any time.
package render

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/pkordes/big-trip/internal/domain"
	"github.com/pkordes/big-trip/internal/presenter"
	"github.com/pkordes/big-trip/internal/visible"
)

const (
	dayLayout   = "Jan 02"
	clockLayout = "15:04"
	formLayout  = "02/01/06 15:04"
)

var (
	_ presenter.Surface        = (*Text)(nil)
	_ presenter.FilterSurface  = (*Text)(nil)
	_ presenter.SummarySurface = (*Text)(nil)
	_ presenter.ItemSurface    = (*item)(nil)
)

type styles struct {
	header   lipgloss.Style
	muted    lipgloss.Style
	active   lipgloss.Style
	disabled lipgloss.Style
	favorite lipgloss.Style
	price    lipgloss.Style
	failed   lipgloss.Style
	panel    lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		header:   r.NewStyle().Bold(true),
		muted:    r.NewStyle().Foreground(lipgloss.Color("241")),
		active:   r.NewStyle().Bold(true).Underline(true),
		disabled: r.NewStyle().Faint(true),
		favorite: r.NewStyle().Foreground(lipgloss.Color("220")),
		price:    r.NewStyle().Foreground(lipgloss.Color("42")),
		failed:   r.NewStyle().Foreground(lipgloss.Color("196")),
		panel:    r.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}

// Text is a terminal rendition of the trip page. It is driven by the
// presenters on a single goroutine and is not safe for concurrent use.
type Text struct {
	st styles

	summary string
	filters string

	loading bool
	empty   string
	sort    string

	creator *item
	items   []*item
}

// NewText returns a Text whose colors follow the capabilities of w.
func NewText(w io.Writer) *Text {
	return &Text{st: newStyles(lipgloss.NewRenderer(w))}
}

// ---- list surface ----------------------------------------------------------

func (t *Text) ShowLoading() { t.loading = true }

func (t *Text) ShowEmpty(filter domain.FilterType) {
	t.empty = t.st.muted.Render(filter.EmptyMessage())
}

func (t *Text) ShowSort(current domain.SortType) {
	var parts []string
	for _, s := range domain.SortTypes {
		label := strings.ToUpper(string(s))
		if s == current {
			parts = append(parts, t.st.active.Render("("+label+")"))
		} else {
			parts = append(parts, " "+label+" ")
		}
	}
	t.sort = strings.Join(parts, "  ")
}

func (t *Text) NewItem(id string) presenter.ItemSurface {
	it := &item{text: t, id: id}
	t.items = append(t.items, it)
	return it
}

func (t *Text) NewCreator() presenter.ItemSurface {
	it := &item{text: t}
	t.creator = it
	return it
}

func (t *Text) Clear() {
	t.loading = false
	t.empty = ""
	t.sort = ""
}

// ---- filter surface --------------------------------------------------------

func (t *Text) RenderFilters(items []presenter.FilterItem, current domain.FilterType) {
	parts := make([]string, 0, len(items))
	for _, fi := range items {
		label := fmt.Sprintf("%s %d", strings.ToUpper(string(fi.Type)), fi.Count)
		switch {
		case fi.Type == current:
			parts = append(parts, t.st.active.Render("("+label+")"))
		case fi.Disabled:
			parts = append(parts, t.st.disabled.Render(" "+label+" "))
		default:
			parts = append(parts, " "+label+" ")
		}
	}
	t.filters = strings.Join(parts, "  ")
}

// ---- summary surface -------------------------------------------------------

func (t *Text) RenderSummary(s visible.TripSummary) {
	dates := s.Start.Format(dayLayout)
	if !sameDay(s.Start, s.End) {
		dates += " — " + s.End.Format(dayLayout)
	}
	t.summary = lipgloss.JoinVertical(lipgloss.Left,
		t.st.header.Render(s.Route),
		t.st.muted.Render(dates),
		"Total: "+t.st.price.Render(fmt.Sprintf("€ %d", s.Cost)),
	)
}

func (t *Text) HideSummary() { t.summary = "" }

// ---- document --------------------------------------------------------------

// String assembles the current page: summary, filters, sort bar, an open
// creator, then the items in the order they were requested.
func (t *Text) String() string {
	var blocks []string
	if t.summary != "" {
		blocks = append(blocks, t.summary)
	}
	if t.filters != "" {
		blocks = append(blocks, t.filters)
	}
	switch {
	case t.loading:
		blocks = append(blocks, t.st.muted.Render("Loading..."))
	case t.empty != "":
		blocks = append(blocks, t.empty)
	case t.sort != "":
		blocks = append(blocks, t.sort)
	}
	if t.creator != nil && t.creator.content != "" {
		blocks = append(blocks, t.creator.content)
	}
	for _, it := range t.items {
		if it.content != "" {
			blocks = append(blocks, it.content)
		}
	}
	return strings.Join(blocks, "\n\n") + "\n"
}

// ---- items -----------------------------------------------------------------

// item is the fragment owned by one controller, or by the creator when id
// is empty.
type item struct {
	text    *Text
	id      string
	content string
}

func (it *item) RenderPoint(p domain.Point, c presenter.Catalog) {
	it.content = it.text.point(p, c)
}

func (it *item) RenderEditor(f presenter.EditorFrame) {
	it.content = it.text.editor(f)
}

func (it *item) Destroy() {
	it.content = ""
	t := it.text
	if t.creator == it {
		t.creator = nil
		return
	}
	t.items = slices.DeleteFunc(t.items, func(o *item) bool { return o == it })
}

func (t *Text) point(p domain.Point, c presenter.Catalog) string {
	star := "☆"
	if p.IsFavorite {
		star = t.st.favorite.Render("★")
	}
	head := fmt.Sprintf("%s  %s %s  %s — %s (%s)  %s  %s",
		p.DateFrom.Format(dayLayout),
		typeLabel(p.Type), destinationName(c, p.DestinationID),
		p.DateFrom.Format(clockLayout), p.DateTo.Format(clockLayout),
		FormatDuration(p.Duration()),
		t.st.price.Render(fmt.Sprintf("€ %d", p.BasePrice)),
		star,
	)
	lines := []string{head}
	group := c.OfferGroup(p.Type)
	for _, id := range p.OfferIDs {
		if o, ok := group.Find(id); ok {
			lines = append(lines, t.st.muted.Render(fmt.Sprintf("  + %s +€ %d", o.Title, o.Price)))
		}
	}
	return strings.Join(lines, "\n")
}

func (t *Text) editor(f presenter.EditorFrame) string {
	d := f.Draft
	dest, _ := f.Catalog.Destination(d.DestinationID)

	lines := []string{
		t.st.header.Render(fmt.Sprintf("%s  %s", typeLabel(d.Type), dest.Name)),
		fmt.Sprintf("From %s  To %s", d.DateFrom.Format(formLayout), d.DateTo.Format(formLayout)),
		fmt.Sprintf("Price € %s", d.PriceInput),
	}
	if d.IsFavorite {
		lines = append(lines, t.st.favorite.Render("★ favorite"))
	}

	if offers := f.Catalog.OfferGroup(d.Type).Offers; len(offers) > 0 {
		lines = append(lines, "", t.st.header.Render("Offers"))
		for _, o := range offers {
			mark := "[ ]"
			if slices.Contains(d.OfferIDs, o.ID) {
				mark = "[x]"
			}
			lines = append(lines, fmt.Sprintf("%s %s +€ %d", mark, o.Title, o.Price))
		}
	}

	if dest.Description != "" || len(dest.Pictures) > 0 {
		lines = append(lines, "", t.st.header.Render("Destination"))
		if dest.Description != "" {
			lines = append(lines, dest.Description)
		}
		for _, pic := range dest.Pictures {
			lines = append(lines, t.st.muted.Render("  "+pic.Src))
		}
	}

	lines = append(lines, "", t.buttons(f))
	if f.Status == presenter.StatusFailed && f.Err != nil {
		lines = append(lines, t.st.failed.Render(f.Err.Error()))
	}
	return t.st.panel.Render(strings.Join(lines, "\n"))
}

func (t *Text) buttons(f presenter.EditorFrame) string {
	save := "[Save]"
	if f.Status == presenter.StatusSaving {
		save = "[Saving...]"
	}
	if f.Mode == presenter.ModeCreating {
		return save + " [Cancel]"
	}
	del := "[Delete]"
	if f.Status == presenter.StatusDeleting {
		del = "[Deleting...]"
	}
	return save + " " + del + " [Close]"
}

// FormatDuration renders a duration as "01D 02H 30M", dropping leading zero
// units: "02H 05M", "45M".
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Minute)
	days, hours, minutes := total/(24*60), total/60%24, total%60
	switch {
	case days > 0:
		return fmt.Sprintf("%02dD %02dH %02dM", days, hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%02dH %02dM", hours, minutes)
	}
	return fmt.Sprintf("%02dM", minutes)
}

func typeLabel(t domain.PointType) string {
	s := string(t)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func destinationName(c presenter.Catalog, id string) string {
	if d, ok := c.Destination(id); ok {
		return d.Name
	}
	return ""
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
