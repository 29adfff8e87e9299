// Package widget renders the featured-image widget: one catalog entry is
// selected at random and rendered as a visible figure, while the remaining
// entries become hidden links in the same lightbox gallery group, so the
// lightbox can still navigate the full catalog.
package widget

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"math/rand"
	"regexp"
	"time"

	"github.com/google/uuid"

	"docs-gallery/pkg/models"
)

// PlaceholderID identifies the render target element. Pages without an
// element carrying this id are returned untouched.
const PlaceholderID = "featured-image"

// ErrEmptyCatalog is returned by New when the catalog has no entries.
// Selection over an empty catalog is undefined; this is a configuration
// error and is also caught by config validation before the widget exists.
var ErrEmptyCatalog = errors.New("widget: catalog must contain at least one entry")

// placeholderPattern matches the opening tag of the render target.
var placeholderPattern = regexp.MustCompile(`<[^>]*\bid="` + PlaceholderID + `"[^>]*>`)

// Widget holds a fixed catalog and produces markup fragments for it.
// The catalog is never mutated; each Fragment call is an independent
// random trial.
type Widget struct {
	catalog  []models.CatalogEntry
	group    string
	width    int
	rng      *rand.Rand
	lightbox Lightbox
	options  Options
}

// Option configures a Widget.
type Option func(*Widget)

// WithGroup sets the gallery-group identifier shared by all rendered links.
func WithGroup(group string) Option {
	return func(w *Widget) {
		if group != "" {
			w.group = group
		}
	}
}

// WithWidth sets the display width of the visible image in pixels.
func WithWidth(width int) Option {
	return func(w *Widget) {
		if width > 0 {
			w.width = width
		}
	}
}

// WithRandSource substitutes the random source used for selection.
// Tests pass a fixed-seed source for deterministic picks.
func WithRandSource(rng *rand.Rand) Option {
	return func(w *Widget) {
		if rng != nil {
			w.rng = rng
		}
	}
}

// WithLightbox substitutes the lightbox controller implementation.
func WithLightbox(lb Lightbox) Option {
	return func(w *Widget) {
		if lb != nil {
			w.lightbox = lb
		}
	}
}

// WithOptions sets the lightbox activation options.
func WithOptions(opts Options) Option {
	return func(w *Widget) {
		w.options = opts
	}
}

// New creates a Widget over a fixed catalog. The catalog must contain at
// least one entry. Without WithGroup every widget gets a unique gallery
// group, so two widgets on one page never merge their lightbox sequences.
func New(catalog []models.CatalogEntry, opts ...Option) (*Widget, error) {
	if len(catalog) == 0 {
		return nil, ErrEmptyCatalog
	}

	w := &Widget{
		catalog:  catalog,
		group:    fmt.Sprintf("featured-%.8s", uuid.NewString()),
		width:    300,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		lightbox: GLightbox{},
		options:  DefaultOptions(),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w, nil
}

// Group returns the gallery-group identifier.
func (w *Widget) Group() string {
	return w.group
}

// Pick draws one catalog index uniformly at random.
func (w *Widget) Pick() int {
	return w.rng.Intn(len(w.catalog))
}

// fragmentTemplate builds the full widget fragment: the visible figure, the
// hidden gallery container, and the lightbox activation. The caption element
// receives the caption as rich text; attribute metadata is escaped normally.
var fragmentTemplate = template.Must(template.New("fragment").Parse(`<figure class="featured-image">
  <a href="{{.Selected.Image}}" class="glightbox" data-gallery="{{.Group}}" data-glightbox="title: {{.Selected.Caption}}">
    <img src="{{.Selected.Image}}" alt="Featured image" width="{{.Width}}" loading="lazy">
  </a>
  <figcaption>{{.Caption}}</figcaption>
</figure>
<div class="featured-image-hidden" style="display: none">
{{- range .Hidden}}
  <a href="{{.Image}}" class="glightbox" data-gallery="{{$.Group}}" data-glightbox="title: {{.Caption}}"></a>
{{- end}}
</div>
{{.Activation}}`))

// fragmentData is the template payload for one render.
type fragmentData struct {
	Group      string
	Width      int
	Selected   models.CatalogEntry
	Caption    template.HTML
	Hidden     []models.CatalogEntry
	Activation template.HTML
}

// Fragment selects one entry at random and renders the widget markup.
// Repeated calls are independent trials.
func (w *Widget) Fragment() (template.HTML, error) {
	return w.FragmentAt(w.Pick())
}

// FragmentAt renders the widget markup with a fixed selection. The hidden
// links preserve catalog order with only the selected index skipped; that
// order is the lightbox's next/previous navigation order.
func (w *Widget) FragmentAt(selected int) (template.HTML, error) {
	if selected < 0 || selected >= len(w.catalog) {
		return "", fmt.Errorf("widget: selected index %d out of range [0, %d)", selected, len(w.catalog))
	}

	hidden := make([]models.CatalogEntry, 0, len(w.catalog)-1)
	for i, entry := range w.catalog {
		if i == selected {
			continue
		}
		hidden = append(hidden, entry)
	}

	activation, err := w.lightbox.Activate(w.group, w.options)
	if err != nil {
		return "", fmt.Errorf("widget: lightbox activation: %w", err)
	}

	data := fragmentData{
		Group:      w.group,
		Width:      w.width,
		Selected:   w.catalog[selected],
		Caption:    template.HTML(w.catalog[selected].Caption),
		Hidden:     hidden,
		Activation: activation,
	}

	var buf bytes.Buffer
	if err := fragmentTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("widget: render fragment: %w", err)
	}

	return template.HTML(buf.String()), nil
}

// RenderInto appends a freshly selected fragment under the render target in
// the given page markup. When the target is absent the page is returned
// unchanged: no selection is made and no error is raised.
func (w *Widget) RenderInto(page string) (string, error) {
	loc := placeholderPattern.FindStringIndex(page)
	if loc == nil {
		return page, nil
	}

	fragment, err := w.Fragment()
	if err != nil {
		return "", err
	}

	return page[:loc[1]] + "\n" + string(fragment) + page[loc[1]:], nil
}
