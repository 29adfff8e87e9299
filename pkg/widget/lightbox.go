package widget

import (
	"bytes"
	"fmt"
	"html/template"
	texttemplate "text/template"
)

// Options configures lightbox activation behaviour.
type Options struct {
	// Loop makes navigation wrap from the last image back to the first.
	Loop bool

	// TouchNavigation enables touch gestures for next/previous.
	TouchNavigation bool

	// CloseEffect is the transition used when closing the lightbox.
	CloseEffect string

	// SlideEffect is the transition used when advancing between images.
	SlideEffect string
}

// DefaultOptions returns the standard activation options: looping, touch
// navigation, fade on close and slide on advance.
func DefaultOptions() Options {
	return Options{
		Loop:            true,
		TouchNavigation: true,
		CloseEffect:     "fade",
		SlideEffect:     "slide",
	}
}

// Lightbox activates grouped next/previous navigation over tagged anchors.
// Implementations emit whatever markup binds their controller to the group.
type Lightbox interface {
	Activate(group string, opts Options) (template.HTML, error)
}

// GLightbox emits an initialization script for the GLightbox controller,
// scoped to anchors tagged with the given gallery group.
type GLightbox struct{}

// The activation script is assembled with text/template: the emitted JS is
// inserted into fragments as pre-escaped HTML, and the selector must carry
// literal double quotes.
var glightboxTemplate = texttemplate.Must(texttemplate.New("glightbox").Parse(`<script>
  GLightbox({
    selector: 'a[data-gallery="{{.Group}}"]',
    loop: {{.Loop}},
    touchNavigation: {{.TouchNavigation}},
    closeEffect: '{{.CloseEffect}}',
    slideEffect: '{{.SlideEffect}}'
  });
</script>`))

// Activate implements Lightbox.
func (GLightbox) Activate(group string, opts Options) (template.HTML, error) {
	data := struct {
		Group string
		Options
	}{Group: group, Options: opts}

	var buf bytes.Buffer
	if err := glightboxTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("glightbox: %w", err)
	}

	return template.HTML(buf.String()), nil
}
