package handlers

import (
	"bytes"
	"encoding/json"
	"html/template"
	"log"
	"net/http"

	"github.com/eknkc/pug"

	"docs-gallery/pkg/models"
	"docs-gallery/pkg/services"
)

// HomeHandler handles requests for the front page and dispatches every
// other path to the page handler. The featured-image widget is injected at
// the placeholder the front-page view carries.
func HomeHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		PageHandler(w, r)
		return
	}

	log.Println("Generating Front Page")

	tmpl, err := pug.CompileFile("./views/index.pug", pug.Options{})
	if err != nil {
		panic(err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, models.Home{
		Title:    services.SiteTitle(),
		Sections: services.GetSections(),
	})
	if err != nil {
		panic(err)
	}

	writeWithWidget(w, buf.String())
}

// PageHandler handles requests for individual documentation pages
func PageHandler(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path

	page, err := services.GetPage(path)
	if err != nil {
		log.Println("Page not found: " + path)
		http.NotFound(w, r)
		return
	}
	log.Println("Generating Page: " + path)

	content, err := services.RenderPage(page)
	if err != nil {
		log.Printf("Render error: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	tmpl, err := pug.CompileFile("./views/page.pug", pug.Options{})
	if err != nil {
		panic(err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, models.Document{
		Title:   page.Title,
		Site:    services.SiteTitle(),
		Content: template.HTML(content),
	})
	if err != nil {
		panic(err)
	}

	writeWithWidget(w, buf.String())
}

// FeedHandler handles requests for the site feed (JSON)
func FeedHandler(w http.ResponseWriter, _ *http.Request) {
	log.Println("Generating Feed")

	feed := models.Feed{
		Title:   services.SiteTitle(),
		Pages:   services.GetPages(),
		Catalog: services.ResolveCatalog(),
	}

	jsonString, err := json.Marshal(feed)
	if err != nil {
		panic(err)
	}

	w.Header().Set("Content-Type", "application/json")
	_, err = w.Write(jsonString)
	if err != nil {
		return
	}
}

// writeWithWidget injects the featured-image widget into the rendered page
// and writes the result. Pages without the placeholder pass through as-is.
func writeWithWidget(w http.ResponseWriter, page string) {
	widget, err := services.FeaturedWidget()
	if err != nil {
		log.Printf("Widget error: %v", err)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(page))
		return
	}

	rendered, err := widget.RenderInto(page)
	if err != nil {
		log.Printf("Widget render error: %v", err)
		rendered = page
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(rendered))
}
