// Package pages holds the pure rendering layer: every view is a function
// from state plus fetched data to an HTML fragment, with no knowledge of
// how fragments reach the document.
package pages

import (
	"embed"
	"fmt"
	"html/template"
	"strings"

	catalog "kiosqueLive/internal/modules/catalog/domain"
	contact "kiosqueLive/internal/modules/contact/domain"
	presence "kiosqueLive/internal/modules/presence/domain"
)

//go:embed templates
var templateFS embed.FS

// Fragment is a rendered piece of the page plus the metadata the session
// needs to re-arm scroll-in animations for the new nodes.
type Fragment struct {
	HTML      string
	Empty     bool
	RevealIDs []string
}

type Renderer struct {
	templates *template.Template
}

func NewRenderer() *Renderer {
	return &Renderer{
		templates: template.Must(template.ParseFS(templateFS, "templates/*.tmpl")),
	}
}

type cardData struct {
	CardID      string
	Name        string
	Label       string
	FilterToken string
	Price       string
	Image       string
	Alt         string
	Bestseller  bool
	Sweet       bool
	Savory      bool
}

func newCardData(p catalog.Product, showBestsellerTag bool, idPrefix string) cardData {
	return cardData{
		CardID:      fmt.Sprintf("%s-%d", idPrefix, p.ID),
		Name:        p.Name,
		Label:       catalog.CategoryLabel(p.Category, p.CategoryLabel),
		FilterToken: catalog.FilterToken(p.Category),
		Price:       catalog.FormatPrice(p.Price),
		Image:       p.Image,
		Alt:         p.Alt,
		Bestseller:  p.Bestseller && showBestsellerTag,
		Sweet:       p.HasTag(catalog.TagSweet),
		Savory:      p.HasTag(catalog.TagSavory),
	}
}

func (r *Renderer) execute(name string, data any) (string, error) {
	var builder strings.Builder
	if err := r.templates.ExecuteTemplate(&builder, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return builder.String(), nil
}

// ProductCard renders a single card. The bestseller badge shows only when
// the product carries the flag and the caller asked for it.
func (r *Renderer) ProductCard(p catalog.Product, showBestsellerTag bool) (string, error) {
	return r.execute("product_card", newCardData(p, showBestsellerTag, "product"))
}

// Menu rebuilds the whole menu grid from the cached product list under
// the given view state. No diffing: the fragment replaces the previous
// grid wholesale.
func (r *Renderer) Menu(state catalog.ViewState, products []catalog.Product) (Fragment, error) {
	visible := state.VisibleProducts(products)
	cards := make([]cardData, 0, len(visible))
	revealIDs := make([]string, 0, len(visible))
	for _, p := range visible {
		card := newCardData(p, false, "product")
		cards = append(cards, card)
		revealIDs = append(revealIDs, card.CardID)
	}

	html, err := r.execute("menu", map[string]any{
		"Cards": cards,
		"Empty": len(cards) == 0,
	})
	if err != nil {
		return Fragment{}, err
	}
	return Fragment{HTML: html, Empty: len(cards) == 0, RevealIDs: revealIDs}, nil
}

// Bestsellers renders the carousel track; the bestseller badge is always
// shown here.
func (r *Renderer) Bestsellers(products []catalog.Product) (Fragment, error) {
	cards := make([]cardData, 0, len(products))
	revealIDs := make([]string, 0, len(products))
	for _, p := range products {
		card := newCardData(p, true, "bestseller")
		cards = append(cards, card)
		revealIDs = append(revealIDs, card.CardID)
	}

	html, err := r.execute("bestsellers", map[string]any{"Cards": cards})
	if err != nil {
		return Fragment{}, err
	}
	return Fragment{HTML: html, Empty: len(cards) == 0, RevealIDs: revealIDs}, nil
}

// Location renders today's location summary. A nil location falls back to
// the placeholder text; the daily message block is emitted only when the
// data carries one.
func (r *Renderer) Location(location *presence.LocationInfo) (string, error) {
	data := map[string]any{
		"Place":   presence.PlaceFallback,
		"Hours":   "",
		"Message": "",
	}
	if location != nil {
		data["Place"] = location.DisplayPlace()
		data["Hours"] = location.Hours
		data["Message"] = location.Message
	}
	return r.execute("location", data)
}

// Schedule renders the weekly table in the order received; weekend rows
// get the highlight class.
func (r *Renderer) Schedule(entries []presence.ScheduleEntry) (string, error) {
	return r.execute("schedule", map[string]any{"Entries": entries})
}

// Shell renders the page shell content (site name, slogan, standing
// hours, social links).
func (r *Renderer) Shell(settings presence.SiteSettings) (string, error) {
	return r.execute("shell", settings)
}

// ContactStatus renders the form status panel for the given phase. The
// error panel carries a generic retry message only; server detail never
// reaches it.
func (r *Renderer) ContactStatus(phase contact.FormPhase) (string, error) {
	return r.execute("contact_status", map[string]any{"Phase": string(phase)})
}
