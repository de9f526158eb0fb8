package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	catalog "kiosqueLive/internal/modules/catalog/domain"
	contact "kiosqueLive/internal/modules/contact/domain"
	"kiosqueLive/internal/modules/pages"
	presence "kiosqueLive/internal/modules/presence/domain"
	"kiosqueLive/internal/modules/storefront/application/port"
	"kiosqueLive/internal/modules/storefront/domain"
	ui "kiosqueLive/internal/modules/ui/domain"
	"kiosqueLive/internal/shared/normalization"
)

// BestsellersTrack is the carousel id of the bestseller strip.
const BestsellersTrack = "bestsellers"

// MessageSender delivers messages to a single connected session.
type MessageSender interface {
	SendDomainMessage(msg *domain.Message)
}

type SessionDeps struct {
	Catalog  port.CatalogFetcher
	Presence port.PresenceFetcher
	Relay    *ContactRelayUseCase
	Renderer *pages.Renderer
}

// Session owns one visitor's view state and UI state machines. Every
// interaction event mutates state here and pushes the resulting fragment
// or state change back through the sender; the browser shim only applies
// what it receives.
type Session struct {
	deps   SessionDeps
	sender MessageSender

	mu          sync.Mutex
	view        catalog.ViewState
	products    []catalog.Product
	bestsellers []catalog.Product
	reveals     *ui.RevealSet
	carousels   map[string]*ui.CarouselState
	header      ui.HeaderState
	nav         ui.NavState
	form        *contact.FormState

	afterFunc func(time.Duration, func()) *time.Timer
}

func NewSession(sender MessageSender, deps SessionDeps) *Session {
	return &Session{
		deps:      deps,
		sender:    sender,
		view:      catalog.NewViewState(),
		reveals:   ui.NewRevealSet(),
		carousels: make(map[string]*ui.CarouselState),
		form:      contact.NewFormState(),
		afterFunc: time.AfterFunc,
	}
}

// Bootstrap runs the startup sequence for a fresh connection. Command
// handling is already wired by the transport, so the page is interactive
// while data loads: products first, then bestsellers, location, schedule
// and settings concurrently with a join before the first menu render,
// then carousel init, then reveal observation armed last.
func (s *Session) Bootstrap(ctx context.Context) {
	products := s.deps.Catalog.FetchProducts(ctx)

	var (
		bestsellers []catalog.Product
		location    *presence.LocationInfo
		schedule    []presence.ScheduleEntry
		settings    presence.SiteSettings
	)
	var wg sync.WaitGroup
	wg.Add(4)
	go func() { defer wg.Done(); bestsellers = s.deps.Catalog.FetchBestsellers(ctx) }()
	go func() { defer wg.Done(); location = s.deps.Presence.FetchTodayLocation(ctx) }()
	go func() { defer wg.Done(); schedule = s.deps.Presence.FetchSchedule(ctx) }()
	go func() { defer wg.Done(); settings = s.deps.Presence.FetchSettings(ctx) }()
	wg.Wait()

	s.mu.Lock()
	s.products = products
	s.bestsellers = bestsellers
	s.mu.Unlock()

	s.sendShell(settings)
	s.sendLocation(location)
	s.sendSchedule(schedule)
	s.sendBestsellers()
	s.sendMenu()
	s.initCarousels()
	s.armReveals()
}

// HandleEvent routes one interaction event from the browser shim.
func (s *Session) HandleEvent(ctx context.Context, action string, payload map[string]any) {
	switch strings.ToLower(strings.TrimSpace(action)) {
	case "menu.filter":
		s.applyFilter(normalization.AsString(payload["filter"]))
	case "menu.search":
		query, _ := payload["query"].(string)
		s.setSearch(query)
	case "menu.jump":
		s.applyFilter(normalization.AsString(payload["filter"]))
		s.send(domain.NewMessage(domain.TopicUIScroll, domain.UIEntity, domain.ActionState, map[string]any{
			"target": "menu",
			"smooth": true,
		}))
	case "nav.toggle":
		s.mu.Lock()
		s.nav.ToggleMenu()
		s.mu.Unlock()
		s.sendNav()
	case "nav.link":
		s.mu.Lock()
		s.nav.CloseMenu()
		s.mu.Unlock()
		s.sendNav()
	case "viewport.section":
		s.mu.Lock()
		changed := s.nav.Activate(normalization.AsString(payload["section"]))
		s.mu.Unlock()
		if changed {
			s.sendNav()
		}
	case "viewport.scroll":
		s.mu.Lock()
		changed := s.header.Update(normalization.AsFloat64(payload["offset"]))
		scrolled := s.header.Scrolled()
		s.mu.Unlock()
		if changed {
			s.send(domain.NewMessage(domain.TopicUIHeader, domain.UIEntity, domain.ActionState, map[string]any{
				"scrolled": scrolled,
			}))
		}
	case "viewport.reveal":
		id := normalization.AsString(payload["id"])
		s.mu.Lock()
		shown := s.reveals.Observe(id, normalization.AsFloat64(payload["ratio"]))
		s.mu.Unlock()
		if shown {
			s.send(domain.NewMessage(domain.TopicUIReveal, domain.UIEntity, "shown", map[string]any{"id": id}))
		}
	case "carousel.sync":
		s.syncCarousel(payload)
	case "carousel.next":
		s.stepCarousel(payload, true)
	case "carousel.prev":
		s.stepCarousel(payload, false)
	case "contact.submit":
		s.handleContactSubmit(ctx, payload)
	default:
		slog.Debug("session event ignored", slog.String("action", action))
	}
}

// ApplyCatalog replaces the cached catalog after a backend change event,
// re-renders the dependent fragments under the session's own view state,
// and marks the bestseller track stale so its controls recompute once
// layout has settled.
func (s *Session) ApplyCatalog(products, bestsellers []catalog.Product) {
	s.mu.Lock()
	s.products = products
	s.bestsellers = bestsellers
	s.mu.Unlock()

	s.sendBestsellers()
	s.sendMenu()
	s.armReveals()

	s.mu.Lock()
	track := s.ensureCarouselLocked(BestsellersTrack)
	scheduled := track.MarkStale()
	s.mu.Unlock()
	if scheduled {
		s.afterFunc(ui.CarouselSettleDelay, func() {
			s.mu.Lock()
			refreshed := track.Refresh()
			s.mu.Unlock()
			if refreshed {
				s.sendCarouselState(BestsellersTrack)
			}
		})
	}
}

// ApplyLocation re-renders the location summary after a change event.
func (s *Session) ApplyLocation(location *presence.LocationInfo) {
	s.sendLocation(location)
}

// ApplySchedule re-renders the weekly schedule after a change event.
func (s *Session) ApplySchedule(schedule []presence.ScheduleEntry) {
	s.sendSchedule(schedule)
}

func (s *Session) applyFilter(token string) {
	s.mu.Lock()
	s.view = s.view.WithFilter(token)
	s.mu.Unlock()
	s.sendMenu()
	s.armReveals()
}

func (s *Session) setSearch(query string) {
	s.mu.Lock()
	s.view = s.view.WithSearch(query)
	s.mu.Unlock()
	s.sendMenu()
	s.armReveals()
}

func (s *Session) handleContactSubmit(ctx context.Context, payload map[string]any) {
	s.mu.Lock()
	begun := s.form.Begin()
	s.mu.Unlock()
	if !begun {
		return
	}

	// Disable the submit control and hide any prior status panel.
	s.sendContactStatus(contact.FormSubmitting, false, false)

	var submitErr error
	defer func() {
		if r := recover(); r != nil {
			slog.Error("contact submit panic", slog.Any("error", r))
			submitErr = fmt.Errorf("contact submit panic: %v", r)
		}
		s.mu.Lock()
		phase := s.form.Complete(submitErr)
		s.mu.Unlock()
		// The submit control is re-enabled with its original label on
		// every outcome.
		s.sendContactStatus(phase, true, phase == contact.FormSuccess)
		if phase == contact.FormSuccess {
			s.afterFunc(contact.StatusAutoHide, func() {
				s.mu.Lock()
				dismissed := s.form.Dismiss()
				s.mu.Unlock()
				if dismissed {
					s.sendContactStatus(contact.FormIdle, true, false)
				}
			})
		}
	}()

	submission := contact.NormalizeSubmission(payload)
	submitErr = s.deps.Relay.Execute(ctx, submission)
}

func (s *Session) sendContactStatus(phase contact.FormPhase, submitEnabled, resetFields bool) {
	html, err := s.deps.Renderer.ContactStatus(phase)
	if err != nil {
		slog.Error("contact status render failed", slog.Any("error", err))
		return
	}
	s.send(domain.NewMessage(domain.TopicContactStatus, "contact", domain.ActionState, map[string]any{
		"html":          html,
		"phase":         string(phase),
		"submitEnabled": submitEnabled,
		"resetFields":   resetFields,
	}))
}

func (s *Session) sendMenu() {
	s.mu.Lock()
	view := s.view
	products := s.products
	s.mu.Unlock()

	fragment, err := s.deps.Renderer.Menu(view, products)
	if err != nil {
		slog.Error("menu render failed", slog.Any("error", err))
		return
	}

	s.mu.Lock()
	for _, id := range fragment.RevealIDs {
		s.reveals.Arm(id)
	}
	s.mu.Unlock()

	msg := domain.NewMessage(domain.TopicMenuFragment, "menu", domain.ActionFragment, map[string]any{
		"html":  fragment.HTML,
		"empty": fragment.Empty,
	})
	msg.Metadata = map[string]string{"filter": view.Filter, "search": view.Search}
	s.send(msg)
}

func (s *Session) sendBestsellers() {
	s.mu.Lock()
	bestsellers := s.bestsellers
	s.mu.Unlock()

	fragment, err := s.deps.Renderer.Bestsellers(bestsellers)
	if err != nil {
		slog.Error("bestsellers render failed", slog.Any("error", err))
		return
	}

	s.mu.Lock()
	for _, id := range fragment.RevealIDs {
		s.reveals.Arm(id)
	}
	s.mu.Unlock()

	s.send(domain.NewMessage(domain.TopicBestsellersFragment, "bestsellers", domain.ActionFragment, map[string]any{
		"html": fragment.HTML,
	}))
}

func (s *Session) sendLocation(location *presence.LocationInfo) {
	html, err := s.deps.Renderer.Location(location)
	if err != nil {
		slog.Error("location render failed", slog.Any("error", err))
		return
	}
	s.send(domain.NewMessage(domain.TopicLocationFragment, "location", domain.ActionFragment, map[string]any{
		"html": html,
	}))
}

func (s *Session) sendSchedule(schedule []presence.ScheduleEntry) {
	html, err := s.deps.Renderer.Schedule(schedule)
	if err != nil {
		slog.Error("schedule render failed", slog.Any("error", err))
		return
	}
	s.send(domain.NewMessage(domain.TopicScheduleFragment, "schedule", domain.ActionFragment, map[string]any{
		"html": html,
	}))
}

func (s *Session) sendShell(settings presence.SiteSettings) {
	html, err := s.deps.Renderer.Shell(settings)
	if err != nil {
		slog.Error("shell render failed", slog.Any("error", err))
		return
	}
	s.send(domain.NewMessage(domain.TopicShellFragment, "shell", domain.ActionFragment, map[string]any{
		"html": html,
	}))
}

func (s *Session) sendNav() {
	s.mu.Lock()
	open := s.nav.MenuOpen()
	active := s.nav.Active()
	s.mu.Unlock()
	s.send(domain.NewMessage(domain.TopicUINav, domain.UIEntity, domain.ActionState, map[string]any{
		"menuOpen": open,
		"active":   active,
	}))
}

func (s *Session) initCarousels() {
	s.mu.Lock()
	s.ensureCarouselLocked(BestsellersTrack)
	s.mu.Unlock()
	s.sendCarouselState(BestsellersTrack)
}

func (s *Session) armReveals() {
	s.mu.Lock()
	pending := s.reveals.Pending()
	s.mu.Unlock()
	if len(pending) == 0 {
		return
	}
	s.send(domain.NewMessage(domain.TopicUIReveal, domain.UIEntity, "arm", map[string]any{
		"ids":       pending,
		"threshold": ui.RevealThreshold,
		"margin":    ui.RevealBottomMargin,
	}))
}

func (s *Session) syncCarousel(payload map[string]any) {
	id := normalization.AsString(payload["id"])
	if id == "" {
		return
	}
	s.mu.Lock()
	track := s.ensureCarouselLocked(id)
	track.Sync(
		normalization.AsFloat64(payload["offset"]),
		normalization.AsFloat64(payload["extent"]),
		normalization.AsFloat64(payload["viewport"]),
	)
	s.mu.Unlock()
	s.sendCarouselState(id)
}

func (s *Session) stepCarousel(payload map[string]any, forward bool) {
	id := normalization.AsString(payload["id"])
	if id == "" {
		return
	}
	s.mu.Lock()
	track := s.ensureCarouselLocked(id)
	var target float64
	if forward {
		target = track.Next()
	} else {
		target = track.Prev()
	}
	s.mu.Unlock()
	s.send(domain.NewMessage(domain.TopicUICarousel, domain.UIEntity, "scroll", map[string]any{
		"id":     id,
		"target": target,
		"smooth": true,
	}))
}

func (s *Session) sendCarouselState(id string) {
	s.mu.Lock()
	track := s.ensureCarouselLocked(id)
	canPrev := track.CanPrev()
	canNext := track.CanNext()
	s.mu.Unlock()
	s.send(domain.NewMessage(domain.TopicUICarousel, domain.UIEntity, domain.ActionState, map[string]any{
		"id":      id,
		"canPrev": canPrev,
		"canNext": canNext,
	}))
}

func (s *Session) ensureCarouselLocked(id string) *ui.CarouselState {
	track, ok := s.carousels[id]
	if !ok {
		track = ui.NewCarouselState()
		s.carousels[id] = track
	}
	return track
}

func (s *Session) send(msg *domain.Message) {
	s.sender.SendDomainMessage(msg)
}
