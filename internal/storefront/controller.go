package storefront

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/wsawebmaster/delivery/internal/catalog"
	"github.com/wsawebmaster/delivery/internal/delivery"
	"github.com/wsawebmaster/delivery/internal/metrics"
	"github.com/wsawebmaster/delivery/internal/order"
	"github.com/wsawebmaster/delivery/internal/view"
)

// DefaultLookupTimeout bounds a single postal code lookup.
const DefaultLookupTimeout = 10 * time.Second

// ErrUnknownItem is returned when a quantity change names an item that is not on the menu.
var ErrUnknownItem = errors.New("unknown menu item")

// Publisher receives every snapshot produced for a session.
type Publisher interface {
	Publish(sessionID string, snap view.Snapshot)
}

// Config holds the order dispatch settings.
type Config struct {
	ShopName        string
	WhatsAppBaseURL string
	WhatsAppPhone   string
	LookupTimeout   time.Duration
}

// Submission is an order that passed validation.
type Submission struct {
	Message    string
	Link       string
	ItemsTotal decimal.Decimal
	GrandTotal decimal.Decimal
	ItemCount  int
	Snapshot   view.Snapshot
}

// Controller runs the storefront hooks against a session.
type Controller struct {
	catalog   *catalog.Catalog
	resolver  *delivery.Resolver
	renderer  *view.Renderer
	cfg       Config
	publisher Publisher
}

// Option configures a Controller.
type Option func(*Controller)

// WithPublisher sends every snapshot to p.
func WithPublisher(p Publisher) Option {
	return func(c *Controller) { c.publisher = p }
}

// NewController creates a controller. Empty settings take their defaults.
func NewController(cat *catalog.Catalog, resolver *delivery.Resolver, renderer *view.Renderer, cfg Config, opts ...Option) *Controller {
	if cfg.ShopName == "" {
		cfg.ShopName = order.DefaultShopName
	}
	if cfg.WhatsAppBaseURL == "" {
		cfg.WhatsAppBaseURL = order.DefaultWhatsAppBaseURL
	}
	if cfg.WhatsAppPhone == "" {
		cfg.WhatsAppPhone = order.DefaultWhatsAppPhone
	}
	if cfg.LookupTimeout <= 0 {
		cfg.LookupTimeout = DefaultLookupTimeout
	}
	c := &Controller{
		catalog:  cat,
		resolver: resolver,
		renderer: renderer,
		cfg:      cfg,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Catalog returns the menu.
func (c *Controller) Catalog() *catalog.Catalog {
	return c.catalog
}

// Zones returns the served neighborhoods.
func (c *Controller) Zones() delivery.Zones {
	return c.resolver.Zones()
}

// ShopName returns the establishment name.
func (c *Controller) ShopName() string {
	return c.cfg.ShopName
}

// State returns the current snapshot of s.
func (c *Controller) State(s *Session) view.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return c.render(s, refresh{})
}

// Resolution returns the delivery state of s.
func (c *Controller) Resolution(s *Session) delivery.Resolution {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tracker.Resolution()
}

// OnQuantityChange adds delta units of the named item. Unknown names leave the cart
// untouched and return ErrUnknownItem with the current snapshot.
func (c *Controller) OnQuantityChange(s *Session, name string, delta int) (view.Snapshot, error) {
	item, ok := c.catalog.Item(name)

	s.mu.Lock()
	if !ok {
		snap := c.render(s, refresh{})
		s.mu.Unlock()
		return snap, fmt.Errorf("%w: %q", ErrUnknownItem, name)
	}
	quantity := s.cart.ChangeQuantity(item.Name, item.Price, delta)
	snap := c.render(s, refresh{})
	s.mu.Unlock()

	metrics.RecordCartChange(delta)
	log.Debug().
		Str("session_id", s.ID).
		Str("item", item.Name).
		Int("delta", delta).
		Int("quantity", quantity).
		Msg("Cart quantity changed")

	c.publish(s, snap)
	return snap, nil
}

// OnResolveZone looks the postal code up and applies the result. Incomplete codes and
// the code already resolved are ignored. The session is not locked while the directory
// is queried; a result superseded by a later lookup is discarded.
func (c *Controller) OnResolveZone(ctx context.Context, s *Session, postalCode string) view.Snapshot {
	s.mu.Lock()
	ticket, ok := s.tracker.Begin(postalCode)
	if !ok {
		snap := c.render(s, refresh{})
		s.mu.Unlock()
		return snap
	}
	s.mu.Unlock()

	lookupCtx, cancel := context.WithTimeout(ctx, c.cfg.LookupTimeout)
	start := time.Now()
	zone, err := c.resolver.Resolve(lookupCtx, ticket.Code)
	elapsed := time.Since(start)
	cancel()

	s.mu.Lock()
	out := s.tracker.Complete(ticket, zone, err)
	r := refresh{clearPostalCode: out.Reset}
	if out.Notice != "" {
		r.notice = &view.Notice{Level: view.NoticeWarning, Code: out.Result, Message: out.Notice}
	}
	snap := c.render(s, r)
	s.mu.Unlock()

	metrics.RecordZoneLookup(elapsed, out.Result)
	event := log.Info()
	if out.Result == "failed" {
		event = log.Warn().Err(err)
	}
	event.
		Str("session_id", s.ID).
		Str("postal_code", ticket.Code).
		Str("result", out.Result).
		Dur("duration", elapsed).
		Msg("Delivery zone lookup completed")

	if out.Applied {
		c.publish(s, snap)
	}
	return snap
}

// OnCategorySelect switches the menu to category id. Unknown ids show the first category.
func (c *Controller) OnCategorySelect(s *Session, id string) view.Snapshot {
	category := c.catalog.CategoryOrFirst(id)

	s.mu.Lock()
	s.activeCategory = category.ID
	snap := c.render(s, refresh{})
	s.mu.Unlock()

	c.publish(s, snap)
	return snap
}

// OnSubmitOrder validates the session against customer and builds the dispatch message
// and link. A validation failure returns an *order.ValidationError and a snapshot
// carrying the matching notice. The cart is left as is.
func (c *Controller) OnSubmitOrder(s *Session, customer order.Customer) (Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.tracker.Resolution()
	if err := order.Validate(s.cart, res, customer); err != nil {
		var verr *order.ValidationError
		notice := &view.Notice{Level: view.NoticeWarning, Message: err.Error()}
		status := "invalid"
		if errors.As(err, &verr) {
			notice.Code = verr.Code
			status = verr.Code
		}
		metrics.RecordOrderSubmission(status)
		return Submission{Snapshot: c.render(s, refresh{notice: notice})}, err
	}

	draft := order.NewDraft(c.cfg.ShopName, s.cart, res.Zone, customer)
	msg := order.BuildMessage(draft)
	sub := Submission{
		Message:    msg,
		Link:       order.WhatsAppLink(c.cfg.WhatsAppBaseURL, c.cfg.WhatsAppPhone, msg),
		ItemsTotal: draft.ItemsTotal(),
		GrandTotal: draft.GrandTotal(),
		ItemCount:  s.cart.ItemCount(),
		Snapshot:   c.render(s, refresh{}),
	}

	metrics.RecordOrderSubmission("dispatched")
	log.Info().
		Str("session_id", s.ID).
		Str("neighborhood", res.Zone.Neighborhood).
		Str("total", sub.GrandTotal.StringFixed(2)).
		Int("items", sub.ItemCount).
		Msg("Order message built")

	return sub, nil
}

// refresh carries the one-shot parts of a snapshot.
type refresh struct {
	clearPostalCode bool
	notice          *view.Notice
}

// render must be called with s.mu held.
func (c *Controller) render(s *Session, r refresh) view.Snapshot {
	return c.renderer.RefreshAll(view.State{
		Catalog:         c.catalog,
		Cart:            s.cart,
		Resolution:      s.tracker.Resolution(),
		ActiveCategory:  s.activeCategory,
		ClearPostalCode: r.clearPostalCode,
		Notice:          r.notice,
	})
}

func (c *Controller) publish(s *Session, snap view.Snapshot) {
	if c.publisher == nil {
		return
	}
	c.publisher.Publish(s.ID, snap)
}
