package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/wsawebmaster/delivery/internal/cart"
	"github.com/wsawebmaster/delivery/internal/catalog"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

// Fragment template names, one per page region.
const (
	FragmentCart       = "cart"
	FragmentTotals     = "totals"
	FragmentCategories = "categories"
	FragmentMenu       = "menu"
	FragmentAddress    = "address"
)

const pageTemplate = "page.gohtml"

// Renderer turns session state into Snapshots and HTML.
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.gohtml")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{templates: tmpl}, nil
}

// MustNewRenderer is NewRenderer that panics on error.
func MustNewRenderer() *Renderer {
	r, err := NewRenderer()
	if err != nil {
		panic(err)
	}
	return r
}

// StaticFS returns the embedded script and stylesheet rooted at the static directory.
func StaticFS() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// RefreshAll recomputes the cart lines, totals, visibility, category tabs, menu and
// address from st.
func (r *Renderer) RefreshAll(st State) Snapshot {
	c := st.Cart
	if c == nil {
		c = cart.New()
	}

	fee := decimal.Zero
	if st.Resolution.Resolved {
		fee = st.Resolution.Zone.Fee
	}
	itemsTotal := c.Total()

	snap := Snapshot{
		Lines: cartLines(c),
		Totals: Totals{
			Items:       "Total dos Itens: " + FormatBRL(itemsTotal),
			DeliveryFee: "Valor da Entrega: " + FormatBRL(fee),
			Grand:       "Total Geral: " + FormatBRL(itemsTotal.Add(fee)),
			BottomBar:   "Subtotal: " + FormatBRL(itemsTotal),
			ItemCount:   ItemCountLabel(c.ItemCount()),
		},
		ShowCart:        !c.IsEmpty(),
		ClearPostalCode: st.ClearPostalCode,
		Notice:          st.Notice,
	}

	if st.Resolution.Resolved {
		zone := st.Resolution.Zone
		snap.Address = Address{
			Visible:      true,
			Text:         zone.AddressPrefix,
			Neighborhood: zone.Neighborhood,
			PostalCode:   zone.PostalCode,
		}
	}

	if st.Catalog != nil {
		snap.Tabs = r.RenderCategoryTabs(st.Catalog, st.ActiveCategory)
		snap.Menu = r.RenderMenuForActiveCategory(st.Catalog, c, st.ActiveCategory)
	}

	snap.Fragments = Fragments{
		Cart:       r.fragment(FragmentCart, snap),
		Totals:     r.fragment(FragmentTotals, snap),
		Categories: r.fragment(FragmentCategories, snap),
		Menu:       r.fragment(FragmentMenu, snap),
		Address:    r.fragment(FragmentAddress, snap),
	}
	return snap
}

// RenderCategoryTabs lists every category, marking the active one. An unknown active
// id marks the first category.
func (r *Renderer) RenderCategoryTabs(cat *catalog.Catalog, active string) []Tab {
	current := cat.CategoryOrFirst(active)
	categories := cat.Categories()
	tabs := make([]Tab, 0, len(categories))
	for _, category := range categories {
		tabs = append(tabs, Tab{
			ID:     category.ID,
			Title:  category.Title,
			Active: category.ID == current.ID,
		})
	}
	return tabs
}

// RenderMenuForActiveCategory builds the cards of the active category with quantities
// read from the cart.
func (r *Renderer) RenderMenuForActiveCategory(cat *catalog.Catalog, c *cart.Cart, active string) Menu {
	category := cat.CategoryOrFirst(active)
	menu := Menu{
		CategoryID: category.ID,
		Title:      category.Title,
		Cards:      make([]Card, 0, len(category.Items)),
	}
	for _, item := range category.Items {
		q := 0
		if c != nil {
			q = c.Quantity(item.Name)
		}
		menu.Cards = append(menu.Cards, Card{
			Name:      item.Name,
			Price:     FormatBRL(item.Price),
			Quantity:  q,
			Added:     q >= 1,
			ShowMinus: q > 0,
			Zero:      q == 0,
		})
	}
	return menu
}

// Page is the data of the full widget page.
type Page struct {
	ShopName       string
	Neighborhoods  []ZoneFee
	PaymentMethods []string
	Snapshot       Snapshot
}

// ZoneFee is a served neighborhood and its fee, for the neighborhoods dialog.
type ZoneFee struct {
	Name string
	Fee  string
}

// DefaultPaymentMethods are offered in the checkout form.
var DefaultPaymentMethods = []string{"Dinheiro", "Cartão de Crédito", "Cartão de Débito", "Pix"}

// RenderPage writes the full widget page.
func (r *Renderer) RenderPage(w io.Writer, p Page) error {
	if len(p.PaymentMethods) == 0 {
		p.PaymentMethods = DefaultPaymentMethods
	}
	return r.templates.ExecuteTemplate(w, pageTemplate, p)
}

func (r *Renderer) fragment(name string, snap Snapshot) string {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, snap); err != nil {
		log.Error().Err(err).Str("fragment", name).Msg("Failed to render fragment")
		return ""
	}
	return buf.String()
}

func cartLines(c *cart.Cart) []CartLine {
	entries := c.Entries()
	lines := make([]CartLine, 0, len(entries))
	for _, e := range entries {
		subtotal := FormatBRL(e.Subtotal())
		lines = append(lines, CartLine{
			Name:     e.Name,
			Quantity: e.Quantity,
			Subtotal: subtotal,
			Label:    fmt.Sprintf("%d x %s - %s", e.Quantity, e.Name, subtotal),
		})
	}
	return lines
}
