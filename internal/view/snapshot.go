// Package view derives everything the widget shows from session state.
//
// A Snapshot is recomputed from scratch on every change, so the page never holds
// state of its own: the browser only swaps in the rendered fragments.
package view

import (
	"github.com/wsawebmaster/delivery/internal/cart"
	"github.com/wsawebmaster/delivery/internal/catalog"
	"github.com/wsawebmaster/delivery/internal/delivery"
)

// Notice levels.
const (
	NoticeInfo    = "info"
	NoticeWarning = "warning"
	NoticeError   = "error"
)

// Notice is a message for the visitor. It replaces a blocking alert.
type Notice struct {
	Level   string `json:"level"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// State is the input of a full refresh.
type State struct {
	Catalog        *catalog.Catalog
	Cart           *cart.Cart
	Resolution     delivery.Resolution
	ActiveCategory string
	// ClearPostalCode asks the page to empty the postal code input.
	ClearPostalCode bool
	Notice          *Notice
}

// CartLine is one rendered cart entry.
type CartLine struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Subtotal string `json:"subtotal"`
	Label    string `json:"label"`
}

// Totals holds the rendered totals labels.
type Totals struct {
	Items       string `json:"items"`
	DeliveryFee string `json:"delivery_fee"`
	Grand       string `json:"grand"`
	BottomBar   string `json:"bottom_bar"`
	ItemCount   string `json:"item_count"`
}

// Tab is a category selector.
type Tab struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Active bool   `json:"active"`
}

// Card is a menu item with its current quantity.
type Card struct {
	Name      string `json:"name"`
	Price     string `json:"price"`
	Quantity  int    `json:"quantity"`
	Added     bool   `json:"added"`
	ShowMinus bool   `json:"show_minus"`
	Zero      bool   `json:"zero"`
}

// Menu is the active category with its cards.
type Menu struct {
	CategoryID string `json:"category_id"`
	Title      string `json:"title"`
	Cards      []Card `json:"cards"`
}

// Address is the resolved delivery address display.
type Address struct {
	Visible      bool   `json:"visible"`
	Text         string `json:"text,omitempty"`
	Neighborhood string `json:"neighborhood,omitempty"`
	PostalCode   string `json:"postal_code,omitempty"`
}

// Fragments holds the rendered HTML of each page region.
type Fragments struct {
	Cart       string `json:"cart"`
	Totals     string `json:"totals"`
	Categories string `json:"categories"`
	Menu       string `json:"menu"`
	Address    string `json:"address"`
}

// Snapshot is the complete view of a session.
type Snapshot struct {
	Lines           []CartLine `json:"lines"`
	Totals          Totals     `json:"totals"`
	ShowCart        bool       `json:"show_cart"`
	Tabs            []Tab      `json:"tabs"`
	Menu            Menu       `json:"menu"`
	Address         Address    `json:"address"`
	ClearPostalCode bool       `json:"clear_postal_code"`
	Notice          *Notice    `json:"notice,omitempty"`
	Fragments       Fragments  `json:"fragments"`
}
