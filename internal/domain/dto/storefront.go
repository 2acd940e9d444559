package dto

import "github.com/wsawebmaster/delivery/internal/view"

// SnapshotResponse wraps a refreshed session view.
// @Description Session view after an interaction
type SnapshotResponse struct {
	Snapshot view.Snapshot `json:"snapshot"`
} // @name SnapshotResponse

// OrderResponse is returned when an order passes validation.
// @Description Dispatch message and WhatsApp deep link
type OrderResponse struct {
	Message  string        `json:"message" example:"Olá, Fabin Lanches!"`
	Link     string        `json:"link" example:"https://api.whatsapp.com/send?phone=5511982470496&text=Ol%C3%A1"`
	Snapshot view.Snapshot `json:"snapshot"`
} // @name OrderResponse

// MenuItemResponse is a menu entry.
type MenuItemResponse struct {
	Name  string `json:"name" example:"X Tudo"`
	Price string `json:"price" example:"28.00"`
	Label string `json:"label" example:"R$ 28,00"`
} // @name MenuItemResponse

// CategoryResponse is a menu category with its items.
type CategoryResponse struct {
	ID    string             `json:"id" example:"lanches"`
	Title string             `json:"title" example:"Lanches"`
	Items []MenuItemResponse `json:"items"`
} // @name CategoryResponse

// MenuResponse lists the catalog and the neighborhoods served.
// @Description Menu and delivery zones
type MenuResponse struct {
	ShopName   string             `json:"shop_name" example:"Fabin Lanches"`
	Categories []CategoryResponse `json:"categories"`
	Zones      []ZoneResponse     `json:"zones"`
} // @name MenuResponse

// ZoneResponse is a served neighborhood.
type ZoneResponse struct {
	Neighborhood string `json:"neighborhood" example:"Jardim Paiva"`
	Fee          string `json:"fee" example:"10.00"`
} // @name ZoneResponse
