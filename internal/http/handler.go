package http

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wsawebmaster/delivery/internal/domain/dto"
	"github.com/wsawebmaster/delivery/internal/domain/model"
	"github.com/wsawebmaster/delivery/internal/i18n"
	"github.com/wsawebmaster/delivery/internal/middleware"
	"github.com/wsawebmaster/delivery/internal/order"
	"github.com/wsawebmaster/delivery/internal/service"
	"github.com/wsawebmaster/delivery/internal/storefront"
	"github.com/wsawebmaster/delivery/internal/view"
	"github.com/wsawebmaster/delivery/internal/ws"
)

// Handler serves the storefront page, its JSON API and the live update socket.
type Handler struct {
	controller     *storefront.Controller
	renderer       *view.Renderer
	hub            *ws.Hub
	loggingService service.LoggingService
	neighborhoods  []view.ZoneFee
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithHub enables GET /ws.
func WithHub(hub *ws.Hub) HandlerOption {
	return func(h *Handler) {
		h.hub = hub
	}
}

// WithLoggingService enables the order audit trail.
func WithLoggingService(ls service.LoggingService) HandlerOption {
	return func(h *Handler) {
		h.loggingService = ls
	}
}

// NewHandler creates a Handler over controller.
func NewHandler(controller *storefront.Controller, renderer *view.Renderer, opts ...HandlerOption) *Handler {
	h := &Handler{
		controller: controller,
		renderer:   renderer,
	}
	for _, opt := range opts {
		opt(h)
	}

	zones := controller.Zones()
	for _, name := range zones.Neighborhoods() {
		fee, _ := zones.Fee(name)
		h.neighborhoods = append(h.neighborhoods, view.ZoneFee{Name: name, Fee: view.FormatBRL(fee)})
	}

	return h
}

// RegisterPageRoutes registers the page, its assets and the socket.
func (h *Handler) RegisterPageRoutes(rg *gin.RouterGroup) {
	rg.GET("/", h.Page)
	rg.StaticFS("/static", http.FS(view.StaticFS()))
	if h.hub != nil {
		rg.GET("/ws", h.Subscribe)
	}
}

// RegisterRoutes registers the JSON API on rg. guards.Order runs in front of order submission.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, guards RouteGuards) {
	rg.GET("/menu", h.Menu)
	rg.GET("/state", h.State)
	rg.POST("/cart/quantity", h.ChangeQuantity)
	rg.POST("/zone", h.ResolveZone)
	rg.POST("/category", h.SelectCategory)
	rg.POST("/order", append(append([]gin.HandlerFunc{}, guards.Order...), h.SubmitOrder)...)
}

// Page renders the full widget for the visitor's session.
func (h *Handler) Page(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	err := h.renderer.RenderPage(&buf, view.Page{
		ShopName:      h.controller.ShopName(),
		Neighborhoods: h.neighborhoods,
		Snapshot:      h.controller.State(s),
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// Menu handles GET /api/menu.
//
// @Summary      List the menu
// @Description  Returns the categories, their items and the neighborhoods served with their delivery fees.
// @Tags         Storefront
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.MenuResponse}
// @Router       /api/menu [get]
func (h *Handler) Menu(c *gin.Context) {
	categories := h.controller.Catalog().Categories()
	resp := dto.MenuResponse{
		ShopName:   h.controller.ShopName(),
		Categories: make([]dto.CategoryResponse, 0, len(categories)),
		Zones:      make([]dto.ZoneResponse, 0, len(h.neighborhoods)),
	}

	for _, cat := range categories {
		items := make([]dto.MenuItemResponse, 0, len(cat.Items))
		for _, item := range cat.Items {
			items = append(items, dto.MenuItemResponse{
				Name:  item.Name,
				Price: item.Price.StringFixed(2),
				Label: view.FormatBRL(item.Price),
			})
		}
		resp.Categories = append(resp.Categories, dto.CategoryResponse{ID: cat.ID, Title: cat.Title, Items: items})
	}

	zones := h.controller.Zones()
	for _, name := range zones.Neighborhoods() {
		fee, _ := zones.Fee(name)
		resp.Zones = append(resp.Zones, dto.ZoneResponse{Neighborhood: name, Fee: fee.StringFixed(2)})
	}

	NewResponseBuilder(c).SuccessOK(resp)
}

// State handles GET /api/state.
//
// @Summary      Current view
// @Description  Returns the session's cart, delivery resolution, totals and rendered fragments.
// @Tags         Storefront
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.SnapshotResponse}
// @Router       /api/state [get]
func (h *Handler) State(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	NewResponseBuilder(c).SuccessOK(dto.SnapshotResponse{Snapshot: h.controller.State(s)})
}

// ChangeQuantity handles POST /api/cart/quantity.
//
// @Summary      Change an item quantity
// @Description  Adds delta units of a menu item to the cart. Quantities never drop below zero; an item reaching zero leaves the cart.
// @Tags         Cart
// @Accept       json
// @Produce      json
// @Param        request body dto.ChangeQuantityRequest true "Item and delta"
// @Success      200 {object} dto.SuccessResponse{data=dto.SnapshotResponse}
// @Failure      400 {object} dto.ErrorResponse "Invalid body or unknown item"
// @Failure      429 {object} dto.ErrorResponse "Too many requests"
// @Router       /api/cart/quantity [post]
func (h *Handler) ChangeQuantity(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	req, err := BuildRequestAndValidate[dto.ChangeQuantityRequest](c)
	if err != nil {
		h.badRequest(c, err)
		return
	}

	snap, err := h.controller.OnQuantityChange(s, req.Name, req.Delta)
	if errors.Is(err, storefront.ErrUnknownItem) {
		NewResponseBuilder(c).ErrorWithData(http.StatusBadRequest, dto.ErrCodeUnknownItem,
			i18n.Translate(c, i18n.ErrKeyUnknownItem), dto.SnapshotResponse{Snapshot: snap}, nil)
		return
	}
	if err != nil {
		NewResponseBuilder(c).Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	NewResponseBuilder(c).SuccessOK(dto.SnapshotResponse{Snapshot: snap})
}

// ResolveZone handles POST /api/zone.
//
// @Summary      Resolve the delivery zone
// @Description  Looks the postal code up and applies its neighborhood fee. Codes with fewer than 8 digits and the code already resolved are ignored. Lookup failures are reported as a notice in the snapshot, not as an HTTP error.
// @Tags         Delivery
// @Accept       json
// @Produce      json
// @Param        request body dto.ResolveZoneRequest true "Postal code"
// @Success      200 {object} dto.SuccessResponse{data=dto.SnapshotResponse}
// @Failure      400 {object} dto.ErrorResponse "Invalid body"
// @Failure      504 {object} dto.ErrorResponse "Lookup took too long"
// @Router       /api/zone [post]
func (h *Handler) ResolveZone(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	req, err := BuildRequest[dto.ResolveZoneRequest](c)
	if err != nil {
		h.badRequest(c, err)
		return
	}

	before := h.controller.Resolution(s)
	snap := h.controller.OnResolveZone(c.Request.Context(), s, req.PostalCode)
	if after := h.controller.Resolution(s); after.Resolved && after.Zone.PostalCode != before.Zone.PostalCode {
		middleware.AuditLog(h.loggingService, c, model.ActionZoneResolved, "Delivery zone resolved", map[string]interface{}{
			"postal_code":  after.Zone.PostalCode,
			"neighborhood": after.Zone.Neighborhood,
			"fee":          after.Zone.Fee.StringFixed(2),
		})
	}

	NewResponseBuilder(c).SuccessOK(dto.SnapshotResponse{Snapshot: snap})
}

// SelectCategory handles POST /api/category.
//
// @Summary      Select a menu category
// @Description  Shows the items of the category. Unknown ids fall back to the first category.
// @Tags         Storefront
// @Accept       json
// @Produce      json
// @Param        request body dto.SelectCategoryRequest true "Category id"
// @Success      200 {object} dto.SuccessResponse{data=dto.SnapshotResponse}
// @Failure      400 {object} dto.ErrorResponse "Invalid body"
// @Router       /api/category [post]
func (h *Handler) SelectCategory(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	req, err := BuildRequest[dto.SelectCategoryRequest](c)
	if err != nil {
		h.badRequest(c, err)
		return
	}

	NewResponseBuilder(c).SuccessOK(dto.SnapshotResponse{Snapshot: h.controller.OnCategorySelect(s, req.ID)})
}

// SubmitOrder handles POST /api/order.
//
// @Summary      Submit the order
// @Description  Validates the cart, the delivery zone and the checkout form, then returns the WhatsApp message and deep link. The cart is kept. Supports idempotency via the Idempotency-Key header.
// @Tags         Order
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.SubmitOrderRequest true "Checkout form"
// @Success      200 {object} dto.SuccessResponse{data=dto.OrderResponse}
// @Failure      400 {object} dto.ErrorResponse "Invalid body"
// @Failure      409 {object} dto.ErrorResponse "Same idempotency key still in progress"
// @Failure      422 {object} dto.ErrorResponse{data=dto.SnapshotResponse} "Order rejected; the snapshot carries the reason"
// @Failure      429 {object} dto.ErrorResponse "Too many requests"
// @Router       /api/order [post]
func (h *Handler) SubmitOrder(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	req, err := BuildRequest[dto.SubmitOrderRequest](c)
	if err != nil {
		h.badRequest(c, err)
		return
	}

	sub, err := h.controller.OnSubmitOrder(s, order.Customer{
		Name:           req.Name,
		Phone:          req.Phone,
		HouseNumber:    req.HouseNumber,
		ReferencePoint: req.ReferencePoint,
		PaymentMethod:  req.PaymentMethod,
	})
	if err != nil {
		code := ""
		var verr *order.ValidationError
		if errors.As(err, &verr) {
			code = verr.Code
		}
		middleware.AuditLogError(h.loggingService, c, model.ActionOrderRejected, "Order rejected", err, map[string]interface{}{
			"code": code,
		})
		NewResponseBuilder(c).ErrorWithData(http.StatusUnprocessableEntity, dto.ErrCodeValidation,
			err.Error(), dto.SnapshotResponse{Snapshot: sub.Snapshot}, nil)
		return
	}

	middleware.AuditLog(h.loggingService, c, model.ActionOrderSubmitted, "Order dispatched", map[string]interface{}{
		"items_total": sub.ItemsTotal.StringFixed(2),
		"grand_total": sub.GrandTotal.StringFixed(2),
		"item_count":  sub.ItemCount,
	})

	NewResponseBuilder(c).SuccessOK(dto.OrderResponse{
		Message:  sub.Message,
		Link:     sub.Link,
		Snapshot: sub.Snapshot,
	})
}

// Subscribe upgrades GET /ws and streams the session's snapshots.
func (h *Handler) Subscribe(c *gin.Context) {
	id := middleware.GetSessionID(c)
	if id == "" {
		NewResponseBuilder(c).Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, errNoSession)
		return
	}
	ws.ServeWS(h.hub, id, c.Writer, c.Request)
}

var errNoSession = errors.New("no session attached to request")

func (h *Handler) session(c *gin.Context) (*storefront.Session, bool) {
	s := middleware.GetSession(c)
	if s == nil {
		NewResponseBuilder(c).Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, errNoSession)
		return nil, false
	}
	return s, true
}

func (h *Handler) badRequest(c *gin.Context, err error) {
	var verr *dto.ValidationError
	if errors.As(err, &verr) {
		NewResponseBuilder(c).ValidationFailed(verr)
		return
	}
	NewResponseBuilder(c).Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
}
