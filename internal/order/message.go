package order

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/wsawebmaster/delivery/internal/cart"
	"github.com/wsawebmaster/delivery/internal/delivery"
	"github.com/wsawebmaster/delivery/internal/view"
)

// DefaultShopName greets the establishment in the message.
const DefaultShopName = "Fabin Lanches"

// Draft is everything a message is built from.
type Draft struct {
	ShopName      string
	Entries       []cart.Entry
	Fee           decimal.Decimal
	AddressPrefix string
	Customer      Customer
}

// NewDraft collects the cart, zone and customer into a Draft.
func NewDraft(shopName string, c *cart.Cart, zone delivery.Zone, customer Customer) Draft {
	return Draft{
		ShopName:      shopName,
		Entries:       c.Entries(),
		Fee:           zone.Fee,
		AddressPrefix: zone.AddressPrefix,
		Customer:      customer,
	}
}

// ItemsTotal sums the entry subtotals.
func (d Draft) ItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, e := range d.Entries {
		total = total.Add(e.Subtotal())
	}
	return total
}

// GrandTotal is the items total plus the delivery fee.
func (d Draft) GrandTotal() decimal.Decimal {
	return d.ItemsTotal().Add(d.Fee)
}

// FullAddress inserts the house number after the street.
func FullAddress(prefix, houseNumber string) string {
	return strings.Replace(prefix, ",", fmt.Sprintf(", %s,", houseNumber), 1)
}

// BuildMessage renders the order text sent to the establishment.
func BuildMessage(d Draft) string {
	shop := d.ShopName
	if shop == "" {
		shop = DefaultShopName
	}

	c := d.Customer
	house := Sanitize(c.HouseNumber)
	reference := Sanitize(c.ReferencePoint)
	phone := Sanitize(c.Phone)
	payment := Sanitize(c.PaymentMethod)

	var b strings.Builder
	fmt.Fprintf(&b, "Olá, %s!\n\n", shop)
	b.WriteString("✅ Segue meu pedido de hoje:\n\n")
	for _, e := range d.Entries {
		fmt.Fprintf(&b, "%d - %s - %s\n", e.Quantity, e.Name, view.FormatBRL(e.Subtotal()))
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Taxa de Entrega: %s\n", view.FormatBRL(d.Fee))
	fmt.Fprintf(&b, "🤑 Total do Pedido: %s\n", view.FormatBRL(d.GrandTotal()))
	fmt.Fprintf(&b, "💳 Pagamento por: %s\n\n", payment)
	b.WriteString("🛵 Endereço de entrega:\n")
	fmt.Fprintf(&b, "%s\n", FullAddress(d.AddressPrefix, house))
	fmt.Fprintf(&b, "📍 Ponto de Referência: %s\n", reference)
	fmt.Fprintf(&b, "📞 Telefone: %s\n\n", phone)
	b.WriteString("*Aguardo ansiosamente! 😋*")
	return b.String()
}
