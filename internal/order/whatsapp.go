package order

import (
	"net/url"
	"strings"
)

// Dispatch defaults.
const (
	DefaultWhatsAppBaseURL = "https://api.whatsapp.com/send"
	DefaultWhatsAppPhone   = "5511982470496"
)

// WhatsAppLink builds the deep link that opens a chat with phone prefilled with text.
// Spaces are sent as %20.
func WhatsAppLink(baseURL, phone, text string) string {
	if baseURL == "" {
		baseURL = DefaultWhatsAppBaseURL
	}
	sep := "?"
	if strings.Contains(baseURL, "?") {
		sep = "&"
	}
	return baseURL + sep + "phone=" + escape(phone) + "&text=" + escape(text)
}

func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
