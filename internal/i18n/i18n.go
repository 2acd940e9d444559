// Package i18n translates the API's error messages. Portuguese is the default since the
// storefront serves Brazilian customers; English is offered through Accept-Language.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is used when the client expresses no supported preference.
	DefaultLocale = "pt"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator maps message keys to text per locale.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a translator loaded with the built-in catalogue.
func NewTranslator() *Translator {
	return &Translator{messages: catalogue}
}

// GetTranslator returns the shared translator.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the message for key in locale, then in DefaultLocale, then the key itself.
func (t *Translator) Translate(key, locale string) string {
	if msgs, ok := t.messages[locale]; ok {
		if msg, ok := msgs[key]; ok {
			return msg
		}
	}
	if msg, ok := t.messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// Supports reports whether locale has a catalogue.
func (t *Translator) Supports(locale string) bool {
	_, ok := t.messages[locale]
	return ok
}

// GetLocale picks the first supported language of the Accept-Language header, ignoring
// region suffixes and quality values.
func GetLocale(c *gin.Context) string {
	header := c.GetHeader(AcceptLanguageHeader)
	if header == "" {
		return DefaultLocale
	}

	tr := GetTranslator()
	for _, part := range strings.Split(header, ",") {
		lang := strings.TrimSpace(strings.Split(part, ";")[0])
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		lang = strings.ToLower(lang)
		if tr.Supports(lang) {
			return lang
		}
	}
	return DefaultLocale
}

// Translate is a shortcut for GetTranslator().Translate with the request's locale.
func Translate(c *gin.Context, key string) string {
	return GetTranslator().Translate(key, GetLocale(c))
}

var catalogue = map[string]map[string]string{
	"pt": {
		ErrKeyInvalidRequest:     "Requisição inválida",
		ErrKeyInvalidRequestBody: "Corpo da requisição inválido",
		ErrKeyInternalError:      "Ocorreu um erro inesperado",
		ErrKeyNotFound:           "Não encontrado",
		ErrKeyRateLimitExceeded:  "Muitas requisições, tente novamente mais tarde",
		ErrKeyConflict:           "Requisição duplicada em andamento",
		ErrKeyTimeout:            "Tempo de requisição esgotado",
		ErrKeyUnknownItem:        "Item não encontrado no cardápio",
		ErrKeyInvalidQuantity:    "A variação de quantidade deve estar entre -99 e 99 e não pode ser zero",
		ErrKeyOrderRejected:      "Pedido incompleto",
	},
	"en": {
		ErrKeyInvalidRequest:     "Invalid request",
		ErrKeyInvalidRequestBody: "Invalid request body",
		ErrKeyInternalError:      "An unexpected error occurred",
		ErrKeyNotFound:           "Not found",
		ErrKeyRateLimitExceeded:  "Too many requests, please try again later",
		ErrKeyConflict:           "A request with this key is already in progress",
		ErrKeyTimeout:            "Request timeout",
		ErrKeyUnknownItem:        "Item is not on the menu",
		ErrKeyInvalidQuantity:    "Quantity delta must be between -99 and 99 and not zero",
		ErrKeyOrderRejected:      "Order is incomplete",
	},
}
