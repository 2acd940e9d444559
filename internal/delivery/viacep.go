package delivery

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/wsawebmaster/delivery/internal/circuitbreaker"
)

// DefaultViaCEPBaseURL is the public ViaCEP endpoint.
const DefaultViaCEPBaseURL = "https://viacep.com.br/ws"

// maxResponseBytes caps how much of a directory response is read.
const maxResponseBytes = 64 << 10

var (
	// ErrPostalCodeNotFound is returned when the directory has no address for the code.
	ErrPostalCodeNotFound = errors.New("postal code not found")
	// ErrLookupFailed wraps every transport level failure: network errors, non-2xx
	// responses, undecodable bodies and an open circuit.
	ErrLookupFailed = errors.New("postal code lookup failed")
)

// Address is the subset of a directory answer the resolver needs.
type Address struct {
	Street       string
	Neighborhood string
	City         string
	State        string
}

// Prefix renders the address as "{street}, {neighborhood}, {city} - {state}".
func (a Address) Prefix() string {
	return fmt.Sprintf("%s, %s, %s - %s", a.Street, a.Neighborhood, a.City, a.State)
}

// Directory looks postal codes up.
type Directory interface {
	Lookup(ctx context.Context, code string) (*Address, error)
}

// ViaCEPClient queries GET {base}/{code}/json/.
type ViaCEPClient struct {
	baseURL string
	client  *http.Client
	breaker *circuitbreaker.CircuitBreaker
}

// ViaCEPOption configures a ViaCEPClient.
type ViaCEPOption func(*ViaCEPClient)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) ViaCEPOption {
	return func(v *ViaCEPClient) { v.client = c }
}

// WithCircuitBreaker routes every lookup through cb.
func WithCircuitBreaker(cb *circuitbreaker.CircuitBreaker) ViaCEPOption {
	return func(v *ViaCEPClient) { v.breaker = cb }
}

// NewViaCEPClient creates a client for baseURL. An empty baseURL uses the public endpoint.
func NewViaCEPClient(baseURL string, opts ...ViaCEPOption) *ViaCEPClient {
	if baseURL == "" {
		baseURL = DefaultViaCEPBaseURL
	}
	c := &ViaCEPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Lookup fetches the address for an already normalized code.
func (c *ViaCEPClient) Lookup(ctx context.Context, code string) (*Address, error) {
	if c.breaker == nil {
		return c.fetch(ctx, code)
	}

	var addr *Address
	err := c.breaker.Execute(ctx, func() error {
		var fetchErr error
		addr, fetchErr = c.fetch(ctx, code)
		return fetchErr
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil, fmt.Errorf("%w: %w", ErrLookupFailed, err)
	}
	return addr, err
}

func (c *ViaCEPClient) fetch(ctx context.Context, code string) (*Address, error) {
	url := fmt.Sprintf("%s/%s/json/", c.baseURL, code)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %w", ErrLookupFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLookupFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %w", ErrLookupFailed, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: directory returned status %d", ErrLookupFailed, resp.StatusCode)
	}

	var payload viaCEPResponse
	if err := json.Unmarshal(bytes.TrimSpace(body), &payload); err != nil {
		return nil, fmt.Errorf("%w: decode response: %w", ErrLookupFailed, err)
	}
	if payload.Erro {
		return nil, ErrPostalCodeNotFound
	}

	return &Address{
		Street:       string(payload.Logradouro),
		Neighborhood: strings.TrimSpace(string(payload.Bairro)),
		City:         string(payload.Localidade),
		State:        string(payload.UF),
	}, nil
}

// viaCEPResponse mirrors the directory JSON. Every field is optional.
type viaCEPResponse struct {
	Erro       flexBool    `json:"erro"`
	Logradouro looseString `json:"logradouro"`
	Bairro     looseString `json:"bairro"`
	Localidade looseString `json:"localidade"`
	UF         looseString `json:"uf"`
}

// flexBool accepts true, "true" and anything else as false.
type flexBool bool

func (b *flexBool) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	*b = flexBool(strings.EqualFold(s, "true"))
	return nil
}

// looseString keeps string values and turns any other JSON value into "".
type looseString string

func (s *looseString) UnmarshalJSON(data []byte) error {
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		*s = ""
		return nil
	}
	*s = looseString(v)
	return nil
}

// CountsAsOutage reports whether err says something about the directory's health.
// A missing postal code is a valid answer and a caller that gave up is not the
// directory's fault; neither may trip a circuit breaker. Deadlines still count.
func CountsAsOutage(err error) bool {
	return err != nil && !errors.Is(err, ErrPostalCodeNotFound) && !errors.Is(err, context.Canceled)
}
