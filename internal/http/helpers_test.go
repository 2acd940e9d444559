package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/wsawebmaster/delivery/internal/catalog"
	"github.com/wsawebmaster/delivery/internal/delivery"
	"github.com/wsawebmaster/delivery/internal/domain/dto"
	"github.com/wsawebmaster/delivery/internal/domain/model"
	"github.com/wsawebmaster/delivery/internal/middleware"
	"github.com/wsawebmaster/delivery/internal/mocks"
	"github.com/wsawebmaster/delivery/internal/storefront"
	"github.com/wsawebmaster/delivery/internal/view"
	"github.com/wsawebmaster/delivery/internal/ws"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var vilaTiberio = &delivery.Address{
	Street:       "Rua Tibiriçá",
	Neighborhood: "Vila Tibério",
	City:         "Ribeirão Preto",
	State:        "SP",
}

var pracaDaSe = &delivery.Address{
	Street:       "Praça da Sé",
	Neighborhood: "Sé",
	City:         "São Paulo",
	State:        "SP",
}

// recordingLogs keeps every entry written through it.
type recordingLogs struct {
	mu      sync.Mutex
	entries []*model.LogEntry
}

func (r *recordingLogs) CreateLog(_ context.Context, entry *model.LogEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
	return nil
}

func (r *recordingLogs) CreateLogs(ctx context.Context, entries []*model.LogEntry) error {
	for _, e := range entries {
		_ = r.CreateLog(ctx, e)
	}
	return nil
}

func (r *recordingLogs) QueryLogs(context.Context, model.LogQueryOptions) ([]model.LogEntry, error) {
	return []model.LogEntry{}, nil
}

func (r *recordingLogs) CountLogs(context.Context, model.LogQueryOptions) (int64, error) {
	return 0, nil
}

func (r *recordingLogs) withAction(action string) []*model.LogEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*model.LogEntry
	for _, e := range r.entries {
		if e.ActionType == action {
			out = append(out, e)
		}
	}
	return out
}

type testServer struct {
	router *gin.Engine
	dir    *mocks.MockDirectory
	logs   *recordingLogs
}

func newTestServer(t *testing.T, mutate ...func(*RouterConfig)) *testServer {
	t.Helper()
	return newTestServerWithHub(t, nil, mutate...)
}

// newTestServerWithHub wires hub as both the snapshot publisher and the /ws backend.
func newTestServerWithHub(t *testing.T, hub *ws.Hub, mutate ...func(*RouterConfig)) *testServer {
	t.Helper()

	renderer, err := view.NewRenderer()
	require.NoError(t, err)

	dir := new(mocks.MockDirectory)
	logs := &recordingLogs{}
	ctrl := storefront.NewController(
		catalog.Default(),
		delivery.NewResolver(dir, delivery.DefaultZones()),
		renderer,
		storefront.Config{},
		publisherOptions(hub)...,
	)

	cfg := DefaultRouterConfig()
	cfg.LoggingService = logs
	for _, m := range mutate {
		m(&cfg)
	}

	opts := []HandlerOption{WithLoggingService(cfg.LoggingService)}
	if hub != nil {
		opts = append(opts, WithHub(hub))
	}
	handler := NewHandler(ctrl, renderer, opts...)
	return &testServer{
		router: NewRouter(handler, NewHealthHandler(), cfg),
		dir:    dir,
		logs:   logs,
	}
}

func publisherOptions(hub *ws.Hub) []storefront.Option {
	if hub == nil {
		return nil
	}
	return []storefront.Option{storefront.WithPublisher(hub)}
}

// do sends the request with cookie, when set, and returns the recorder.
func (ts *testServer) do(method, path, body string, cookie *http.Cookie, headers ...string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.SessionCookieName {
			return c
		}
	}
	t.Fatalf("response did not set the %s cookie", middleware.SessionCookieName)
	return nil
}

type envelope struct {
	Data    json.RawMessage   `json:"data"`
	Error   string            `json:"error"`
	Message string            `json:"message"`
	Details map[string]string `json:"details"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env
}

func decodeSnapshot(t *testing.T, w *httptest.ResponseRecorder) view.Snapshot {
	t.Helper()
	var resp dto.SnapshotResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &resp))
	return resp.Snapshot
}
