package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wsawebmaster/delivery/internal/domain/dto"
	"github.com/wsawebmaster/delivery/internal/i18n"
)

const (
	// IdempotencyKeyHeader is the request header holding the client's idempotency key.
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyReplayedHeader marks a response served from the cache.
	IdempotencyReplayedHeader = "X-Idempotency-Replayed"
	// IdempotencyKeyTTL is how long a successful response is replayed.
	IdempotencyKeyTTL = 5 * time.Minute

	maxIdempotentBody = 64 << 10
)

type cachedResponse struct {
	StatusCode  int
	ContentType string
	Body        []byte
	Timestamp   time.Time
}

// IdempotencyConfig configures Idempotency.
type IdempotencyConfig struct {
	Cache   *IdempotencyCache
	Enabled bool
}

// DefaultIdempotencyConfig returns an enabled config with a fresh cache.
func DefaultIdempotencyConfig() IdempotencyConfig {
	return IdempotencyConfig{
		Cache:   NewIdempotencyCache(IdempotencyKeyTTL),
		Enabled: true,
	}
}

// Idempotency replays the stored 2xx response of a POST, PUT or PATCH repeated with the
// same Idempotency-Key, session, path and body. A repeat that arrives while the first is
// still running gets 409.
func Idempotency(cfg IdempotencyConfig) gin.HandlerFunc {
	if !cfg.Enabled || cfg.Cache == nil {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
		default:
			c.Next()
			return
		}

		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}

		cacheKey, ok := requestFingerprint(key, GetSessionID(c), c.Request)
		if !ok {
			c.Next()
			return
		}

		if resp, hit := cfg.Cache.Get(cacheKey); hit {
			c.Header(IdempotencyReplayedHeader, "true")
			c.Data(resp.StatusCode, resp.ContentType, resp.Body)
			c.Abort()
			return
		}

		if !cfg.Cache.Begin(cacheKey) {
			c.AbortWithStatusJSON(http.StatusConflict,
				dto.NewError(dto.ErrCodeConflict, i18n.Translate(c, i18n.ErrKeyConflict)).
					WithRequestID(GetRequestID(c)))
			return
		}

		writer := &capturingWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = writer

		defer func() {
			status := writer.Status()
			if status >= 200 && status < 300 {
				cfg.Cache.Complete(cacheKey, &cachedResponse{
					StatusCode:  status,
					ContentType: writer.Header().Get("Content-Type"),
					Body:        writer.body.Bytes(),
				})
				return
			}
			cfg.Cache.Complete(cacheKey, nil)
		}()

		c.Next()
	}
}

// requestFingerprint hashes the idempotency key with the session, method, path and body.
// Bodies over maxIdempotentBody are not fingerprinted.
func requestFingerprint(idempotencyKey, sessionID string, req *http.Request) (uint64, bool) {
	h := sha256.New()
	for _, part := range []string{idempotencyKey, sessionID, req.Method, req.URL.Path} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}

	if req.Body != nil {
		body, err := io.ReadAll(io.LimitReader(req.Body, maxIdempotentBody+1))
		req.Body = io.NopCloser(io.MultiReader(bytes.NewReader(body), req.Body))
		if err != nil || len(body) > maxIdempotentBody {
			return 0, false
		}
		h.Write(body)
	}
	return binary.BigEndian.Uint64(h.Sum(nil)), true
}

type capturingWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *capturingWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *capturingWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
