package middleware

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sangkips/vendor-ledger-api/internal/domain/entity"
	"github.com/sangkips/vendor-ledger-api/internal/domain/repository"
	"github.com/sangkips/vendor-ledger-api/internal/infrastructure/logger"
	"github.com/sangkips/vendor-ledger-api/internal/presentation/http/dto/response"
	"github.com/sangkips/vendor-ledger-api/pkg/apperror"
	"go.uber.org/zap"
)

const (
	// IdempotencyKeyHeader is the HTTP header for idempotency keys
	IdempotencyKeyHeader = "Idempotency-Key"
	// ReplayedHeader marks a response served from a stored key
	ReplayedHeader = "X-Idempotency-Replayed"
	// IdempotencyKeyTTL is how long keys are valid
	IdempotencyKeyTTL = 24 * time.Hour
	// IdempotencyPendingTTL bounds how long a reservation blocks its key if
	// the request holding it never finishes
	IdempotencyPendingTTL = time.Minute
)

// IdempotencyConfig holds configuration for the idempotency middleware
type IdempotencyConfig struct {
	Repo       repository.IdempotencyRepository
	TTL        time.Duration
	PendingTTL time.Duration
}

// responseWriter wraps gin.ResponseWriter to capture the response body
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency replays the stored response when a create request repeats an
// Idempotency-Key for the same operator. The key is reserved before the
// handler runs, so a second submission arriving while the first is still in
// flight gets 409 instead of creating a duplicate. Reusing a key with a
// different body is rejected with 422. Only successful responses are kept;
// any other outcome releases the key so the request can be corrected and
// resent under it.
func Idempotency(config IdempotencyConfig) gin.HandlerFunc {
	ttl := config.TTL
	if ttl <= 0 {
		ttl = IdempotencyKeyTTL
	}
	pendingTTL := config.PendingTTL
	if pendingTTL <= 0 {
		pendingTTL = IdempotencyPendingTTL
	}

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}

		operatorID, ok := c.Get("user_id")
		if !ok {
			c.Next()
			return
		}
		userID, ok := operatorID.(uuid.UUID)
		if !ok {
			c.Next()
			return
		}

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			response.Error(c, apperror.NewBadRequestError("Invalid request body"))
			c.Abort()
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))
		requestHash := hashRequest(c.Request.Method, c.FullPath(), body)
		endpoint := c.Request.Method + " " + c.FullPath()

		ctx := c.Request.Context()
		log := logger.GetGinLogger(c).With(zap.String("idempotency_key", key))

		reserved, err := config.Repo.Reserve(ctx, &entity.IdempotencyKey{
			Key:         key,
			OperatorID:  userID,
			Endpoint:    endpoint,
			RequestHash: requestHash,
			ExpiresAt:   time.Now().Add(pendingTTL),
		})
		if err != nil {
			log.Warn("idempotency reservation failed", zap.Error(err))
			c.Next()
			return
		}

		if !reserved {
			existing, err := config.Repo.GetByKey(ctx, key, userID)
			if err != nil {
				log.Warn("idempotency lookup failed", zap.Error(err))
				response.Error(c, apperror.NewInternalError(err))
				c.Abort()
				return
			}
			switch {
			case existing != nil && !existing.Matches(requestHash):
				response.Error(c, apperror.NewAppError(http.StatusUnprocessableEntity,
					"Idempotency-Key was already used with a different request"))
			case existing == nil || existing.IsPending():
				response.Error(c, apperror.NewConflictError(
					"A request with this Idempotency-Key is still being processed"))
			default:
				c.Header(ReplayedHeader, "true")
				c.Data(existing.ResponseCode, "application/json; charset=utf-8", []byte(existing.ResponseBody))
			}
			c.Abort()
			return
		}

		blw := &responseWriter{body: &bytes.Buffer{}, ResponseWriter: c.Writer}
		c.Writer = blw

		// The request context may already be cancelled once the handler
		// returns; the key must still be settled.
		settleCtx := context.WithoutCancel(ctx)
		c.Next()

		status := c.Writer.Status()
		if status < http.StatusOK || status >= http.StatusMultipleChoices {
			if err := config.Repo.Release(settleCtx, key, userID); err != nil {
				log.Warn("failed to release idempotency key", zap.Error(err))
			}
			return
		}

		if err := config.Repo.Complete(settleCtx, &entity.IdempotencyKey{
			Key:          key,
			OperatorID:   userID,
			Endpoint:     endpoint,
			RequestHash:  requestHash,
			ResponseCode: status,
			ResponseBody: blw.body.String(),
			ExpiresAt:    time.Now().Add(ttl),
		}); err != nil {
			log.Warn("failed to store idempotency key", zap.Error(err))
		}
	}
}

func hashRequest(method, path string, body []byte) string {
	h := sha256.New()
	h.Write([]byte(method + " " + path + "\n"))
	h.Write(body)
	return hex.EncodeToString(h.Sum(nil))
}
