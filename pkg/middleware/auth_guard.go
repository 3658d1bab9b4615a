package middleware

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/NeuralTrust/AuthGuard/pkg/app/guard"
	"github.com/NeuralTrust/AuthGuard/pkg/app/policy"
	"github.com/NeuralTrust/AuthGuard/pkg/common"
	domain "github.com/NeuralTrust/AuthGuard/pkg/domain/guard"
	"github.com/NeuralTrust/AuthGuard/pkg/types"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const (
	defaultObserveTimeout = 500 * time.Millisecond

	codePayloadTooLarge = "AUTH_PAYLOAD_TOO_LARGE"
)

type AuthGuardOpts struct {
	TrustForwardedHeaders bool
	MaxIdentityBodyBytes  int
	ObserveTimeout        time.Duration
}

type authGuardMiddleware struct {
	logger                *logrus.Logger
	classifier            policy.Classifier
	service               guard.Service
	trustForwardedHeaders bool
	maxIdentityBodyBytes  int
	observeTimeout        time.Duration
}

func NewAuthGuardMiddleware(
	logger *logrus.Logger,
	classifier policy.Classifier,
	service guard.Service,
	opts *AuthGuardOpts,
) Middleware {
	m := &authGuardMiddleware{
		logger:               logger,
		classifier:           classifier,
		service:              service,
		maxIdentityBodyBytes: guard.DefaultMaxIdentityBodyBytes,
		observeTimeout:       defaultObserveTimeout,
	}
	if opts != nil {
		m.trustForwardedHeaders = opts.TrustForwardedHeaders
		if opts.MaxIdentityBodyBytes > 0 {
			m.maxIdentityBodyBytes = opts.MaxIdentityBodyBytes
		}
		if opts.ObserveTimeout > 0 {
			m.observeTimeout = opts.ObserveTimeout
		}
	}
	return m
}

func (m *authGuardMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		category, ok := m.classifier.Classify(c.Method(), c.Path())
		if !ok {
			return c.Next()
		}
		// An identity hidden in an unparsed body would escape its scope.
		if m.oversized(c) {
			return m.rejectOversized(c, category)
		}

		attempt, decision, ok := m.check(c, category)
		if !ok {
			return c.Next()
		}
		if !decision.Allowed {
			return m.reject(c, decision)
		}

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				status = fiberErr.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		m.annotate(c, decision)
		m.observe(attempt, status)
		return err
	}
}

// check runs the pre-handler phase. A panic is logged and reported as !ok so
// the request passes through untouched.
func (m *authGuardMiddleware) check(c *fiber.Ctx, category domain.OperationCategory) (attempt guard.Attempt, decision domain.Decision, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.WithFields(logrus.Fields{
				"error":    fmt.Sprintf("%v", r),
				"path":     c.Path(),
				"method":   c.Method(),
				"address":  attempt.Address,
				"category": category,
			}).Error("auth guard panic recovered")
			ok = false
		}
	}()

	attempt = guard.Attempt{
		Category: category,
		Address: guard.ResolveAddress(
			c.Get(common.HeaderForwardedFor),
			c.Get(common.HeaderRealIP),
			c.Context().RemoteIP().String(),
			m.trustForwardedHeaders,
		),
		Identity:  guard.ExtractIdentity(c.Method(), c.Body(), m.maxIdentityBodyBytes),
		Method:    c.Method(),
		Path:      policy.CanonicalPath(c.Path()),
		UserAgent: c.Get(fiber.HeaderUserAgent),
	}
	c.Locals(common.CategoryKey, category)
	c.Locals(common.ClientAddressKey, attempt.Address)

	decision = m.service.Check(c.UserContext(), attempt)
	return attempt, decision, true
}

func (m *authGuardMiddleware) observe(attempt guard.Attempt, status int) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.WithFields(logrus.Fields{
				"error":    fmt.Sprintf("%v", r),
				"path":     attempt.Path,
				"method":   attempt.Method,
				"address":  attempt.Address,
				"category": attempt.Category,
			}).Error("auth guard observe panic recovered")
		}
	}()

	// The request context is recycled by fasthttp once the handler returns.
	ctx, cancel := context.WithTimeout(context.Background(), m.observeTimeout)
	defer cancel()
	m.service.Observe(ctx, attempt, status)
}

func (m *authGuardMiddleware) annotate(c *fiber.Ctx, decision domain.Decision) {
	if decision.Type == "" {
		return
	}
	c.Set(common.HeaderRateLimitType, string(decision.Type))
	if decision.Degraded {
		return
	}
	c.Set(common.HeaderRateLimitRemaining, strconv.Itoa(decision.Remaining))
	if !decision.ResetAt.IsZero() {
		c.Set(common.HeaderRateLimitReset, decision.ResetAt.UTC().Format(time.RFC3339))
	}
}

func (m *authGuardMiddleware) reject(c *fiber.Ctx, decision domain.Decision) error {
	body := types.NewErrorEnvelope(errorType(decision), decision.Code, decision.Message)

	c.Set(common.HeaderRateLimitType, string(decision.Type))
	if seconds := decision.RetryAfterSeconds(); seconds > 0 {
		c.Set(common.HeaderRetryAfter, strconv.Itoa(seconds))
		c.Set(common.HeaderRateLimitRetryAfter, strconv.Itoa(seconds))
		body.Error.Details["retry_after"] = seconds
	}
	if !decision.LockoutUntil.IsZero() {
		until := decision.LockoutUntil.UTC().Format(time.RFC3339)
		c.Set(common.HeaderLockoutUntil, until)
		body.Error.Details["lockout_until"] = until
	}
	if decision.ViolationCount > 0 {
		c.Set(common.HeaderViolationCount, strconv.Itoa(decision.ViolationCount))
		body.Error.Details["violation_count"] = decision.ViolationCount
	}
	if decision.ScopeKind != "" {
		body.Error.Details["scope"] = decision.ScopeKind
	}

	status := decision.StatusCode
	if status == 0 {
		status = fiber.StatusTooManyRequests
	}
	return c.Status(status).JSON(body)
}

func (m *authGuardMiddleware) oversized(c *fiber.Ctx) bool {
	switch c.Method() {
	case fiber.MethodPost, fiber.MethodPut, fiber.MethodPatch:
		return len(c.Body()) > m.maxIdentityBodyBytes
	default:
		return false
	}
}

func (m *authGuardMiddleware) rejectOversized(c *fiber.Ctx, category domain.OperationCategory) error {
	m.logger.WithFields(logrus.Fields{
		"path":     c.Path(),
		"method":   c.Method(),
		"category": category,
		"size":     len(c.Body()),
		"limit":    m.maxIdentityBodyBytes,
	}).Warn("auth request body too large")

	body := types.NewErrorEnvelope(
		"payload_too_large",
		codePayloadTooLarge,
		fmt.Sprintf("Request body exceeds %d bytes", m.maxIdentityBodyBytes),
	)
	return c.Status(fiber.StatusRequestEntityTooLarge).JSON(body)
}

func errorType(decision domain.Decision) string {
	switch decision.StatusCode {
	case fiber.StatusForbidden:
		return "forbidden"
	case fiber.StatusServiceUnavailable:
		return "service_unavailable"
	default:
		return "rate_limit_exceeded"
	}
}
