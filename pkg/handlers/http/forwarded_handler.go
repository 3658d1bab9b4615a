package http

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/NeuralTrust/AuthGuard/pkg/app/policy"
	"github.com/NeuralTrust/AuthGuard/pkg/common"
	"github.com/NeuralTrust/AuthGuard/pkg/config"
	"github.com/NeuralTrust/AuthGuard/pkg/types"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"
)

const defaultUpstreamTimeout = 10 * time.Second

var hopByHopHeaders = []string{
	"Connection",
	"Proxy-Connection",
	"Keep-Alive",
	"Proxy-Authenticate",
	"Proxy-Authorization",
	"Te",
	"Trailer",
	"Transfer-Encoding",
	"Upgrade",
}

type forwardedHandler struct {
	logger      *logrus.Logger
	client      *fasthttp.Client
	upstreamURL string
	timeout     time.Duration
}

// NewForwardedHandler proxies every request reaching it to the protected
// authentication service. The guard middleware runs in front of it and reads
// the status it copies back.
func NewForwardedHandler(logger *logrus.Logger, cfg *config.ServerConfig) Handler {
	timeout := cfg.UpstreamTimeout
	if timeout <= 0 {
		timeout = defaultUpstreamTimeout
	}
	client := &fasthttp.Client{
		ReadTimeout:                   timeout,
		WriteTimeout:                  timeout,
		MaxConnsPerHost:               4096,
		MaxIdleConnDuration:           120 * time.Second,
		ReadBufferSize:                32768,
		WriteBufferSize:               32768,
		NoDefaultUserAgentHeader:      true,
		DisableHeaderNamesNormalizing: true,
		DisablePathNormalizing:        true,
	}

	return &forwardedHandler{
		logger:      logger,
		client:      client,
		upstreamURL: strings.TrimSuffix(cfg.UpstreamURL, "/"),
		timeout:     timeout,
	}
}

func (h *forwardedHandler) Handle(c *fiber.Ctx) error {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	targetURL := h.targetURL(c)
	h.buildRequest(c, req, targetURL)

	h.logger.Debug("sending request to " + targetURL)

	if err := h.client.DoTimeout(req, resp, h.timeout); err != nil {
		h.logger.WithFields(logrus.Fields{
			"target": targetURL,
			"method": c.Method(),
		}).WithError(err).Error("upstream request failed")
		return c.Status(fiber.StatusBadGateway).JSON(types.ApiError{Error: "upstream unavailable"})
	}

	status := resp.StatusCode()
	if status <= 0 || status >= 600 {
		h.logger.WithField("status", status).Error("invalid status code received from upstream")
		return c.Status(fiber.StatusBadGateway).JSON(types.ApiError{Error: "upstream unavailable"})
	}

	for _, name := range hopByHopHeaders {
		resp.Header.Del(name)
	}
	resp.Header.VisitAll(func(key, value []byte) {
		c.Response().Header.Add(string(key), string(value))
	})
	c.Status(status)
	// resp goes back to the pool on return, so the body must be copied.
	c.Response().SetBody(resp.Body())
	return nil
}

// targetURL forwards the same canonical path the guard classified, so the
// upstream cannot resolve a variant the guard did not see.
func (h *forwardedHandler) targetURL(c *fiber.Ctx) string {
	canonical := &url.URL{Path: policy.CanonicalPath(c.Path())}
	target := h.upstreamURL + canonical.EscapedPath()
	if query := c.Context().QueryArgs().QueryString(); len(query) > 0 {
		target = fmt.Sprintf("%s?%s", target, query)
	}
	return target
}

func (h *forwardedHandler) buildRequest(c *fiber.Ctx, req *fasthttp.Request, targetURL string) {
	req.SetRequestURI(targetURL)
	req.Header.SetMethod(c.Method())
	// Request().Body() keeps the wire bytes; Body() would decompress them
	// while Content-Encoding is still copied below.
	if body := c.Request().Body(); len(body) > 0 {
		req.SetBodyRaw(body)
	}

	c.Request().Header.VisitAll(func(key, value []byte) {
		if strings.EqualFold(string(key), fiber.HeaderHost) {
			return
		}
		req.Header.Add(string(key), string(value))
	})
	for _, name := range hopByHopHeaders {
		req.Header.Del(name)
	}

	clientIP := c.Context().RemoteIP().String()
	if prior := c.Get(common.HeaderForwardedFor); prior != "" {
		req.Header.Set(common.HeaderForwardedFor, prior+", "+clientIP)
	} else {
		req.Header.Set(common.HeaderForwardedFor, clientIP)
	}
	if requestID, ok := c.Locals(common.RequestIDKey).(string); ok && requestID != "" {
		req.Header.Set(common.RequestIDHeader, requestID)
	}
}
