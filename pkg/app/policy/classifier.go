package policy

import (
	"net/http"
	"net/url"
	"path"
	"regexp"
	"strings"

	"github.com/NeuralTrust/AuthGuard/pkg/config"
	"github.com/NeuralTrust/AuthGuard/pkg/domain/guard"
	"github.com/sirupsen/logrus"
)

const (
	AnyMethod = "*"

	maxUnescapeRounds = 3
)

// Route binds a method and path template to a category. Path templates may
// contain {param} segments.
type Route struct {
	Method   string
	Path     string
	Category guard.OperationCategory
}

//go:generate mockery --name=Classifier --dir=. --output=../../../mocks --filename=classifier_mock.go --case=underscore --with-expecter
type Classifier interface {
	Classify(method, path string) (guard.OperationCategory, bool)
}

type compiledRoute struct {
	method   string
	path     string
	pattern  *regexp.Regexp
	category guard.OperationCategory
}

type classifier struct {
	routes []compiledRoute
}

var paramReplaceRegex = regexp.MustCompile(`\\\{([^}]+)\\\}`)

// NewClassifier drops routes whose category has no policy so that they pass
// through untouched.
func NewClassifier(logger *logrus.Logger, routes []Route, registry Registry) Classifier {
	c := &classifier{routes: make([]compiledRoute, 0, len(routes))}
	for _, r := range routes {
		if _, ok := registry.Policy(r.Category); !ok {
			logger.WithFields(logrus.Fields{
				"method":   r.Method,
				"path":     r.Path,
				"category": r.Category,
			}).Warn("route mapped to unknown category, treating as pass-through")
			continue
		}
		method := strings.ToUpper(strings.TrimSpace(r.Method))
		if method == "" {
			method = AnyMethod
		}
		template := NormalizePath(r.Path)
		cr := compiledRoute{method: method, path: template, category: r.Category}
		if strings.Contains(template, "{") {
			pattern, err := regexp.Compile(convertPatternToRegex(template))
			if err != nil {
				logger.WithError(err).WithField("path", r.Path).Warn("invalid guard route pattern, skipping")
				continue
			}
			cr.pattern = pattern
		}
		c.routes = append(c.routes, cr)
	}
	return c
}

func RoutesFromConfig(cfg *config.GuardConfig) []Route {
	if len(cfg.Routes) == 0 {
		return DefaultRoutes()
	}
	routes := make([]Route, 0, len(cfg.Routes))
	for _, r := range cfg.Routes {
		routes = append(routes, Route{
			Method:   r.Method,
			Path:     r.Path,
			Category: guard.OperationCategory(r.Category),
		})
	}
	return routes
}

func DefaultRoutes() []Route {
	return []Route{
		{Method: http.MethodPost, Path: "/api/v1/auth/login", Category: guard.CategoryLogin},
		{Method: http.MethodPost, Path: "/api/v1/auth/admin/login", Category: guard.CategoryAdminLogin},
		{Method: http.MethodPost, Path: "/api/v1/auth/password-reset", Category: guard.CategoryPasswordReset},
		{Method: http.MethodPost, Path: "/api/v1/auth/register", Category: guard.CategoryRegistration},
		{Method: http.MethodPost, Path: "/api/v1/auth/otp", Category: guard.CategoryOTPRequest},
	}
}

// Classify matches the canonical form of path, ignoring case, since the
// router and the upstream both resolve those variants to the same handler.
func (c *classifier) Classify(method, rawPath string) (guard.OperationCategory, bool) {
	method = strings.ToUpper(method)
	p := CanonicalPath(rawPath)
	for _, r := range c.routes {
		if r.method != AnyMethod && r.method != method {
			continue
		}
		if r.pattern != nil {
			if r.pattern.MatchString(p) {
				return r.category, true
			}
			continue
		}
		if strings.EqualFold(r.path, p) {
			return r.category, true
		}
	}
	return "", false
}

// CanonicalPath decodes percent-encoding (nested encodings included), turns
// backslashes into slashes and collapses dot segments and repeated slashes.
// The result is what gets classified and what gets forwarded upstream.
func CanonicalPath(raw string) string {
	if i := strings.IndexByte(raw, '?'); i >= 0 {
		raw = raw[:i]
	}
	p := raw
	for i := 0; i < maxUnescapeRounds && strings.IndexByte(p, '%') >= 0; i++ {
		decoded, err := url.PathUnescape(p)
		if err != nil || decoded == p {
			break
		}
		p = decoded
	}
	p = strings.ReplaceAll(p, `\`, "/")
	return NormalizePath(path.Clean("/" + p))
}

// NormalizePath strips query strings and trailing slashes.
func NormalizePath(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			path = "/"
		}
	}
	return path
}

func convertPatternToRegex(pattern string) string {
	escaped := regexp.QuoteMeta(pattern)
	escaped = paramReplaceRegex.ReplaceAllString(escaped, `([^/]+)`)
	return "(?i)^" + escaped + "$"
}
