package guard

import (
	"net/http"
	"strings"

	"github.com/valyala/fastjson"
)

var identityFields = []string{"email", "username", "identifier", "login"}

var identityParserPool fastjson.ParserPool

// DefaultMaxIdentityBodyBytes matches the server body limit so any body the
// server accepts is also parsed for an identity.
const DefaultMaxIdentityBodyBytes = 4 * 1024 * 1024

// ExtractIdentity returns the claimed identity from a JSON body, or "" when
// there is none. It never fails.
func ExtractIdentity(method string, body []byte, maxBytes int) string {
	switch strings.ToUpper(method) {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
	default:
		return ""
	}
	if len(body) == 0 || (maxBytes > 0 && len(body) > maxBytes) {
		return ""
	}

	p := identityParserPool.Get()
	defer identityParserPool.Put(p)

	v, err := p.ParseBytes(body)
	if err != nil || v.Type() != fastjson.TypeObject {
		return ""
	}
	for _, field := range identityFields {
		fv := v.Get(field)
		if fv == nil || fv.Type() != fastjson.TypeString {
			continue
		}
		if id := normalizeIdentity(string(fv.GetStringBytes())); id != "" {
			return id
		}
	}
	return ""
}

func normalizeIdentity(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
