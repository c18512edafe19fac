package site

import (
	"net/http"
	"strings"
)

// htmxRequestHeader is set by htmx on every request it issues.
const htmxRequestHeader = "HX-Request"

// isHTMX reports whether the request was initiated by htmx and so expects a
// fragment instead of a full page.
func isHTMX(r *http.Request) bool {
	return r != nil && strings.EqualFold(r.Header.Get(htmxRequestHeader), "true")
}
