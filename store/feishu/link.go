package feishu

import (
	"net/url"
	"regexp"
	"strings"
)

var basePathPattern = regexp.MustCompile(`/base/([^/?]+)`)

// ParseBaseLink extracts the app token and table ID from a Bitable share
// link. A bare token (no slashes, no scheme) passes through as the app
// token. The table ID comes from the "table" query parameter and may be
// empty when the link does not carry one.
func ParseBaseLink(link string) (appToken, tableID string) {
	link = strings.TrimSpace(link)
	if link == "" {
		return "", ""
	}
	if !strings.Contains(link, "/") && !strings.Contains(link, "http") {
		return link, ""
	}

	u, err := url.Parse(link)
	if err != nil {
		return link, ""
	}

	if m := basePathPattern.FindStringSubmatch(u.Path); m != nil {
		appToken = m[1]
	}
	tableID = u.Query().Get("table")
	return appToken, tableID
}
