package assertion

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// ToCurl renders a request as an equivalent curl command line
func ToCurl(req *http.Request, body string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "curl -s -X %s", req.Method)

	keys := make([]string, 0, len(req.Header))
	for key := range req.Header {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		for _, value := range req.Header[key] {
			fmt.Fprintf(&b, " -H %s", shellQuote(key+": "+value))
		}
	}

	if body != "" {
		fmt.Fprintf(&b, " -d %s", shellQuote(body))
	}

	fmt.Fprintf(&b, " %s", shellQuote(req.URL.String()))
	return b.String()
}

// shellQuote wraps s in single quotes, escaping embedded single quotes
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
