package middleware

import (
	"net/http"
	"net/netip"
	"strings"

	"github.com/heartmarshall/laborcrm-backend/pkg/ctxutil"
)

// ClientInfo stores the caller's IP address and user agent in the context.
// With trustProxy set the first X-Forwarded-For hop (or X-Real-IP) wins over
// the socket address, provided it parses as an IP.
func ClientInfo(trustProxy bool) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			info := ctxutil.ClientInfo{
				IPAddress: clientIP(r, trustProxy),
				UserAgent: r.UserAgent(),
			}
			next.ServeHTTP(w, r.WithContext(ctxutil.WithClientInfo(r.Context(), info)))
		})
	}
}

func clientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		first, _, _ := strings.Cut(r.Header.Get("X-Forwarded-For"), ",")
		if ip, ok := parseIP(first); ok {
			return ip
		}
		if ip, ok := parseIP(r.Header.Get("X-Real-IP")); ok {
			return ip
		}
	}

	if ap, err := netip.ParseAddrPort(r.RemoteAddr); err == nil {
		return ap.Addr().Unmap().String()
	}
	if ip, ok := parseIP(r.RemoteAddr); ok {
		return ip
	}
	return r.RemoteAddr
}

// parseIP accepts a bare IPv4 or IPv6 address. Malformed header values are
// rejected so they never reach the audit log.
func parseIP(raw string) (string, bool) {
	addr, err := netip.ParseAddr(strings.TrimSpace(raw))
	if err != nil {
		return "", false
	}
	return addr.Unmap().String(), true
}
