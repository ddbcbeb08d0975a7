package config

import (
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"
)

// CheckReachable verifies that base answers on the wire: first a TCP
// dial, then an HTTP GET against the given paths (any response counts,
// including 4xx — the check is about connectivity, not content).
func CheckReachable(base string, timeout time.Duration, paths ...string) error {
	u, err := url.Parse(base)
	if err != nil {
		return fmt.Errorf("parse url %q: %w", base, err)
	}

	host := u.Host
	if u.Port() == "" {
		switch u.Scheme {
		case "https":
			host += ":443"
		default:
			host += ":80"
		}
	}
	d := net.Dialer{Timeout: timeout}
	conn, err := d.Dial("tcp", host)
	if err != nil {
		return fmt.Errorf("tcp dial %s: %w", host, err)
	}
	_ = conn.Close()

	if len(paths) == 0 {
		paths = []string{"/"}
	}
	client := &http.Client{Timeout: timeout}
	var lastErr error
	for _, path := range paths {
		resp, err := client.Get(base + path)
		if err != nil {
			lastErr = err
			continue
		}
		_ = resp.Body.Close()
		return nil
	}
	return fmt.Errorf("no HTTP response from %s: %w", base, lastErr)
}
