package nets

import (
	"fmt"
	"net/url"
	"os"
	"sync"

	"github.com/reusee/taibf/configs"
	"github.com/reusee/taibf/logs"
	"github.com/reusee/taibf/modes"
	"github.com/reusee/taibf/vars"
)

// ProxyAddr is the proxy used to fetch remote programs, like socks5://127.0.0.1:1080 or http://proxy:3128.
type ProxyAddr string

var _ configs.Configurable = ProxyAddr("")

func (p ProxyAddr) ConfigExpr() string {
	return "proxy_addr"
}

// ProxyAddr reads the environment. The proxy_addr config entry overrides it.
func (Module) ProxyAddr(
	mode modes.Mode,
	logger logs.Logger,
) ProxyAddr {
	if mode == modes.ModeDevelopment {
		return ""
	}
	addr := vars.FirstNonZero(
		os.Getenv("ALL_PROXY"),
		os.Getenv("all_proxy"),
		os.Getenv("HTTPS_PROXY"),
		os.Getenv("https_proxy"),
		os.Getenv("HTTP_PROXY"),
		os.Getenv("http_proxy"),
	)
	if addr != "" {
		logger.Debug("proxy from environment", "addr", addr)
	}
	return ProxyAddr(addr)
}

// GetProxyURL returns nil when no proxy is configured.
type GetProxyURL func() (*url.URL, error)

func (Module) GetProxyURL(
	addr ProxyAddr,
) GetProxyURL {
	return sync.OnceValues(func() (*url.URL, error) {
		if addr == "" {
			return nil, nil
		}
		u, err := url.Parse(string(addr))
		if err != nil {
			return nil, fmt.Errorf("proxy address: %w", err)
		}
		switch u.Scheme {
		case "socks":
			u.Scheme = "socks5"
		case "socks5", "socks5h", "http", "https":
		default:
			return nil, fmt.Errorf("proxy address: unsupported scheme %q", u.Scheme)
		}
		return u, nil
	})
}

func isSocks(u *url.URL) bool {
	return u != nil && (u.Scheme == "socks5" || u.Scheme == "socks5h")
}
