package nets

import (
	"context"
	"fmt"
	"net"
	"sync"

	"golang.org/x/net/proxy"
)

type Dialer interface {
	DialContext(ctx context.Context, network, addr string) (net.Conn, error)
}

type DialerFunc func(ctx context.Context, network, addr string) (net.Conn, error)

var _ Dialer = DialerFunc(nil)

func (d DialerFunc) DialContext(ctx context.Context, network, addr string) (net.Conn, error) {
	return d(ctx, network, addr)
}

// Dialer connects directly to local addresses and through a socks proxy otherwise.
// Http proxies are handled by the HTTPClient transport instead.
func (Module) Dialer(
	getURL GetProxyURL,
	isLocalAddr IsLocalAddr,
) Dialer {
	direct := new(net.Dialer)

	getSocks := sync.OnceValues(func() (proxy.ContextDialer, error) {
		u, err := getURL()
		if err != nil || !isSocks(u) {
			return nil, err
		}
		d, err := proxy.FromURL(u, direct)
		if err != nil {
			return nil, fmt.Errorf("proxy %s: %w", u.Redacted(), err)
		}
		contextDialer, ok := d.(proxy.ContextDialer)
		if !ok {
			return nil, fmt.Errorf("proxy %s: no context support", u.Redacted())
		}
		return contextDialer, nil
	})

	return DialerFunc(func(ctx context.Context, network, addr string) (net.Conn, error) {
		if local, err := isLocalAddr(addr); err != nil {
			return nil, err
		} else if local {
			return direct.DialContext(ctx, network, addr)
		}
		socks, err := getSocks()
		if err != nil {
			return nil, err
		}
		if socks == nil {
			return direct.DialContext(ctx, network, addr)
		}
		return socks.DialContext(ctx, network, addr)
	})
}
