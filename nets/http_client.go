package nets

import (
	"net/http"
	"net/url"
	"time"
)

// HTTPClient fetches remote programs. Local addresses bypass the proxy.
type HTTPClient = *http.Client

func (Module) HTTPClient(
	dialer Dialer,
	getURL GetProxyURL,
	isLocalAddr IsLocalAddr,
) HTTPClient {
	return &http.Client{
		Transport: &http.Transport{
			DialContext:         dialer.DialContext,
			TLSHandshakeTimeout: time.Second * 10,
			Proxy: func(req *http.Request) (*url.URL, error) {
				u, err := getURL()
				if err != nil || u == nil || isSocks(u) {
					return nil, err
				}
				if local, err := isLocalAddr(req.URL.Host); err != nil || local {
					return nil, err
				}
				return u, nil
			},
		},
	}
}
