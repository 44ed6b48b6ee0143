// Package httpclient builds the HTTP client the page controller fetches with:
// optional HTTP(S) or SOCKS5 proxying and optional browser-like TLS
// fingerprints. It never retries.
package httpclient

import (
	"context"
	"crypto/x509"
	"fmt"
	"math/rand"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	utls "github.com/refraction-networking/utls"
	proxy "golang.org/x/net/proxy"
)

var clientHelloIDs = []utls.ClientHelloID{
	utls.HelloChrome_Auto,
	utls.HelloFirefox_Auto,
	utls.HelloSafari_Auto,
	utls.HelloEdge_Auto,
}

type Options struct {
	// ProxyURL is an http://, https:// or socks5:// proxy. Empty dials directly.
	ProxyURL string
	// Fingerprint dials https targets with a browser ClientHello. It applies to
	// direct and SOCKS5 connections; behind an HTTP proxy the standard
	// handshake is used for the CONNECT tunnel.
	Fingerprint bool
	// ClientHello pins the fingerprint; zero picks one of the browser presets.
	ClientHello utls.ClientHelloID
	// RootCAs overrides the system roots for fingerprinted handshakes.
	RootCAs *x509.CertPool
	// Timeout bounds a whole request. Zero means no timeout.
	Timeout time.Duration
}

// New returns an *http.Client configured by opts.
func New(opts Options) (*http.Client, error) {
	transport, err := NewTransport(opts)
	if err != nil {
		return nil, err
	}
	return &http.Client{Transport: transport, Timeout: opts.Timeout}, nil
}

func NewTransport(opts Options) (*http.Transport, error) {
	transport := &http.Transport{
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		ForceAttemptHTTP2:     false,
	}

	base := &net.Dialer{Timeout: 30 * time.Second, KeepAlive: 30 * time.Second}
	dial := base.DialContext

	if opts.ProxyURL != "" {
		proxyURL, err := url.Parse(opts.ProxyURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse proxy URL %s: %w", MaskProxyURL(opts.ProxyURL), err)
		}

		switch proxyURL.Scheme {
		case "http", "https":
			transport.Proxy = http.ProxyURL(proxyURL)
		case "socks5":
			dial, err = socks5Dialer(proxyURL, base)
			if err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("unsupported proxy scheme: %s", proxyURL.Scheme)
		}
	}
	transport.DialContext = dial

	if opts.Fingerprint {
		helloID := opts.ClientHello
		if helloID == (utls.ClientHelloID{}) {
			helloID = clientHelloIDs[rand.Intn(len(clientHelloIDs))]
		}
		d := &fingerprintingDialer{dial: dial, helloID: helloID, rootCAs: opts.RootCAs}
		transport.DialTLSContext = d.DialTLSContext
	}

	return transport, nil
}

func socks5Dialer(proxyURL *url.URL, forward *net.Dialer) (func(ctx context.Context, network, addr string) (net.Conn, error), error) {
	var auth *proxy.Auth
	if proxyURL.User != nil {
		auth = &proxy.Auth{User: proxyURL.User.Username()}
		if password, ok := proxyURL.User.Password(); ok {
			auth.Password = password
		}
	}

	dialer, err := proxy.SOCKS5("tcp", proxyURL.Host, auth, forward)
	if err != nil {
		return nil, fmt.Errorf("create SOCKS5 dialer: %w", err)
	}
	contextDialer, ok := dialer.(proxy.ContextDialer)
	if !ok {
		return nil, fmt.Errorf("SOCKS5 dialer does not support contexts")
	}
	return contextDialer.DialContext, nil
}

type fingerprintingDialer struct {
	dial    func(ctx context.Context, network, addr string) (net.Conn, error)
	helloID utls.ClientHelloID
	rootCAs *x509.CertPool
}

func (d *fingerprintingDialer) DialTLSContext(ctx context.Context, network, addr string) (net.Conn, error) {
	conn, err := d.dial(ctx, network, addr)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}

	host := addr
	if h, _, err := net.SplitHostPort(addr); err == nil {
		host = h
	}

	spec, err := utls.UTLSIdToSpec(d.helloID)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("uTLS spec for %s: %w", d.helloID.Str(), err)
	}
	// The transport speaks HTTP/1.1 only.
	for _, ext := range spec.Extensions {
		if alpn, ok := ext.(*utls.ALPNExtension); ok {
			alpn.AlpnProtocols = []string{"http/1.1"}
		}
	}

	uconn := utls.UClient(conn, &utls.Config{ServerName: host, RootCAs: d.rootCAs}, utls.HelloCustom)
	if err := uconn.ApplyPreset(&spec); err != nil {
		conn.Close()
		return nil, fmt.Errorf("uTLS preset: %w", err)
	}
	if err := uconn.HandshakeContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("uTLS handshake: %w", err)
	}
	return uconn, nil
}

// MaskProxyURL hides the password of a proxy URL for logging.
func MaskProxyURL(proxyURL string) string {
	if !strings.Contains(proxyURL, "@") {
		return proxyURL
	}

	parsedURL, err := url.Parse(proxyURL)
	if err != nil {
		return "[masked]"
	}

	if parsedURL.User != nil {
		username := parsedURL.User.Username()
		return strings.Replace(proxyURL, parsedURL.User.String(), username+":****", 1)
	}

	return proxyURL
}
