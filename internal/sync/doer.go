package sync

import (
	"net/http"
	"net/url"

	"github.com/gofiber/fiber/v3"
)

// Doer executes one HTTP-shaped request against the simulated backend. The
// client only depends on this seam, so the backend can sit in the same
// process (the default, like a service worker intercepting fetch) or behind a
// real listener.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// InProcDoer drives a fiber app directly, without a network listener.
type InProcDoer struct {
	App *fiber.App
}

func (d InProcDoer) Do(req *http.Request) (*http.Response, error) {
	// no harness timeout: the simulated latency is part of the contract
	return d.App.Test(req, fiber.TestConfig{Timeout: 0})
}

// HTTPDoer sends requests to a listening backend at Base (scheme://host).
type HTTPDoer struct {
	Base   string
	Client *http.Client
}

func (d HTTPDoer) Do(req *http.Request) (*http.Response, error) {
	base, err := url.Parse(d.Base)
	if err != nil {
		return nil, err
	}
	req.URL.Scheme = base.Scheme
	req.URL.Host = base.Host

	client := d.Client
	if client == nil {
		client = http.DefaultClient
	}
	return client.Do(req)
}
