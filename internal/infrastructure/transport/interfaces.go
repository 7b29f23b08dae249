package transport

import "net/http"

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_transport.go -package=mock_transport

// HTTPDoer executes a single HTTP request. *http.Client satisfies it.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}
