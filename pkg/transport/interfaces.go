package transport

import (
	"context"
	"net/http"

	"github.com/multiroom/fsapi-go/pkg/wire"
)

// Doer performs HTTP requests. *http.Client implements it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Exchanger performs one FSAPI exchange and returns the parsed document.
// Implemented by Client.
type Exchanger interface {
	Do(ctx context.Context, req Request) (*wire.Node, error)
}

var (
	_ Doer      = (*http.Client)(nil)
	_ Exchanger = (*Client)(nil)
)
