package interaction

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/multiroom/fsapi-go/pkg/model"
	"github.com/multiroom/fsapi-go/pkg/transport"
	"github.com/multiroom/fsapi-go/pkg/wire"
)

// Client performs typed FSAPI operations against one device.
// It is safe for concurrent use if the underlying Exchanger is.
type Client struct {
	ex transport.Exchanger
}

// NewClient creates a Client with its own transport.
func NewClient(config transport.Config) (*Client, error) {
	tc, err := transport.NewClient(config)
	if err != nil {
		return nil, err
	}
	return &Client{ex: tc}, nil
}

// NewClientWithExchanger creates a Client on top of an existing exchanger.
func NewClientWithExchanger(ex transport.Exchanger) *Client {
	return &Client{ex: ex}
}

// Accessor binds the client to a resource. No I/O is performed.
func (c *Client) Accessor(res model.Resource) *Accessor {
	return &Accessor{client: c, res: res}
}

// Resource returns an accessor for a catalog name, Go name or path.
func (c *Client) Resource(name string) (*Accessor, error) {
	res, ok := model.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownResource, name)
	}
	return c.Accessor(res), nil
}

// Get reads a scalar resource.
func (c *Client) Get(ctx context.Context, res model.Resource) (wire.Value, error) {
	if err := res.CheckRead(); err != nil {
		return wire.Absent(), fmt.Errorf("%s: %w", res.Name, err)
	}
	root, err := c.ex.Do(ctx, transport.Request{Operation: wire.OpGet, Resource: res.Path})
	if err != nil {
		return wire.Absent(), err
	}
	v, err := wire.DecodeValue(root)
	if err != nil {
		return wire.Absent(), annotate(err, wire.OpGet, res.Path)
	}
	return v, nil
}

// Set writes a scalar resource and reports whether the device answered FS_OK.
func (c *Client) Set(ctx context.Context, res model.Resource, value any) (bool, error) {
	if err := res.CheckWrite(); err != nil {
		return false, fmt.Errorf("%s: %w", res.Name, err)
	}
	text, err := EncodeValue(value)
	if err != nil {
		return false, fmt.Errorf("%s: %w", res.Name, err)
	}
	root, err := c.ex.Do(ctx, transport.Request{
		Operation: wire.OpSet,
		Resource:  res.Path,
		Params:    map[string]string{wire.ParamValue: text},
	})
	if err != nil {
		return false, err
	}
	return wire.DecodeSetResult(root), nil
}

// List returns the first page of a list resource.
func (c *Client) List(ctx context.Context, res model.Resource) ([]wire.Record, error) {
	page, err := c.ListPage(ctx, res, wire.ItemListStart, 0)
	if err != nil {
		return nil, err
	}
	return page.Records, nil
}

// ListPage fetches up to maxItems records following the key start.
// An empty start or wire.ItemListStart begins at the first record;
// maxItems <= 0 uses the resource page size.
func (c *Client) ListPage(ctx context.Context, res model.Resource, start string, maxItems int) (wire.Page, error) {
	if err := res.CheckList(); err != nil {
		return wire.Page{}, fmt.Errorf("%s: %w", res.Name, err)
	}
	if start == "" {
		start = wire.ItemListStart
	}
	if maxItems <= 0 {
		maxItems = pageSize(res)
	}

	root, err := c.ex.Do(ctx, transport.Request{
		Operation: wire.OpListGetNext,
		Resource:  res.Path,
		Item:      start,
		Params:    map[string]string{wire.ParamMaxItems: strconv.Itoa(maxItems)},
	})
	if err != nil {
		return wire.Page{}, err
	}
	page, err := wire.DecodePage(root, res.Schema, maxItems)
	if err != nil {
		return wire.Page{}, annotate(err, wire.OpListGetNext, res.Path)
	}
	return page, nil
}

// ListAll walks the list cursor until the device reports the end.
// Records fetched before a failure are returned with the error.
func (c *Client) ListAll(ctx context.Context, res model.Resource) ([]wire.Record, error) {
	if err := res.CheckList(); err != nil {
		return nil, fmt.Errorf("%s: %w", res.Name, err)
	}

	var all []wire.Record
	seen := make(map[string]bool)
	cursor := wire.ItemListStart
	for {
		page, err := c.ListPage(ctx, res, cursor, 0)
		if err != nil {
			return all, err
		}
		all = append(all, page.Records...)
		if page.End || len(page.Records) == 0 {
			return all, nil
		}

		next := page.Next()
		if seen[next] {
			return all, fmt.Errorf("%s: %w at key %q", res.Name, ErrCursorStalled, next)
		}
		seen[next] = true
		cursor = next
	}
}

// Do performs an arbitrary exchange and returns the raw document.
func (c *Client) Do(ctx context.Context, req transport.Request) (*wire.Node, error) {
	return c.ex.Do(ctx, req)
}

func pageSize(res model.Resource) int {
	if res.PageSize > 0 {
		return res.PageSize
	}
	return model.DefaultPageSize
}

// annotate fills in the exchange identity on decoding errors.
func annotate(err error, op wire.Operation, path string) error {
	var mre *wire.MalformedResponseError
	if errors.As(err, &mre) {
		if mre.Operation == "" {
			mre.Operation = op
		}
		if mre.Resource == "" {
			mre.Resource = path
		}
	}
	return err
}
