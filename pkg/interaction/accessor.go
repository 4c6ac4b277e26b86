package interaction

import (
	"context"

	"github.com/multiroom/fsapi-go/pkg/model"
	"github.com/multiroom/fsapi-go/pkg/wire"
)

// Accessor is a Client bound to one resource. Operations not allowed by the
// resource's access flags fail with model.ErrNotReadable, ErrNotWritable or
// ErrNotListable without contacting the device.
type Accessor struct {
	client *Client
	res    model.Resource
}

// Resource returns the bound resource.
func (a *Accessor) Resource() model.Resource {
	return a.res
}

// Access returns the resource's access flags.
func (a *Accessor) Access() model.Access {
	return a.res.Access
}

// Get reads the value.
func (a *Accessor) Get(ctx context.Context) (wire.Value, error) {
	return a.client.Get(ctx, a.res)
}

// GetInt reads an integer value. ok is false if the device returned no
// value or a string.
func (a *Accessor) GetInt(ctx context.Context) (v int64, ok bool, err error) {
	val, err := a.Get(ctx)
	if err != nil {
		return 0, false, err
	}
	v, ok = val.Int()
	return v, ok, nil
}

// GetString reads a string value. ok is false if the device returned no
// value or an integer.
func (a *Accessor) GetString(ctx context.Context) (s string, ok bool, err error) {
	val, err := a.Get(ctx)
	if err != nil {
		return "", false, err
	}
	s, ok = val.Str()
	return s, ok, nil
}

// Set writes value and reports whether the device accepted it.
func (a *Accessor) Set(ctx context.Context, value any) (bool, error) {
	return a.client.Set(ctx, a.res, value)
}

// List returns the first page of records.
func (a *Accessor) List(ctx context.Context) ([]wire.Record, error) {
	return a.client.List(ctx, a.res)
}

// ListPage returns up to maxItems records after the key start.
func (a *Accessor) ListPage(ctx context.Context, start string, maxItems int) (wire.Page, error) {
	return a.client.ListPage(ctx, a.res, start, maxItems)
}

// ListAll returns every record.
func (a *Accessor) ListAll(ctx context.Context) ([]wire.Record, error) {
	return a.client.ListAll(ctx, a.res)
}
