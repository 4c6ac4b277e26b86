package inspect

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/multiroom/fsapi-go/pkg/interaction"
	"github.com/multiroom/fsapi-go/pkg/model"
	"github.com/multiroom/fsapi-go/pkg/transport"
	"github.com/multiroom/fsapi-go/pkg/wire"
)

// Reading is the result of reading one resource.
type Reading struct {
	Resource model.Resource
	Value    wire.Value

	// Err is set by ReadAll when this resource could not be read.
	Err error
}

// Inspector reads and writes resources by name.
type Inspector struct {
	client *interaction.Client
}

// NewInspector creates a new Inspector for the given client.
func NewInspector(client *interaction.Client) *Inspector {
	return &Inspector{client: client}
}

// Read reads the resource named name.
func (i *Inspector) Read(ctx context.Context, name string) (Reading, error) {
	res, err := Resolve(name, model.AccessReadWrite)
	if err != nil {
		return Reading{}, err
	}
	v, err := i.client.Get(ctx, res)
	if err != nil {
		return Reading{Resource: res}, err
	}
	return Reading{Resource: res, Value: v}, nil
}

// ReadAll reads every readable catalog resource. Per-resource failures are
// recorded in Reading.Err; the first transport failure stops the walk.
func (i *Inspector) ReadAll(ctx context.Context) ([]Reading, error) {
	var out []Reading
	for _, res := range model.Catalog() {
		if !res.Access.CanRead() {
			continue
		}
		v, err := i.client.Get(ctx, res)
		if err != nil {
			var te *transport.TransportError
			if errors.As(err, &te) {
				return out, err
			}
			out = append(out, Reading{Resource: res, Err: err})
			continue
		}
		out = append(out, Reading{Resource: res, Value: v})
	}
	return out, nil
}

// Write parses input for the named resource and sets it.
func (i *Inspector) Write(ctx context.Context, name, input string) (bool, error) {
	res, err := Resolve(name, model.AccessReadWrite)
	if err != nil {
		return false, err
	}
	v, err := ParseValue(res, input)
	if err != nil {
		return false, err
	}
	return i.client.Set(ctx, res, v)
}

// List returns the records of the named list resource, either the first
// page or, with all set, every page.
func (i *Inspector) List(ctx context.Context, name string, all bool) (model.Resource, []wire.Record, error) {
	res, err := Resolve(name, model.AccessList)
	if err != nil {
		return model.Resource{}, nil, err
	}
	var records []wire.Record
	if all {
		records, err = i.client.ListAll(ctx, res)
	} else {
		records, err = i.client.List(ctx, res)
	}
	return res, records, err
}

// Raw performs an arbitrary exchange. op is case-insensitive.
func (i *Inspector) Raw(ctx context.Context, op, path, item string, params map[string]string) (*wire.Node, error) {
	operation := wire.Operation(strings.ToUpper(op))
	if !operation.IsValid() {
		return nil, fmt.Errorf("%w: unsupported operation %q", ErrInvalidInput, op)
	}
	if r, ok := model.Lookup(path); ok {
		path = r.Path
	}
	return i.client.Do(ctx, transport.Request{
		Operation: operation,
		Resource:  path,
		Item:      item,
		Params:    params,
	})
}
