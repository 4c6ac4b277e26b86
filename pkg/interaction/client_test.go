package interaction

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/multiroom/fsapi-go/internal/fsapitest"
	"github.com/multiroom/fsapi-go/pkg/model"
	"github.com/multiroom/fsapi-go/pkg/transport"
	"github.com/multiroom/fsapi-go/pkg/wire"
)

func newTestClient(t *testing.T) (*Client, *fsapitest.Device) {
	t.Helper()
	dev := fsapitest.New(t)
	c, err := NewClient(transport.Config{Host: dev.Host(), PIN: dev.PIN})
	require.NoError(t, err)
	return c, dev
}

func TestGetVolumeScenario(t *testing.T) {
	c, dev := newTestClient(t)
	dev.SetInt(model.PathVolume, "i32", 20)

	v, err := c.Get(context.Background(), model.MustLookup("volume"))
	require.NoError(t, err)

	i, ok := v.Int()
	require.True(t, ok)
	assert.Equal(t, int64(20), i)
}

func TestSetVolumeScenario(t *testing.T) {
	c, dev := newTestClient(t)
	dev.SetInt(model.PathVolume, "u8", 10)
	volume := model.MustLookup("volume")

	ok, err := c.Set(context.Background(), volume, 25)
	require.NoError(t, err)
	assert.True(t, ok)
	got, _ := dev.Value(model.PathVolume)
	assert.Equal(t, "25", got)

	dev.SetReadOnly(model.PathVolume)
	ok, err = c.Set(context.Background(), volume, 30)
	require.NoError(t, err)
	assert.False(t, ok)

	reqs := dev.Requests()
	assert.Equal(t, wire.OpSet, reqs[0].Operation)
	assert.Equal(t, "25", reqs[0].Query.Get("value"))
}

func TestListPresetsScenario(t *testing.T) {
	c, dev := newTestClient(t)
	dev.SetList(model.PathPresets, []fsapitest.Item{
		{Key: "0", Fields: []fsapitest.Field{fsapitest.Str("name", "Radio One")}},
		{Key: "1", Fields: []fsapitest.Field{fsapitest.Str("name", "Jazz FM"), fsapitest.Str("uniqid", "jz1")}},
	})

	records, err := c.List(context.Background(), model.MustLookup("listPresets"))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "0", records[0].Key)
	assert.Equal(t, map[string]any{"name": "Radio One"}, records[0].Fields)
	assert.False(t, records[0].Has("uniqid"))

	assert.Equal(t, "1", records[1].Key)
	assert.Equal(t, map[string]any{"name": "Jazz FM", "uniqid": "jz1"}, records[1].Fields)

	req := dev.Requests()[0]
	assert.Equal(t, wire.OpListGetNext, req.Operation)
	assert.Equal(t, wire.ItemListStart, req.Item)
	assert.Equal(t, "7", req.Query.Get("maxItems"))
}

func TestListModesDecodesBools(t *testing.T) {
	c, dev := newTestClient(t)
	dev.SetList(model.PathValidModes, []fsapitest.Item{
		{Key: "0", Fields: []fsapitest.Field{
			fsapitest.Str("id", "IR"),
			fsapitest.Str("label", "Internet radio"),
			fsapitest.Bool("selectable", true),
			fsapitest.Bool("streamable", false),
			{Name: "modetype", Tag: wire.TagU8, Text: "2"},
			fsapitest.Str("unknownfield", "x"),
		}},
	})

	records, err := c.List(context.Background(), model.MustLookup("listModes"))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, map[string]any{
		"id":         "IR",
		"label":      "Internet radio",
		"selectable": true,
		"streamable": false,
		"modetype":   false,
	}, records[0].Fields)
	assert.Equal(t, "20", dev.Requests()[0].Query.Get("maxItems"))
}

func TestGetAbsentAndEmpty(t *testing.T) {
	c, dev := newTestClient(t)
	dev.SetEmpty(model.PathPlayArtist)

	v, err := c.Get(context.Background(), model.MustLookup("playArtist"))
	require.NoError(t, err)
	assert.True(t, v.IsAbsent())

	v, err = c.Get(context.Background(), model.MustLookup("playAlbum"))
	require.NoError(t, err, "unsupported resources are absent, not errors")
	assert.True(t, v.IsAbsent())
}

func TestGetMalformed(t *testing.T) {
	c, dev := newTestClient(t)
	dev.SetValue(model.PathVolume, "u8", "loud")

	_, err := c.Get(context.Background(), model.MustLookup("volume"))
	var mre *wire.MalformedResponseError
	require.True(t, errors.As(err, &mre))
	assert.Equal(t, wire.OpGet, mre.Operation)
	assert.Equal(t, model.PathVolume, mre.Resource)
	assert.ErrorIs(t, err, wire.ErrNotInteger)
}

func TestWrongPINIsMalformed(t *testing.T) {
	dev := fsapitest.New(t)
	c, err := NewClient(transport.Config{Host: dev.Host(), PIN: "0000"})
	require.NoError(t, err)

	_, err = c.Get(context.Background(), model.MustLookup("power"))
	var mre *wire.MalformedResponseError
	require.True(t, errors.As(err, &mre))
	assert.Equal(t, 403, mre.HTTPStatus)
}

func TestCapabilityChecksSkipIO(t *testing.T) {
	c, dev := newTestClient(t)
	ctx := context.Background()

	_, err := c.Get(ctx, model.MustLookup("playControl"))
	assert.ErrorIs(t, err, model.ErrNotReadable)

	_, err = c.Set(ctx, model.MustLookup("name"), "Kitchen")
	assert.ErrorIs(t, err, model.ErrNotWritable)

	_, err = c.List(ctx, model.MustLookup("volume"))
	assert.ErrorIs(t, err, model.ErrNotListable)

	_, err = c.ListAll(ctx, model.MustLookup("volume"))
	assert.ErrorIs(t, err, model.ErrNotListable)

	_, err = c.Get(ctx, model.MustLookup("listPresets"))
	assert.ErrorIs(t, err, model.ErrNotReadable)

	assert.Empty(t, dev.Requests())
}

func TestSetInvalidValueSkipsIO(t *testing.T) {
	c, dev := newTestClient(t)

	_, err := c.Set(context.Background(), model.MustLookup("volume"), 2.5)
	assert.ErrorIs(t, err, ErrInvalidValue)
	assert.Empty(t, dev.Requests())
}

func TestSetBool(t *testing.T) {
	c, dev := newTestClient(t)
	dev.SetInt(model.PathMute, "u8", 0)

	ok, err := c.Set(context.Background(), model.MustLookup("mute"), true)
	require.NoError(t, err)
	assert.True(t, ok)
	got, _ := dev.Value(model.PathMute)
	assert.Equal(t, "1", got)
}

func presetItems(n int) []fsapitest.Item {
	items := make([]fsapitest.Item, n)
	for i := range items {
		items[i] = fsapitest.Item{
			Key:    fmt.Sprint(i),
			Fields: []fsapitest.Field{fsapitest.Str("name", fmt.Sprintf("preset %d", i))},
		}
	}
	return items
}

func TestListReturnsFirstPageOnly(t *testing.T) {
	c, dev := newTestClient(t)
	dev.SetList(model.PathPresets, presetItems(10))

	records, err := c.List(context.Background(), model.MustLookup("listPresets"))
	require.NoError(t, err)
	assert.Len(t, records, model.PresetsPageSize)
	assert.Len(t, dev.Requests(), 1)
}

func TestListAll(t *testing.T) {
	c, dev := newTestClient(t)
	dev.SetList(model.PathPresets, presetItems(17))

	records, err := c.ListAll(context.Background(), model.MustLookup("listPresets"))
	require.NoError(t, err)
	require.Len(t, records, 17)
	for i, r := range records {
		assert.Equal(t, fmt.Sprint(i), r.Key)
	}

	reqs := dev.Requests()
	require.Len(t, reqs, 3)
	assert.Equal(t, "-1", reqs[0].Item)
	assert.Equal(t, "6", reqs[1].Item)
	assert.Equal(t, "13", reqs[2].Item)
}

func TestListAllExactMultiple(t *testing.T) {
	c, dev := newTestClient(t)
	dev.SetList(model.PathPresets, presetItems(14))

	records, err := c.ListAll(context.Background(), model.MustLookup("listPresets"))
	require.NoError(t, err)
	assert.Len(t, records, 14)
}

func TestListAllEmpty(t *testing.T) {
	c, dev := newTestClient(t)
	dev.SetList(model.PathPresets, nil)

	records, err := c.ListAll(context.Background(), model.MustLookup("listPresets"))
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Len(t, dev.Requests(), 1)
}

func TestListAllStalledCursor(t *testing.T) {
	c, dev := newTestClient(t)
	dev.SetRaw(model.PathPresets, `<fsapiResponse><status>FS_OK</status>`+
		`<item key="0"><field name="name"><c8_array>a</c8_array></field></item>`+
		`<item key="1"><field name="name"><c8_array>b</c8_array></field></item>`+
		`<item key="2"><field name="name"><c8_array>c</c8_array></field></item>`+
		`<item key="3"><field name="name"><c8_array>d</c8_array></field></item>`+
		`<item key="4"><field name="name"><c8_array>e</c8_array></field></item>`+
		`<item key="5"><field name="name"><c8_array>f</c8_array></field></item>`+
		`<item key="6"><field name="name"><c8_array>g</c8_array></field></item>`+
		`</fsapiResponse>`)

	records, err := c.ListAll(context.Background(), model.MustLookup("listPresets"))
	assert.ErrorIs(t, err, ErrCursorStalled)
	assert.Len(t, records, 14)
}

func TestListPage(t *testing.T) {
	c, dev := newTestClient(t)
	dev.SetList(model.PathPresets, presetItems(5))
	presets := model.MustLookup("listPresets")

	page, err := c.ListPage(context.Background(), presets, "", 2)
	require.NoError(t, err)
	assert.Len(t, page.Records, 2)
	assert.False(t, page.End)
	assert.Equal(t, "1", page.Next())

	page, err = c.ListPage(context.Background(), presets, page.Next(), 10)
	require.NoError(t, err)
	assert.Len(t, page.Records, 3)
	assert.True(t, page.End)
}

func TestCustomResource(t *testing.T) {
	c, dev := newTestClient(t)
	dev.SetInt("netremote.sys.sleep", "u32", 600)

	res, err := model.Custom("netremote.sys.sleep", model.AccessReadWrite)
	require.NoError(t, err)

	v, err := c.Get(context.Background(), res)
	require.NoError(t, err)
	assert.Equal(t, "600", v.String())
}

func TestClientResource(t *testing.T) {
	c, _ := newTestClient(t)

	a, err := c.Resource("netremote.sys.audio.volume")
	require.NoError(t, err)
	assert.Equal(t, "volume", a.Resource().Name)

	_, err = c.Resource("treble")
	assert.ErrorIs(t, err, ErrUnknownResource)
}

func TestTransportErrorSurfaces(t *testing.T) {
	c, err := NewClient(transport.Config{Host: "127.0.0.1:1", PIN: "1234"})
	require.NoError(t, err)

	_, err = c.Get(context.Background(), model.MustLookup("power"))
	var te *transport.TransportError
	assert.True(t, errors.As(err, &te))
}
