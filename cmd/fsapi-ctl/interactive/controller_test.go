package interactive

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/multiroom/fsapi-go/internal/fsapitest"
	"github.com/multiroom/fsapi-go/pkg/inspect"
	"github.com/multiroom/fsapi-go/pkg/interaction"
	"github.com/multiroom/fsapi-go/pkg/model"
	"github.com/multiroom/fsapi-go/pkg/transport"
	"github.com/multiroom/fsapi-go/pkg/wire"
)

func newTestController(t *testing.T) (*Controller, *fsapitest.Device, *bytes.Buffer) {
	t.Helper()
	dev := fsapitest.New(t)
	client, err := interaction.NewClient(transport.Config{Host: dev.Host(), PIN: dev.PIN})
	require.NoError(t, err)

	var out bytes.Buffer
	return New(client, &out), dev, &out
}

func exec(t *testing.T, c *Controller, args ...string) error {
	t.Helper()
	return c.Exec(context.Background(), args)
}

func TestGet(t *testing.T) {
	c, dev, out := newTestController(t)
	dev.SetInt(model.PathVolume, "u8", 20)
	dev.SetInt(model.PathPower, "u8", 1)

	require.NoError(t, exec(t, c, "get", "volume", "Power"))

	assert.Contains(t, out.String(), "volume = 20\n")
	assert.Contains(t, out.String(), "power = 1 (ON)\n")
}

func TestGetUsage(t *testing.T) {
	c, _, _ := newTestController(t)
	assert.ErrorIs(t, exec(t, c, "get"), ErrUsage)
}

func TestGetUnknownName(t *testing.T) {
	c, _, _ := newTestController(t)
	err := exec(t, c, "get", "loudness")
	require.Error(t, err)
}

func TestSet(t *testing.T) {
	c, dev, out := newTestController(t)
	dev.SetInt(model.PathPower, "u8", 0)

	require.NoError(t, exec(t, c, "set", "power", "on"))
	got, _ := dev.Value(model.PathPower)
	assert.Equal(t, "1", got)
	assert.Contains(t, out.String(), "power set to on")
}

func TestSetRejected(t *testing.T) {
	c, dev, _ := newTestController(t)
	dev.SetInt(model.PathVolume, "u8", 10)
	dev.SetReadOnly(model.PathVolume)

	assert.ErrorIs(t, exec(t, c, "set", "volume", "99"), ErrSetRejected)
}

func TestSetReadOnlyResource(t *testing.T) {
	c, dev, _ := newTestController(t)

	assert.ErrorIs(t, exec(t, c, "set", "name", "Kitchen"), model.ErrNotWritable)
	assert.Empty(t, dev.Requests(), "capability check happens before any request")
}

func TestSetInvalidValue(t *testing.T) {
	c, _, _ := newTestController(t)
	assert.Error(t, exec(t, c, "set", "mute", "maybe"))
	assert.ErrorIs(t, exec(t, c, "set", "volume"), ErrUsage)
}

func presetItems() []fsapitest.Item {
	return []fsapitest.Item{
		{Key: "0", Fields: []fsapitest.Field{fsapitest.Str("name", "Radio One")}},
		{Key: "1", Fields: []fsapitest.Field{fsapitest.Str("name", "Jazz")}},
		{Key: "2", Fields: []fsapitest.Field{fsapitest.Str("name", "News")}},
	}
}

func TestList(t *testing.T) {
	c, dev, out := newTestController(t)
	dev.SetList(model.PathPresets, presetItems())

	require.NoError(t, exec(t, c, "list", "presets"))

	assert.Contains(t, out.String(), "listPresets (3 records):")
	assert.Contains(t, out.String(), `[0] name="Radio One"`)
	assert.Contains(t, out.String(), `[2] name="News"`)
}

func TestListAll(t *testing.T) {
	c, dev, out := newTestController(t)
	items := make([]fsapitest.Item, 0, 10)
	for i := 0; i < 10; i++ {
		items = append(items, fsapitest.Item{
			Key:    string(rune('a' + i)),
			Fields: []fsapitest.Field{fsapitest.Str("name", "p")},
		})
	}
	dev.SetList(model.PathPresets, items)

	require.NoError(t, exec(t, c, "list", "presets"))
	assert.Contains(t, out.String(), "(7 records)")

	out.Reset()
	require.NoError(t, exec(t, c, "list", "-all", "presets"))
	assert.Contains(t, out.String(), "(10 records)")
}

func TestListUsage(t *testing.T) {
	c, _, _ := newTestController(t)
	assert.ErrorIs(t, exec(t, c, "list"), ErrUsage)
	assert.ErrorIs(t, exec(t, c, "list", "presets", "modes"), ErrUsage)
	assert.ErrorIs(t, exec(t, c, "list", "volume"), model.ErrNotListable)
}

func TestDump(t *testing.T) {
	c, dev, out := newTestController(t)
	dev.SetInt(model.PathVolume, "u8", 12)
	dev.SetString(model.PathFriendlyName, "Kitchen")

	require.NoError(t, exec(t, c, "dump"))

	assert.Contains(t, out.String(), "volume = 12")
	assert.Contains(t, out.String(), `name = "Kitchen"`)
	assert.Contains(t, out.String(), "playArtist = <none>")
	assert.NotContains(t, out.String(), "playControl", "write-only resources are skipped")
}

func TestCatalog(t *testing.T) {
	c, _, out := newTestController(t)

	require.NoError(t, exec(t, c, "catalog"))
	assert.Contains(t, out.String(), "NAME")
	assert.Contains(t, out.String(), model.PathVolume)
}

func TestCatalogYAML(t *testing.T) {
	c, _, out := newTestController(t)

	require.NoError(t, exec(t, c, "catalog", "-yaml"))

	var entries []catalogEntry
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &entries))
	assert.Len(t, entries, len(model.Catalog()))

	var presets catalogEntry
	for _, e := range entries {
		if e.Name == "listPresets" {
			presets = e
		}
	}
	assert.Equal(t, model.PathPresets, presets.Path)
	assert.Equal(t, "L", presets.Access)
	assert.Equal(t, 7, presets.PageSize)
	assert.Contains(t, presets.Fields, "uniqid")

	assert.ErrorIs(t, exec(t, c, "catalog", "-json"), ErrUsage)
}

func TestNames(t *testing.T) {
	c, _, out := newTestController(t)

	require.NoError(t, exec(t, c, "names", "vol"))
	assert.Equal(t, "volume\nvolumeSteps\n", out.String())
}

func TestRaw(t *testing.T) {
	c, dev, out := newTestController(t)
	dev.SetInt(model.PathVolume, "u8", 20)

	require.NoError(t, exec(t, c, "raw", "get", "volume"))
	assert.Contains(t, out.String(), "status: FS_OK")
	assert.Contains(t, out.String(), "u8: 20")

	reqs := dev.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, wire.OpGet, reqs[0].Operation)
	assert.Equal(t, model.PathVolume, reqs[0].Resource)
}

func TestRawWithItemAndParams(t *testing.T) {
	c, dev, _ := newTestController(t)
	dev.SetList(model.PathPresets, presetItems())

	require.NoError(t, exec(t, c, "raw", "list_get_next", "presets", "-1", "maxItems=1"))

	reqs := dev.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, wire.OpListGetNext, reqs[0].Operation)
	assert.Equal(t, "-1", reqs[0].Item)
	assert.Equal(t, "1", reqs[0].Query.Get(wire.ParamMaxItems))
}

func TestRawErrors(t *testing.T) {
	c, _, _ := newTestController(t)
	assert.ErrorIs(t, exec(t, c, "raw", "get"), ErrUsage)
	assert.Error(t, exec(t, c, "raw", "delete", "volume"))
	assert.ErrorIs(t, exec(t, c, "raw", "get", "volume", "-1", "broken"), inspect.ErrInvalidInput)
}

func TestUnknownCommand(t *testing.T) {
	c, _, _ := newTestController(t)
	assert.ErrorIs(t, exec(t, c, "reboot"), ErrUnknownCmd)
	assert.NoError(t, exec(t, c))
}

func TestHelp(t *testing.T) {
	c, _, out := newTestController(t)
	require.NoError(t, exec(t, c, "help"))
	assert.Contains(t, out.String(), "FSAPI Controller Commands")
}
