package fsapitest

import (
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fetch(t *testing.T, d *Device, path string) (int, string) {
	t.Helper()
	resp, err := http.Get("http://" + d.Host() + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestDeviceGetAndSet(t *testing.T) {
	d := New(t)
	d.SetInt("netremote.sys.audio.volume", "u8", 5)

	code, body := fetch(t, d, "/fsapi/GET/netremote.sys.audio.volume/?pin=1234")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "<value><u8>5</u8></value>")

	_, body = fetch(t, d, "/fsapi/SET/netremote.sys.audio.volume/?pin=1234&value=9")
	assert.Contains(t, body, "<status>FS_OK</status>")
	v, ok := d.Value("netremote.sys.audio.volume")
	assert.True(t, ok)
	assert.Equal(t, "9", v)

	_, body = fetch(t, d, "/fsapi/GET/netremote.sys.unknown/?pin=1234")
	assert.Contains(t, body, "FS_NODE_DOES_NOT_EXIST")
}

func TestDeviceRejectsWrongPIN(t *testing.T) {
	d := New(t)
	code, body := fetch(t, d, "/fsapi/GET/netremote.sys.power/?pin=0000")
	assert.Equal(t, http.StatusForbidden, code)
	assert.Empty(t, body)
}

func TestDeviceListPaging(t *testing.T) {
	d := New(t)
	d.SetList("netremote.nav.presets", []Item{
		{Key: "0", Fields: []Field{Str("name", "A")}},
		{Key: "1", Fields: []Field{Str("name", "B")}},
		{Key: "2", Fields: []Field{Str("name", "C & D")}},
	})

	_, body := fetch(t, d, "/fsapi/LIST_GET_NEXT/netremote.nav.presets/-1?pin=1234&maxItems=2")
	assert.Contains(t, body, `<item key="0">`)
	assert.Contains(t, body, `<item key="1">`)
	assert.NotContains(t, body, "<listend/>")

	_, body = fetch(t, d, "/fsapi/LIST_GET_NEXT/netremote.nav.presets/1?pin=1234&maxItems=2")
	assert.Contains(t, body, "C &amp; D")
	assert.Contains(t, body, "<listend/>")

	_, body = fetch(t, d, "/fsapi/LIST_GET_NEXT/netremote.nav.presets/2?pin=1234&maxItems=2")
	assert.Contains(t, body, "FS_LIST_END")

	assert.Len(t, d.Requests(), 3)
	assert.Equal(t, "1", d.Requests()[1].Item)
}
