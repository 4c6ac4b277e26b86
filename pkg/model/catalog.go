package model

import (
	"strings"

	"github.com/multiroom/fsapi-go/pkg/wire"
)

// Resource paths.
const (
	PathFriendlyName       = "netremote.sys.info.friendlyname"
	PathMACAddress         = "netremote.sys.net.wlan.macaddress"
	PathVersion            = "netremote.sys.info.version"
	PathVendorID           = "netremote.sys.info.netremotevendorid"
	PathMute               = "netremote.sys.audio.mute"
	PathVolume             = "netremote.sys.audio.volume"
	PathVolumeSteps        = "netremote.sys.caps.volumesteps"
	PathEQCustomParam0     = "netremote.sys.audio.eqcustom.param0"
	PathEQCustomParam1     = "netremote.sys.audio.eqcustom.param1"
	PathGroupMasterVolume  = "netremote.multiroom.group.mastervolume"
	PathGroupID            = "netremote.multiroom.group.id"
	PathGroupName          = "netremote.multiroom.group.name"
	PathGroupState         = "netremote.multiroom.group.state"
	PathCurrentPreset      = "netremote.nav.preset.currentpreset"
	PathPresets            = "netremote.nav.presets"
	PathSelectPreset       = "netremote.nav.action.selectpreset"
	PathNavState           = "netremote.nav.state"
	PathPlayStatus         = "netremote.play.status"
	PathPlayCaps           = "netremote.play.caps"
	PathPlayDuration       = "netremote.play.info.duration"
	PathPlayGraphicURI     = "netremote.play.info.graphicuri"
	PathPlayArtist         = "netremote.play.info.artist"
	PathPlayAlbum          = "netremote.play.info.album"
	PathPlayName           = "netremote.play.info.name"
	PathPlayPosition       = "netremote.play.position"
	PathPlayShuffle        = "netremote.play.shuffle"
	PathPlayRepeat         = "netremote.play.repeat"
	PathPlayControl        = "netremote.play.control"
	PathSpotifyPlaylist    = "netremote.spotify.playlist.name"
	PathSpotifyPlaylistURI = "netremote.spotify.playlist.uri"
	PathPower              = "netremote.sys.power"
	PathValidModes         = "netremote.sys.caps.validmodes"
	PathMultiroomDevices   = "netremote.multiroom.device.listall"
	PathBluetoothDevices   = "netremote.bluetooth.connecteddevices"
)

// Page sizes for list resources.
const (
	PresetsPageSize = 7
	ModesPageSize   = 20
)

// PresetSchema lists the decoded fields of a preset record.
var PresetSchema = wire.Schema{
	{Name: "name", Decoder: wire.DecodeString},
	{Name: "type", Decoder: wire.DecodeString},
	{Name: "artworkurl", Decoder: wire.DecodeString},
	{Name: "blob", Decoder: wire.DecodeString},
	{Name: "playlisturl", Decoder: wire.DecodeString},
	{Name: "uniqid", Decoder: wire.DecodeString},
}

// ModeSchema lists the decoded fields of a mode record.
var ModeSchema = wire.Schema{
	{Name: "id", Decoder: wire.DecodeString},
	{Name: "label", Decoder: wire.DecodeString},
	{Name: "selectable", Decoder: wire.DecodeBool},
	{Name: "streamable", Decoder: wire.DecodeBool},
	{Name: "modetype", Decoder: wire.DecodeBool},
}

// MultiroomDeviceSchema lists the decoded fields of a multi-room peer record.
var MultiroomDeviceSchema = wire.Schema{
	{Name: "udn", Decoder: wire.DecodeString},
	{Name: "friendlyname", Decoder: wire.DecodeString},
	{Name: "ipaddress", Decoder: wire.DecodeString},
	{Name: "groupid", Decoder: wire.DecodeString},
	{Name: "groupname", Decoder: wire.DecodeString},
}

// BluetoothDeviceSchema lists the decoded fields of a connected bluetooth
// device record.
var BluetoothDeviceSchema = wire.Schema{
	{Name: "devicename", Decoder: wire.DecodeString},
	{Name: "deviceaddress", Decoder: wire.DecodeString},
	{Name: "devicestate", Decoder: wire.DecodeBool},
}

var catalog = []Resource{
	// Identity
	{Name: "name", GoName: "Name", Path: PathFriendlyName, Access: AccessReadOnly, Type: DataTypeString,
		Description: "Friendly name of the speaker"},
	{Name: "mac", GoName: "MAC", Path: PathMACAddress, Access: AccessReadOnly, Type: DataTypeString,
		Description: "WLAN MAC address"},
	{Name: "version", GoName: "Version", Path: PathVersion, Access: AccessReadOnly, Type: DataTypeString,
		Description: "Firmware version string"},
	{Name: "vendorId", GoName: "VendorID", Path: PathVendorID, Access: AccessReadOnly, Type: DataTypeString,
		Description: "Netremote vendor identifier"},

	// Audio
	{Name: "mute", GoName: "Mute", Path: PathMute, Access: AccessReadWrite, Type: DataTypeBool,
		Description: "0: unmuted, 1: muted"},
	{Name: "volume", GoName: "Volume", Path: PathVolume, Access: AccessReadWrite, Type: DataTypeInt,
		Description: "Volume step, 0 to volumeSteps-1"},
	{Name: "volumeSteps", GoName: "VolumeSteps", Path: PathVolumeSteps, Access: AccessReadOnly, Type: DataTypeInt,
		Description: "Number of volume steps"},
	{Name: "eqCustom0", GoName: "EQCustom0", Path: PathEQCustomParam0, Access: AccessReadWrite, Type: DataTypeInt,
		Description: "Custom equalizer parameter 0 (bass)"},
	{Name: "eqCustom1", GoName: "EQCustom1", Path: PathEQCustomParam1, Access: AccessReadWrite, Type: DataTypeInt,
		Description: "Custom equalizer parameter 1 (treble)"},

	// Multi-room group
	{Name: "groupMasterVolume", GoName: "GroupMasterVolume", Path: PathGroupMasterVolume, Access: AccessReadWrite, Type: DataTypeInt,
		Description: "Master volume of the multi-room group"},
	{Name: "groupId", GoName: "GroupID", Path: PathGroupID, Access: AccessReadOnly, Type: DataTypeString,
		Description: "Multi-room group identifier"},
	{Name: "groupName", GoName: "GroupName", Path: PathGroupName, Access: AccessReadOnly, Type: DataTypeString,
		Description: "Multi-room group name"},
	{Name: "groupState", GoName: "GroupState", Path: PathGroupState, Access: AccessReadOnly, Type: DataTypeEnum,
		Description: "0: no group, 1: client, 2: server"},

	// Navigation
	{Name: "currentPreset", GoName: "CurrentPreset", Path: PathCurrentPreset, Access: AccessReadOnly, Type: DataTypeInt,
		Description: "Index of the active preset; not settable, use selectPreset"},
	{Name: "listPresets", GoName: "Presets", Path: PathPresets, Access: AccessList, Type: DataTypeRecords,
		Schema: PresetSchema, PageSize: PresetsPageSize,
		Description: "Stored presets"},
	{Name: "selectPreset", GoName: "SelectPreset", Path: PathSelectPreset, Access: AccessWriteOnly, Type: DataTypeInt,
		Description: "Play the preset with the given key"},
	{Name: "state", GoName: "NavState", Path: PathNavState, Access: AccessWriteOnly, Type: DataTypeInt,
		Description: "Navigation state; set 1 before selecting a preset"},

	// Now playing
	{Name: "playStatus", GoName: "PlayStatus", Path: PathPlayStatus, Access: AccessReadOnly, Type: DataTypeEnum,
		Description: "0: idle (bluetooth not connected, AUX/RCA), 2: playing, 3: paused (spotify), 6: stopped (streaming)"},
	{Name: "playCaps", GoName: "PlayCaps", Path: PathPlayCaps, Access: AccessReadOnly, Type: DataTypeInt,
		Description: "Playback capability bitmap"},
	{Name: "playDuration", GoName: "PlayDuration", Path: PathPlayDuration, Access: AccessReadOnly, Type: DataTypeInt,
		Description: "Track duration in milliseconds"},
	{Name: "playImgUri", GoName: "PlayImageURI", Path: PathPlayGraphicURI, Access: AccessReadOnly, Type: DataTypeString,
		Description: "Artwork URL of the current track"},
	{Name: "playArtist", GoName: "PlayArtist", Path: PathPlayArtist, Access: AccessReadOnly, Type: DataTypeString,
		Description: "Artist of the current track"},
	{Name: "playAlbum", GoName: "PlayAlbum", Path: PathPlayAlbum, Access: AccessReadOnly, Type: DataTypeString,
		Description: "Album of the current track"},
	{Name: "playName", GoName: "PlayName", Path: PathPlayName, Access: AccessReadOnly, Type: DataTypeString,
		Description: "Title of the current track or station"},
	{Name: "playPosition", GoName: "PlayPosition", Path: PathPlayPosition, Access: AccessReadOnly, Type: DataTypeInt,
		Description: "Playback position in milliseconds"},
	{Name: "playShuffle", GoName: "PlayShuffle", Path: PathPlayShuffle, Access: AccessReadWrite, Type: DataTypeBool,
		Description: "0: off, 1: on"},
	{Name: "playRepeat", GoName: "PlayRepeat", Path: PathPlayRepeat, Access: AccessReadWrite, Type: DataTypeBool,
		Description: "0: off, 1: on"},
	{Name: "playSpotifyPlaylist", GoName: "SpotifyPlaylist", Path: PathSpotifyPlaylist, Access: AccessReadOnly, Type: DataTypeString,
		Description: "Name of the active Spotify playlist"},
	{Name: "playSpotifyPlaylistUri", GoName: "SpotifyPlaylistURI", Path: PathSpotifyPlaylistURI, Access: AccessReadOnly, Type: DataTypeString,
		Description: "URI of the active Spotify playlist"},
	{Name: "playControl", GoName: "PlayControl", Path: PathPlayControl, Access: AccessWriteOnly, Type: DataTypeEnum,
		Description: "0: play/stop (radio), 2: play/pause (spotify), 3: next, 4: previous"},

	// System
	{Name: "power", GoName: "Power", Path: PathPower, Access: AccessReadWrite, Type: DataTypeBool,
		Description: "0: standby, 1: on"},
	{Name: "listModes", GoName: "Modes", Path: PathValidModes, Access: AccessList, Type: DataTypeRecords,
		Schema: ModeSchema, PageSize: ModesPageSize,
		Description: "Selectable input modes"},

	// Peers
	{Name: "listMultiroomDevices", GoName: "MultiroomDevices", Path: PathMultiroomDevices, Access: AccessList, Type: DataTypeRecords,
		Schema: MultiroomDeviceSchema, PageSize: DefaultPageSize,
		Description: "Multi-room speakers visible to this device"},
	{Name: "listBluetoothDevices", GoName: "BluetoothDevices", Path: PathBluetoothDevices, Access: AccessList, Type: DataTypeRecords,
		Schema: BluetoothDeviceSchema, PageSize: DefaultPageSize,
		Description: "Connected bluetooth sources"},
}

var catalogIndex = func() map[string]int {
	idx := make(map[string]int, 3*len(catalog))
	for i, r := range catalog {
		idx[strings.ToLower(r.Name)] = i
		idx[strings.ToLower(r.GoName)] = i
		idx[r.Path] = i
	}
	return idx
}()

// Catalog returns a copy of the resource catalog in declaration order.
func Catalog() []Resource {
	out := make([]Resource, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup finds a catalog resource by short name, Go name (both
// case-insensitive) or dotted path.
func Lookup(name string) (Resource, bool) {
	name = strings.TrimSpace(name)
	i, ok := catalogIndex[name]
	if !ok {
		i, ok = catalogIndex[strings.ToLower(name)]
	}
	if !ok {
		return Resource{}, false
	}
	return catalog[i], true
}

// MustLookup is like Lookup but panics if the resource is unknown.
func MustLookup(name string) Resource {
	r, ok := Lookup(name)
	if !ok {
		panic("model: unknown resource " + name)
	}
	return r
}
