package interaction

import (
	"reflect"
	"strings"

	"github.com/multiroom/fsapi-go/pkg/model"
)

// Speaker exposes every catalog resource of a device as a named Accessor.
// Descriptions of the enum-valued resources are in model.Catalog.
type Speaker struct {
	// Identity
	Name     *Accessor
	MAC      *Accessor
	Version  *Accessor
	VendorID *Accessor

	// Audio
	Mute        *Accessor
	Volume      *Accessor
	VolumeSteps *Accessor
	EQCustom0   *Accessor
	EQCustom1   *Accessor

	// Multi-room group
	GroupMasterVolume *Accessor
	GroupID           *Accessor
	GroupName         *Accessor
	GroupState        *Accessor

	// Navigation
	CurrentPreset *Accessor
	Presets       *Accessor
	SelectPreset  *Accessor
	NavState      *Accessor

	// Now playing
	PlayStatus         *Accessor
	PlayCaps           *Accessor
	PlayDuration       *Accessor
	PlayImageURI       *Accessor
	PlayArtist         *Accessor
	PlayAlbum          *Accessor
	PlayName           *Accessor
	PlayPosition       *Accessor
	PlayShuffle        *Accessor
	PlayRepeat         *Accessor
	SpotifyPlaylist    *Accessor
	SpotifyPlaylistURI *Accessor
	PlayControl        *Accessor

	// System
	Power *Accessor
	Modes *Accessor

	// Devices
	MultiroomDevices *Accessor
	BluetoothDevices *Accessor

	client *Client
	all    []*Accessor
	byName map[string]*Accessor
}

var accessorType = reflect.TypeOf((*Accessor)(nil))

// NewSpeaker binds one Accessor per catalog entry. No I/O is performed.
func NewSpeaker(c *Client) *Speaker {
	s := &Speaker{
		client: c,
		byName: make(map[string]*Accessor),
	}

	fields := reflect.ValueOf(s).Elem()
	for _, res := range model.Catalog() {
		a := c.Accessor(res)
		if f := fields.FieldByName(res.GoName); f.IsValid() && f.CanSet() && f.Type() == accessorType {
			f.Set(reflect.ValueOf(a))
		}
		s.all = append(s.all, a)
		s.byName[strings.ToLower(res.Name)] = a
		s.byName[strings.ToLower(res.GoName)] = a
		s.byName[res.Path] = a
	}
	return s
}

// Client returns the underlying client.
func (s *Speaker) Client() *Client {
	return s.client
}

// Accessors returns all accessors in catalog order.
func (s *Speaker) Accessors() []*Accessor {
	out := make([]*Accessor, len(s.all))
	copy(out, s.all)
	return out
}

// Accessor finds an accessor by short name, Go name or path.
func (s *Speaker) Accessor(name string) (*Accessor, bool) {
	name = strings.TrimSpace(name)
	if a, ok := s.byName[name]; ok {
		return a, true
	}
	a, ok := s.byName[strings.ToLower(name)]
	return a, ok
}
