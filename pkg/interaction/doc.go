// Package interaction exposes FSAPI resources as typed operations.
//
// A Client performs GET, SET and LIST_GET_NEXT exchanges for any
// model.Resource and converts the responses into wire.Value results, SET
// outcomes and wire.Record lists. An Accessor binds a Client to one resource
// and enforces its capability flags before any network I/O. A Speaker
// exposes one Accessor per catalog entry as a named field:
//
//	client, err := interaction.NewClient(transport.Config{Host: "192.168.1.40", PIN: "1234"})
//	if err != nil {
//	    return err
//	}
//	speaker := interaction.NewSpeaker(client)
//
//	vol, err := speaker.Volume.Get(ctx)
//	ok, err := speaker.Mute.Set(ctx, true)
//	presets, err := speaker.Presets.List(ctx)
//
// Device-side failures are part of the result, not errors: a failed SET
// returns false and a GET on an unsupported resource returns an absent
// value. Errors report transport failures, malformed responses, forbidden
// operations and unsupported SET values.
package interaction
