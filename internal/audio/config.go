package audio

import (
	"github.com/gen2brain/malgo"
)

// DeviceConfig describes the PCM stream handed to a playback device.
type DeviceConfig struct {
	Format           malgo.FormatType
	PlaybackChannels int
	SampleRate       int
}
