package generators

import (
	"github.com/faiface/beep"

	"github.com/Alextopher/oscgen/noise"
)

// WhiteNoise creates an infinite white noise streamer.
func WhiteNoise() beep.Streamer {
	return &streamer{noise.NewWhite()}
}

// PinkNoise creates an infinite pink noise streamer.
func PinkNoise() beep.Streamer {
	return &streamer{noise.NewPink()}
}

// BrownNoise creates an infinite brown noise streamer.
func BrownNoise() beep.Streamer {
	return &streamer{noise.NewBrown()}
}
