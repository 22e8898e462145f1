// Command play renders oscgen generators to the speakers: a single tone or
// noise color, or the notes of a standard MIDI file.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/pkg/errors"

	"github.com/Alextopher/oscgen"
	"github.com/Alextopher/oscgen/generators"
)

func main() {
	var (
		wave  = flag.String("wave", "sine", "sine|saw|square|triangle|white|pink|brown")
		freq  = flag.Float64("freq", 440, "tone frequency in Hz")
		dur   = flag.Duration("dur", 2*time.Second, "how long to play")
		gain  = flag.Float64("gain", 0.5, "output gain")
		naive = flag.Bool("naive", false, "skip band-limiting (aliased reference)")
		midi  = flag.String("midi", "", "play a standard MIDI file instead of a single tone")
	)
	flag.Parse()

	sr := beep.SampleRate(48000)
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if *midi != "" {
		if err := playMIDI(sr, *midi, *gain); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		return
	}

	g, err := makeStreamer(sr, *wave, *freq, *naive)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	fmt.Printf("playing %s for %v\n", *wave, *dur)

	done := make(chan struct{})
	speaker.Play(beep.Seq(
		beep.Take(sr.N(*dur), &generators.Amplitude{Streamer: g, Gain: *gain}),
		beep.Callback(func() { close(done) }),
	))
	<-done
}

func makeStreamer(sr beep.SampleRate, wave string, freq float64, naive bool) (beep.Streamer, error) {
	switch strings.ToLower(wave) {
	case "white":
		return generators.WhiteNoise(), nil
	case "pink":
		return generators.PinkNoise(), nil
	case "brown":
		return generators.BrownNoise(), nil
	}

	w, err := parseWaveform(wave)
	if err != nil {
		return nil, err
	}
	if naive {
		return generators.NaiveTone(sr, freq, w)
	}
	return generators.Tone(sr, freq, w)
}

func parseWaveform(s string) (oscgen.Waveform, error) {
	switch strings.ToLower(s) {
	case "sine":
		return oscgen.Sine, nil
	case "saw", "sawtooth":
		return oscgen.Saw, nil
	case "square":
		return oscgen.Square, nil
	case "triangle":
		return oscgen.Triangle, nil
	}
	return 0, errors.Errorf("unknown waveform %q", s)
}
