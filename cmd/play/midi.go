package main

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/reader"

	"github.com/Alextopher/oscgen"
	"github.com/Alextopher/oscgen/generators"
)

type noteEvent struct {
	start time.Duration
	dur   time.Duration
	freq  float64
	vel   uint8
}

// loadNotes reads a standard MIDI file and flattens it into note events with
// real-time starts and durations (tempo changes accounted for by the reader).
func loadNotes(filename string) ([]noteEvent, error) {
	type noteKey struct {
		track   int16
		channel uint8
		key     uint8
	}
	type noteOn struct {
		at  time.Duration
		vel uint8
	}

	open := make(map[noteKey]noteOn)
	notes := make([]noteEvent, 0)

	var rd *reader.Reader
	on := func(p *reader.Position, channel, key, vel uint8) {
		open[noteKey{p.Track, channel, key}] = noteOn{*reader.TimeAt(rd, p.AbsoluteTicks), vel}
	}
	off := func(p *reader.Position, channel, key, vel uint8) {
		k := noteKey{p.Track, channel, key}
		started, ok := open[k]
		if !ok {
			return
		}
		delete(open, k)

		at := *reader.TimeAt(rd, p.AbsoluteTicks)
		notes = append(notes, noteEvent{
			start: started.at,
			dur:   at - started.at,
			freq:  midiNoteToFreq(key),
			vel:   started.vel,
		})
	}

	rd = reader.New(reader.NoLogger(), reader.NoteOn(on), reader.NoteOff(off))
	if err := reader.ReadSMFFile(rd, filename); err != nil {
		return nil, errors.Wrapf(err, "reading %s", filename)
	}

	sort.Slice(notes, func(i, j int) bool {
		return notes[i].start < notes[j].start
	})

	return notes, nil
}

func midiNoteToFreq(note uint8) float64 {
	return math.Pow(2, float64(note)/12.0) * 8.1758
}

// playMIDI schedules every note of the file on the speaker in real time,
// each rendered by a band-limited square oscillator.
func playMIDI(sr beep.SampleRate, filename string, gain float64) error {
	notes, err := loadNotes(filename)
	if err != nil {
		return err
	}

	fmt.Printf("playing %d notes from %s\n", len(notes), filename)

	start := time.Now()
	for _, n := range notes {
		time.Sleep(time.Until(start.Add(n.start)))

		g, err := generators.Tone(sr, n.freq, oscgen.Square)
		if err != nil {
			fmt.Println(err)
			continue
		}

		amp := &generators.Amplitude{Streamer: g, Gain: gain * float64(n.vel) / 127}
		samples := sr.N(n.dur)

		// play an integer number of cycles to avoid popping
		if wl := int(float64(sr) / n.freq); wl > 0 {
			samples = (samples / wl) * wl
		}

		speaker.Play(beep.Take(samples, amp))
	}

	// let the last notes ring out
	time.Sleep(time.Second)
	return nil
}
