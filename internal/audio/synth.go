package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep/v2"
)

// WaveType selects an oscillator shape.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator renders one wave shape at a fixed frequency, forever or for a
// fixed number of samples.
type oscillator struct {
	freq     float64
	phase    float64
	duration int // samples, 0 means unbounded
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    uint32
}

func newOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) *oscillator {
	o := &oscillator{freq: freq, wave: wave, rate: rate, noise: 0x1234567}
	if duration > 0 {
		o.duration = rate.N(duration)
	}
	return o
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.duration > 0 && o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			// xorshift keeps noise deterministic across runs
			o.noise ^= o.noise << 13
			o.noise ^= o.noise >> 17
			o.noise ^= o.noise << 5
			val = float64(o.noise)/float64(math.MaxUint32)*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a finite stream.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) *envelope {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.totalSamples {
		return 0, false
	}
	if rem := e.totalSamples - e.position; len(samples) > rem {
		samples = samples[:rem]
	}
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// pentatonic is the scale sequences are built on, in semitones.
var pentatonic = [5]int{0, 2, 4, 7, 9}

// sequenceStreamer loops a short melody derived from a sequence id.
type sequenceStreamer struct {
	rate    beep.SampleRate
	notes   []float64
	noteLen int
	wave    WaveType

	note    int
	current beep.Streamer
}

func newSequenceStreamer(rate beep.SampleRate, seqID uint16) *sequenceStreamer {
	const steps = 8
	root := 48 + int(seqID%12) // MIDI note
	notes := make([]float64, steps)
	for i := range notes {
		step := (i*3 + int(seqID)) % (len(pentatonic) * 2)
		semis := pentatonic[step%len(pentatonic)] + 12*(step/len(pentatonic))
		notes[i] = midiFreq(root + semis)
	}
	return &sequenceStreamer{
		rate:    rate,
		notes:   notes,
		noteLen: rate.N(200 * time.Millisecond),
		wave:    WaveType(seqID % 3),
	}
}

func midiFreq(note int) float64 {
	return 440 * math.Pow(2, float64(note-69)/12)
}

func (s *sequenceStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) {
		if s.current == nil {
			freq := s.notes[s.note%len(s.notes)]
			dur := s.rate.D(s.noteLen)
			s.current = newEnvelope(newOscillator(freq, dur, s.wave, s.rate), dur, 10*time.Millisecond, 60*time.Millisecond, s.rate)
			s.note++
		}
		m, more := s.current.Stream(samples[n:])
		for i := n; i < n+m; i++ {
			samples[i][0] *= 0.25
			samples[i][1] *= 0.25
		}
		n += m
		if !more || m == 0 {
			s.current = nil
		}
	}
	return n, true
}

func (s *sequenceStreamer) Err() error { return nil }

// soundStreamer renders a one-shot effect for a packed sound id.
func soundStreamer(rate beep.SampleRate, bits uint32) beep.Streamer {
	bank := SoundBank(bits)
	id := SoundID(bits)

	wave := WaveSquare
	dur := 120 * time.Millisecond
	switch bank {
	case BankAction, BankMoving:
		wave = WaveNoise
		dur = 60 * time.Millisecond
	case BankVoice:
		wave = WaveSaw
		dur = 250 * time.Millisecond
	case BankMenu:
		wave = WaveSine
		dur = 300 * time.Millisecond
	case BankEnv, BankAir:
		wave = WaveNoise
		dur = 200 * time.Millisecond
	}

	freq := 180 + float64(id)*9 + float64(bank)*35
	osc := newOscillator(freq, dur, wave, rate)
	return newEnvelope(osc, dur, 5*time.Millisecond, dur/2, rate)
}
