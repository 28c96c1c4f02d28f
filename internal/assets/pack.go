package assets

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/Faultbox/libsm64-go/internal/anim"
)

// Magic prefixes every encoded pack.
const Magic = "SM64PACK"

// PackVersion is the layout version written by Encode.
const PackVersion = 1

// AtlasSize is the byte length of the RGBA texture atlas.
const AtlasSize = anim.TextureWidth * anim.TextureHeight * 4

var (
	// ErrBadMagic is returned for blobs that do not start with Magic.
	ErrBadMagic = errors.New("assets: not an asset pack")
	// ErrVersion is returned for packs written with another layout version.
	ErrVersion = errors.New("assets: unsupported pack version")
)

// Pack is everything the simulation core loads at global init: animation
// clips, the model palette and the texture atlas.
type Pack struct {
	Version int                  `msgpack:"version"`
	Name    string               `msgpack:"name"`
	Clips   map[int16]*anim.Clip `msgpack:"clips"`
	Colors  anim.ColorGroups     `msgpack:"colors"`
	Atlas   []byte               `msgpack:"atlas"`
	Meta    map[string]string    `msgpack:"meta,omitempty"`
}

// Library wraps the pack's clips for playback.
func (p *Pack) Library() *anim.Library {
	return anim.NewLibrary(p.Clips)
}

// Validate checks that every clip reads inside its value table and that the
// atlas has the fixed size.
func (p *Pack) Validate() error {
	if len(p.Atlas) != AtlasSize {
		return fmt.Errorf("atlas is %d bytes, want %d", len(p.Atlas), AtlasSize)
	}
	for id, c := range p.Clips {
		if id < 0 || id >= anim.NumClips {
			return fmt.Errorf("clip id %d out of range", id)
		}
		if c == nil {
			return fmt.Errorf("clip %s is empty", anim.ClipName(id))
		}
		if len(c.Index)%2 != 0 {
			return fmt.Errorf("clip %s: odd channel index", anim.ClipName(id))
		}
		for ch := 0; ch < len(c.Index); ch += 2 {
			if end := int(c.Index[ch]) + int(c.Index[ch+1]); end > len(c.Values) {
				return fmt.Errorf("clip %s: channel %d reads past values (%d > %d)",
					anim.ClipName(id), ch/2, end, len(c.Values))
			}
		}
		if c.LoopEnd < c.LoopStart {
			return fmt.Errorf("clip %s: loop end %d before start %d", anim.ClipName(id), c.LoopEnd, c.LoopStart)
		}
	}
	return nil
}

// Encode serializes the pack behind the magic header.
func Encode(p *Pack) ([]byte, error) {
	if p.Version == 0 {
		p.Version = PackVersion
	}
	var buf bytes.Buffer
	buf.WriteString(Magic)
	enc := msgpack.NewEncoder(&buf)
	if err := enc.Encode(p); err != nil {
		return nil, fmt.Errorf("encoding pack: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode parses and validates an encoded pack.
func Decode(blob []byte) (*Pack, error) {
	if len(blob) < len(Magic) || string(blob[:len(Magic)]) != Magic {
		return nil, ErrBadMagic
	}
	var p Pack
	if err := msgpack.Unmarshal(blob[len(Magic):], &p); err != nil {
		return nil, fmt.Errorf("decoding pack: %w", err)
	}
	if p.Version != PackVersion {
		return nil, fmt.Errorf("%w: %d", ErrVersion, p.Version)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("validating pack: %w", err)
	}
	return &p, nil
}
