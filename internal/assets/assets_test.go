package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/libsm64-go/internal/anim"
)

func TestDefaultPackIsValid(t *testing.T) {
	p := Default()
	require.NoError(t, p.Validate())
	assert.Len(t, p.Clips, int(anim.NumClips))
	assert.Len(t, p.Atlas, AtlasSize)
	assert.Equal(t, anim.DefaultColors, p.Colors)
	assert.Equal(t, int(anim.NumClips), p.Library().Len())
}

func TestProceduralClipFlags(t *testing.T) {
	p := Default()

	walking := p.Clips[anim.Walking]
	assert.Zero(t, walking.Flags&anim.FlagNoLoop, "walking loops")

	punch := p.Clips[anim.FirstPunch]
	assert.NotZero(t, punch.Flags&anim.FlagNoLoop, "punches play once")

	assert.Equal(t, int16(36), p.Clips[anim.PutCapOn].LoopEnd)
	assert.Equal(t, int16(55), p.Clips[anim.DyingOnBack].LoopEnd)
}

func TestProceduralClipPacksConstantChannels(t *testing.T) {
	c := Default().Clips[anim.APose]
	require.Equal(t, anim.NumChannels, c.Channels())
	for ch := 0; ch < c.Channels(); ch++ {
		assert.Equal(t, uint16(1), c.Index[ch*2], "channel %d", ch)
	}
	assert.Len(t, c.Values, anim.NumChannels)
}

func TestProceduralRootHeight(t *testing.T) {
	c := Default().Clips[anim.IdleHeadLeft]
	pose := c.Sample(0, anim.DefaultYTrans)
	assert.InDelta(t, anim.RestHeight, pose.Root.Y, 0.5)

	lying := Default().Clips[anim.SleepLying]
	assert.Less(t, lying.Sample(0, anim.DefaultYTrans).Root.Y, float32(anim.RestHeight))
}

func TestEncodeDecode(t *testing.T) {
	p := Default()
	p.Meta = map[string]string{"source": "test"}

	blob, err := Encode(p)
	require.NoError(t, err)
	assert.Equal(t, Magic, string(blob[:len(Magic)]))

	got, err := Decode(blob)
	require.NoError(t, err)
	assert.Equal(t, p.Name, got.Name)
	assert.Equal(t, p.Colors, got.Colors)
	assert.Equal(t, p.Atlas, got.Atlas)
	assert.Equal(t, p.Clips[anim.Walking], got.Clips[anim.Walking])
	assert.Equal(t, "test", got.Meta["source"])
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode([]byte("not a pack at all"))
	assert.ErrorIs(t, err, ErrBadMagic)

	_, err = Decode(nil)
	assert.ErrorIs(t, err, ErrBadMagic)

	p := Default()
	p.Version = PackVersion + 1
	blob, err := Encode(p)
	require.NoError(t, err)
	_, err = Decode(blob)
	assert.ErrorIs(t, err, ErrVersion)

	_, err = Decode([]byte(Magic + "\xc1"))
	assert.Error(t, err, "truncated body")
}

func TestValidateRejectsCorruptClips(t *testing.T) {
	p := Default()
	p.Clips[anim.Walking] = &anim.Clip{Index: []uint16{4, 10}, Values: []int16{1, 2}}
	assert.Error(t, p.Validate())

	p = Default()
	p.Clips[anim.NumClips] = &anim.Clip{}
	assert.Error(t, p.Validate())

	p = Default()
	p.Atlas = p.Atlas[:10]
	assert.Error(t, p.Validate())
}

func TestManagerCachesDecodedPacks(t *testing.T) {
	blob, err := Encode(Default())
	require.NoError(t, err)

	m := NewManager()
	a, err := m.FromBlob(blob)
	require.NoError(t, err)
	b, err := m.FromBlob(blob)
	require.NoError(t, err)
	assert.Same(t, a, b)

	hits, misses := m.cache.Stats()
	assert.Equal(t, 1, hits)
	assert.Equal(t, 1, misses)

	m.Close()
	hits, misses = m.cache.Stats()
	assert.Zero(t, hits+misses)
}

func TestManagerEmptyBlobIsBuiltin(t *testing.T) {
	p, err := NewManager().FromBlob(nil)
	require.NoError(t, err)
	assert.Equal(t, "builtin", p.Name)
}

func TestManagerLoad(t *testing.T) {
	blob, err := Encode(Default())
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "pack.bin")
	require.NoError(t, os.WriteFile(path, blob, 0o644))

	p, err := NewManager().Load(path)
	require.NoError(t, err)
	assert.Len(t, p.Clips, int(anim.NumClips))

	_, err = NewManager().Load(filepath.Join(t.TempDir(), "missing.bin"))
	assert.Error(t, err)
}

func TestAtlasTiles(t *testing.T) {
	img := AtlasImage(DefaultAtlas())
	// Centre of the logo tile is the white disc.
	c := img.NRGBAAt(anim.TileLogo*anim.TileSize+32, 10)
	assert.Equal(t, uint8(255), c.A)
	// Corner of the button tile is transparent.
	assert.Zero(t, img.NRGBAAt(anim.TileButton*anim.TileSize, 0).A)
	// Metal is opaque everywhere.
	assert.Equal(t, uint8(255), img.NRGBAAt(anim.TileMetal*anim.TileSize+5, 5).A)
}
