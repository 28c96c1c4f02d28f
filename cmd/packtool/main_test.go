package main

import (
	"bytes"
	"image"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/Faultbox/libsm64-go/internal/anim"
	"github.com/Faultbox/libsm64-go/internal/assets"
)

func writeBMP(t *testing.T, img image.Image) string {
	t.Helper()
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, img); err != nil {
		t.Fatalf("encoding bmp: %v", err)
	}
	path := filepath.Join(t.TempDir(), "atlas.bmp")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("writing bmp: %v", err)
	}
	return path
}

func TestReadAtlasRoundTrip(t *testing.T) {
	want := assets.DefaultAtlas()
	path := writeBMP(t, assets.AtlasImage(want))

	got, err := readAtlas(path)
	if err != nil {
		t.Fatalf("readAtlas: %v", err)
	}
	if len(got) != assets.AtlasSize {
		t.Fatalf("atlas is %d bytes, want %d", len(got), assets.AtlasSize)
	}
	// BMP keeps opaque pixels exactly.
	for i := 0; i < len(want); i += 4 {
		if want[i+3] != 255 {
			continue
		}
		if !bytes.Equal(got[i:i+4], want[i:i+4]) {
			t.Fatalf("pixel %d = %v, want %v", i/4, got[i:i+4], want[i:i+4])
		}
	}
}

func TestReadAtlasRejectsWrongSize(t *testing.T) {
	path := writeBMP(t, image.NewNRGBA(image.Rect(0, 0, anim.TextureWidth/2, anim.TextureHeight)))
	if _, err := readAtlas(path); err == nil {
		t.Error("expected an error for a half-width atlas")
	}
}

func TestOpenPack(t *testing.T) {
	p, err := openPack(builtin)
	if err != nil {
		t.Fatalf("openPack(builtin): %v", err)
	}
	if len(p.Clips) != int(anim.NumClips) {
		t.Errorf("builtin pack has %d clips, want %d", len(p.Clips), anim.NumClips)
	}

	blob, err := assets.Encode(p)
	if err != nil {
		t.Fatalf("encoding: %v", err)
	}
	path := filepath.Join(t.TempDir(), "mario.pack")
	if err := os.WriteFile(path, blob, 0644); err != nil {
		t.Fatal(err)
	}
	loaded, err := openPack(path)
	if err != nil {
		t.Fatalf("openPack(%s): %v", path, err)
	}
	if loaded.Name != p.Name {
		t.Errorf("name = %q, want %q", loaded.Name, p.Name)
	}

	if _, err := openPack(filepath.Join(t.TempDir(), "missing.pack")); err == nil {
		t.Error("expected an error for a missing pack")
	}
}
