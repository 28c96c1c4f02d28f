// packtool is a CLI utility for building and examining asset packs.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"golang.org/x/image/bmp"

	"github.com/Faultbox/libsm64-go/internal/anim"
	"github.com/Faultbox/libsm64-go/internal/assets"
)

// builtin names the procedural pack wherever a pack path is expected.
const builtin = "builtin"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "write", "w":
		cmdWrite(args)
	case "info", "inspect":
		cmdInfo(args)
	case "clips", "ls":
		cmdClips(args)
	case "atlas":
		cmdAtlas(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`packtool - asset pack utility

Usage:
  packtool <command> [options]

Commands:
  write [-name N] [-atlas img] <out.pack>
                                     Write the built-in pack to a file,
                                     optionally with an atlas from a PNG/BMP
  info <file.pack>                   Show pack information
  clips <file.pack> [pattern]        List clips (optional name substring)
  atlas <file.pack> <out.png|.bmp>   Export the texture atlas

Use "builtin" in place of a pack path to read the built-in pack.

Examples:
  packtool write mario.pack
  packtool write -atlas skin.bmp mario.pack
  packtool info mario.pack
  packtool clips mario.pack WALK
  packtool atlas builtin atlas.png`)
}

// openPack decodes the pack at path, or returns the built-in pack.
func openPack(path string) (*assets.Pack, error) {
	if path == builtin {
		return assets.Default(), nil
	}
	return assets.NewManager().Load(path)
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func cmdWrite(args []string) {
	fs := flag.NewFlagSet("write", flag.ExitOnError)
	name := fs.String("name", "", "Pack name (defaults to the built-in name)")
	atlas := fs.String("atlas", "", "PNG or BMP image replacing the built-in atlas")
	_ = fs.Parse(args)
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: packtool write [-name N] [-atlas img] <out.pack>")
		os.Exit(1)
	}

	p := assets.Default()
	if *name != "" {
		p.Name = *name
	}
	if *atlas != "" {
		pix, err := readAtlas(*atlas)
		if err != nil {
			fail(err)
		}
		p.Atlas = pix
	}
	if p.Meta == nil {
		p.Meta = map[string]string{}
	}
	p.Meta["created"] = time.Now().UTC().Format(time.RFC3339)
	p.Meta["tool"] = "packtool"
	if *atlas != "" {
		p.Meta["atlas"] = filepath.Base(*atlas)
	}

	blob, err := assets.Encode(p)
	if err != nil {
		fail(err)
	}
	if err := os.WriteFile(fs.Arg(0), blob, 0644); err != nil {
		fail(err)
	}
	fmt.Printf("Wrote %s: %d clips, %d bytes\n", fs.Arg(0), len(p.Clips), len(blob))
}

func cmdInfo(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: packtool info <file.pack>")
		os.Exit(1)
	}

	p, err := openPack(args[0])
	if err != nil {
		fail(err)
	}

	var channels, values int
	for _, c := range p.Clips {
		channels += c.Channels()
		values += len(c.Values)
	}

	fmt.Printf("Pack: %s\n", p.Name)
	fmt.Printf("Version: %d\n", p.Version)
	fmt.Printf("Clips: %d of %d\n", len(p.Clips), anim.NumClips)
	fmt.Printf("Channels: %d (%d values)\n", channels, values)
	fmt.Printf("Atlas: %dx%d, %d bytes\n", anim.TextureWidth, anim.TextureHeight, len(p.Atlas))

	if len(p.Meta) > 0 {
		keys := make([]string, 0, len(p.Meta))
		for k := range p.Meta {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fmt.Println("\nMeta:")
		for _, k := range keys {
			fmt.Printf("  %-10s %s\n", k, p.Meta[k])
		}
	}
}

func cmdClips(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: packtool clips <file.pack> [pattern]")
		os.Exit(1)
	}

	p, err := openPack(args[0])
	if err != nil {
		fail(err)
	}
	pattern := ""
	if len(args) > 1 {
		pattern = strings.ToUpper(args[1])
	}

	ids := make([]int, 0, len(p.Clips))
	for id := range p.Clips {
		ids = append(ids, int(id))
	}
	sort.Ints(ids)

	count := 0
	for _, id := range ids {
		name := anim.ClipName(int16(id))
		if pattern != "" && !strings.Contains(name, pattern) {
			continue
		}
		c := p.Clips[int16(id)]
		fmt.Printf("%3d  %-44s loop %4d..%-4d channels %3d\n",
			id, name, c.LoopStart, c.LoopEnd, c.Channels())
		count++
	}
	fmt.Printf("\n%d clip(s)\n", count)
}

func cmdAtlas(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: packtool atlas <file.pack> <out.png|.bmp>")
		os.Exit(1)
	}

	p, err := openPack(args[0])
	if err != nil {
		fail(err)
	}

	f, err := os.Create(args[1])
	if err != nil {
		fail(err)
	}
	img := assets.AtlasImage(p.Atlas)
	if strings.EqualFold(filepath.Ext(args[1]), ".bmp") {
		err = bmp.Encode(f, img)
	} else {
		err = png.Encode(f, img)
	}
	if err != nil {
		f.Close()
		fail(err)
	}
	if err := f.Close(); err != nil {
		fail(err)
	}
	fmt.Printf("Wrote %s (%dx%d)\n", args[1], anim.TextureWidth, anim.TextureHeight)
}

// readAtlas decodes a PNG or BMP image of exactly the atlas size into RGBA
// bytes.
func readAtlas(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding atlas %s: %w", path, err)
	}
	b := src.Bounds()
	if b.Dx() != anim.TextureWidth || b.Dy() != anim.TextureHeight {
		return nil, fmt.Errorf("atlas %s is %dx%d, want %dx%d",
			path, b.Dx(), b.Dy(), anim.TextureWidth, anim.TextureHeight)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, anim.TextureWidth, anim.TextureHeight))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst.Pix, nil
}
