// seehuhn.de/go/pixline - software line rasterization
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package backdrop loads background images and scales them to the window.
//
// Raster images in PNG, JPEG, GIF, TGA, BMP, TIFF and WebP format are
// scaled with a Catmull-Rom filter. SVG images are rasterized at the
// target size.
package backdrop

import (
	"bufio"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"

	"seehuhn.de/go/pixline"
)

// Backdrop is a background image which can be drawn at any size.
// The scaled image is cached until the size changes.
type Backdrop struct {
	img  image.Image    // raster source, nil for SVG
	icon *oksvg.SvgIcon // vector source, nil for raster images

	cache  pixline.Buffer
	scaled bool
}

// Load reads a backdrop from a file. Files with extension ".svg" are read
// as SVG and files with extension ".tga" as TGA. Everything else is
// identified by its content.
func Load(path string) (*Backdrop, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("backdrop: %w", err)
	}
	defer f.Close()

	var b *Backdrop
	switch ext := filepath.Ext(path); {
	case strings.EqualFold(ext, ".svg"):
		b, err = DecodeSVG(f)
	case strings.EqualFold(ext, ".tga"):
		b, err = decodeWith("tga", tga.Decode, f)
	default:
		b, err = Decode(f)
	}
	if err != nil {
		return nil, fmt.Errorf("backdrop: %s: %w", path, err)
	}
	return b, nil
}

// rasterFormats lists the formats Decode recognizes by their leading bytes.
// A '?' in a magic string matches any byte.
//
// The list is used instead of image.Decode: the tga package registers
// itself with an empty magic string, which would match every input.
var rasterFormats = []struct {
	name   string
	magic  string
	decode func(io.Reader) (image.Image, error)
}{
	{"png", "\x89PNG\r\n\x1a\n", png.Decode},
	{"jpeg", "\xff\xd8", jpeg.Decode},
	{"gif", "GIF8?a", gif.Decode},
	{"bmp", "BM????\x00\x00\x00\x00", bmp.Decode},
	{"tiff", "II*\x00", tiff.Decode},
	{"tiff", "MM\x00*", tiff.Decode},
	{"webp", "RIFF????WEBPVP8", webp.Decode},
}

// Decode reads a raster image in PNG, JPEG, GIF, BMP, TIFF or WebP
// format. Data which matches none of these is read as TGA, which has no
// signature.
func Decode(r io.Reader) (*Backdrop, error) {
	br := bufio.NewReader(r)
	for _, f := range rasterFormats {
		head, err := br.Peek(len(f.magic))
		if err == nil && matchMagic(f.magic, head) {
			return decodeWith(f.name, f.decode, br)
		}
	}
	return decodeWith("tga", tga.Decode, br)
}

func decodeWith(format string, decode func(io.Reader) (image.Image, error), r io.Reader) (*Backdrop, error) {
	img, err := decode(r)
	if err != nil {
		return nil, err
	}
	pixline.Logger().Debug("backdrop decoded", "format", format, "size", img.Bounds().Size())
	return &Backdrop{img: img}, nil
}

func matchMagic(magic string, b []byte) bool {
	if len(b) != len(magic) {
		return false
	}
	for i, c := range b {
		if magic[i] != c && magic[i] != '?' {
			return false
		}
	}
	return true
}

// DecodeSVG reads an SVG image.
func DecodeSVG(r io.Reader) (*Backdrop, error) {
	icon, err := oksvg.ReadIconStream(r)
	if err != nil {
		return nil, err
	}
	return &Backdrop{icon: icon}, nil
}

// Draw fills dst with the backdrop, scaled to the size of dst.
// Transparent parts of the image appear black.
func (b *Backdrop) Draw(dst *pixline.Buffer) {
	if !b.scaled || b.cache.Width != dst.Width || b.cache.Height != dst.Height {
		b.render(dst.Width, dst.Height)
	}
	copy(dst.Pix, b.cache.Pix)
}

func (b *Backdrop) render(w, h int) {
	b.cache.Resize(w, h)
	b.scaled = true
	if w == 0 || h == 0 {
		return
	}

	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	if b.icon != nil {
		b.icon.SetTarget(0, 0, float64(w), float64(h))
		scanner := rasterx.NewScannerGV(w, h, rgba, rgba.Bounds())
		raster := rasterx.NewDasher(w, h, scanner)
		b.icon.Draw(raster, 1.0)
	} else {
		draw.CatmullRom.Scale(rgba, rgba.Bounds(), b.img, b.img.Bounds(), draw.Src, nil)
	}

	// premultiplied values are the colours composited over black
	for i := range b.cache.Pix {
		p := rgba.Pix[4*i : 4*i+3]
		b.cache.Pix[i] = pixline.RGB(p[0], p[1], p[2])
	}
	pixline.Logger().Debug("backdrop scaled", "width", w, "height", h)
}
