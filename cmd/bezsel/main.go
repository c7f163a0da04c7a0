// bezsel - a Bézier curve selection engine
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

// Command bezsel converts saved selection curves into masks and edits
// them from the command line.
//
// Usage:
//
//	bezsel rasterize [flags] <curve> <out.png|out.bmp|out.tiff>
//	bezsel info <curve>
//	bezsel insert -x X -y Y [flags] <curve>
//	bezsel remove -x X -y Y [flags] <curve>
//
// Curves are read in curve-buffer format.  insert and remove write the
// changed curve to standard output, or to the file given by -o.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"seehuhn.de/go/geom/matrix"

	bezsel "github.com/GNOME/gimp-sub073"
	"github.com/GNOME/gimp-sub073/curvebuf"
	"github.com/GNOME/gimp-sub073/edit"
	"github.com/GNOME/gimp-sub073/internal/config"
	applog "github.com/GNOME/gimp-sub073/internal/log"
)

var errUsage = errors.New("usage error")

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  bezsel rasterize [flags] <curve> <output>   Write the curve's mask as PNG, BMP or TIFF")
	fmt.Fprintln(w, "  bezsel info <curve>                          Print a summary of the curve")
	fmt.Fprintln(w, "  bezsel insert -x X -y Y [flags] <curve>      Add an anchor on the curve near (X, Y)")
	fmt.Fprintln(w, "  bezsel remove -x X -y Y [flags] <curve>      Remove the anchor at (X, Y)")
	fmt.Fprintln(w, "Every command accepts -config <file>.")
}

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	_ = applog.Close()
	switch {
	case errors.Is(err, errUsage):
		os.Exit(2)
	case err != nil:
		fmt.Fprintln(os.Stderr, "bezsel:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		usage(stderr)
		return errUsage
	}

	cmd, args := args[0], args[1:]
	switch cmd {
	case "rasterize":
		return rasterize(args, stderr)
	case "info":
		return info(args, stdout, stderr)
	case "insert", "remove":
		return modify(cmd, args, stdout, stderr)
	case "help", "-h", "--help":
		usage(stdout)
		return nil
	default:
		fmt.Fprintf(stderr, "unknown command %q\n", cmd)
		usage(stderr)
		return errUsage
	}
}

// setup parses the common flags, loads the configuration and starts
// logging.
func setup(fs *flag.FlagSet, args []string, stderr io.Writer) (config.Config, *slog.Logger, error) {
	cfgPath := fs.String("config", "", "configuration `file`")
	fs.SetOutput(stderr)
	if err := fs.Parse(args); err != nil {
		return config.Config{}, nil, errUsage
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return cfg, nil, err
	}
	opts := cfg.LogOptions()
	opts.Console = stderr
	applog.Init(opts)
	bezsel.SetLogger(applog.WithComponent("engine"))
	return cfg, applog.WithComponent("cli"), nil
}

func rasterize(args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("rasterize", flag.ContinueOnError)
	width := fs.Int("width", 0, "mask width in pixels (default: right edge of the curve)")
	height := fs.Int("height", 0, "mask height in pixels (default: bottom edge of the curve)")
	subdivisions := fs.Int("subdivisions", 0, "tessellation steps per segment (default from config)")
	aa := fs.String("antialias", "", "on or off (default from config)")
	cfg, l, err := setup(fs, args, stderr)
	if err != nil {
		return err
	}
	if fs.NArg() != 2 {
		usage(stderr)
		return errUsage
	}
	in, out := fs.Arg(0), fs.Arg(1)
	l = applog.WithOperation(l, "rasterize")

	buf, err := readCurve(in)
	if err != nil {
		return err
	}
	p := buf.Path()
	if !p.Closed() {
		return fmt.Errorf("%s: curve %q is not closed", in, buf.Name)
	}
	if p.Len() < 6 || p.Len()%3 != 0 {
		return fmt.Errorf("%s: curve %q has an incomplete segment", in, buf.Name)
	}

	w, h := *width, *height
	if w <= 0 || h <= 0 {
		b := p.Bounds()
		if w <= 0 {
			w = int(math.Ceil(b.URx))
		}
		if h <= 0 {
			h = int(math.Ceil(b.URy))
		}
	}
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%s: empty output size %dx%d", in, w, h)
	}

	r := cfg.Rasterizer(w, h)
	if *subdivisions > 0 {
		r.Subdivisions = *subdivisions
	}
	switch strings.ToLower(*aa) {
	case "":
	case "on", "true", "1":
		r.Antialias = true
	case "off", "false", "0":
		r.Antialias = false
	default:
		return fmt.Errorf("invalid -antialias value %q", *aa)
	}
	m := r.Rasterize(p)

	l.Info("mask created",
		slog.String("curve", buf.Name),
		slog.Int("width", w),
		slog.Int("height", h),
		slog.Bool("antialias", r.Antialias),
		slog.Int("covered", m.Sum()/255))
	return writeMask(out, m)
}

func writeMask(name string, m *bezsel.Mask) (err error) {
	img := &image.Gray{Pix: m.Data, Stride: m.Width, Rect: m.Bounds()}

	var encode func(io.Writer) error
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png":
		encode = func(w io.Writer) error { return png.Encode(w, img) }
	case ".bmp":
		encode = func(w io.Writer) error { return bmp.Encode(w, img) }
	case ".tif", ".tiff":
		encode = func(w io.Writer) error {
			return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
		}
	default:
		return fmt.Errorf("%s: unsupported output format", name)
	}

	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return encode(f)
}

func info(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("info", flag.ContinueOnError)
	_, _, err := setup(fs, args, stderr)
	if err != nil {
		return err
	}
	if fs.NArg() != 1 {
		usage(stderr)
		return errUsage
	}

	buf, err := readCurve(fs.Arg(0))
	if err != nil {
		return err
	}
	p := buf.Path()
	anchors, segments := 0, 0
	for _, pt := range p.Points() {
		if pt.Kind == bezsel.Anchor {
			anchors++
		}
	}
	for range p.Segments() {
		segments++
	}
	b := p.Bounds()

	fmt.Fprintf(stdout, "name:     %s\n", buf.Name)
	fmt.Fprintf(stdout, "points:   %d\n", p.Len())
	fmt.Fprintf(stdout, "anchors:  %d\n", anchors)
	fmt.Fprintf(stdout, "segments: %d\n", segments)
	fmt.Fprintf(stdout, "closed:   %t\n", p.Closed())
	fmt.Fprintf(stdout, "bounds:   [%g %g %g %g]\n", b.LLx, b.LLy, b.URx, b.URy)
	return nil
}

func modify(cmd string, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	x := fs.Float64("x", math.NaN(), "x coordinate in image pixels")
	y := fs.Float64("y", math.NaN(), "y coordinate in image pixels")
	hw := fs.Float64("halfwidth", -1, "pick tolerance in pixels (default from config)")
	out := fs.String("o", "", "output `file` (default: standard output)")
	cfg, l, err := setup(fs, args, stderr)
	if err != nil {
		return err
	}
	if fs.NArg() != 1 || math.IsNaN(*x) || math.IsNaN(*y) {
		usage(stderr)
		return errUsage
	}
	l = applog.WithOperation(l, cmd)

	buf, err := readCurve(fs.Arg(0))
	if err != nil {
		return err
	}
	s := edit.NewSession(matrix.Identity)
	s.HalfWidth = cfg.Edit.HalfWidth
	if *hw >= 0 {
		s.HalfWidth = *hw
	}
	s.Subdivisions = cfg.Render.Subdivisions
	s.Load(buf)

	var ok bool
	if cmd == "insert" {
		_, ok = s.Insert(*x, *y)
	} else {
		ok = s.Remove(*x, *y)
	}
	if !ok {
		return fmt.Errorf("%s: no change at (%g, %g)", cmd, *x, *y)
	}
	l.Info("curve changed", slog.String("curve", buf.Name), slog.Int("points", s.Path().Len()))

	res := s.Save(buf.Name)
	res.Draw = buf.Draw
	if *out == "" {
		return curvebuf.Encode(stdout, res)
	}
	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	if err := curvebuf.Encode(f, res); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func readCurve(name string) (*curvebuf.Buffer, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	buf, err := curvebuf.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return buf, nil
}
