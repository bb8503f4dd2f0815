// Command oilresize resizes an image using a streaming, colorspace-aware
// Catmull-Rom resampler.
//
// Grounded on ender672/liboil's resize.c.
package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	"github.com/ender672/oil/colorspace"
	"github.com/ender672/oil/internal/ppm"
	"github.com/ender672/oil/oilresize"
	"github.com/ender672/oil/ratio"
	"github.com/gen2brain/webp"
)

func main() {
	box := flag.Bool("box", true, "fit the requested size within the source's aspect ratio")
	xy := flag.Bool("xy", false, "scale horizontally before vertically (default: vertically first)")
	width := flag.Int("width", 0, "output width (0: derive from height or source)")
	height := flag.Int("height", 0, "output height (0: derive from width or source)")
	in := flag.String("in", "", "input file (default: stdin)")
	out := flag.String("out", "", "output file (default: stdout)")
	flag.Parse()

	if err := run(*box, *xy, *width, *height, *in, *out); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(box, xy bool, width, height int, inPath, outPath string) error {
	inReader, closeIn, err := openInput(inPath)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer closeIn()

	src, err := decode(inReader)
	if err != nil {
		return fmt.Errorf("decoding input: %w", err)
	}

	bounds := src.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()

	if width == 0 && height == 0 {
		width, height = srcW, srcH
	}
	if box {
		w, h := width, height
		if w == 0 {
			w = srcW
		}
		if h == 0 {
			h = srcH
		}
		width, height, err = ratio.Fix(srcW, srcH, w, h)
		if err != nil {
			return fmt.Errorf("fitting aspect ratio: %w", err)
		}
	} else {
		if width == 0 {
			width = srcW
		}
		if height == 0 {
			height = srcH
		}
	}

	fmt.Fprintf(os.Stderr, "Resizing from %dx%d to %dx%d.\n", srcW, srcH, width, height)

	cs, hasAlpha := pickColorspace(src)
	row, err := resize(src, width, height, cs, hasAlpha, xy)
	if err != nil {
		return fmt.Errorf("resizing: %w", err)
	}

	outWriter, closeOut, err := openOutput(outPath)
	if err != nil {
		return fmt.Errorf("opening output: %w", err)
	}
	defer closeOut()

	return writePPM(outWriter, width, height, row, cs)
}

// resize drives the two Scaler passes -- horizontal-dimension-only then
// vertical-dimension-only, or the reverse order under --xy -- by feeding
// each a Win==Wout or Hin==Hout no-op on the axis not being changed in that
// pass. Returns a function yielding each output row of width*cs.Channels()
// bytes.
func resize(src image.Image, width, height int, cs colorspace.Colorspace, hasAlpha bool, xy bool) (func(i int) []byte, error) {
	bounds := src.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()
	channels := cs.Channels()

	rows := make([][]byte, srcH)
	for y := 0; y < srcH; y++ {
		rows[y] = encodeRow(src, bounds, y, cs, hasAlpha)
	}

	passes := []struct{ w, h int }{{width, srcH}, {width, height}}
	if !xy {
		passes = []struct{ w, h int }{{srcW, height}, {width, height}}
	}

	curW, curH := srcW, srcH
	for _, p := range passes {
		if p.w == curW && p.h == curH {
			continue
		}
		s, err := oilresize.New(curH, p.h, curW, p.w, cs)
		if err != nil {
			return nil, err
		}
		out := make([][]byte, p.h)
		for i := range out {
			out[i] = make([]byte, p.w*channels)
		}
		pushed := 0
		for i := range out {
			for s.SlotsNeeded() > 0 {
				s.PushRow(rows[pushed])
				pushed++
			}
			s.Emit(out[i])
		}
		rows = out
		curW, curH = p.w, p.h
	}

	return func(i int) []byte { return rows[i] }, nil
}

func pickColorspace(img image.Image) (colorspace.Colorspace, bool) {
	switch img.(type) {
	case *image.NRGBA, *image.RGBA:
		return colorspace.RGBA, true
	}
	return colorspace.RGB, false
}

// encodeRow reads one source row into the working byte layout for cs,
// converting alpha-less sources straight to RGB.
func encodeRow(src image.Image, bounds image.Rectangle, y int, cs colorspace.Colorspace, hasAlpha bool) []byte {
	w := bounds.Dx()
	channels := cs.Channels()
	row := make([]byte, w*channels)
	for x := 0; x < w; x++ {
		r, g, b, a := src.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
		base := x * channels
		row[base] = byte(r >> 8)
		row[base+1] = byte(g >> 8)
		row[base+2] = byte(b >> 8)
		if hasAlpha {
			row[base+3] = byte(a >> 8)
		}
	}
	return row
}

func writePPM(w io.Writer, width, height int, row func(i int) []byte, cs colorspace.Colorspace) error {
	enc, err := ppm.NewWriter(w, width, height)
	if err != nil {
		return err
	}
	channels := cs.Channels()
	buf := make([]byte, width*3)
	for y := 0; y < height; y++ {
		src := row(y)
		if channels == 3 {
			buf = src
		} else {
			for x := 0; x < width; x++ {
				sb := x * channels
				db := x * 3
				buf[db], buf[db+1], buf[db+2] = src[sb], src[sb+1], src[sb+2]
			}
		}
		if err := enc.WriteRow(buf); err != nil {
			return err
		}
	}
	return nil
}

func decode(r io.Reader) (image.Image, error) {
	br := bufio.NewReader(r)
	sig, err := br.Peek(12)
	if err != nil && err != io.EOF {
		return nil, err
	}

	switch {
	case bytes.HasPrefix(sig, []byte{0xFF, 0xD8}):
		return jpeg.Decode(br)
	case bytes.HasPrefix(sig, []byte{0x89, 'P', 'N', 'G'}):
		return png.Decode(br)
	case bytes.HasPrefix(sig, []byte("GIF8")):
		return gif.Decode(br)
	case bytes.HasPrefix(sig, []byte("RIFF")) && bytes.Contains(sig, []byte("WEBP")):
		return webp.Decode(br)
	case bytes.HasPrefix(sig, []byte("P6")):
		dec, err := ppm.NewReader(br)
		if err != nil {
			return nil, err
		}
		img := image.NewNRGBA(image.Rect(0, 0, dec.Width, dec.Height))
		row := make([]byte, dec.Width*3)
		for y := 0; y < dec.Height; y++ {
			if err := dec.ReadRow(row); err != nil {
				return nil, err
			}
			for x := 0; x < dec.Width; x++ {
				sb := x * 3
				img.SetNRGBA(x, y, color.NRGBA{R: row[sb], G: row[sb+1], B: row[sb+2], A: 255})
			}
		}
		return img, nil
	}
	return nil, fmt.Errorf("unrecognized image format")
}

func openInput(path string) (io.Reader, func() error, error) {
	if path == "" {
		return os.Stdin, func() error { return nil }, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

func openOutput(path string) (io.Writer, func() error, error) {
	if path == "" {
		w := bufio.NewWriter(os.Stdout)
		return w, w.Flush, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	w := bufio.NewWriter(f)
	return w, func() error {
		if err := w.Flush(); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}, nil
}
