// fractal-render generates one fractal headlessly and writes it as a PNG
// (escape-time fields) or SVG (vector geometry), or dumps its primitives in
// playback order.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"fractals/pkg/core"
	"fractals/pkg/export"
	_ "fractals/pkg/fractals"
	"fractals/pkg/player"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	kind := flag.String("kind", "mandelbrot", "fractal to generate ("+kindList()+")")
	out := flag.String("out", "", "output file (default fractal.png or fractal.svg, - for stdout)")
	size := flag.Int("size", 800, "SVG canvas width and height")
	timeout := flag.Duration("timeout", 0, "abort generation after this long (0 waits forever)")
	dump := flag.Int("dump", 0, "print the first N primitives in playback order instead of writing a file (-1 for all)")
	var overrides kvList
	flag.Var(&overrides, "p", "generator parameter in key=value form (repeatable)")
	flag.Parse()

	params := map[string]string{}
	for _, kv := range overrides {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			log.Fatalf("parameter %q is not key=value", kv)
		}
		params[k] = v
	}

	if err := run(core.Kind(*kind), params, *out, *size, *timeout, *dump); err != nil {
		log.Fatalf("run: %v", err)
	}
}

func run(kind core.Kind, params map[string]string, out string, size int, timeout time.Duration, dump int) error {
	gen, err := core.Lookup(kind, params)
	if err != nil {
		return err
	}

	ctx := context.Background()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	res, err := gen.Generate(ctx)
	if err != nil {
		return fmt.Errorf("generate %s: %w", kind, err)
	}
	log.Printf("generated %s in %s: %d primitives", kind, time.Since(start).Round(time.Millisecond), res.Len())

	if dump != 0 {
		w := bufio.NewWriter(os.Stdout)
		defer w.Flush()
		return dumpPrimitives(w, res, dump)
	}

	if out == "" {
		out = "fractal.svg"
		if res.Kind == core.KindMandelbrot {
			out = "fractal.png"
		}
	}
	if out == "-" {
		return write(os.Stdout, res, size)
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := write(f, res, size); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", out, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", out, err)
	}
	log.Printf("saved to %q", out)
	return nil
}

// write encodes res as PNG when it holds a field and as SVG otherwise.
func write(w io.Writer, res core.Result, size int) error {
	if res.Kind == core.KindMandelbrot {
		return export.WritePNG(w, res)
	}
	opts := export.DefaultSVGOptions()
	opts.Width, opts.Height = size, size
	return export.WriteSVG(w, res, opts)
}

// dumpPrimitives drains a playback of res, writing one line per primitive.
// limit < 0 prints everything.
func dumpPrimitives(w io.Writer, res core.Result, limit int) error {
	pb := player.FromResult(res)
	for i := 0; limit < 0 || i < limit; i++ {
		var line string
		switch {
		case pb.Rows != nil:
			y, ok := pb.Rows.Advance()
			if !ok {
				return nil
			}
			line = fmt.Sprintf("row %d %v", y, res.Field.Row(y))
		case pb.Segments != nil:
			s, ok := pb.Segments.Advance()
			if !ok {
				return nil
			}
			line = fmt.Sprintf("segment %g %g %g %g", s.Start.X, s.Start.Y, s.End.X, s.End.Y)
		case pb.Points != nil:
			p, ok := pb.Points.Advance()
			if !ok {
				return nil
			}
			line = fmt.Sprintf("point %g %g", p.X, p.Y)
		case pb.Triangles != nil:
			t, ok := pb.Triangles.Advance()
			if !ok {
				return nil
			}
			line = fmt.Sprintf("triangle %g %g %g %g %g %g %d", t.A.X, t.A.Y, t.B.X, t.B.Y, t.C.X, t.C.Y, t.Color)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func kindList() string {
	kinds := core.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}
