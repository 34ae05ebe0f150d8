// Command ildaframe runs the ilda processing pass over a frame description
// and prints the resulting configuration and stats.
//
// Usage:
//
//	ildaframe [-in frame.toml] [-png preview.png] [-stream] [-watch] [-v]
//
// Without -in a built-in demo frame is used.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/gogpu/ilda"
	"github.com/gogpu/ilda/framefile"
	"github.com/gogpu/ilda/preview"
	"github.com/muesli/termenv"
)

type options struct {
	in     string
	png    string
	size   int
	stream bool
}

func main() {
	var (
		opts    options
		watch   = flag.Bool("watch", false, "re-run whenever the -in file changes")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.StringVar(&opts.in, "in", "", "frame description (.toml, .yaml, .yml); demo frame when empty")
	flag.StringVar(&opts.png, "png", "", "write a preview PNG to this file")
	flag.IntVar(&opts.size, "size", 512, "preview size in pixels")
	flag.BoolVar(&opts.stream, "stream", false, "preview the output stream instead of the processed paths")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	ilda.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	out := termenv.NewOutput(os.Stdout)
	if err := run(os.Stdout, out, opts); err != nil {
		log.Fatalf("ildaframe: %v", err)
	}
	if !*watch {
		return
	}
	if opts.in == "" {
		log.Fatal("ildaframe: -watch needs -in")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	err := watchFile(ctx, opts.in, func() {
		if err := run(os.Stdout, out, opts); err != nil {
			ilda.Logger().Warn("ildaframe: pass failed", "err", err)
		}
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("ildaframe: %v", err)
	}
}

// run loads the frame, processes it, prints the dump to w and writes the
// optional preview.
func run(w io.Writer, out *termenv.Output, opts options) error {
	f, err := loadFrame(opts.in)
	if err != nil {
		return err
	}
	f.Update()
	printDump(w, out, f.Dump())

	if opts.png == "" {
		return nil
	}
	po := preview.DefaultOptions()
	po.Width, po.Height = opts.size, opts.size
	var c *preview.Canvas
	if opts.stream {
		c = preview.RenderStream(f, po)
	} else {
		c = preview.RenderPaths(f, po)
	}
	if err := c.SavePNG(opts.png); err != nil {
		return fmt.Errorf("save preview: %w", err)
	}
	ilda.Logger().Info("ildaframe: preview saved", "path", opts.png)
	return nil
}

func loadFrame(path string) (*ilda.Frame, error) {
	if path == "" {
		return demoFrame(), nil
	}
	return framefile.Load(path)
}

// demoFrame builds a frame with a few shapes in different colors.
func demoFrame() *ilda.Frame {
	f := ilda.NewFrame()
	add := func(c ilda.RGBA, s *ilda.Shape) {
		cfg := f.Config()
		cfg.Output.Color = c
		f.SetConfig(cfg)
		f.AddShape(s, 0.001)
	}

	circle := ilda.NewShape()
	circle.Circle(0.5, 0.5, 0.35)
	add(ilda.Red, circle)

	square := ilda.NewShape()
	square.Rectangle(0.3, 0.3, 0.4, 0.4)
	add(ilda.Green, square)

	wave := ilda.NewShape()
	wave.MoveTo(0.1, 0.9)
	wave.CubicTo(0.3, 0.7, 0.7, 1.1, 0.9, 0.9)
	add(ilda.Blue, wave)

	return f
}

// printDump writes the frame dump, highlighting section headings when
// the output is a terminal.
func printDump(w io.Writer, out *termenv.Output, dump string) {
	for _, line := range strings.Split(strings.TrimRight(dump, "\n"), "\n") {
		if strings.HasSuffix(line, ":") {
			line = out.String(line).Bold().Foreground(out.Color("6")).String()
		}
		_, _ = io.WriteString(w, line+"\n")
	}
}

// watchFile calls fn every time the file at path is written or replaced,
// until ctx is done.
func watchFile(ctx context.Context, path string, fn func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer w.Close()

	// Watch the directory: editors often replace files instead of
	// writing them in place.
	target := filepath.Clean(path)
	if err := w.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	ilda.Logger().Info("ildaframe: watching", "path", target)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			fn()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			ilda.Logger().Warn("ildaframe: watch error", "err", err)
		}
	}
}
