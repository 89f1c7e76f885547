package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"picdecal/overlay"
	"picdecal/parallel"

	"github.com/alecthomas/kong"
	"golang.org/x/term"
)

type CLI struct {
	Workers  int             `help:"Number of pictures processed in parallel, one per CPU when 0" default:"0"`
	LogLevel string          `help:"Minimum level of log messages" enum:"debug,info,warn,error" default:"info"`
	Config   kong.ConfigFlag `help:"YAML file holding flag defaults, top-level or per command"`

	Overlay overlay.CLICmd     `cmd:"" help:"Stamp the faded decal onto every picture of a folder"`
	Preview overlay.PreviewCmd `cmd:"" help:"Write the faded decal alone to a PNG file"`
}

func newLogger(f *os.File, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}

	if term.IsTerminal(int(f.Fd())) {
		return slog.New(slog.NewTextHandler(f, opts))
	}
	return slog.New(slog.NewJSONHandler(f, opts))
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("picdecal"),
		kong.Description("Fade an emblem into a translucent corner decal and stamp it onto pictures."),
		kong.UsageOnError(),
		kong.Configuration(loadYAMLConfig),
	)

	slog.SetDefault(newLogger(os.Stderr, cli.LogLevel))
	slog.Debug("running", "command", kctx.Command(), "workers", cli.Workers)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	pool := parallel.Start(ctx, cli.Workers)
	err := kctx.Run(pool.Do, pool.Wait)
	pool.Wait(true)
	stop()

	if err != nil {
		slog.Error("command failed", "command", kctx.Command(), "error", err)
		os.Exit(1)
	}
}
