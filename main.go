package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/atomicstack/stepform/internal/app"
	"github.com/atomicstack/stepform/internal/config"
	"github.com/atomicstack/stepform/internal/logging"
	"github.com/atomicstack/stepform/internal/logging/events"
)

func main() {
	cfg := config.MustLoad()
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)

	setup, err := app.Prepare(cfg.App)
	if err != nil {
		exit(err)
	}
	events.App.Start(startupPayload(cfg, setup, probeTerminal()))

	if err := app.Start(setup); err != nil {
		exit(err)
	}
}

func exit(err error) {
	logging.Error(err)
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// startupPayload describes the form about to be shown: where its steps came
// from, how panels behave and the viewport it will be drawn into.
func startupPayload(cfg config.Config, setup *app.Setup, tty terminalInfo) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags)+2)
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath

	payload := map[string]interface{}{
		"argv":        cfg.Args,
		"flags":       flags,
		"keepMounted": cfg.App.KeepMounted,
		"verbose":     cfg.App.Verbose,
		"viewport":    resolveViewport(cfg.App, tty),
		"terminal":    tty,
	}
	if setup != nil && setup.Store != nil {
		payload["layout"] = map[string]interface{}{
			"source":   setup.Layout.Source,
			"tabs":     setup.Store.Len(),
			"selected": setup.Store.SelectedID(),
			"watched":  len(setup.Layout.Files),
		}
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	}
	return payload
}

type viewport struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Fixed  bool   `json:"fixed"`
	Source string `json:"source"`
}

// resolveViewport reports the size the strip will first be laid out in.
// Configured sizes win; otherwise the first terminal descriptor is used.
func resolveViewport(cfg app.Config, tty terminalInfo) viewport {
	vp := viewport{Width: tty.Width, Height: tty.Height, Source: tty.Source}
	if cfg.Width > 0 {
		vp.Width = cfg.Width
		vp.Fixed = true
		vp.Source = "config"
	}
	if cfg.Height > 0 {
		vp.Height = cfg.Height
		vp.Fixed = true
		vp.Source = "config"
	}
	return vp
}

type terminalInfo struct {
	Source string          `json:"source,omitempty"`
	Width  int             `json:"width,omitempty"`
	Height int             `json:"height,omitempty"`
	Probes []terminalProbe `json:"probes"`
}

type terminalProbe struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// probeTerminal checks the standard descriptors for a terminal and its size.
func probeTerminal() terminalInfo {
	descriptors := []struct {
		name string
		file *os.File
	}{
		{"stdin", os.Stdin},
		{"stdout", os.Stdout},
		{"stderr", os.Stderr},
	}
	info := terminalInfo{Probes: make([]terminalProbe, 0, len(descriptors))}
	for _, d := range descriptors {
		probe := terminalProbe{Name: d.name}
		fd := int(d.file.Fd())
		if fd >= 0 && term.IsTerminal(fd) {
			probe.IsTerminal = true
			if width, height, err := term.GetSize(fd); err == nil {
				probe.Width, probe.Height = width, height
				if info.Source == "" {
					info.Source, info.Width, info.Height = d.name, width, height
				}
			} else {
				probe.Error = err.Error()
			}
		}
		info.Probes = append(info.Probes, probe)
	}
	return info
}
