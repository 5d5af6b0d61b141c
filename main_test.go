package main

import (
	"testing"

	"github.com/atomicstack/stepform/internal/app"
	"github.com/atomicstack/stepform/internal/config"
)

func TestProbeTerminalCoversStandardDescriptors(t *testing.T) {
	info := probeTerminal()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	for i, name := range []string{"stdin", "stdout", "stderr"} {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestResolveViewportPrefersConfiguredSize(t *testing.T) {
	tty := terminalInfo{Source: "stdout", Width: 120, Height: 40}
	vp := resolveViewport(app.Config{}, tty)
	if vp.Width != 120 || vp.Height != 40 || vp.Fixed || vp.Source != "stdout" {
		t.Fatalf("expected terminal size, got %#v", vp)
	}
	vp = resolveViewport(app.Config{Width: 60}, tty)
	if vp.Width != 60 || vp.Height != 40 || !vp.Fixed || vp.Source != "config" {
		t.Fatalf("expected configured width, got %#v", vp)
	}
}

func TestStartupPayloadDescribesLayout(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			Selected:    "tab-2",
			Width:       80,
			Height:      24,
			KeepMounted: true,
			Verbose:     true,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"selected":    "tab-2",
			"keepMounted": "true",
		},
		Args: []string{"--selected", "tab-2", "--keep-mounted"},
	}
	setup, err := app.Prepare(cfg.App)
	if err != nil {
		t.Fatalf("prepare: %v", err)
	}
	defer setup.Close()

	payload := startupPayload(cfg, setup, terminalInfo{})

	flags, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flags["keepMounted"] != "true" || flags["trace"] != true || flags["logFile"] != "trace.log" {
		t.Fatalf("unexpected flags %#v", flags)
	}
	if payload["keepMounted"] != true {
		t.Fatalf("expected keepMounted in payload, got %v", payload["keepMounted"])
	}
	layout, ok := payload["layout"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected layout in payload")
	}
	if layout["source"] != "default" || layout["tabs"] != 3 || layout["selected"] != "tab-2" || layout["watched"] != 0 {
		t.Fatalf("unexpected layout %#v", layout)
	}
	vp, ok := payload["viewport"].(viewport)
	if !ok || vp.Width != 80 || vp.Height != 24 || !vp.Fixed {
		t.Fatalf("unexpected viewport %#v", payload["viewport"])
	}
}

func TestStartupPayloadWithoutSetup(t *testing.T) {
	payload := startupPayload(config.Config{}, nil, terminalInfo{})
	if _, ok := payload["layout"]; ok {
		t.Fatalf("expected no layout without a setup")
	}
	if _, ok := payload["terminal"].(terminalInfo); !ok {
		t.Fatalf("expected terminal details in payload")
	}
}
