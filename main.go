package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"fyne.io/fyne/v2"

	"CurveLab/internal/config"
	"CurveLab/internal/curve"
	"CurveLab/internal/editor"
	"CurveLab/internal/export"
	"CurveLab/internal/net"
	"CurveLab/internal/ui"
)

const (
	CustomURLScheme = "curvelab://"
	ConfigFile      = "curvelab.toml"
	discoverTimeout = 3 * time.Second
)

func main() {
	cfg, err := config.Load(ConfigFile)
	if err != nil {
		log.Fatalf("Bad config: %v", err)
	}

	args := os.Args
	switch {
	case len(args) > 1 && strings.HasPrefix(args[1], CustomURLScheme):
		address := strings.TrimSuffix(strings.TrimPrefix(args[1], CustomURLScheme), "/")
		runMirror(cfg, address)
	case len(args) > 2 && args[1] == "export":
		// Headless render of the configured curve, no window.
		session := buildSession(cfg)
		if err := export.ExportFile(args[2], session.Curve, session.View); err != nil {
			log.Fatalf("Export failed: %v", err)
		}
		log.Println("Exported", args[2])
	case len(args) > 1 && args[1] == "join":
		log.Println("Browsing for a host...")
		address, err := net.Discover(discoverTimeout)
		if err != nil {
			log.Fatalf("Discovery failed: %v", err)
		}
		runMirror(cfg, address)
	default:
		runHost(cfg)
	}
}

func runHost(cfg config.Config) {
	log.Println("Starting as HOST")
	session := buildSession(cfg)
	w := ui.NewCurveWidget(session)

	status := "Editing locally"
	if cfg.Share {
		hub := net.NewHub()
		hub.Snapshot = func() []byte {
			data, err := net.EncodeSnapshot(session.Curve.Keyframes())
			if err != nil {
				log.Printf("Snapshot encode failed: %v", err)
				return nil
			}
			return data
		}

		// Every mutating frame pushes the fresh curve to the viewers.
		session.OnChanged = func() {
			if data := hub.Snapshot(); data != nil {
				hub.Broadcast(data)
			}
		}

		go func() {
			if err := hub.Listen(cfg.Port); err != nil {
				log.Printf("Share hub stopped: %v", err)
				w.SetStatus("Sharing unavailable: " + err.Error())
			}
		}()

		if server, err := net.Advertise(cfg.Port); err != nil {
			log.Printf("mDNS advertise failed: %v", err)
		} else {
			defer server.Shutdown()
		}

		status = fmt.Sprintf("Share link: %s%s:%d", CustomURLScheme, net.OutgoingIP(), cfg.Port)
	}

	ui.RunApp("CurveLab", status, fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight), w)
}

func runMirror(cfg config.Config, address string) {
	log.Println("Starting as MIRROR of", address)
	session := editor.NewSession(curve.New(), viewportFromConfig(cfg))
	session.SampleSteps = cfg.SampleSteps
	session.ReadOnly = true
	w := ui.NewCurveWidget(session)

	go func() {
		err := net.Connect(address, func(snap net.Snapshot) {
			fyne.Do(func() {
				w.ApplySnapshot(snap.Keys)
			})
		})
		log.Printf("Mirror finished: %v", err)
		w.SetStatus(fmt.Sprintf("Disconnected: %v", err))
	}()

	ui.RunApp("CurveLab (mirror)", "Mirroring "+address, fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight), w)
}

func buildSession(cfg config.Config) *editor.Session {
	c, err := curve.WithAutoTangents(cfg.SeedTimes, cfg.SeedValues)
	if err != nil {
		log.Fatalf("Bad seed curve: %v", err)
	}
	session := editor.NewSession(c, viewportFromConfig(cfg))
	session.SampleSteps = cfg.SampleSteps
	return session
}

func viewportFromConfig(cfg config.Config) *editor.Viewport {
	return editor.NewViewport(
		editor.Vec{T: cfg.ViewOffset[0], V: cfg.ViewOffset[1]},
		editor.Vec{T: cfg.ViewRange[0], V: cfg.ViewRange[1]},
	)
}
