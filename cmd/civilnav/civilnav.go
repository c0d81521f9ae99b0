// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command civilnav loads a civil alignment model into plan, elevation,
// and 3D navigators kept in sync with the curve selected in the plan.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"time"

	"cogentcore.org/civil/alignment"
	"cogentcore.org/civil/remote"
	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/cli"
	"cogentcore.org/core/math32"
)

//go:generate core generate -add-types -add-funcs

// Config is the configuration information for the civilnav cli.
type Config struct {

	// Model is the model file to load, in .json, .toml, or .yaml format.
	Model string `posarg:"0" required:"-" default:"road.toml"`

	// Alignment is the name of the alignment of the curve to select.
	Alignment string `flag:"a,alignment"`

	// Index is the index of the curve to select in the plan of the alignment.
	Index int `flag:"i,index"`

	// SelectColor is the hex color of selected curves.
	SelectColor string `default:"#ff6400"`

	// HoverColor is the hex color of hovered curves.
	HoverColor string `default:"#ffffff"`

	// Addr is the address the serve command listens on.
	Addr string `cmd:"serve" default:"localhost:8080"`

	// FPS is the number of camera animation steps per second of the serve command.
	FPS int `cmd:"serve" default:"60"`
}

func main() { //types:skip
	opts := cli.DefaultOptions("civilnav", "Civilnav navigates civil alignment models in synchronized plan, elevation, and 3D views.")
	opts.DefaultFiles = []string{"civilnav.toml"}
	cli.Run(opts, &Config{}, Select, Watch, Serve)
}

// Select selects the given curve in the plan view and reports the
// resulting state of the synchronized views.
func Select(c *Config) error { //cli:cmd -root
	m, err := alignment.Open(c.Model)
	if errors.Log(err) != nil {
		return err
	}
	w, err := newWorld(c, m)
	if err != nil {
		return err
	}
	if err := w.selectCurve(c.Alignment, c.Index); err != nil {
		return err
	}
	w.camera.Finish()
	return w.report(os.Stdout)
}

// Watch reloads the model every time its file changes and redraws all views,
// keeping the current selection when its curve still exists.
func Watch(c *Config) error {
	m, err := alignment.Open(c.Model)
	if errors.Log(err) != nil {
		return err
	}
	w, err := newWorld(c, m)
	if err != nil {
		return err
	}
	if c.Alignment != "" {
		errors.Log(w.selectCurve(c.Alignment, c.Index))
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	slog.Info("watching model", "file", c.Model, "alignments", m.NumAlignments())
	return alignment.Watch(ctx, c.Model, func(m *alignment.Model) {
		ref, selected := w.plan.Highlighter().SelectedRef()
		w.reload(m)
		slog.Info("reloaded model", "alignments", m.NumAlignments())
		if selected {
			errors.Log(w.selectCurve(ref.Alignment, ref.Index))
		}
	})
}

// Serve serves the highlight events of the plan and elevation views to
// WebSocket clients at /ws, picks curves in those views through /pick
// requests, selects plan curves through /select requests, and adds
// snapped measurement points through /measure requests.
func Serve(c *Config) error {
	m, err := alignment.Open(c.Model)
	if errors.Log(err) != nil {
		return err
	}
	w, err := newWorld(c, m)
	if err != nil {
		return err
	}
	hub := remote.NewHub()
	defer hub.Close()
	w.feed(hub)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	go w.camera.Run(ctx, time.Second/time.Duration(max(c.FPS, 1)))

	// views are only touched by one request at a time
	var mu sync.Mutex
	mux := http.NewServeMux()
	mux.Handle("/ws", hub)
	mux.HandleFunc("/select", func(rw http.ResponseWriter, r *http.Request) {
		index, err := strconv.Atoi(r.FormValue("index"))
		if err != nil {
			http.Error(rw, "invalid index: "+err.Error(), http.StatusBadRequest)
			return
		}
		mu.Lock()
		err = w.selectCurve(r.FormValue("alignment"), index)
		mu.Unlock()
		if err != nil {
			http.Error(rw, err.Error(), http.StatusNotFound)
			return
		}
		rw.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("/pick", func(rw http.ResponseWriter, r *http.Request) {
		var p [3]float32
		for i, k := range []string{"x", "y", "tolerance"} {
			v, err := strconv.ParseFloat(r.FormValue(k), 32)
			if err != nil {
				http.Error(rw, "invalid "+k+": "+err.Error(), http.StatusBadRequest)
				return
			}
			p[i] = float32(v)
		}
		mu.Lock()
		mesh, err := w.pick(r.FormValue("view"), math32.Vec3(p[0], p[1], 0), p[2])
		mu.Unlock()
		if err != nil {
			http.Error(rw, err.Error(), http.StatusNotFound)
			return
		}
		fmt.Fprintln(rw, mesh.Curve.ID())
	})
	mux.HandleFunc("/measure", func(rw http.ResponseWriter, r *http.Request) {
		var p [3]float32
		for i, k := range []string{"x", "y", "z"} {
			v, err := strconv.ParseFloat(r.FormValue(k), 32)
			if err != nil {
				http.Error(rw, "invalid "+k+": "+err.Error(), http.StatusBadRequest)
				return
			}
			p[i] = float32(v)
		}
		mu.Lock()
		label, err := w.measure(r.FormValue("tool"), math32.Vec3(p[0], p[1], p[2]))
		mu.Unlock()
		if err != nil {
			http.Error(rw, err.Error(), http.StatusBadRequest)
			return
		}
		fmt.Fprintln(rw, label)
	})

	srv := &http.Server{Addr: c.Addr, Handler: mux}
	go func() {
		<-ctx.Done()
		errors.Log(srv.Shutdown(context.Background()))
	}()
	fmt.Println("serving civilnav on", c.Addr)
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}
