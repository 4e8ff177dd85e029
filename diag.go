package main

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/render"
	"github.com/trashformer/rover/drive"
	"github.com/trashformer/rover/drive/hardware"
)

//---
// Wiring test routes
//---

// DiagRoutes mounts the single-wheel exercise surface used to verify motor
// wiring. Every /test call stops the whole chassis first, so only the
// requested wheel is ever driven.
func DiagRoutes(r chi.Router) {
	r.Get("/test", TestWheelHandler)
	r.Get("/stop", StopHandler)
}

// TestWheelHandler drives one wheel at the fixed test duty cycle. Both
// params are required; an unknown motor or dir value is ignored but still
// leaves the chassis stopped.
func TestWheelHandler(w http.ResponseWriter, r *http.Request) {
	motor := r.URL.Query().Get("motor")
	rawDir := r.URL.Query().Get("dir")
	if motor == "" || rawDir == "" {
		render.Render(w, r, ErrInvalidRequest(errors.New("motor and dir params are required")))
		return
	}

	var dir hardware.Direction
	switch rawDir {
	case "fwd":
		dir = hardware.Forward
	case "bck":
		dir = hardware.Reverse
	default:
		// unknown direction token: the stop below is the whole effect
		if err := ENV.Chassis.StopAll(); err != nil {
			render.Render(w, r, ErrRender(err))
			return
		}
		w.WriteHeader(http.StatusOK)
		return
	}

	err := ENV.Chassis.DriveWheel(motor, dir)
	if err != nil && err != drive.ErrUnknownWheel {
		render.Render(w, r, ErrRender(err))
		return
	}
	w.WriteHeader(http.StatusOK)
}

func StopHandler(w http.ResponseWriter, r *http.Request) {
	if err := ENV.Chassis.StopAll(); err != nil {
		render.Render(w, r, ErrRender(err))
		return
	}
	w.WriteHeader(http.StatusOK)
}
