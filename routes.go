package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/render"
	"github.com/trashformer/rover/drive"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
)

// driveTokens are the hold-to-drive routes, one per movement intent plus
// stop. The remote panel fetches one of these on press and /s on release.
var driveTokens = []string{"f", "b", "sl", "sr", "fl", "fr", "bl", "br", "rcw", "rccw", "s"}

// Dispatch routes one command token to the chassis. Movement and stop
// tokens map straight onto intents; "speed" takes an optional value and is
// a successful no-op without one. Dispatch holds no state of its own - two
// dispatches only interact through the drive state they both mutate.
func Dispatch(token string, val *int) error {
	if token == "speed" {
		if val == nil {
			return nil
		}
		ENV.Chassis.SetSpeed(*val)
		return nil
	}

	intent, err := drive.ParseIntent(token)
	if err != nil {
		return ErrUnknownCommand
	}
	return ENV.Chassis.Apply(intent)
}

// DriveRoutes mounts the movement command surface.
func DriveRoutes(r chi.Router) {
	for _, token := range driveTokens {
		token := token
		r.Get("/"+token, func(w http.ResponseWriter, req *http.Request) {
			if err := Dispatch(token, nil); err != nil {
				render.Render(w, req, ErrRender(err))
				return
			}
			w.WriteHeader(http.StatusOK)
		})
	}

	r.Get("/speed", SpeedHandler)
	r.Get("/state", StateHandler)
}

// SpeedHandler stores a new global duty cycle. A missing or unparseable
// val is tolerated as a no-op that still reports success.
func SpeedHandler(w http.ResponseWriter, r *http.Request) {
	if raw := r.URL.Query().Get("val"); raw != "" {
		if val, err := strconv.Atoi(raw); err == nil {
			ENV.Chassis.SetSpeed(val)
		}
	}
	w.WriteHeader(http.StatusOK)
}

// StateHandler reports the commanded drive state.
func StateHandler(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, ENV.Chassis.State())
}
