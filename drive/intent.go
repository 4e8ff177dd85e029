package drive

import (
	"fmt"

	"github.com/trashformer/rover/drive/hardware"
)

// Intent is one of the fixed movement commands the chassis understands.
// The command surface is a closed set; per-wheel directions are table
// lookups, never computed from continuous input.
type Intent int

const (
	Stop Intent = iota
	Forward
	Back
	StrafeLeft
	StrafeRight
	DiagForwardLeft
	DiagForwardRight
	DiagBackLeft
	DiagBackRight
	RotateCW
	RotateCCW
)

// Vector is the per-wheel direction assignment for one intent,
// ordered FL, FR, BL, BR.
type Vector [NumWheels]hardware.Direction

var vectors = map[Intent]Vector{
	Stop:             {hardware.Coast, hardware.Coast, hardware.Coast, hardware.Coast},
	Forward:          {hardware.Forward, hardware.Forward, hardware.Forward, hardware.Forward},
	Back:             {hardware.Reverse, hardware.Reverse, hardware.Reverse, hardware.Reverse},
	StrafeLeft:       {hardware.Reverse, hardware.Forward, hardware.Forward, hardware.Reverse},
	StrafeRight:      {hardware.Forward, hardware.Reverse, hardware.Reverse, hardware.Forward},
	DiagForwardLeft:  {hardware.Coast, hardware.Forward, hardware.Forward, hardware.Coast},
	DiagForwardRight: {hardware.Forward, hardware.Coast, hardware.Coast, hardware.Forward},
	DiagBackLeft:     {hardware.Reverse, hardware.Coast, hardware.Coast, hardware.Reverse},
	DiagBackRight:    {hardware.Coast, hardware.Reverse, hardware.Reverse, hardware.Coast},
	RotateCW:         {hardware.Forward, hardware.Reverse, hardware.Forward, hardware.Reverse},
	RotateCCW:        {hardware.Reverse, hardware.Forward, hardware.Reverse, hardware.Forward},
}

var names = map[Intent]string{
	Stop:             "stop",
	Forward:          "forward",
	Back:             "back",
	StrafeLeft:       "strafe-left",
	StrafeRight:      "strafe-right",
	DiagForwardLeft:  "diag-forward-left",
	DiagForwardRight: "diag-forward-right",
	DiagBackLeft:     "diag-back-left",
	DiagBackRight:    "diag-back-right",
	RotateCW:         "rotate-cw",
	RotateCCW:        "rotate-ccw",
}

// Tokens maps the short command tokens used on the wire to intents. The
// same tokens appear as route paths, websocket frames and shell arguments.
var Tokens = map[string]Intent{
	"s":    Stop,
	"f":    Forward,
	"b":    Back,
	"sl":   StrafeLeft,
	"sr":   StrafeRight,
	"fl":   DiagForwardLeft,
	"fr":   DiagForwardRight,
	"bl":   DiagBackLeft,
	"br":   DiagBackRight,
	"rcw":  RotateCW,
	"rccw": RotateCCW,
}

func (i Intent) String() string {
	name, ok := names[i]
	if !ok {
		return fmt.Sprintf("intent(%d)", int(i))
	}
	return name
}

// Vector returns the fixed per-wheel direction assignment for the intent.
func (i Intent) Vector() Vector {
	return vectors[i]
}

// ParseIntent resolves a command token. Unknown tokens are an error; the
// caller decides whether that is a client error or is simply ignored.
func ParseIntent(token string) (Intent, error) {
	intent, ok := Tokens[token]
	if !ok {
		return Stop, fmt.Errorf("unknown command token %q", token)
	}
	return intent, nil
}
