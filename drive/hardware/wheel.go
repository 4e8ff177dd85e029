package hardware

// Direction is the ternary drive state of a single wheel.
type Direction int8

const (
	Reverse Direction = -1
	Coast   Direction = 0
	Forward Direction = 1
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Reverse:
		return "reverse"
	default:
		return "coast"
	}
}

// Wheel drives one motor through an H-bridge channel: two direction lines
// plus a PWM duty output. Identity, wiring and the inversion flag are fixed
// at construction.
type Wheel struct {
	Name     string
	In1, In2 uint8
	Channel  uint8
	Inverted bool

	bus PinBus
}

func NewWheel(bus PinBus, name string, in1, in2, channel uint8, inverted bool) *Wheel {
	return &Wheel{
		Name:     name,
		In1:      in1,
		In2:      in2,
		Channel:  channel,
		Inverted: inverted,
		bus:      bus,
	}
}

// Set drives the wheel in the given direction at the given duty cycle.
// Inverted wheels have forward and reverse swapped at this boundary;
// coast is never inverted and always drops the duty output to zero.
func (w *Wheel) Set(dir Direction, duty uint8) error {
	if w.Inverted {
		dir = -dir
	}

	var in1, in2 bool
	var out uint8
	switch dir {
	case Forward:
		in1 = true
		out = duty
	case Reverse:
		in2 = true
		out = duty
	case Coast:
		// both lines low, duty zero
	}

	if err := w.bus.DigitalWrite(w.In1, in1); err != nil {
		return err
	}
	if err := w.bus.DigitalWrite(w.In2, in2); err != nil {
		return err
	}
	return w.bus.PWMWrite(w.Channel, out)
}
