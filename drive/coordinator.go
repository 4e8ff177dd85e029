package drive

import (
	"fmt"
	"sync"

	"github.com/trashformer/rover/drive/hardware"
)

// Wheel positions, in the order every drive vector uses.
const (
	FL = iota
	FR
	BL
	BR
	NumWheels
)

const (
	// DefaultSpeed matches the firmware's power-on duty cycle.
	DefaultSpeed = 150
	// TestSpeed is the fixed duty cycle used by the single-wheel test surface.
	TestSpeed = 150
)

var wheelIndex = map[string]int{
	"fl": FL,
	"fr": FR,
	"bl": BL,
	"br": BR,
}

var ErrUnknownWheel = fmt.Errorf("unknown wheel")

// State is a snapshot of the commanded drive outputs. It reflects what was
// asked of the wheels, not measured feedback.
type State struct {
	Intent string            `json:"intent"`
	Speed  uint8             `json:"speed"`
	Wheels map[string]string `json:"wheels"`
}

// Coordinator owns the four wheel actuators and the global duty cycle.
// Every mutation happens under one lock so an intent is always applied as a
// single unit across all four wheels; requests from concurrent transports
// serialize here, last writer wins.
type Coordinator struct {
	lock   sync.Mutex
	wheels [NumWheels]*hardware.Wheel
	banks  []*hardware.Bank
	speed  uint8
	dirs   [NumWheels]hardware.Direction
	last   Intent
}

// NewCoordinator enables both driver banks and parks the chassis. Bank
// enablement completing first is a startup-order requirement of the driver
// boards, not something checked again at runtime.
func NewCoordinator(wheels [NumWheels]*hardware.Wheel, banks []*hardware.Bank) (c *Coordinator, err error) {
	for _, bank := range banks {
		if err = bank.Enable(); err != nil {
			return nil, fmt.Errorf("unable to enable bank %s: %v", bank.Name, err)
		}
	}

	c = &Coordinator{
		wheels: wheels,
		banks:  banks,
		speed:  DefaultSpeed,
	}

	return c, c.StopAll()
}

// Apply drives the intent's direction vector to all four wheels at the
// current duty cycle.
func (c *Coordinator) Apply(intent Intent) error {
	vec, ok := vectors[intent]
	if !ok {
		return fmt.Errorf("no drive vector for %v", intent)
	}

	c.lock.Lock()
	defer c.lock.Unlock()

	return c.apply(intent, vec)
}

// StopAll coasts every wheel. It is the terminal state every failure path
// resolves to.
func (c *Coordinator) StopAll() error {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.apply(Stop, vectors[Stop])
}

// SetSpeed stores the global duty cycle, silently clamping to [0, 255].
// The new value takes effect on the next applied intent.
func (c *Coordinator) SetSpeed(value int) {
	if value < 0 {
		value = 0
	}
	if value > 255 {
		value = 255
	}

	c.lock.Lock()
	defer c.lock.Unlock()

	c.speed = uint8(value)
}

// Speed returns the stored global duty cycle.
func (c *Coordinator) Speed() uint8 {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.speed
}

// DriveWheel stops the chassis, then drives a single wheel at the fixed
// test duty cycle. Used by the wiring-check surface; an unknown wheel name
// still leaves the chassis stopped.
func (c *Coordinator) DriveWheel(name string, dir hardware.Direction) error {
	c.lock.Lock()
	defer c.lock.Unlock()

	if err := c.apply(Stop, vectors[Stop]); err != nil {
		return err
	}

	i, ok := wheelIndex[name]
	if !ok {
		return ErrUnknownWheel
	}

	if err := c.wheels[i].Set(dir, TestSpeed); err != nil {
		c.stop()
		return err
	}
	c.dirs[i] = dir
	return nil
}

// State returns a snapshot of the commanded outputs.
func (c *Coordinator) State() State {
	c.lock.Lock()
	defer c.lock.Unlock()

	wheels := make(map[string]string, NumWheels)
	for name, i := range wheelIndex {
		wheels[name] = c.dirs[i].String()
	}

	return State{
		Intent: c.last.String(),
		Speed:  c.speed,
		Wheels: wheels,
	}
}

// apply writes one direction vector to the wheels. Callers hold the lock.
// A failed wheel write coasts everything so the chassis never runs with a
// half-applied intent.
func (c *Coordinator) apply(intent Intent, vec Vector) error {
	for i, wheel := range c.wheels {
		if err := wheel.Set(vec[i], c.speed); err != nil {
			c.stop()
			return fmt.Errorf("wheel %s: %v", wheel.Name, err)
		}
		c.dirs[i] = vec[i]
	}

	c.last = intent
	return nil
}

// stop is the best-effort failure path: coast everything, ignore errors.
func (c *Coordinator) stop() {
	for i, wheel := range c.wheels {
		wheel.Set(hardware.Coast, 0)
		c.dirs[i] = hardware.Coast
	}
	c.last = Stop
}
