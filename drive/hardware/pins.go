package hardware

import "sync"

// PinBus is the output surface a motor driver board is wired to: digital
// direction/standby lines and per-motor PWM duty channels.
type PinBus interface {
	DigitalWrite(pin uint8, high bool) error
	PWMWrite(channel uint8, duty uint8) error
}

// PinClaimer is implemented by buses that need pins exported or channels
// attached before they can be written. Claiming must happen once, during
// startup, before any wheel output.
type PinClaimer interface {
	ClaimPin(pin uint8) error
	ClaimChannel(channel uint8) error
}

// SimulatedPinBus records every output instead of touching hardware.
// Used by the -sim flag and throughout the tests.
type SimulatedPinBus struct {
	lock   sync.Mutex
	levels map[uint8]bool
	duties map[uint8]uint8
}

func NewSimulatedPinBus() *SimulatedPinBus {
	return &SimulatedPinBus{
		levels: make(map[uint8]bool),
		duties: make(map[uint8]uint8),
	}
}

func (b *SimulatedPinBus) DigitalWrite(pin uint8, high bool) error {
	b.lock.Lock()
	defer b.lock.Unlock()

	b.levels[pin] = high
	return nil
}

func (b *SimulatedPinBus) PWMWrite(channel uint8, duty uint8) error {
	b.lock.Lock()
	defer b.lock.Unlock()

	b.duties[channel] = duty
	return nil
}

// Level reports the last value written to a digital pin.
func (b *SimulatedPinBus) Level(pin uint8) bool {
	b.lock.Lock()
	defer b.lock.Unlock()

	return b.levels[pin]
}

// Duty reports the last duty cycle written to a PWM channel.
func (b *SimulatedPinBus) Duty(channel uint8) uint8 {
	b.lock.Lock()
	defer b.lock.Unlock()

	return b.duties[channel]
}
