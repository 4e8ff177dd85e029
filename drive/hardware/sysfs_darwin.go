package hardware

import "errors"

// SysfsPinBus only exists on linux targets. The stub keeps development
// builds working; use the simulated bus instead.
type SysfsPinBus struct{}

func NewSysfsPinBus() (*SysfsPinBus, error) {
	return nil, errors.New("sysfs pin bus requires linux")
}

func (b *SysfsPinBus) ClaimPin(pin uint8) error {
	return errors.New("sysfs pin bus requires linux")
}

func (b *SysfsPinBus) ClaimChannel(channel uint8) error {
	return errors.New("sysfs pin bus requires linux")
}

func (b *SysfsPinBus) DigitalWrite(pin uint8, high bool) error {
	return errors.New("sysfs pin bus requires linux")
}

func (b *SysfsPinBus) PWMWrite(channel uint8, duty uint8) error {
	return errors.New("sysfs pin bus requires linux")
}
