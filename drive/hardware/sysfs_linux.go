package hardware

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const (
	gpioRoot = "/sys/class/gpio"
	pwmRoot  = "/sys/class/pwm/pwmchip0"

	// 5kHz, matching the driver board's switching frequency
	pwmPeriod = 200 * time.Microsecond
)

// SysfsPinBus drives GPIO and PWM through the kernel sysfs interface.
// Pins and channels must be claimed before the first write.
type SysfsPinBus struct {
	lock     sync.Mutex
	pins     map[uint8]bool
	channels map[uint8]bool
}

func NewSysfsPinBus() (bus *SysfsPinBus, err error) {
	if _, err = os.Stat(gpioRoot); err != nil {
		return nil, fmt.Errorf("sysfs gpio unavailable: %v", err)
	}

	bus = &SysfsPinBus{
		pins:     make(map[uint8]bool),
		channels: make(map[uint8]bool),
	}
	return bus, nil
}

// ClaimPin exports the pin and sets it up as an output held low.
func (b *SysfsPinBus) ClaimPin(pin uint8) (err error) {
	b.lock.Lock()
	defer b.lock.Unlock()

	if b.pins[pin] {
		return nil
	}

	// export is allowed to fail if a previous run left the pin exported
	writeSysfs(filepath.Join(gpioRoot, "export"), fmt.Sprintf("%d", pin))

	if err = writeSysfs(b.pinFile(pin, "direction"), "out"); err != nil {
		return err
	}
	if err = writeSysfs(b.pinFile(pin, "value"), "0"); err != nil {
		return err
	}

	b.pins[pin] = true
	return nil
}

// ClaimChannel exports the PWM channel, programs the period and enables it
// at zero duty.
func (b *SysfsPinBus) ClaimChannel(channel uint8) (err error) {
	b.lock.Lock()
	defer b.lock.Unlock()

	if b.channels[channel] {
		return nil
	}

	writeSysfs(filepath.Join(pwmRoot, "export"), fmt.Sprintf("%d", channel))

	if err = writeSysfs(b.channelFile(channel, "period"), fmt.Sprintf("%d", pwmPeriod.Nanoseconds())); err != nil {
		return err
	}
	if err = writeSysfs(b.channelFile(channel, "duty_cycle"), "0"); err != nil {
		return err
	}
	if err = writeSysfs(b.channelFile(channel, "enable"), "1"); err != nil {
		return err
	}

	b.channels[channel] = true
	return nil
}

func (b *SysfsPinBus) DigitalWrite(pin uint8, high bool) error {
	b.lock.Lock()
	defer b.lock.Unlock()

	if !b.pins[pin] {
		return fmt.Errorf("pin %d has not been claimed", pin)
	}

	val := "0"
	if high {
		val = "1"
	}
	return writeSysfs(b.pinFile(pin, "value"), val)
}

func (b *SysfsPinBus) PWMWrite(channel uint8, duty uint8) error {
	b.lock.Lock()
	defer b.lock.Unlock()

	if !b.channels[channel] {
		return fmt.Errorf("pwm channel %d has not been claimed", channel)
	}

	ns := pwmPeriod.Nanoseconds() * int64(duty) / 255
	return writeSysfs(b.channelFile(channel, "duty_cycle"), fmt.Sprintf("%d", ns))
}

func (b *SysfsPinBus) pinFile(pin uint8, name string) string {
	return filepath.Join(gpioRoot, fmt.Sprintf("gpio%d", pin), name)
}

func (b *SysfsPinBus) channelFile(channel uint8, name string) string {
	return filepath.Join(pwmRoot, fmt.Sprintf("pwm%d", channel), name)
}

func writeSysfs(path, value string) error {
	return ioutil.WriteFile(path, []byte(value), 0644)
}
