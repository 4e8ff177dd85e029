package drive

import (
	"fmt"

	"github.com/Masterminds/semver"
	"github.com/trashformer/rover/drive/hardware"
	"gopkg.in/yaml.v2"
)

// CONFIG_VERSION is the range of chassis config layouts this build accepts.
const CONFIG_VERSION = "~1.0.0"

// bankOf is the fixed bank membership: left shares a standby line between
// FL and BL, right between FR and BR.
var bankOf = map[string]string{
	"fl": "left",
	"fr": "right",
	"bl": "left",
	"br": "right",
}

type WheelConfig struct {
	In1      uint8  `yaml:"in1"`
	In2      uint8  `yaml:"in2"`
	Channel  uint8  `yaml:"channel"`
	Inverted bool   `yaml:"inverted"`
	Bank     string `yaml:"bank"`
}

type BankConfig struct {
	Standby uint8 `yaml:"standby"`
}

type ChassisConfig struct {
	Version string
	Speed   int
	Wheels  map[string]WheelConfig
	Banks   map[string]BankConfig
}

// LoadConfig parses and validates a chassis config document.
func LoadConfig(data []byte) (config ChassisConfig, err error) {
	if err = yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("unable to unmarshal chassis config: %v", err)
	}

	if err = checkVersion(config.Version); err != nil {
		return
	}

	for name, want := range bankOf {
		wheel, ok := config.Wheels[name]
		if !ok {
			return config, fmt.Errorf("chassis config is missing wheel %q", name)
		}
		if wheel.Bank != want {
			return config, fmt.Errorf("wheel %q must be on bank %q, got %q", name, want, wheel.Bank)
		}
		if _, ok := config.Banks[want]; !ok {
			return config, fmt.Errorf("chassis config is missing bank %q", want)
		}
	}

	return config, nil
}

// NewChassis brings the configured chassis up on the given bus: pins are
// claimed where the bus requires it, both banks are enabled, and the
// wheels are parked.
func NewChassis(config ChassisConfig, bus hardware.PinBus) (c *Coordinator, err error) {
	if claimer, ok := bus.(hardware.PinClaimer); ok {
		if err = claim(config, claimer); err != nil {
			return
		}
	}

	var wheels [NumWheels]*hardware.Wheel
	for name, i := range wheelIndex {
		wc := config.Wheels[name]
		wheels[i] = hardware.NewWheel(bus, name, wc.In1, wc.In2, wc.Channel, wc.Inverted)
	}

	banks := []*hardware.Bank{
		hardware.NewBank(bus, "left", config.Banks["left"].Standby),
		hardware.NewBank(bus, "right", config.Banks["right"].Standby),
	}

	c, err = NewCoordinator(wheels, banks)
	if err != nil {
		return
	}

	if config.Speed > 0 {
		c.SetSpeed(config.Speed)
	}

	return c, nil
}

func claim(config ChassisConfig, claimer hardware.PinClaimer) (err error) {
	for name, wc := range config.Wheels {
		if err = claimer.ClaimPin(wc.In1); err != nil {
			return fmt.Errorf("wheel %s in1: %v", name, err)
		}
		if err = claimer.ClaimPin(wc.In2); err != nil {
			return fmt.Errorf("wheel %s in2: %v", name, err)
		}
		if err = claimer.ClaimChannel(wc.Channel); err != nil {
			return fmt.Errorf("wheel %s pwm: %v", name, err)
		}
	}
	for name, bc := range config.Banks {
		if err = claimer.ClaimPin(bc.Standby); err != nil {
			return fmt.Errorf("bank %s standby: %v", name, err)
		}
	}
	return nil
}

func checkVersion(versionString string) error {
	semVer, err := semver.NewVersion(versionString)
	if err != nil {
		return fmt.Errorf("bad chassis config version %q: %v", versionString, err)
	}

	constraint, err := semver.NewConstraint(CONFIG_VERSION)
	if err != nil {
		return err
	}

	if !constraint.Check(semVer) {
		return fmt.Errorf("unable to use chassis config version %s - require %s", versionString, CONFIG_VERSION)
	}
	return nil
}
