package hardware

// Bank is a pair of wheels sharing one driver-board standby line. The line
// must be asserted before either wheel's outputs are meaningful.
type Bank struct {
	Name    string
	Standby uint8

	bus     PinBus
	enabled bool
}

func NewBank(bus PinBus, name string, standby uint8) *Bank {
	return &Bank{
		Name:    name,
		Standby: standby,
		bus:     bus,
	}
}

// Enable asserts the standby line. It runs once during startup; there is no
// runtime disable path.
func (b *Bank) Enable() error {
	if err := b.bus.DigitalWrite(b.Standby, true); err != nil {
		return err
	}
	b.enabled = true
	return nil
}

func (b *Bank) Enabled() bool {
	return b.enabled
}
