package drive

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/trashformer/rover/drive/hardware"
)

const testChassisYaml = `
version: 1.0.4
speed: 150
wheels:
  fl: {in1: 13, in2: 12, channel: 0, bank: left}
  fr: {in1: 27, in2: 26, channel: 1, bank: right}
  bl: {in1: 33, in2: 32, channel: 2, bank: left}
  br: {in1: 19, in2: 18, channel: 3, bank: right}
banks:
  left: {standby: 4}
  right: {standby: 15}
`

func createTestChassis() (bus *hardware.SimulatedPinBus, chassis *Coordinator) {
	config, err := LoadConfig([]byte(testChassisYaml))
	if err != nil {
		panic(err)
	}

	bus = hardware.NewSimulatedPinBus()
	chassis, err = NewChassis(config, bus)
	if err != nil {
		panic(err)
	}
	return
}

func TestChassisBringup(t *testing.T) {
	bus, chassis := createTestChassis()

	Convey("both standby lines are asserted before anything moves", t, func() {
		So(bus.Level(4), ShouldBeTrue)
		So(bus.Level(15), ShouldBeTrue)
	})

	Convey("the chassis comes up parked", t, func() {
		state := chassis.State()
		So(state.Intent, ShouldEqual, "stop")
		for _, dir := range state.Wheels {
			So(dir, ShouldEqual, "coast")
		}
		for ch := uint8(0); ch < 4; ch++ {
			So(bus.Duty(ch), ShouldEqual, 0)
		}
	})
}

func TestApplyIntent(t *testing.T) {
	bus, chassis := createTestChassis()

	Convey("strafe-left drives the canonical vector at the global duty", t, func() {
		So(chassis.Apply(StrafeLeft), ShouldBeNil)

		state := chassis.State()
		So(state.Wheels["fl"], ShouldEqual, "reverse")
		So(state.Wheels["fr"], ShouldEqual, "forward")
		So(state.Wheels["bl"], ShouldEqual, "forward")
		So(state.Wheels["br"], ShouldEqual, "reverse")
		for ch := uint8(0); ch < 4; ch++ {
			So(bus.Duty(ch), ShouldEqual, 150)
		}

		Convey("and the direction lines match", func() {
			// fl reverse: in2 asserted
			So(bus.Level(13), ShouldBeFalse)
			So(bus.Level(12), ShouldBeTrue)
			// fr forward: in1 asserted
			So(bus.Level(27), ShouldBeTrue)
			So(bus.Level(26), ShouldBeFalse)
		})
	})

	Convey("stop is absorbing for every intent", t, func() {
		So(chassis.StopAll(), ShouldBeNil)
		parked := chassis.State()

		for intent := range names {
			So(chassis.Apply(intent), ShouldBeNil)
			So(chassis.StopAll(), ShouldBeNil)
			So(chassis.State(), ShouldResemble, parked)
			for ch := uint8(0); ch < 4; ch++ {
				So(bus.Duty(ch), ShouldEqual, 0)
			}
		}
	})
}

func TestSetSpeed(t *testing.T) {
	bus, chassis := createTestChassis()

	Convey("values are clamped, never rejected", t, func() {
		chassis.SetSpeed(-5)
		So(chassis.Speed(), ShouldEqual, 0)

		chassis.SetSpeed(999)
		So(chassis.Speed(), ShouldEqual, 255)

		chassis.SetSpeed(80)
		So(chassis.Speed(), ShouldEqual, 80)

		Convey("and setting the same value twice changes nothing", func() {
			chassis.SetSpeed(80)
			So(chassis.Speed(), ShouldEqual, 80)
		})
	})

	Convey("the stored speed drives the next intent", t, func() {
		chassis.SetSpeed(42)
		So(chassis.Apply(Forward), ShouldBeNil)
		for ch := uint8(0); ch < 4; ch++ {
			So(bus.Duty(ch), ShouldEqual, 42)
		}
	})
}

func TestDriveWheel(t *testing.T) {
	bus, chassis := createTestChassis()

	Convey("a single wheel runs at the fixed test duty", t, func() {
		So(chassis.DriveWheel("fr", hardware.Forward), ShouldBeNil)

		state := chassis.State()
		So(state.Wheels["fr"], ShouldEqual, "forward")
		So(bus.Duty(1), ShouldEqual, TestSpeed)

		Convey("a later call fully clears the earlier wheel first", func() {
			So(chassis.DriveWheel("bl", hardware.Reverse), ShouldBeNil)

			state := chassis.State()
			So(state.Wheels["bl"], ShouldEqual, "reverse")
			So(state.Wheels["fr"], ShouldEqual, "coast")
			So(state.Wheels["fl"], ShouldEqual, "coast")
			So(state.Wheels["br"], ShouldEqual, "coast")
			So(bus.Duty(2), ShouldEqual, TestSpeed)
			So(bus.Duty(1), ShouldEqual, 0)
		})
	})

	Convey("an unknown wheel still leaves the chassis stopped", t, func() {
		So(chassis.Apply(Forward), ShouldBeNil)
		So(chassis.DriveWheel("mid", hardware.Forward), ShouldEqual, ErrUnknownWheel)

		for _, dir := range chassis.State().Wheels {
			So(dir, ShouldEqual, "coast")
		}
	})
}
