package main

import (
	"net/http"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/trashformer/rover/drive"
)

func TestTestWheelRoute(t *testing.T) {
	bus, r := setupTestChassis()

	Convey("missing params are a client error", t, func() {
		So(get(r, "/test").Code, ShouldEqual, http.StatusBadRequest)
		So(get(r, "/test?motor=bl").Code, ShouldEqual, http.StatusBadRequest)
		So(get(r, "/test?dir=fwd").Code, ShouldEqual, http.StatusBadRequest)
	})

	Convey("a valid call drives exactly one wheel", t, func() {
		So(get(r, "/test?motor=fr&dir=fwd").Code, ShouldEqual, http.StatusOK)
		So(ENV.Chassis.State().Wheels["fr"], ShouldEqual, "forward")
		So(bus.Duty(1), ShouldEqual, drive.TestSpeed)

		Convey("and the next call clears it before driving another", func() {
			So(get(r, "/test?motor=bl&dir=bck").Code, ShouldEqual, http.StatusOK)

			state := ENV.Chassis.State()
			So(state.Wheels["bl"], ShouldEqual, "reverse")
			So(state.Wheels["fr"], ShouldEqual, "coast")
			So(state.Wheels["fl"], ShouldEqual, "coast")
			So(state.Wheels["br"], ShouldEqual, "coast")
			So(bus.Duty(2), ShouldEqual, drive.TestSpeed)
			So(bus.Duty(1), ShouldEqual, 0)
		})
	})

	Convey("an unknown motor token is ignored but still stops everything", t, func() {
		So(get(r, "/f").Code, ShouldEqual, http.StatusOK)
		So(get(r, "/test?motor=mid&dir=fwd").Code, ShouldEqual, http.StatusOK)

		for _, dir := range ENV.Chassis.State().Wheels {
			So(dir, ShouldEqual, "coast")
		}
	})

	Convey("an unknown dir token behaves the same way", t, func() {
		So(get(r, "/f").Code, ShouldEqual, http.StatusOK)
		So(get(r, "/test?motor=fl&dir=sideways").Code, ShouldEqual, http.StatusOK)

		for _, dir := range ENV.Chassis.State().Wheels {
			So(dir, ShouldEqual, "coast")
		}
	})
}

func TestStopRoute(t *testing.T) {
	_, r := setupTestChassis()

	Convey("stop parks the chassis", t, func() {
		So(get(r, "/f").Code, ShouldEqual, http.StatusOK)
		So(get(r, "/stop").Code, ShouldEqual, http.StatusOK)

		state := ENV.Chassis.State()
		So(state.Intent, ShouldEqual, "stop")
		for _, dir := range state.Wheels {
			So(dir, ShouldEqual, "coast")
		}
	})
}
