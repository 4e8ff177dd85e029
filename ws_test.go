package main

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/gorilla/websocket"
	. "github.com/smartystreets/goconvey/convey"
)

func TestDriveSocket(t *testing.T) {
	setupTestChassis()

	r := chi.NewRouter()
	r.Get("/ws/drive", DriveSocketHandler)
	server := httptest.NewServer(r)
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/drive"

	Convey("command frames dispatch like the GET routes", t, func() {
		c, _, err := websocket.DefaultDialer.Dial(url, nil)
		So(err, ShouldBeNil)

		So(c.WriteMessage(websocket.TextMessage, []byte(`{"cmd":"f"}`)), ShouldBeNil)
		So(waitForIntent("forward"), ShouldBeTrue)

		So(c.WriteMessage(websocket.TextMessage, []byte(`{"cmd":"speed","val":200}`)), ShouldBeNil)
		So(waitForSpeed(200), ShouldBeTrue)

		Convey("invalid json is reported back on the socket", func() {
			So(c.WriteMessage(websocket.TextMessage, []byte(`not json`)), ShouldBeNil)
			_, msg, err := c.ReadMessage()
			So(err, ShouldBeNil)
			So(string(msg), ShouldContainSubstring, "invalid json")
		})

		Convey("dropping the connection stops the chassis", func() {
			c.Close()
			So(waitForIntent("stop"), ShouldBeTrue)
		})
	})
}

// waitForIntent polls the chassis until the commanded intent matches; the
// socket handler runs in the server goroutine.
func waitForIntent(want string) bool {
	for i := 0; i < 50; i++ {
		if ENV.Chassis.State().Intent == want {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return false
}

func waitForSpeed(want uint8) bool {
	for i := 0; i < 50; i++ {
		if ENV.Chassis.Speed() == want {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return false
}
