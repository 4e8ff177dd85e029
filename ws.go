package main

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// SocketCmd is one command frame on the websocket channel. Val is only
// meaningful for the speed command and may be omitted.
type SocketCmd struct {
	Cmd string `json:"cmd"`
	Val *int   `json:"val,omitempty"`
}

// DriveSocketHandler feeds a stream of command frames into the same
// dispatch path as the GET routes. When the connection drops for any
// reason the chassis is stopped, so a dead client can never leave the
// wheels running.
func DriveSocketHandler(w http.ResponseWriter, r *http.Request) {
	c, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Print("upgrade:", err)
		return
	}
	defer c.Close()
	defer ENV.Chassis.StopAll()

	for {
		_, message, err := c.ReadMessage()
		if err != nil {
			log.Println("read:", err)
			break
		}

		var cmd SocketCmd
		if err := json.Unmarshal(message, &cmd); err != nil {
			c.WriteMessage(websocket.TextMessage, []byte("Error: invalid json"))
			continue
		}

		if err := Dispatch(cmd.Cmd, cmd.Val); err != nil {
			c.WriteMessage(websocket.TextMessage, []byte("Error: "+err.Error()))
		}
	}
}
