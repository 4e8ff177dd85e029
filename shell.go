package main

import (
	"strconv"

	"github.com/abiosoft/ishell"
	"github.com/trashformer/rover/drive"
)

// DriveShell builds a local development shell for poking the chassis
// without a remote client attached.
func DriveShell(chassis *drive.Coordinator) *ishell.Shell {
	shell := ishell.New()
	shell.Println("Rover development shell")
	shell.ShowPrompt(true)

	tokens := func([]string) []string {
		keys := make([]string, 0, len(drive.Tokens))
		for token := range drive.Tokens {
			keys = append(keys, token)
		}
		return keys
	}

	shell.AddCmd(&ishell.Cmd{
		Name:      "drive",
		Completer: tokens,
		Help:      "drive <token>",
		Func: func(c *ishell.Context) {
			if len(c.Args) < 1 {
				c.Println("usage: drive <token>")
				return
			}
			token := c.Args[0]
			c.Printf("Driving %s\n", token)
			if err := Dispatch(token, nil); err != nil {
				c.Err(err)
			}
		},
	})

	shell.AddCmd(&ishell.Cmd{
		Name: "speed",
		Help: "speed <value (0-255)>",
		Func: func(c *ishell.Context) {
			if len(c.Args) < 1 {
				c.Printf("Speed is %d\n", chassis.Speed())
				return
			}
			val, _ := strconv.Atoi(c.Args[0])
			chassis.SetSpeed(val)
			c.Printf("Speed set to %d\n", chassis.Speed())
		},
	})

	shell.AddCmd(&ishell.Cmd{
		Name: "stop",
		Help: "coast all wheels",
		Func: func(c *ishell.Context) {
			if err := chassis.StopAll(); err != nil {
				c.Err(err)
			}
		},
	})

	shell.AddCmd(&ishell.Cmd{
		Name: "state",
		Help: "Reads the commanded drive state",
		Func: func(c *ishell.Context) {
			state := chassis.State()
			c.Printf("intent=%s speed=%d\n", state.Intent, state.Speed)
			for name, dir := range state.Wheels {
				c.Printf("  %s: %s\n", name, dir)
			}
		},
	})

	return shell
}
