// Package remote implements the client side of the rover's hold-and-release
// command discipline: send the movement command on press, send stop on
// release, and re-send stop on our own after a short idle window in case
// the release event never made it out.
package remote

import (
	"fmt"
	"net/http"
	"sync"
	"time"
)

// StopWindow is how long the pilot waits after the last command before
// re-sending stop on its own.
const StopWindow = 80 * time.Millisecond

// Sender delivers a single command token to the vehicle.
type Sender interface {
	Send(token string) error
}

// Pilot issues momentary drive commands and owns the idle stop watchdog.
// The watchdog is re-armed by every press and fires at most once per idle
// gap; the vehicle side stays timeout-free.
type Pilot struct {
	sender Sender

	// Window overrides StopWindow when set before the first press.
	Window time.Duration

	lock  sync.Mutex
	timer *time.Timer
}

func NewPilot(sender Sender) *Pilot {
	return &Pilot{
		sender: sender,
		Window: StopWindow,
	}
}

// Press sends the command and arms the watchdog.
func (p *Pilot) Press(token string) error {
	p.lock.Lock()
	defer p.lock.Unlock()

	p.disarm()
	err := p.sender.Send(token)
	p.timer = time.AfterFunc(p.Window, p.timeout)
	return err
}

// Release disarms the watchdog and sends stop.
func (p *Pilot) Release() error {
	p.lock.Lock()
	defer p.lock.Unlock()

	p.disarm()
	return p.sender.Send("s")
}

func (p *Pilot) timeout() {
	p.lock.Lock()
	defer p.lock.Unlock()

	p.timer = nil
	p.sender.Send("s")
}

// disarm stops a pending watchdog. Callers hold the lock.
func (p *Pilot) disarm() {
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
}

// HTTPSender issues command tokens as the rover's GET routes.
type HTTPSender struct {
	Base   string
	Client *http.Client
}

func (s *HTTPSender) Send(token string) error {
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Get(s.Base + "/" + token)
	if err != nil {
		return err
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("command %q rejected with status %d", token, resp.StatusCode)
	}
	return nil
}
