// Package conductor starts and stops long running services in order.
//
// Services are registered with a name, started in registration order and
// stopped in reverse. Each service owns its goroutines; the conductor
// only coordinates lifecycle through three channels.
package conductor

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// A Service is a long running component with an explicit lifecycle.
// Run must return promptly: it spawns the service's goroutines, sends on
// started once ready, and when a context arrives on stop it shuts down
// and sends on stopped before the context expires.
type Service interface {
	Run(started, stopped chan bool, stop chan context.Context) error
}

const defaultStopTimeout = 10 * time.Second

type registered struct {
	name    string
	service Service
	stop    chan context.Context
	stopped chan bool
}

type Conductor struct {
	services    []*registered
	noisy       bool
	hookSignals bool
	stopTimeout time.Duration
	done        chan bool
	stopping    chan struct{}
}

type Option func(*Conductor)

func NewConductor(opts ...Option) *Conductor {
	c := &Conductor{
		stopTimeout: defaultStopTimeout,
		done:        make(chan bool, 1),
		stopping:    make(chan struct{}),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// HookSignals stops every service on SIGINT or SIGTERM.
func HookSignals() Option {
	return func(c *Conductor) { c.hookSignals = true }
}

// Noisy logs every lifecycle transition.
func Noisy() Option {
	return func(c *Conductor) { c.noisy = true }
}

func (c *Conductor) Service(name string, s Service) {
	c.services = append(c.services, &registered{
		name:    name,
		service: s,
		stop:    make(chan context.Context, 1),
		stopped: make(chan bool, 1),
	})
}

// Start brings every service up in registration order and returns a
// channel that receives once everything has shut back down.
func (c *Conductor) Start() chan bool {
	for _, r := range c.services {
		started := make(chan bool, 1)
		if err := r.service.Run(started, r.stopped, r.stop); err != nil {
			log.Fatalf("conductor: starting %s: %v", r.name, err)
		}
		<-started
		if c.noisy {
			log.Printf("conductor: started %s", r.name)
		}
	}

	if c.hookSignals {
		go func() {
			sig := make(chan os.Signal, 1)
			signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
			select {
			case s := <-sig:
				if c.noisy {
					log.Printf("conductor: caught %s, stopping", s)
				}
				c.Stop()
			case <-c.stopping:
			}
		}()
	}
	return c.done
}

// Stop shuts services down in reverse registration order, giving the
// whole pass one shared timeout.
func (c *Conductor) Stop() {
	close(c.stopping)
	ctx, cancel := context.WithTimeout(context.Background(), c.stopTimeout)
	defer cancel()

	for i := len(c.services) - 1; i >= 0; i-- {
		r := c.services[i]
		r.stop <- ctx
		select {
		case <-r.stopped:
			if c.noisy {
				log.Printf("conductor: stopped %s", r.name)
			}
		case <-ctx.Done():
			log.Printf("conductor: %s did not stop in time", r.name)
		}
	}
	c.done <- true
}
