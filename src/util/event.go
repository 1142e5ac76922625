package util

import (
	"context"
	"sync"
	"time"
)

// Emitter broadcasts events to all listeners. The zero value is ready to use.
type Emitter struct {
	// The release attribute determines how much time the event should be
	// buffered to prevent the emission of duplicate events.
	// A zero value will disable buffering.
	Release time.Duration

	listeners map[chan interface{}]chan struct{}
	lock      sync.RWMutex

	release map[interface{}]struct{}
}

func (emitter *Emitter) init() {
	emitter.lock.Lock()
	defer emitter.lock.Unlock()
	if emitter.listeners == nil {
		emitter.listeners = map[chan interface{}]chan struct{}{}
		emitter.release = map[interface{}]struct{}{}
	}
}

func (emitter *Emitter) broadcast(event interface{}) {
	emitter.lock.RLock()
	defer emitter.lock.RUnlock()
	for listener, closer := range emitter.listeners {
		go func(listener chan interface{}, closer chan struct{}) {
			select {
			case listener <- event:
			case <-closer:
			}
		}(listener, closer)
	}
}

// Emit sends the event to all listeners without blocking.
//
// When Release is set, events must be comparable so duplicates can be
// detected.
func (emitter *Emitter) Emit(event interface{}) {
	emitter.init()

	if emitter.Release == 0 {
		go emitter.broadcast(event)
		return
	}

	emitter.lock.Lock()
	defer emitter.lock.Unlock()
	// Check wether the event is already scheduled.
	if _, ok := emitter.release[event]; ok {
		return
	}
	emitter.release[event] = struct{}{}

	go func() {
		time.Sleep(emitter.Release)
		emitter.broadcast(event)

		emitter.lock.Lock()
		delete(emitter.release, event)
		emitter.lock.Unlock()
	}()
}

// Listen registers a new listener. The listener is removed when the context
// is done; the channel is not closed, callers should select on ctx.Done().
func (emitter *Emitter) Listen(ctx context.Context) <-chan interface{} {
	emitter.init()

	emitter.lock.Lock()
	defer emitter.lock.Unlock()

	ch := make(chan interface{}, 1)
	closer := make(chan struct{})
	emitter.listeners[ch] = closer

	go func() {
		<-ctx.Done()
		emitter.lock.Lock()
		defer emitter.lock.Unlock()
		// Signal any remaining broadcasts to abort writing to the channel.
		close(closer)
		delete(emitter.listeners, ch)
	}()
	return ch
}

// Events returns the emitter so embedding types expose it to listeners.
func (emitter *Emitter) Events() *Emitter {
	return emitter
}
