package circuit_breaker

import (
	"errors"
	"sync"
	"time"
)

type Status uint8

const (
	Closed   Status = 1
	Open     Status = 2
	HalfOpen Status = 3
)

func (s Status) String() string {
	switch s {
	case Closed:
		return "closed"
	case Open:
		return "open"
	case HalfOpen:
		return "half-open"
	}
	return "unknown"
}

var ErrOpenCB = errors.New("circuit breaker is open")

type CircuitBreaker interface {
	Call(service func() error) error
	State() Status
	Reset()
}

type circuitBreaker struct {
	mu    sync.Mutex
	state Status

	// window is a ring of the last len(window) outcomes, true means failed.
	window []bool
	pos    int
	// failRatio of failed calls in the window that opens the breaker.
	failRatio float64

	// cooldown before an open breaker lets a probe through.
	cooldown time.Duration
	openedAt time.Time

	// recovery is the number of consecutive half-open successes needed to close.
	recovery  int
	successes int

	now func() time.Time
}

func New(windowSize int, cooldown time.Duration, failRatio float64, recovery int) CircuitBreaker {
	if windowSize <= 0 {
		windowSize = 1
	}
	return &circuitBreaker{
		state:     Closed,
		window:    make([]bool, windowSize),
		failRatio: failRatio,
		cooldown:  cooldown,
		recovery:  recovery,
		now:       time.Now,
	}
}

func (cb *circuitBreaker) Call(service func() error) error {
	if !cb.allow() {
		return ErrOpenCB
	}
	err := service()
	cb.record(err != nil)
	return err
}

func (cb *circuitBreaker) State() Status {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

func (cb *circuitBreaker) Reset() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.reset()
}

func (cb *circuitBreaker) allow() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	if cb.state != Open {
		return true
	}
	if cb.now().Sub(cb.openedAt) <= cb.cooldown {
		return false
	}
	cb.state = HalfOpen
	cb.successes = 0
	return true
}

func (cb *circuitBreaker) record(failed bool) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.window[cb.pos] = failed
	cb.pos = (cb.pos + 1) % len(cb.window)

	if cb.state == HalfOpen {
		if failed {
			cb.open()
			return
		}
		cb.successes++
		if cb.successes >= cb.recovery {
			cb.reset()
		}
		return
	}

	fails := 0
	for _, f := range cb.window {
		if f {
			fails++
		}
	}
	if float64(fails)/float64(len(cb.window)) >= cb.failRatio {
		cb.open()
	}
}

func (cb *circuitBreaker) open() {
	cb.state = Open
	cb.successes = 0
	cb.openedAt = cb.now()
}

func (cb *circuitBreaker) reset() {
	for i := range cb.window {
		cb.window[i] = false
	}
	cb.pos = 0
	cb.successes = 0
	cb.state = Closed
}
