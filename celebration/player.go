package celebration

import (
	"fmt"
	"time"
)

// Sink receives effects as they become visible
type Sink interface {
	Emit(step Step) error
}

// SinkFunc adapts a function to Sink
type SinkFunc func(step Step) error

// Emit calls f(step)
func (f SinkFunc) Emit(step Step) error { return f(step) }

// Player runs a celebration sequence, honouring each step's delay
type Player struct {
	Pause time.Duration
	Sleep func(time.Duration)
}

// NewPlayer returns a player that sleeps for real
func NewPlayer(pause time.Duration) *Player {
	return &Player{Pause: pause, Sleep: time.Sleep}
}

// Play emits a fresh sequence in order. There is no cancellation: the only
// way to stop early is for the sink to fail, e.g. a closed connection.
func (p *Player) Play(sink Sink) (int, error) {
	sleep := p.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	emitted := 0
	for _, step := range Sequence(p.Pause) {
		if step.Delay > 0 {
			sleep(step.Delay)
		}
		if err := sink.Emit(step); err != nil {
			return emitted, fmt.Errorf("emit step %d (%s): %w", step.Seq, step.Kind, err)
		}
		emitted++
	}
	return emitted, nil
}
