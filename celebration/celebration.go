// Package celebration holds the decorative effect sequence behind the party button.
package celebration

import (
	"encoding/json"
	"fmt"
	"time"
)

// Kind identifies a visible effect
type Kind string

const (
	KindBalloons Kind = "balloons"
	KindSnow     Kind = "snow"
	KindSuccess  Kind = "success"
)

// DefaultPause separates the first effects
const DefaultPause = time.Second

// SuccessMessage is shown once the snow has started
const SuccessMessage = "치킨 닭다리가 하늘에서 내립니다!"

// DrumstickEmoji replaces the snowflakes in the last effect
const DrumstickEmoji = "🍗"

// Step is one effect. Delay is how long to wait before showing it.
type Step struct {
	Seq   int           `json:"seq"`
	Kind  Kind          `json:"kind"`
	Emoji string        `json:"emoji,omitempty"`
	Text  string        `json:"text,omitempty"`
	Delay time.Duration `json:"-"`
}

// Sequence returns a new copy of the effect sequence for one activation
func Sequence(pause time.Duration) []Step {
	if pause < 0 {
		pause = 0
	}
	return []Step{
		{Seq: 1, Kind: KindBalloons},
		{Seq: 2, Kind: KindSnow, Delay: pause},
		{Seq: 3, Kind: KindSuccess, Text: SuccessMessage, Delay: pause},
		{Seq: 4, Kind: KindSnow, Emoji: DrumstickEmoji},
	}
}

// MarshalJSON writes Delay as delay_ms for client scripts
func (s Step) MarshalJSON() ([]byte, error) {
	type plain Step
	return json.Marshal(struct {
		plain
		DelayMS int64 `json:"delay_ms"`
	}{plain(s), s.Delay.Milliseconds()})
}

func (s Step) String() string {
	switch {
	case s.Text != "":
		return fmt.Sprintf("%d:%s(%q)", s.Seq, s.Kind, s.Text)
	case s.Emoji != "":
		return fmt.Sprintf("%d:%s[%s]", s.Seq, s.Kind, s.Emoji)
	}
	return fmt.Sprintf("%d:%s", s.Seq, s.Kind)
}
