//go:generate go run github.com/dmarkham/enumer -type=EventKind -trimprefix=EventKind -transform=kebab -text
//go:generate go run github.com/dmarkham/enumer -type=PlaybackState -trimprefix=PlaybackState -transform=kebab -text
package hostui

import "fmt"

// EventKind enumerates the notifications the host view-model emits.
type EventKind int

const (
	EventKindEffectWindowWillOpen EventKind = iota
	EventKindEffectWindowWillClose
	EventKindLoadingEffects
	EventKindWillSelectEffect
	EventKindDidSelectEffect
	EventKindDidClearEffect
	EventKindPlaybackStateChanged
	EventKindAudioComponentsChanged
	EventKindSelectMedia
)

// PlaybackState is the externally observable stage of the playback engine.
type PlaybackState int

const (
	PlaybackStatePlaying PlaybackState = iota
	PlaybackStateStopped
	PlaybackStatePaused
	PlaybackStateUpdatingGraph
)

// Event is one view-model notification. Busy is meaningful for
// loading-effects, State for playback-state-changed and MediaURL for
// select-media.
type Event struct {
	Kind     EventKind     `yaml:"kind"`
	Busy     bool          `yaml:"busy,omitempty"`
	State    PlaybackState `yaml:"state,omitempty"`
	MediaURL string        `yaml:"url,omitempty"`
	// Model, when set, is the view-model state observed as the event fires.
	Model *Snapshot `yaml:"model,omitempty"`
}

func (e Event) String() string {
	switch e.Kind {
	case EventKindLoadingEffects:
		return fmt.Sprintf("%v(busy=%v)", e.Kind, e.Busy)
	case EventKindPlaybackStateChanged:
		return fmt.Sprintf("%v(%v)", e.Kind, e.State)
	case EventKindSelectMedia:
		return fmt.Sprintf("%v(%s)", e.Kind, e.MediaURL)
	default:
		return e.Kind.String()
	}
}

// Model is the part of the view-model the controller reads while
// handling events.
type Model interface {
	CanOpenEffectView() bool
	PresetCount() int
}

// Snapshot is a fixed Model.
type Snapshot struct {
	EffectViewAvailable bool `yaml:"canOpenEffectView"`
	Presets             int  `yaml:"presets"`
}

func (s Snapshot) CanOpenEffectView() bool { return s.EffectViewAvailable }
func (s Snapshot) PresetCount() int        { return s.Presets }
