package hostui

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Session is a recorded event stream together with the view-model state
// it starts from.
type Session struct {
	Model  Snapshot `yaml:"model"`
	Events []Event  `yaml:"events"`
}

// ReadSession decodes a YAML session from r.
func ReadSession(r io.Reader) (*Session, error) {
	var s Session
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if err == io.EOF {
			return &s, nil
		}
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &s, nil
}

// ReadSessionFile reads the YAML session stored at path.
func ReadSessionFile(path string) (*Session, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := ReadSession(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Replay applies every event to freshly initialized controls and returns
// the final state. An event carrying a model snapshot replaces the current
// one before it is applied.
func (s *Session) Replay(log *slog.Logger) (Controls, error) {
	controls := NewControls()
	model := s.Model
	for i, ev := range s.Events {
		if ev.Model != nil {
			model = *ev.Model
		}
		if err := controls.Apply(ev, model); err != nil {
			return Controls{}, fmt.Errorf("event %d: %w", i, err)
		}
		log.Debug("applied event", "index", i, "event", ev.String())
	}
	return controls, nil
}
