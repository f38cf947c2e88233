package hostui

import (
	"fmt"
	"io"
)

const (
	NoEffectLabel      = "- No Effect -"
	DefaultPresetLabel = "- Default Preset -"
)

// Button is the observable state of a push button.
type Button struct {
	Enabled bool
	Title   string
}

// Table is the observable state of a list. Reloads counts the reload
// requests issued so far.
type Table struct {
	Enabled bool
	Reloads int
}

// Controls is the state of the host window's controls.
type Controls struct {
	Play       Button
	EffectView Button
	Effects    Table
	Presets    Table
	MediaURL   string
}

// NewControls returns the controls as the window first shows them.
func NewControls() Controls {
	return Controls{
		Play:       Button{Enabled: false, Title: "Pause"},
		EffectView: Button{Enabled: false, Title: "e"},
		Effects:    Table{Enabled: true},
		Presets:    Table{Enabled: false},
	}
}

// Apply updates c for ev, reading model where the mapping depends on
// view-model state.
func (c *Controls) Apply(ev Event, model Model) error {
	switch ev.Kind {
	case EventKindEffectWindowWillOpen, EventKindEffectWindowWillClose:
		c.EffectView.Enabled = model.CanOpenEffectView()
	case EventKindLoadingEffects:
		if !ev.Busy {
			c.Effects.Reloads++
		}
		c.Effects.Enabled = !ev.Busy
		c.EffectView.Enabled = !ev.Busy && model.CanOpenEffectView()
	case EventKindWillSelectEffect:
		c.Presets.Enabled = false
	case EventKindDidSelectEffect, EventKindDidClearEffect:
		c.Presets.Reloads++
		c.Presets.Enabled = model.PresetCount() > 0
		c.EffectView.Enabled = model.CanOpenEffectView()
	case EventKindPlaybackStateChanged:
		switch ev.State {
		case PlaybackStatePlaying:
			c.Play = Button{Enabled: true, Title: "Pause"}
		case PlaybackStateStopped:
			c.Play = Button{Enabled: true, Title: "Play"}
		case PlaybackStatePaused:
			c.Play = Button{Enabled: true, Title: "Resume"}
		case PlaybackStateUpdatingGraph:
			c.Play.Enabled = false
			c.EffectView.Enabled = false
			return nil
		default:
			return fmt.Errorf("unknown playback state: %v", ev.State)
		}
		c.EffectView.Enabled = model.CanOpenEffectView()
	case EventKindAudioComponentsChanged:
		c.Presets.Reloads++
	case EventKindSelectMedia:
		c.MediaURL = ev.MediaURL
	default:
		return fmt.Errorf("unknown event kind: %v", ev.Kind)
	}
	return nil
}

// Print writes a line per control.
func (c Controls) Print(w io.Writer) error {
	media := c.MediaURL
	if media == "" {
		media = "-"
	}
	_, err := fmt.Fprintf(w,
		"play: enabled=%v title=%s\neffect-view: enabled=%v\neffects: enabled=%v reloads=%d\npresets: enabled=%v reloads=%d\nmedia: %s\n",
		c.Play.Enabled, c.Play.Title,
		c.EffectView.Enabled,
		c.Effects.Enabled, c.Effects.Reloads,
		c.Presets.Enabled, c.Presets.Reloads,
		media,
	)
	return err
}

// Rows returns the labels of a list whose first row is the sentinel.
func Rows(sentinel string, names []string) []string {
	rows := make([]string, 0, len(names)+1)
	rows = append(rows, sentinel)
	return append(rows, names...)
}

// SelectionKind tells what a selected row means.
type SelectionKind int

const (
	// SelectionNone: nothing selected or the row is stale.
	SelectionNone SelectionKind = iota
	// SelectionClear: the sentinel row, i.e. no effect or the default preset.
	SelectionClear
	// SelectionItem: an item of the underlying list.
	SelectionItem
)

// Selection maps a selected row of a sentinel-headed list of count items
// to the item index it designates.
func Selection(row int, count int) (SelectionKind, int) {
	switch {
	case row < 0:
		return SelectionNone, -1
	case row == 0:
		return SelectionClear, -1
	case row-1 < count:
		return SelectionItem, row - 1
	default:
		return SelectionNone, -1
	}
}
