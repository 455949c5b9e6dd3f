package editor

import (
	"github.com/forgeline/brandforge/internal/design"
	"github.com/forgeline/brandforge/internal/export"
)

// Mode determines how key presses are interpreted.
type Mode int

const (
	ModeViewing Mode = iota
	ModeEditing
)

// SlotSavedMsg reports the outcome of committing a staged edit.
type SlotSavedMsg struct {
	Key   string
	Value string
	Err   error
}

// DesignUpdatedMsg replaces the working design. The host sends one
// whenever a row change lands on the open design, including changes
// from regeneration. The newest row wins over any local view of the
// design.
type DesignUpdatedMsg struct {
	Design design.Design
}

// RegenerateRequestedMsg reports that a regeneration request was
// accepted (or refused) by the generation service.
type RegenerateRequestedMsg struct {
	Kind string // "image" or "copy"
	Key  string
	Err  error
}

// ExportedMsg reports the outcome of an export.
type ExportedMsg struct {
	Format export.Format
	Path   string
	Err    error
}

// BackMsg asks the enclosing shell to leave the editor.
type BackMsg struct{}
