package editor

import (
	"sort"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/forgeline/brandforge/internal/design"
	"github.com/forgeline/brandforge/internal/export"
	"github.com/forgeline/brandforge/internal/ui/preview"
)

// Callbacks connect the editor to the application. Each callback runs
// inside a tea.Cmd, never on the update path.
type Callbacks struct {
	OnUpdateSlot      func(key, value string) error
	OnRegenerateImage func(key string) error
	OnRegenerateCopy  func(key string) error
	OnExport          func(format export.Format) (string, error)
	// OnBack runs before BackMsg is emitted, for hosts that want a
	// hook in addition to the message.
	OnBack func()
}

// Model is the design editor: a live preview above a slot list, with
// one slot at a time editable through a staged text input.
type Model struct {
	template design.Template
	design   design.Design

	mode     Mode
	slotKeys []string
	cursor   int

	input      textinput.Model
	editingKey string

	callbacks Callbacks

	width     int
	statusMsg string
	errMsg    string
}

// NewModel builds an editor over a template and its design.
func NewModel(tmpl design.Template, dsg design.Design, callbacks Callbacks) Model {
	input := textinput.New()
	input.CharLimit = 280
	input.Width = 48

	return Model{
		template:  tmpl,
		design:    dsg.Clone(),
		mode:      ModeViewing,
		slotKeys:  orderedSlotKeys(tmpl),
		input:     input,
		callbacks: callbacks,
		width:     preview.DefaultWidth,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Design returns the current working copy.
func (m Model) Design() design.Design {
	return m.design.Clone()
}

// Mode returns the current editing mode.
func (m Model) Mode() Mode {
	return m.mode
}

// SelectedSlot returns the slot key under the cursor.
func (m Model) SelectedSlot() string {
	if m.cursor < 0 || m.cursor >= len(m.slotKeys) {
		return ""
	}
	return m.slotKeys[m.cursor]
}

// EditingSlot returns the slot with an open edit, or "".
func (m Model) EditingSlot() string {
	if m.mode != ModeEditing {
		return ""
	}
	return m.editingKey
}

// StagedValue returns the uncommitted input buffer.
func (m Model) StagedValue() string {
	return m.input.Value()
}

func (m *Model) moveCursorUp() {
	if len(m.slotKeys) == 0 {
		return
	}
	m.cursor--
	if m.cursor < 0 {
		m.cursor = len(m.slotKeys) - 1
	}
}

func (m *Model) moveCursorDown() {
	if len(m.slotKeys) == 0 {
		return
	}
	m.cursor++
	if m.cursor >= len(m.slotKeys) {
		m.cursor = 0
	}
}

func (m *Model) beginEdit(key string) {
	m.mode = ModeEditing
	m.editingKey = key
	m.input.SetValue(m.design.Slot(key))
	m.input.CursorEnd()
	m.input.Focus()
	m.statusMsg = ""
	m.errMsg = ""
}

func (m *Model) closeEdit() {
	m.mode = ModeViewing
	m.editingKey = ""
	m.input.Blur()
	m.input.SetValue("")
}

// canonicalSlotOrder fixes the display order of the well-known slots;
// anything else sorts alphabetically after them.
var canonicalSlotOrder = map[string]int{
	"headline":    0,
	"subheadline": 1,
	"body":        2,
	"cta_text":    3,
	"logo":        4,
	"image":       5,
}

func orderedSlotKeys(tmpl design.Template) []string {
	keys := make([]string, 0, len(tmpl.Slots))
	for key := range tmpl.Slots {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		ri, iKnown := canonicalSlotOrder[keys[i]]
		rj, jKnown := canonicalSlotOrder[keys[j]]
		switch {
		case iKnown && jKnown:
			return ri < rj
		case iKnown:
			return true
		case jKnown:
			return false
		default:
			return keys[i] < keys[j]
		}
	})
	return keys
}
