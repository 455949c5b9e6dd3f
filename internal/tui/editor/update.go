package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/forgeline/brandforge/internal/design"
	"github.com/forgeline/brandforge/internal/export"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.mode == ModeEditing {
			return m.updateEditing(msg)
		}
		return m.updateViewing(msg)

	case SlotSavedMsg:
		if msg.Err != nil {
			m.errMsg = msg.Err.Error()
			return m, nil
		}
		m.statusMsg = "saved " + msg.Key
		return m, nil

	case DesignUpdatedMsg:
		// Latest row state wins, including over local optimistic edits.
		m.design = msg.Design.Clone()
		return m, nil

	case RegenerateRequestedMsg:
		if msg.Err != nil {
			m.errMsg = msg.Err.Error()
			return m, nil
		}
		m.statusMsg = "regenerating " + msg.Key
		return m, nil

	case ExportedMsg:
		if msg.Err != nil {
			m.errMsg = msg.Err.Error()
			return m, nil
		}
		m.statusMsg = "exported to " + msg.Path
		return m, nil
	}

	return m, nil
}

func (m Model) updateViewing(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		m.moveCursorUp()
	case "down", "j":
		m.moveCursorDown()

	case "enter":
		key := m.SelectedSlot()
		if key == "" {
			return m, nil
		}
		if spec, ok := m.template.SlotSpecFor(key); ok && spec.Type.Editable() {
			m.beginEdit(key)
		}

	case "i":
		key := m.SelectedSlot()
		if spec, ok := m.template.SlotSpecFor(key); ok && !spec.Type.Editable() {
			m.statusMsg = ""
			m.errMsg = ""
			return m, regenerateImageCmd(m.callbacks, key)
		}

	case "c":
		key := m.SelectedSlot()
		if spec, ok := m.template.SlotSpecFor(key); ok && spec.Type.Editable() {
			m.statusMsg = ""
			m.errMsg = ""
			return m, regenerateCopyCmd(m.callbacks, key)
		}

	case "e":
		return m, exportCmd(m.callbacks, export.FormatHTML)
	case "p":
		return m, exportCmd(m.callbacks, export.FormatPNG)

	case "esc", "q":
		return m, backCmd(m.callbacks)
	}

	return m, nil
}

func (m Model) updateEditing(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		// Saving always commits the staged value, changed or not.
		key, value := m.editingKey, m.input.Value()
		m.design.SetSlot(key, value)
		m.closeEdit()
		return m, saveSlotCmd(m.callbacks, key, value)

	case "esc":
		// Cancel discards the staged value without any callback.
		m.closeEdit()
		return m, nil

	case "up", "down":
		// Switching slots mid-edit abandons the open edit and starts a
		// fresh one on the new slot.
		if msg.String() == "up" {
			m.moveCursorUp()
		} else {
			m.moveCursorDown()
		}
		if key := m.SelectedSlot(); key != "" {
			if spec, ok := m.template.SlotSpecFor(key); ok && spec.Type.Editable() {
				m.beginEdit(key)
			} else {
				m.closeEdit()
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// slotLabel renders "key: value" with typed placeholders for the list.
func (m Model) slotLabel(key string) string {
	value := m.design.Slot(key)
	if value != "" {
		return value
	}

	spec, ok := m.template.SlotSpecFor(key)
	if !ok {
		return ""
	}
	switch spec.Type {
	case design.SlotText, design.SlotCTA:
		return "(empty)"
	default:
		return "(no asset)"
	}
}
