package editor

import (
	"fmt"
	"strings"

	"github.com/forgeline/brandforge/internal/render"
	"github.com/forgeline/brandforge/internal/ui/preview"
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	title := m.template.Name
	if title == "" {
		title = m.template.ID
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	layout := render.Render(m.template, m.design)
	b.WriteString(preview.View(layout, m.width))
	b.WriteString("\n\n")

	b.WriteString(m.viewSlotList())

	if m.mode == ModeEditing {
		b.WriteString("\n")
		b.WriteString(editBoxStyle.Render(fmt.Sprintf("%s %s", slotKeyStyle.Render(m.editingKey), m.input.View())))
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
	} else if m.statusMsg != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.statusMsg))
	}

	b.WriteString("\n")
	b.WriteString(footerStyle.Render(m.footerHelp()))

	return b.String()
}

func (m Model) viewSlotList() string {
	var b strings.Builder

	for i, key := range m.slotKeys {
		cursor := "  "
		keyText := key
		if i == m.cursor {
			cursor = selectedSlotStyle.Render("> ")
			keyText = selectedSlotStyle.Render(key)
		} else {
			keyText = slotKeyStyle.Render(key)
		}

		value := m.slotLabel(key)
		spec, _ := m.template.SlotSpecFor(key)
		if spec.Type.Editable() {
			value = slotValueStyle.Render(value)
		} else {
			value = lockedSlotStyle.Render(value)
		}

		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, keyText, value))
	}

	return strings.TrimRight(b.String(), "\n")
}

func (m Model) footerHelp() string {
	if m.mode == ModeEditing {
		return "enter save · esc cancel"
	}
	return "↑/↓ move · enter edit · c copy · i image · e html · p png · esc back"
}
