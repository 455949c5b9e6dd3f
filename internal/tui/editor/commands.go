package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/forgeline/brandforge/internal/export"
)

func saveSlotCmd(callbacks Callbacks, key, value string) tea.Cmd {
	return func() tea.Msg {
		if callbacks.OnUpdateSlot == nil {
			return SlotSavedMsg{Key: key, Value: value}
		}
		err := callbacks.OnUpdateSlot(key, value)
		return SlotSavedMsg{Key: key, Value: value, Err: err}
	}
}

func regenerateImageCmd(callbacks Callbacks, key string) tea.Cmd {
	return func() tea.Msg {
		if callbacks.OnRegenerateImage == nil {
			return RegenerateRequestedMsg{Kind: "image", Key: key}
		}
		err := callbacks.OnRegenerateImage(key)
		return RegenerateRequestedMsg{Kind: "image", Key: key, Err: err}
	}
}

func regenerateCopyCmd(callbacks Callbacks, key string) tea.Cmd {
	return func() tea.Msg {
		if callbacks.OnRegenerateCopy == nil {
			return RegenerateRequestedMsg{Kind: "copy", Key: key}
		}
		err := callbacks.OnRegenerateCopy(key)
		return RegenerateRequestedMsg{Kind: "copy", Key: key, Err: err}
	}
}

func backCmd(callbacks Callbacks) tea.Cmd {
	return func() tea.Msg {
		if callbacks.OnBack != nil {
			callbacks.OnBack()
		}
		return BackMsg{}
	}
}

func exportCmd(callbacks Callbacks, format export.Format) tea.Cmd {
	return func() tea.Msg {
		if callbacks.OnExport == nil {
			return ExportedMsg{Format: format}
		}
		path, err := callbacks.OnExport(format)
		return ExportedMsg{Format: format, Path: path, Err: err}
	}
}
