package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeline/brandforge/internal/design"
	"github.com/forgeline/brandforge/internal/export"
)

func testTemplate() design.Template {
	return design.Template{
		ID:   "web_hero_split",
		Name: "Split hero",
		Type: "web_hero",
		Slots: map[string]design.SlotSpec{
			"headline": {Type: design.SlotText},
			"cta_text": {Type: design.SlotCTA},
			"image":    {Type: design.SlotImage},
		},
		Style: design.StyleSpec{Layout: "split"},
	}
}

func testDesign() design.Design {
	return design.Design{
		ID:         "d-1",
		TemplateID: "web_hero_split",
		Slots:      map[string]string{"headline": "Launch faster"},
	}
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

func typeText(m Model, text string) Model {
	for _, r := range text {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestSlotOrderIsDeterministic(t *testing.T) {
	m := NewModel(testTemplate(), testDesign(), Callbacks{})
	assert.Equal(t, []string{"headline", "cta_text", "image"}, m.slotKeys)
}

func TestEnterStartsEditOnTextSlot(t *testing.T) {
	m := NewModel(testTemplate(), testDesign(), Callbacks{})

	m, _ = m.Update(keyMsg("enter"))
	assert.Equal(t, ModeEditing, m.Mode())
	assert.Equal(t, "headline", m.EditingSlot())
	assert.Equal(t, "Launch faster", m.StagedValue())
}

func TestEnterOnImageSlotDoesNotEdit(t *testing.T) {
	m := NewModel(testTemplate(), testDesign(), Callbacks{})

	m, _ = m.Update(keyMsg("down")) // cta_text
	m, _ = m.Update(keyMsg("down")) // image
	m, _ = m.Update(keyMsg("enter"))
	assert.Equal(t, ModeViewing, m.Mode())
}

func TestSaveCommitsExactlyOnceAndReturnsToViewing(t *testing.T) {
	var calls []string
	callbacks := Callbacks{
		OnUpdateSlot: func(key, value string) error {
			calls = append(calls, key+"="+value)
			return nil
		},
	}

	m := NewModel(testTemplate(), testDesign(), callbacks)
	m, _ = m.Update(keyMsg("enter"))
	m = typeText(m, "!")

	m, cmd := m.Update(keyMsg("enter"))
	require.NotNil(t, cmd)

	msg := cmd()
	saved, ok := msg.(SlotSavedMsg)
	require.True(t, ok)
	require.NoError(t, saved.Err)

	assert.Equal(t, ModeViewing, m.Mode())
	assert.Equal(t, []string{"headline=Launch faster!"}, calls)
	assert.Equal(t, "Launch faster!", m.Design().Slot("headline"))
}

func TestSaveWithoutChangesStillCommits(t *testing.T) {
	var calls int
	callbacks := Callbacks{
		OnUpdateSlot: func(key, value string) error {
			calls++
			assert.Equal(t, "headline", key)
			assert.Equal(t, "Launch faster", value)
			return nil
		},
	}

	m := NewModel(testTemplate(), testDesign(), callbacks)
	m, _ = m.Update(keyMsg("enter"))
	_, cmd := m.Update(keyMsg("enter"))
	require.NotNil(t, cmd)
	cmd()

	assert.Equal(t, 1, calls)
}

func TestCancelDiscardsWithoutCommit(t *testing.T) {
	called := false
	callbacks := Callbacks{
		OnUpdateSlot: func(string, string) error {
			called = true
			return nil
		},
	}

	m := NewModel(testTemplate(), testDesign(), callbacks)
	m, _ = m.Update(keyMsg("enter"))
	m = typeText(m, " and break everything")

	m, cmd := m.Update(keyMsg("esc"))
	assert.Nil(t, cmd)
	assert.Equal(t, ModeViewing, m.Mode())
	assert.False(t, called)
	assert.Equal(t, "Launch faster", m.Design().Slot("headline"))
}

func TestMovingMidEditReplacesOpenEdit(t *testing.T) {
	m := NewModel(testTemplate(), testDesign(), Callbacks{})
	m, _ = m.Update(keyMsg("enter"))
	m = typeText(m, " discarded")

	m, _ = m.Update(keyMsg("down"))
	assert.Equal(t, ModeEditing, m.Mode())
	assert.Equal(t, "cta_text", m.EditingSlot())
	assert.Equal(t, "", m.StagedValue())
	assert.Equal(t, "Launch faster", m.Design().Slot("headline"))
}

func TestDesignUpdatedReplacesWorkingCopy(t *testing.T) {
	m := NewModel(testTemplate(), testDesign(), Callbacks{})

	updated := testDesign()
	updated.SetSlot("headline", "Server wins")
	updated.SetSlot("image", "https://cdn.example/new.png")

	m, _ = m.Update(DesignUpdatedMsg{Design: updated})
	assert.Equal(t, "Server wins", m.Design().Slot("headline"))
	assert.Equal(t, "https://cdn.example/new.png", m.Design().Slot("image"))
}

func TestRegenerateImageOnlyOnImageSlots(t *testing.T) {
	var imageKeys []string
	callbacks := Callbacks{
		OnRegenerateImage: func(key string) error {
			imageKeys = append(imageKeys, key)
			return nil
		},
	}

	m := NewModel(testTemplate(), testDesign(), callbacks)

	// On a text slot "i" is inert.
	_, cmd := m.Update(keyMsg("i"))
	assert.Nil(t, cmd)

	m, _ = m.Update(keyMsg("down"))
	m, _ = m.Update(keyMsg("down"))
	_, cmd = m.Update(keyMsg("i"))
	require.NotNil(t, cmd)

	msg := cmd()
	req, ok := msg.(RegenerateRequestedMsg)
	require.True(t, ok)
	assert.Equal(t, "image", req.Kind)
	assert.Equal(t, []string{"image"}, imageKeys)
}

func TestRegenerateCopyOnTextSlot(t *testing.T) {
	callbacks := Callbacks{
		OnRegenerateCopy: func(key string) error {
			assert.Equal(t, "headline", key)
			return nil
		},
	}

	m := NewModel(testTemplate(), testDesign(), callbacks)
	_, cmd := m.Update(keyMsg("c"))
	require.NotNil(t, cmd)

	req, ok := cmd().(RegenerateRequestedMsg)
	require.True(t, ok)
	assert.Equal(t, "copy", req.Kind)
	require.NoError(t, req.Err)
}

func TestExportKeys(t *testing.T) {
	var formats []export.Format
	callbacks := Callbacks{
		OnExport: func(format export.Format) (string, error) {
			formats = append(formats, format)
			return "/tmp/out." + string(format), nil
		},
	}

	m := NewModel(testTemplate(), testDesign(), callbacks)

	_, cmd := m.Update(keyMsg("e"))
	require.NotNil(t, cmd)
	exported := cmd().(ExportedMsg)
	assert.Equal(t, export.FormatHTML, exported.Format)

	_, cmd = m.Update(keyMsg("p"))
	require.NotNil(t, cmd)
	exported = cmd().(ExportedMsg)
	assert.Equal(t, export.FormatPNG, exported.Format)

	assert.Equal(t, []export.Format{export.FormatHTML, export.FormatPNG}, formats)
}

func TestEscInViewingRequestsBack(t *testing.T) {
	m := NewModel(testTemplate(), testDesign(), Callbacks{})

	_, cmd := m.Update(keyMsg("esc"))
	require.NotNil(t, cmd)

	_, ok := cmd().(BackMsg)
	assert.True(t, ok)
}

func TestEscInvokesOnBackHook(t *testing.T) {
	backs := 0
	m := NewModel(testTemplate(), testDesign(), Callbacks{OnBack: func() { backs++ }})

	_, cmd := m.Update(keyMsg("esc"))
	require.NotNil(t, cmd)

	_, ok := cmd().(BackMsg)
	assert.True(t, ok)
	assert.Equal(t, 1, backs)
}

func TestViewShowsSlotsAndHelp(t *testing.T) {
	m := NewModel(testTemplate(), testDesign(), Callbacks{})

	view := m.View()
	assert.Contains(t, view, "Split hero")
	assert.Contains(t, view, "headline")
	assert.Contains(t, view, "Launch faster")
	assert.Contains(t, view, "enter edit")

	m, _ = m.Update(keyMsg("enter"))
	view = m.View()
	assert.Contains(t, view, "esc cancel")
}
