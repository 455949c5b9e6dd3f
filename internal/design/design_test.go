package design

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlotTypeEditable(t *testing.T) {
	assert.True(t, SlotText.Editable())
	assert.True(t, SlotCTA.Editable())
	assert.False(t, SlotImage.Editable())
	assert.False(t, SlotLogo.Editable())
}

func TestStyleSpecBinding(t *testing.T) {
	style := StyleSpec{
		Layout:   "centered",
		Bindings: map[string]string{"background": "colors.bg"},
	}

	assert.Equal(t, "colors.bg", style.Binding("background"))
	assert.Equal(t, "", style.Binding("headline_color"))
	assert.Equal(t, "", StyleSpec{Layout: "split"}.Binding("background"))
}

func TestDesignSlotAccess(t *testing.T) {
	d := Design{Slots: map[string]string{"headline": "Launch faster"}}

	assert.Equal(t, "Launch faster", d.Slot("headline"))
	assert.Equal(t, "", d.Slot("subheadline"))
	assert.Equal(t, "", Design{}.Slot("headline"))
}

func TestDesignSetSlotInitialisesMap(t *testing.T) {
	var d Design
	d.SetSlot("cta_text", "Try it free")
	assert.Equal(t, "Try it free", d.Slot("cta_text"))
}

func TestDesignCloneIsIndependent(t *testing.T) {
	d := Design{
		ID:     "d-1",
		Slots:  map[string]string{"headline": "Original"},
		Tokens: TokenSet{Colors: map[string]string{"bg": "#fff"}},
	}

	clone := d.Clone()
	clone.SetSlot("headline", "Changed")
	clone.Tokens.Colors["bg"] = "#000"

	assert.Equal(t, "Original", d.Slot("headline"))
	assert.Equal(t, "#fff", d.Tokens.Colors["bg"])
}
