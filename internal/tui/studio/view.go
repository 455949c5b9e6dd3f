package studio

import (
	"fmt"
	"strings"

	"github.com/forgeline/brandforge/internal/ui/components"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.viewMode == ViewEditor && m.editorOpen {
		return m.editor.View()
	}

	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString("\n")

	switch m.viewMode {
	case ViewBrands:
		b.WriteString(m.viewBrands())
	case ViewDesigns:
		b.WriteString(m.viewDesigns())
	case ViewAccount:
		b.WriteString(m.viewAccount())
	case ViewImages:
		b.WriteString(m.viewImages())
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorBannerStyle.Render(m.errMsg))
	}

	b.WriteString("\n")
	b.WriteString(footerStyle.Render(m.footerHelp()))
	return b.String()
}

func (m Model) viewHeader() string {
	tabs := []struct {
		mode  ViewMode
		label string
	}{
		{ViewBrands, "brands"},
		{ViewAccount, "account"},
	}
	if m.services.Session.IsAdmin {
		tabs = append(tabs, struct {
			mode  ViewMode
			label string
		}{ViewImages, "images"})
	}

	parts := make([]string, 0, len(tabs)+1)
	parts = append(parts, "brandforge")
	for _, tab := range tabs {
		if tab.mode == m.viewMode {
			parts = append(parts, navActiveStyle.Render(tab.label))
		} else {
			parts = append(parts, navStyle.Render(tab.label))
		}
	}
	parts = append(parts, navStyle.Render(m.services.Session.Email))
	if m.services.Session.IsAdmin {
		parts = append(parts, components.NewBadge("admin").View())
	}

	return headerStyle.Render(strings.Join(parts, "  "))
}

func (m Model) viewBrands() string {
	if m.loading && len(m.brands) == 0 {
		return emptyStateStyle.Render("loading brands...")
	}
	if len(m.brands) == 0 {
		return emptyStateStyle.Render("No brands yet. Run `brandforge brands add --name <name>` to create one.")
	}

	var b strings.Builder
	for i, brand := range m.brands {
		line := fmt.Sprintf("%s  %s", brand.Name, subtleStyle.Render(brand.SiteURL))
		if i == m.brandCursor {
			b.WriteString(selectedItemStyle.Render("> " + line))
		} else {
			b.WriteString(itemStyle.Render(line))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) viewDesigns() string {
	if m.loading && len(m.designs) == 0 {
		return emptyStateStyle.Render("loading designs...")
	}
	if len(m.designs) == 0 {
		return emptyStateStyle.Render("No designs for this brand yet.")
	}

	var b strings.Builder
	for i, dsg := range m.designs {
		headline := dsg.Slot("headline")
		if headline == "" {
			headline = subtleStyle.Render("(untitled)")
		}
		line := fmt.Sprintf("%s  %s", headline, subtleStyle.Render(dsg.TemplateID))
		if i == m.designCursor {
			b.WriteString(selectedItemStyle.Render("> " + line))
		} else {
			b.WriteString(itemStyle.Render(line))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) viewAccount() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Signed in as %s\n\n", m.services.Session.Email))
	b.WriteString(fmt.Sprintf("Credits: %s\n", balanceStyle.Render(fmt.Sprintf("%d", m.balance))))

	if len(m.plans) > 0 {
		b.WriteString("\nPlans:\n")
		for _, plan := range m.plans {
			b.WriteString(itemStyle.Render(fmt.Sprintf(
				"%s  %d credits/mo  $%d.%02d",
				plan.Name, plan.MonthlyCredits, plan.PriceCents/100, plan.PriceCents%100)))
			b.WriteString("\n")
		}
	}

	if m.portalURL != "" {
		b.WriteString("\nManage your subscription:\n")
		b.WriteString(itemStyle.Render(m.portalURL))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func (m Model) viewImages() string {
	if !m.services.Session.IsAdmin {
		return deniedStyle.Render("Access denied\n\nThe image browser is restricted to administrators.")
	}

	if m.loading && len(m.images) == 0 {
		return emptyStateStyle.Render("loading images...")
	}
	if len(m.images) == 0 {
		return emptyStateStyle.Render("No images for this brand.")
	}

	var b strings.Builder
	for _, img := range m.images {
		b.WriteString(itemStyle.Render(fmt.Sprintf("%s  %s", img.Kind, img.URL)))
		b.WriteString("\n")
	}

	page := m.imagesOffset/imagesPageSize + 1
	pages := int((m.imagesTotal + imagesPageSize - 1) / imagesPageSize)
	if pages < 1 {
		pages = 1
	}
	b.WriteString(subtleStyle.Render(fmt.Sprintf("page %d of %d (%d images)", page, pages, m.imagesTotal)))

	return b.String()
}

func (m Model) footerHelp() string {
	switch m.viewMode {
	case ViewBrands:
		help := "↑/↓ move · enter open · a account · r refresh · q quit"
		if m.services.Session.IsAdmin {
			help = "↑/↓ move · enter open · a account · g images · r refresh · q quit"
		}
		return help
	case ViewDesigns:
		return "↑/↓ move · enter edit · a account · esc back"
	case ViewAccount:
		return "b billing portal · esc back"
	case ViewImages:
		return "n/p page · esc back"
	default:
		return ""
	}
}
