package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Direction specifies the layout direction for a Stack.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// Stack arranges children in a single direction with optional gaps.
type Stack struct {
	BaseComponent
	children  []Renderable
	direction Direction
	gap       int
	align     Alignment
}

// VStack creates a vertical stack.
func VStack(children ...Renderable) *Stack {
	return &Stack{children: children, direction: DirectionVertical}
}

// HStack creates a horizontal stack.
func HStack(children ...Renderable) *Stack {
	return &Stack{children: children, direction: DirectionHorizontal}
}

// View renders the stack with the default theme.
func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the stack and its children.
func (s *Stack) ViewWithContext(ctx RenderContext) string {
	views := make([]string, 0, len(s.children))
	for _, child := range s.children {
		if view := renderChild(child, ctx); view != "" {
			views = append(views, view)
		}
	}

	if len(views) == 0 {
		return ""
	}

	var content string
	if s.direction == DirectionHorizontal {
		content = s.joinHorizontal(views)
	} else {
		content = s.joinVertical(views)
	}

	return s.ComputeStyle(ctx.Theme).Render(content)
}

func (s *Stack) joinVertical(views []string) string {
	if s.gap > 0 {
		spacer := strings.Repeat("\n", s.gap)
		spaced := make([]string, 0, len(views)*2-1)
		for i, view := range views {
			if i > 0 {
				spaced = append(spaced, spacer)
			}
			spaced = append(spaced, view)
		}
		views = spaced
	}
	return lipgloss.JoinVertical(s.align.ToLipglossPosition(), views...)
}

func (s *Stack) joinHorizontal(views []string) string {
	if s.gap > 0 {
		spacer := strings.Repeat(" ", s.gap)
		spaced := make([]string, 0, len(views)*2-1)
		for i, view := range views {
			if i > 0 {
				spaced = append(spaced, spacer)
			}
			spaced = append(spaced, view)
		}
		views = spaced
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, views...)
}

// WithGap sets the spacing between children.
func (s *Stack) WithGap(gap int) *Stack {
	s.gap = gap
	return s
}

// WithAlign sets the cross-axis alignment.
func (s *Stack) WithAlign(align Alignment) *Stack {
	s.align = align
	return s
}

// WithAppliers applies theme-based style modifiers.
func (s *Stack) WithAppliers(appliers ...StyleFunc) *Stack {
	s.AddAppliers(appliers...)
	return s
}

// Add appends children to the stack.
func (s *Stack) Add(children ...Renderable) *Stack {
	s.children = append(s.children, children...)
	return s
}

// Children returns the child renderables.
func (s *Stack) Children() []Renderable {
	return s.children
}
