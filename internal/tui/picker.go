package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/n0roo/org-kit/internal/templates"
)

// PickResult is the outcome of the interactive init picker
type PickResult struct {
	TemplateID  string
	BasePackage string
	Canceled    bool
}

type step int

const (
	stepTemplate step = iota
	stepPackage
	stepDone
)

// pickerModel walks through template selection and, for templates that
// carry a base_package, a package prompt.
type pickerModel struct {
	infos  []templates.Info
	cursor int
	step   step
	input  textinput.Model
	result PickResult
}

// newPicker creates the init picker model. defaultPackage seeds the
// package prompt when the chosen template has one.
func newPicker(infos []templates.Info, defaultPackage string) pickerModel {
	ti := textinput.New()
	ti.Placeholder = "com.example.app"
	ti.CharLimit = 120
	ti.Width = 40
	if defaultPackage != "" {
		ti.SetValue(defaultPackage)
	}

	return pickerModel{infos: infos, input: ti}
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.step == stepPackage {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "esc":
		m.result.Canceled = true
		m.step = stepDone
		return m, tea.Quit
	}

	switch m.step {
	case stepTemplate:
		switch keyMsg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.infos)-1 {
				m.cursor++
			}
		case "q":
			m.result.Canceled = true
			m.step = stepDone
			return m, tea.Quit
		case "enter":
			chosen := m.infos[m.cursor]
			m.result.TemplateID = chosen.ID
			// base_package가 있는 템플릿만 패키지를 묻는다
			if chosen.Language == "java" {
				m.step = stepPackage
				m.input.Focus()
				return m, textinput.Blink
			}
			m.step = stepDone
			return m, tea.Quit
		}

	case stepPackage:
		if keyMsg.String() == "enter" {
			m.result.BasePackage = strings.TrimSpace(m.input.Value())
			m.step = stepDone
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m pickerModel) View() string {
	if m.step == stepDone {
		return ""
	}

	var b strings.Builder

	switch m.step {
	case stepTemplate:
		b.WriteString(titleStyle.Render("프로젝트 템플릿 선택"))
		b.WriteString("\n\n")

		for i, info := range m.infos {
			label := fmt.Sprintf("%-14s %s", info.ID, mutedStyle.Render("("+info.Language+")"))
			if info.Custom {
				label += " " + warnStyle.Render("custom")
			}

			if i == m.cursor {
				b.WriteString(cursorStyle.Render("> "))
				b.WriteString(selectedItemStyle.Render(label))
			} else {
				b.WriteString(normalItemStyle.Render(label))
			}
			b.WriteString("\n")
		}

		if m.cursor < len(m.infos) && m.infos[m.cursor].Description != "" {
			b.WriteString("\n")
			b.WriteString(subtitleStyle.Render("  " + m.infos[m.cursor].Description))
			b.WriteString("\n")
		}

		b.WriteString(helpStyle.Render("  [↑/↓] 이동  [Enter] 선택  [q] 취소"))

	case stepPackage:
		b.WriteString(titleStyle.Render("베이스 패키지 입력"))
		b.WriteString("\n\n")
		b.WriteString("  ")
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("  [Enter] 확인  [Esc] 취소"))
	}

	b.WriteString("\n")
	return b.String()
}

// RunPicker runs the interactive template picker and returns the
// user's choice.
func RunPicker(infos []templates.Info, defaultPackage string) (PickResult, error) {
	p := tea.NewProgram(newPicker(infos, defaultPackage))

	final, err := p.Run()
	if err != nil {
		return PickResult{}, fmt.Errorf("템플릿 선택 실패: %w", err)
	}

	model, ok := final.(pickerModel)
	if !ok {
		return PickResult{Canceled: true}, nil
	}
	return model.result, nil
}
