// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Terekhov

package tui

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const refreshInterval = 2 * time.Second

type (
	tickMsg   time.Time
	statusMsg struct {
		status SyncStatus
		err    error
	}
	syncDoneMsg struct{ err error }
	savedMsg    struct{ err error }
)

type statusModel struct {
	ctx     context.Context
	backend Backend
	version string

	status  SyncStatus
	spinner spinner.Model
	syncing bool

	// editing switches the screen into the two-field "новая запись" form.
	editing bool
	inputs  [2]textinput.Model
	focus   int

	flash  string
	errMsg string
}

func newStatusModel(ctx context.Context, backend Backend, version string) statusModel {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot

	keyInput := textinput.New()
	keyInput.Placeholder = "ключ"
	keyInput.CharLimit = 128

	valueInput := textinput.New()
	valueInput.Placeholder = "значение"
	valueInput.CharLimit = 512

	return statusModel{
		ctx:     ctx,
		backend: backend,
		version: version,
		spinner: sp,
		inputs:  [2]textinput.Model{keyInput, valueInput},
	}
}

func (m statusModel) Init() tea.Cmd {
	return tea.Batch(m.cmdStatus(), m.spinner.Tick, tick())
}

func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m statusModel) cmdStatus() tea.Cmd {
	return func() tea.Msg {
		st, err := m.backend.Status(m.ctx)
		return statusMsg{status: st, err: err}
	}
}

func (m statusModel) cmdSync() tea.Cmd {
	return func() tea.Msg {
		return syncDoneMsg{err: m.backend.TriggerSync(m.ctx)}
	}
}

func (m statusModel) cmdStore(entryKey, value string) tea.Cmd {
	return func() tea.Msg {
		return savedMsg{err: m.backend.StoreSetting(m.ctx, entryKey, value)}
	}
}

func (m statusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return m, tea.Batch(m.cmdStatus(), tick())

	case statusMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
		} else {
			m.status = msg.status
			m.errMsg = msg.status.LastError
		}
		return m, nil

	case syncDoneMsg:
		m.syncing = false
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Ошибка синхронизации: %v", msg.err)
			return m, nil
		}
		m.flash = "Синхронизация запрошена"
		return m, m.cmdStatus()

	case savedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Ошибка сохранения: %v", msg.err)
			return m, nil
		}
		m.flash = "Сохранено"
		return m, m.cmdStatus()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		return m.updateStatus(msg)
	}

	return m, nil
}

func (m statusModel) updateStatus(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.flash = ""

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit

	case key.Matches(msg, keys.sync):
		if m.syncing {
			return m, nil
		}
		m.syncing = true
		m.errMsg = ""
		return m, m.cmdSync()

	case key.Matches(msg, keys.newItem):
		m.editing = true
		m.focus = 0
		m.inputs[0].SetValue("")
		m.inputs[1].SetValue("")
		return m, m.inputs[0].Focus()

	case key.Matches(msg, keys.copy):
		if err := clipboard.WriteAll(m.backend.Fingerprint()); err != nil {
			m.errMsg = fmt.Sprintf("Ошибка копирования: %v", err)
			return m, nil
		}
		m.flash = "Отпечаток скопирован"
		return m, nil
	}

	return m, nil
}

func (m statusModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.editing = false
		m.inputs[m.focus].Blur()
		return m, nil

	case key.Matches(msg, keys.tab):
		m.inputs[m.focus].Blur()
		m.focus = (m.focus + 1) % len(m.inputs)
		return m, m.inputs[m.focus].Focus()

	case key.Matches(msg, keys.enter):
		entryKey := strings.TrimSpace(m.inputs[0].Value())
		value := m.inputs[1].Value()
		if entryKey == "" {
			m.errMsg = "Ключ не может быть пустым"
			return m, nil
		}
		m.editing = false
		m.inputs[m.focus].Blur()
		return m, m.cmdStore(entryKey, value)
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m statusModel) View() string {
	if m.editing {
		return m.viewEditing()
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("mem-sync агент %s", m.version)))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Устройство: "))
	b.WriteString(fmt.Sprintf("%s (%s)\n", m.status.DeviceName, m.status.DeviceID))
	b.WriteString(labelStyle.Render("Аккаунт:    "))
	b.WriteString(m.status.AccountID + "\n")
	b.WriteString(labelStyle.Render("Отпечаток:  "))
	b.WriteString(m.backend.Fingerprint() + "\n\n")

	b.WriteString(labelStyle.Render("Подключение: "))
	switch {
	case m.syncing:
		b.WriteString(m.spinner.View() + " Синхронизация...\n")
	case m.status.Connected:
		b.WriteString(onlineStyle.Render("онлайн") + "\n")
	default:
		b.WriteString("оффлайн\n")
	}

	b.WriteString(labelStyle.Render("Вектор:      "))
	b.WriteString(renderVector(m.status) + "\n")
	b.WriteString(labelStyle.Render("Записей:     "))
	b.WriteString(fmt.Sprintf("%d", m.status.EntityCount))
	if m.status.PendingGaps {
		b.WriteString("  (есть пропуски, ожидаем доставку)")
	}
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Последний обмен: "))
	if m.status.LastSyncAt.IsZero() {
		b.WriteString("ещё не было\n\n")
	} else {
		b.WriteString(m.status.LastSyncAt.Format("15:04:05") + "\n\n")
	}

	if len(m.status.Devices) > 0 {
		b.WriteString(titleStyle.Render("Устройства аккаунта") + "\n")
		online := make(map[string]struct{}, len(m.status.Online))
		for _, id := range m.status.Online {
			online[id] = struct{}{}
		}
		for _, d := range m.status.Devices {
			marker := "○"
			if _, ok := online[d.ID]; ok {
				marker = onlineStyle.Render("●")
			}
			b.WriteString(fmt.Sprintf("  %s %s (%s)\n", marker, d.Name, d.ID))
		}
		b.WriteString("\n")
	}

	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg) + "\n")
	}
	if m.flash != "" {
		b.WriteString(m.flash + "\n")
	}

	b.WriteString(helpStyle.Render("[s] синхронизация  [n] новая запись  [c] копировать отпечаток  [q] выход"))

	return appStyle.Render(b.String())
}

func (m statusModel) viewEditing() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Новая запись") + "\n\n")
	b.WriteString(m.inputs[0].View() + "\n")
	b.WriteString(m.inputs[1].View() + "\n\n")
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg) + "\n")
	}
	b.WriteString(helpStyle.Render("[tab] следующее поле  [enter] сохранить  [esc] отмена"))

	return appStyle.Render(b.String())
}

// renderVector prints the vector with device IDs in stable order.
func renderVector(st SyncStatus) string {
	if len(st.Vector) == 0 {
		return "пусто"
	}

	ids := make([]string, 0, len(st.Vector))
	for id := range st.Vector {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, fmt.Sprintf("%s:%d", id, st.Vector[id]))
	}
	return strings.Join(parts, "  ")
}
