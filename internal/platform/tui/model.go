package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/furnace-pets/internal/activity"
	"github.com/vovakirdan/furnace-pets/internal/game"
	"github.com/vovakirdan/furnace-pets/internal/pet"
)

// refreshRate is the fallback poll of the step reading and mood. Mood
// changes and simulated ticks are pushed as they happen.
const refreshRate = 1

type screen int

const (
	screenHome screen = iota
	screenShop
	screenInventory
	screenWeek
)

// Model is the Bubble Tea model of one player's pet.
type Model struct {
	session *Session
	engine  *game.Engine
	keys    KeyMap
	help    help.Model
	events  chan tea.Msg

	screen    screen
	shopTable table.Model
	invTable  table.Model
	weekInput textinput.Model
	entry     *activity.Entry

	snap      game.Snapshot
	steps     int
	status    string
	statusErr bool
	width     int
	height    int
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the session.
func NewModel(sess *Session, width, height int) Model {
	ti := textinput.New()
	ti.Placeholder = "0"
	ti.CharLimit = 9
	ti.Width = 12
	ti.Prompt = "› "

	m := Model{
		session:   sess,
		engine:    sess.Engine,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		events:    make(chan tea.Msg, eventBuffer),
		shopTable: newShopTable(tableHeight(height)),
		invTable:  newInventoryTable(tableHeight(height)),
		weekInput: ti,
		width:     width,
		height:    height,
	}
	m.help.Width = width

	events := m.events
	sess.Engine.OnMoodChange(func(mood pet.Mood) { offer(events, MoodMsg(mood)) })
	sess.OnSteps(func(steps int) { offer(events, StepsMsg(steps)) })

	m.refresh()
	return m
}

// Init starts the refresh loop and the wait for pushed events.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(refreshRate), m.waitForEvent())
}

// waitForEvent returns a command that waits for the next pushed event.
func (m Model) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		if m.events == nil {
			return nil
		}
		select {
		case evt := <-m.events:
			return evt
		case <-m.session.Done():
			return nil
		}
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		switch m.screen {
		case screenShop:
			return m.updateShop(msg)
		case screenInventory:
			return m.updateInventory(msg)
		case screenWeek:
			return m.updateWeek(msg)
		default:
			return m.updateHome(msg)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.shopTable.SetHeight(tableHeight(msg.Height))
		m.invTable.SetHeight(tableHeight(msg.Height))
		return m, nil

	case TickMsg:
		m.refresh()
		return m, tickCmd(refreshRate)

	case MoodMsg, StepsMsg:
		m.refresh()
		return m, m.waitForEvent()
	}

	if m.screen == screenWeek {
		var cmd tea.Cmd
		m.weekInput, cmd = m.weekInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// refresh re-reads the step source and the engine snapshot.
func (m *Model) refresh() {
	m.steps = m.session.Steps()
	m.snap = m.engine.Snapshot(m.steps)
	m.shopTable.SetRows(shopRows(m.engine.Catalog().List(), m.snap.State))
	m.invTable.SetRows(inventoryRows(m.snap.State.Inventory))
}

func (m *Model) setStatus(msg string) {
	m.status, m.statusErr = msg, false
}

func (m *Model) setError(err error) {
	m.status, m.statusErr = describeError(err), true
}

// updateHome handles keys on the pet screen.
func (m Model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Convert):
		amount, err := m.engine.Convert(m.session.Steps())
		if err != nil {
			m.setError(err)
		} else {
			m.setStatus(fmt.Sprintf("+%d coins!", amount))
		}

	case key.Matches(msg, m.keys.Tap):
		m.engine.TapPet()

	case key.Matches(msg, m.keys.StepsUp):
		m.session.AdjustSteps(1)

	case key.Matches(msg, m.keys.StepsDown):
		m.session.AdjustSteps(-1)

	case key.Matches(msg, m.keys.Reset):
		m.engine.ResetCurrency()
		m.setStatus("Coins reset to 0")

	case key.Matches(msg, m.keys.Shop):
		m.screen = screenShop
		m.shopTable.GotoTop()
		m.status = ""

	case key.Matches(msg, m.keys.Inventory):
		m.screen = screenInventory
		m.invTable.GotoTop()
		m.status = ""

	case key.Matches(msg, m.keys.Week):
		m.screen = screenWeek
		m.entry = m.engine.BeginWeeklyEntry()
		m.weekInput.SetValue("")
		m.status = ""
		m.refresh()
		return m, m.weekInput.Focus()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	m.refresh()
	return m, nil
}

// updateShop handles keys on the shop table.
func (m Model) updateShop(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.screen = screenHome
		m.status = ""
		return m, nil

	case key.Matches(msg, m.keys.Select):
		items := m.engine.Catalog().List()
		idx := m.shopTable.Cursor()
		if idx < 0 || idx >= len(items) {
			return m, nil
		}
		bought, err := m.engine.Purchase(items[idx])
		if err != nil {
			m.setError(err)
		} else {
			m.setStatus(fmt.Sprintf("Bought %s!", bought.Name))
		}
		m.refresh()
		return m, nil
	}

	m.shopTable, cmd = m.shopTable.Update(msg)
	return m, cmd
}

// updateInventory handles keys on the inventory table.
func (m Model) updateInventory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.screen = screenHome
		m.status = ""
		return m, nil

	case key.Matches(msg, m.keys.Equip):
		inv := m.snap.State.Inventory
		idx := m.invTable.Cursor()
		if idx < 0 || idx >= len(inv) {
			return m, nil
		}
		if err := m.engine.Equip(inv[idx]); err != nil {
			m.setError(err)
		} else {
			m.setStatus(fmt.Sprintf("%s: equipping is coming soon", inv[idx].Name))
		}
		return m, nil

	case key.Matches(msg, m.keys.Clear):
		m.engine.ClearInventory()
		m.setStatus("Inventory cleared")
		m.refresh()
		m.invTable.GotoTop()
		return m, nil
	}

	m.invTable, cmd = m.invTable.Update(msg)
	return m, cmd
}

// updateWeek drives the day-by-day weekly entry. Only a complete entry
// reaches the engine.
func (m Model) updateWeek(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.entry.Cancel()
		m.entry = nil
		m.weekInput.Blur()
		m.screen = screenHome
		m.setStatus("Weekly entry cancelled, nothing changed")
		return m, nil

	case tea.KeyEnter:
		if err := m.entry.AddText(m.weekInput.Value()); err != nil {
			m.setError(err)
			return m, nil
		}
		m.weekInput.SetValue("")
		if !m.entry.Complete() {
			return m, nil
		}

		err := m.engine.CommitWeekly(m.entry)
		m.entry = nil
		m.weekInput.Blur()
		m.screen = screenHome
		if err != nil {
			m.setError(err)
		} else {
			m.refresh()
			m.setStatus(fmt.Sprintf("Weekly steps saved: %d total", m.snap.WeeklyTotal))
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.weekInput, cmd = m.weekInput.Update(msg)
	return m, cmd
}

// View renders the current screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch m.screen {
	case screenShop:
		body = m.viewShop()
	case screenInventory:
		body = m.viewInventory()
	case screenWeek:
		body = m.viewWeek()
	default:
		body = m.viewHome()
	}

	if s := renderStatus(m.status, m.statusErr); s != "" {
		body += "\n\n" + s
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(body)
}

func (m Model) viewHome() string {
	var b strings.Builder

	title := fmt.Sprintf("%s  ·  level %d", m.engine.PetName(), m.snap.State.PetLevel)
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	petBox := lipgloss.JoinVertical(lipgloss.Center,
		renderPet(m.snap.Category, m.snap.Mood),
		"",
		labelStyle.Render(string(m.snap.Mood)),
	)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, petBox, "   ", renderStats(m.snap, m.steps)))
	b.WriteString("\n\n")
	b.WriteString(renderConvertButton(m.snap))
	b.WriteString("\n\n")
	if hint := nextItemHint(m.engine.Catalog().List(), m.snap); hint != "" {
		b.WriteString(mutedStyle.Render(hint))
		b.WriteString("\n\n")
	}
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m Model) viewShop() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("SHOP"))
	b.WriteString("  ")
	b.WriteString(coinStyle.Render(fmt.Sprintf("%d coins", m.snap.State.TotalCurrency)))
	b.WriteString("\n\n")
	b.WriteString(panelStyle.Render(m.shopTable.View()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(listKeys{KeyMap: m.keys})))
	return b.String()
}

func (m Model) viewInventory() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("INVENTORY"))
	b.WriteString("\n\n")
	if len(m.snap.State.Inventory) == 0 {
		b.WriteString(panelStyle.Render(mutedStyle.Render("Nothing here yet.\nVisit the shop to buy something!")))
	} else {
		b.WriteString(panelStyle.Render(m.invTable.View()))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(listKeys{KeyMap: m.keys, inventory: true})))
	return b.String()
}

func (m Model) viewWeek() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("WEEKLY STEPS"))
	b.WriteString("\n\n")

	current := m.snap.State.WeeklySteps
	for i, name := range activity.DayNames {
		line := fmt.Sprintf("%-10s %6d", name, current[i])
		if m.entry != nil && i < m.entry.Len() {
			line = valueStyle.Render(fmt.Sprintf("%-10s %6s", name, "✓"))
		}
		b.WriteString(labelStyle.Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.entry != nil {
		if _, name, ok := m.entry.Day(); ok {
			b.WriteString(fmt.Sprintf("Steps for %s:\n", name))
			b.WriteString(m.weekInput.View())
			b.WriteString("\n\n")
		}
	}
	b.WriteString(helpStyle.Render("enter next day • esc cancel"))
	return b.String()
}

// describeError turns engine errors into player-facing messages.
func describeError(err error) string {
	switch {
	case errors.Is(err, game.ErrNothingToConvert):
		return "No new steps to convert yet. Go for a walk!"
	case errors.Is(err, game.ErrDuplicateItem):
		return "You already own that item."
	case errors.Is(err, game.ErrInsufficientFunds):
		return "Not enough coins for that."
	default:
		return err.Error()
	}
}

// Run starts the Bubble Tea program for the session.
func Run(sess *Session, width, height int) error {
	model := NewModel(sess, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
