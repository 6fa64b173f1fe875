package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/furnace-pets/internal/economy"
	"github.com/vovakirdan/furnace-pets/internal/game"
	"github.com/vovakirdan/furnace-pets/internal/pet"
	"github.com/vovakirdan/furnace-pets/internal/shop"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	coinStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
	buttonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)
)

// categoryColors tints the pet by its weekly look.
var categoryColors = map[pet.Category]lipgloss.Color{
	pet.CategorySad:      lipgloss.Color("12"),
	pet.CategoryNormal:   lipgloss.Color("208"),
	pet.CategoryCheerful: lipgloss.Color("13"),
}

// petArt is indexed by category. The face line is filled in with the mood.
var petArt = map[pet.Category][]string{
	pet.CategorySad: {
		"   /\\_/\\   ",
		"  ( %s )  ",
		"   > ~ <   ",
		"  (  _  )  ",
	},
	pet.CategoryNormal: {
		"   /\\_/\\   ",
		"  ( %s )  ",
		"   > ^ <   ",
		"  ( 🐾  )  ",
	},
	pet.CategoryCheerful: {
		"  \\/\\_/\\/  ",
		"  ( %s )  ",
		"   > ▽ <   ",
		"  ( 🐾🐾 ) ",
	},
}

// renderPet draws the pet for the given look and mood.
func renderPet(cat pet.Category, mood pet.Mood) string {
	art, ok := petArt[cat]
	if !ok {
		art = petArt[pet.CategoryNormal]
	}
	lines := make([]string, len(art))
	for i, l := range art {
		if strings.Contains(l, "%s") {
			l = fmt.Sprintf(l, mood.Emoji())
		}
		lines[i] = l
	}
	color, ok := categoryColors[cat]
	if !ok {
		color = categoryColors[pet.CategoryNormal]
	}
	return lipgloss.NewStyle().Foreground(color).Render(strings.Join(lines, "\n"))
}

// renderStats renders the numbers panel of the home screen.
func renderStats(snap game.Snapshot, steps int) string {
	row := func(label, value string) string {
		return labelStyle.Render(fmt.Sprintf("%-18s", label)) + value
	}
	st := snap.State

	lastConv := "never"
	if st.LastConversionTime != nil {
		lastConv = st.LastConversionTime.Local().Format("Jan 02 15:04")
	}

	lines := []string{
		row("Coins", coinStyle.Render(fmt.Sprintf("%d", st.TotalCurrency))),
		row("Level", valueStyle.Render(fmt.Sprintf("%d", st.PetLevel))),
		row("Steps today", valueStyle.Render(fmt.Sprintf("%d", steps))),
		row("Ready to convert", valueStyle.Render(fmt.Sprintf("%d", snap.Convertible))+
			labelStyle.Render(fmt.Sprintf(" (+%d coins)", snap.Preview))),
		row("Steps converted", valueStyle.Render(fmt.Sprintf("%d", st.TotalStepsConverted))),
		row("Weekly total", valueStyle.Render(fmt.Sprintf("%d", snap.WeeklyTotal))+
			labelStyle.Render(" ("+string(snap.Category)+")")),
		row("Last conversion", valueStyle.Render(lastConv)),
		row("Items owned", valueStyle.Render(fmt.Sprintf("%d", len(st.Inventory)))),
	}
	return panelStyle.Render(strings.Join(lines, "\n"))
}

// nextItemHint points at the cheapest item the player does not own and
// cannot afford yet, counting the steps already waiting to be converted.
// It is empty when nothing is out of reach.
func nextItemHint(items []shop.Item, snap game.Snapshot) string {
	var target *shop.Item
	for i := range items {
		it := &items[i]
		if snap.State.Owns(it.ID) || economy.CanAfford(snap.State.TotalCurrency, it.Price) {
			continue
		}
		if target == nil || it.Price < target.Price {
			target = it
		}
	}
	if target == nil {
		return ""
	}
	need := economy.StepsForCoins(target.Price-snap.State.TotalCurrency) - snap.Convertible
	if need <= 0 {
		return fmt.Sprintf("Convert now to afford the %s", target.Name)
	}
	return fmt.Sprintf("%d more steps to the %s", need, target.Name)
}

// renderConvertButton shows what pressing convert would do.
func renderConvertButton(snap game.Snapshot) string {
	if snap.Convertible == 0 {
		return mutedStyle.Render("[c] nothing to convert yet")
	}
	label := fmt.Sprintf("[c] convert %d steps → %d coins", snap.Convertible, snap.Preview)
	if snap.Preview == 0 {
		label += fmt.Sprintf(" (%d steps per coin)", economy.StepsPerCoin)
	}
	return buttonStyle.Render(label)
}

// renderStatus renders the last action's outcome.
func renderStatus(msg string, isErr bool) string {
	if msg == "" {
		return ""
	}
	if isErr {
		return errStyle.Render(msg)
	}
	return okStyle.Render(msg)
}
