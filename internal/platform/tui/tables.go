package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/furnace-pets/internal/game"
	"github.com/vovakirdan/furnace-pets/internal/shop"
)

// Table layout constants
const (
	tableMinHeight = 4
	tableChrome    = 12 // title, balance, status, help and borders
)

func tableHeight(screenH int) int {
	return max(tableMinHeight, screenH-tableChrome)
}

// newTable creates a focused table with the shared styling.
func newTable(columns []table.Column, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// newShopTable lists the catalog with price and ownership.
func newShopTable(height int) table.Model {
	return newTable([]table.Column{
		{Title: "Item", Width: 18},
		{Title: "Price", Width: 8},
		{Title: "Status", Width: 12},
	}, height)
}

// shopRows renders catalog items against the current balance and inventory.
func shopRows(items []shop.Item, st game.State) []table.Row {
	rows := make([]table.Row, len(items))
	for i, it := range items {
		status := ""
		switch {
		case st.Owns(it.ID):
			status = "owned"
		case st.TotalCurrency < it.Price:
			status = fmt.Sprintf("need %d", it.Price-st.TotalCurrency)
		}
		rows[i] = table.Row{it.Name, fmt.Sprintf("%d", it.Price), status}
	}
	return rows
}

// newInventoryTable lists owned items in acquisition order.
func newInventoryTable(height int) table.Model {
	return newTable([]table.Column{
		{Title: "#", Width: 4},
		{Title: "Item", Width: 18},
		{Title: "Id", Width: 26},
	}, height)
}

func inventoryRows(inv []game.InventoryItem) []table.Row {
	rows := make([]table.Row, len(inv))
	for i, it := range inv {
		rows[i] = table.Row{fmt.Sprintf("%d", i+1), it.Name, it.ID}
	}
	return rows
}
