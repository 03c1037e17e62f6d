package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/sweepwatch/engine/internal/views"
)

// classColors maps the engine's style classes onto terminal colors.
var classColors = map[string]tcell.Color{
	"amount-small":     tcell.ColorWhite,
	"amount-medium":    tcell.ColorOrange,
	"amount-large":     tcell.ColorYellow,
	"amount-huge":      tcell.ColorGreenYellow,
	"amount-giant":     tcell.ColorGreen,
	"amount-godlike":   tcell.ColorFuchsia,
	"amount-legendary": tcell.ColorRed,
}

func classColor(class string) tcell.Color {
	if c, ok := classColors[class]; ok {
		return c
	}
	return tcell.ColorWhite
}

// renderTabBar highlights the active tab and shows the filter toggles.
func (a *App) renderTabBar() {
	a.tabBar.Clear()
	parts := make([]string, 0, len(views.Tabs))
	for i, tab := range views.Tabs {
		if tab == a.session.ActiveTab {
			parts = append(parts, fmt.Sprintf("[black:aqua] %d %s [-:-]", i+1, tab))
		} else {
			parts = append(parts, fmt.Sprintf("[aqua] %d %s [-]", i+1, tab))
		}
	}
	toggles := ""
	if a.session.Filters.IgnoreSports {
		toggles += " [red][no sports][-]"
	}
	if a.session.Filters.IgnoreCrypto {
		toggles += " [red][no crypto][-]"
	}
	fmt.Fprint(a.tabBar, strings.Join(parts, "|")+toggles)
}

// renderModel draws the view model into the table and pager bar.
func (a *App) renderModel(m views.Model) {
	a.table.Clear()
	a.table.SetTitle(fmt.Sprintf(" %s (%d) ", m.Tab, m.Total))

	switch m.Kind {
	case views.KindError:
		a.renderNotice("⚠️  Data source unavailable", tcell.ColorRed)
		a.pagerBar.Clear()
		return
	case views.KindEmpty:
		a.renderNotice(emptyNotice(m), tcell.ColorAqua)
		a.pagerBar.Clear()
		return
	}

	switch m.Tab {
	case views.TabFeed, views.TabWhales:
		a.renderSweepRows(m.SweepRows)
	case views.TabNoMarkets:
		a.renderMarketRows(m.MarketRows, "NO Volume", false)
	case views.TabEdgeMarkets:
		a.renderEdgeRows(m.MarketRows)
	case views.TabClosingSoon:
		a.renderExpiringRows(m.ExpiringRows)
	case views.TabClusters:
		a.renderMarketRows(m.MarketRows, "Volume", true)
	}

	a.renderPager(m.Pager)
}

func emptyNotice(m views.Model) string {
	if m.EmptyReason == views.FiltersExcludeAll {
		return "No rows match your filters"
	}
	switch m.Tab {
	case views.TabWhales:
		return "🐋 No whale sweeps in the window"
	case views.TabClosingSoon:
		return "No markets closing soon"
	default:
		return "No data yet..."
	}
}

func (a *App) renderNotice(text string, color tcell.Color) {
	cell := tview.NewTableCell(text).
		SetTextColor(color).
		SetAlign(tview.AlignCenter).
		SetExpansion(1).
		SetSelectable(false)
	a.table.SetCell(0, 0, cell)
}

func (a *App) setHeader(headers []string) {
	for col, header := range headers {
		cell := tview.NewTableCell(header).
			SetTextColor(tview.Styles.SecondaryTextColor).
			SetAlign(tview.AlignLeft).
			SetSelectable(false)
		a.table.SetCell(0, col, cell)
	}
}

func (a *App) renderSweepRows(rows []views.SweepRow) {
	a.setHeader([]string{"Amount", "Side", "Price", "Market", "Time"})

	now := time.Now()
	for i, r := range rows {
		row := i + 1

		amount := views.FormatUSD(r.Sweep.AmountUSD)
		if r.Heat.Marker != "" {
			amount = r.Heat.Marker + " " + amount
		}
		amountCell := tview.NewTableCell(amount).
			SetTextColor(classColor(r.Heat.Class)).
			SetAlign(tview.AlignRight)

		cells := []*tview.TableCell{
			amountCell,
			tview.NewTableCell(r.Sweep.Outcome),
			tview.NewTableCell(views.FormatPrice(r.Sweep.Price)).SetAlign(tview.AlignRight),
			tview.NewTableCell(truncate(r.Sweep.Title, 60)).SetMaxWidth(60),
			tview.NewTableCell(views.TimeAgo(r.Sweep.Timestamp, now)),
		}
		for col, cell := range cells {
			if r.IsNew {
				cell.SetAttributes(tcell.AttrBold)
			}
			a.table.SetCell(row, col, cell)
		}
	}
}

func (a *App) renderMarketRows(rows []views.MarketRow, volumeHeader string, withCount bool) {
	if withCount {
		a.setHeader([]string{"Sweeps", volumeHeader, "Market"})
	} else {
		a.setHeader([]string{volumeHeader, "Market"})
	}

	for i, r := range rows {
		row := i + 1
		col := 0

		if withCount {
			a.table.SetCell(row, col, tview.NewTableCell(fmt.Sprintf("🔥 %d", r.Count)).
				SetTextColor(tcell.ColorMediumOrchid).
				SetAlign(tview.AlignRight))
			col++
		}

		volume := views.FormatUSD(r.Volume)
		if r.Heat.Marker != "" {
			volume = r.Heat.Marker + " " + volume
		}
		a.table.SetCell(row, col, tview.NewTableCell(volume).
			SetTextColor(classColor(r.Heat.Class)).
			SetAlign(tview.AlignRight))
		col++

		a.table.SetCell(row, col, tview.NewTableCell(truncate(r.Title, 70)).SetMaxWidth(70))
	}
}

func (a *App) renderEdgeRows(rows []views.MarketRow) {
	a.setHeader([]string{"Current Price", "Market"})

	for i, r := range rows {
		row := i + 1
		a.table.SetCell(row, 0, tview.NewTableCell(views.FormatPrice(r.Price)).
			SetTextColor(tcell.ColorAqua).
			SetAlign(tview.AlignRight))
		a.table.SetCell(row, 1, tview.NewTableCell(truncate(r.Title, 70)).SetMaxWidth(70))
	}
}

func (a *App) renderExpiringRows(rows []views.ExpiringRow) {
	a.setHeader([]string{"Expires In", "Market"})

	for i, r := range rows {
		row := i + 1
		color := tcell.ColorGray
		switch r.Urgency {
		case views.UrgencyCritical:
			color = tcell.ColorRed
		case views.UrgencyWarning:
			color = tcell.ColorYellow
		}
		a.table.SetCell(row, 0, tview.NewTableCell(views.FormatHours(r.Market.HoursUntil)).
			SetTextColor(color).
			SetAlign(tview.AlignRight))
		a.table.SetCell(row, 1, tview.NewTableCell(truncate(r.Market.Title, 70)).SetMaxWidth(70))
	}
}

// renderPager draws the pagination controls computed by the engine.
func (a *App) renderPager(p views.Pager) {
	a.pagerBar.Clear()
	if p.Total <= 1 {
		return
	}

	var b strings.Builder
	if p.HasPrev {
		b.WriteString("[aqua]◀[-] ")
	} else {
		b.WriteString("[gray]◀[-] ")
	}
	if p.First {
		b.WriteString("[aqua]1[-] ")
		if p.LeadingGap {
			b.WriteString("[gray]…[-] ")
		}
	}
	for _, n := range p.Pages {
		if n == p.Current {
			fmt.Fprintf(&b, "[black:aqua]%d[-:-] ", n)
		} else {
			fmt.Fprintf(&b, "[aqua]%d[-] ", n)
		}
	}
	if p.Last {
		if p.TrailingGap {
			b.WriteString("[gray]…[-] ")
		}
		fmt.Fprintf(&b, "[aqua]%d[-] ", p.Total)
	}
	if p.HasNext {
		b.WriteString("[aqua]▶[-]")
	} else {
		b.WriteString("[gray]▶[-]")
	}

	fmt.Fprint(a.pagerBar, b.String())
}

// renderStatus draws the live/paused indicator, last poll time, and the
// live ticker fed by the stream.
func (a *App) renderStatus() {
	a.statusBar.Clear()

	var b strings.Builder
	if a.paused.Load() {
		b.WriteString("[yellow]⏸ PAUSED[-]")
	} else {
		b.WriteString("[green]● LIVE[-]")
	}

	if a.haveSnap {
		fmt.Fprintf(&b, "  updated %s", a.snap.FetchedAt.Format("15:04:05"))
	}
	if a.srcErr != nil {
		b.WriteString("  [red]source unavailable[-]")
	}

	a.tickerMu.Lock()
	sweep, at := a.liveSweep, a.liveSweepAt
	a.tickerMu.Unlock()
	if !at.IsZero() {
		fmt.Fprintf(&b, "  [aqua]last: %s %s @ %s[-]",
			views.FormatUSD(sweep.AmountUSD), sweep.Outcome, truncate(sweep.Title, 40))
	}

	b.WriteString("  [gray]1-6 tabs · ◀ ▶ page · s/c filters · / min $ · q quit[-]")
	fmt.Fprint(a.statusBar, b.String())
}

// truncate shortens a string for display.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
