// Package ui provides the terminal render boundary: it turns view models
// into tview tables and wires navigation back into the session.
package ui

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/sweepwatch/engine/internal/store"
	"github.com/sweepwatch/engine/internal/views"
)

// App is the dashboard application. All session and snapshot state is
// owned by the tview event goroutine; external goroutines reach it only
// through QueueUpdateDraw.
type App struct {
	app *tview.Application

	tabBar    *tview.TextView
	filter    *tview.InputField
	table     *tview.Table
	pagerBar  *tview.TextView
	statusBar *tview.TextView
	layout    *tview.Flex

	session views.Session
	opts    views.Options

	snap     store.Snapshot
	haveSnap bool
	srcErr   error

	paused atomic.Bool

	tickerMu    sync.Mutex
	liveSweep   store.Sweep
	liveSweepAt time.Time
}

// NewApp creates the dashboard with an empty working set.
func NewApp(opts views.Options) *App {
	a := &App{
		app:     tview.NewApplication(),
		session: views.NewSession(),
		opts:    opts,
	}

	a.tabBar = tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	a.filter = tview.NewInputField().
		SetLabel(" Min $ ").
		SetFieldWidth(10).
		SetAcceptanceFunc(tview.InputFieldFloat)
	a.filter.SetChangedFunc(func(text string) {
		a.session.Filters.MinAmountInput = text
		a.render()
	})
	a.filter.SetDoneFunc(func(tcell.Key) {
		a.app.SetFocus(a.table)
	})

	a.table = tview.NewTable().
		SetBorders(false).
		SetFixed(1, 0)
	a.table.SetBorder(true)

	a.pagerBar = tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false).
		SetTextAlign(tview.AlignCenter)

	a.statusBar = tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	a.layout = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(a.tabBar, 1, 0, false).
		AddItem(a.filter, 1, 0, false).
		AddItem(a.table, 0, 1, true).
		AddItem(a.pagerBar, 1, 0, false).
		AddItem(a.statusBar, 1, 0, false)

	a.app.SetRoot(a.layout, true).EnableMouse(true)
	a.setupKeyboard()
	a.setupMouse()
	a.render()

	return a
}

// setupKeyboard wires tab switching, page navigation and filter toggles.
func (a *App) setupKeyboard() {
	a.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		// The filter field consumes its own keys.
		if a.app.GetFocus() == a.filter {
			return event
		}

		switch event.Key() {
		case tcell.KeyCtrlC:
			a.Stop()
			return nil
		case tcell.KeyLeft:
			a.session.GoToPage(a.session.Page - 1)
			a.render()
			return nil
		case tcell.KeyRight:
			a.session.GoToPage(a.session.Page + 1)
			a.render()
			return nil
		case tcell.KeyTab:
			next := (int(a.session.ActiveTab) + 1) % len(views.Tabs)
			a.session.SwitchTab(views.Tabs[next])
			a.render()
			return nil
		case tcell.KeyRune:
			switch r := event.Rune(); r {
			case 'q', 'Q':
				a.Stop()
				return nil
			case '1', '2', '3', '4', '5', '6':
				a.session.SwitchTab(views.Tabs[r-'1'])
				a.render()
				return nil
			case 's', 'S':
				a.session.Filters.IgnoreSports = !a.session.Filters.IgnoreSports
				a.render()
				return nil
			case 'c', 'C':
				a.session.Filters.IgnoreCrypto = !a.session.Filters.IgnoreCrypto
				a.render()
				return nil
			case '/':
				a.app.SetFocus(a.filter)
				return nil
			}
		}
		return event
	})
}

// setupMouse pauses polling while the pointer hovers the data area, so a
// user inspecting a row is not interrupted by a reflow. The timer keeps
// running; only the tick's effect is skipped.
func (a *App) setupMouse() {
	a.app.SetMouseCapture(func(event *tcell.EventMouse, action tview.MouseAction) (*tcell.EventMouse, tview.MouseAction) {
		x, y := event.Position()
		rx, ry, rw, rh := a.table.GetRect()
		hovering := x >= rx && x < rx+rw && y >= ry && y < ry+rh
		if a.paused.Swap(hovering) != hovering {
			a.renderStatus()
		}
		return event, action
	})
}

// Run starts the TUI event loop (blocking).
func (a *App) Run() error {
	if err := a.app.Run(); err != nil {
		return fmt.Errorf("app run failed: %w", err)
	}
	return nil
}

// Stop terminates the TUI.
func (a *App) Stop() {
	a.app.Stop()
}

// Paused reports whether polling effects should be skipped this tick.
// Safe to call from the poll goroutine.
func (a *App) Paused() bool {
	return a.paused.Load()
}

// ApplySnapshot installs a freshly polled working set and re-renders the
// active tab without touching pagination or filters. Safe to call from
// the poll goroutine.
func (a *App) ApplySnapshot(snap store.Snapshot) {
	a.app.QueueUpdateDraw(func() {
		a.snap = snap
		a.haveSnap = true
		a.srcErr = nil
		a.render()
	})
}

// SetSourceError replaces the active view with the source-unavailable
// state until a later tick succeeds. The previous working set stays in
// memory. Safe to call from the poll goroutine.
func (a *App) SetSourceError(err error) {
	a.app.QueueUpdateDraw(func() {
		a.srcErr = err
		a.render()
	})
}

// SetLiveSweep feeds the status-bar ticker from the optional stream.
// Safe to call from the stream goroutine.
func (a *App) SetLiveSweep(s store.Sweep) {
	a.tickerMu.Lock()
	a.liveSweep = s
	a.liveSweepAt = time.Now()
	a.tickerMu.Unlock()
	a.app.QueueUpdateDraw(a.renderStatus)
}

// model computes the current cycle's view model.
func (a *App) model() views.Model {
	if a.srcErr != nil {
		return views.ErrorModel(a.session.ActiveTab, a.srcErr)
	}
	return views.Build(a.snap, a.session, time.Now(), a.opts)
}

// render redraws every chrome element plus the active view.
func (a *App) render() {
	a.renderTabBar()
	a.renderModel(a.model())
	a.renderStatus()
}
