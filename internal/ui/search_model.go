package ui

import (
	"context"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"golang.org/x/text/message"

	"github.com/yourusername/repobrowser/internal/adapter/github"
	"github.com/yourusername/repobrowser/internal/domain"
	"github.com/yourusername/repobrowser/internal/ui/components"
	"github.com/yourusername/repobrowser/internal/ui/debounce"
	"github.com/yourusername/repobrowser/internal/ui/layout"
	"github.com/yourusername/repobrowser/internal/ui/theme"
	"github.com/yourusername/repobrowser/internal/usecase"
)

// focusArea is the part of the screen receiving keys.
type focusArea int

const (
	focusInput focusArea = iota
	focusList
)

// fetchDoneMsg carries a completed fetch back into the update loop.
type fetchDoneMsg struct {
	outcome usecase.FetchOutcome
}

// openedMsg reports the result of opening a repository in the browser.
type openedMsg struct {
	fullName string
	err      error
}

// SearchModelOptions configures a SearchModel.
type SearchModelOptions struct {
	Session  *usecase.SearchSession
	Browser  github.Browser
	Logger   zerolog.Logger
	Debounce time.Duration // zero uses domain.DebounceInterval
	Context  context.Context
}

// SearchModel is the interactive repository search screen.
//
// All session transitions happen in Update. Fetches run as commands and come
// back as fetchDoneMsg, where the session discards superseded responses.
type SearchModel struct {
	session  *usecase.SearchSession
	debounce *debounce.Controller
	browser  github.Browser
	log      zerolog.Logger
	ctx      context.Context
	printer  *message.Printer
	keys     keyMap

	input    textinput.Model
	spinner  spinner.Model
	viewport viewport.Model
	help     help.Model

	focus    focusArea
	selected int
	picker   *components.PickerModal
	notice   string

	windowWidth  int
	windowHeight int
}

// NewSearchModel creates the search screen for an unstarted session.
func NewSearchModel(opts SearchModelOptions) SearchModel {
	interval := opts.Debounce
	if interval <= 0 {
		interval = domain.DebounceInterval
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	ti := textinput.New()
	ti.Placeholder = "Search repositories (default: " + domain.DefaultSearchTerm + ")"
	ti.Prompt = "⌕ "
	ti.CharLimit = 256
	ti.SetValue(opts.Session.State().Criteria().Text())
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := SearchModel{
		session:      opts.Session,
		debounce:     debounce.New(interval),
		browser:      opts.Browser,
		log:          opts.Logger.With().Str("component", "ui").Logger(),
		ctx:          ctx,
		printer:      newPrinter(),
		keys:         defaultKeyMap(),
		input:        ti,
		spinner:      sp,
		viewport:     viewport.New(0, 0),
		help:         newHelp(),
		focus:        focusInput,
		windowWidth:  120,
		windowHeight: 40,
	}
	m.resize()
	return m
}

// newHelp styles the key help with the active theme.
func newHelp() help.Model {
	styles := theme.GetGlobalThemeManager().GetStyles()
	h := help.New()
	h.Styles.ShortKey = styles.ShortcutKey
	h.Styles.ShortDesc = styles.ShortcutDesc
	h.Styles.ShortSeparator = styles.Separator
	h.Styles.FullKey = styles.ShortcutKey
	h.Styles.FullDesc = styles.ShortcutDesc
	h.Styles.FullSeparator = styles.Separator
	return h
}

// Init starts the cursor, the spinner and the initial fetch.
func (m SearchModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, m.fetch(m.session.Start()))
}

// fetch runs ticket off the update loop.
func (m SearchModel) fetch(ticket usecase.FetchTicket) tea.Cmd {
	session := m.session
	ctx := m.ctx
	return func() tea.Msg {
		return fetchDoneMsg{outcome: session.Fetch(ctx, ticket)}
	}
}

// Update handles messages and updates the screen state.
func (m SearchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		m.windowHeight = msg.Height
		m.resize()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case debounce.FiredMsg:
		text, ok := m.debounce.Accept(msg)
		if !ok {
			return m, nil
		}
		cmd := m.search(text, m.session.State().Criteria().Sort())
		return m, cmd

	case fetchDoneMsg:
		if m.session.Resolve(msg.outcome) && msg.outcome.Err == nil {
			m.selected = 0
			m.viewport.GotoTop()
			// The total shrank below the requested page; load the clamped one.
			if page := m.session.State().CurrentPage(); page != msg.outcome.Ticket.Criteria.Page() {
				cmd := m.fetch(m.session.Refresh())
				m.refreshContent()
				return m, cmd
			}
		}
		m.clampSelection()
		m.refreshContent()
		return m, nil

	case openedMsg:
		if msg.err != nil {
			m.log.Warn().Err(msg.err).Str("repo", msg.fullName).Msg("open in browser failed")
			m.notice = "Couldn't open " + msg.fullName + " in the browser."
		}
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		m.notice = ""

		if m.picker != nil {
			return m.updatePicker(msg)
		}
		if m.focus == focusInput {
			return m.updateInput(msg)
		}
		return m.updateList(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m SearchModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		m.debounce.Cancel()
		cmd := m.search(m.input.Value(), m.session.State().Criteria().Sort())
		return m, cmd

	case msg.Type == tea.KeyTab, key.Matches(msg, m.keys.Cancel):
		m.setFocus(focusList)
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if after := m.input.Value(); after != before {
		return m, tea.Batch(cmd, m.debounce.Notify(after))
	}
	return m, cmd
}

func (m SearchModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Focus):
		cmd := m.setFocus(focusInput)
		return m, cmd

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.moveSelection(-1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.moveSelection(1)
		return m, nil

	case key.Matches(msg, m.keys.PrevPage):
		ticket, ok := m.session.PrevPage()
		cmd := m.issue(ticket, ok)
		return m, cmd

	case key.Matches(msg, m.keys.NextPage):
		ticket, ok := m.session.NextPage()
		cmd := m.issue(ticket, ok)
		return m, cmd

	case key.Matches(msg, m.keys.JumpPage):
		cmd := m.jumpToWindowSlot(msg.String())
		return m, cmd

	case key.Matches(msg, m.keys.Sort):
		m.openPicker()
		return m, nil

	case key.Matches(msg, m.keys.Open):
		return m, m.openSelected()

	case key.Matches(msg, m.keys.Refresh):
		return m, m.fetch(m.session.Refresh())
	}

	return m, nil
}

func (m SearchModel) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.picker.Up()
	case key.Matches(msg, m.keys.Down):
		m.picker.Down()
	case key.Matches(msg, m.keys.Cancel), key.Matches(msg, m.keys.Quit):
		m.picker = nil
	case msg.Type == tea.KeyEnter:
		sort := domain.AllSortFields()[m.picker.Cursor()]
		m.picker = nil
		cmd := m.applySort(sort)
		return m, cmd
	}
	return m, nil
}

// search issues a fresh query and resets the selection.
func (m *SearchModel) search(text string, sort domain.SortField) tea.Cmd {
	m.selected = 0
	m.viewport.GotoTop()
	m.refreshContent()
	return m.fetch(m.session.Search(text, sort))
}

// applySort changes the sort. Text still waiting for the debounce is sent
// together with the new sort as one fresh query.
func (m *SearchModel) applySort(sort domain.SortField) tea.Cmd {
	if text, pending := m.debounce.Flush(); pending {
		return m.search(text, sort)
	}
	ticket, ok := m.session.ChangeSort(sort)
	return m.issue(ticket, ok)
}

func (m *SearchModel) issue(ticket usecase.FetchTicket, ok bool) tea.Cmd {
	if !ok {
		return nil
	}
	m.refreshContent()
	return m.fetch(ticket)
}

// jumpToWindowSlot selects the n-th page shown in the pagination window,
// with "0" meaning the tenth.
func (m *SearchModel) jumpToWindowSlot(digit string) tea.Cmd {
	n, err := strconv.Atoi(digit)
	if err != nil {
		return nil
	}
	if n == 0 {
		n = 10
	}

	state := m.session.State()
	pages := domain.PlanPages(state.CurrentPage(), state.TotalPages(), domain.PaginationWindow)
	if n > len(pages) {
		return nil
	}

	ticket, ok := m.session.SelectPage(pages[n-1])
	return m.issue(ticket, ok)
}

func (m *SearchModel) openPicker() {
	current := m.session.State().Criteria().Sort()

	fields := domain.AllSortFields()
	options := make([]components.ModalOption, len(fields))
	for i, f := range fields {
		options[i] = components.ModalOption{Label: f.Label(), Active: f == current}
	}
	m.picker = components.NewPickerModal("Sort by", options)
}

func (m SearchModel) openSelected() tea.Cmd {
	card, ok := m.selectedCard()
	if !ok || m.browser == nil {
		return nil
	}

	browser := m.browser
	ctx := m.ctx
	return func() tea.Msg {
		return openedMsg{fullName: card.FullName, err: browser.OpenRepository(ctx, card.FullName, card.URL)}
	}
}

func (m SearchModel) selectedCard() (CardView, bool) {
	vm := BuildViewModel(m.session.State(), m.printer)
	if m.selected < 0 || m.selected >= len(vm.Cards) {
		return CardView{}, false
	}
	return vm.Cards[m.selected], true
}

func (m *SearchModel) setFocus(f focusArea) tea.Cmd {
	m.focus = f
	m.refreshContent()
	if f == focusInput {
		return m.input.Focus()
	}
	m.input.Blur()
	return nil
}

func (m *SearchModel) moveSelection(delta int) {
	m.selected += delta
	m.clampSelection()
	m.refreshContent()
	m.scrollToSelection()
}

func (m *SearchModel) clampSelection() {
	result, ok := m.session.State().LastResult()
	if !ok || result.Len() == 0 {
		m.selected = 0
		return
	}
	if m.selected >= result.Len() {
		m.selected = result.Len() - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

// scrollToSelection keeps the selected card's row inside the viewport.
func (m *SearchModel) scrollToSelection() {
	cols := layout.CalculateColumns(m.viewport.Width)
	top := (m.selected / cols) * layout.CardHeight
	bottom := top + layout.CardHeight

	if top < m.viewport.YOffset {
		m.viewport.SetYOffset(top)
	} else if bottom > m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(bottom - m.viewport.Height)
	}
}

func (m *SearchModel) resize() {
	m.input.Width = m.windowWidth - 8
	m.help.Width = m.windowWidth

	height := layout.CalculateContentHeight(m.windowHeight)
	if m.help.ShowAll {
		height -= len(m.keys.FullHelp()[0])
	}
	m.viewport.Width = m.windowWidth
	m.viewport.Height = max(height, layout.CardHeight)
	m.refreshContent()
}

func (m *SearchModel) refreshContent() {
	vm := BuildViewModel(m.session.State(), m.printer)
	m.viewport.SetContent(renderGrid(vm.Cards, m.viewport.Width, m.selected, m.focus == focusList))
}
