package ui

import (
	"fmt"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"codedeck/internal/config"
	"codedeck/internal/domain"
	"codedeck/internal/eventbus"
	"codedeck/internal/history"
	"codedeck/internal/i18n"
	"codedeck/internal/ui/commands"
	"codedeck/internal/ui/input"
	inputtypes "codedeck/internal/ui/input/types"
	"codedeck/internal/ui/prompt"
	"codedeck/internal/ui/views"
	"codedeck/internal/workspace"
)

// recentHintLimit is how many history entries the palette hint shows
const recentHintLimit = 3

// Model represents the UI state
type Model struct {
	bus        eventbus.EventBus
	cfg        *config.Config
	cfgSvc     config.ConfigService
	translator *i18n.Translator
	state      *workspace.State
	registry   *commands.Registry

	width  int
	height int

	stack        *prompt.Stack
	palette      *prompt.Controller
	inputHandler *input.Handler
	renderer     *views.Renderer
	logOps       *LogOps

	settingsOpen   bool
	settingsCursor int

	statusText  string
	statusIsErr bool

	quitRequested bool
	pendingLog    bool

	// recent hint text, computed once per palette session
	recentHint string

	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, cfgSvc config.ConfigService,
	translator *i18n.Translator, state *workspace.State, hist *history.Store, logPath string) *Model {

	m := &Model{
		bus:          bus,
		cfg:          cfg,
		cfgSvc:       cfgSvc,
		translator:   translator,
		state:        state,
		stack:        prompt.NewStack(),
		inputHandler: input.New(),
		renderer:     views.NewRenderer(),
		logOps:       NewLogOps(logPath),
	}

	m.palette = prompt.NewController(translator, m.stack)

	m.registry = commands.NewRegistry(commands.Deps{
		State:      state,
		Config:     cfg,
		ConfigSvc:  cfgSvc,
		Translator: translator,
		Bus:        bus,
		History:    hist,

		RequestQuit:  func() { m.quitRequested = true },
		OpenSettings: func() { m.settingsOpen = true },
		ShowLog:      func() { m.pendingLog = true },
	})

	if err := state.RegisterCommands(m.registry.IDs()); err != nil {
		log.Printf("ui: registering commands: %v", err)
	}

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.logOps.SetProgram(p)
}

// Registry exposes the command registry, mainly for the CLI layer
func (m *Model) Registry() *commands.Registry {
	return m.registry
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		ctx := m.inputContext()
		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}

		if followUp := m.settle(); followUp != nil {
			cmds = append(cmds, followUp)
		}
		return m, tea.Batch(cmds...)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case EventMsg:
		m.handleEvent(msg.Event)
		return m, nil

	case logPagerMsg:
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("log pager: %v", msg.err), true)
		}
		return m, nil

	case statusMsg:
		m.setStatus(msg.text, msg.isErr)
		return m, nil
	}

	return m, nil
}

// handleMouse closes the palette when the translucent backdrop is
// clicked, i.e. a press outside the palette's content box.
func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if !m.paletteOpen() {
		return m, nil
	}
	if m.renderer.PaletteRect().Contains(msg.X, msg.Y) {
		return m, nil
	}

	m.palette.Close()
	if m.bus != nil {
		m.bus.Publish(eventbus.PromptClosedEvent{})
	}
	return m, m.settle()
}

func (m *Model) handleEvent(event eventbus.DomainEvent) {
	switch e := event.(type) {
	case eventbus.ErrorEvent:
		if e.Err != nil {
			m.setStatus(fmt.Sprintf("%s: %v", e.Message, e.Err), true)
		} else {
			m.setStatus(e.Message, true)
		}
	case eventbus.StateSavedEvent:
		m.setStatus("workspace saved", false)
	case eventbus.LocaleChangedEvent:
		m.setStatus("locale: "+e.Locale, false)
	}
}

func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.OpenPaletteAction:
		m.openPalette()

	case inputtypes.ClosePromptAction:
		m.palette.Close()
		if m.bus != nil {
			m.bus.Publish(eventbus.PromptClosedEvent{})
		}

	case inputtypes.PaletteNavigateAction:
		if a.Delta > 0 {
			m.palette.MoveDown()
		} else {
			m.palette.MoveUp()
		}

	case inputtypes.PaletteSubmitAction:
		m.palette.Submit()

	case inputtypes.UpdateFilterAction:
		m.palette.SetFilter(a.Text)

	case inputtypes.OpenSettingsAction:
		m.settingsOpen = true
		m.settingsCursor = 0

	case inputtypes.CloseSettingsAction:
		m.settingsOpen = false

	case inputtypes.SettingsNavigateAction:
		m.moveSettingsCursor(a.Delta)

	case inputtypes.SettingsToggleAction:
		m.toggleSetting()

	case inputtypes.NewTabAction:
		if _, err := m.state.OpenTab("", ""); err != nil {
			m.setStatus(fmt.Sprintf("opening tab: %v", err), true)
		}

	case inputtypes.CloseTabAction:
		if tab, ok := m.state.ActiveTab(); ok {
			if _, err := m.state.CloseTab(tab.ID); err != nil {
				m.setStatus(fmt.Sprintf("closing tab: %v", err), true)
			}
		}

	case inputtypes.CycleTabAction:
		if err := m.state.CycleTab(a.Delta); err != nil {
			m.setStatus(fmt.Sprintf("cycling tab: %v", err), true)
		}

	case inputtypes.FocusPanelAction:
		m.state.FocusPanel(a.Delta)

	case inputtypes.SplitPanelAction:
		if err := m.state.SplitPanel(); err != nil {
			m.setStatus(fmt.Sprintf("splitting panel: %v", err), true)
		}

	case inputtypes.OpenLogAction:
		m.pendingLog = true

	case inputtypes.SaveWorkspaceAction:
		if err := m.state.Save(); err != nil {
			m.setStatus(fmt.Sprintf("saving workspace: %v", err), true)
		}

	case inputtypes.QuitAction:
		m.quitRequested = true
		if a.Force {
			return tea.Quit
		}
	}

	return nil
}

// settle reconciles derived state after actions ran: it keeps the input
// mode in step with the prompt stack and settings flag, and turns
// pending requests into commands.
func (m *Model) settle() tea.Cmd {
	ctx := m.inputContext()

	if m.settingsOpen && m.inputHandler.CurrentMode() != inputtypes.ModeSettings {
		for _, a := range m.inputHandler.SetMode(inputtypes.ModeSettings, ctx) {
			m.processAction(a)
		}
	}
	if !m.settingsOpen && m.inputHandler.CurrentMode() == inputtypes.ModeSettings {
		m.inputHandler.SetMode(inputtypes.ModeNormal, ctx)
	}

	// The stack is the source of truth for the palette being mounted
	if !m.paletteOpen() && m.inputHandler.CurrentMode() == inputtypes.ModePalette {
		m.inputHandler.SetMode(inputtypes.ModeNormal, ctx)
	}

	if m.quitRequested {
		if m.cfg.UISettings.AutosaveOnExit {
			if err := m.state.Save(); err != nil {
				log.Printf("ui: autosave on exit: %v", err)
			}
		}
		return tea.Quit
	}

	if m.pendingLog {
		m.pendingLog = false
		return func() tea.Msg {
			return logPagerMsg{err: m.logOps.ShowLog()}
		}
	}

	return nil
}

func (m *Model) openPalette() {
	m.palette.Open(m.registry.Options())

	m.recentHint = ""
	if recent := m.registry.Recent(recentHintLimit); len(recent) > 0 {
		m.recentHint = m.translator.Translate(i18n.TP("prompt.recent",
			map[string]string{"commands": strings.Join(recent, ", ")}))
	}

	if m.bus != nil {
		m.bus.Publish(eventbus.PromptOpenedEvent{OptionCount: len(m.palette.Filtered())})
	}
}

func (m *Model) paletteOpen() bool {
	return m.palette.IsOpen() && m.stack.Len() > 0
}

func (m *Model) inputContext() *input.ModelContext {
	tabs := 0
	if _, ok := m.state.ActiveTab(); ok {
		tabs = 1
	}
	return &input.ModelContext{
		Stack:    m.stack,
		Palette:  m.palette,
		Settings: len(m.settingItems()),
		Tabs:     tabs,
	}
}

// Settings

type settingEntry struct {
	item   views.SettingItem
	toggle func()
}

func (m *Model) settingEntries() []settingEntry {
	onOff := func(v bool) string {
		if v {
			return "on"
		}
		return "off"
	}

	entries := []settingEntry{
		{
			item: views.SettingItem{
				Label: m.translator.Translate(i18n.T("settings.show_status_bar")),
				Value: onOff(m.cfg.UISettings.ShowStatusBar),
			},
			toggle: func() { m.cfg.UISettings.ShowStatusBar = !m.cfg.UISettings.ShowStatusBar },
		},
		{
			item: views.SettingItem{
				Label: m.translator.Translate(i18n.T("settings.show_tab_numbers")),
				Value: onOff(m.cfg.UISettings.ShowTabNumbers),
			},
			toggle: func() { m.cfg.UISettings.ShowTabNumbers = !m.cfg.UISettings.ShowTabNumbers },
		},
		{
			item: views.SettingItem{
				Label: m.translator.Translate(i18n.T("settings.autosave_on_exit")),
				Value: onOff(m.cfg.UISettings.AutosaveOnExit),
			},
			toggle: func() { m.cfg.UISettings.AutosaveOnExit = !m.cfg.UISettings.AutosaveOnExit },
		},
		{
			item: views.SettingItem{
				Label: m.translator.Translate(i18n.TP("settings.locale", map[string]string{"locale": m.translator.Locale()})),
			},
			toggle: m.cycleLocale,
		},
	}
	return entries
}

func (m *Model) settingItems() []views.SettingItem {
	entries := m.settingEntries()
	items := make([]views.SettingItem, len(entries))
	for i, e := range entries {
		items[i] = e.item
	}
	return items
}

func (m *Model) moveSettingsCursor(delta int) {
	next := m.settingsCursor + delta
	if next < 0 {
		next = 0
	}
	if max := len(m.settingItems()) - 1; next > max {
		next = max
	}
	m.settingsCursor = next
}

func (m *Model) toggleSetting() {
	entries := m.settingEntries()
	if m.settingsCursor < 0 || m.settingsCursor >= len(entries) {
		return
	}
	entries[m.settingsCursor].toggle()

	if m.cfgSvc != nil {
		if err := m.cfgSvc.Save(m.cfg); err != nil {
			m.setStatus(fmt.Sprintf("saving config: %v", err), true)
		}
	}
}

func (m *Model) cycleLocale() {
	locales := m.translator.Locales()
	if len(locales) < 2 {
		return
	}
	current := m.translator.Locale()
	next := locales[0]
	for i, loc := range locales {
		if loc == current {
			next = locales[(i+1)%len(locales)]
			break
		}
	}
	if err := m.translator.SetLocale(next); err != nil {
		m.setStatus(fmt.Sprintf("changing locale: %v", err), true)
		return
	}
	m.cfg.Locale = next
	if m.bus != nil {
		m.bus.Publish(eventbus.LocaleChangedEvent{Locale: next})
	}
}

func (m *Model) setStatus(text string, isErr bool) {
	m.statusText = text
	m.statusIsErr = isErr
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	data := m.state.Data()
	row, col := m.state.ActivePanelIndex()

	state := views.ViewState{
		Width:  m.width,
		Height: m.height,
		Title:  m.translator.Translate(i18n.T("app.title")),

		Views:          data.Views,
		ActiveRow:      row,
		ActiveCol:      col,
		ShowTabNumbers: m.cfg.UISettings.ShowTabNumbers,

		ShowStatusBar: m.cfg.UISettings.ShowStatusBar,
		ModeLabel:     m.modeLabel(),
		TabSummary: m.translator.Translate(i18n.TP("statusbar.tabs",
			map[string]string{"count": fmt.Sprintf("%d", countTabs(data.Views))})),
		StatusMessage: m.statusText,
		StatusIsError: m.statusIsErr,
	}

	if m.paletteOpen() {
		state.PaletteOpen = true
		state.Options = m.palette.Filtered()
		state.Cursor = m.palette.Cursor()
		state.EmptyMessage = m.translator.Translate(i18n.T("prompt.empty"))
		if ti := m.inputHandler.TextInput(); ti != nil {
			ti.Placeholder = m.translator.Translate(i18n.T("prompt.placeholder"))
			state.FilterInput = ti.View()
		} else {
			state.FilterInput = m.palette.Filter()
		}
		state.RecentHint = m.recentHint
	}

	if m.settingsOpen && !state.PaletteOpen {
		state.SettingsOpen = true
		state.SettingsTitle = m.translator.Translate(i18n.T("settings.title"))
		state.Settings = m.settingItems()
		state.SettingsCursor = m.settingsCursor
	}

	return m.renderer.Render(state)
}

func (m *Model) modeLabel() string {
	switch m.inputHandler.CurrentMode() {
	case inputtypes.ModePalette:
		return m.translator.Translate(i18n.T("statusbar.mode.palette"))
	case inputtypes.ModeSettings:
		return m.translator.Translate(i18n.T("statusbar.mode.settings"))
	default:
		return m.translator.Translate(i18n.T("statusbar.mode.normal"))
	}
}

func countTabs(views domain.Views) int {
	n := 0
	for _, row := range views {
		for _, panel := range row {
			n += len(panel.Tabs)
		}
	}
	return n
}
