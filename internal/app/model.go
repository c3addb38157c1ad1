package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/j-veylop/bikeshare-explorer/internal/logger"
	"github.com/j-veylop/bikeshare-explorer/internal/models"
	"github.com/j-veylop/bikeshare-explorer/internal/report"
	"github.com/j-veylop/bikeshare-explorer/internal/ui/components"
	"github.com/j-veylop/bikeshare-explorer/internal/ui/styles"
)

// Banner is printed once when the session starts.
const Banner = "Hello! Let's explore some US bikeshare data!"

const defaultWidth = 80

// KeyMap defines the keybindings for the session.
type KeyMap struct {
	Submit   key.Binding
	Complete key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default keybindings. ctrl+j is bound to Submit
// because piped input delivers a bare line feed.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit:   key.NewBinding(key.WithKeys("enter", "ctrl+j"), key.WithHelp("enter", "submit")),
		Complete: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "complete")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
}

// ShortHelp returns bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Complete, k.Quit}
}

// FullHelp returns bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// Model is the interactive session. Results are printed above the prompt
// so they stay in the terminal scrollback after the program exits.
type Model struct {
	querier  Querier
	session  *Session
	renderer *report.Renderer

	stage   Stage
	input   textinput.Model
	spinner components.LoadingSpinner
	help    help.Model
	keymap  KeyMap

	width   int
	printed []string
	outbox  []string
	pending []tea.KeyMsg
	err     error
}

// NewModel creates a session that runs queries through q.
func NewModel(q Querier, pageSize int) *Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.PromptStyle = styles.PromptStyle
	ti.ShowSuggestions = true
	ti.Focus()

	m := &Model{
		querier:  q,
		session:  NewSession(pageSize),
		renderer: report.NewRenderer(defaultWidth),
		input:    ti,
		spinner:  components.NewSpinner("Loading..."),
		help:     help.New(),
		keymap:   DefaultKeyMap(),
		width:    defaultWidth,
	}
	m.enter(StageCity)
	return m
}

// Err returns the error that ended the session, if any.
func (m *Model) Err() error {
	return m.err
}

// Stage returns the step currently waiting for input.
func (m *Model) Stage() Stage {
	return m.stage
}

// Session returns the session state.
func (m *Model) Session() *Session {
	return m.session
}

// Printed returns everything printed above the prompt so far.
func (m *Model) Printed() []string {
	return m.printed
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	m.print(styles.TitleStyle.Render(Banner))
	return m.flush(textinput.Blink)
}

// Update handles messages and updates the model. Everything printed while
// handling msg goes out as one block ahead of any other command.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.handleWindowSize(msg)

	case tea.KeyMsg:
		cmd = m.handleKeyMsg(msg)

	case spinner.TickMsg:
		if m.stage == StageLoading {
			m.spinner, cmd = m.spinner.Update(msg)
		}

	case QueryLoadedMsg:
		cmd = m.handleQueryLoaded(msg)

	default:
		m.input, cmd = m.input.Update(msg)
	}

	return m, m.flush(cmd)
}

func (m *Model) handleWindowSize(msg tea.WindowSizeMsg) {
	m.width = msg.Width
	m.renderer.SetWidth(msg.Width)
	m.help.Width = msg.Width
	m.input.Width = max(msg.Width-len(m.input.Prompt)-1, 0)
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keymap.Quit) {
		m.stage = StageDone
		m.pending = nil
		return tea.Quit
	}
	if m.stage == StageLoading {
		// Answers typed (or piped) ahead of the result are replayed once it
		// arrives.
		m.pending = append(m.pending, msg)
		return nil
	}
	if !m.stage.AcceptsInput() {
		return nil
	}
	if key.Matches(msg, m.keymap.Submit) {
		answer := strings.TrimSpace(m.input.Value())
		m.input.Reset()
		m.print(styles.PromptStyle.Render(m.question()) + "\n" + m.input.Prompt + answer)
		return m.handleAnswer(answer)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

// handleAnswer advances the session with a submitted answer.
func (m *Model) handleAnswer(answer string) tea.Cmd {
	switch m.stage {
	case StageCity:
		city, err := models.ParseCity(answer)
		if err != nil {
			m.reprompt(err)
			return nil
		}
		m.session.Filter.City = city
		m.enter(StageMonth)

	case StageMonth:
		month, err := models.ParseMonth(answer)
		if err != nil {
			m.reprompt(err)
			return nil
		}
		m.session.Filter.Month = month
		m.enter(StageDay)

	case StageDay:
		day, err := models.ParseDay(answer)
		if err != nil {
			m.reprompt(err)
			return nil
		}
		m.session.Filter.Day = day
		m.enter(StageLoading)
		m.spinner.SetLabel("Loading " + m.session.Filter.String() + "...")
		logger.Debug("running query", "filter", m.session.Filter.String())
		return tea.Batch(m.spinner.Tick(), runQueryCmd(m.querier, m.session.Filter))

	case StageRawData:
		if !isYes(answer) {
			m.finishQuery()
			return nil
		}
		page := m.session.NextPage()
		m.print(m.renderer.RawPage(page, m.session.Result.Dataset.Schema))
		if !m.session.HasMoreRows() {
			m.finishQuery()
		}

	case StageRestart:
		if !isYes(answer) {
			m.stage = StageDone
			m.pending = nil
			return tea.Quit
		}
		m.session.Reset()
		m.enter(StageCity)
	}
	return nil
}

func (m *Model) handleQueryLoaded(msg QueryLoadedMsg) tea.Cmd {
	if m.stage != StageLoading || msg.Filter != m.session.Filter {
		return nil
	}

	if msg.Err != nil {
		m.err = msg.Err
		m.stage = StageDone
		m.pending = nil
		m.print(m.renderer.Error(msg.Err))
		return tea.Quit
	}

	m.session.SetResult(msg.Result)
	if msg.Result.Empty() {
		m.enter(StageRestart)
		m.print(m.renderer.NoData())
	} else {
		m.enter(StageRawData)
		m.print(m.renderer.Summary(msg.Result))
	}

	return m.replayPending()
}

// replayPending feeds keys queued during loading back through the session.
// Keys that start another query are queued again behind it.
func (m *Model) replayPending() tea.Cmd {
	keys := m.pending
	m.pending = nil

	var cmds []tea.Cmd
	for _, k := range keys {
		cmds = append(cmds, m.handleKeyMsg(k))
		if m.stage == StageDone {
			break
		}
	}
	return tea.Batch(cmds...)
}

// finishQuery closes the raw data section and moves on to the restart prompt.
func (m *Model) finishQuery() {
	m.enter(StageRestart)
	m.print(report.Separator())
}

func (m *Model) reprompt(err error) {
	m.print(styles.WarningTextStyle.Render(err.Error() + ", please try again"))
}

// enter switches to stage and prepares the input for it.
func (m *Model) enter(stage Stage) {
	m.stage = stage
	m.input.Reset()
	m.input.Placeholder = placeholder(stage)
	m.input.SetSuggestions(suggestions(stage))
}

// print records s for printing above the prompt on the next flush.
func (m *Model) print(s string) {
	m.printed = append(m.printed, s)
	m.outbox = append(m.outbox, s)
}

// flush prints the pending output, then runs cmd.
func (m *Model) flush(cmd tea.Cmd) tea.Cmd {
	if len(m.outbox) == 0 {
		return cmd
	}
	out := tea.Println(strings.Join(m.outbox, "\n"))
	m.outbox = nil
	if cmd == nil {
		return out
	}
	return tea.Sequence(out, cmd)
}

// question returns the prompt text for the current stage.
func (m *Model) question() string {
	f := m.session.Filter
	switch m.stage {
	case StageCity:
		return "Which city would you like to view (Chicago, New York City, Washington)?"
	case StageMonth:
		return fmt.Sprintf("Which month would you like to view for %s?", f.City)
	case StageDay:
		return fmt.Sprintf("Which day of the week would you like to view for %s during %s?", f.City, f.Month)
	case StageRawData:
		return fmt.Sprintf("Would you like to see %d lines of raw data?", m.session.PageSize)
	case StageRestart:
		return "Would you like to restart? Enter yes or no."
	default:
		return ""
	}
}

// View renders the live part of the session below the printed output.
func (m *Model) View() string {
	switch m.stage {
	case StageDone:
		return ""
	case StageLoading:
		return m.spinner.ViewWithLabel() + "\n"
	}

	var b strings.Builder
	b.WriteString(styles.PromptStyle.Render(m.question()))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keymap))
	b.WriteString("\n")
	return b.String()
}

func isYes(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), "yes")
}

func placeholder(stage Stage) string {
	switch stage {
	case StageCity:
		return "chicago, new york city or washington"
	case StageMonth:
		return "all, january, february, ..."
	case StageDay:
		return "all, monday, tuesday, ..."
	case StageRawData, StageRestart:
		return "yes or no"
	default:
		return ""
	}
}

func suggestions(stage Stage) []string {
	switch stage {
	case StageCity:
		out := make([]string, 0, len(models.Cities))
		for _, c := range models.Cities {
			out = append(out, strings.ToLower(c.String()))
		}
		return out
	case StageMonth:
		out := []string{"all"}
		for mo := time.January; mo <= time.December; mo++ {
			out = append(out, strings.ToLower(mo.String()))
		}
		return out
	case StageDay:
		out := []string{"all"}
		for d := models.Monday; d <= models.Sunday; d++ {
			out = append(out, strings.ToLower(d.String()))
		}
		return out
	case StageRawData, StageRestart:
		return []string{"yes", "no"}
	default:
		return nil
	}
}
