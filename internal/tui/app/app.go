// Package app provides the main TUI application that wires all views together.
package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/silenttrial-dev/silenttrial/internal/config"
	"github.com/silenttrial-dev/silenttrial/internal/game"
	"github.com/silenttrial-dev/silenttrial/internal/leaderboard"
	applog "github.com/silenttrial-dev/silenttrial/internal/log"
	"github.com/silenttrial-dev/silenttrial/internal/savegame"
	"github.com/silenttrial-dev/silenttrial/internal/store"
	"github.com/silenttrial-dev/silenttrial/internal/tui"
	"github.com/silenttrial-dev/silenttrial/internal/tui/views"
)

// App is the main TUI application. It owns the session and routes
// messages between the per-stage views and the managers.
type App struct {
	cfg     *config.Config
	session *game.Session
	saves   *savegame.Manager
	board   *leaderboard.Manager
	logger  *applog.Logger
	runID   string

	grace time.Duration
	// graceGen invalidates Chamber 1 timers left over from an earlier
	// visit; a stale timer firing after restart must not advance.
	graceGen int

	// Footer state for the active chamber.
	saveCode   string
	saveFailed bool

	width  int
	height int

	// View models, one per stage. Only the active one receives input.
	introView      views.IntroModel
	chamber1View   views.Chamber1Model
	chamber2View   views.Chamber2Model
	chamber3View   views.Chamber3Model
	chamber4View   views.Chamber4Model
	chamber5View   views.Chamber5Model
	eliminatedView views.EliminatedModel
	victoryView    views.VictoryModel
}

// New creates the App over the given store. logger may be nil; events
// are then dropped.
func New(cfg *config.Config, kv store.KV, logger *applog.Logger) *App {
	board := leaderboard.NewManager(kv)

	a := &App{
		cfg:     cfg,
		session: game.NewSession(),
		saves:   savegame.NewManager(kv),
		board:   board,
		logger:  logger,
		runID:   uuid.NewString(),
		grace:   time.Duration(cfg.Trial.Chamber1GraceSeconds) * time.Second,
		width:   80,
		height:  24,
	}
	a.introView = views.NewIntroModel(board.TopTen(), a.width, a.height)
	return a
}

// Init returns the initial command for the TUI.
func (a *App) Init() tea.Cmd {
	a.log(applog.LogEvent{Event: applog.EventRunStarted})
	return tea.Batch(a.introView.Init(), tickCmd())
}

// Update handles messages and updates the application state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a.routeToActiveView(msg)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, tui.DefaultKeyMap.CtrlC):
			return a, tea.Quit
		case key.Matches(msg, tui.DefaultKeyMap.Save):
			if a.session.Stage().IsChamber() {
				return a, func() tea.Msg { return tui.SaveRequestMsg{} }
			}
		}
		return a.routeToActiveView(msg)

	case tui.TickMsg:
		a.session.Tick()
		return a, tickCmd()

	case tui.GraceElapsedMsg:
		return a.handleGraceElapsed(msg)

	case tui.SubmitNameMsg:
		return a.handleSubmitName(msg)

	case tui.AnswerTypedMsg:
		// Chamber 1: the keystroke is the answer, and the answer is a
		// violation.
		a.session.Touch()
		a.session.Eliminate(game.Chamber1Violation)
		return a.enterEliminated()

	case tui.SubmitAnswerMsg:
		return a.handleSubmitAnswer(msg)

	case tui.SaveRequestMsg:
		return a.handleSaveRequest()

	case tui.SaveResultMsg:
		a.saveFailed = msg.Err != nil
		a.saveCode = msg.Code
		return a, nil

	case tui.LoadRequestMsg:
		return a.handleLoadRequest(msg)

	case tui.RestartMsg:
		return a.handleRestart()
	}

	return a.routeToActiveView(msg)
}

// handleSubmitName validates the intro name and enters Chamber 1.
func (a *App) handleSubmitName(msg tui.SubmitNameMsg) (tea.Model, tea.Cmd) {
	if err := a.session.StartWithName(msg.Name); err != nil {
		return a.routeToActiveView(tui.NameErrorMsg{Err: err})
	}

	a.log(applog.LogEvent{
		Event:  applog.EventTrialStarted,
		Player: a.session.PlayerName(),
	})
	return a.enterChamber(game.StageChamber1)
}

// handleSubmitAnswer runs the current validator and follows the
// resulting transition.
func (a *App) handleSubmitAnswer(msg tui.SubmitAnswerMsg) (tea.Model, tea.Cmd) {
	stage := a.session.Stage()
	if !stage.IsChamber() {
		return a, nil
	}
	a.session.Touch()

	outcome := a.session.Submit(msg.Raw)
	if !outcome.Accepted {
		return a.enterEliminated()
	}

	a.log(applog.LogEvent{
		Event:   applog.EventChamberPassed,
		Player:  a.session.PlayerName(),
		Chamber: stage.ChamberNumber(),
	})

	if a.session.Stage() == game.StageVictory {
		return a.enterVictory()
	}
	return a.enterChamber(a.session.Stage())
}

// handleGraceElapsed applies the Chamber 1 inaction rule when the
// silence window ends. Interaction recorded on the same tick wins.
func (a *App) handleGraceElapsed(msg tui.GraceElapsedMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != a.graceGen {
		return a, nil
	}
	if a.session.Stage() != game.StageChamber1 || a.session.Interacted() {
		return a, nil
	}

	a.session.AutoAdvance()
	a.log(applog.LogEvent{
		Event:   applog.EventChamberPassed,
		Player:  a.session.PlayerName(),
		Chamber: 1,
		Reason:  "silence",
	})
	return a.enterChamber(game.StageChamber2)
}

// handleSaveRequest snapshots the session. A failed write degrades to
// "no code"; the player can retry.
func (a *App) handleSaveRequest() (tea.Model, tea.Cmd) {
	code, err := a.saves.Save(
		a.session.PlayerName(),
		a.session.Stage(),
		a.session.StartTime(),
		a.session.ChambersPassed(),
	)
	if err != nil {
		a.log(applog.LogEvent{
			Event:  applog.EventGameSaved,
			Player: a.session.PlayerName(),
			Stage:  a.session.Stage().String(),
			Error:  err.Error(),
		})
		return a, func() tea.Msg { return tui.SaveResultMsg{Err: err} }
	}

	a.log(applog.LogEvent{
		Event:    applog.EventGameSaved,
		Player:   a.session.PlayerName(),
		Stage:    a.session.Stage().String(),
		SaveCode: code,
	})
	return a, func() tea.Msg { return tui.SaveResultMsg{Code: code} }
}

// handleLoadRequest resumes a saved game from the intro screen.
func (a *App) handleLoadRequest(msg tui.LoadRequestMsg) (tea.Model, tea.Cmd) {
	snapshot, err := a.saves.Load(msg.Code)
	if err != nil {
		return a.routeToActiveView(tui.LoadErrorMsg{Message: "Invalid save code. Please check and try again."})
	}

	stage, err := game.ParseStage(snapshot.Stage)
	if err != nil {
		return a.routeToActiveView(tui.LoadErrorMsg{Message: "Invalid save code. Please check and try again."})
	}
	if err := a.session.Restore(snapshot.PlayerName, stage, snapshot.StartTime, snapshot.ChambersPassed); err != nil {
		return a.routeToActiveView(tui.LoadErrorMsg{Message: "This save cannot be resumed."})
	}

	a.log(applog.LogEvent{
		Event:    applog.EventGameLoaded,
		Player:   snapshot.PlayerName,
		Stage:    snapshot.Stage,
		SaveCode: snapshot.SaveCode,
	})
	return a.enterChamber(stage)
}

// handleRestart clears the session and returns to the intro screen.
func (a *App) handleRestart() (tea.Model, tea.Cmd) {
	a.session.Restart()
	a.saveCode = ""
	a.saveFailed = false
	a.graceGen++

	a.introView = views.NewIntroModel(a.board.TopTen(), a.width, a.height)
	return a, a.introView.Init()
}

// enterChamber builds the view for a chamber stage and arms the
// Chamber 1 silence timer.
func (a *App) enterChamber(stage game.Stage) (tea.Model, tea.Cmd) {
	a.saveCode = ""
	a.saveFailed = false

	a.log(applog.LogEvent{
		Event:   applog.EventChamberEntered,
		Player:  a.session.PlayerName(),
		Chamber: stage.ChamberNumber(),
	})

	var cmd tea.Cmd
	switch stage {
	case game.StageChamber1:
		a.chamber1View = views.NewChamber1Model(a.width, a.height)
		a.graceGen++
		gen := a.graceGen
		grace := a.grace
		cmd = tea.Batch(a.chamber1View.Init(), tea.Tick(grace, func(time.Time) tea.Msg {
			return tui.GraceElapsedMsg{Gen: gen}
		}))
	case game.StageChamber2:
		a.chamber2View = views.NewChamber2Model(a.width, a.height)
		cmd = a.chamber2View.Init()
	case game.StageChamber3:
		a.chamber3View = views.NewChamber3Model(a.width, a.height)
		cmd = a.chamber3View.Init()
	case game.StageChamber4:
		a.chamber4View = views.NewChamber4Model(a.width, a.height)
		cmd = a.chamber4View.Init()
	case game.StageChamber5:
		a.chamber5View = views.NewChamber5Model(a.width, a.height)
		cmd = a.chamber5View.Init()
	}
	return a, cmd
}

// enterEliminated builds the elimination view and logs the ending.
func (a *App) enterEliminated() (tea.Model, tea.Cmd) {
	a.graceGen++
	seconds := a.session.CompletionSeconds()

	a.log(applog.LogEvent{
		Event:   applog.EventEliminated,
		Player:  a.session.PlayerName(),
		Reason:  a.session.EliminationReason(),
		Seconds: seconds,
	})

	a.eliminatedView = views.NewEliminatedModel(
		a.session.PlayerName(),
		a.session.EliminationReason(),
		seconds,
		a.width, a.height,
	)
	return a, a.eliminatedView.Init()
}

// enterVictory records the run on the leaderboard and builds the
// victory view.
func (a *App) enterVictory() (tea.Model, tea.Cmd) {
	a.graceGen++
	seconds := a.session.CompletionSeconds()

	a.log(applog.LogEvent{
		Event:   applog.EventVictory,
		Player:  a.session.PlayerName(),
		Seconds: seconds,
	})

	var current *leaderboard.Entry
	if a.session.PlayerName() != "" && seconds > 0 {
		entry := leaderboard.Entry{
			Name:        a.session.PlayerName(),
			Time:        seconds,
			Date:        time.Now(),
			Performance: leaderboard.PerformanceLabel(seconds),
		}
		a.board.Record(entry)
		current = &entry

		a.log(applog.LogEvent{
			Event:       applog.EventLeaderboardRecorded,
			Player:      entry.Name,
			Seconds:     entry.Time,
			Performance: entry.Performance,
		})
	}

	a.victoryView = views.NewVictoryModel(
		a.session.PlayerName(),
		seconds,
		a.board.TopTen(),
		current,
		a.width, a.height,
	)
	return a, a.victoryView.Init()
}

// routeToActiveView forwards a message to the view owning the current
// stage.
func (a *App) routeToActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.session.Stage() {
	case game.StageIntro:
		a.introView, cmd = a.introView.Update(msg)
	case game.StageChamber1:
		a.chamber1View, cmd = a.chamber1View.Update(msg)
	case game.StageChamber2:
		a.chamber2View, cmd = a.chamber2View.Update(msg)
	case game.StageChamber3:
		a.chamber3View, cmd = a.chamber3View.Update(msg)
	case game.StageChamber4:
		a.chamber4View, cmd = a.chamber4View.Update(msg)
	case game.StageChamber5:
		a.chamber5View, cmd = a.chamber5View.Update(msg)
	case game.StageEliminated:
		a.eliminatedView, cmd = a.eliminatedView.Update(msg)
	case game.StageVictory:
		a.victoryView, cmd = a.victoryView.Update(msg)
	}
	return a, cmd
}

// View renders the active screen, with the progress and timer header
// during chambers.
func (a *App) View() string {
	stage := a.session.Stage()

	switch stage {
	case game.StageIntro:
		return a.introView.View()
	case game.StageEliminated:
		return tui.BoxStyle.Width(a.width - 4).Render(a.eliminatedView.View())
	case game.StageVictory:
		return tui.BoxStyle.Width(a.width - 4).Render(a.victoryView.View())
	}

	var body string
	switch stage {
	case game.StageChamber1:
		body = a.chamber1View.View()
	case game.StageChamber2:
		body = a.chamber2View.View()
	case game.StageChamber3:
		body = a.chamber3View.View()
	case game.StageChamber4:
		body = a.chamber4View.View()
	case game.StageChamber5:
		body = a.chamber5View.View()
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		a.chamberHeader(stage),
		"",
		body,
		"",
		a.chamberFooter(),
	)
	return tui.BoxStyle.Width(a.width - 4).Render(content)
}

// chamberHeader renders the progress dots and the live timer.
func (a *App) chamberHeader(stage game.Stage) string {
	current := stage.ChamberNumber()

	var dots []string
	for i := 1; i <= game.TotalChambers; i++ {
		if i < current {
			dots = append(dots, tui.ProgressFullStyle.Render("●"))
		} else if i == current {
			dots = append(dots, tui.AccentStyle(stage).Render("◉"))
		} else {
			dots = append(dots, tui.ProgressEmptyStyle.Render("○"))
		}
	}

	progress := fmt.Sprintf("Chamber %d of %d  %s", current, game.TotalChambers, strings.Join(dots, " "))
	timer := tui.DimStyle.Render("Time " + tui.FormatClock(a.session.ElapsedSeconds()))
	return progress + "    " + timer
}

// chamberFooter renders the save state and key hints.
func (a *App) chamberFooter() string {
	if a.saveFailed {
		return tui.ErrorStyle.Render("The archive refused your record. Try saving again.")
	}
	if a.saveCode != "" {
		return tui.SuccessStyle.Render("Progress sealed. Your code: "+a.saveCode) + "\n" +
			tui.DimStyle.Render("Keep it. Enter it on the intro screen to resume.")
	}
	return tui.DimStyle.Render("Enter: submit       Ctrl+S: save & get code       Ctrl+C: exit")
}

// tickCmd schedules the once-per-second cosmetic refresh.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tui.TickMsg{}
	})
}

// log appends an event, stamping the run ID. Logging never interrupts
// play.
func (a *App) log(event applog.LogEvent) {
	if a.logger == nil {
		return
	}
	event.RunID = a.runID
	_ = a.logger.Append(event)
}
