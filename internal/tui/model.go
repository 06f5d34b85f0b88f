// Package tui renders a live terminal dashboard for a simulation run,
// built on bubbletea.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	apperrors "github.com/agbru/coinsim/internal/errors"
	"github.com/agbru/coinsim/internal/format"
	"github.com/agbru/coinsim/internal/orchestration"
	"github.com/agbru/coinsim/internal/simulation"
	"github.com/agbru/coinsim/internal/sysmon"
)

// Layout constants for the dashboard.
const (
	defaultBarWidth = 40
	maxBarWidth     = 80
	minBarWidth     = 10
	historyCapacity = 60
	tickInterval    = 500 * time.Millisecond
)

// RunInfo describes the run shown in the dashboard header.
type RunInfo struct {
	Total     int64
	BatchSize int64
	Flips     int
	Workers   int
	Seed      uint64
	Version   string
}

// RunFunc executes the simulation, reporting progress through reporter.
type RunFunc func(ctx context.Context, reporter orchestration.ProgressReporter) (simulation.Summary, error)

// Model is the root bubbletea model for the dashboard.
type Model struct {
	info   RunInfo
	keymap KeyMap
	bar    progress.Model

	history *SuccessWindow
	eta     *format.ProgressWithETA

	ctx    context.Context
	cancel context.CancelFunc
	run    RunFunc
	ref    *programRef

	start   time.Time
	elapsed time.Duration
	last    orchestration.BatchProgress
	sys     SysStatsMsg
	hasSys  bool

	stopping bool
	done     bool
	summary  simulation.Summary
	err      error
}

// NewModel creates a dashboard model for one run. The run is started by
// Init and canceled through the returned model's context.
func NewModel(parentCtx context.Context, info RunInfo, run RunFunc) Model {
	ctx, cancel := context.WithCancel(parentCtx)
	return Model{
		info:    info,
		keymap:  DefaultKeyMap(),
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(defaultBarWidth), progress.WithoutPercentage()),
		history: NewSuccessWindow(historyCapacity),
		eta:     format.NewProgressWithETA(),
		ctx:     ctx,
		cancel:  cancel,
		run:     run,
		ref:     &programRef{},
		start:   time.Now(),
	}
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		startRunCmd(m.ctx, m.run, m.ref),
	)
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !key.Matches(msg, m.keymap.Quit) {
			return m, nil
		}
		if m.done {
			return m, tea.Quit
		}
		// The run reports the cancellation through RunDoneMsg.
		m.stopping = true
		m.cancel()
		return m, nil

	case tea.WindowSizeMsg:
		width := min(max(msg.Width-30, minBarWidth), maxBarWidth)
		m.bar.Width = width
		m.history.SetWidth(width)
		return m, nil

	case BatchMsg:
		m.last = msg.Progress
		m.history.Record(msg.Progress.Result.Successes)
		m.eta.Update(msg.Progress.Fraction())
		return m, nil

	case ProgressDoneMsg:
		return m, nil

	case TickMsg:
		if m.done {
			return m, nil
		}
		m.elapsed = time.Since(m.start)
		return m, tea.Batch(sampleSysStatsCmd(m.ctx), tickCmd())

	case SysStatsMsg:
		m.sys = msg
		m.hasSys = true
		return m, nil

	case RunDoneMsg:
		m.done = true
		m.summary = msg.Summary
		m.err = msg.Err
		m.elapsed = time.Since(m.start)
		return m, tea.Quit
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	var b strings.Builder

	title := "coinsim"
	if m.info.Version != "" && m.info.Version != "dev" {
		title += " " + m.info.Version
	}
	fmt.Fprintf(&b, "%s%s%s%s%s\n",
		titleStyle.Render(title),
		dimStyle.Render(" | "),
		fmt.Sprintf("Elapsed: %s", format.FormatExecutionDuration(m.elapsed)),
		dimStyle.Render(" | "),
		m.status(),
	)
	fmt.Fprintf(&b, "%s\n", dimStyle.Render(fmt.Sprintf(
		"%s people, %d flips, %d workers, seed %d",
		format.FormatInt(m.info.Total), m.info.Flips, m.info.Workers, m.info.Seed)))

	b.WriteString(panelStyle.Render(strings.Join(m.statLines(), "\n")))
	b.WriteString("\n")

	fraction := 0.0
	if m.last.TotalBatches > 0 {
		fraction = m.last.Fraction()
	} else if m.done && m.err == nil {
		fraction = 1
	}
	etaText := format.FormatETA(m.eta.GetETA())
	if fraction >= 1 {
		etaText = "done"
	}
	fmt.Fprintf(&b, "%s %5.1f%%  ETA: %s\n", m.bar.ViewAs(fraction), fraction*100, etaText)

	fmt.Fprintf(&b, "%s %s\n",
		dimStyle.Render("Successes per batch"),
		sparklineStyle.Render(m.history.Sparkline()))

	help := m.keymap.Quit.Help()
	fmt.Fprintf(&b, "%s %s", titleStyle.Render(help.Key), dimStyle.Render(help.Desc))
	return b.String()
}

func (m Model) status() string {
	switch {
	case m.done && m.err != nil:
		return statusErrorStyle.Render("Error")
	case m.done:
		return statusDoneStyle.Render("Done")
	case m.stopping:
		return statusErrorStyle.Render("Stopping...")
	default:
		return statusRunningStyle.Render("Running")
	}
}

func (m Model) statLines() []string {
	p := m.last
	totalBatches := p.TotalBatches
	if totalBatches == 0 {
		totalBatches = simulation.BatchCount(m.info.Total, m.info.BatchSize)
	}
	expected := simulation.ExpectedSuccesses(p.CompletedTrials, m.info.Flips)

	lines := []string{
		stat("Batches", fmt.Sprintf("%d/%d", p.Completed, totalBatches)),
		stat("People simulated", fmt.Sprintf("%s/%s", format.FormatInt(p.CompletedTrials), format.FormatInt(m.info.Total))),
		stat("Successes", format.FormatInt(p.RunningSuccesses)),
		stat("Expected so far", fmt.Sprintf("%.2f", expected)),
		stat("Deviation", fmt.Sprintf("%.2f%%", simulation.RelativeDeviation(p.RunningSuccesses, expected))),
	}
	if secs := m.elapsed.Seconds(); secs > 0 && p.CompletedTrials > 0 {
		lines = append(lines, stat("Throughput", fmt.Sprintf("%s people/s", format.FormatInt(int64(float64(p.CompletedTrials)/secs)))))
	}
	if m.hasSys {
		lines = append(lines, stat("System", sysmon.Stats{CPUPercent: m.sys.CPUPercent, MemPercent: m.sys.MemPercent}.String()))
	}
	return lines
}

func stat(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), valueStyle.Render(value))
}

// Run starts the dashboard, executes run inside it and returns the run's
// outcome once the program has exited.
func Run(ctx context.Context, info RunInfo, run RunFunc) (simulation.Summary, error) {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	model := NewModel(ctx, info, run)
	defer model.cancel()

	// Signals are handled by the caller's context so the run can report them.
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithoutSignalHandler())
	// Inject the program reference before running so the bridge can Send.
	model.ref.SetProgram(p)

	finalModel, err := p.Run()
	if err != nil {
		return simulation.Summary{}, apperrors.WrapError(err, "dashboard")
	}
	m, ok := finalModel.(Model)
	if !ok {
		return simulation.Summary{}, errors.New("dashboard: unexpected final model")
	}
	return m.summary, m.err
}

// startRunCmd returns a tea.Cmd that executes the run and reports its outcome.
func startRunCmd(ctx context.Context, run RunFunc, ref *programRef) tea.Cmd {
	return func() tea.Msg {
		summary, err := run(ctx, &TUIProgressReporter{ref: ref})
		return RunDoneMsg{Summary: summary, Err: err}
	}
}

// tickCmd returns a command that sends a TickMsg after tickInterval.
func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// sampleSysStatsCmd reads system-wide CPU and memory usage.
func sampleSysStatsCmd(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		s := sysmon.Sample(ctx)
		return SysStatsMsg{CPUPercent: s.CPUPercent, MemPercent: s.MemPercent}
	}
}
