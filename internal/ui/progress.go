package ui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/udaan-tools/setsync/internal/domain"
	"github.com/udaan-tools/setsync/internal/logging"
	"github.com/udaan-tools/setsync/internal/theme"
)

const defaultWidth = 80

// stateMsg is sent on every sync state transition
type stateMsg struct {
	message string
	state   domain.SyncState
}

// lineMsg carries the latest remote transfer progress line
type lineMsg string

// workDoneMsg is sent when the background work returns
type workDoneMsg struct {
	err error
}

// Reporter feeds progress into the display. It is an io.Writer for remote
// transfer output and takes sync transitions through Transition.
type Reporter struct {
	mu      sync.Mutex
	partial string
	release func() error
	restore func() error
	send    func(tea.Msg)
}

// NewPlainReporter writes progress as plain lines to w, for use without a
// terminal
func NewPlainReporter(w io.Writer) *Reporter {
	return &Reporter{send: func(msg tea.Msg) {
		switch m := msg.(type) {
		case stateMsg:
			fmt.Fprintf(w, "%s %s\n", stateLabel(m.state), m.message)
		case lineMsg:
			fmt.Fprintln(w, string(m))
		}
	}}
}

// Transition reports a sync state change
func (r *Reporter) Transition(t domain.Transition) {
	r.send(stateMsg{message: t.Message, state: t.To})
}

// Pause hands the terminal back while fn runs, so prompts can draw over
// the spinner
func (r *Reporter) Pause(fn func() error) error {
	if r.release == nil {
		return fn()
	}
	if err := r.release(); err != nil {
		logging.Logger.Warn("Failed to release terminal", "error", err)
	}
	defer func() {
		if err := r.restore(); err != nil {
			logging.Logger.Warn("Failed to restore terminal", "error", err)
		}
	}()
	return fn()
}

// Write splits transfer output on carriage returns and newlines and reports
// the last complete line
func (r *Reporter) Write(p []byte) (int, error) {
	r.mu.Lock()
	text := r.partial + string(p)
	fields := strings.FieldsFunc(text, func(c rune) bool { return c == '\r' || c == '\n' })
	complete := fields
	r.partial = ""
	if len(text) > 0 && !strings.ContainsRune("\r\n", rune(text[len(text)-1])) && len(fields) > 0 {
		r.partial = fields[len(fields)-1]
		complete = fields[:len(fields)-1]
	}
	r.mu.Unlock()

	for i := len(complete) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(complete[i]); line != "" {
			r.send(lineMsg(line))
			break
		}
	}
	return len(p), nil
}

// Progress is a Bubble Tea model showing a spinner, the current step and
// the latest transfer line while work runs in the background
type Progress struct {
	cancel     context.CancelFunc
	cancelling bool
	done       bool
	err        error
	line       string
	spinner    spinner.Model
	state      domain.SyncState
	title      string
	width      int
	work       func() error
}

// NewProgress creates a progress model. work runs once Init is called.
func NewProgress(title string, work func() error, cancel context.CancelFunc) *Progress {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = theme.SpinnerStyle

	return &Progress{
		cancel:  cancel,
		spinner: s,
		title:   title,
		width:   defaultWidth,
		work:    work,
	}
}

func (p *Progress) Init() tea.Cmd {
	return tea.Batch(p.spinner.Tick, p.runWork())
}

func (p *Progress) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case workDoneMsg:
		p.done = true
		p.err = msg.err
		return p, tea.Quit
	case stateMsg:
		p.state = msg.state
		p.line = msg.message
		return p, nil
	case lineMsg:
		p.line = string(msg)
		return p, nil
	case tea.WindowSizeMsg:
		p.width = msg.Width
		return p, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "esc" {
			logging.Logger.Info("Cancel requested from terminal")
			p.cancelling = true
			if p.cancel != nil {
				p.cancel()
			}
		}
		return p, nil
	}

	var cmd tea.Cmd
	p.spinner, cmd = p.spinner.Update(msg)
	return p, cmd
}

func (p *Progress) View() string {
	if p.done {
		if p.err != nil {
			return theme.FailedStyle.Render(formatErrorForDisplay(p.err, p.width)) + "\n"
		}
		return ""
	}

	var b strings.Builder
	b.WriteString(renderHeader(""))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s", p.spinner.View(), p.title))
	if p.state != "" {
		b.WriteString(" ")
		b.WriteString(theme.RunningStyle.Render(stateLabel(p.state)))
	}
	if p.cancelling {
		b.WriteString(theme.MutedStyle.Render(" cancelling..."))
	}
	b.WriteString("\n")
	if p.line != "" {
		b.WriteString(theme.MutedStyle.Render(truncate(p.line, p.width)))
		b.WriteString("\n")
	}
	return b.String()
}

// Err returns the error the work finished with
func (p *Progress) Err() error {
	return p.err
}

func (p *Progress) runWork() tea.Cmd {
	return func() tea.Msg {
		return workDoneMsg{err: p.work()}
	}
}

// RunWithProgress runs work behind a spinner on out. When interactive is
// false the progress is printed as plain lines instead.
func RunWithProgress(ctx context.Context, title string, out io.Writer, interactive bool, work func(ctx context.Context, r *Reporter) error) error {
	if !interactive {
		fmt.Fprintln(out, title)
		return work(ctx, NewPlainReporter(out))
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	reporter := &Reporter{}
	model := NewProgress(title, func() error { return work(ctx, reporter) }, cancel)
	program := tea.NewProgram(model, tea.WithOutput(out), tea.WithoutSignalHandler())
	reporter.send = program.Send
	reporter.release = program.ReleaseTerminal
	reporter.restore = program.RestoreTerminal

	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("progress display failed: %w", err)
	}
	if m, ok := final.(*Progress); ok && m.done {
		return m.Err()
	}
	return ctx.Err()
}

func stateLabel(state domain.SyncState) string {
	switch state {
	case domain.StateRemoteLookup:
		return "Looking up remote"
	case domain.StateFetching:
		return "Fetching"
	case domain.StateDiffCheck:
		return "Comparing"
	case domain.StateMerging:
		return "Merging"
	case domain.StateCommitting:
		return "Committing"
	case domain.StatePushing:
		return "Pushing"
	case domain.StateDone:
		return "Done"
	case domain.StateFailed:
		return "Failed"
	default:
		return string(state)
	}
}

func truncate(s string, width int) string {
	r := []rune(s)
	if width <= 3 || len(r) <= width {
		return s
	}
	return string(r[:width-3]) + "..."
}
