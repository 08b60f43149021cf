package console

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/harmonyeval/harmony-verifier/pkg/styles"
	"github.com/harmonyeval/harmony-verifier/pkg/tty"
)

// Spinner shows an animated progress indicator on stderr while a network
// call is in flight. It disables itself when stderr is not a terminal or
// when the ACCESSIBLE environment variable is set, so plain logs and
// screen readers never see animation frames.
type Spinner struct {
	mu      sync.Mutex
	message string
	enabled bool
	running bool
	program *tea.Program
	done    chan struct{}
}

// updateMessageMsg swaps the text shown next to the spinner frame.
type updateMessageMsg string

// spinnerModel drives the animation. The program runs with
// tea.WithoutRenderer, so View is unused and frames are written to output
// directly from Update.
type spinnerModel struct {
	spinner spinner.Model
	message string
	output  io.Writer
}

func newSpinnerModel(message string, output io.Writer) spinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(styles.ColorInfo)),
	)
	return spinnerModel{spinner: s, message: message, output: output}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.render()
		return m, cmd
	case updateMessageMsg:
		m.message = string(msg)
		m.render()
		return m, nil
	}
	return m, nil
}

// View is required by tea.Model but unused under tea.WithoutRenderer.
func (m spinnerModel) View() string {
	return ""
}

func (m spinnerModel) render() {
	if m.output == nil {
		return
	}
	fmt.Fprintf(m.output, "\r\033[K%s %s", m.spinner.View(), m.message)
}

// NewSpinner creates a spinner with the given message. The spinner starts
// stopped; call Start to begin animating.
func NewSpinner(message string) *Spinner {
	return &Spinner{
		message: message,
		enabled: tty.IsStderrTerminal() && !tty.IsAccessible(),
	}
}

// IsEnabled reports whether the spinner will animate when started.
func (s *Spinner) IsEnabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enabled
}

// Start begins the animation. Starting an already running or disabled
// spinner is a no-op.
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.enabled || s.running {
		return
	}

	s.program = tea.NewProgram(
		newSpinnerModel(s.message, os.Stderr),
		tea.WithoutRenderer(),
		tea.WithInput(nil),
	)
	s.done = make(chan struct{})
	s.running = true

	go func(p *tea.Program, done chan struct{}) {
		_, _ = p.Run()
		close(done)
	}(s.program, s.done)
}

// UpdateMessage changes the text shown next to the spinner.
func (s *Spinner) UpdateMessage(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.message = message
	if s.running {
		s.program.Send(updateMessageMsg(message))
	}
}

// Stop halts the animation and clears the spinner line.
func (s *Spinner) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	program, done := s.program, s.done
	s.running = false
	s.program = nil
	s.mu.Unlock()

	program.Quit()
	<-done
	fmt.Fprint(os.Stderr, "\r\033[K")
}

// StopWithMessage stops the spinner and prints a final line in its place.
// The message is printed even when the spinner was disabled, so every run
// records the outcome.
func (s *Spinner) StopWithMessage(message string) {
	s.Stop()
	fmt.Fprintln(os.Stderr, message)
}
