package provision

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"
)

// progressSpinner wraps briandowns/spinner with TTY awareness. Clone and
// fetch operations can take a while on large repositories; on non-TTY
// outputs the spinner stays silent.
type progressSpinner struct {
	s       *spinner.Spinner
	enabled bool
}

// newSpinner creates a new spinner that only displays on a TTY.
func newSpinner(message string) *progressSpinner {
	enabled := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	if !enabled {
		return &progressSpinner{enabled: false}
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " " + message
	return &progressSpinner{s: s, enabled: true}
}

// Start begins the spinner animation.
func (sp *progressSpinner) Start() {
	if sp.enabled && sp.s != nil {
		sp.s.Start()
	}
}

// Stop ends the spinner animation.
func (sp *progressSpinner) Stop() {
	if sp.enabled && sp.s != nil {
		sp.s.Stop()
	}
}

// UpdateMessage changes the spinner message.
func (sp *progressSpinner) UpdateMessage(message string) {
	if sp.enabled && sp.s != nil {
		sp.s.Suffix = " " + message
	}
}
