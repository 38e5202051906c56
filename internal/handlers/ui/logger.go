package ui

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// NewLogger returns the diagnostic logger shared by the services.
// It writes to stderr and only shows debug output when debug is set.
func NewLogger(debug bool) *log.Logger {
	return newLogger(os.Stderr, debug)
}

func newLogger(w io.Writer, debug bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix: "batc-install",
	})
	logger.SetStyles(loggerStyles())
	SetDebug(logger, debug)
	return logger
}

func loggerStyles() *log.Styles {
	styles := log.DefaultStyles()
	styles.Prefix = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	styles.Key = lipgloss.NewStyle().Faint(true)
	return styles
}

// SetDebug switches logger between debug and warning level.
func SetDebug(logger *log.Logger, debug bool) {
	if debug {
		logger.SetLevel(log.DebugLevel)
		return
	}
	logger.SetLevel(log.WarnLevel)
}
