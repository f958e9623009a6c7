package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"
	"github.com/bethropolis/tidejump/internal/logger"
)

var errUnsupported = errors.New("system clipboard unsupported")

// Manager keeps an internal register and optionally mirrors yanks to the
// system clipboard.
type Manager struct {
	register  []byte
	useSystem bool
	writeAll  func(string) error
}

// NewManager creates a clipboard manager. With useSystem set, yanks are also
// written to the system clipboard.
func NewManager(useSystem bool) *Manager {
	return &Manager{
		useSystem: useSystem,
		writeAll:  writeSystem,
	}
}

func writeSystem(text string) error {
	if clipboard.Unsupported {
		return errUnsupported
	}
	return clipboard.WriteAll(text)
}

// Yank stores text in the register. It reports whether the system clipboard
// was updated too; a failed system write only logs a warning.
func (m *Manager) Yank(text string) bool {
	m.register = []byte(text)
	logger.DebugTagf("clipboard", "Yanked %d bytes", len(m.register))

	if !m.useSystem {
		return false
	}
	if err := m.writeAll(text); err != nil {
		logger.Warnf("Clipboard: system copy failed, kept in internal register: %v", err)
		return false
	}
	return true
}

// Register returns the last yanked text.
func (m *Manager) Register() []byte {
	return m.register
}

// UseSystem reports whether yanks go to the system clipboard.
func (m *Manager) UseSystem() bool {
	return m.useSystem
}
