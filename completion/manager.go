package completion

import (
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/napalu/commando/errs"
)

var generators = map[string]Generator{
	"bash":       &BashGenerator{},
	"zsh":        &ZshGenerator{},
	"fish":       &FishGenerator{},
	"powershell": &PowerShellGenerator{},
}

// Shells returns the supported shell names
func Shells() []string {
	shells := make([]string, 0, len(generators))
	for shell := range generators {
		shells = append(shells, shell)
	}
	sort.Strings(shells)

	return shells
}

// GetGenerator returns the Generator of shell
func GetGenerator(shell string) (Generator, error) {
	g, found := generators[shell]
	if !found {
		return nil, errs.ErrUnsupportedShell.WithArgs(shell)
	}

	return g, nil
}

// Manager generates a completion script and installs it where the shell looks for user completions
type Manager struct {
	Shell       string
	ProgramName string
	Paths       Paths
	generator   Generator
	script      string
}

// NewManager creates a Manager for shell. The install paths are derived from the home directory
// of the current user.
func NewManager(shell, programName string) (*Manager, error) {
	g, err := GetGenerator(shell)
	if err != nil {
		return nil, err
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, errs.ErrCompletionInstall.WithArgs("~").Wrap(err)
	}

	return &Manager{
		Shell:       shell,
		ProgramName: filepath.Base(programName),
		Paths:       PathsFor(runtime.GOOS, home, shell),
		generator:   g,
	}, nil
}

// Accept generates the completion script from data
func (m *Manager) Accept(data Data) {
	m.script = m.generator.Generate(m.ProgramName, data)
}

// Script returns the script generated by Accept
func (m *Manager) Script() string {
	return m.script
}

// Save writes the generated script to the primary directory, or the fallback directory when the
// primary one cannot be created, and returns the path written
func (m *Manager) Save() (string, error) {
	if m.script == "" {
		return "", errs.ErrCompletionNotReady
	}

	dir, err := m.ensureDir()
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, m.Paths.Prefix+m.ProgramName+m.Paths.Extension)
	if err := os.WriteFile(path, []byte(m.script), 0o644); err != nil {
		return "", errs.ErrCompletionInstall.WithArgs(path).Wrap(err)
	}

	return path, nil
}

func (m *Manager) ensureDir() (string, error) {
	err := os.MkdirAll(m.Paths.Primary, 0o755)
	if err == nil {
		return m.Paths.Primary, nil
	}
	if m.Paths.Fallback == "" {
		return "", errs.ErrCompletionInstall.WithArgs(m.Paths.Primary).Wrap(err)
	}
	if err := os.MkdirAll(m.Paths.Fallback, 0o755); err != nil {
		return "", errs.ErrCompletionInstall.WithArgs(m.Paths.Fallback).Wrap(err)
	}

	return m.Paths.Fallback, nil
}
