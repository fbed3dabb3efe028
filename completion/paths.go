package completion

import (
	"path/filepath"
)

// Paths holds the user completion directories of a shell and its file naming convention
type Paths struct {
	Primary   string
	Fallback  string
	Prefix    string // zsh completion functions start with _
	Extension string
}

// PathsFor returns the user completion directories of shell on goos relative to home
func PathsFor(goos, home, shell string) Paths {
	switch shell {
	case "bash":
		return Paths{
			Primary:  filepath.Join(home, ".local", "share", "bash-completion", "completions"),
			Fallback: filepath.Join(home, ".bash_completion.d"),
		}
	case "zsh":
		return Paths{
			Primary:  filepath.Join(home, ".zsh", "completion"),
			Fallback: filepath.Join(home, ".zfunc"),
			Prefix:   "_",
		}
	case "fish":
		return Paths{
			Primary:   filepath.Join(home, ".config", "fish", "completions"),
			Fallback:  filepath.Join(home, ".local", "share", "fish", "completions"),
			Extension: ".fish",
		}
	case "powershell":
		p := Paths{
			Primary:   filepath.Join(home, ".config", "powershell", "Completions"),
			Fallback:  filepath.Join(home, ".local", "share", "powershell", "Completions"),
			Extension: ".ps1",
		}
		switch goos {
		case "windows":
			p.Primary = filepath.Join(home, "Documents", "PowerShell", "Completions")
			p.Fallback = filepath.Join(home, "Documents", "WindowsPowerShell", "Completions")
		case "darwin":
			p.Primary = filepath.Join(home, "Library", "PowerShell", "Completions")
		}
		return p
	}

	return Paths{}
}
