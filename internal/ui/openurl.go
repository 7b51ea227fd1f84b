package ui

import (
	"os/exec"
	"runtime"

	tea "github.com/charmbracelet/bubbletea"
)

// linkOpenedMsg reports the outcome of handing a link to the OS.
type linkOpenedMsg struct {
	url string
	err error
}

// openerCommand returns the program and arguments that open u on goos.
func openerCommand(goos, u string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{u}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", u}
	default:
		return "xdg-open", []string{u}
	}
}

// openLink hands an https, mailto or tel link to the desktop opener off the
// event loop.
func openLink(u string) tea.Cmd {
	return func() tea.Msg {
		name, args := openerCommand(runtime.GOOS, u)
		err := exec.Command(name, args...).Run()
		return linkOpenedMsg{url: u, err: err}
	}
}
