// Package browser launches URLs in the user's default web browser.
package browser

import (
	"fmt"
	"os/exec"
	"runtime"
)

//go:generate mockgen -source=browser.go -destination=../mocks/browser/mock_opener.go -package=mock_browser Opener

type Opener interface {
	Open(url string) error
}

// ExecOpener opens URLs through the platform's URL handler command.
type ExecOpener struct{}

func NewExecOpener() *ExecOpener {
	return &ExecOpener{}
}

func (o *ExecOpener) Open(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("cmd.Start(%s) > %w", url, err)
	}
	return nil
}
