package action

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

func init() {
	Register(execAction{})
	Register(uriAction{})
	Register(printAction{})
}

// execAction runs a shell command line, detached from the menu process.
type execAction struct{}

func (execAction) Type() string { return "exec" }

func (execAction) Run(arg string) error {
	if arg == "" {
		return fmt.Errorf("action: exec needs a command")
	}
	cmd := exec.Command("/bin/sh", "-c", arg)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("action: exec %q: %w", arg, err)
	}
	// Reap the child in the background so it never turns into a zombie.
	go cmd.Wait()
	return nil
}

// uriAction opens a URI with the platform's default handler.
type uriAction struct{}

func (uriAction) Type() string { return "uri" }

func (uriAction) Run(arg string) error {
	if arg == "" {
		return fmt.Errorf("action: uri needs an argument")
	}
	opener := "xdg-open"
	if runtime.GOOS == "darwin" {
		opener = "open"
	}
	cmd := exec.Command(opener, arg)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("action: open %q: %w", arg, err)
	}
	go cmd.Wait()
	return nil
}

// printAction writes its argument to stdout, for shell integration: the
// caller captures the output and decides what to do with it.
type printAction struct{}

func (printAction) Type() string { return "print" }

func (printAction) Run(arg string) error {
	_, err := fmt.Fprintln(os.Stdout, arg)
	return err
}
