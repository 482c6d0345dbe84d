package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/google/shlex"
	"github.com/spf13/cobra"
)

func newShellCmd() *cobra.Command {
	var prompt string

	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Interactive shell for volume commands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractiveShell(prompt)
		},
	}

	cmd.Flags().StringVar(&prompt, "prompt", "volctl> ", "shell prompt string")
	return cmd
}

func runInteractiveShell(prompt string) error {
	historyFile := filepath.Join(os.TempDir(), "volctl-shell.history")
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return err
	}
	defer func() { _ = rl.Close() }()

	fmt.Println("Interactive shell. 'help' for usage, 'exit' to leave.")

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			fmt.Println()
			continue
		}
		if err == io.EOF {
			fmt.Println()
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		switch line {
		case "exit", "quit":
			return nil
		case "help":
			printShellHelp()
			continue
		}

		tokens, err := shlex.Split(line)
		if err != nil {
			fmt.Printf("parse error: %v\n", err)
			continue
		}
		if len(tokens) == 0 {
			continue
		}
		if tokens[0] == "shell" {
			fmt.Println("already in a shell; type another command or 'exit'")
			continue
		}

		if err := executeArgs(tokens); err != nil {
			fmt.Printf("command error: %v\n", err)
		}
	}
}

func executeArgs(args []string) error {
	root := newRootCmd()
	root.SetArgs(args)
	return root.Execute()
}

func printShellHelp() {
	fmt.Println(`Examples:
  set 50                  # set volume to 50%
  up 10 / down 10         # adjust volume by 10%
  mute / unmute / toggle  # change mute state
  get                     # print current volume
  status                  # print volume and mute state
  status -d headphones    # target another device
  exit / quit             # leave the shell`)
}
