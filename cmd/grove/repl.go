package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/grove"
	"github.com/peterh/liner"
)

func historyPath(cfg *grove.Config) string {
	if cfg.History == "" || filepath.IsAbs(cfg.History) {
		return cfg.History
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, cfg.History)
}

// repl reads lines until quit, exit or EOF. Errors are printed and the
// session goes on.
func repl(cfg *grove.Config) {
	env := newEnv(cfg)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	hist := historyPath(cfg)
	if hist != "" {
		if f, err := os.Open(hist); err == nil {
			ln.ReadHistory(f)
			f.Close()
		}
		defer func() {
			if f, err := os.Create(hist); err == nil {
				ln.WriteHistory(f)
				f.Close()
			}
		}()
	}

	for {
		line, err := ln.Prompt(cfg.Prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				fmt.Fprintln(os.Stderr, err)
			}
			fmt.Println()
			return
		}
		if strings.TrimSpace(line) != "" {
			ln.AppendHistory(line)
		}

		v, quit, err := grove.Exec(env, line)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		if quit {
			return
		}
		if v != nil {
			fmt.Println(v)
		}
	}
}
