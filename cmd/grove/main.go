package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/mattn/grove"
	_ "github.com/mattn/grove/gopkg"
)

const configFile = ".grove.yaml"

func loadConfig(path string) (*grove.Config, error) {
	if path != "" {
		return grove.LoadConfig(path)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return grove.DefaultConfig(), nil
	}
	cfg, err := grove.LoadConfig(filepath.Join(home, configFile))
	if errors.Is(err, os.ErrNotExist) {
		return grove.DefaultConfig(), nil
	}
	return cfg, err
}

func newEnv(cfg *grove.Config) *grove.Env {
	env := grove.NewEnv()
	if err := cfg.Setup(env); err != nil {
		log.Fatal(err)
	}
	return env
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("grove: ")

	configPath := flag.String("config", "", "path to a YAML config file (default ~/"+configFile+")")
	trace := flag.Bool("trace", false, "log imports and bindings to stderr")
	jobs := flag.Int("j", 0, "number of scripts to run concurrently (0 means no limit)")
	expr := flag.String("e", "", "evaluate a single line and exit")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *trace {
		cfg.Trace = true
	}
	if *jobs > 0 {
		cfg.Jobs = *jobs
	}

	switch {
	case *expr != "":
		env := newEnv(cfg)
		v, _, err := grove.Exec(env, *expr)
		if err != nil {
			log.Fatal(err)
		}
		if v != nil {
			fmt.Println(v)
		}
	case flag.NArg() > 0:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := grove.RunFiles(ctx, flag.Args(), cfg.Jobs, os.Stdout, cfg.Setup); err != nil {
			stop()
			log.Fatal(err)
		}
	case isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()):
		repl(cfg)
	default:
		if err := grove.Run(newEnv(cfg), os.Stdin, os.Stdout, "<stdin>"); err != nil {
			log.Fatal(err)
		}
	}
}
