package grove

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"
)

// Exec parses and evaluates one line. It reports whether the line asked to
// end the session. Blank lines and comments evaluate to nothing.
func Exec(env *Env, line string) (Value, bool, error) {
	tokens := Tokenize(line)
	if len(tokens) == 0 {
		return nil, false, nil
	}
	node, err := NewParser(env).ParseTokens(tokens)
	if err != nil {
		return nil, false, err
	}
	if _, ok := node.(*TerminateSession); ok {
		return nil, true, nil
	}
	v, err := node.Eval(env)
	if err != nil {
		return nil, false, err
	}
	return v, false, nil
}

// Run executes r line by line, writing each result to w. It stops at the
// first error or at quit/exit. A nil w discards results.
func Run(env *Env, r io.Reader, w io.Writer, name string) error {
	if w == nil {
		w = io.Discard
	}
	scanner := bufio.NewScanner(r)
	for lineno := 1; scanner.Scan(); lineno++ {
		v, quit, err := Exec(env, scanner.Text())
		if err != nil {
			return fmt.Errorf("%s:%d: %w", name, lineno, err)
		}
		if quit {
			return nil
		}
		if v != nil {
			fmt.Fprintln(w, v)
		}
	}
	return scanner.Err()
}

// RunFiles runs each script in a fresh Env, at most jobs at a time when
// jobs > 0. Outputs are written to w in the order of paths once all
// scripts have finished, including the output of a failed script up to
// its error.
func RunFiles(ctx context.Context, paths []string, jobs int, w io.Writer, setup func(*Env) error) error {
	outs := make([]bytes.Buffer, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	for i, p := range paths {
		i, p := i, p
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f, err := os.Open(p)
			if err != nil {
				return err
			}
			defer f.Close()
			env := NewEnv()
			if setup != nil {
				if err := setup(env); err != nil {
					return fmt.Errorf("%s: %w", p, err)
				}
			}
			return Run(env, f, &outs[i], p)
		})
	}
	err := g.Wait()
	for i := range outs {
		if _, werr := w.Write(outs[i].Bytes()); werr != nil && err == nil {
			err = werr
		}
	}
	return err
}
