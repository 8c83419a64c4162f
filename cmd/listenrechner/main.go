package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/mattn/go-isatty"

	lr "github.com/goldfishcode/Zwischentest3-LeeroyderListenrechner"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("listenrechner: ")
	var (
		confname, inname          string
		strict, quiet, echo, dump bool
	)
	flag.StringVar(&confname, "config", "", "YAML config file")
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.BoolVar(&strict, "strict", false, "report division by zero instead of ignoring it")
	flag.BoolVar(&quiet, "quiet", false, "do not print resulting terms")
	flag.BoolVar(&echo, "echo", false, "print the term after every token")
	flag.BoolVar(&dump, "dump", false, "dump each token sequence before evaluating it")
	flag.Parse()

	cfg := DefaultConfig()
	if confname != "" {
		var err error
		cfg, err = LoadConfig(confname)
		if err != nil {
			log.Fatal(err)
		}
	}
	// Flags given on the command line override the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "strict":
			cfg.StrictDivision = strict
		case "quiet":
			cfg.Trace = !quiet
		case "echo":
			cfg.Echo = echo
		case "dump":
			cfg.Dump = dump
		}
	})

	in, closer, interactive, err := input(inname, flag.Args())
	if err != nil {
		log.Fatal(err)
	}
	err = run(cfg, in, os.Stdout, interactive)
	closer.Close()
	if err != nil {
		log.Fatal(err)
	}
}

// input selects the source of tokens and returns the closer for it. Arguments
// form a single expression. Prompts are only wanted when reading from a
// terminal.
func input(inname string, args []string) (io.RuneScanner, io.Closer, bool, error) {
	switch {
	case len(args) > 0:
		return strings.NewReader(strings.Join(args, " ")), io.NopCloser(nil), false, nil
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			return nil, nil, false, err
		}
		return bufio.NewReader(f), f, false, nil
	}
	fd := os.Stdin.Fd()
	return bufio.NewReader(os.Stdin), io.NopCloser(os.Stdin), isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd), nil
}

// run reads and evaluates expressions from src until the input ends. Bad
// tokens and failed evaluations are logged and do not stop the loop.
func run(cfg Config, src io.RuneScanner, out io.Writer, interactive bool) error {
	var opts []lr.ContextOption
	if cfg.StrictDivision {
		opts = append(opts, lr.StrictDivision())
	}
	if cfg.Trace {
		opts = append(opts, lr.OnStep(func(step string) {
			fmt.Fprintf(out, "Resulting term: %s\n", step)
		}))
	}
	ctx := lr.NewContext(opts...)
	rd := lr.NewReader(src)
	for {
		seq := lr.NewSequence()
		for {
			if interactive {
				fmt.Fprint(out, cfg.Prompt)
			}
			tok, err := rd.Next()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				var ie lr.InputError
				if errors.As(err, &ie) {
					log.Print(err)
					continue
				}
				return err
			}
			seq.Append(tok)
			if interactive || cfg.Echo {
				fmt.Fprintf(out, "Term: %v\n", seq)
			}
		}
		if seq.Len() == 0 && !rd.Terminated() {
			return nil
		}
		if cfg.Dump {
			spew.Fdump(out, seq.Tokens())
		}
		r, err := ctx.Eval(seq)
		if err != nil {
			log.Print(err)
		} else {
			fmt.Fprintf(out, "Result: %d\n", r.Value)
		}
		if !rd.Terminated() {
			return nil
		}
	}
}
