package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/zephyrtronium/xc"
)

func main() {
	log.SetFlags(0)
	var (
		cfgname     string
		with        [][2]string
		formats     []format
		interactive bool
	)
	addwith := func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
		}
		with = append(with, [2]string{strings.TrimSpace(d[0]), strings.TrimSpace(d[1])})
		return nil
	}
	addfmt := func(f format) func(string) error {
		return func(string) error {
			formats = append(formats, f)
			return nil
		}
	}
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] ['stmt; stmt; ...']\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.StringVar(&cfgname, "config", configPath(), "YAML configuration file (default $XC_CONFIG)")
	flag.Func("given", "name=value variable definition (any number of times)", addwith)
	flag.BoolFunc("d", "print decimal output", addfmt(formatDec))
	flag.BoolFunc("x", "print hexadecimal output", addfmt(formatHex))
	flag.BoolFunc("b", "print binary output", addfmt(formatBin))
	flag.BoolVar(&interactive, "i", false, "read statements interactively")
	flag.Parse()

	cfg, err := loadConfig(cfgname)
	if err != nil {
		log.Fatal(err)
	}
	if len(formats) == 0 {
		formats, err = cfg.formats()
		if err != nil {
			log.Fatal(err)
		}
	}

	ctx := xc.NewContext()
	for _, d := range append(cfg.given(), with...) {
		nm := d[0]
		vl := d[1]
		r, err := xc.EvalString(vl)
		if err != nil {
			log.Fatalf("setting %s: %v", nm, err)
		}
		ctx.Set(nm, r)
	}

	s := session{
		ctx:     ctx,
		out:     os.Stdout,
		errs:    os.Stderr,
		formats: formats,
	}
	switch {
	case flag.NArg() > 0:
		for _, arg := range flag.Args() {
			s.args(arg)
		}
	case interactive || isTerminal(os.Stdin):
		if err := s.repl(historyPath()); err != nil {
			log.Fatal(err)
		}
	default:
		if err := s.stream(bufio.NewReader(os.Stdin)); err != nil {
			log.Fatal(err)
		}
	}
}
