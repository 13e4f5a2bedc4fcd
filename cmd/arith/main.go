package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/alecthomas/repr"
	"github.com/mattn/go-isatty"
	"github.com/mattn/goarith"
)

var showAST = flag.Bool("ast", false, "print the parsed tree before the result")

func run(input string) error {
	expr, err := goarith.Parse(input)
	if err != nil {
		return err
	}
	if *showAST {
		repr.Println(expr)
	}
	fmt.Println(goarith.Eval(expr))
	return nil
}

func repl() {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		if strings.TrimSpace(scanner.Text()) == "" {
			continue
		}
		if err := run(scanner.Text()); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
}

func main() {
	flag.Parse()

	if flag.NArg() > 0 {
		if err := run(strings.Join(flag.Args(), " ")); err != nil {
			log.Fatal(err)
		}
		return
	}

	if isatty.IsTerminal(os.Stdin.Fd()) {
		repl()
		return
	}

	b, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Fatal(err)
	}
	if err := run(string(b)); err != nil {
		log.Fatal(err)
	}
}
