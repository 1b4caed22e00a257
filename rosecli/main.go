// rosecli is an interactive shell for the sigil engine and the almanac.
//
// Commands:
//
//	tokens <word>            show the canonical symbol sequence for a word
//	sigil <word> [file.png]  render a sigil, optionally to a PNG file
//	almanac                  show the current occult context
//	help                     list commands
//	quit                     leave the shell
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"

	"github.com/alchemelodic/rosesigil"
	"github.com/alchemelodic/rosesigil/almanac"
	"github.com/alchemelodic/rosesigil/rose"
)

// tracer traces with key 'rose.cli'
func tracer() tracing.Trace {
	return tracing.Select("rose.cli")
}

func main() {
	initDisplay()

	// set up logging
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	flag.Parse()
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":   "go",
		"trace.rose.cli":    *tlevel,
		"trace.rose.sigil":  *tlevel,
		"trace.rose.render": *tlevel,
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Println("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	pterm.Info.Println("Welcome to the rose-cross sigil shell")
	repl, err := readline.New("rose > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	pterm.Info.Println("Quit with <ctrl>D")
	shell := &Shell{repl: repl}
	shell.REPL()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Shell is our interpreter object.
type Shell struct {
	repl *readline.Instance
}

// REPL starts interactive mode.
func (sh *Shell) REPL() {
	for {
		line, err := sh.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := sh.execute(strings.Fields(line))
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

func (sh *Shell) execute(args []string) (quit bool, err error) {
	switch args[0] {
	case "quit":
		return true, nil
	case "help":
		sh.help()
	case "tokens":
		if len(args) < 2 {
			return false, fmt.Errorf("usage: tokens <word>")
		}
		symbols := rosesigil.Symbols(args[1])
		if len(symbols) == 0 {
			pterm.Println("(no mapped letters)")
			break
		}
		pterm.Println(strings.Join(symbols, " "))
	case "sigil":
		if len(args) < 2 {
			return false, fmt.Errorf("usage: sigil <word> [file.png]")
		}
		return false, sh.sigil(args[1:])
	case "almanac":
		sh.almanac()
	default:
		return false, fmt.Errorf("unknown command: %s", args[0])
	}
	return false, nil
}

// sigil renders a word; with a file argument the PNG goes to disk, without
// one the path steps are listed instead.
func (sh *Shell) sigil(args []string) error {
	word := args[0]
	if len(args) > 1 {
		f, err := os.Create(args[1])
		if err != nil {
			return err
		}
		defer f.Close()
		if err := rosesigil.SigilTo(f, word); err != nil {
			return err
		}
		pterm.Info.Println("sigil written to " + args[1])
		return nil
	}
	steps := rose.Path(word)
	if len(steps) == 0 {
		pterm.Println("(empty sigil)")
		return nil
	}
	for i, step := range steps {
		marker := ""
		if step.Repeat {
			marker = "  (repeat)"
		}
		pterm.Println(fmt.Sprintf("%2d  %-3s at (%+.3f, %+.3f)%s",
			i+1, step.Symbol, step.At.X, step.At.Y, marker))
	}
	return nil
}

func (sh *Shell) almanac() {
	now := time.Now()
	pterm.Println("Date:              " + now.Format("Jan. 02, 2006"))
	pterm.Println("Time:              " + now.Format("03:04 PM"))
	pterm.Println("Day:               " + now.Format("Monday"))
	pterm.Println("Elemental Quarter: " + almanac.ElementalQuarter(now))
	pterm.Println("Moon Phase:        " + almanac.MoonPhase(now))
}

func (sh *Shell) help() {
	pterm.Println("tokens <word>            show the canonical symbol sequence")
	pterm.Println("sigil <word> [file.png]  render a sigil")
	pterm.Println("almanac                  show the current occult context")
	pterm.Println("quit                     leave the shell")
}
