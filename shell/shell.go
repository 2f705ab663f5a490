// Package shell is the interactive console for playing compiled
// rock-paper-scissors variants. It owns all terminal I/O; game mechanics
// live in the game package and variant compilation in rules.
package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"

	"github.com/PoonySpard/rpsgo/config"
	"github.com/PoonySpard/rpsgo/game"
	"github.com/PoonySpard/rpsgo/rules"
)

const (
	prompt     = "\033[31mrps>\033[0m "
	movePrompt = "\033[31mmove>\033[0m "

	redText   = "\033[91m"
	whiteText = "\033[0m"

	yes = "y"
	no  = "n"
)

type ShellController struct {
	l   *readline.Instance
	cfg *config.Config

	rs  *rules.Ruleset
	cur *game.Game
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func NewShellController(cfg *config.Config) *ShellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     "/tmp/rps_readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}

	sc := &ShellController{l: l, cfg: cfg}
	sc.setRuleset(startingRuleset(cfg))
	return sc
}

func startingRuleset(cfg *config.Config) *rules.Ruleset {
	if cfg == nil {
		return rules.Classic()
	}
	if path := cfg.GetString("variant-file"); path != "" {
		rs, err := compileFile(rules.Classic(), path)
		if err != nil {
			log.Error().Err(err).Str("path", path).Msg("could not compile variant file; falling back to classic")
			return rules.Classic()
		}
		return rs
	}
	if cfg.GetString("default-variant") == "lizardspock" {
		return rules.LizardSpock()
	}
	return rules.Classic()
}

func compileFile(prev *rules.Ruleset, path string) (*rules.Ruleset, error) {
	defs, err := rules.LoadSpec(path)
	if err != nil {
		return nil, err
	}
	return rules.Compile(prev, defs)
}

func (sc *ShellController) setRuleset(rs *rules.Ruleset) {
	sc.rs = rs
	sc.cur = game.New(rs)
	log.Debug().Str("variant", rs.Name()).Msg("active ruleset changed")
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.l.Stderr())
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

// readLine reads one line from the terminal under a temporary prompt.
// io.EOF or an interrupt abort whatever flow called it.
func (sc *ShellController) readLine(p string) (string, error) {
	sc.l.SetPrompt(p)
	defer sc.l.SetPrompt(prompt)
	line, err := sc.l.Readline()
	if err == readline.ErrInterrupt || err == io.EOF {
		return "", io.EOF
	}
	return strings.TrimSpace(line), err
}

func (sc *ShellController) showRules() {
	sc.showMessage("Variant: " + sc.rs.Name())
	for _, m := range sc.rs.Moves() {
		sc.showMessage(fmt.Sprintf("  %-12s input: %-3s", m.Display(), m.Input()))
	}
	verbs, err := game.VerbSummary(sc.rs)
	if err != nil {
		sc.showError(err)
		return
	}
	sc.showMessage(verbs)
}

// playRound runs one full round: instructions, both moves, resolution,
// narration.
func (sc *ShellController) playRound() error {
	if err := sc.cur.Begin(); err != nil {
		return err
	}
	instr, err := sc.cur.Instructions()
	if err != nil {
		return err
	}
	sc.showMessage(instr)

	if err := sc.cur.PickComputerMove(); err != nil {
		return err
	}
	for {
		line, err := sc.readLine(movePrompt)
		if err != nil {
			return err
		}
		if err := sc.cur.SetPlayerMoveFromInput(line); err != nil {
			sc.showMessage(sc.cur.SimpleInstructions())
			continue
		}
		break
	}

	if _, err := sc.cur.Resolve(); err != nil {
		return err
	}
	summary, err := sc.cur.Summary()
	if err != nil {
		return err
	}
	sc.showMessage(summary)
	sc.showMessage(sc.cur.RecordLine())
	sc.cur.Reset()
	return nil
}

// playAgain queries the player, re-asking until it gets a y or an n.
func (sc *ShellController) playAgain() (bool, error) {
	ans, err := sc.readLine(fmt.Sprintf("Play again %s/%s?\n", yes, no))
	if err != nil {
		return false, err
	}
	for strings.ToLower(ans) != yes && strings.ToLower(ans) != no {
		ans, err = sc.readLine(fmt.Sprintf(
			"%sThat wasn't %s or %s, %s/%s?%s\n", redText, yes, no, yes, no, whiteText))
		if err != nil {
			return false, err
		}
	}
	return strings.ToLower(ans) == yes, nil
}

func (sc *ShellController) play() {
	for {
		if err := sc.playRound(); err != nil {
			if err != io.EOF {
				sc.showError(err)
			}
			return
		}
		again, err := sc.playAgain()
		if err != nil || !again {
			return
		}
	}
}

func (sc *ShellController) newVariant(arg string) {
	switch arg {
	case "classic":
		sc.setRuleset(rules.Classic())
	case "lizardspock":
		sc.setRuleset(rules.LizardSpock())
	default:
		sc.showError(errors.New("variant " + arg + " is not a valid choice; try classic or lizardspock"))
		return
	}
	sc.showMessage("Now playing " + sc.rs.Name())
}

func (sc *ShellController) loadVariant(path string) {
	rs, err := compileFile(sc.rs, path)
	if err != nil {
		sc.showError(err)
		return
	}
	sc.setRuleset(rs)
	sc.showMessage("Now playing " + sc.rs.Name())
}

func (sc *ShellController) commandSwitch(line string, sig chan os.Signal) error {
	switch {
	case line == "play":
		sc.play()

	case line == "show":
		sc.showRules()

	case strings.HasPrefix(line, "new "):
		sc.newVariant(strings.TrimSpace(line[4:]))

	case strings.HasPrefix(line, "load "):
		sc.loadVariant(strings.TrimSpace(line[5:]))

	case line == "record":
		sc.showMessage(sc.cur.RecordLine())

	case line == "bye" || line == "exit":
		sig <- syscall.SIGINT
		return errors.New("sending quit signal")

	case strings.HasPrefix(line, "help"):
		usage(sc.l.Stderr())

	default:
		if line != "" {
			log.Debug().Msgf("you said: %v", line)
			sc.showMessage("unknown command; try `help`")
		}
	}
	return nil
}

// Loop reads commands until the player quits or the terminal closes.
func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)

		if err := sc.commandSwitch(line, sig); err != nil {
			break
		}
	}
	log.Debug().Msg("exiting readline loop...")
}

// Execute runs a single command non-interactively.
func (sc *ShellController) Execute(sig chan os.Signal, line string) {
	defer sc.l.Close()
	if err := sc.commandSwitch(strings.TrimSpace(line), sig); err != nil {
		log.Error().Err(err).Msg("")
	}
}

func (sc *ShellController) Cleanup() {}
