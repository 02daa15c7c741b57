package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/wordiz/internal/practice"
	"github.com/abhisek/wordiz/internal/screen"
)

var drillCmd = &cobra.Command{
	Use:   "drill",
	Short: "Practice a unit line by line without the full-screen UI",
	Long: `Run a practice session on plain stdin/stdout.

Recall mode prints the meaning and reads the word; "-" skips the word and
a wrong answer waits for Enter before the next one.
Recognition mode shows each card and reveals it on Enter. When a set is
finished you can retry it, replay mistakes, or move on to the next set.`,
	RunE: runDrill,
}

func init() {
	drillCmd.Flags().String("unit", "", "Unit to practice, e.g. de/a1/topic/basics (required unless set in config)")
	drillCmd.Flags().String("mode", "recall", "Practice mode: recall or recognition")
	drillCmd.Flags().Int("preset", 0, "Practice the first N words (default: the first configured preset)")
	drillCmd.Flags().String("range", "", "Practice an explicit range of words, e.g. 11-20")
	drillCmd.MarkFlagsMutuallyExclusive("preset", "range")
}

func runDrill(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Unit == "" {
		return errors.New("no unit given: pass --unit or set unit in the config")
	}
	logger, closer := setupLogging(cmd, cfg)
	defer closer.Close()

	modeVal, _ := cmd.Flags().GetString("mode")
	mode, ok := practice.ParseMode(modeVal)
	if !ok {
		return fmt.Errorf("invalid mode %q: must be recall or recognition", modeVal)
	}

	env := newEnv(cfg, logger)
	unit, err := env.Library.Load(cfg.Unit, env.Lang())
	if err != nil {
		return err
	}

	engine := env.NewEngine(unit)
	if err := engine.SetMode(mode); err != nil {
		return err
	}

	rangeVal, _ := cmd.Flags().GetString("range")
	preset, _ := cmd.Flags().GetInt("preset")
	if err := selectBatch(engine, env.Presets(mode), rangeVal, preset); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s — %s\n\n", unit.Title, env.T("setup.count", engine.Len()))
	d := &driller{
		env:    env,
		engine: engine,
		in:     bufio.NewScanner(cmd.InOrStdin()),
		out:    cmd.OutOrStdout(),
	}
	return d.run()
}

// selectBatch starts the first session from either an explicit range or a
// preset size.
func selectBatch(engine *practice.Engine, presets []int, rangeVal string, preset int) error {
	if rangeVal != "" {
		start, end, err := parseRange(rangeVal)
		if err != nil {
			return err
		}
		return engine.SelectRange(start, end)
	}
	if preset == 0 && len(presets) > 0 {
		preset = presets[0]
	}
	return engine.SelectPreset(preset)
}

// parseRange parses "a-b" into its two bounds.
func parseRange(s string) (int, int, error) {
	a, b, ok := strings.Cut(s, "-")
	if !ok {
		return 0, 0, fmt.Errorf("invalid range %q: want start-end", s)
	}
	start, err1 := strconv.Atoi(strings.TrimSpace(a))
	end, err2 := strconv.Atoi(strings.TrimSpace(b))
	if err1 != nil || err2 != nil {
		return 0, 0, fmt.Errorf("invalid range %q: bounds must be whole numbers", s)
	}
	return start, end, nil
}

// driller runs sessions over a line-based terminal.
type driller struct {
	env    *screen.Env
	engine *practice.Engine
	in     *bufio.Scanner
	out    io.Writer
}

var errInputClosed = errors.New("input closed")

// skipToken is the recall answer that skips the current word.
const skipToken = "-"

func (d *driller) readLine() (string, error) {
	if !d.in.Scan() {
		if err := d.in.Err(); err != nil {
			return "", err
		}
		return "", errInputClosed
	}
	return strings.TrimSpace(d.in.Text()), nil
}

func (d *driller) run() error {
	for {
		if err := d.session(); err != nil {
			if errors.Is(err, errInputClosed) {
				fmt.Fprintln(d.out, "\n(input closed)")
				return nil
			}
			return err
		}
		d.report()

		again, err := d.chain()
		if err != nil {
			if errors.Is(err, errInputClosed) {
				return nil
			}
			return err
		}
		if !again {
			return nil
		}
	}
}

// session plays the active session to completion.
func (d *driller) session() error {
	for d.engine.Phase() == practice.PhaseActive {
		s := d.engine.Session()
		item, _ := s.Current()

		fmt.Fprintf(d.out, "── %s ── %s\n", d.env.T("practice.progress", s.Position+1, len(s.Items)), item.Category)
		fmt.Fprintln(d.out, item.Gloss)

		var err error
		if s.Mode == practice.ModeRecall {
			err = d.recall(item.PromptExample(), item.Term)
		} else {
			err = d.recognition(item.Term, item.RevealExample())
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(d.out)
	}
	return nil
}

func (d *driller) recall(prompt, term string) error {
	if prompt != "" {
		fmt.Fprintln(d.out, prompt)
	}

	for {
		fmt.Fprintf(d.out, "%s: ", d.env.T("practice.input"))
		answer, err := d.readLine()
		if err != nil {
			return err
		}
		if answer == skipToken {
			fmt.Fprintf(d.out, "(%s) %s\n", d.env.T("practice.skip"), term)
			return d.engine.Advance()
		}

		v, deferred, err := d.engine.Submit(answer)
		if errors.Is(err, practice.ErrEmptyAnswer) {
			continue
		}
		if err != nil {
			return err
		}

		if v != practice.Correct {
			fmt.Fprintf(d.out, "\033[31m✗ %s\033[0m\n", d.env.T("practice.wrong", term))
			fmt.Fprintf(d.out, "[%s] ", d.env.T("practice.next"))
			if _, err := d.readLine(); err != nil {
				return err
			}
			return d.engine.Advance()
		}

		fmt.Fprintf(d.out, "\033[32m✓ %s\033[0m\n", d.env.T("practice.correct"))
		<-deferred.Done()
		if !d.engine.AutoAdvance(deferred.Token) {
			return d.engine.Advance()
		}
		return nil
	}
}

func (d *driller) recognition(term, example string) error {
	fmt.Fprintf(d.out, "[%s] ", d.env.T("practice.flip"))
	if _, err := d.readLine(); err != nil {
		return err
	}
	if err := d.engine.Flip(); err != nil {
		return err
	}
	fmt.Fprintln(d.out, term)
	if example != "" {
		fmt.Fprintln(d.out, example)
	}
	fmt.Fprintf(d.out, "[%s] ", d.env.T("practice.next"))
	if _, err := d.readLine(); err != nil {
		return err
	}
	return d.engine.Advance()
}

func (d *driller) report() {
	rep, err := d.engine.Report()
	if err != nil {
		return
	}
	fmt.Fprintln(d.out, d.env.T("result.title"), d.env.T("result.desc", rep.Range.Start, rep.Range.End))
	if rep.Mode != practice.ModeRecall {
		return
	}
	fmt.Fprintln(d.out, d.env.T("result.score", rep.Correct, rep.Wrong, rep.Total))
	if len(rep.Mistakes) == 0 {
		fmt.Fprintln(d.out, d.env.T("result.perfect"))
		return
	}
	fmt.Fprintln(d.out, d.env.T("result.mistakes")+":")
	for _, item := range rep.Mistakes {
		fmt.Fprintf(d.out, "  %s — %s\n", item.Term, item.Gloss)
	}
}

// chain reads chain actions until one starts a new session or the user
// quits. It reports whether a new session is active.
func (d *driller) chain() (bool, error) {
	for {
		fmt.Fprintf(d.out, "\n%s\n> ", d.env.T("drill.chain"))
		choice, err := d.readLine()
		if err != nil {
			return false, err
		}

		var action func() error
		switch strings.ToLower(choice) {
		case "r":
			action = d.engine.RetryBatch
		case "m":
			action = d.engine.RetryMistakes
		case "n":
			action = d.engine.NextBatch
		case "q", "":
			return false, nil
		default:
			continue
		}

		if err := action(); err != nil {
			if errors.Is(err, practice.ErrNotOffered) {
				fmt.Fprintln(d.out, d.env.T("drill.unavailable"))
				continue
			}
			return false, err
		}
		fmt.Fprintln(d.out)
		return true, nil
	}
}
