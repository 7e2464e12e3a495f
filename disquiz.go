// disquiz - gameify learning stack-machine disassembly.
//
// the quiz shows a function's source and asks you to type, instruction
// by instruction, the disassembly of its compiled bytecode.
package main

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"pkt.systems/pslog"

	"github.com/hexop/disquiz/challenges"
	"github.com/hexop/disquiz/paths"
	"github.com/hexop/disquiz/quiz"
	"github.com/hexop/disquiz/quiz/terminal"
	"github.com/hexop/disquiz/quiz/terminal/colorterm"
	"github.com/hexop/disquiz/quiz/terminal/plainterm"
	"github.com/hexop/disquiz/state"
)

const version = "0.3.0"

func main() {
	logger := pslog.LoggerFromEnv(
		pslog.WithEnvWriter(os.Stderr),
		pslog.WithEnvOptions(pslog.Options{Mode: pslog.ModeConsole}),
	)

	root := newRootCmd(logger)
	if err := root.Execute(); err != nil {
		logger.With("err", err).Error("disquiz failed")
		os.Exit(1)
	}
}

func newRootCmd(logger pslog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:           "disquiz",
		Short:         "an interactive quiz on stack-machine disassembly",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.AddCommand(newPlayCmd(logger))
	root.AddCommand(newListCmd(logger))
	root.AddCommand(newResetCmd(logger))
	root.AddCommand(newVersionCmd())

	return root
}

func newPlayCmd(logger pslog.Logger) *cobra.Command {
	var plain bool
	var difficulty string
	var challengeFile string

	cmd := &cobra.Command{
		Use:   "play",
		Short: "play the quiz",
		RunE: func(_ *cobra.Command, _ []string) error {
			list, sessionKey, err := loadChallenges(difficulty, challengeFile)
			if err != nil {
				return err
			}

			store, err := openStore(logger)
			if err != nil {
				return err
			}

			trm := selectTerminal(plain)
			if err := trm.Initialise(); err != nil {
				return err
			}
			defer trm.CleanUp()

			qz, err := quiz.NewQuiz(trm, list, store, sessionKey, logger)
			if err != nil {
				return err
			}

			return qz.Run(time.Now())
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "use the plain terminal even when stdin is a tty")
	cmd.Flags().StringVar(&difficulty, "difficulty", "", "only play challenges of this difficulty (easy, medium, hard)")
	cmd.Flags().StringVar(&challengeFile, "challenges", "", "load additional challenges from a YAML file")

	return cmd
}

func newListCmd(logger pslog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list the challenge catalog with personal bests",
		RunE: func(_ *cobra.Command, _ []string) error {
			list, _, err := loadChallenges("", "")
			if err != nil {
				return err
			}

			store, err := openStore(logger)
			if err != nil {
				return err
			}
			sta := store.Load()

			for _, c := range list {
				best := "-"
				if b, ok := sta.ChallengeBest(c.Name); ok {
					best = state.FormatTime(b)
				}
				fmt.Printf("%-28s %-8s %s\n", c.Name, c.Difficulty, best)
			}

			keys := make([]string, 0, len(sta.SessionBests))
			for k := range sta.SessionBests {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				b, _ := sta.SessionBest(k)
				fmt.Printf("session (%s): %s\n", k, state.FormatTime(b))
			}

			return nil
		},
	}
}

func newResetCmd(logger pslog.Logger) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "forget all recorded personal bests",
		RunE: func(_ *cobra.Command, _ []string) error {
			if !force {
				fmt.Print("forget all recorded personal bests? [y/N] ")
				answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
				if strings.ToLower(strings.TrimSpace(answer)) != "y" {
					return nil
				}
			}

			store, err := openStore(logger)
			if err != nil {
				return err
			}
			return store.Reset()
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "do not ask for confirmation")

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("disquiz %s\n", version)
		},
	}
}

// loadChallenges assembles the challenge list for a session: the builtin
// catalog, plus an optional user file, filtered by difficulty. the
// second return value is the session-best key.
func loadChallenges(difficulty string, challengeFile string) ([]challenges.Challenge, string, error) {
	list, err := challenges.Catalog()
	if err != nil {
		return nil, "", err
	}

	if challengeFile != "" {
		extra, err := challenges.LoadFile(challengeFile)
		if err != nil {
			return nil, "", err
		}
		list = append(list, extra...)
	}

	sessionKey := "all"
	if difficulty != "" {
		d, err := challenges.ParseDifficulty(difficulty)
		if err != nil {
			return nil, "", err
		}
		list = challenges.Filter(list, d)
		sessionKey = d.String()
	}

	return list, sessionKey, nil
}

func openStore(logger pslog.Logger) (*state.Store, error) {
	path, err := paths.ResourcePath("state.json")
	if err != nil {
		return nil, err
	}
	return state.NewStore(path, logger)
}

// selectTerminal picks the terminal implementation: the color terminal
// when talking to a real tty, the plain terminal otherwise.
func selectTerminal(plain bool) terminal.Terminal {
	if plain || !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return &plainterm.PlainTerminal{}
	}
	return &colorterm.ColorTerminal{}
}
