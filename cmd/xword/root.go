package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yourealwaysbe/words-bdd"
	"github.com/yourealwaysbe/words-bdd/internal/config"
	"github.com/yourealwaysbe/words-bdd/internal/store"
)

var (
	flagConfig   string
	flagWordFile string
	flagImageIn  string
	flagImageOut string
	flagDotFile  string
	flagPattern  string
	flagRawClues string
	flagDiagram  string
)

var rootCmd = &cobra.Command{
	Use:   "xword",
	Short: "Symbolic crossword solver built on a Binary Decision Diagram",
	RunE:  run,
}

func init() {
	rootCmd.Flags().StringVarP(&flagWordFile, "w", "w", "", "word list file (build dictionary)")
	rootCmd.Flags().StringVar(&flagImageIn, "ib", "", "load a previously serialized dictionary BDD")
	rootCmd.Flags().StringVar(&flagImageOut, "ob", "", "serialize the dictionary BDD after building it")
	rootCmd.Flags().StringVarP(&flagDotFile, "d", "d", "", "dump the dictionary BDD in Graphviz DOT format")
	rootCmd.Flags().StringVarP(&flagPattern, "p", "p", "", "match a wildcard pattern against the dictionary")
	rootCmd.Flags().StringVar(&flagRawClues, "rcw", "", "solve a crossword given as a raw clue list")
	rootCmd.Flags().StringVar(&flagDiagram, "cwd", "", "solve a crossword given as an ASCII diagram")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "config file (default: ~/.xword/config.yaml)")
}

// Execute runs the root command, translating any *xword.Error into the exit
// code policy of §7: NoSolution prints and exits 0, everything else prints
// and exits nonzero.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if xerr, ok := err.(*xword.Error); ok && xerr.Kind == xword.NoSolution {
			os.Exit(0)
		}
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if flagWordFile == "" && flagImageIn == "" {
		cmd.Usage()
		return &xword.Error{Kind: xword.IOError, Msg: "at least one of -w or --ib is required"}
	}

	s, err := xword.NewSolver(cfg.MaxWordLen, cfg.Nodesize, cfg.Cachesize, cfg.Cacheratio)
	if err != nil {
		return err
	}

	dict, err := loadDictionary(s)
	if err != nil {
		return err
	}
	fmt.Fprint(os.Stdout, dict.Stats())

	if flagImageOut != "" {
		if err := store.Save(flagImageOut, s.BDD, dict.Node); err != nil {
			return &xword.Error{Kind: xword.IOError, Msg: fmt.Sprintf("writing dictionary image %s: %s", flagImageOut, err)}
		}
	}

	if flagDotFile != "" {
		if err := s.BDD.PrintDot(flagDotFile, dict.Node); err != nil {
			return &xword.Error{Kind: xword.IOError, Msg: fmt.Sprintf("writing dot file %s: %s", flagDotFile, err)}
		}
	}

	if flagPattern != "" {
		matches, err := dict.Matches(flagPattern)
		if err != nil {
			return err
		}
		for _, w := range matches {
			fmt.Fprintln(os.Stdout, w)
		}
	}

	if flagRawClues != "" {
		if err := solveCrossword(s, dict, flagRawClues, false); err != nil {
			return err
		}
	}
	if flagDiagram != "" {
		if err := solveCrossword(s, dict, flagDiagram, true); err != nil {
			return err
		}
	}

	return nil
}

func loadConfig() (*config.Config, error) {
	path := flagConfig
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return config.Defaults(), nil
		}
		path = home + "/.xword/config.yaml"
	}
	cfg, err := config.Load(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config.Defaults(), nil
		}
		return nil, &xword.Error{Kind: xword.IOError, Msg: fmt.Sprintf("loading config %s: %s", path, err)}
	}
	return cfg, nil
}

func loadDictionary(s *xword.Solver) (*xword.Dictionary, error) {
	if flagImageIn != "" {
		node, err := store.Load(flagImageIn, s.BDD)
		if err != nil {
			return nil, &xword.Error{Kind: xword.IOError, Msg: fmt.Sprintf("loading dictionary image %s: %s", flagImageIn, err)}
		}
		return xword.LoadedDictionary(s.BDD, node, s.MaxWordLen), nil
	}

	f, err := os.Open(flagWordFile)
	if err != nil {
		return nil, &xword.Error{Kind: xword.IOError, Msg: fmt.Sprintf("opening word file %s: %s", flagWordFile, err)}
	}
	defer f.Close()

	words, err := xword.ReadWords(f)
	if err != nil {
		return nil, err
	}
	return s.LoadDictionary(words)
}

func solveCrossword(s *xword.Solver, dict *xword.Dictionary, path string, diagram bool) error {
	f, err := os.Open(path)
	if err != nil {
		return &xword.Error{Kind: xword.IOError, Msg: fmt.Sprintf("opening crossword file %s: %s", path, err)}
	}
	defer f.Close()

	var cw *xword.Crossword
	if diagram {
		cw, err = xword.ParseDiagram(f, s.MaxWordLen)
	} else {
		cw, err = xword.ParseRawClues(f)
	}
	if err != nil {
		return err
	}

	encoded, err := s.EncodeCrossword(dict, cw)
	if err != nil {
		return err
	}
	if s.BDD.Satcount(encoded).Sign() == 0 {
		fmt.Fprintln(os.Stdout, "No solutions found")
		return nil
	}

	sols, err := s.Solutions(encoded, cw)
	if err != nil {
		return err
	}
	for _, sol := range sols {
		fmt.Fprintln(os.Stdout)
		fmt.Fprint(os.Stdout, sol.String())
	}
	return nil
}
