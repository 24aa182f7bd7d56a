package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/sentencegolf/internal/adapter/census"
	"github.com/heartmarshall/sentencegolf/internal/config"
	"github.com/heartmarshall/sentencegolf/internal/corpus"
	"github.com/heartmarshall/sentencegolf/internal/domain"
	"github.com/heartmarshall/sentencegolf/internal/scorer"
	"github.com/heartmarshall/sentencegolf/internal/service/scoring"
)

const promptText = "What word do you want to score? "

type cliOptions struct {
	corpusDir   string
	verbose     bool
	penalty     int
	properNouns []string
	detailed    bool
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	root := &cobra.Command{
		Use:           "golf",
		Short:         "Score words and sentences by rarity",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.corpusDir, "corpus-dir", "./static", "directory holding the census files")
	root.PersistentFlags().IntVar(&opts.penalty, "penalty", scorer.DefaultNotFoundPenalty, "base score for words missing from the corpus")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log corpus loading")

	wordCmd := &cobra.Command{
		Use:   "word <word>",
		Short: "Score a single word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService(cmd.Context(), opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return scoreWord(cmd.Context(), svc, opts, cmd.OutOrStdout(), args[0])
		},
	}

	scoreCmd := &cobra.Command{
		Use:   "score <text...>",
		Short: "Score a sentence",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService(cmd.Context(), opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return scoreText(cmd.Context(), svc, opts, cmd.OutOrStdout(), strings.Join(args, " "))
		},
	}
	scoreCmd.Flags().StringSliceVarP(&opts.properNouns, "proper-noun", "p", nil, "word to exclude from scoring (repeatable)")
	scoreCmd.Flags().BoolVarP(&opts.detailed, "detailed", "d", false, "print the score of every word")

	promptCmd := &cobra.Command{
		Use:   "prompt",
		Short: "Interactively score words read from stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := loadService(cmd.Context(), opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return prompt(cmd.Context(), svc, opts, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	root.AddCommand(wordCmd, scoreCmd, promptCmd)
	return root
}

// loadService loads the census from opts.corpusDir and returns a scoring
// service without a proper-noun registry.
func loadService(ctx context.Context, opts *cliOptions, logOut io.Writer) (*scoring.Service, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level}))

	if _, err := os.Stat(opts.corpusDir); err != nil {
		return nil, fmt.Errorf("corpus dir: %w", err)
	}

	store := corpus.NewStore()
	if err := store.Load(ctx, census.NewFileProvider(opts.corpusDir, census.Files{}, logger)); err != nil {
		return nil, err
	}

	cfg := config.ScoringConfig{
		NotFoundPenalty: opts.penalty,
		MaxTextLength:   1 << 20,
		MaxProperNouns:  1000,
	}
	return scoring.NewService(logger, store, nil, cfg), nil
}

func scoreWord(ctx context.Context, svc *scoring.Service, opts *cliOptions, out io.Writer, word string) error {
	word = strings.TrimSpace(word)
	score, err := svc.ScoreWord(ctx, scoring.ScoreWordInput{Word: word, NotFoundPenalty: &opts.penalty})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "Score for %s: %d\n", word, score)
	return err
}

func scoreText(ctx context.Context, svc *scoring.Service, opts *cliOptions, out io.Writer, text string) error {
	resultType := domain.ResultTypeSimple
	if opts.detailed {
		resultType = domain.ResultTypeDetailed
	}

	res, err := svc.ScoreText(ctx, scoring.ScoreTextInput{
		Text:            text,
		ProperNouns:     opts.properNouns,
		ResultType:      resultType,
		NotFoundPenalty: &opts.penalty,
	})
	if err != nil {
		return err
	}

	for _, ws := range res.WordScores {
		marker := ""
		if ws.Status == domain.WordStatusNotFound {
			marker = " (not found)"
		}
		if _, err := fmt.Fprintf(out, "%-20s %4d%s\n", ws.Word, ws.Score, marker); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(out, "Total: %d\n", res.TotalScore)
	return err
}

// prompt asks for a word per line until EOF. Blank lines are ignored.
func prompt(ctx context.Context, svc *scoring.Service, opts *cliOptions, in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)
	for {
		if _, err := io.WriteString(out, promptText); err != nil {
			return err
		}
		if !sc.Scan() {
			_, _ = io.WriteString(out, "\n")
			return sc.Err()
		}
		word := strings.TrimSpace(sc.Text())
		if word == "" {
			continue
		}
		if err := scoreWord(ctx, svc, opts, out, word); err != nil {
			fmt.Fprintln(out, "error:", err)
		}
	}
}
