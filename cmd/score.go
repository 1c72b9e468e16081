package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/proforientation/internal/careertest"
	"github.com/spigell/proforientation/internal/logger"
	"github.com/spigell/proforientation/internal/sheet"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a completed answer sheet",
	Long: `Score reads 50 answers from --answers or from an answer sheet file (--file),
prints the selected direction with recommended professions and stores the result
when a user is known.`,
	Run: func(cmd *cobra.Command, _ []string) {
		l, config := setup()

		inline, _ := cmd.Flags().GetString("answers")
		file, _ := cmd.Flags().GetString("file")
		output, _ := cmd.Flags().GetString("output")
		save, _ := cmd.Flags().GetBool("save")
		withAdvice, _ := cmd.Flags().GetBool("advise")

		if err := validateOutput(output); err != nil {
			l.Fatal("bad output format", zap.Error(err))
		}

		user := config.User
		var answers careertest.Answers
		switch {
		case file != "":
			s, err := sheet.Load(file)
			if err != nil {
				l.Fatal("loading an answer sheet", zap.Error(err))
			}
			answers = s.AnswerSet()
			if user == "" {
				user = s.User
			}
		case strings.TrimSpace(inline) != "":
			parsed, err := sheet.Parse(inline)
			if err != nil {
				l.Fatal("parsing answers", zap.Error(err))
			}
			answers = careertest.Answers(parsed)
		default:
			l.Fatal("answers are required: use --answers or --file")
		}

		l = logger.WithUser(l, user)

		engine, err := newEngine(config, l)
		if err != nil {
			l.Fatal("creating a scoring engine", zap.Error(err))
		}

		report, err := engine.Report(answers)
		if err != nil {
			l.Fatal("scoring answers", zap.Error(err))
		}

		if save {
			if user == "" {
				l.Warn("result is not saved: user is unknown")
			} else if _, err := newStore(config, l).Save(user, report.Result); err != nil {
				l.Fatal("saving the result", zap.Error(err))
			}
		}

		aiConfig := *config.AI
		aiConfig.Enabled = aiConfig.Enabled || withAdvice
		advice := advise(cmd.Context(), &aiConfig, report, l)

		if err := present(cmd.OutOrStdout(), output, report.Result, report, advice); err != nil {
			l.Fatal("writing the result", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)

	scoreCmd.Flags().StringP("answers", "a", "", "answers 1-5 separated by commas or spaces, in question order")
	scoreCmd.Flags().StringP("file", "f", "", "answer sheet file (yaml, json or toml) with user and answers keys")
	scoreCmd.Flags().Bool("save", true, "store the result for the user")
	scoreCmd.Flags().Bool("advise", false, "ask the configured AI provider for personalised advice")
	scoreCmd.Flags().StringP("output", "o", outputText, "output format: text, json or encoded")
}
