package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/proforientation/internal/careertest"
	"github.com/spigell/proforientation/internal/logger"
	"github.com/spigell/proforientation/internal/quiz"
	"github.com/spigell/proforientation/internal/sheet"
)

const (
	PromptBack   = "Назад"
	PromptRetake = "Пройти тест заново"
	PromptFinish = "Завершить"
)

var errExit = errors.New("exit requested")

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Take the career orientation test interactively",
	Run: func(cmd *cobra.Command, _ []string) {
		l, config := setup()

		if config.User == "" {
			user, err := (&promptui.Prompt{Label: "Как тебя зовут"}).Run()
			if err != nil {
				l.Fatal("exiting", zap.Error(err))
			}
			config.User = strings.TrimSpace(user)
		}
		l = logger.WithUser(l, config.User)

		engine, err := newEngine(config, l)
		if err != nil {
			l.Fatal("creating a scoring engine", zap.Error(err))
		}

		var partial []int
		if inline, _ := cmd.Flags().GetString("resume"); strings.TrimSpace(inline) != "" {
			if partial, err = sheet.Parse(inline); err != nil {
				l.Fatal("parsing answers to resume", zap.Error(err))
			}
		}

		session, err := quiz.Resume(engine, l, partial)
		if err != nil {
			l.Fatal("resuming the test", zap.Error(err))
		}
		results := newStore(config, l)

		var previous *careertest.TestResult
		for {
			if err := ask(session); err != nil {
				if errors.Is(err, errExit) {
					answered, _ := session.Progress()
					l.Info("exiting",
						zap.String("reason", "interrupted"),
						zap.String("resume", resumeString(session.Answers()[:answered])),
					)
					return
				}
				l.Fatal("exiting", zap.Error(err))
			}

			report, err := session.Finalize()
			if err != nil {
				l.Fatal("finalizing the test", zap.Error(err))
			}
			if previous != nil && previous.Category != report.Result.Category {
				l.Info("result changed on retake",
					zap.String("previous", string(previous.Category)),
					zap.Int("attempt", session.Attempt()),
				)
			}

			if config.User != "" {
				if _, err := results.Save(config.User, report.Result); err != nil {
					l.Fatal("saving the result", zap.Error(err))
				}
			}

			advice := advise(cmd.Context(), config.AI, report, l)
			if err := present(cmd.OutOrStdout(), outputText, report.Result, report, advice); err != nil {
				l.Fatal("writing the result", zap.Error(err))
			}

			_, action, err := (&promptui.Select{
				Label: "Что дальше?",
				Items: []string{PromptFinish, PromptRetake},
			}).Run()
			if err != nil || action == PromptFinish {
				return
			}

			previous, _ = session.Result()
			session.Retake()
		}
	},
}

func init() {
	rootCmd.AddCommand(quizCmd)

	quizCmd.Flags().String("resume", "", "answers to continue from, as printed when a previous run was interrupted")
}

func resumeString(answers []int) string {
	parts := make([]string, len(answers))
	for i, v := range answers {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

// ask walks the session through every question. Choosing back clears the
// previous answer.
func ask(session *quiz.Session) error {
	for {
		question, ok := session.Current()
		if !ok {
			return nil
		}

		answered, total := session.Progress()
		items := make([]string, 0, len(careertest.LikertOptions)+1)
		items = append(items, careertest.LikertOptions[:]...)
		if answered > 0 {
			items = append(items, PromptBack)
		}

		prompt := promptui.Select{
			Label: fmt.Sprintf("[%d/%d] %s", answered+1, total, question.Text),
			Items: items,
			Size:  len(items),
		}

		idx, choice, err := prompt.Run()
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				return errExit
			}
			return err
		}

		if choice == PromptBack {
			if err := session.Back(); err != nil {
				return err
			}
			continue
		}

		if err := session.Answer(idx + careertest.MinAnswer); err != nil {
			return err
		}
	}
}
