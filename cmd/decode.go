package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/proforientation/internal/careertest"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <stored result>",
	Short: "Decode a stored result string and show recommended professions",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		l, _ := setup()

		output, _ := cmd.Flags().GetString("output")
		if err := validateOutput(output); err != nil {
			l.Fatal("bad output format", zap.Error(err))
		}

		result := careertest.Decode(args[0])
		if !result.Category.Known() {
			l.Warn("unknown category", zap.String("category", string(result.Category)))
		}

		if err := present(cmd.OutOrStdout(), output, result, nil, nil); err != nil {
			l.Fatal("writing the result", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)

	decodeCmd.Flags().StringP("output", "o", outputText, "output format: text, json or encoded")
}
