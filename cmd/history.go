package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/proforientation/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show stored results",
	Long:  "History lists the latest result of every user, newest first. With --user only that user's result is shown.",
	Run: func(cmd *cobra.Command, _ []string) {
		l, config := setup()

		asJSON, _ := cmd.Flags().GetBool("as-json")
		s := newStore(config, l)

		var records []*store.Record
		if config.User != "" {
			record, err := s.Get(config.User)
			if errors.Is(err, store.ErrNotFound) {
				l.Info("no stored result", zap.String("user", config.User), zap.String("store", s.Path()))
				return
			}
			if err != nil {
				l.Fatal("reading the store", zap.Error(err))
			}
			records = append(records, record)
		} else {
			var err error
			if records, err = s.List(); err != nil {
				l.Fatal("reading the store", zap.Error(err))
			}
		}

		if err := writeHistory(cmd.OutOrStdout(), records, asJSON); err != nil {
			l.Fatal("writing history", zap.Error(err))
		}
	},
}

func writeHistory(w io.Writer, records []*store.Record, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	for _, r := range records {
		decoded := r.Decoded()
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", r.TakenAt.Local().Format(time.DateTime), r.User, decoded.Category); err != nil {
			return err
		}
	}

	return nil
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().Bool("as-json", false, "print stored records as json")
}
