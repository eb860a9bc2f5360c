package commands

import (
	"errors"

	"github.com/spf13/cobra"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Replace all data with the demo seed dataset",
	Long: `Replaces the persisted aggregate with the built-in demo dataset.
This cannot be undone, so it refuses to run without --yes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetYes {
			return errors.New("refusing to reset without --yes")
		}

		s, st, log, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()
		defer log.Sync()

		return s.Reset(cmd.Context())
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetYes, "yes", false, "Confirm the reset")
	rootCmd.AddCommand(resetCmd)
}
