package commands

import (
	"encoding/json"
	"os"

	"dhanbad/wellness-admin/internal/seed"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Print the demo seed dataset as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(seed.Data())
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
