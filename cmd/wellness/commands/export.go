package commands

import (
	"fmt"
	"os"

	"dhanbad/wellness-admin/internal/export"

	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:       "export {clients|appointments}",
	Short:     "Export a CSV projection of the current data",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"clients", "appointments"},
	RunE: func(cmd *cobra.Command, args []string) error {
		s, st, log, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()
		defer log.Sync()

		data := s.Snapshot()
		var csv []byte
		switch args[0] {
		case "clients":
			csv = export.WriteCSV(export.ClientRegistry(data))
		case "appointments":
			csv = export.WriteCSV(export.Appointments(data))
		default:
			return fmt.Errorf("unknown export %q", args[0])
		}

		if exportOutput == "" {
			_, err = os.Stdout.Write(csv)
			return err
		}
		return os.WriteFile(exportOutput, csv, 0o644)
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}
