package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/fertitrack/fertitrack_backend/cmd/http"
	systemcmd "github.com/fertitrack/fertitrack_backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "fertitrack",
	Short: "FertiTrack fertility clinic record management backend.",
	Long: `FertiTrack is the clinical record management backend of a fertility clinic.
It tracks patients, treatments and the laboratory lifecycle of oocytes and
embryos from retrieval through transfer.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
