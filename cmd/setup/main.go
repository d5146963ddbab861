package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"setup-cli/internal/app"
	"setup-cli/internal/orchestrator"
	"setup-cli/pkg/models"
)

// Build-time variables injected via ldflags
var (
	version   = "dev"
	commit    = "unknown"
	date      = "unknown"
	goVersion = runtime.Version()
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	pathStyle    = lipgloss.NewStyle().Faint(true)
)

var rootCmd = &cobra.Command{
	Use:   "setup",
	Short: "Generate the application's runtime configuration files",
	Long: `Setup renders the application config, the test config and the client
environment variables file from their templates.

With APP_ENV=test the values come straight from defaultValues and testValues in
the values file. Otherwise each setting is asked for interactively, with the
value from defaultValues suggested as the default.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if versionFlag, _ := cmd.Flags().GetBool("version"); versionFlag {
			versionCmd.Run(cmd, args)
			return nil
		}

		request, err := buildRequestFromFlags(cmd)
		if err != nil {
			return fmt.Errorf("invalid arguments: %w", err)
		}

		written, err := app.Run(cmd.Context(), request)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("Setup complete."))
		for _, path := range written {
			fmt.Fprintln(cmd.OutOrStdout(), pathStyle.Render("  "+path))
		}
		return nil
	},
}

var previewCmd = &cobra.Command{
	Use:       "preview <primary|test|env>",
	Short:     "Render one output without writing it",
	Long:      "Render the primary config, test config or environment variables file with the values file and print it, or copy it with --clipboard. Nothing is written to disk.",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{orchestrator.TargetPrimary, orchestrator.TargetTest, orchestrator.TargetEnv},
	RunE: func(cmd *cobra.Command, args []string) error {
		request, err := buildRequestFromFlags(cmd)
		if err != nil {
			return fmt.Errorf("invalid arguments: %w", err)
		}

		toClipboard, _ := cmd.Flags().GetBool("clipboard")
		return app.Preview(request, args[0], toClipboard, cmd.OutOrStdout())
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("setup version %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built: %s\n", date)
		fmt.Printf("  go version: %s\n", goVersion)
		fmt.Printf("  platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().BoolP("clipboard", "b", false, "copy the rendered output to the clipboard")

	rootCmd.PersistentFlags().StringP("config", "c", "", "setup config file (TOML)")
	rootCmd.PersistentFlags().StringP("root", "r", "", "application root that relative paths resolve against (default \".\")")
	rootCmd.PersistentFlags().String("values", "", "values file holding defaultValues and testValues")
	rootCmd.PersistentFlags().Bool("verbose", false, "log each pipeline stage")
	rootCmd.Flags().BoolP("version", "v", false, "print version information")
}

// buildRequestFromFlags constructs a SetupRequest from command flags
func buildRequestFromFlags(cmd *cobra.Command) (*models.SetupRequest, error) {
	request := models.NewSetupRequest()

	var err error

	if request.ConfigPath, err = cmd.Flags().GetString("config"); err != nil {
		return nil, fmt.Errorf("invalid config flag: %w", err)
	}

	if request.Root, err = cmd.Flags().GetString("root"); err != nil {
		return nil, fmt.Errorf("invalid root flag: %w", err)
	}

	if request.ValuesFile, err = cmd.Flags().GetString("values"); err != nil {
		return nil, fmt.Errorf("invalid values flag: %w", err)
	}

	if request.Verbose, err = cmd.Flags().GetBool("verbose"); err != nil {
		return nil, fmt.Errorf("invalid verbose flag: %w", err)
	}

	return request, nil
}

func main() {
	// Disable usage on error to show only our custom error messages
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, failureStyle.Render("Setup failed."))
		fmt.Fprintf(os.Stderr, "Stage: %s\n", orchestrator.Stage(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
