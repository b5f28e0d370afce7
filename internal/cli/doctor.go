package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/promptkit-dev/promptkit/internal/catalog"
	"github.com/promptkit-dev/promptkit/internal/config"
	"github.com/promptkit-dev/promptkit/internal/detect"
	"github.com/spf13/cobra"
)

var (
	checkRuntime bool
	checkLayout  bool
	checkIndex   string
)

// errDoctor signals a failed check whose detail has already been printed,
// so the top-level error stays terse instead of repeating it.
var errDoctor = errors.New("doctor found problems")

func init() {
	doctorCmd.Flags().BoolVar(&checkRuntime, "check-runtime", false, "Verify external tools on PATH")
	doctorCmd.Flags().BoolVar(&checkLayout, "check-layout", false, "Verify the target directory layout")
	doctorCmd.Flags().StringVar(&checkIndex, "check-index", "", "Validate a catalog index file at the given path")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the PromptKit installation",
	Long:  `Run diagnostic checks on the install target, catalog cache, and environment.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		anyFlag := checkRuntime || checkLayout || checkIndex != ""

		// If no specific flag, run all checks.
		if !anyFlag {
			runRuntimeCheck(cmd)
			runLayoutCheck(cmd)
			runCacheCheck(cmd)
			return nil
		}

		if checkRuntime {
			runRuntimeCheck(cmd)
		}
		if checkLayout {
			runLayoutCheck(cmd)
		}
		if checkIndex != "" {
			if err := runIndexCheck(cmd, checkIndex); err != nil {
				return err
			}
		}
		return nil
	},
}

func runRuntimeCheck(cmd *cobra.Command) {
	detect.Print(cmd.OutOrStdout(), detect.Check(detect.Known()))
}

func runLayoutCheck(cmd *cobra.Command) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Layout check:")

	layout, err := resolveLayout()
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] cannot resolve target root: %v\n", err)
		return
	}

	for _, dir := range []string{layout.Agents, layout.Commands, layout.Themes} {
		info, err := os.Stat(dir)
		switch {
		case os.IsNotExist(err):
			fmt.Fprintf(out, "  [INFO] %s does not exist yet (created on first install)\n", dir)
		case err != nil:
			fmt.Fprintf(out, "  [FAIL] %s: %v\n", dir, err)
		case !info.IsDir():
			fmt.Fprintf(out, "  [FAIL] %s exists but is not a directory\n", dir)
		default:
			fmt.Fprintf(out, "  [ OK ] %s\n", dir)
		}
	}
}

func runCacheCheck(cmd *cobra.Command) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Catalog cache check:")

	path := catalog.CachedIndexPath(config.Dir())
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Fprintln(out, "  [INFO] no cached index, using built-in catalog")
		return
	}

	if _, err := catalog.LoadCached(config.Dir()); err != nil {
		fmt.Fprintf(out, "  [FAIL] cached index is invalid: %v\n", err)
		return
	}
	fmt.Fprintf(out, "  [ OK ] %s is valid\n", path)
}

func runIndexCheck(cmd *cobra.Command, path string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Catalog index validation: %s\n", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading index: %w", err)
	}

	result, err := catalog.Validate(data)
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] %v\n", err)
		return errDoctor
	}

	if result.Valid {
		fmt.Fprintln(out, "  [ OK ] Valid catalog index")
		return nil
	}

	fmt.Fprintf(out, "  [FAIL] %d validation issue(s):\n", len(result.Issues))
	for _, issue := range result.Issues {
		if issue.Path != "" {
			fmt.Fprintf(out, "    - %s: %s\n", issue.Path, issue.Message)
		} else {
			fmt.Fprintf(out, "    - %s\n", issue.Message)
		}
	}
	return errDoctor
}
