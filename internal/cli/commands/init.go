package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/smartgen/internal/cli/output"
	intconfig "github.com/leapstack-labs/smartgen/internal/config"
)

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool
	var example bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new smartgen project",
		Long: `Initialize a new smartgen project with a configuration file and a
snapshots directory.

This creates:
  - smartgen.yaml configuration file
  - snapshots/ directory for declaration snapshots

Use --example to add snapshots covering enums, value objects and unions,
including one declaration that 'smartgen fix' repairs.`,
		Example: `  # Initialize in current directory
  smartgen init

  # Initialize with example snapshots
  smartgen init --example

  # Initialize in a new directory
  smartgen init my-project

  # Force overwrite existing config
  smartgen init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.ParseMode(getConfig().OutputFormat))

			template := "minimal"
			if example {
				template = "example"
			}
			return runInit(r, dir, template, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing configuration")
	cmd.Flags().BoolVar(&example, "example", false, "Create example snapshots for every type category")

	return cmd
}

func runInit(r *output.Renderer, dir, template string, force bool) error {
	if dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	configPath := filepath.Join(dir, intconfig.ConfigFileName)
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("%s already exists. Use --force to overwrite", intconfig.ConfigFileName)
	}

	if err := copyTemplate(template, dir, force); err != nil {
		return fmt.Errorf("failed to initialize project: %w", err)
	}

	files, _ := listTemplateFiles(template)
	r.Header(2, "Configuration")
	for _, f := range files {
		if !strings.HasPrefix(f, intconfig.DefaultSnapshotsDir+"/") {
			r.StatusLine(f, "success", "")
		}
	}
	r.Println("")
	r.Header(2, "Snapshots")
	for _, f := range files {
		if strings.HasPrefix(f, intconfig.DefaultSnapshotsDir+"/") {
			r.StatusLine(f, "success", "")
		}
	}

	r.Println("")
	r.Success("smartgen project initialized!")
	r.Println("")
	r.Println("Next steps:")
	r.Println("  1. Export declaration snapshots from your host into snapshots/")
	r.Println("  2. Run 'smartgen check' to validate them")
	r.Println("  3. Run 'smartgen fix' to apply mechanical fixes")
	r.Println("  4. Run 'smartgen generate' to see the companion members")

	return nil
}
