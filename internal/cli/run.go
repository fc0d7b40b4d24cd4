package cli

import (
	"github.com/spf13/cobra"
)

type RunOptions struct {
	MappingFile string
	Sources     map[string]string
	LogFile     string
	DryRun      bool
}

func NewRunCmd() *cobra.Command {
	opts := &RunOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the full reconciliation batch and reload the fact table",
		RunE: func(c *cobra.Command, args []string) error {
			return runPipeline(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.MappingFile, "mapping", "m", "configs/mapping.json", "Path to mapping file (JSON or YAML)")
	cmd.Flags().StringToStringVarP(&opts.Sources, "source", "s", nil, "Source extract as name=path (repeatable), e.g. -s amazon=amazon.csv")
	cmd.Flags().StringVar(&opts.LogFile, "log-file", "", "Also write the run log to this file")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Run the transform but skip the database load")
	cmd.MarkFlagRequired("source")

	return cmd
}
