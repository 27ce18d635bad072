package main

import (
	"github.com/spf13/cobra"

	"github.com/Rontor3/mcp-course/internal/changes"
	"github.com/Rontor3/mcp-course/internal/config"
)

func newAnalyzeCommand() *cobra.Command {
	var base, dir string
	var noDiff bool

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Print the change report for base...HEAD",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := newServices().Analyzer.Analyze(cmd.Context(), changes.Request{
				BaseBranch:       base,
				IncludeDiff:      !noDiff,
				MaxDiffLines:     config.MaxDiffLines(),
				WorkingDirectory: dir,
			})
			if err != nil {
				return err
			}
			return outputJSON(report)
		},
	}

	cmd.Flags().StringVar(&base, "base", "main", "Base branch to compare against")
	cmd.Flags().StringVar(&dir, "dir", "", "Repository directory (default: current directory)")
	cmd.Flags().BoolVar(&noDiff, "no-diff", false, "Omit the unified diff")
	return cmd
}

func newCommitsCommand() *cobra.Command {
	var base, dir string

	cmd := &cobra.Command{
		Use:   "commits",
		Short: "Classify commit subjects in base..HEAD",
		RunE: func(cmd *cobra.Command, args []string) error {
			analysis, err := newServices().Analyzer.AnalyzeCommits(cmd.Context(), base, dir)
			if err != nil {
				return err
			}
			return outputJSON(analysis)
		},
	}

	cmd.Flags().StringVar(&base, "base", "main", "Base branch to compare against")
	cmd.Flags().StringVar(&dir, "dir", "", "Repository directory (default: current directory)")
	return cmd
}
