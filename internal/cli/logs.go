package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/eulerpath/pkg/runlog"
)

// logsCommand creates the run-log management command.
func (c *CLI) logsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Manage run logs",
	}

	cmd.AddCommand(c.logsListCommand())
	cmd.AddCommand(c.logsClearCommand())
	cmd.AddCommand(c.logsPathCommand())

	return cmd
}

// logsListCommand creates the "logs list" subcommand.
func (c *CLI) logsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List run logs, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := c.runLogDir()
			if err != nil {
				return fmt.Errorf("get run log dir: %w", err)
			}
			entries, err := runlog.List(dir)
			if err != nil {
				return fmt.Errorf("list run logs: %w", err)
			}
			if len(entries) == 0 {
				printInfo("No run logs")
				return nil
			}
			fmt.Println(logsTable(entries).Render())
			printDetail("%d run logs in %s", len(entries), dir)
			return nil
		},
	}
}

func logsTable(entries []runlog.Entry) *table.Table {
	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{e.ID, e.ModTime.Format("2006-01-02 15:04:05"), formatSize(e.Size)}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Run", "Modified", "Size").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return lipgloss.NewStyle().Foreground(colorCyan).Padding(0, 1)
			}
			return lipgloss.NewStyle().Foreground(colorGray).Padding(0, 1)
		})
}

// logsClearCommand creates the "logs clear" subcommand.
func (c *CLI) logsClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all run logs",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := c.runLogDir()
			if err != nil {
				return fmt.Errorf("get run log dir: %w", err)
			}

			if _, err := os.Stat(dir); os.IsNotExist(err) {
				printInfo("No run logs")
				return nil
			}

			count, err := runlog.Clear(dir)
			if err != nil {
				return fmt.Errorf("clear run logs: %w", err)
			}
			printSuccess("Cleared %d run logs", count)
			return nil
		},
	}
}

// logsPathCommand creates the "logs path" subcommand.
func (c *CLI) logsPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show the run log directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := c.runLogDir()
			if err != nil {
				return fmt.Errorf("get run log dir: %w", err)
			}
			fmt.Println(dir)
			return nil
		},
	}
}

// formatSize renders a byte count as B, KB or MB.
func formatSize(n int64) string {
	switch {
	case n < 1024:
		return fmt.Sprintf("%d B", n)
	case n < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(n)/1024)
	}
	return fmt.Sprintf("%.1f MB", float64(n)/(1024*1024))
}
