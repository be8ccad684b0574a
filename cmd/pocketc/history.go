package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/urfave/cli.v1"

	"pocketc/pkg/history"
)

var historyCommand = cli.Command{
	Name:  "history",
	Usage: "Inspect recorded executions",
	Subcommands: []cli.Command{
		{
			Action: listHistory,
			Name:   "list",
			Usage:  "List recorded executions, newest first",
		},
		{
			Action:    showHistory,
			Name:      "show",
			Usage:     "Print one recorded execution in full",
			ArgsUsage: "<id>",
		},
		{
			Action:    deleteHistory,
			Name:      "delete",
			Usage:     "Remove one recorded execution",
			ArgsUsage: "<id>",
		},
		{
			Action: clearHistory,
			Name:   "clear",
			Usage:  "Remove all recorded executions",
		},
	},
}

func openStore(ctx *cli.Context) (*history.Store, error) {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return nil, err
	}
	store := history.NewStore(cfg.HistoryFile, cfg.HistoryLimit)
	if err := store.Load(); err != nil {
		return nil, err
	}
	return store, nil
}

func listHistory(ctx *cli.Context) error {
	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	entries := store.Entries()
	if len(entries) == 0 {
		fmt.Println("history is empty")
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Executed", "Result", "Source"})
	table.SetBorder(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, e := range entries {
		result := fmt.Sprintf("exit %d", e.ExitCode)
		if e.Error != "" {
			result = "error"
		}
		table.Append([]string{
			e.ID,
			e.ExecutedAt.Format("2006-01-02 15:04:05"),
			result,
			snippetPreview(e.Source),
		})
	}
	table.Render()
	return nil
}

// snippetPreview compresses source to a single short line for the table.
func snippetPreview(src string) string {
	fields := strings.Fields(src)
	preview := strings.Join(fields, " ")
	if len(preview) > 48 {
		preview = preview[:45] + "..."
	}
	return preview
}

func showHistory(ctx *cli.Context) error {
	id := ctx.Args().First()
	if id == "" {
		return fmt.Errorf("missing history entry id")
	}
	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	entry, ok := store.Get(id)
	if !ok {
		return fmt.Errorf("no history entry with id %q", id)
	}

	fmt.Printf("ID:       %s\n", entry.ID)
	fmt.Printf("Executed: %s\n", entry.ExecutedAt.Format("2006-01-02 15:04:05"))
	if entry.Error != "" {
		fmt.Printf("Error:    %s\n", entry.Error)
	} else {
		fmt.Printf("Exit:     %d\n", entry.ExitCode)
		fmt.Printf("Duration: %s\n", entry.Duration)
	}
	fmt.Printf("Source:\n%s\n", entry.Source)
	if entry.Output != "" {
		fmt.Printf("Output:\n%s", entry.Output)
		if !strings.HasSuffix(entry.Output, "\n") {
			fmt.Println()
		}
	}
	for _, w := range entry.Warnings {
		warnColor.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	return nil
}

func deleteHistory(ctx *cli.Context) error {
	id := ctx.Args().First()
	if id == "" {
		return fmt.Errorf("missing history entry id")
	}
	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	removed, err := store.Delete(id)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("no history entry with id %q", id)
	}
	fmt.Printf("removed entry %s\n", id)
	return nil
}

func clearHistory(ctx *cli.Context) error {
	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	if err := store.Clear(); err != nil {
		return err
	}
	fmt.Println("history cleared")
	return nil
}
