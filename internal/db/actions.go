package db

import (
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	dbpkg "github.com/dtnitsch/item-labeler/pkg/db"
)

func RunsAction(c *cli.Context) error {
	database, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer database.Close()

	runs, err := database.ListRuns(c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Println("No runs found")
		return nil
	}

	fmt.Printf("%-6s %-20s %-8s %-8s %-8s %-30s\n",
		"ID", "Created", "Sources", "Items", "Errors", "Root")
	fmt.Println(strings.Repeat("-", 90))

	for _, r := range runs {
		fmt.Printf("%-6d %-20s %-8d %-8d %-8d %-30s\n",
			r.RunID,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			r.SourceCount,
			r.ItemCount,
			r.ErrorCount,
			r.RootDir,
		)
	}

	fmt.Printf("\nTotal: %d runs\n", len(runs))
	fmt.Printf("\nTip: Use 'labeler label <source//item>' to look up a stored label\n")

	return nil
}

// LabelAction prints the latest stored label of each item name argument.
func LabelAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("usage: labeler label <source//item> [...]")
	}

	database, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer database.Close()

	var missing []string
	for _, itemName := range c.Args().Slice() {
		l, err := database.GetItemLabel(itemName)
		if errors.Is(err, dbpkg.ErrNotFound) {
			missing = append(missing, itemName)
			continue
		}
		if err != nil {
			return err
		}

		title := l.PageTitle.String
		if !l.PageTitle.Valid {
			title = "(none)"
		}
		fmt.Printf("%s\n", l.ItemName)
		fmt.Printf("    Run:        %d\n", l.RunID)
		fmt.Printf("    Label:      %s\n", l.Label)
		fmt.Printf("    Page title: %s\n", title)
	}

	if len(missing) > 0 {
		return fmt.Errorf("no stored label for: %s", strings.Join(missing, ", "))
	}
	return nil
}
