package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the levels of the pack",
	Long:  `Shows every level of the configured pack with its size and crate count.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	pack, err := loadPack(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if pack.Len() == 0 {
		fmt.Fprintln(out, "No levels found.")
		return nil
	}

	fmt.Fprintf(out, "%s (%d levels):\n\n", pack.Name, pack.Len())

	maxIDLen := 2 // "ID" header
	for _, lvl := range pack.Levels {
		maxIDLen = max(maxIDLen, len(lvl.ID))
	}

	fmt.Fprintf(out, "  %3s  %-*s  %-7s  %6s  %7s  %s\n", "#", maxIDLen, "ID", "Size", "Crates", "Storage", "Name")
	fmt.Fprintf(out, "  %3s  %-*s  %-7s  %6s  %7s  %s\n", "--", maxIDLen, "--", "----", "------", "-------", "----")
	for _, lvl := range pack.Levels {
		h, w := lvl.Size()
		fmt.Fprintf(out, "  %3d  %-*s  %-7s  %6d  %7d  %s\n",
			lvl.Index, maxIDLen, lvl.ID, fmt.Sprintf("%dx%d", w, h),
			lvl.Data.Crates, len(lvl.Data.Storage), lvl.Name)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'sokoban play <id>' to play a level.")
	return nil
}
