package main

import (
	"fmt"
	"sort"

	"academiclint/internal/domains"

	"github.com/spf13/cobra"
)

var domainsCmd = &cobra.Command{
	Use:   "domains [name]",
	Short: "List built-in domain vocabularies",
	Long: `List the built-in domain vocabularies. With a name argument, print
the domain's full term list, including terms inherited from its parent.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDomains,
}

func init() {
	rootCmd.AddCommand(domainsCmd)
}

func runDomains(cmd *cobra.Command, args []string) error {
	mgr := domains.NewManager()

	if len(args) == 1 {
		name := args[0]
		d, err := mgr.Get(name)
		if err != nil {
			return err
		}
		terms, err := mgr.GetTerms(name)
		if err != nil {
			return err
		}

		fmt.Printf("%s: %s\n", d.Name, d.Description)
		if d.Parent != "" {
			fmt.Printf("parent: %s\n", d.Parent)
		}
		fmt.Printf("terms (%d):\n", len(terms))
		for _, t := range terms {
			fmt.Printf("  %s\n", t)
		}
		return nil
	}

	names := domains.BuiltinNames()
	sort.Strings(names)
	for _, name := range names {
		d, err := mgr.Get(name)
		if err != nil {
			return err
		}
		fmt.Printf("%-20s %s\n", name, d.Description)
	}
	return nil
}
