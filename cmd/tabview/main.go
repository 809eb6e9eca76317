// SPDX-License-Identifier: MIT

// Command tabview lists, slices and transforms a YAML dataset through the
// tabview views.
//
//	tabview --data auto.yaml list price make --rows 0:5
//	tabview --data auto.yaml matrix A --cols 1: --format %6.2f
//	tabview --data auto.yaml apply ln price --into lnprice
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func addCommands(root *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "list [column ...]",
		Short: "List columns of the dataset",
		Args:  cobra.ArbitraryArgs,
		RunE:  listTable}
	cmd.Flags().String("rows", "", "row specifier, e.g. 0:5, -1 or 1,3,5")
	cmd.Flags().String("select", "", "keep rows where this numeric column is non-zero")
	cmd.Flags().Bool("complete", false, "keep rows without missing values")
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "matrix name",
		Short: "List a matrix",
		Args:  cobra.ExactArgs(1),
		RunE:  listMatrix}
	cmd.Flags().String("rows", "", "row specifier")
	cmd.Flags().String("cols", "", "column specifier")
	cmd.Flags().String("format", "", "numeric display format for this listing")
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "apply function column",
		Short: "Apply a numeric function to a column",
		Args:  cobra.ExactArgs(2),
		RunE:  applyFunction}
	cmd.Flags().String("into", "", "store the result in this column, creating it if needed")
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "describe",
		Short: "Show columns and matrices of the dataset",
		Args:  cobra.NoArgs,
		RunE:  describe}
	root.AddCommand(cmd)
}

func newRoot() *cobra.Command {
	root := &cobra.Command{
		Use:           "tabview",
		Short:         "Browse a tabular dataset through live views",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("data", "", "dataset file (YAML)")
	root.PersistentFlags().String("config", "", "config file (YAML)")
	root.PersistentFlags().String("log-level", "", "override the configured log level")
	root.PersistentFlags().Bool("smcl", false, "keep {txt}/{res} markup in the output")
	_ = root.MarkPersistentFlagRequired("data")
	addCommands(root)

	return root
}

func main() {
	root := newRoot()
	if err := root.Execute(); err != nil {
		fatal(root.ErrOrStderr(), "%s", err)
		os.Exit(1)
	}
}
