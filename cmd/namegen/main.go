// Command namegen prints the physical names a naming strategy derives.
//
//	namegen table CustomerOrder models.Invoice
//	namegen --strategy standard column orderNo
//	namegen --strategy standard fk customer Customer t_customer id
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/Reactman/wakanda/global"
	"github.com/Reactman/wakanda/naming"

	"github.com/spf13/cobra"
	"gorm.io/gorm/schema"
)

type foreignKeyNamer interface {
	ForeignKeyColumnName(propertyName, propertyEntityName, propertyTableName, referencedColumnName string) (string, error)
}

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	var strategy, pattern string

	namer := func() (schema.Namer, error) { return naming.New(strategy, pattern) }

	root := &cobra.Command{
		Use:           "namegen",
		Short:         "Print table and column names derived by a naming strategy",
		Version:       global.AppVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&strategy, "strategy", "s", naming.Implicit, "naming strategy (implicit|standard)")
	root.PersistentFlags().StringVarP(&pattern, "pattern", "p", global.DefaultTablePattern, "table pattern for the implicit strategy")
	_ = root.RegisterFlagCompletionFunc("strategy", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{naming.Implicit, naming.Standard}, cobra.ShellCompDirectiveNoFileComp
	})

	root.AddCommand(&cobra.Command{
		Use:   "table <Entity>...",
		Short: "Table name for each entity name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := namer()
			if err != nil {
				return err
			}
			for _, a := range args {
				name, err := tableName(n, a)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", a, name)
			}
			return nil
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "column <field>...",
		Short: "Column name for each field name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := namer()
			if err != nil {
				return err
			}
			for _, a := range args {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", a, n.ColumnName("", a))
			}
			return nil
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "fk <property> <entity> <table> <referenced-column>",
		Short: "Foreign key column name (standard strategy)",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := namer()
			if err != nil {
				return err
			}
			fk, ok := n.(foreignKeyNamer)
			if !ok {
				return fmt.Errorf("strategy %q does not derive foreign key columns", strategy)
			}
			name, err := fk.ForeignKeyColumnName(args[0], args[1], args[2], args[3])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), name)
			return nil
		},
	})

	return root
}

// tableName turns the strategy's panic on unresolvable names back into an error.
func tableName(n schema.Namer, entity string) (name string, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			err = errors.New(fmt.Sprint(r))
		}
	}()
	return n.TableName(entity), nil
}
