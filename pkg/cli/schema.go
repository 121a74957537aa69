package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/TechXTT/blog/internal/models"
	"github.com/TechXTT/blog/pkg/orm"
)

// NewSchemaCmd builds the `schema` command, which prints the columns and
// SQL templates derived for each record type.
func NewSchemaCmd() *cobra.Command {
	var table string
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the derived SQL for each table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			found := false
			for _, s := range models.Schemas() {
				if table != "" && s.Table() != table {
					continue
				}
				found = true
				printSchema(cmd.OutOrStdout(), s)
			}
			if !found {
				return fmt.Errorf("unknown table %q", table)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&table, "table", "", "only print this table")
	return cmd
}

func printSchema(w io.Writer, s *orm.Schema) {
	fmt.Fprintf(w, "-- %s\n", s.Table())
	for _, name := range s.Attributes() {
		f := s.Field(name)
		pk := ""
		if f.IsPrimaryKey() {
			pk = " primary key"
		}
		fmt.Fprintf(w, "--   %s %s%s\n", f.Column(), f.ColumnType(), pk)
	}
	fmt.Fprintln(w, s.SelectSQL()+";")
	fmt.Fprintln(w, s.InsertSQL()+";")
	if s.UpdateSQL() != "" {
		fmt.Fprintln(w, s.UpdateSQL()+";")
	}
	fmt.Fprintln(w, s.DeleteSQL()+";")
	fmt.Fprintln(w)
}
