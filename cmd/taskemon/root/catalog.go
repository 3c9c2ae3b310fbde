package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rakhmonovquvonchbek/taskemon/internal/catalog"
)

func newCatalogCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Validate and print the active quest and achievement catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				cfg, err := loadConfig(cmd)
				if err != nil {
					return err
				}
				file = cfg.Progression.CatalogPath
			}

			cat := catalog.Default()
			if file != "" {
				c, err := catalog.Load(file)
				if err != nil {
					return err
				}
				cat = c
			}

			b, err := cat.Encode()
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), string(b))
			return err
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "catalog file (defaults to progression.catalog_path, then the built-in catalog)")
	return cmd
}
