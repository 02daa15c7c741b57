package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/abhisek/wordiz/internal/i18n"
)

var unitsCmd = &cobra.Command{
	Use:   "units",
	Short: "List the available vocabulary units",
	RunE:  runUnits,
}

func runUnits(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	lib := newLibrary(cfg)
	lang := i18n.Code(i18n.Resolve(cfg.Lang))

	names, err := lib.Units()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, name := range names {
		u, err := lib.Load(name, lang)
		if err != nil {
			fmt.Fprintf(w, "%s\t-\t%v\n", name, err)
			continue
		}
		fmt.Fprintf(w, "%s\t%d\t%s\n", name, len(u.Items), u.Title)
	}
	return w.Flush()
}
