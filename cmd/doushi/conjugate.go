package main

import (
	"fmt"

	"github.com/benkyo/doushi-api/internal/domain"
	"github.com/benkyo/doushi-api/internal/domain/conjugation"
	"github.com/spf13/cobra"
)

var conjugateClass string

var conjugateCmd = &cobra.Command{
	Use:   "conjugate <kana-reading>",
	Short: "Derive all conjugated forms of a verb",
	Long: `Derives the full conjugation set for a verb from its kana reading,
without touching the database. The verb class defaults to ichidan.

Examples:
  doushi conjugate たべる
  doushi conjugate --class godan かく
  doushi conjugate --class irregular べんきょうする`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		class := domain.VerbClass(conjugateClass)
		switch class {
		case domain.ClassIchidan, domain.ClassGodan, domain.ClassIrregular:
		default:
			return fmt.Errorf("unknown verb class %q (expected ichidan, godan or irregular)", conjugateClass)
		}

		forms, err := conjugation.Conjugate(args[0], class)
		if err != nil {
			return err
		}

		for _, form := range forms {
			cmd.Printf("%-22s %s\n", form.Key, form.Surface)
		}
		return nil
	},
}

func init() {
	conjugateCmd.Flags().StringVar(&conjugateClass, "class", string(domain.ClassIchidan),
		"verb class: ichidan, godan or irregular")
}
