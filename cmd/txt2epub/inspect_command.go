package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/simp-lee/txt2epub"
	"github.com/simp-lee/txt2epub/internal/logging"
)

func newInspectCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <text.txt>",
		Short: "Show how a text file splits into volumes and chapters",
		Long: `Show how a text file splits into volumes and chapters without
writing a book. Each unit is listed with its slot name and paragraph count,
followed by the detected encoding and any segmentation warnings.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			logger = logging.NewComponentLogger(logger, "inspect")

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read text: %w", err)
			}
			doc, err := txt2epub.Convert(data, ctx.convertOptions(logger))
			if err != nil {
				return fmt.Errorf("convert %s: %w", args[0], err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderUnits(doc))
			fmt.Fprintf(out, "Encoding: %s\n", doc.Encoding())

			var volumes, chapters int
			for _, u := range doc.Units() {
				if u.Kind == txt2epub.KindVolume {
					volumes++
				} else {
					chapters++
				}
			}
			fmt.Fprintf(out, "Units: %d (%d volumes, %d chapters)\n", doc.Len(), volumes, chapters)

			if warnings := doc.Warnings(); len(warnings) > 0 {
				fmt.Fprintf(out, "Warnings (%d):\n", len(warnings))
				for _, w := range warnings {
					fmt.Fprintf(out, "  - %s\n", w)
				}
			}
			return nil
		},
	}
}

func renderUnits(doc *txt2epub.Document) string {
	units := doc.Units()
	rows := make([][]string, 0, len(units))
	for _, u := range units {
		rows = append(rows, []string{
			strconv.Itoa(u.Sequence),
			u.Kind.String(),
			u.Slot,
			u.Title,
			strconv.Itoa(len(u.BodyLines)),
		})
	}
	return renderTable(
		[]string{"#", "Kind", "Slot", "Title", "Paragraphs"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignRight},
	)
}
