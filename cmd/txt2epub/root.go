package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var flags globalFlags
	var opts convertFlags

	ctx := newCommandContext(&flags)

	rootCmd := &cobra.Command{
		Use:   "txt2epub <text.txt> [cover.jpg|cover.png]",
		Short: "Convert a plain-text novel into an ePub book",
		Long: `Convert a plain-text novel into an ePub book.

Lines containing markers such as 第一卷 or 第十二章 split the text into
volumes and chapters. The text file may be UTF-8 or GB18030 (see
[encoding] in the configuration). The cover image is optional.`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, ctx, &opts, args)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.config, "config", "c", "", "Configuration file path")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	pf.StringVar(&flags.logFormat, "log-format", "", "Log format (auto, console, json)")
	pf.StringSliceVar(&flags.encodings, "encoding", nil, "Candidate encodings in priority order (default from config)")
	pf.BoolVar(&flags.anchored, "anchored", false, "Only accept markers at line start followed by whitespace")

	f := rootCmd.Flags()
	f.StringVar(&opts.title, "title", "", "Book title (default: text file name)")
	f.StringSliceVar(&opts.authors, "author", nil, "Book author; repeat for several")
	f.StringVar(&opts.language, "lang", "", "BCP 47 language tag (default from config)")
	f.StringVar(&opts.identifier, "id", "", "Unique identifier (default: urn:uuid)")
	f.StringVarP(&opts.output, "output", "o", "", "Output path (default: next to the text file)")
	f.BoolVar(&opts.overwrite, "overwrite", false, "Replace an existing book (default from config)")

	rootCmd.AddCommand(newInspectCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
