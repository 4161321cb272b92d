package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"github.com/simp-lee/txt2epub"
	"github.com/simp-lee/txt2epub/internal/logging"
)

const textExtension = ".txt"

// convertFlags holds the flags of the root conversion command.
type convertFlags struct {
	title      string
	authors    []string
	language   string
	identifier string
	output     string
	overwrite  bool
}

// convertRequest describes one text-to-book conversion.
type convertRequest struct {
	TextPath  string
	CoverPath string
	Output    string
	Overwrite bool
	Metadata  txt2epub.Metadata
	Options   txt2epub.Options
}

// convertResult summarises a written book.
type convertResult struct {
	Output   string
	Encoding string
	Units    int
	Warnings []string
}

func runConvert(cmd *cobra.Command, ctx *commandContext, opts *convertFlags, args []string) error {
	textPath, coverPath, err := classifyArgs(args)
	if err != nil {
		return err
	}

	logger, err := ctx.logger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	logger = logging.NewComponentLogger(logger, "convert")

	cfg := ctx.config
	req := convertRequest{
		TextPath:  textPath,
		CoverPath: coverPath,
		Output:    strings.TrimSpace(opts.output),
		Overwrite: cfg.Output.Overwrite,
		Options:   ctx.convertOptions(logger),
		Metadata: txt2epub.Metadata{
			Title:      opts.title,
			Authors:    opts.authors,
			Language:   opts.language,
			Identifier: opts.identifier,
			Publisher:  cfg.Book.Publisher,
		},
	}
	if cmd.Flags().Changed("overwrite") {
		req.Overwrite = opts.overwrite
	}
	if req.Metadata.Title == "" {
		req.Metadata.Title = txt2epub.TitleFromPath(textPath)
	}
	if len(req.Metadata.Authors) == 0 {
		req.Metadata.Authors = cfg.Authors()
	}
	if req.Metadata.Language == "" {
		req.Metadata.Language = cfg.Book.Language
	}

	res, err := convertFile(cmd.Context(), req)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d units)\n", res.Output, res.Units)
	return nil
}

// classifyArgs sorts positional arguments into the text file and the
// optional cover image by extension, in either order.
func classifyArgs(args []string) (textPath, coverPath string, err error) {
	for _, arg := range args {
		ext := strings.ToLower(filepath.Ext(arg))
		switch {
		case ext == textExtension:
			if textPath != "" {
				return "", "", fmt.Errorf("more than one text file given: %s, %s", textPath, arg)
			}
			textPath = arg
		case txt2epub.SupportedCoverExtension(ext):
			if coverPath != "" {
				return "", "", fmt.Errorf("more than one cover image given: %s, %s", coverPath, arg)
			}
			coverPath = arg
		default:
			return "", "", fmt.Errorf("unsupported file %s: want a .txt text file and an optional .jpg, .jpeg or .png cover", arg)
		}
	}
	if textPath == "" {
		return "", "", errors.New("no .txt text file given")
	}
	return textPath, coverPath, nil
}

// convertFile reads the text and optional cover, builds the Document and
// writes the book. The output path is locked through <output>.lock for the
// duration of the write so concurrent runs never produce the same book at
// once.
func convertFile(ctx context.Context, req convertRequest) (convertResult, error) {
	logger := req.Options.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	data, err := os.ReadFile(req.TextPath)
	if err != nil {
		return convertResult{}, fmt.Errorf("read text: %w", err)
	}

	var cover *txt2epub.Cover
	if req.CoverPath != "" {
		img, err := os.ReadFile(req.CoverPath)
		if err != nil {
			return convertResult{}, fmt.Errorf("read cover: %w", err)
		}
		cover = &txt2epub.Cover{Data: img, Ext: filepath.Ext(req.CoverPath)}
	}

	if err := ctx.Err(); err != nil {
		return convertResult{}, err
	}

	doc, err := txt2epub.Convert(data, req.Options)
	if err != nil {
		return convertResult{}, fmt.Errorf("convert %s: %w", req.TextPath, err)
	}

	if err := ctx.Err(); err != nil {
		return convertResult{}, err
	}

	out := req.Output
	if out == "" {
		out = txt2epub.OutputPath(req.TextPath)
	}

	lock := flock.New(out + ".lock")
	ok, err := lock.TryLock()
	if err != nil {
		return convertResult{}, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return convertResult{}, fmt.Errorf("another txt2epub run is writing %s", out)
	}
	// The lock file is never removed so every run locks the same inode.
	defer func() {
		if err := lock.Unlock(); err != nil {
			logger.Warn("failed to release output lock", slog.String("lock", lock.Path()), slog.Any("error", err))
		}
	}()

	if !req.Overwrite {
		if _, err := os.Stat(out); err == nil {
			return convertResult{}, fmt.Errorf("%s already exists (use --overwrite to replace it)", out)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return convertResult{}, fmt.Errorf("check output path: %w", err)
		}
	}

	if err := txt2epub.WriteFile(out, doc, req.Metadata, cover); err != nil {
		return convertResult{}, fmt.Errorf("write %s: %w", out, err)
	}

	logger.Info("book written",
		slog.String(logging.FieldFile, req.TextPath),
		slog.String(logging.FieldOutput, out),
		slog.String(logging.FieldEncoding, doc.Encoding()),
		slog.Int("units", doc.Len()),
		slog.Int("warnings", len(doc.Warnings())),
	)

	return convertResult{
		Output:   out,
		Encoding: doc.Encoding(),
		Units:    doc.Len(),
		Warnings: doc.Warnings(),
	}, nil
}
