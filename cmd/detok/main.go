// Command detok reconstructs plain text from a COCA wlp annotation file.
package main

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/ulikunitz/xz"
	"golang.org/x/text/encoding/charmap"

	coca "github.com/corpus-tools/coca"
)

var cli struct {
	Input     string `arg:"" help:"wlp input file; .xz files are decompressed transparently." type:"existingfile"`
	Output    string `short:"o" default:"coca.txt" help:"Output file."`
	FirstLine int    `default:"0" help:"First line to read."`
	LastLine  int    `default:"0" help:"Last line to read (exclusive; 0 reads to the end)."`
	Encoding  string `default:"latin1" enum:"latin1,utf8" help:"Input encoding. COCA ships as ISO-8859-1."`
	Debug     bool   `help:"Enable debug logging."`
}

// openInput opens the wlp file, layering xz decompression and character
// decoding as needed.
func openInput() (io.Reader, func() error, error) {
	f, err := os.Open(cli.Input)
	if err != nil {
		return nil, nil, err
	}

	var r io.Reader = f
	if strings.HasSuffix(cli.Input, ".xz") {
		xr, err := xz.NewReader(r)
		if err != nil {
			f.Close()
			return nil, nil, err
		}
		r = xr
	}
	if cli.Encoding == "latin1" {
		r = charmap.ISO8859_1.NewDecoder().Reader(r)
	}
	return r, f.Close, nil
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("detok"),
		kong.Description("Reconstruct readable text from a COCA wlp corpus file."),
	)

	level := slog.LevelInfo
	if cli.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	in, closeIn, err := openInput()
	kctx.FatalIfErrorf(err)
	defer closeIn()

	out, err := os.Create(cli.Output)
	kctx.FatalIfErrorf(err)
	defer out.Close()

	d := &coca.Detokenizer{First: cli.FirstLine, Last: cli.LastLine}
	if cli.Debug {
		d.Log = logger
	}

	if err := d.Run(out, in); err != nil {
		var perr *coca.PipelineError
		if errors.As(err, &perr) {
			args := []any{"line", perr.Line, "cur", perr.Cur.String()}
			if perr.Prev != nil {
				args = append(args, "prev", perr.Prev.String())
			}
			logger.Error("detokenization failed", args...)
		}
		kctx.FatalIfErrorf(err)
	}
}
