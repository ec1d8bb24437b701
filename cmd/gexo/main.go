// Gexo decompresses Exomizer raw streams.
//
//	gexo [-c] [-k] [-f] [-s SIZE] file.exo ...
//
// Every input file is decoded into a file with the .exo suffix stripped,
// or to standard output with -c. The raw format has no length header, so
// -s provides the output size or an upper bound.
package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

type cli struct {
	Size    int      `short:"s" default:"1048576" help:"Output size or upper bound in bytes."`
	Stdout  bool     `short:"c" help:"Write decompressed data to standard output."`
	Keep    bool     `short:"k" help:"Keep input files."`
	Force   bool     `short:"f" help:"Overwrite existing output files."`
	Quiet   bool     `short:"q" help:"Report errors only."`
	Verbose bool     `short:"v" help:"Enable debug output."`
	Files   []string `arg:"" help:"Files to decompress."`
}

func main() {
	var args cli
	kctx := kong.Parse(&args,
		kong.Name("gexo"),
		kong.Description("Decompress Exomizer raw streams."))

	switch {
	case args.Quiet:
		logrus.SetLevel(logrus.ErrorLevel)
	case args.Verbose:
		logrus.SetLevel(logrus.DebugLevel)
	}

	fs := afero.NewOsFs()
	for _, path := range args.Files {
		if err := processFile(fs, os.Stdout, path, &args); err != nil {
			logrus.Errorf("%s: %s", path, err)
			kctx.Exit(1)
		}
	}
}
