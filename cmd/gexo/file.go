package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/c64tools/exo"
)

// exoSuffix is the suffix the tool requires on input files and strips to
// derive the output file name.
const exoSuffix = ".exo"

// targetName derives the output file name from the input path.
func targetName(path string) (string, error) {
	if !strings.HasSuffix(path, exoSuffix) {
		return "", fmt.Errorf("file %s has no %s suffix", path,
			exoSuffix)
	}
	target := strings.TrimSuffix(path, exoSuffix)
	if target == "" || strings.HasSuffix(target, "/") {
		return "", fmt.Errorf("file name %s has no base part", path)
	}
	return target, nil
}

// processFile decompresses a single file. With args.Stdout the result goes
// to stdout and the input file stays; otherwise the result is written next
// to the input, which is removed unless args.Keep is set.
func processFile(fs afero.Fs, stdout io.Writer, path string, args *cli) error {
	src, err := afero.ReadFile(fs, path)
	if err != nil {
		return err
	}
	out, err := exo.Decode(src, args.Size)
	if err != nil {
		return err
	}
	logrus.Debugf("%s: %d -> %d bytes", path, len(src), len(out))

	if args.Stdout {
		_, err = stdout.Write(out)
		return err
	}

	target, err := targetName(path)
	if err != nil {
		return err
	}
	if !args.Force {
		if _, err := fs.Stat(target); err == nil {
			return fmt.Errorf("target %s exists", target)
		}
	}
	if err = afero.WriteFile(fs, target, out, 0o644); err != nil {
		return err
	}
	if !args.Keep {
		return fs.Remove(path)
	}
	return nil
}
