// Command crccli computes checksums over files or stdin using the
// parametric crc engine, selected either from the built-in catalog or a
// custom YAML model. Flags register into a Config, Config.Parse resolves
// them into concrete types, and main just drives the loop.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/bemasher/paramcrc/catalog"
	"github.com/bemasher/paramcrc/crc"
)

var cfg Config

func init() {
	cfg.RegisterFlags()
}

func main() {
	flag.Parse()

	if err := cfg.Parse(); err != nil {
		fmt.Fprintln(os.Stderr, "crccli:", err)
		os.Exit(1)
	}
	defer cfg.LogFile.Close()

	if cfg.Selftest {
		os.Exit(runSelftest())
	}

	sources := flag.Args()
	if len(sources) == 0 {
		sources = []string{"-"}
	}

	status := 0
	for _, src := range sources {
		if err := processSource(src); err != nil {
			cfg.Log.WithError(err).WithField("source", src).Error("failed to compute checksum")
			status = 1
		}
	}
	os.Exit(status)
}

func processSource(src string) error {
	var r io.Reader
	if src == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(src)
		if err != nil {
			return errors.Wrap(err, "opening source")
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return errors.Wrap(err, "reading source")
	}

	m, err := buildModel(cfg.Params, cfg.Strategy)
	if err != nil {
		return err
	}
	m.Update(data)

	cfg.Log.WithFields(map[string]interface{}{
		"source": src,
		"bytes":  len(data),
	}).Info("computed checksum")

	digits := cfg.Params.Width / 4
	return cfg.Encoder.Encode(Result{
		Source:   src,
		Bytes:    len(data),
		Checksum: fmt.Sprintf("%0*X", digits, m.Final()),
	})
}

func buildModel(p crc.Params, strategy crc.Strategy) (*crc.Model, error) {
	switch strategy {
	case crc.ExtFullTable:
		tbl := crc.NewTable(p.Width, p.ActualPoly(), p.RefReg)
		return crc.NewExternal(p, tbl), nil
	case crc.ExtSmallTable:
		tbl := crc.NewSmallTable(p.Width, p.ActualPoly(), p.RefReg)
		return crc.NewExternal(p, tbl), nil
	default:
		return crc.NewStrategy(p, strategy), nil
	}
}

func runSelftest() int {
	status := 0
	for _, name := range catalog.Names() {
		entry, _ := catalog.Lookup(name)

		check := []byte("123456789")
		gotCheck := crc.Calculate(entry.Params, check)
		gotResidue := crc.Residue(entry.Params)

		if gotCheck != entry.Check || gotResidue != entry.Residue {
			cfg.Log.WithFields(map[string]interface{}{
				"name":         name,
				"want_check":   fmt.Sprintf("%#x", entry.Check),
				"got_check":    fmt.Sprintf("%#x", gotCheck),
				"want_residue": fmt.Sprintf("%#x", entry.Residue),
				"got_residue":  fmt.Sprintf("%#x", gotResidue),
			}).Error("catalog entry failed selftest")
			status = 1
			continue
		}

		cfg.Log.WithField("name", name).Debug("catalog entry passed selftest")
	}

	if status == 0 {
		cfg.Log.WithField("count", len(catalog.Names())).Info("all catalog entries passed selftest")
	}
	return status
}
