package main

import (
	"encoding/gob"
	"encoding/json"
	"encoding/xml"
	"flag"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/bemasher/paramcrc/catalog"
	"github.com/bemasher/paramcrc/crc"
	"github.com/bemasher/paramcrc/csv"
	"github.com/bemasher/paramcrc/modelcfg"
)

// Config holds plain flag.*Var registrations in unexported fields, resolved
// into richer types once flag.Parse has run.
type Config struct {
	algo     string
	model    string
	strategy string
	format   string
	logfile  string

	Selftest bool

	Params   crc.Params
	Strategy crc.Strategy
	Encoder  Encoder
	Log      *logrus.Logger
	LogFile  *os.File
}

func (c *Config) RegisterFlags() {
	flag.StringVar(&c.algo, "algo", "crc-32/iso-hdlc", "catalog algorithm name or alias")
	flag.StringVar(&c.model, "model", "", "path to a YAML custom model; overrides -algo")
	flag.StringVar(&c.strategy, "strategy", "full", "calculation strategy: tableless, full, small, ext-full, ext-small")
	flag.StringVar(&c.format, "format", "plain", "result format: plain, csv, json, xml or gob")
	flag.StringVar(&c.logfile, "logfile", "/dev/stderr", "event log destination")
	flag.BoolVar(&c.Selftest, "selftest", false, "verify every catalog entry's check and residue values, then exit")
}

// Parse resolves the flags registered by RegisterFlags into c's richer
// fields. Call after flag.Parse.
func (c *Config) Parse() error {
	var err error

	if c.logfile == "/dev/stderr" {
		c.LogFile = os.Stderr
	} else {
		c.LogFile, err = os.Create(c.logfile)
		if err != nil {
			return errors.Wrap(err, "opening log file")
		}
	}

	c.Log = logrus.New()
	c.Log.SetOutput(c.LogFile)

	if c.Selftest {
		return nil
	}

	if c.model != "" {
		c.Params, err = modelcfg.Load(c.model)
		if err != nil {
			return errors.Wrap(err, "loading custom model")
		}
	} else {
		entry, ok := catalog.Lookup(c.algo)
		if !ok {
			return errors.Errorf("unknown catalog algorithm %q", c.algo)
		}
		c.Params = entry.Params
	}

	c.Strategy, err = parseStrategy(c.strategy)
	if err != nil {
		return err
	}

	c.Encoder, err = newEncoder(c.format, os.Stdout)
	if err != nil {
		return err
	}

	return nil
}

func parseStrategy(s string) (crc.Strategy, error) {
	switch strings.ToLower(s) {
	case "tableless":
		return crc.Tableless, nil
	case "full":
		return crc.FullTable, nil
	case "small":
		return crc.SmallTable, nil
	case "ext-full":
		return crc.ExtFullTable, nil
	case "ext-small":
		return crc.ExtSmallTable, nil
	default:
		return 0, errors.Errorf("unknown strategy %q", s)
	}
}

// Encoder writes one Result per call.
type Encoder interface {
	Encode(Result) error
}

type plainEncoder struct{ w io.Writer }

func (e plainEncoder) Encode(r Result) error {
	_, err := io.WriteString(e.w, r.String()+"\n")
	return err
}

type jsonEncoder struct{ enc *json.Encoder }

func (e jsonEncoder) Encode(r Result) error { return e.enc.Encode(r) }

type xmlEncoder struct{ enc *xml.Encoder }

func (e xmlEncoder) Encode(r Result) error { return e.enc.Encode(r) }

type gobEncoder struct{ enc *gob.Encoder }

func (e gobEncoder) Encode(r Result) error { return e.enc.Encode(r) }

// csvResultEncoder adapts csv.Encoder (built for anything implementing
// csv.Recorder) to this command's Encoder interface.
type csvResultEncoder struct{ enc *csv.Encoder }

func (e csvResultEncoder) Encode(r Result) error { return e.enc.Encode(r) }

func newEncoder(format string, w io.Writer) (Encoder, error) {
	switch strings.ToLower(format) {
	case "plain":
		return plainEncoder{w}, nil
	case "csv":
		return csvResultEncoder{csv.NewEncoder(w)}, nil
	case "json":
		return jsonEncoder{json.NewEncoder(w)}, nil
	case "xml":
		return xmlEncoder{xml.NewEncoder(w)}, nil
	case "gob":
		return gobEncoder{gob.NewEncoder(w)}, nil
	default:
		return nil, errors.Errorf("invalid format %q", format)
	}
}
