// Package modelcfg loads a user-supplied CRC parameter tuple from YAML,
// a plain struct with yaml tags, unmarshalled with gopkg.in/yaml.v3 and
// validated by hand before being handed to callers.
package modelcfg

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/bemasher/paramcrc/crc"
)

// document is the on-disk shape of a custom model file. RefOut and RefReg
// are pointers so an absent key can be told apart from an explicit false,
// letting them default to RefIn per the core engine's own convention.
type document struct {
	Width  int    `yaml:"width"`
	Poly   uint64 `yaml:"poly"`
	Init   uint64 `yaml:"init"`
	XorOut uint64 `yaml:"xor_out"`
	RefIn  bool   `yaml:"ref_in"`
	RefOut *bool  `yaml:"ref_out"`
	RefReg *bool  `yaml:"ref_reg"`
}

// Load reads and validates a YAML-encoded parameter tuple from path.
func Load(path string) (crc.Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return crc.Params{}, errors.Wrapf(err, "modelcfg: reading %s", path)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return crc.Params{}, errors.Wrapf(err, "modelcfg: parsing %s", path)
	}

	refOut := doc.RefIn
	if doc.RefOut != nil {
		refOut = *doc.RefOut
	}
	refReg := doc.RefIn
	if doc.RefReg != nil {
		refReg = *doc.RefReg
	}

	p, err := crc.NewParams(doc.Width, doc.Poly, doc.Init, doc.XorOut, doc.RefIn, refOut, refReg)
	if err != nil {
		return crc.Params{}, errors.Wrapf(err, "modelcfg: %s", path)
	}
	if p.Poly != doc.Poly || p.Init != doc.Init || p.XorOut != doc.XorOut {
		return crc.Params{}, errors.Errorf("modelcfg: %s: poly, init and xor_out must fit in %d bits", path, doc.Width)
	}

	return p, nil
}
