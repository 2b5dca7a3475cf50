// Package rcfile loads runtime settings from a YAML file.
//
//	gc:
//	  threshold: 64
//	  trace: true
//	capacity:
//	  global: 1021
//	  dict: 31
//	  env_slack: 16
//	foreign: true
//
// Omitted settings keep the runtime defaults.
package rcfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/luthersystems/lc/foreign"
	"github.com/luthersystems/lc/lisp"
	"gopkg.in/yaml.v3"
)

// File is the decoded contents of an rc file.
type File struct {
	GC       GC       `yaml:"gc"`
	Capacity Capacity `yaml:"capacity"`
	Foreign  bool     `yaml:"foreign"`
}

// GC holds collector settings.
type GC struct {
	Threshold int  `yaml:"threshold"`
	Trace     bool `yaml:"trace"`
}

// Capacity holds dict capacity lower bounds.  A nil field is unset.
type Capacity struct {
	Global   *int `yaml:"global"`
	Dict     *int `yaml:"dict"`
	EnvSlack *int `yaml:"env_slack"`
}

// Load reads and decodes the rc file at path.
func Load(path string) (*File, error) {
	if path == "" {
		return nil, fmt.Errorf("rcfile: empty path")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	rc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("rcfile: parse %s: %w", path, err)
	}
	return rc, nil
}

// Decode decodes an rc file from r.  Unknown keys are an error.  Empty input
// decodes to the zero File.
func Decode(r io.Reader) (*File, error) {
	rc := &File{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	err := dec.Decode(rc)
	if errors.Is(err, io.EOF) {
		return rc, nil
	}
	if err != nil {
		return nil, err
	}
	return rc, nil
}

// Configs converts rc into runtime configuration.  Validation of the values
// is left to the lisp.Config functions.
func (rc *File) Configs() []lisp.Config {
	var configs []lisp.Config
	if rc.GC.Threshold != 0 {
		configs = append(configs, lisp.WithGCThreshold(rc.GC.Threshold))
	}
	if rc.GC.Trace {
		configs = append(configs, lisp.WithGCTrace(true))
	}
	if rc.Capacity.Global != nil {
		configs = append(configs, lisp.WithGlobalCapacity(*rc.Capacity.Global))
	}
	if rc.Capacity.Dict != nil {
		configs = append(configs, lisp.WithDictCapacity(*rc.Capacity.Dict))
	}
	if rc.Capacity.EnvSlack != nil {
		configs = append(configs, lisp.WithEnvSlack(*rc.Capacity.EnvSlack))
	}
	if rc.Foreign {
		configs = append(configs, lisp.WithForeign(foreign.New()))
	}
	return configs
}
