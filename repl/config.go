package repl

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/metaphox/kaleido-lang/parser"
)

// OpConfig is the on-disk operator configuration. It lets a deployment add
// binary operators without recompiling — the precedence table is the only
// extension point the parser needs:
//
//	operators:
//	  - char: "/"
//	    precedence: 40
//	  - char: "|"
//	    precedence: 5
type OpConfig struct {
	Operators []OpSpec `yaml:"operators"`
}

// OpSpec declares one binary operator: a single-character symbol and its
// binding power (higher binds tighter; the built-ins sit at 10..40).
type OpSpec struct {
	Char       string `yaml:"char"`
	Precedence int    `yaml:"precedence"`
}

// LoadOpConfig reads and decodes an operator configuration file.
func LoadOpConfig(path string) (*OpConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading operator config")
	}
	cfg, err := ParseOpConfig(data)
	return cfg, errors.Wrapf(err, "operator config %s", path)
}

// ParseOpConfig decodes an operator configuration from YAML bytes.
func ParseOpConfig(data []byte) (*OpConfig, error) {
	var cfg OpConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "decoding YAML")
	}
	return &cfg, nil
}

// Apply registers every configured operator on ops. Validation (single
// printable symbol, sane precedence, not structural syntax) is delegated to
// [parser.OpTable.Register]; the first rejected entry aborts the whole apply.
func (c *OpConfig) Apply(ops parser.OpTable) error {
	for _, spec := range c.Operators {
		if len(spec.Char) != 1 {
			return errors.Errorf("operator %q must be a single character", spec.Char)
		}
		if err := ops.Register(spec.Char[0], spec.Precedence); err != nil {
			return errors.Wrap(err, "registering operator")
		}
	}
	return nil
}
