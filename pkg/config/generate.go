package config

import (
	"strings"

	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/contentkit/richhtml/pkg/errors"
)

const generatedHeader = `# richhtml configuration
# Precedence: this file < RICHHTML_* environment variables < CLI flags.
`

// Generate returns a commented default configuration file in TOML,
// suitable for writing to richhtml.toml.
func Generate() (string, error) {
	out, err := gotoml.Marshal(Default())
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to marshal default config")
	}

	var b strings.Builder
	b.WriteString(generatedHeader)
	b.WriteString("\n")
	b.Write(out)
	return b.String(), nil
}
