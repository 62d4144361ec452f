// Package roster reads YAML files describing characters to seed the arena
// with.
package roster

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-arena/internal/errors"
)

// Entry describes one character to create.
type Entry struct {
	Name     string `yaml:"name"`
	Strength int32  `yaml:"strength"`
	MaxHP    int32  `yaml:"max_hp"`
	MaxMP    int32  `yaml:"max_mp"`
	PlayerID string `yaml:"player_id,omitempty"`
}

// Roster is the top-level document of a roster file.
type Roster struct {
	Characters []Entry `yaml:"characters"`
}

// Validate checks every entry, reporting fields as characters[i].field.
func (r *Roster) Validate() error {
	if len(r.Characters) == 0 {
		return errors.InvalidArgument("roster has no characters")
	}

	vb := errors.NewValidationBuilder()
	for i, entry := range r.Characters {
		prefix := fmt.Sprintf("characters[%d].", i)
		errors.ValidateRequired(prefix+"name", entry.Name, vb)
		errors.ValidateNonNegative(prefix+"strength", entry.Strength, vb)
		errors.ValidateNonNegative(prefix+"max_hp", entry.MaxHP, vb)
		errors.ValidateNonNegative(prefix+"max_mp", entry.MaxMP, vb)
	}

	return vb.Build()
}

// Parse decodes and validates a roster. Unknown keys are rejected.
func Parse(r io.Reader) (*Roster, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var roster Roster
	if err := dec.Decode(&roster); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.InvalidArgument("roster is empty")
		}
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode roster")
	}

	for i := range roster.Characters {
		roster.Characters[i].Name = strings.TrimSpace(roster.Characters[i].Name)
	}

	if err := roster.Validate(); err != nil {
		return nil, err
	}

	return &roster, nil
}

// Load reads and parses the roster at path.
func Load(path string) (*Roster, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("roster file %s not found", path)
		}
		return nil, errors.Wrapf(err, "failed to open roster %s", path)
	}
	defer func() {
		_ = f.Close()
	}()

	roster, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "roster %s", path)
	}

	return roster, nil
}
