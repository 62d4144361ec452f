package roster_test

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/roster"
)

type RosterTestSuite struct {
	suite.Suite
}

func TestRosterTestSuite(t *testing.T) {
	suite.Run(t, new(RosterTestSuite))
}

func (s *RosterTestSuite) TestParse() {
	doc := `
characters:
  - name: " Fay "
    strength: 12
    max_hp: 10
    max_mp: 11
    player_id: player_fay
  - {name: E1, strength: 2, max_hp: 5, max_mp: 10}
`
	r, err := roster.Parse(strings.NewReader(doc))
	s.Require().NoError(err)
	s.Require().Len(r.Characters, 2)
	s.Equal(roster.Entry{Name: "Fay", Strength: 12, MaxHP: 10, MaxMP: 11, PlayerID: "player_fay"}, r.Characters[0])
	s.Equal(roster.Entry{Name: "E1", Strength: 2, MaxHP: 5, MaxMP: 10}, r.Characters[1])
}

func (s *RosterTestSuite) TestParse_Invalid() {
	testCases := []struct {
		name string
		doc  string
	}{
		{name: "empty document", doc: ""},
		{name: "no characters", doc: "characters: []\n"},
		{name: "unknown key", doc: "characters:\n  - {name: A, speed: 3}\n"},
		{name: "missing name", doc: "characters:\n  - {strength: 1}\n"},
		{name: "negative stat", doc: "characters:\n  - {name: A, max_hp: -1}\n"},
		{name: "not yaml", doc: "characters: [\n"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := roster.Parse(strings.NewReader(tc.doc))
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err), "got %v", err)
		})
	}
}

func (s *RosterTestSuite) TestParse_ReportsEntryIndex() {
	_, err := roster.Parse(strings.NewReader("characters:\n  - {name: A}\n  - {name: B, strength: -2}\n"))
	s.Require().Error(err)

	fields, ok := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Require().True(ok)
	s.Contains(fields, "characters[1].strength")
}

func (s *RosterTestSuite) TestLoad_Missing() {
	_, err := roster.Load(filepath.Join(s.T().TempDir(), "nope.yaml"))
	s.True(errors.IsNotFound(err))
}

func (s *RosterTestSuite) TestLoad_File() {
	path := filepath.Join(s.T().TempDir(), "roster.yaml")
	s.Require().NoError(os.WriteFile(path, []byte("characters:\n  - {name: Solo, strength: 1, max_hp: 1}\n"), 0o600))

	r, err := roster.Load(path)
	s.Require().NoError(err)
	s.Len(r.Characters, 1)
}

func (s *RosterTestSuite) TestLoad_ExampleRoster() {
	_, file, _, ok := runtime.Caller(0)
	s.Require().True(ok)

	r, err := roster.Load(filepath.Join(filepath.Dir(file), "..", "..", "configs", "roster.example.yaml"))
	s.Require().NoError(err)
	s.Len(r.Characters, 18)
	s.Equal("Fay", r.Characters[0].Name)
	s.Equal(int32(500), r.Characters[17].MaxHP)
}
