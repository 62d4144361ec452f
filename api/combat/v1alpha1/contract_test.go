package v1alpha1_test

import (
	"os"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-arena/api/combat/v1alpha1"
)

var (
	messagePattern = regexp.MustCompile(`(?ms)^message (\w+) \{(.*?)\}`)
	fieldPattern   = regexp.MustCompile(`(?m)^\s+(?:repeated\s+)?[\w.]+\s+(\w+)\s*=\s*\d+;`)
	rpcPattern     = regexp.MustCompile(`rpc (\w+)\((\w+)\) returns \((\w+)\)`)
)

// ContractTestSuite keeps messages.go and service.go in step with
// combat.proto.
type ContractTestSuite struct {
	suite.Suite
	proto    string
	messages map[string][]string
}

func TestContractSuite(t *testing.T) {
	suite.Run(t, new(ContractTestSuite))
}

func (s *ContractTestSuite) SetupSuite() {
	raw, err := os.ReadFile("combat.proto")
	s.Require().NoError(err)
	s.proto = string(raw)

	s.messages = make(map[string][]string)
	for _, match := range messagePattern.FindAllStringSubmatch(s.proto, -1) {
		var fields []string
		for _, field := range fieldPattern.FindAllStringSubmatch(match[2], -1) {
			fields = append(fields, field[1])
		}
		s.messages[match[1]] = fields
	}
}

func jsonFields(t reflect.Type) []string {
	var fields []string
	for i := 0; i < t.NumField(); i++ {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		fields = append(fields, name)
	}
	return fields
}

func (s *ContractTestSuite) TestMessagesMatchStructs() {
	types := []any{
		v1alpha1.Character{},
		v1alpha1.CharacterRecord{},
		v1alpha1.StatGrowth{},
		v1alpha1.RolledStats{},
		v1alpha1.CombatLogEntry{},
		v1alpha1.CreateCharacterRequest{},
		v1alpha1.CreateCharacterResponse{},
		v1alpha1.RollCharacterRequest{},
		v1alpha1.RollCharacterResponse{},
		v1alpha1.GetCharacterRequest{},
		v1alpha1.GetCharacterResponse{},
		v1alpha1.ListCharactersRequest{},
		v1alpha1.ListCharactersResponse{},
		v1alpha1.DeleteCharacterRequest{},
		v1alpha1.DeleteCharacterResponse{},
		v1alpha1.CastSpellRequest{},
		v1alpha1.CastSpellResponse{},
		v1alpha1.LevelUpRequest{},
		v1alpha1.LevelUpResponse{},
		v1alpha1.GroupAttackRequest{},
		v1alpha1.GroupAttackResponse{},
		v1alpha1.GetCombatLogRequest{},
		v1alpha1.GetCombatLogResponse{},
	}

	s.Len(s.messages, len(types))
	for _, v := range types {
		t := reflect.TypeOf(v)
		fields, ok := s.messages[t.Name()]
		if !s.True(ok, "message %s missing from combat.proto", t.Name()) {
			continue
		}
		s.Equal(fields, jsonFields(t), t.Name())
	}
}

func (s *ContractTestSuite) TestRPCsMatchServiceDesc() {
	var declared []string
	for _, match := range rpcPattern.FindAllStringSubmatch(s.proto, -1) {
		declared = append(declared, match[1])
		s.Contains(s.messages, match[2])
		s.Contains(s.messages, match[3])
	}

	var registered []string
	for _, method := range v1alpha1.ServiceDesc.Methods {
		registered = append(registered, method.MethodName)
	}

	s.Equal(declared, registered)
	s.True(slices.Contains(declared, "GroupAttack"))
	s.Contains(s.proto, "package arena.api.v1alpha1;")
	s.Equal("arena.api.v1alpha1.CombatService", v1alpha1.ServiceName)
}
