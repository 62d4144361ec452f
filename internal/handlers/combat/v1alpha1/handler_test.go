package v1alpha1_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	apiv1alpha1 "github.com/KirkDiggler/rpg-arena/api/combat/v1alpha1"
	"github.com/KirkDiggler/rpg-arena/internal/entities"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/handlers/combat/v1alpha1"
	"github.com/KirkDiggler/rpg-arena/internal/orchestrators/combat"
	combatmock "github.com/KirkDiggler/rpg-arena/internal/orchestrators/combat/mock"
	"github.com/KirkDiggler/rpg-arena/internal/repositories/character"
	combatlog "github.com/KirkDiggler/rpg-arena/internal/repositories/combat_log"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockCombat *combatmock.MockService
	handler    *v1alpha1.Handler
	ctx        context.Context
	now        time.Time
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockCombat = combatmock.NewMockService(s.ctrl)
	s.ctx = context.Background()
	s.now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		CombatService: s.mockCombat,
	})
	s.Require().NoError(err)
	s.handler = handler
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) record(id string, c entities.Character) *character.Record {
	return &character.Record{
		ID:        id,
		Character: &c,
		CreatedAt: s.now,
		UpdatedAt: s.now,
	}
}

func (s *HandlerTestSuite) requireCode(err error, code codes.Code) {
	s.Require().Error(err)
	st, ok := status.FromError(err)
	s.Require().True(ok)
	s.Equal(code, st.Code())
}

func (s *HandlerTestSuite) TestNewHandler_RequiresService() {
	_, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *HandlerTestSuite) TestCreateCharacter() {
	fay := s.record("char_fay", entities.Character{
		Name: "Fay", Strength: 12, HP: 10, MaxHP: 10, MP: 11, MaxMP: 11, Level: 1,
	})

	s.mockCombat.EXPECT().
		CreateCharacter(s.ctx, &combat.CreateCharacterInput{
			PlayerID: "player_1",
			Name:     "Fay",
			Strength: 12,
			MaxHP:    10,
			MaxMP:    11,
		}).
		Return(&combat.CreateCharacterOutput{Record: fay, Sheet: fay.Character.String()}, nil)

	resp, err := s.handler.CreateCharacter(s.ctx, &apiv1alpha1.CreateCharacterRequest{
		PlayerID: "player_1",
		Name:     "Fay",
		Strength: 12,
		MaxHP:    10,
		MaxMP:    11,
	})
	s.Require().NoError(err)
	s.Require().NotNil(resp.Character)
	s.Equal("char_fay", resp.Character.ID)
	s.Equal(int32(12), resp.Character.Character.Strength)
	s.Equal(int32(1), resp.Character.Character.Level)
	s.Equal("Fay\nLevel: 1\nStrength: 12\nHP: 10/10\nMP: 11/11", resp.Character.Sheet)
	s.Equal(s.now, resp.Character.CreatedAt)
}

func (s *HandlerTestSuite) TestCreateCharacter_MissingName() {
	_, err := s.handler.CreateCharacter(s.ctx, &apiv1alpha1.CreateCharacterRequest{Strength: 1})
	s.requireCode(err, codes.InvalidArgument)
}

func (s *HandlerTestSuite) TestCreateCharacter_ServiceError() {
	s.mockCombat.EXPECT().
		CreateCharacter(s.ctx, gomock.Any()).
		Return(nil, errors.InvalidArgument("strength cannot be negative"))

	_, err := s.handler.CreateCharacter(s.ctx, &apiv1alpha1.CreateCharacterRequest{
		Name:     "Broken",
		Strength: -1,
	})
	s.requireCode(err, codes.InvalidArgument)
}

func (s *HandlerTestSuite) TestRollCharacter() {
	rolled := s.record("char_roll", entities.Character{
		Name: "Rolly", Strength: 11, HP: 22, MaxHP: 22, MP: 9, MaxMP: 9, Level: 1,
	})

	s.mockCombat.EXPECT().
		RollCharacter(s.ctx, &combat.RollCharacterInput{Name: "Rolly"}).
		Return(&combat.RollCharacterOutput{
			Record: rolled,
			Sheet:  rolled.Character.String(),
			Rolls:  combat.RolledStats{Strength: 11, MaxHP: 22, MaxMP: 9},
		}, nil)

	resp, err := s.handler.RollCharacter(s.ctx, &apiv1alpha1.RollCharacterRequest{Name: "Rolly"})
	s.Require().NoError(err)
	s.Equal("char_roll", resp.Character.ID)
	s.Equal(&apiv1alpha1.RolledStats{Strength: 11, MaxHP: 22, MaxMP: 9}, resp.Rolls)
}

func (s *HandlerTestSuite) TestGetCharacter_NotFound() {
	s.mockCombat.EXPECT().
		GetCharacter(s.ctx, &combat.GetCharacterInput{CharacterID: "char_missing"}).
		Return(nil, errors.NotFound("character not found"))

	_, err := s.handler.GetCharacter(s.ctx, &apiv1alpha1.GetCharacterRequest{CharacterID: "char_missing"})
	s.requireCode(err, codes.NotFound)
}

func (s *HandlerTestSuite) TestGetCharacter_MissingID() {
	_, err := s.handler.GetCharacter(s.ctx, &apiv1alpha1.GetCharacterRequest{})
	s.requireCode(err, codes.InvalidArgument)
}

func (s *HandlerTestSuite) TestListCharacters() {
	a := s.record("char_a", entities.Character{Name: "A", HP: 1, MaxHP: 1, Level: 1})
	b := s.record("char_b", entities.Character{Name: "B", HP: 2, MaxHP: 2, Level: 1})

	s.mockCombat.EXPECT().
		ListCharacters(s.ctx, &combat.ListCharactersInput{PlayerID: "player_1", PageSize: 2}).
		Return(&combat.ListCharactersOutput{
			Records:       []*character.Record{a, b},
			NextPageToken: "2",
		}, nil)

	resp, err := s.handler.ListCharacters(s.ctx, &apiv1alpha1.ListCharactersRequest{
		PlayerID: "player_1",
		PageSize: 2,
	})
	s.Require().NoError(err)
	s.Require().Len(resp.Characters, 2)
	s.Equal("char_a", resp.Characters[0].ID)
	s.Equal("char_b", resp.Characters[1].ID)
	s.Equal("2", resp.NextPageToken)
}

func (s *HandlerTestSuite) TestListCharacters_NegativePageSize() {
	_, err := s.handler.ListCharacters(s.ctx, &apiv1alpha1.ListCharactersRequest{PageSize: -1})
	s.requireCode(err, codes.InvalidArgument)
}

func (s *HandlerTestSuite) TestDeleteCharacter() {
	s.mockCombat.EXPECT().
		DeleteCharacter(s.ctx, &combat.DeleteCharacterInput{CharacterID: "char_a"}).
		Return(&combat.DeleteCharacterOutput{}, nil)

	resp, err := s.handler.DeleteCharacter(s.ctx, &apiv1alpha1.DeleteCharacterRequest{CharacterID: "char_a"})
	s.Require().NoError(err)
	s.NotNil(resp)
}

func (s *HandlerTestSuite) TestCastSpell() {
	caster := s.record("char_fay", entities.Character{
		Name: "Fay", Strength: 12, HP: 10, MaxHP: 10, MP: 7, MaxMP: 11, Level: 1,
	})
	target := s.record("char_e1", entities.Character{
		Name: "E1", Strength: 2, HP: 0, MaxHP: 5, MP: 10, MaxMP: 10, Level: 1,
	})

	s.mockCombat.EXPECT().
		CastSpell(s.ctx, &combat.CastSpellInput{
			CasterID: "char_fay",
			TargetID: "char_e1",
			Cost:     4,
			Damage:   5,
		}).
		Return(&combat.CastSpellOutput{
			Caster:   caster,
			Target:   target,
			Cast:     true,
			Outcomes: entities.Outcomes{entities.OutcomeNewlyDefeated},
			Messages: []string{entities.MessageEnemyDefeated},
		}, nil)

	resp, err := s.handler.CastSpell(s.ctx, &apiv1alpha1.CastSpellRequest{
		CasterID: "char_fay",
		TargetID: "char_e1",
		Cost:     4,
		Damage:   5,
	})
	s.Require().NoError(err)
	s.True(resp.Cast)
	s.Equal(int32(7), resp.Caster.Character.MP)
	s.Equal(int32(0), resp.Target.Character.HP)
	s.Equal([]string{"newly_defeated"}, resp.Outcomes)
	s.Equal([]string{"Enemy defeated"}, resp.Messages)
}

func (s *HandlerTestSuite) TestCastSpell_Validation() {
	testCases := []struct {
		name string
		req  *apiv1alpha1.CastSpellRequest
	}{
		{
			name: "missing caster",
			req:  &apiv1alpha1.CastSpellRequest{TargetID: "t", Cost: 1, Damage: 1},
		},
		{
			name: "missing target",
			req:  &apiv1alpha1.CastSpellRequest{CasterID: "c", Cost: 1, Damage: 1},
		},
		{
			name: "negative cost",
			req:  &apiv1alpha1.CastSpellRequest{CasterID: "c", TargetID: "t", Cost: -1},
		},
		{
			name: "negative damage",
			req:  &apiv1alpha1.CastSpellRequest{CasterID: "c", TargetID: "t", Damage: -1},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.handler.CastSpell(s.ctx, tc.req)
			s.requireCode(err, codes.InvalidArgument)
		})
	}
}

func (s *HandlerTestSuite) TestLevelUp() {
	levelled := s.record("char_fay", entities.Character{
		Name: "Fay", Strength: 14, HP: 12, MaxHP: 12, MP: 13, MaxMP: 13, Level: 2,
	})

	s.mockCombat.EXPECT().
		LevelUp(s.ctx, &combat.LevelUpInput{CharacterID: "char_fay"}).
		Return(&combat.LevelUpOutput{
			Record: levelled,
			Growth: entities.Growth{Strength: 2, HP: 2, MP: 2},
		}, nil)

	resp, err := s.handler.LevelUp(s.ctx, &apiv1alpha1.LevelUpRequest{CharacterID: "char_fay"})
	s.Require().NoError(err)
	s.Equal(int32(2), resp.Character.Character.Level)
	s.Equal(&apiv1alpha1.StatGrowth{Strength: 2, HP: 2, MP: 2}, resp.Growth)
}

func (s *HandlerTestSuite) TestGroupAttack() {
	a := s.record("char_a", entities.Character{Name: "A", Strength: 3, HP: 1, MaxHP: 1, Level: 2})
	b := s.record("char_b", entities.Character{Name: "B", Strength: 3, HP: 1, MaxHP: 1, Level: 2})
	target := s.record("char_t", entities.Character{Name: "T", HP: 0, MaxHP: 10, Level: 1})

	s.mockCombat.EXPECT().
		GroupAttack(s.ctx, &combat.GroupAttackInput{
			AttackerIDs: []string{"char_a", "char_b"},
			TargetID:    "char_t",
		}).
		Return(&combat.GroupAttackOutput{
			Attackers:   []*character.Record{a, b},
			Target:      target,
			TotalDamage: 8,
			Defeated:    true,
			Growth:      []entities.Growth{{Strength: 1, HP: 1, MP: 1}, {Strength: 1, HP: 1, MP: 1}},
		}, nil)

	resp, err := s.handler.GroupAttack(s.ctx, &apiv1alpha1.GroupAttackRequest{
		AttackerIDs: []string{"char_a", "char_b"},
		TargetID:    "char_t",
	})
	s.Require().NoError(err)
	s.True(resp.Defeated)
	s.Equal(int32(8), resp.TotalDamage)
	s.Len(resp.Attackers, 2)
	s.Len(resp.Growth, 2)
	s.Equal(int32(0), resp.Target.Character.HP)
}

func (s *HandlerTestSuite) TestGroupAttack_ServiceRejectsTargetAmongAttackers() {
	s.mockCombat.EXPECT().
		GroupAttack(s.ctx, gomock.Any()).
		Return(nil, errors.InvalidArgument("target cannot attack itself"))

	_, err := s.handler.GroupAttack(s.ctx, &apiv1alpha1.GroupAttackRequest{
		AttackerIDs: []string{"char_t"},
		TargetID:    "char_t",
	})
	s.requireCode(err, codes.InvalidArgument)
}

func (s *HandlerTestSuite) TestGetCombatLog() {
	s.mockCombat.EXPECT().
		GetCombatLog(s.ctx, &combat.GetCombatLogInput{CharacterID: "char_e1", Limit: 5}).
		Return(&combat.GetCombatLogOutput{
			Entries: []*combatlog.Entry{
				{
					ID:          "log_1",
					CharacterID: "char_e1",
					Action:      combatlog.ActionCastSpell,
					ActorIDs:    []string{"char_fay"},
					TargetIDs:   []string{"char_e1"},
					Outcomes:    entities.Outcomes{entities.OutcomeNewlyDefeated},
					Messages:    []string{entities.MessageEnemyDefeated},
					OccurredAt:  s.now,
				},
			},
		}, nil)

	resp, err := s.handler.GetCombatLog(s.ctx, &apiv1alpha1.GetCombatLogRequest{
		CharacterID: "char_e1",
		Limit:       5,
	})
	s.Require().NoError(err)
	s.Require().Len(resp.Entries, 1)
	entry := resp.Entries[0]
	s.Equal("cast_spell", entry.Action)
	s.Equal([]string{"char_fay"}, entry.ActorIDs)
	s.Equal([]string{"newly_defeated"}, entry.Outcomes)
	s.Equal(s.now, entry.OccurredAt)
}

func (s *HandlerTestSuite) TestGetCombatLog_NegativeLimit() {
	_, err := s.handler.GetCombatLog(s.ctx, &apiv1alpha1.GetCombatLogRequest{CharacterID: "c", Limit: -1})
	s.requireCode(err, codes.InvalidArgument)
}
