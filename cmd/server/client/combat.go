package client

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	apiv1alpha1 "github.com/KirkDiggler/rpg-arena/api/combat/v1alpha1"
)

var logLimit int32

var castSpellCmd = &cobra.Command{
	Use:   "cast-spell [caster-id] [target-id] [cost] [damage]",
	Short: "Cast a spell at another character",
	Args:  cobra.ExactArgs(4),
	RunE:  castSpell,
}

var levelUpCmd = &cobra.Command{
	Use:   "level-up [character-id]",
	Short: "Level a character up",
	Args:  cobra.ExactArgs(1),
	RunE:  levelUp,
}

var groupAttackCmd = &cobra.Command{
	Use:   "group-attack [target-id] [attacker-id...]",
	Short: "Have attackers punch a target together",
	Args:  cobra.MinimumNArgs(1),
	RunE:  groupAttack,
}

var logCmd = &cobra.Command{
	Use:   "log [character-id]",
	Short: "Show a character's combat log",
	Args:  cobra.ExactArgs(1),
	RunE:  combatLog,
}

func init() {
	logCmd.Flags().Int32Var(&logLimit, "limit", 0, "maximum entries to show")
}

func parseInt32(name, value string) (int32, error) {
	n, err := strconv.ParseInt(value, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, value, err)
	}
	return int32(n), nil
}

func castSpell(_ *cobra.Command, args []string) error {
	cost, err := parseInt32("cost", args[2])
	if err != nil {
		return err
	}
	damage, err := parseInt32("damage", args[3])
	if err != nil {
		return err
	}

	client, cleanup, err := createCombatClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.CastSpell(ctx, &apiv1alpha1.CastSpellRequest{
		CasterID: args[0],
		TargetID: args[1],
		Cost:     cost,
		Damage:   damage,
	})
	if err != nil {
		return rpcError("cast spell", err)
	}

	for _, msg := range resp.Messages {
		fmt.Println(msg)
	}
	if !resp.Cast {
		return nil
	}

	fmt.Println()
	printRecord(resp.Caster)
	fmt.Println()
	printRecord(resp.Target)
	return nil
}

func levelUp(_ *cobra.Command, args []string) error {
	client, cleanup, err := createCombatClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.LevelUp(ctx, &apiv1alpha1.LevelUpRequest{CharacterID: args[0]})
	if err != nil {
		return rpcError("level up", err)
	}

	fmt.Printf("+%d strength, +%d HP, +%d MP\n\n", resp.Growth.Strength, resp.Growth.HP, resp.Growth.MP)
	printRecord(resp.Character)
	return nil
}

func groupAttack(_ *cobra.Command, args []string) error {
	client, cleanup, err := createCombatClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GroupAttack(ctx, &apiv1alpha1.GroupAttackRequest{
		TargetID:    args[0],
		AttackerIDs: args[1:],
	})
	if err != nil {
		return rpcError("group attack", err)
	}

	fmt.Printf("Total damage: %d\n", resp.TotalDamage)
	if resp.Defeated {
		fmt.Println("Enemy defeated")
	}
	fmt.Println()
	printRecord(resp.Target)
	for _, attacker := range resp.Attackers {
		fmt.Println()
		printRecord(attacker)
	}
	return nil
}

func combatLog(_ *cobra.Command, args []string) error {
	client, cleanup, err := createCombatClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GetCombatLog(ctx, &apiv1alpha1.GetCombatLogRequest{
		CharacterID: args[0],
		Limit:       logLimit,
	})
	if err != nil {
		return rpcError("get combat log", err)
	}

	for _, entry := range resp.Entries {
		fmt.Printf("%s  %-12s actors=%s targets=%s",
			entry.OccurredAt.Format("2006-01-02 15:04:05"),
			entry.Action,
			strings.Join(entry.ActorIDs, ","),
			strings.Join(entry.TargetIDs, ","),
		)
		if len(entry.Messages) > 0 {
			fmt.Printf("  %s", strings.Join(entry.Messages, "; "))
		}
		fmt.Println()
	}
	return nil
}
