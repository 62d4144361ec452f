package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apiv1alpha1 "github.com/KirkDiggler/rpg-arena/api/combat/v1alpha1"
)

var (
	playerID string
	strength int32
	maxHP    int32
	maxMP    int32
	pageSize int32
	pageTok  string
)

var createCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a character with explicit stats",
	Long: `Create a level 1 character at full HP and MP. Example:

  create Fay --strength 12 --max-hp 10 --max-mp 11`,
	Args: cobra.ExactArgs(1),
	RunE: createCharacter,
}

var rollCmd = &cobra.Command{
	Use:   "roll [name]",
	Short: "Create a character with rolled stats",
	Args:  cobra.ExactArgs(1),
	RunE:  rollCharacter,
}

var getCmd = &cobra.Command{
	Use:   "get [character-id]",
	Short: "Show a character",
	Args:  cobra.ExactArgs(1),
	RunE:  getCharacter,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List characters",
	Args:  cobra.NoArgs,
	RunE:  listCharacters,
}

var deleteCmd = &cobra.Command{
	Use:   "delete [character-id]",
	Short: "Delete a character and its combat log",
	Args:  cobra.ExactArgs(1),
	RunE:  deleteCharacter,
}

func init() {
	createCmd.Flags().StringVar(&playerID, "player", "", "owning player ID")
	createCmd.Flags().Int32Var(&strength, "strength", 0, "strength")
	createCmd.Flags().Int32Var(&maxHP, "max-hp", 0, "maximum HP")
	createCmd.Flags().Int32Var(&maxMP, "max-mp", 0, "maximum MP")

	rollCmd.Flags().StringVar(&playerID, "player", "", "owning player ID")

	listCmd.Flags().StringVar(&playerID, "player", "", "only list this player's characters")
	listCmd.Flags().Int32Var(&pageSize, "page-size", 0, "characters per page")
	listCmd.Flags().StringVar(&pageTok, "page-token", "", "token from a previous page")
}

func createCharacter(_ *cobra.Command, args []string) error {
	client, cleanup, err := createCombatClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.CreateCharacter(ctx, &apiv1alpha1.CreateCharacterRequest{
		PlayerID: playerID,
		Name:     args[0],
		Strength: strength,
		MaxHP:    maxHP,
		MaxMP:    maxMP,
	})
	if err != nil {
		return rpcError("create character", err)
	}

	printRecord(resp.Character)
	return nil
}

func rollCharacter(_ *cobra.Command, args []string) error {
	client, cleanup, err := createCombatClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.RollCharacter(ctx, &apiv1alpha1.RollCharacterRequest{
		PlayerID: playerID,
		Name:     args[0],
	})
	if err != nil {
		return rpcError("roll character", err)
	}

	fmt.Printf("Rolled strength %d, HP %d, MP %d\n\n", resp.Rolls.Strength, resp.Rolls.MaxHP, resp.Rolls.MaxMP)
	printRecord(resp.Character)
	return nil
}

func getCharacter(_ *cobra.Command, args []string) error {
	client, cleanup, err := createCombatClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GetCharacter(ctx, &apiv1alpha1.GetCharacterRequest{CharacterID: args[0]})
	if err != nil {
		return rpcError("get character", err)
	}

	printRecord(resp.Character)
	return nil
}

func listCharacters(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createCombatClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ListCharacters(ctx, &apiv1alpha1.ListCharactersRequest{
		PlayerID:  playerID,
		PageSize:  pageSize,
		PageToken: pageTok,
	})
	if err != nil {
		return rpcError("list characters", err)
	}

	for _, record := range resp.Characters {
		c := record.Character
		fmt.Printf("%s\t%s\tL%d\tHP %d/%d\tMP %d/%d\n", record.ID, c.Name, c.Level, c.HP, c.MaxHP, c.MP, c.MaxMP)
	}
	if resp.NextPageToken != "" {
		fmt.Printf("\nnext page: --page-token %s\n", resp.NextPageToken)
	}
	return nil
}

func deleteCharacter(_ *cobra.Command, args []string) error {
	client, cleanup, err := createCombatClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if _, err := client.DeleteCharacter(ctx, &apiv1alpha1.DeleteCharacterRequest{CharacterID: args[0]}); err != nil {
		return rpcError("delete character", err)
	}

	fmt.Printf("Deleted %s\n", args[0])
	return nil
}
