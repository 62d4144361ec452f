package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-arena/internal/orchestrators/combat"
	"github.com/KirkDiggler/rpg-arena/internal/repositories/character"
	"github.com/KirkDiggler/rpg-arena/internal/roster"
)

var rosterFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the characters listed in a roster file",
	Long: `Seed reads a YAML roster and creates each character directly in the
configured store. Example:

  rpg-arena seed --file configs/roster.example.yaml`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&rosterFile, "file", "configs/roster.example.yaml", "roster file to load")
	seedCmd.Flags().StringVar(&storeName, "store", "", "redis, sqlite or postgres (overrides ARENA_STORE)")
}

func runSeed(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	setupLogger(cfg)

	r, err := roster.Load(rosterFile)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	st, err := openStores(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer st.Close()

	orchestrator, err := newOrchestrator(st)
	if err != nil {
		return fmt.Errorf("failed to create combat orchestrator: %w", err)
	}

	created, err := seedRoster(ctx, orchestrator, r)
	for _, record := range created {
		fmt.Printf("%s\t%s\n", record.ID, record.Character.Name)
	}
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "seeded roster", "file", rosterFile, "characters", len(created))
	return nil
}

// seedRoster creates each roster entry in order, stopping at the first
// failure. Characters created before the failure are returned.
func seedRoster(ctx context.Context, svc combat.Service, r *roster.Roster) ([]*character.Record, error) {
	created := make([]*character.Record, 0, len(r.Characters))
	for i, entry := range r.Characters {
		out, err := svc.CreateCharacter(ctx, &combat.CreateCharacterInput{
			PlayerID: entry.PlayerID,
			Name:     entry.Name,
			Strength: entry.Strength,
			MaxHP:    entry.MaxHP,
			MaxMP:    entry.MaxMP,
		})
		if err != nil {
			return created, fmt.Errorf("failed to create characters[%d] %q: %w", i, entry.Name, err)
		}
		created = append(created, out.Record)
	}
	return created, nil
}
