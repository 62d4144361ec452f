// Package client provides test commands for the RPG Arena gRPC service
package client

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	apiv1alpha1 "github.com/KirkDiggler/rpg-arena/api/combat/v1alpha1"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client test commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Test client commands for the RPG Arena",
	Long:  `Client commands allow you to test the RPG Arena by making real gRPC requests.`,
}

func init() {
	// Add persistent flags for all client commands
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	// Roster commands
	ClientCmd.AddCommand(createCmd)
	ClientCmd.AddCommand(rollCmd)
	ClientCmd.AddCommand(getCmd)
	ClientCmd.AddCommand(listCmd)
	ClientCmd.AddCommand(deleteCmd)

	// Combat commands
	ClientCmd.AddCommand(castSpellCmd)
	ClientCmd.AddCommand(levelUpCmd)
	ClientCmd.AddCommand(groupAttackCmd)
	ClientCmd.AddCommand(logCmd)
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return conn, nil
}

// createCombatClient creates a combat service client
func createCombatClient() (apiv1alpha1.CombatServiceClient, func(), error) {
	conn, err := createConnection()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	client := apiv1alpha1.NewCombatServiceClient(conn)
	return client, cleanup, nil
}

func printRecord(record *apiv1alpha1.CharacterRecord) {
	if record == nil {
		return
	}
	fmt.Printf("ID: %s\n", record.ID)
	if record.PlayerID != "" {
		fmt.Printf("Player: %s\n", record.PlayerID)
	}
	fmt.Println(record.Sheet)
}

// rpcError describes a failed call using the server's code and message,
// listing field problems when the server reported any.
func rpcError(action string, err error) error {
	coded := errors.FromGRPCError(err)

	msg := fmt.Sprintf("failed to %s: %s (%s)", action, errors.GetMessage(coded), errors.GetCode(coded))
	fields := errors.ValidationFields(coded)
	if len(fields) == 0 {
		return fmt.Errorf("%s", msg)
	}

	lines := []string{msg}
	for field, problems := range fields {
		lines = append(lines, fmt.Sprintf("  %s: %s", field, strings.Join(problems, ", ")))
	}
	slices.Sort(lines[1:])
	return fmt.Errorf("%s", strings.Join(lines, "\n"))
}
