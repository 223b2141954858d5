// Package client provides commands that exercise a running battle server
package client

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/celala99/cela-geo-quest/internal/handlers/geoquest/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the battle service",
	Long:  `Client commands talk to a running server over gRPC.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	ClientCmd.AddCommand(regionsCmd)
	ClientCmd.AddCommand(startCmd)
	ClientCmd.AddCommand(answerCmd)
	ClientCmd.AddCommand(encounterCmd)
	ClientCmd.AddCommand(abandonCmd)
	ClientCmd.AddCommand(dexCmd)
}

// call dials the server, runs one method and closes the connection
func call(method string, req map[string]any) (map[string]any, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}
	defer func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := v1alpha1.NewBattleServiceClient(conn).Call(ctx, method, req)
	if err != nil {
		return nil, err
	}
	return resp.AsMap(), nil
}
