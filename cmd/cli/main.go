// Command cli is the Courtside operator CLI.
//
// Usage:
//
//	courtside ask "Who is on the OKC roster?"
//	courtside ask --chat-url http://localhost:8080 "Jokic stats 2022"
//	courtside teams
//	courtside teams --fetch
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/courtsideai/courtside/internal/config"
	"github.com/courtsideai/courtside/internal/provider/apisports"
	"github.com/courtsideai/courtside/internal/resolve"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "courtside",
		Short: "Courtside NBA stats chat CLI",
	}

	root.AddCommand(askCmd())
	root.AddCommand(teamsCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// ask command
// --------------------------------------------------------------------------

func askCmd() *cobra.Command {
	var chatURL string
	var debug bool
	cmd := &cobra.Command{
		Use:   "ask [question]",
		Short: "Ask the chat mediator a question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()

			question := strings.Join(args, " ")
			body, err := json.Marshal(map[string]string{"message": question})
			if err != nil {
				return fmt.Errorf("encode request: %w", err)
			}

			req, err := http.NewRequestWithContext(ctx, http.MethodPost,
				strings.TrimRight(chatURL, "/")+"/chat", strings.NewReader(string(body)))
			if err != nil {
				return fmt.Errorf("build request: %w", err)
			}
			req.Header.Set("Content-Type", "application/json")

			client := &http.Client{Timeout: 60 * time.Second}
			resp, err := client.Do(req)
			if err != nil {
				return fmt.Errorf("call chat service: %w", err)
			}
			defer resp.Body.Close()

			var envelope struct {
				Answer string         `json:"answer"`
				Intent string         `json:"intent"`
				Debug  map[string]any `json:"debug"`
				Error  string         `json:"error"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
				return fmt.Errorf("decode response: %w", err)
			}
			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("chat service returned HTTP %d: %s", resp.StatusCode, envelope.Error)
			}

			fmt.Println(envelope.Answer)
			if debug {
				raw, _ := json.MarshalIndent(map[string]any{
					"intent": envelope.Intent,
					"debug":  envelope.Debug,
				}, "", "  ")
				fmt.Fprintln(os.Stderr, string(raw))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&chatURL, "chat-url", "http://localhost:8080", "Chat service base URL")
	cmd.Flags().BoolVar(&debug, "debug", false, "Print intent and backend diagnostics to stderr")
	return cmd
}

// --------------------------------------------------------------------------
// teams command
// --------------------------------------------------------------------------

func teamsCmd() *cobra.Command {
	var fetch bool
	cmd := &cobra.Command{
		Use:   "teams",
		Short: "Print the team name to provider id table",
		Long: "Prints the static table used for team resolution. With --fetch the table " +
			"is rebuilt live from the sports data provider, which is how the static " +
			"entries were produced in the first place.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !fetch {
				for _, t := range resolve.KnownTeams() {
					fmt.Printf("%-30s %d\n", t.Name, t.ID)
				}
				return nil
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if cfg.APISportsKey == "" {
				return fmt.Errorf("APISPORTS_KEY is required for --fetch")
			}

			provider := apisports.NewClient(cfg.APISportsBaseURL, cfg.APISportsKey, cfg.APISportsRPM, logger)
			entries, err := provider.TeamsByLeague(ctx, config.NBALeagueID)
			if err != nil {
				return fmt.Errorf("fetch teams: %w", err)
			}

			sort.Slice(entries, func(i, j int) bool {
				return entries[i].Team.Name < entries[j].Team.Name
			})
			for _, e := range entries {
				fmt.Printf("%-30s %d\n", e.Team.Name, e.Team.ID)
			}
			logger.Info("Fetched team table", "count", len(entries))
			return nil
		},
	}
	cmd.Flags().BoolVar(&fetch, "fetch", false, "Rebuild the table from the live provider")
	return cmd
}
