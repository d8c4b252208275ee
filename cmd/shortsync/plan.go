// Copyright 2025 Shortsync, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/shortsynchq/shortsync/internal/config"
	syncerrors "github.com/shortsynchq/shortsync/internal/errors"
	"github.com/shortsynchq/shortsync/internal/shortio"
	"github.com/shortsynchq/shortsync/internal/state"
)

// newPlanCommand builds the plan command
func newPlanCommand() *cobra.Command {
	var (
		apiKey     string
		configPath string
		outputFile string
	)

	cmd := &cobra.Command{
		Use:   "plan <links.yaml>",
		Short: "Show what a sync would change without mutating anything",
		Long: `Fetch the live link state and print the create/update/delete plan
a sync would execute. The remote account is never modified.

When a previous sync recorded state for this catalog, the time of that
run is reported alongside the plan.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
			defer cancel()

			return runPlan(ctx, args[0], apiKey, configPath, outputFile)
		},
	}

	cmd.Flags().StringVar(&apiKey, "api-key", "", "short.io API key (overrides the environment variable)")
	cmd.Flags().StringVar(&configPath, "config", "", "Config file path (default: auto-discover)")
	cmd.Flags().StringVar(&outputFile, "output", "", "NDJSON action record output path (default: stdout)")

	return cmd
}

// runPlan executes the plan command
func runPlan(ctx context.Context, catalogPath, apiKeyFlag, configPath, outputFile string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	apiKey := config.ResolveAPIKey(apiKeyFlag, cfg)
	if apiKey == "" {
		return fmt.Errorf("short.io API key not found. Set %s or use --api-key flag: %w",
			cfg.Shortio.APIKeyEnv, syncerrors.ErrInvalidAPIKey)
	}

	desired, err := config.LoadLinks(catalogPath)
	if err != nil {
		return err
	}

	reportLastSync(cfg, catalogPath)

	client := shortio.NewRESTClient(apiKey, cfg.Shortio.APIEndpoint)
	return executeSync(ctx, client, cfg, catalogPath, outputFile, desired, true)
}

// reportLastSync prints when this catalog was last synced, if known.
// State is informational only; its absence changes nothing.
func reportLastSync(cfg *config.Config, catalogPath string) {
	stateFile := state.GetStateFilePath(cfg.Defaults.StateDir, catalogPath)
	st, err := state.LoadState(stateFile)
	if err != nil {
		return
	}
	fmt.Fprintf(os.Stderr, "Last synced %s (%d created, %d updated, %d deleted)\n",
		st.LastSyncTime.Format(time.RFC3339), st.Created, st.Updated, st.Deleted)
}
