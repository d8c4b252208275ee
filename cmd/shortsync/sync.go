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
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/shortsynchq/shortsync/internal/config"
	syncerrors "github.com/shortsynchq/shortsync/internal/errors"
	"github.com/shortsynchq/shortsync/internal/metadata"
	"github.com/shortsynchq/shortsync/internal/output"
	"github.com/shortsynchq/shortsync/internal/reconcile"
	"github.com/shortsynchq/shortsync/internal/shorterror"
	"github.com/shortsynchq/shortsync/internal/shortio"
	"github.com/shortsynchq/shortsync/internal/state"
)

// newSyncCommand builds the sync command
func newSyncCommand() *cobra.Command {
	var (
		apiKey     string
		configPath string
		outputFile string
		dryRun     bool
	)

	cmd := &cobra.Command{
		Use:   "sync <links.yaml>",
		Short: "Apply the links catalog to the short.io account",
		Long: `Fetch the live link state for every domain the catalog references,
compute the minimal create/update/delete plan, and apply it.

Individual operation failures are reported and do not abort the run;
re-running the sync retries exactly the remaining differences.

Authentication is required via a short.io API key:
  - Use --api-key flag to provide the key directly
  - Or set the configured environment variable (SHORTIO_API_KEY by default)`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
			defer cancel()

			return runSync(ctx, args[0], apiKey, configPath, outputFile, dryRun)
		},
	}

	cmd.Flags().StringVar(&apiKey, "api-key", "", "short.io API key (overrides the environment variable)")
	cmd.Flags().StringVar(&configPath, "config", "", "Config file path (default: auto-discover)")
	cmd.Flags().StringVar(&outputFile, "output", "", "NDJSON action record output path (default: stdout)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Compute and print the plan without mutating anything")

	return cmd
}

// runSync executes the sync command
func runSync(ctx context.Context, catalogPath, apiKeyFlag, configPath, outputFile string, dryRun bool) error {
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

	client := shortio.NewRESTClient(apiKey, cfg.Shortio.APIEndpoint)
	return executeSync(ctx, client, cfg, catalogPath, outputFile, desired, dryRun)
}

// executeSync drives the fetch/diff/apply pipeline against a client. Split
// from runSync so tests can substitute a mock client.
func executeSync(ctx context.Context, client shortio.Client, cfg *config.Config, catalogPath, outputFile string, desired []reconcile.DesiredLink, dryRun bool) error {
	domains := config.Domains(desired)
	tracker := metadata.NewTracker(catalogPath, domains, dryRun)

	plan, err := buildPlan(ctx, client, desired, domains)
	if err != nil {
		// Without a known actual state no safe plan can be computed.
		return err
	}

	writer, err := newActionWriter(outputFile)
	if err != nil {
		return err
	}
	defer writer.Close()

	if err := output.WritePlan(writer, plan); err != nil {
		return fmt.Errorf("failed to write action records: %w", err)
	}

	if dryRun {
		output.PrintPlan(os.Stderr, plan)
		return nil
	}

	executor := reconcile.NewExecutor(client)
	outcome := executor.Apply(ctx, plan)

	output.PrintOutcome(os.Stderr, outcome)
	recordRun(cfg, catalogPath, domains, tracker, plan, outcome)

	if outcome.Failed() {
		return fmt.Errorf("%d of %d operations failed: %w",
			len(outcome.Errors), plan.Size(), syncerrors.ErrPartialSync)
	}
	return nil
}

// buildPlan fetches the live catalog of every referenced domain and diffs
// it against the desired state. Any fetch failure aborts the run.
func buildPlan(ctx context.Context, client shortio.Client, desired []reconcile.DesiredLink, domains []string) (reconcile.Plan, error) {
	var actual []shortio.Link
	for _, domain := range domains {
		links, err := client.FetchAllLinks(ctx, domain)
		if err != nil {
			return reconcile.Plan{}, err
		}
		actual = append(actual, links...)
	}
	return reconcile.ComputeDiff(desired, actual), nil
}

// newActionWriter opens the NDJSON destination: stdout by default, a file
// when requested.
func newActionWriter(outputFile string) (output.OutputWriter, error) {
	if outputFile == "" {
		return output.NewWriter(os.Stdout), nil
	}
	writer, err := output.NewFileWriter(outputFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return writer, nil
}

// recordRun persists the state and metadata records for a completed sync.
// Both are informational, so failures here are reported but never fail the
// run itself.
func recordRun(cfg *config.Config, catalogPath string, domains []string, tracker *metadata.Tracker, plan reconcile.Plan, outcome reconcile.Outcome) {
	stateFile := state.GetStateFilePath(cfg.Defaults.StateDir, catalogPath)

	st := &state.SyncState{
		Catalog:      catalogPath,
		Domains:      domains,
		LastSyncTime: time.Now().UTC(),
		Created:      outcome.Created,
		Updated:      outcome.Updated,
		Deleted:      outcome.Deleted,
		Failed:       len(outcome.Errors),
	}
	if err := state.SaveState(st, stateFile); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to save sync state: %v\n", err)
	}

	metaFile := strings.TrimSuffix(stateFile, ".state") + ".metadata.json"
	if err := tracker.Finalize(plan, outcome).Save(metaFile); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to save sync metadata: %v\n", err)
	}
}

// mapErrorToExitCode maps internal errors to appropriate exit codes
func mapErrorToExitCode(err error) int {
	if err == nil {
		return 0
	}

	if errors.Is(err, syncerrors.ErrPartialSync) {
		return 4
	}
	if errors.Is(err, syncerrors.ErrInvalidAPIKey) || errors.Is(err, syncerrors.ErrDomainNotFound) {
		return 2
	}
	if errors.Is(err, syncerrors.ErrNetworkFailure) {
		return 3
	}

	// Fall back to classification for errors that carry no sentinel
	inspector := shorterror.NewInspector()
	switch {
	case inspector.IsAuthError(err) || inspector.IsNotFoundError(err):
		return 2
	case inspector.IsNetworkError(err):
		return 3
	}

	return 1 // General error
}
