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
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shortsynchq/shortsync/internal/logging"
	"github.com/shortsynchq/shortsync/pkg/version"
)

func main() {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:   "shortsync",
		Short: "Reconcile a declarative short-link catalog against short.io",
		Long: `Shortsync keeps a short.io account in sync with a link catalog
maintained as data. It fetches the live link state, computes the minimal
set of creations, updates and deletions, and applies them with one command.`,
		Version:       version.Version,
		SilenceUsage:  true, // Don't show usage on error
		SilenceErrors: true, // We'll handle error printing ourselves
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
		},
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"Increase logging verbosity (-v info, -vv debug)")

	rootCmd.AddCommand(newSyncCommand())
	rootCmd.AddCommand(newPlanCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(mapErrorToExitCode(err))
	}
}
