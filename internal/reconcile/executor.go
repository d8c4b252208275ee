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

package reconcile

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/shortsynchq/shortsync/internal/logging"
	"github.com/shortsynchq/shortsync/internal/shortio"
)

// Executor drives the mutating half of a sync run against a link-service
// client.
type Executor struct {
	client shortio.Client
	log    zerolog.Logger
}

// NewExecutor creates an executor backed by the given client.
func NewExecutor(client shortio.Client) *Executor {
	return &Executor{
		client: client,
		log:    logging.GetLogger("reconcile"),
	}
}

// Apply executes a plan: creations first, then updates, then deletions.
// Deletions run last so a renamed link is never absent under both its old
// and new identity at the same time.
//
// A failed operation is recorded in the outcome's error list together with
// the link identity and operation kind, and the rest of the batch proceeds.
// No error from an individual item escapes to the caller.
func (e *Executor) Apply(ctx context.Context, plan Plan) Outcome {
	var outcome Outcome

	for _, d := range plan.Creates {
		_, err := e.client.CreateLink(ctx, shortio.NewLink{
			OriginalURL: d.URL,
			Domain:      d.Domain,
			Path:        d.Path,
			Title:       d.Title,
			Tags:        d.Tags,
		})
		if err != nil {
			outcome.Errors = append(outcome.Errors, fmt.Sprintf("create %s: %v", d.Identity(), err))
			e.log.Warn().Stringer("link", d.Identity()).Err(err).Msg("create failed")
			continue
		}
		outcome.Created++
		e.log.Info().Stringer("link", d.Identity()).Str("url", d.URL).Msg("link created")
	}

	for _, pair := range plan.Updates {
		update := shortio.LinkUpdate{
			OriginalURL: pair.Desired.URL,
			Title:       pair.Desired.Title,
			Tags:        pair.Desired.Tags,
		}
		// Empty values are sent literally: that is how a title gets
		// cleared and tags get removed.
		if update.Tags == nil {
			update.Tags = []string{}
		}

		_, err := e.client.UpdateLink(ctx, pair.Remote.ID, update)
		if err != nil {
			outcome.Errors = append(outcome.Errors, fmt.Sprintf("update %s: %v", pair.Desired.Identity(), err))
			e.log.Warn().Stringer("link", pair.Desired.Identity()).Err(err).Msg("update failed")
			continue
		}
		outcome.Updated++
		e.log.Info().Stringer("link", pair.Desired.Identity()).Str("url", pair.Desired.URL).Msg("link updated")
	}

	for _, link := range plan.Deletes {
		identity := Identity{Domain: link.Domain, Path: link.Path}

		if err := e.client.DeleteLink(ctx, link.ID); err != nil {
			outcome.Errors = append(outcome.Errors, fmt.Sprintf("delete %s: %v", identity, err))
			e.log.Warn().Stringer("link", identity).Err(err).Msg("delete failed")
			continue
		}
		outcome.Deleted++
		e.log.Info().Stringer("link", identity).Msg("link deleted")
	}

	return outcome
}
