// Package rmclient provides the primary entry point for constructing a
// Rick and Morty API client that implements the rmapi.Client interface.
//
// It layers configuration and HTTP transport on top of the resource interfaces
// and types defined in the rmapi package, and can wrap the result in the
// cache-backed repository from the repository package.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/rmapi/pkg/rmapi"
//	  "github.com/fivetwenty-io/rmapi/pkg/rmclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // Raw transport access: one request per call, no caching.
//	  cli, err := rmclient.New(&rmapi.Config{APIEndpoint: "rickandmortyapi.com/api"})
//	  if err != nil { log.Fatal(err) }
//
//	  page, err := cli.Characters().List(ctx, 1)
//	  if err != nil { log.Fatal(err) }
//	  _ = page
//
//	  // Cached access with pagination state.
//	  repo, err := rmclient.NewRepository(&rmapi.Config{})
//	  if err != nil { log.Fatal(err) }
//
//	  first := repo.ListCharacters(ctx, false)
//	  more := repo.ListCharacters(ctx, true)
//	  _, _ = first, more
//	}
//
// # Helpers
//
// The package also provides convenience constructors NewWithEndpoint and
// NewDefault that wrap New with the appropriate configuration.
package rmclient
