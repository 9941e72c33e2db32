// Package rmapi provides types, interfaces, and helpers for working with the
// Rick and Morty REST API.
//
// # Overview
//
// The rmapi package defines the domain types (Character, Location, PageInfo),
// the transport contract (CharactersClient), the Result type returned by the
// cache-backed repository, and the error taxonomy every layer agrees on. A
// concrete client is provided by the rmclient package, which wires
// configuration and transport. The repository package adds pagination state
// and an in-memory character cache on top of it.
//
// Getting a repository
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
//	  repo, err := rmclient.NewRepository(&rmapi.Config{APIEndpoint: rmapi.DefaultAPIEndpoint})
//	  if err != nil { log.Fatal(err) }
//
//	  result := repo.ListCharacters(ctx, false)
//	  if !result.IsSuccess() { log.Fatal(result.Message()) }
//	  _ = result.Data()
//	}
//
// # Errors
//
// Transport failures are reported as *ConnectivityError, *ProtocolError or
// *DecodeError. Helpers such as IsConnectivity, IsNotFound, IsDecode and
// StatusCode make it easy to branch on them. The repository turns every one
// of them into a Failure result with a user-facing message.
//
// # Interceptors
//
// InterceptorChain runs hooks around every HTTP exchange. LoggingInterceptor,
// HeaderInterceptor and MetricsCollector cover the common cases.
package rmapi
