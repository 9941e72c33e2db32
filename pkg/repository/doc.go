// Package repository caches characters fetched through an
// rmapi.CharactersClient and tracks how far the listing has been paged.
//
// ListCharacters(ctx, false) only reaches the network while the cache is
// empty; ListCharacters(ctx, true) requests the next page, or the last page
// again once every page is in. GetCharacter serves cached characters without
// any network access. Every failure is reported as a Failure result carrying
// one of a small set of messages:
//
//	connectivity error  -> "No internet connection"
//	HTTP status error   -> "HTTP error: <status>"
//	anything else       -> "Unexpected error occurred"
package repository
