package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/fivetwenty-io/rmapi/pkg/rmapi"
)

// Static errors for err113 compliance.
var (
	ErrEmptyResponse = errors.New("client returned no data")
)

// CharacterRepository gives callers cached access to characters.
type CharacterRepository interface {
	// ListCharacters returns every cached character, fetching the first page
	// when nothing is cached yet and the next page when loadMore is set.
	ListCharacters(ctx context.Context, loadMore bool) rmapi.Result[[]rmapi.Character]
	// GetCharacter returns a single character, from cache when possible.
	GetCharacter(ctx context.Context, id int) rmapi.Result[rmapi.Character]
}

var _ CharacterRepository = (*Default)(nil)

// Default is the cache-backed CharacterRepository.
//
// Cache and cursor are only written after a successful response that arrived
// while the caller's context was still live, so a failed or abandoned call
// can simply be repeated. Calls are serialized.
type Default struct {
	mu       sync.Mutex
	client   rmapi.CharactersClient
	store    Store
	cursor   Cursor
	logger   rmapi.Logger
	messages Messages

	serverErrorWording bool
}

// Option configures a Default repository.
type Option func(*Default)

// WithLogger sets the logger.
func WithLogger(logger rmapi.Logger) Option {
	return func(r *Default) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithStore replaces the in-memory store.
func WithStore(store Store) Option {
	return func(r *Default) {
		if store != nil {
			r.store = store
		}
	}
}

// WithMessages replaces the failure messages. It can be combined with
// WithServerErrorWording in any order.
func WithMessages(messages Messages) Option {
	return func(r *Default) {
		r.messages = messages
	}
}

// WithServerErrorWording reports HTTP failures of single lookups as
// "Server error: N", as older consumers expect. The wording is applied on
// top of the final messages once every option has run.
func WithServerErrorWording() Option {
	return func(r *Default) {
		r.serverErrorWording = true
	}
}

// New creates a repository on top of client.
func New(client rmapi.CharactersClient, opts ...Option) (*Default, error) {
	if client == nil {
		return nil, rmapi.ErrClientRequired
	}

	repo := &Default{
		client:   client,
		store:    NewMemoryStore(),
		cursor:   newCursor(),
		logger:   rmapi.NopLogger{},
		messages: DefaultMessages(),
	}

	for _, opt := range opts {
		opt(repo)
	}

	if repo.serverErrorWording {
		formats := make(map[Operation]string, len(repo.messages.StatusFormat)+1)
		for op, format := range repo.messages.StatusFormat {
			formats[op] = format
		}

		formats[OperationGet] = ServerErrorFormat
		repo.messages.StatusFormat = formats
	}

	return repo, nil
}

// ListCharacters implements CharacterRepository.ListCharacters.
//
// A load-more request on an empty cache fetches page 1: the page count is
// unknown until a page has arrived, so the cursor cannot advance yet.
func (r *Default) ListCharacters(ctx context.Context, loadMore bool) rmapi.Result[[]rmapi.Character] {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.store.Len() > 0 && !loadMore {
		r.logger.Debug("serving characters from cache", map[string]interface{}{
			"cached": r.store.Len(),
		})

		return rmapi.Success(r.store.All())
	}

	page := r.cursor.pageFor(loadMore)

	resp, err := r.client.List(ctx, page)
	if err == nil && resp == nil {
		err = ErrEmptyResponse
	}

	if err == nil {
		err = ctx.Err()
	}

	if err != nil {
		return rmapi.Failure[[]rmapi.Character](r.fail(OperationList, err, map[string]interface{}{
			"page": page,
		}))
	}

	r.cursor.advance(page, resp.Info.Pages)
	r.store.PutAll(resp.Results)

	r.logger.Debug("fetched characters page", map[string]interface{}{
		"page":        page,
		"total_pages": r.cursor.knownTotal(),
		"received":    len(resp.Results),
		"cached":      r.store.Len(),
	})

	return rmapi.Success(r.store.All())
}

// GetCharacter implements CharacterRepository.GetCharacter.
func (r *Default) GetCharacter(ctx context.Context, id int) rmapi.Result[rmapi.Character] {
	r.mu.Lock()
	defer r.mu.Unlock()

	if character, ok := r.store.Get(id); ok {
		r.logger.Debug("serving character from cache", map[string]interface{}{
			"id": id,
		})

		return rmapi.Success(character)
	}

	character, err := r.client.Get(ctx, id)
	if err == nil && character == nil {
		err = ErrEmptyResponse
	}

	if err == nil {
		err = ctx.Err()
	}

	if err != nil {
		return rmapi.Failure[rmapi.Character](r.fail(OperationGet, err, map[string]interface{}{
			"id": id,
		}))
	}

	r.store.Put(id, *character)

	return rmapi.Success(*character)
}

// Cursor returns a copy of the pagination state.
func (r *Default) Cursor() Cursor {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.cursor.snapshot()
}

// HasMore reports whether a load-more request would fetch a new page.
func (r *Default) HasMore() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.cursor.HasMore()
}

// CachedCount returns the number of cached characters.
func (r *Default) CachedCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.store.Len()
}

func (r *Default) fail(op Operation, err error, fields map[string]interface{}) string {
	message := r.messages.Classify(op, err)

	fields["operation"] = string(op)
	fields["error"] = err.Error()
	fields["message"] = message
	r.logger.Error("characters request failed", fields)

	return message
}
