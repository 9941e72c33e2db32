package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/fivetwenty-io/rmapi/internal/constants"
	"github.com/fivetwenty-io/rmapi/internal/http"
	"github.com/fivetwenty-io/rmapi/pkg/rmapi"
)

// CharactersClient implements rmapi.CharactersClient.
type CharactersClient struct {
	httpClient *http.Client
}

// NewCharactersClient creates a new characters client.
func NewCharactersClient(httpClient *http.Client) *CharactersClient {
	return &CharactersClient{
		httpClient: httpClient,
	}
}

// List implements rmapi.CharactersClient.List.
func (c *CharactersClient) List(ctx context.Context, page int) (*rmapi.CharactersPage, error) {
	if page < constants.FirstPage {
		return nil, fmt.Errorf("%w: %d", rmapi.ErrInvalidPage, page)
	}

	query := url.Values{}
	query.Set(constants.PageQueryParam, strconv.Itoa(page))

	resp, err := c.httpClient.Get(ctx, constants.CharacterPath, query)
	if err != nil {
		return nil, fmt.Errorf("listing characters page %d: %w", page, err)
	}

	var list rmapi.CharactersPage

	err = json.Unmarshal(resp.Body, &list)
	if err == nil {
		err = list.Validate()
	}

	if err != nil {
		return nil, &rmapi.DecodeError{Resource: "characters list", Err: err}
	}

	return &list, nil
}

// Get implements rmapi.CharactersClient.Get. Every id is sent to the API;
// ids it does not know come back as a 404 ProtocolError.
func (c *CharactersClient) Get(ctx context.Context, id int) (*rmapi.Character, error) {
	path := constants.CharacterPath + "/" + strconv.Itoa(id)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting character %d: %w", id, err)
	}

	var character rmapi.Character

	err = json.Unmarshal(resp.Body, &character)
	if err == nil {
		err = character.Validate()
	}

	if err != nil {
		return nil, &rmapi.DecodeError{Resource: "character", Err: err}
	}

	return &character, nil
}
