package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// PlatformStrings holds a per-platform value such as a key name or
// filename. Lokalise accepts a plain string, meaning the same value on every
// platform, or an object keyed by platform.
type PlatformStrings struct {
	IOS     string `json:"ios,omitempty"`
	Android string `json:"android,omitempty"`
	Web     string `json:"web,omitempty"`
	Other   string `json:"other,omitempty"`
}

// Same returns a PlatformStrings with v on every platform.
func Same(v string) PlatformStrings {
	return PlatformStrings{IOS: v, Android: v, Web: v, Other: v}
}

// IsZero reports whether no platform has a value.
func (p PlatformStrings) IsZero() bool {
	return p == PlatformStrings{}
}

// String returns the first non-empty value, preferring web.
func (p PlatformStrings) String() string {
	for _, v := range []string{p.Web, p.Other, p.IOS, p.Android} {
		if v != "" {
			return v
		}
	}
	return ""
}

// MarshalJSON encodes a uniform value as a plain string.
func (p PlatformStrings) MarshalJSON() ([]byte, error) {
	if p.IOS == p.Android && p.Android == p.Web && p.Web == p.Other {
		return json.Marshal(p.Web)
	}
	type plain PlatformStrings
	return json.Marshal(plain(p))
}

// UnmarshalJSON accepts either a string or a per-platform object.
func (p *PlatformStrings) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = Same(s)
		return nil
	}
	if bytes.Equal(data, []byte("null")) {
		*p = PlatformStrings{}
		return nil
	}
	type plain PlatformStrings
	var v plain
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*p = PlatformStrings(v)
	return nil
}

// Key is a Lokalise translation key.
type Key struct {
	KeyID                  int64           `json:"key_id"`
	CreatedAt              string          `json:"created_at,omitempty"`
	KeyName                PlatformStrings `json:"key_name"`
	Filenames              PlatformStrings `json:"filenames,omitempty"`
	Description            string          `json:"description,omitempty"`
	Platforms              []string        `json:"platforms,omitempty"`
	Tags                   []string        `json:"tags,omitempty"`
	Translations           []Translation   `json:"translations,omitempty"`
	IsPlural               bool            `json:"is_plural"`
	PluralName             string          `json:"plural_name,omitempty"`
	IsHidden               bool            `json:"is_hidden"`
	IsArchived             bool            `json:"is_archived"`
	Context                string          `json:"context,omitempty"`
	BaseWords              int             `json:"base_words,omitempty"`
	CharLimit              int             `json:"char_limit,omitempty"`
	CustomAttributes       string          `json:"custom_attributes,omitempty"`
	ModifiedAt             string          `json:"modified_at,omitempty"`
	TranslationsModifiedAt string          `json:"translations_modified_at,omitempty"`
}

// ListKeysParams filters the key list.
type ListKeysParams struct {
	PageOptions
	IncludeTranslations bool
	IncludeComments     bool
	IncludeScreenshots  bool
	FilterKeys          []string
	FilterKeyIDs        []string
	FilterTags          []string
	FilterPlatforms     []string
	FilterFilenames     []string
	FilterUntranslated  bool
	FilterQAIssues      []string
	FilterArchived      string
	FilterLangIDs       []string
}

// NewTranslation is a translation supplied while creating a key.
type NewTranslation struct {
	LanguageISO  string `json:"language_iso"`
	Translation  any    `json:"translation"`
	IsReviewed   *bool  `json:"is_reviewed,omitempty"`
	IsUnverified *bool  `json:"is_unverified,omitempty"`
}

// CreateKeyRequest describes one key to create.
type CreateKeyRequest struct {
	KeyName          PlatformStrings  `json:"key_name"`
	Description      string           `json:"description,omitempty"`
	Platforms        []string         `json:"platforms"`
	Filenames        *PlatformStrings `json:"filenames,omitempty"`
	Tags             []string         `json:"tags,omitempty"`
	Translations     []NewTranslation `json:"translations,omitempty"`
	IsPlural         bool             `json:"is_plural,omitempty"`
	PluralName       string           `json:"plural_name,omitempty"`
	IsHidden         bool             `json:"is_hidden,omitempty"`
	IsArchived       bool             `json:"is_archived,omitempty"`
	Context          string           `json:"context,omitempty"`
	CharLimit        int              `json:"char_limit,omitempty"`
	CustomAttributes string           `json:"custom_attributes,omitempty"`
}

// UpdateKeyRequest describes changes to one key. KeyID is only sent in
// bulk updates.
type UpdateKeyRequest struct {
	KeyID            int64            `json:"key_id,omitempty"`
	KeyName          *PlatformStrings `json:"key_name,omitempty"`
	Description      *string          `json:"description,omitempty"`
	Platforms        []string         `json:"platforms,omitempty"`
	Filenames        *PlatformStrings `json:"filenames,omitempty"`
	Tags             []string         `json:"tags,omitempty"`
	MergeTags        *bool            `json:"merge_tags,omitempty"`
	IsPlural         *bool            `json:"is_plural,omitempty"`
	PluralName       *string          `json:"plural_name,omitempty"`
	IsHidden         *bool            `json:"is_hidden,omitempty"`
	IsArchived       *bool            `json:"is_archived,omitempty"`
	Context          *string          `json:"context,omitempty"`
	CharLimit        *int             `json:"char_limit,omitempty"`
	CustomAttributes *string          `json:"custom_attributes,omitempty"`
}

// KeyError is a per-item failure in a bulk key response.
type KeyError struct {
	Message string          `json:"message"`
	Code    int             `json:"code"`
	Key     json.RawMessage `json:"key,omitempty"`
}

// BulkKeysResponse is the result of creating or updating keys in bulk.
type BulkKeysResponse struct {
	ProjectID string     `json:"project_id"`
	Keys      []Key      `json:"keys"`
	Errors    []KeyError `json:"errors,omitempty"`
}

// DeleteKeysResponse reports key deletions.
type DeleteKeysResponse struct {
	ProjectID   string `json:"project_id"`
	KeyRemoved  bool   `json:"key_removed,omitempty"`
	KeysRemoved bool   `json:"keys_removed,omitempty"`
	KeysLocked  int    `json:"keys_locked"`
}

// ListKeys lists keys in a project.
//
// Parameters:
//   - ctx: Context for cancellation
//   - projectID: The project ID
//   - params: Filters, includes and paging
//
// Returns:
//   - []Key: The page of keys
//   - Pagination: Paging state from the response headers
//   - error: Any error that occurred
func (c *Client) ListKeys(ctx context.Context, projectID string, params ListKeysParams) ([]Key, Pagination, error) {
	q := url.Values{}
	params.PageOptions.apply(q)
	if params.IncludeTranslations {
		q.Set("include_translations", "1")
	}
	if params.IncludeComments {
		q.Set("include_comments", "1")
	}
	if params.IncludeScreenshots {
		q.Set("include_screenshots", "1")
	}
	if params.FilterUntranslated {
		q.Set("filter_untranslated", "1")
	}
	setList(q, "filter_keys", params.FilterKeys)
	setList(q, "filter_key_ids", params.FilterKeyIDs)
	setList(q, "filter_tags", params.FilterTags)
	setList(q, "filter_platforms", params.FilterPlatforms)
	setList(q, "filter_filenames", params.FilterFilenames)
	setList(q, "filter_qa_issues", params.FilterQAIssues)
	setList(q, "filter_translation_lang_ids", params.FilterLangIDs)
	setString(q, "filter_archived", params.FilterArchived)

	var result struct {
		Keys []Key `json:"keys"`
	}
	page, err := c.do(ctx, http.MethodGet, projectPath(projectID, "keys"), q, nil, &result)
	if err != nil {
		return nil, page, err
	}
	return result.Keys, page, nil
}

// GetKey retrieves a key with its translations.
func (c *Client) GetKey(ctx context.Context, projectID string, keyID int64) (*Key, error) {
	q := url.Values{"disable_references": {"0"}}
	var result struct {
		Key Key `json:"key"`
	}
	if _, err := c.do(ctx, http.MethodGet, projectPath(projectID, "keys", id(keyID)), q, nil, &result); err != nil {
		return nil, err
	}
	return &result.Key, nil
}

// CreateKeys creates keys in bulk.
func (c *Client) CreateKeys(ctx context.Context, projectID string, keys []CreateKeyRequest, useAutomations bool) (*BulkKeysResponse, error) {
	body := map[string]any{"keys": keys}
	if useAutomations {
		body["use_automations"] = true
	}
	var result BulkKeysResponse
	if _, err := c.do(ctx, http.MethodPost, projectPath(projectID, "keys"), nil, body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateKey updates a single key.
func (c *Client) UpdateKey(ctx context.Context, projectID string, keyID int64, req *UpdateKeyRequest) (*Key, error) {
	req.KeyID = 0
	var result struct {
		Key Key `json:"key"`
	}
	if _, err := c.do(ctx, http.MethodPut, projectPath(projectID, "keys", id(keyID)), nil, req, &result); err != nil {
		return nil, err
	}
	return &result.Key, nil
}

// BulkUpdateKeys updates several keys in one request. Each entry must carry
// its KeyID.
func (c *Client) BulkUpdateKeys(ctx context.Context, projectID string, keys []UpdateKeyRequest) (*BulkKeysResponse, error) {
	body := map[string]any{"keys": keys}
	var result BulkKeysResponse
	if _, err := c.do(ctx, http.MethodPut, projectPath(projectID, "keys"), nil, body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteKey deletes a single key.
func (c *Client) DeleteKey(ctx context.Context, projectID string, keyID int64) (*DeleteKeysResponse, error) {
	var result DeleteKeysResponse
	if _, err := c.do(ctx, http.MethodDelete, projectPath(projectID, "keys", id(keyID)), nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// BulkDeleteKeys deletes several keys in one request.
func (c *Client) BulkDeleteKeys(ctx context.Context, projectID string, keyIDs []int64) (*DeleteKeysResponse, error) {
	body := map[string]any{"keys": keyIDs}
	var result DeleteKeysResponse
	if _, err := c.do(ctx, http.MethodDelete, projectPath(projectID, "keys"), nil, body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
