package keys

import (
	"strconv"

	"github.com/lokalise/lokalise-mcp/internal/api"
	"github.com/lokalise/lokalise-mcp/internal/apperr"
	"github.com/lokalise/lokalise-mcp/internal/domain"
)

// Batch limits for the bulk endpoints.
const (
	MaxCreate = 1000
	MaxUpdate = 1000
	MaxDelete = 1000
)

var platforms = []string{"ios", "android", "web", "other"}

func validPlatforms(name string, values []string) error {
	for _, p := range values {
		if err := domain.OneOf(name, p, platforms...); err != nil {
			return err
		}
	}
	return nil
}

// ListArgs are the arguments of list-keys.
type ListArgs struct {
	ProjectID           string   `json:"projectId" jsonschema:"Project ID"`
	Limit               *int     `json:"limit,omitempty" jsonschema:"Number of keys to return (1-5000, default 100)"`
	Page                *int     `json:"page,omitempty" jsonschema:"Page number, starting at 1"`
	Cursor              string   `json:"cursor,omitempty" jsonschema:"Cursor from a previous page; switches to cursor pagination"`
	IncludeTranslations bool     `json:"includeTranslations,omitempty" jsonschema:"Include translations of every key"`
	FilterKeys          []string `json:"filterKeys,omitempty" jsonschema:"Only keys with these names"`
	FilterTags          []string `json:"filterTags,omitempty" jsonschema:"Only keys with these tags"`
	FilterPlatforms     []string `json:"filterPlatforms,omitempty" jsonschema:"Only keys on these platforms: ios, android, web, other"`
	FilterFilenames     []string `json:"filterFilenames,omitempty" jsonschema:"Only keys attached to these filenames"`
	FilterUntranslated  bool     `json:"filterUntranslated,omitempty" jsonschema:"Only keys with at least one untranslated language"`
	FilterArchived      string   `json:"filterArchived,omitempty" jsonschema:"include, exclude (default) or only"`

	limit, page int
}

// Validate checks ranges and fills defaults.
func (a *ListArgs) Validate() error {
	if err := domain.ProjectID(a.ProjectID); err != nil {
		return err
	}
	var err error
	if a.limit, a.page, err = domain.Paging(a.Limit, a.Page, domain.MaxKeyLimit); err != nil {
		return err
	}
	if err := validPlatforms("filterPlatforms", a.FilterPlatforms); err != nil {
		return err
	}
	return domain.OneOf("filterArchived", a.FilterArchived, "include", "exclude", "only")
}

func (a ListArgs) params() api.ListKeysParams {
	return api.ListKeysParams{
		PageOptions:         api.PageOptions{Limit: a.limit, Page: a.page, Cursor: a.Cursor},
		IncludeTranslations: a.IncludeTranslations,
		FilterKeys:          a.FilterKeys,
		FilterTags:          a.FilterTags,
		FilterPlatforms:     a.FilterPlatforms,
		FilterFilenames:     a.FilterFilenames,
		FilterUntranslated:  a.FilterUntranslated,
		FilterArchived:      a.FilterArchived,
	}
}

// GetArgs identify one key.
type GetArgs struct {
	ProjectID string `json:"projectId" jsonschema:"Project ID"`
	KeyID     int64  `json:"keyId" jsonschema:"Key ID"`
}

// Validate checks the identifiers.
func (a *GetArgs) Validate() error {
	if err := domain.ProjectID(a.ProjectID); err != nil {
		return err
	}
	return domain.ID("keyId", a.KeyID)
}

// TranslationInput is a translation supplied with a new key.
type TranslationInput struct {
	LanguageISO  string `json:"languageIso" jsonschema:"Language code"`
	Translation  string `json:"translation" jsonschema:"Translation text"`
	IsReviewed   *bool  `json:"isReviewed,omitempty" jsonschema:"Mark as reviewed"`
	IsUnverified *bool  `json:"isUnverified,omitempty" jsonschema:"Mark as unverified"`
}

// KeyInput describes a key to create.
type KeyInput struct {
	KeyName      string             `json:"keyName" jsonschema:"Key name"`
	Platforms    []string           `json:"platforms" jsonschema:"Platforms: ios, android, web, other"`
	Description  string             `json:"description,omitempty" jsonschema:"Key description for translators"`
	Filename     string             `json:"filename,omitempty" jsonschema:"Filename the key belongs to on every platform"`
	Tags         []string           `json:"tags,omitempty" jsonschema:"Tags"`
	Translations []TranslationInput `json:"translations,omitempty" jsonschema:"Initial translations"`
	IsPlural     bool               `json:"isPlural,omitempty" jsonschema:"Key has plural forms"`
	IsHidden     bool               `json:"isHidden,omitempty" jsonschema:"Hide the key from contributors"`
	Context      string             `json:"context,omitempty" jsonschema:"Context for translators"`
	CharLimit    int                `json:"charLimit,omitempty" jsonschema:"Maximum translation length"`
}

func (k KeyInput) validate(i int) error {
	prefix := "keys[" + strconv.Itoa(i) + "]"
	if err := domain.Required(prefix+".keyName", k.KeyName); err != nil {
		return err
	}
	if len(k.Platforms) == 0 {
		return apperr.Validation("%s.platforms must name at least one platform", prefix)
	}
	if err := validPlatforms(prefix+".platforms", k.Platforms); err != nil {
		return err
	}
	for _, t := range k.Translations {
		if err := domain.Required(prefix+".translations[].languageIso", t.LanguageISO); err != nil {
			return err
		}
	}
	if k.CharLimit < 0 {
		return apperr.Validation("%s.charLimit must not be negative", prefix)
	}
	return nil
}

func (k KeyInput) request() api.CreateKeyRequest {
	req := api.CreateKeyRequest{
		KeyName:     api.Same(k.KeyName),
		Description: k.Description,
		Platforms:   k.Platforms,
		Tags:        k.Tags,
		IsPlural:    k.IsPlural,
		IsHidden:    k.IsHidden,
		Context:     k.Context,
		CharLimit:   k.CharLimit,
	}
	if k.Filename != "" {
		f := api.Same(k.Filename)
		req.Filenames = &f
	}
	for _, t := range k.Translations {
		req.Translations = append(req.Translations, api.NewTranslation{
			LanguageISO:  t.LanguageISO,
			Translation:  t.Translation,
			IsReviewed:   t.IsReviewed,
			IsUnverified: t.IsUnverified,
		})
	}
	return req
}

// CreateArgs are the arguments of create-keys.
type CreateArgs struct {
	ProjectID      string     `json:"projectId" jsonschema:"Project ID"`
	Keys           []KeyInput `json:"keys" jsonschema:"Keys to create (1-1000)"`
	UseAutomations bool       `json:"useAutomations,omitempty" jsonschema:"Run project automations such as machine translation"`
}

// Validate checks the batch.
func (a *CreateArgs) Validate() error {
	if err := domain.ProjectID(a.ProjectID); err != nil {
		return err
	}
	if err := domain.Count("keys", len(a.Keys), 1, MaxCreate); err != nil {
		return err
	}
	for i, k := range a.Keys {
		if err := k.validate(i); err != nil {
			return err
		}
	}
	return nil
}

func (a CreateArgs) requests() []api.CreateKeyRequest {
	out := make([]api.CreateKeyRequest, len(a.Keys))
	for i, k := range a.Keys {
		out[i] = k.request()
	}
	return out
}

// KeyChanges are the editable properties of a key. Unset fields are left
// unchanged.
type KeyChanges struct {
	KeyName     *string  `json:"keyName,omitempty" jsonschema:"New key name on every platform"`
	Description *string  `json:"description,omitempty" jsonschema:"New description"`
	Platforms   []string `json:"platforms,omitempty" jsonschema:"Replace platforms"`
	Tags        []string `json:"tags,omitempty" jsonschema:"Tags to set"`
	MergeTags   *bool    `json:"mergeTags,omitempty" jsonschema:"Add tags to the existing ones instead of replacing them"`
	IsHidden    *bool    `json:"isHidden,omitempty" jsonschema:"Hide or show the key"`
	IsArchived  *bool    `json:"isArchived,omitempty" jsonschema:"Archive or restore the key"`
	Context     *string  `json:"context,omitempty" jsonschema:"New context"`
	CharLimit   *int     `json:"charLimit,omitempty" jsonschema:"New character limit"`
}

// IsZero reports whether no change is requested.
func (c KeyChanges) IsZero() bool {
	return c.KeyName == nil && c.Description == nil && len(c.Platforms) == 0 && len(c.Tags) == 0 &&
		c.MergeTags == nil && c.IsHidden == nil && c.IsArchived == nil && c.Context == nil && c.CharLimit == nil
}

func (c KeyChanges) validate(prefix string) error {
	if c.IsZero() {
		return apperr.Validation("%s must change at least one field", prefix)
	}
	if c.KeyName != nil {
		if err := domain.Required(prefix+".keyName", *c.KeyName); err != nil {
			return err
		}
	}
	return validPlatforms(prefix+".platforms", c.Platforms)
}

func (c KeyChanges) request(keyID int64) api.UpdateKeyRequest {
	req := api.UpdateKeyRequest{
		KeyID:       keyID,
		Description: c.Description,
		Platforms:   c.Platforms,
		Tags:        c.Tags,
		MergeTags:   c.MergeTags,
		IsHidden:    c.IsHidden,
		IsArchived:  c.IsArchived,
		Context:     c.Context,
		CharLimit:   c.CharLimit,
	}
	if c.KeyName != nil {
		n := api.Same(*c.KeyName)
		req.KeyName = &n
	}
	return req
}

// UpdateArgs are the arguments of update-key.
type UpdateArgs struct {
	ProjectID string     `json:"projectId" jsonschema:"Project ID"`
	KeyID     int64      `json:"keyId" jsonschema:"Key ID"`
	Data      KeyChanges `json:"data" jsonschema:"Fields to change"`
}

// Validate checks identifiers and that something changes.
func (a *UpdateArgs) Validate() error {
	if err := domain.ProjectID(a.ProjectID); err != nil {
		return err
	}
	if err := domain.ID("keyId", a.KeyID); err != nil {
		return err
	}
	return a.Data.validate("data")
}

// KeyUpdate is one entry of a bulk key update.
type KeyUpdate struct {
	KeyID int64      `json:"keyId" jsonschema:"Key ID"`
	Data  KeyChanges `json:"data" jsonschema:"Fields to change"`
}

// BulkUpdateArgs are the arguments of bulk-update-keys.
type BulkUpdateArgs struct {
	ProjectID string      `json:"projectId" jsonschema:"Project ID"`
	Keys      []KeyUpdate `json:"keys" jsonschema:"Key updates (1-1000)"`
}

// Validate checks the batch.
func (a *BulkUpdateArgs) Validate() error {
	if err := domain.ProjectID(a.ProjectID); err != nil {
		return err
	}
	if err := domain.Count("keys", len(a.Keys), 1, MaxUpdate); err != nil {
		return err
	}
	for i, k := range a.Keys {
		prefix := "keys[" + strconv.Itoa(i) + "]"
		if err := domain.ID(prefix+".keyId", k.KeyID); err != nil {
			return err
		}
		if err := k.Data.validate(prefix + ".data"); err != nil {
			return err
		}
	}
	return nil
}

func (a BulkUpdateArgs) requests() []api.UpdateKeyRequest {
	out := make([]api.UpdateKeyRequest, len(a.Keys))
	for i, k := range a.Keys {
		out[i] = k.Data.request(k.KeyID)
	}
	return out
}

// BulkDeleteArgs are the arguments of bulk-delete-keys.
type BulkDeleteArgs struct {
	ProjectID string  `json:"projectId" jsonschema:"Project ID"`
	KeyIDs    []int64 `json:"keyIds" jsonschema:"Key IDs to delete (1-1000)"`
}

// Validate checks the batch.
func (a *BulkDeleteArgs) Validate() error {
	if err := domain.ProjectID(a.ProjectID); err != nil {
		return err
	}
	return domain.IDs("keyIds", a.KeyIDs, 1, MaxDelete)
}
