package domain

import (
	"errors"
	"fmt"
)

// Placeholders shown when the API omits optional repository fields.
const (
	DescriptionPlaceholder = "No description provided"
	LanguagePlaceholder    = "Unknown"
)

// RepositoryItem is a read-only projection of one search hit.
type RepositoryItem struct {
	id          int64
	name        string
	fullName    string
	htmlURL     string
	ownerLogin  string
	avatarURL   string
	description *string
	language    *string
	starCount   int
}

// RepositoryItemParams holds the raw values used to build a RepositoryItem.
type RepositoryItemParams struct {
	ID          int64
	Name        string
	FullName    string
	HTMLURL     string
	OwnerLogin  string
	AvatarURL   string
	Description *string
	Language    *string
	StarCount   int
}

// NewRepositoryItem validates the params and creates a RepositoryItem.
// Empty optional strings are treated as absent.
func NewRepositoryItem(p RepositoryItemParams) (RepositoryItem, error) {
	if p.ID == 0 {
		return RepositoryItem{}, errors.New("repository id cannot be empty")
	}
	if p.Name == "" {
		return RepositoryItem{}, fmt.Errorf("repository %d has no name", p.ID)
	}
	if p.StarCount < 0 {
		return RepositoryItem{}, fmt.Errorf("repository %d has negative star count: %d", p.ID, p.StarCount)
	}

	return RepositoryItem{
		id:          p.ID,
		name:        p.Name,
		fullName:    p.FullName,
		htmlURL:     p.HTMLURL,
		ownerLogin:  p.OwnerLogin,
		avatarURL:   p.AvatarURL,
		description: nonEmpty(p.Description),
		language:    nonEmpty(p.Language),
		starCount:   p.StarCount,
	}, nil
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	v := *s
	return &v
}

// ID returns the repository's unique identifier.
func (r RepositoryItem) ID() int64 {
	return r.id
}

// Name returns the repository name.
func (r RepositoryItem) Name() string {
	return r.name
}

// FullName returns owner/name, falling back to the bare name.
func (r RepositoryItem) FullName() string {
	if r.fullName != "" {
		return r.fullName
	}
	if r.ownerLogin != "" {
		return r.ownerLogin + "/" + r.name
	}
	return r.name
}

// HTMLURL returns the web URL of the repository.
func (r RepositoryItem) HTMLURL() string {
	return r.htmlURL
}

// OwnerLogin returns the owner's login.
func (r RepositoryItem) OwnerLogin() string {
	return r.ownerLogin
}

// AvatarURL returns the owner's avatar URL.
func (r RepositoryItem) AvatarURL() string {
	return r.avatarURL
}

// HasDescription reports whether the API returned a description.
func (r RepositoryItem) HasDescription() bool {
	return r.description != nil
}

// Description returns the description or DescriptionPlaceholder.
func (r RepositoryItem) Description() string {
	if r.description == nil {
		return DescriptionPlaceholder
	}
	return *r.description
}

// HasLanguage reports whether the API returned a primary language.
func (r RepositoryItem) HasLanguage() bool {
	return r.language != nil
}

// Language returns the primary language or LanguagePlaceholder.
func (r RepositoryItem) Language() string {
	if r.language == nil {
		return LanguagePlaceholder
	}
	return *r.language
}

// StarCount returns the number of stargazers.
func (r RepositoryItem) StarCount() int {
	return r.starCount
}
