// Package routes resolves published URLs for synced documentation pages via
// a go-urlkit route manager, so logs and previews can point at the location
// the static-site generator will serve.
package routes

import (
	"fmt"
	"strings"

	urlkit "github.com/goliatone/go-urlkit"
)

const (
	siteGroup    = "site"
	patternRoute = "pattern"
	slugParam    = "slug"
)

// Resolver builds routed URLs for pattern pages. A zero BaseURL yields
// site-relative paths, which is the default for locally generated output.
type Resolver struct {
	manager *urlkit.RouteManager
}

// NewResolver constructs a resolver for the documentation site's routing
// scheme. BaseURL may be empty.
func NewResolver(baseURL string) *Resolver {
	manager := urlkit.NewRouteManager(&urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    siteGroup,
				BaseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
				Paths: map[string]string{
					patternRoute: "/patterns/:slug",
				},
			},
		},
	})
	return &Resolver{manager: manager}
}

// PageURL resolves the published location for a pattern slug.
func (r *Resolver) PageURL(slug string) (string, error) {
	if r == nil || r.manager == nil {
		return "", fmt.Errorf("routes: resolver not configured")
	}

	group, err := lookupGroup(r.manager, siteGroup)
	if err != nil {
		return "", err
	}

	builder, err := safeBuilder(group, patternRoute)
	if err != nil {
		return "", err
	}

	builder.WithParam(slugParam, slug)
	url, err := builder.Build()
	if err != nil {
		return "", fmt.Errorf("routes: build pattern url: %w", err)
	}
	return url, nil
}

func lookupGroup(manager *urlkit.RouteManager, name string) (group *urlkit.Group, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("routes: route group %q not found", name)
		}
	}()
	group = manager.Group(name)
	return group, err
}

func safeBuilder(group *urlkit.Group, route string) (builder *urlkit.Builder, err error) {
	if group == nil {
		return nil, fmt.Errorf("routes: urlkit group is nil")
	}
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("routes: urlkit builder panic: %v", rec)
		}
	}()
	builder = group.Builder(route)
	return builder, err
}
