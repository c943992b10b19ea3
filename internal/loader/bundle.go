// Package loader decodes site content bundles from YAML or JSON, for the
// admin import endpoints and the content file sync. Decoded bundles are
// normalized before they reach storage: ids are slug-trimmed, entries
// without an id are dropped, and an empty bundle is an error.
package loader

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"portfolio/internal/domain"
)

// Format identifies the encoding of a bundle document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForPath guesses the bundle format from a file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported bundle extension %q", filepath.Ext(path))
	}
}

// DecodeBundle reads one bundle document from r.
func DecodeBundle(r io.Reader, format Format) (*domain.SiteBundle, error) {
	var bundle domain.SiteBundle

	switch format {
	case FormatJSON:
		decoder := json.NewDecoder(r)
		if err := decoder.Decode(&bundle); err != nil {
			return nil, fmt.Errorf("decode json bundle: %w", err)
		}
	case FormatYAML:
		decoder := yaml.NewDecoder(r)
		if err := decoder.Decode(&bundle); err != nil {
			return nil, fmt.Errorf("decode yaml bundle: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported bundle format %q", format)
	}

	if err := normalize(&bundle); err != nil {
		return nil, err
	}
	return &bundle, nil
}

// LoadFile reads a bundle from disk, picking the format by extension.
func LoadFile(path string) (*domain.SiteBundle, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open bundle file: %w", err)
	}
	defer f.Close()

	return DecodeBundle(f, format)
}

func normalize(bundle *domain.SiteBundle) error {
	bundle.Profile.Name = strings.TrimSpace(bundle.Profile.Name)
	bundle.Profile.Title = strings.TrimSpace(bundle.Profile.Title)

	socials := bundle.Socials[:0]
	for i, s := range bundle.Socials {
		s.Platform = strings.TrimSpace(s.Platform)
		s.URL = strings.TrimSpace(s.URL)
		if s.Platform == "" || s.URL == "" {
			continue
		}
		if s.SortOrder == 0 {
			s.SortOrder = i + 1
		}
		socials = append(socials, s)
	}
	bundle.Socials = socials

	bundle.Projects = filterByID(bundle.Projects, func(p domain.Project) string { return p.ID })
	bundle.Offers = filterByID(bundle.Offers, func(o domain.OfferPackage) string { return o.ID })
	bundle.Retainers = filterByID(bundle.Retainers, func(r domain.RetainerPlan) string { return r.ID })
	bundle.CaseStudies = filterByID(bundle.CaseStudies, func(c domain.CaseStudy) string { return c.ID })
	bundle.ServicePages = filterByID(bundle.ServicePages, func(s domain.ServiceLandingPage) string { return s.ID })
	bundle.BlogPosts = filterByID(bundle.BlogPosts, func(b domain.BlogPost) string { return b.ID })

	if empty(bundle) {
		return fmt.Errorf("bundle has no content")
	}
	return nil
}

// filterByID drops entries whose id trims to empty.
func filterByID[T any](items []T, id func(T) string) []T {
	kept := items[:0]
	for _, item := range items {
		if strings.TrimSpace(id(item)) == "" {
			continue
		}
		kept = append(kept, item)
	}
	return kept
}

func empty(bundle *domain.SiteBundle) bool {
	return bundle.Profile.Name == "" &&
		len(bundle.Socials) == 0 &&
		len(bundle.Projects) == 0 &&
		len(bundle.Offers) == 0 &&
		len(bundle.Retainers) == 0 &&
		len(bundle.CaseStudies) == 0 &&
		len(bundle.ServicePages) == 0 &&
		len(bundle.BlogPosts) == 0
}
