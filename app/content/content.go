// Package content loads the copy of the marketing landing page.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var defaultContent []byte

// Icons lists the supported feature icon names.
var Icons = []string{"link", "chart", "sliders", "qr", "lock", "bolt"}

// Colors lists the supported feature accent colors.
var Colors = []string{"blue", "purple", "green", "orange", "red", "indigo"}

// Content is the landing page copy.
type Content struct {
	Brand            string    `yaml:"brand"`
	Title            string    `yaml:"title"`       // document title
	Description      string    `yaml:"description"` // meta description
	Hero             Hero      `yaml:"hero"`
	FeaturesTitle    string    `yaml:"features_title"`
	FeaturesSubtitle string    `yaml:"features_subtitle"`
	Features         []Feature `yaml:"features"`
	CTA              CTA       `yaml:"cta"`
	Footer           string    `yaml:"footer"` // {{year}} is replaced with the current year
}

// Hero is the top section of the landing page.
type Hero struct {
	Title     string `yaml:"title"`
	Highlight string `yaml:"highlight"`
	Subtitle  string `yaml:"subtitle"`
	Primary   string `yaml:"primary"`   // sign-up button label
	Secondary string `yaml:"secondary"` // sign-in button label
}

// Feature is a single feature card.
type Feature struct {
	Title string `yaml:"title"`
	Text  string `yaml:"text"`
	Icon  string `yaml:"icon"`
	Color string `yaml:"color"`
}

// CTA is the call-to-action section.
type CTA struct {
	Title  string `yaml:"title"`
	Text   string `yaml:"text"`
	Button string `yaml:"button"`
}

// Default returns the embedded content.
func Default() (Content, error) {
	var c Content
	if err := yaml.Unmarshal(defaultContent, &c); err != nil {
		return Content{}, fmt.Errorf("failed to parse embedded content: %w", err)
	}
	return c, nil
}

// Load returns the embedded content with the file at path applied over it.
// Fields missing in the file keep their defaults, a features list in the file replaces the default one.
func Load(path string) (Content, error) {
	c, err := Default()
	if err != nil {
		return Content{}, err
	}
	if path != "" {
		data, err := os.ReadFile(path) //nolint:gosec // path comes from the operator
		if err != nil {
			return Content{}, fmt.Errorf("failed to read content file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &c); err != nil {
			return Content{}, fmt.Errorf("failed to parse content file %s: %w", path, err)
		}
	}
	if err := c.Validate(); err != nil {
		return Content{}, fmt.Errorf("invalid content: %w", err)
	}
	return c, nil
}

// Validate checks required fields and the icon and color names of every feature.
func (c Content) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Brand) == "" {
		errs = append(errs, errors.New("brand is required"))
	}
	if len(c.Features) == 0 {
		errs = append(errs, errors.New("at least one feature is required"))
	}
	for i, f := range c.Features {
		if strings.TrimSpace(f.Title) == "" {
			errs = append(errs, fmt.Errorf("feature %d: title is required", i+1))
		}
		if !slices.Contains(Icons, f.Icon) {
			errs = append(errs, fmt.Errorf("feature %d: unknown icon %q", i+1, f.Icon))
		}
		if !slices.Contains(Colors, f.Color) {
			errs = append(errs, fmt.Errorf("feature %d: unknown color %q", i+1, f.Color))
		}
	}
	return errors.Join(errs...)
}

// FooterText returns the footer with the year placeholder filled in.
func (c Content) FooterText(now time.Time) string {
	return strings.ReplaceAll(c.Footer, "{{year}}", strconv.Itoa(now.Year()))
}
