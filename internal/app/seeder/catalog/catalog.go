// Package catalog parses story catalog files into domain stories.
// Pure function: YAML in, domain structs out. No database dependencies.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/storyreader-backend/internal/domain"
	"github.com/heartmarshall/storyreader-backend/internal/text/segment"
)

//go:embed stories.yaml
var bundled []byte

// WordsPerMinute is the reading pace used to estimate reading time.
const WordsPerMinute = 45

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

type file struct {
	Stories []entry `yaml:"stories"`
}

type entry struct {
	Slug        string `yaml:"slug"`
	Title       string `yaml:"title"`
	Difficulty  string `yaml:"difficulty"`
	Description string `yaml:"description"`
	Content     string `yaml:"content"`
}

// Bundled returns the stories shipped with the binary.
func Bundled() ([]domain.Story, error) {
	stories, err := Parse(bytes.NewReader(bundled))
	if err != nil {
		return nil, fmt.Errorf("catalog: bundled: %w", err)
	}
	return stories, nil
}

// Load reads the catalog file at path.
func Load(path string) ([]domain.Story, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open %q: %w", path, err)
	}
	defer f.Close()

	stories, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("catalog: parse %q: %w", path, err)
	}
	return stories, nil
}

// Parse decodes a catalog from r, validates every entry and computes word
// counts and reading times from the content. All entry errors are reported
// together.
func Parse(r io.Reader) ([]domain.Story, error) {
	var f file
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return []domain.Story{}, nil
		}
		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	var errs []error
	seen := make(map[string]int, len(f.Stories))
	stories := make([]domain.Story, 0, len(f.Stories))

	for i, e := range f.Stories {
		if err := e.validate(); err != nil {
			errs = append(errs, fmt.Errorf("stories[%d] %q: %w", i, e.Slug, err))
			continue
		}
		if prev, dup := seen[e.Slug]; dup {
			errs = append(errs, fmt.Errorf("stories[%d] %q: duplicate slug (first at stories[%d])", i, e.Slug, prev))
			continue
		}
		seen[e.Slug] = i
		stories = append(stories, e.story())
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return stories, nil
}

func (e entry) validate() error {
	var errs []error
	if !slugPattern.MatchString(e.Slug) {
		errs = append(errs, errors.New("slug must be lowercase words joined by hyphens"))
	}
	if strings.TrimSpace(e.Title) == "" {
		errs = append(errs, errors.New("title is required"))
	}
	if !domain.Difficulty(e.Difficulty).IsValid() {
		errs = append(errs, fmt.Errorf("unknown difficulty %q", e.Difficulty))
	}
	if len(segment.Segment(e.Content).Words) == 0 {
		errs = append(errs, errors.New("content has no words"))
	}
	return errors.Join(errs...)
}

func (e entry) story() domain.Story {
	words := len(segment.Segment(e.Content).Words)
	return domain.Story{
		Slug:               e.Slug,
		Title:              strings.TrimSpace(e.Title),
		Difficulty:         domain.Difficulty(e.Difficulty),
		Description:        strings.TrimSpace(e.Description),
		WordCount:          words,
		ReadingTimeMinutes: ReadingTime(words),
		Content:            e.Content,
	}
}

// ReadingTime estimates whole minutes to read words at WordsPerMinute,
// never less than one.
func ReadingTime(words int) int {
	return max(1, int(math.Ceil(float64(words)/WordsPerMinute)))
}
