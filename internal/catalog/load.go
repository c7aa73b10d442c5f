package catalog

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

//go:embed seed/listings.json seed/agents.json
var seedFS embed.FS

// Dataset is the on-disk / on-wire shape of a seed source. The embedded
// seed keeps listings and agents in separate files; external sources carry
// both in one document.
type Dataset struct {
	Listings []Listing `json:"listings"`
	Agents   []Agent   `json:"agents"`
}

// LoadEmbedded builds the catalog from the compiled-in sample dataset.
func LoadEmbedded() (*Catalog, error) {
	var ds Dataset
	lb, err := seedFS.ReadFile("seed/listings.json")
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(lb, &ds.Listings); err != nil {
		return nil, fmt.Errorf("embedded listings: %w", err)
	}
	ab, err := seedFS.ReadFile("seed/agents.json")
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(ab, &ds.Agents); err != nil {
		return nil, fmt.Errorf("embedded agents: %w", err)
	}
	return New(ds.Listings, ds.Agents), nil
}

// LoadFile reads a Dataset document from disk.
func LoadFile(path string) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return fromDocument(b)
}

// LoadURL fetches a Dataset document over HTTP with retries.
func LoadURL(ctx context.Context, rawURL string) (*Catalog, error) {
	rc := retryablehttp.NewClient()
	rc.RetryWaitMin = 200 * time.Millisecond
	rc.RetryWaitMax = 2 * time.Second
	rc.RetryMax = 3
	rc.HTTPClient.Timeout = 10 * time.Second
	rc.Logger = nil

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("accept", "application/json")

	resp, err := rc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("seed source error %d", resp.StatusCode)
	}
	b, err := readAllLimit(resp.Body, 8<<20) // 8MB guard
	if err != nil {
		return nil, err
	}
	return fromDocument(b)
}

// LoadSource dispatches on the source string: empty means the embedded
// seed, an http(s) URL is fetched, anything else is a file path.
func LoadSource(ctx context.Context, source string) (*Catalog, error) {
	switch {
	case source == "":
		return LoadEmbedded()
	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		return LoadURL(ctx, source)
	default:
		return LoadFile(source)
	}
}

func fromDocument(b []byte) (*Catalog, error) {
	var ds Dataset
	if err := json.Unmarshal(b, &ds); err != nil {
		return nil, fmt.Errorf("seed document: %w", err)
	}
	if len(ds.Listings) == 0 {
		return nil, errors.New("seed document has no listings")
	}
	return New(ds.Listings, ds.Agents), nil
}

// Validate reports data problems as warnings. Bad references are tolerated
// at runtime (lookups just miss), so none of these are fatal.
func (c *Catalog) Validate() []string {
	var warns []string
	for _, l := range c.listings {
		if !l.Type.Valid() {
			warns = append(warns, fmt.Sprintf("listing %s: unknown type %q", l.ID, l.Type))
		}
		if len(l.Images) == 0 {
			warns = append(warns, fmt.Sprintf("listing %s: no images", l.ID))
		}
		if l.Price < 0 {
			warns = append(warns, fmt.Sprintf("listing %s: negative price", l.ID))
		}
		if l.AreaSqft <= 0 {
			warns = append(warns, fmt.Sprintf("listing %s: non-positive area", l.ID))
		}
		if _, ok := c.agentByID[l.AgentID]; !ok {
			warns = append(warns, fmt.Sprintf("listing %s: unresolvable agent %q", l.ID, l.AgentID))
		}
	}
	for _, a := range c.agents {
		if a.Rating < 0 || a.Rating > 5 {
			warns = append(warns, fmt.Sprintf("agent %s: rating %.1f out of range", a.ID, a.Rating))
		}
	}
	return warns
}

func readAllLimit(r io.Reader, limit int64) ([]byte, error) {
	b, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(b)) > limit {
		return nil, errors.New("payload too large")
	}
	return b, nil
}
