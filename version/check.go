package version

import (
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/Masterminds/semver/v3"

	"github.com/tsforge/tsforge/errors"
	"github.com/tsforge/tsforge/internal/httpclient"
)

// packageName is the published npm package checked for newer releases
const packageName = "tsforge"

// CheckResult describes how the running build compares to the latest
// published release
type CheckResult struct {
	Current         string `json:"current"`
	Latest          string `json:"latest"`
	UpdateAvailable bool   `json:"update_available"`
}

// String renders the check result for terminal output
func (r CheckResult) String() string {
	if r.UpdateAvailable {
		return fmt.Sprintf("update available: %s -> %s", r.Current, r.Latest)
	}
	return fmt.Sprintf("up to date (%s)", r.Current)
}

// registryDoc is the subset of the npm registry response we read
type registryDoc struct {
	DistTags struct {
		Latest string `json:"latest"`
	} `json:"dist-tags"`
}

// Checker queries a package registry for the latest published version
type Checker struct {
	baseURL string
	client  *httpclient.SaferClient
}

// NewChecker creates a checker against the given registry base URL
func NewChecker(baseURL string, timeout time.Duration) *Checker {
	return &Checker{
		baseURL: baseURL,
		client:  httpclient.New(timeout),
	}
}

// NewCheckerWithClient creates a checker with a caller-supplied client
// (tests use this with an httptest server)
func NewCheckerWithClient(baseURL string, client *httpclient.SaferClient) *Checker {
	return &Checker{baseURL: baseURL, client: client}
}

// LatestVersion fetches the latest published version from the registry
func (c *Checker) LatestVersion() (string, error) {
	endpoint, err := url.JoinPath(c.baseURL, packageName)
	if err != nil {
		return "", errors.Wrap(err, "failed to build registry URL")
	}

	resp, err := c.client.Get(endpoint)
	if err != nil {
		return "", errors.Wrap(err, "registry request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return "", errors.Newf("registry returned status %d", resp.StatusCode)
	}

	var doc registryDoc
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return "", errors.Wrap(err, "failed to decode registry response")
	}
	if doc.DistTags.Latest == "" {
		return "", errors.New("registry response has no latest dist-tag")
	}

	return doc.DistTags.Latest, nil
}

// Check compares the running build against the latest published release.
// Dev builds have no comparable version and always report an available
// update when the registry answers.
func (c *Checker) Check() (*CheckResult, error) {
	latest, err := c.LatestVersion()
	if err != nil {
		return nil, err
	}

	result := &CheckResult{
		Current: Version,
		Latest:  latest,
	}

	current, err := semver.NewVersion(Version)
	if err != nil {
		// "dev" and other untagged builds
		result.UpdateAvailable = true
		return result, nil
	}

	latestVersion, err := semver.NewVersion(latest)
	if err != nil {
		return nil, errors.Wrapf(err, "registry returned unparseable version %q", latest)
	}

	result.UpdateAvailable = latestVersion.GreaterThan(current)
	return result, nil
}
