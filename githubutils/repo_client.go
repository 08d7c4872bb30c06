package githubutils

import (
	"context"
	"net/http"
	"time"

	"github.com/avast/retry-go"
	"github.com/google/go-github/v32/github"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/ems-solar/release-tools/contextutils"
)

//go:generate mockgen -destination mocks/repo_client.go -package mocks github.com/ems-solar/release-tools/githubutils RepoClient

var (
	GetReleaseError = func(err error, tag string) error {
		return eris.Wrapf(err, "error getting release for tag %s", tag)
	}
	CreateReleaseError = func(err error, tag string) error {
		return eris.Wrapf(err, "error creating release for tag %s", tag)
	}
	ListReleasesError = func(err error) error {
		return eris.Wrapf(err, "error listing releases")
	}
)

var defaultRetryOpts = []retry.Option{
	retry.Attempts(3),
	retry.Delay(time.Second),
	retry.DelayType(retry.FixedDelay),
}

type ReleaseSpec struct {
	Tag   string
	Title string
}

type RepoClient interface {
	ReleaseExists(ctx context.Context, tag string) (bool, error)
	CreateRelease(ctx context.Context, spec ReleaseSpec) (*github.RepositoryRelease, error)
	FindLatestReleaseTag(ctx context.Context) (string, error)
}

type repoClient struct {
	client *github.Client
	owner  string
	repo   string
}

func NewRepoClient(client *github.Client, owner, repo string) RepoClient {
	return &repoClient{
		client: client,
		owner:  owner,
		repo:   repo,
	}
}

func (c *repoClient) ReleaseExists(ctx context.Context, tag string) (bool, error) {
	_, resp, err := c.client.Repositories.GetReleaseByTag(ctx, c.owner, c.repo, tag)
	if err == nil {
		return true, nil
	}
	if resp != nil && resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	return false, GetReleaseError(err, tag)
}

func (c *repoClient) CreateRelease(ctx context.Context, spec ReleaseSpec) (*github.RepositoryRelease, error) {
	var release *github.RepositoryRelease
	err := retry.Do(func() error {
		created, _, err := c.client.Repositories.CreateRelease(ctx, c.owner, c.repo, &github.RepositoryRelease{
			TagName: github.String(spec.Tag),
			Name:    github.String(spec.Title),
		})
		if err != nil {
			return err
		}
		release = created
		return nil
	}, defaultRetryOpts...)
	if err != nil {
		return nil, CreateReleaseError(err, spec.Tag)
	}
	contextutils.LoggerFrom(ctx).Infow("release created",
		zap.String("tag", spec.Tag),
		zap.String("url", release.GetHTMLURL()))
	return release, nil
}

func (c *repoClient) FindLatestReleaseTag(ctx context.Context) (string, error) {
	releases, _, err := c.client.Repositories.ListReleases(ctx, c.owner, c.repo, &github.ListOptions{})
	if err != nil {
		return "", ListReleasesError(err)
	}
	for _, release := range releases {
		if release.GetDraft() {
			continue
		}
		return release.GetTagName(), nil
	}
	return "", nil
}
