package infra

import (
	"net/http"

	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/interfaces"
)

// Clients bundles the external collaborators of the scan pipeline. Every
// field is injectable so tests can swap in mocks.
type Clients struct {
	fetcher    interfaces.SourceFetcher
	scanners   []interfaces.Scanner
	bqClient   interfaces.BigQuery
	jobRepo    interfaces.JobRepository
	vulnRepo   interfaces.VulnRepository
	progress   interfaces.ProgressSink
	httpClient HTTPClient
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{
		httpClient: http.DefaultClient,
		progress:   NewLogProgressSink(),
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) SourceFetcher() interfaces.SourceFetcher {
	return x.fetcher
}
func (x *Clients) Scanners() []interfaces.Scanner {
	return x.scanners
}
func (x *Clients) BigQuery() interfaces.BigQuery {
	return x.bqClient
}
func (x *Clients) JobRepository() interfaces.JobRepository {
	return x.jobRepo
}
func (x *Clients) VulnRepository() interfaces.VulnRepository {
	return x.vulnRepo
}
func (x *Clients) ProgressSink() interfaces.ProgressSink {
	return x.progress
}
func (x *Clients) HTTPClient() HTTPClient {
	return x.httpClient
}

func WithSourceFetcher(fetcher interfaces.SourceFetcher) Option {
	return func(x *Clients) {
		x.fetcher = fetcher
	}
}

func WithScanners(scanners ...interfaces.Scanner) Option {
	return func(x *Clients) {
		x.scanners = append(x.scanners, scanners...)
	}
}

func WithBigQuery(client interfaces.BigQuery) Option {
	return func(x *Clients) {
		x.bqClient = client
	}
}

func WithJobRepository(repo interfaces.JobRepository) Option {
	return func(x *Clients) {
		x.jobRepo = repo
	}
}

func WithVulnRepository(repo interfaces.VulnRepository) Option {
	return func(x *Clients) {
		x.vulnRepo = repo
	}
}

func WithProgressSink(sink interfaces.ProgressSink) Option {
	return func(x *Clients) {
		x.progress = sink
	}
}

func WithHTTPClient(client HTTPClient) Option {
	return func(x *Clients) {
		x.httpClient = client
	}
}
