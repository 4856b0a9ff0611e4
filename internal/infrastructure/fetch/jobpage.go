package fetch

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"
)

var ErrEmptyPage = errors.New("page yielded no content")

// JobPage is the raw content of one job posting page before any parsing.
type JobPage struct {
	URL         string
	Title       string
	Description string
}

type PageFetcher interface {
	FetchJobPage(ctx context.Context, pageURL string) (JobPage, error)
}

// CollyFetcher pulls a single posting page over HTTP. JavaScript-rendered
// boards are out of reach here; the import endpoint documents that limit.
type CollyFetcher struct{}

func NewCollyFetcher() *CollyFetcher {
	return &CollyFetcher{}
}

func (f *CollyFetcher) FetchJobPage(ctx context.Context, pageURL string) (JobPage, error) {
	pageURL = strings.TrimSpace(pageURL)
	host := hostFromURL(pageURL)
	if host == "" {
		return JobPage{}, fmt.Errorf("invalid url: %s", pageURL)
	}

	c := colly.NewCollector(colly.AllowedDomains(host))
	_ = c.Limit(&colly.LimitRule{DomainGlob: "*", Parallelism: 1, Delay: 300 * time.Millisecond})

	out := JobPage{URL: pageURL}
	var reqErr error

	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36")
		r.Headers.Set("Accept-Language", "en-US,en;q=0.9")
	})

	c.OnHTML("h1", func(e *colly.HTMLElement) {
		if out.Title == "" {
			out.Title = strings.TrimSpace(e.Text)
		}
	})
	c.OnHTML("title", func(e *colly.HTMLElement) {
		if out.Title == "" {
			out.Title = strings.TrimSpace(e.Text)
		}
	})
	c.OnHTML("body", func(e *colly.HTMLElement) {
		out.Description = strings.TrimSpace(e.Text)
	})

	c.OnError(func(r *colly.Response, err error) {
		reqErr = err
	})

	if ctx.Err() != nil {
		return JobPage{}, ctx.Err()
	}
	if err := c.Visit(pageURL); err != nil {
		return JobPage{}, err
	}
	c.Wait()
	if reqErr != nil {
		return JobPage{}, reqErr
	}

	if out.Title == "" && out.Description == "" {
		return JobPage{}, ErrEmptyPage
	}
	return out, nil
}

func hostFromURL(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return ""
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ""
	}
	return u.Hostname()
}
