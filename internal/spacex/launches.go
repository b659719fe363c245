package spacex

import (
	"context"
	"iter"
	"time"

	"launchdeck/internal/models"
)

// launchDoc is the shape of a launch document as selected from the API.
type launchDoc struct {
	ID       string   `json:"id"`
	DateUnix int64    `json:"date_unix"`
	Payloads []string `json:"payloads"`
}

func (d launchDoc) toLaunch() models.Launch {
	return models.Launch{
		ID:         d.ID,
		LaunchTime: time.Unix(d.DateUnix, 0).UTC(),
		PayloadIDs: d.Payloads,
	}
}

// Launches returns a lazy sequence of launches whose date falls inside the
// range, in the order the service returns them. Pages are fetched on
// demand, so a consumer that stops early does not force full retrieval.
// The sequence ends after yielding a non-nil error.
func (c *Client) Launches(ctx context.Context, r models.DateRange) iter.Seq2[models.Launch, error] {
	return func(yield func(models.Launch, error) bool) {
		pageNum := 1
		for {
			body := queryRequest{
				Query: dateFilter(r),
				Options: queryOptions{
					Select:     []string{"id", "date_unix", "payloads"},
					Page:       pageNum,
					Limit:      c.pageSize,
					Pagination: true,
				},
			}

			var pg page[launchDoc]
			if err := c.postQuery(ctx, "launches/query", body, &pg); err != nil {
				yield(models.Launch{}, err)
				return
			}

			for _, doc := range pg.Docs {
				if !yield(doc.toLaunch(), nil) {
					return
				}
			}

			if !pg.HasNextPage || pg.NextPage == nil {
				return
			}
			pageNum = *pg.NextPage
		}
	}
}

// FetchLaunches drains Launches into a slice, following pagination until
// exhausted. The result is never nil.
func (c *Client) FetchLaunches(ctx context.Context, r models.DateRange) ([]models.Launch, error) {
	launches := make([]models.Launch, 0)
	for launch, err := range c.Launches(ctx, r) {
		if err != nil {
			return nil, err
		}
		launches = append(launches, launch)
	}
	return launches, nil
}
