package spacex

import "context"

// payloadDoc is the shape of a payload document as selected from the API.
// mass_kg is null at the source for some payloads.
type payloadDoc struct {
	ID     string   `json:"id"`
	MassKg *float64 `json:"mass_kg"`
}

// FetchPayloadMasses resolves payload ids to masses in kilograms. An empty
// id set returns an empty map without a remote call. Payloads with a null
// mass are left out of the map; callers treat any id missing from the map
// as contributing zero mass.
func (c *Client) FetchPayloadMasses(ctx context.Context, ids []string) (map[string]float64, error) {
	masses := make(map[string]float64, len(ids))
	if len(ids) == 0 {
		return masses, nil
	}

	pageNum := 1
	for {
		body := queryRequest{
			Query: map[string]any{"_id": map[string]any{"$in": ids}},
			Options: queryOptions{
				Select:     []string{"id", "mass_kg"},
				Page:       pageNum,
				Limit:      c.pageSize,
				Pagination: true,
			},
		}

		var pg page[payloadDoc]
		if err := c.postQuery(ctx, "payloads/query", body, &pg); err != nil {
			return nil, err
		}

		for _, doc := range pg.Docs {
			if doc.MassKg != nil {
				masses[doc.ID] = *doc.MassKg
			}
		}

		if !pg.HasNextPage || pg.NextPage == nil {
			return masses, nil
		}
		pageNum = *pg.NextPage
	}
}
