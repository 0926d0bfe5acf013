package talent

import "fmt"

const jobHistoriesPath = "/job_histories"

// JobHistoryEntry is one position in a person's career history. A nil EndDate
// marks the current role; at most one entry per person is current. Entries
// are immutable once recorded.
type JobHistoryEntry struct {
	TalentID       string  `json:"talent_id,omitempty"`
	Company        string  `json:"company,omitempty"`
	Title          string  `json:"title,omitempty"`
	StartDate      string  `json:"start_date,omitempty"`
	EndDate        *string `json:"end_date,omitempty"`
	DurationMonths int     `json:"duration_months,omitempty"`
}

// Histories groups job-history entries by talent id, preserving the store's
// entry order within each talent.
type Histories map[string][]*JobHistoryEntry

func (c *Client) getJobHistories() (Histories, error) {
	apiURLHistories := fmt.Sprintf("%s%s", c.APIURL, jobHistoriesPath)

	items, err := c.GetItems(apiURLHistories, pagedQuery(nil))
	if err != nil {
		return nil, err
	}

	var entries []*JobHistoryEntry
	if err = decodeItems(items, &entries); err != nil {
		return nil, err
	}

	return GroupHistories(entries), nil
}

// GroupHistories buckets entries by talent id in source order.
func GroupHistories(entries []*JobHistoryEntry) Histories {
	histories := make(Histories)
	for _, entry := range entries {
		histories[entry.TalentID] = append(histories[entry.TalentID], entry)
	}
	return histories
}
