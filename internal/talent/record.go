package talent

import (
	"encoding/json"
	"fmt"
	"os"
)

const talentPath = "/talent"

// Pool is the full talent collection as returned by the store.
type Pool struct {
	Items []*Record
}

// Record is a single talent record. Owned by the external store and read-only
// here. A nil LayoffDate means the person has not been impacted by a layoff.
type Record struct {
	ID          string       `json:"id,omitempty"`
	Name        string       `json:"name,omitempty"`
	Title       string       `json:"title,omitempty"`
	Company     string       `json:"company,omitempty"`
	Location    string       `json:"location,omitempty"`
	LayoffDate  *string      `json:"layoff_date,omitempty"`
	Skills      []string     `json:"skills,omitempty"`
	LinkedinURL string       `json:"linkedin_url,omitempty"`
	Email       string       `json:"email,omitempty"`
	RoleMatches []*RoleMatch `json:"role_matches,omitempty"`
}

// RoleMatch is the per-role match sub-record embedded in a talent record.
type RoleMatch struct {
	RoleID       string   `json:"role_id,omitempty"`
	MatchScore   *int     `json:"match_score,omitempty"`
	MatchReasons []string `json:"match_reasons,omitempty"`
	Status       string   `json:"status,omitempty"`
}

func (c *Client) getTalentPool() (*Pool, error) {
	apiURLTalent := fmt.Sprintf("%s%s", c.APIURL, talentPath)

	items, err := c.GetItems(apiURLTalent, pagedQuery(nil))
	if err != nil {
		return nil, err
	}

	var records []*Record
	if err := decodeItems(items, &records); err != nil {
		return nil, err
	}

	return &Pool{
		Items: records,
	}, nil
}

func (p *Pool) Len() int {
	return len(p.Items)
}

func (p *Pool) FindByID(id string) *Record {
	for _, record := range p.Items {
		if record.ID == id {
			return record
		}
	}
	return nil
}

// Companies returns distinct company names in first-seen order.
func (p *Pool) Companies() []string {
	seen := make(map[string]struct{})
	companies := make([]string, 0)
	for _, record := range p.Items {
		if _, ok := seen[record.Company]; ok {
			continue
		}
		seen[record.Company] = struct{}{}
		companies = append(companies, record.Company)
	}
	return companies
}

func (p *Pool) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "talent_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return "", err
	}
	return file.Name(), nil
}

// Report by company.
func (p *Pool) ReportByCompany() map[string][]map[string]string {
	report := make(map[string][]map[string]string)
	for _, record := range p.Items {
		entry := map[string]string{
			"name":     record.Name,
			"title":    record.Title,
			"location": record.Location,
		}
		if record.LayoffDate != nil {
			entry["layoff_date"] = *record.LayoffDate
		}
		report[record.Company] = append(report[record.Company], entry)
	}
	return report
}
