package talent

import (
	"fmt"
	"net/url"
)

const rolesPath = "/roles"

type Roles struct {
	Items []*Role
}

// Role is an open position the recruiter is hiring for.
type Role struct {
	ID           string   `json:"id,omitempty"`
	Title        string   `json:"title,omitempty"`
	Department   string   `json:"department,omitempty"`
	Description  string   `json:"description,omitempty"`
	Requirements []string `json:"requirements,omitempty"`
	Location     string   `json:"location,omitempty"`
	Status       string   `json:"status,omitempty"`
}

func (c *Client) getRoles(status string) (*Roles, error) {
	apiURLRoles := fmt.Sprintf("%s%s", c.APIURL, rolesPath)

	q := url.Values{}
	q.Add("status", status)

	items, err := c.GetItems(apiURLRoles, pagedQuery(q))
	if err != nil {
		return nil, err
	}

	var roles []*Role
	if err = decodeItems(items, &roles); err != nil {
		return nil, err
	}

	return &Roles{
		Items: roles,
	}, nil
}

func (r *Roles) Len() int {
	return len(r.Items)
}

func (r *Roles) FindByID(id string) *Role {
	for _, role := range r.Items {
		if role.ID == id {
			return role
		}
	}
	return nil
}
