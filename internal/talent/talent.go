package talent

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	apiURL    = "http://localhost:8000"
	userAgent = "just-in-time-recruiter"
	// Max value for reads per page.
	perPage = "100"

	activeRoleStatus = "active"
)

// Client is a read-only client for the talent store API. The store performs
// no filtering or sorting; it returns full collections and this core derives
// everything else.
type Client struct {
	// ctx used only for http requests right now
	ctx        context.Context
	token      string
	logger     *zap.Logger
	HTTPClient *http.Client
	UserAgent  string
	APIURL     string
}

func New(ctx context.Context, logger *zap.Logger, token string) *Client {
	return &Client{
		ctx:    ctx,
		token:  token,
		APIURL: apiURL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger:    logger,
		UserAgent: userAgent,
	}
}

// GetTalentPool returns every talent record, each with its embedded role
// matches.
func (c *Client) GetTalentPool() (*Pool, error) {
	return c.getTalentPool()
}

// GetActiveRoles returns the open roles.
func (c *Client) GetActiveRoles() (*Roles, error) {
	return c.getRoles(activeRoleStatus)
}

// GetJobHistories returns the full job-history collection grouped by talent id.
func (c *Client) GetJobHistories() (Histories, error) {
	return c.getJobHistories()
}
