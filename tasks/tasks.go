package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"hallboard/pkg/config"
	"hallboard/types"
)

const defaultBaseURL = "https://api.todoist.com"

// Client proxies the task provider's REST API, remapping its task shape
// and priority scale into the dashboard's.
type Client struct {
	Logger *zap.Logger

	token   string
	client  *resty.Client
	baseURL string
}

func New(logger *zap.Logger, token string) *Client {
	return &Client{
		Logger:  logger,
		token:   token,
		client:  resty.New().SetTimeout(10 * time.Second),
		baseURL: defaultBaseURL,
	}
}

func (c *Client) Configured() bool {
	return !config.IsPlaceholder(c.token)
}

type providerTask struct {
	ID       string `json:"id"`
	Content  string `json:"content"`
	Priority int    `json:"priority"`
	Due      *struct {
		Date string `json:"date"`
	} `json:"due"`
}

// List fetches active tasks and remaps them into types.Task.
func (c *Client) List() ([]types.Task, error) {
	resp, err := c.client.R().
		SetAuthToken(c.token).
		Get(c.baseURL + "/rest/v2/tasks")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("task provider returned %s", resp.Status())
	}

	var raw []providerTask
	if err := json.Unmarshal(resp.Body(), &raw); err != nil {
		return nil, fmt.Errorf("malformed task payload: %w", err)
	}

	out := make([]types.Task, 0, len(raw))
	for _, t := range raw {
		task := types.Task{
			ID:       t.ID,
			Content:  t.Content,
			Priority: ConvertPriority(t.Priority),
		}
		if t.Due != nil {
			task.Due = t.Due.Date
		}
		out = append(out, task)
	}
	return out, nil
}

// Close marks a task complete at the provider.
func (c *Client) Close(id string) error {
	resp, err := c.client.R().
		SetAuthToken(c.token).
		Post(c.baseURL + "/rest/v2/tasks/" + id + "/close")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("task provider returned %s", resp.Status())
	}
	return nil
}

// ConvertPriority maps the provider's 4=urgent..1=normal scale onto the
// dashboard's 1=high..3=low scale.
func ConvertPriority(p int) int {
	switch p {
	case 4:
		return 1
	case 3, 2:
		return 2
	case 1:
		return 3
	default:
		return 3
	}
}
