// Package client is a thin HTTP client for the task tracker API, used by
// the command-line tool.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/akarpovs/tasktracker/internal/server/models"
)

type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func New(baseURL string, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

type authResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

type apiError struct {
	Message string `json:"message"`
	Field   string `json:"field"`
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {

	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		buf = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		var e apiError
		if json.Unmarshal(data, &e) == nil && e.Message != "" {
			if e.Field != "" {
				return fmt.Errorf("%s: %s", e.Field, e.Message)
			}
			return fmt.Errorf("%s", e.Message)
		}
		return fmt.Errorf("server returned %s", resp.Status)
	}

	if out != nil {
		return json.Unmarshal(data, out)
	}
	return nil
}

// Register creates an account and returns the minted access token.
func (c *Client) Register(ctx context.Context, name, email, password string) (string, error) {
	var out authResponse
	err := c.do(ctx, http.MethodPost, "/api/register", map[string]string{
		"name": name, "email": email, "password": password, "confirmPassword": password,
	}, &out)
	if err != nil {
		return "", err
	}
	c.token = out.Token
	return out.Token, nil
}

// Login authenticates and returns the minted access token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var out authResponse
	err := c.do(ctx, http.MethodPost, "/api/login", map[string]string{
		"email": email, "password": password,
	}, &out)
	if err != nil {
		return "", err
	}
	c.token = out.Token
	return out.Token, nil
}

func (c *Client) ListTasks(ctx context.Context) ([]*models.Task, error) {
	var out []*models.Task
	if err := c.do(ctx, http.MethodGet, "/api/tasks", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AddTask(ctx context.Context, title, description, priority string) (*models.Task, error) {
	body := map[string]string{"title": title, "description": description}
	if priority != "" {
		body["priority"] = priority
	}
	var out models.Task
	if err := c.do(ctx, http.MethodPost, "/api/tasks", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CompleteTask marks the task completed via a partial update.
func (c *Client) CompleteTask(ctx context.Context, id string) (*models.Task, error) {
	var out models.Task
	err := c.do(ctx, http.MethodPut, "/api/tasks/"+id, map[string]string{
		"status": string(models.StatusCompleted),
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/tasks/"+id, nil, nil)
}
