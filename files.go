package gpt3

import (
	"context"
	"net/http"
)

// FileList is a decode target for the body of a "list files" response.
//
// https://beta.openai.com/docs/api-reference/files/list
type FileList struct {
	Object string `json:"object"`
	Data   []struct {
		ID        string `json:"id"`
		Object    string `json:"object"`
		Bytes     int    `json:"bytes"`
		CreatedAt int    `json:"created_at"`
		Filename  string `json:"filename"`
		Purpose   string `json:"purpose"`
	} `json:"data"`
}

// Files lists the files that belong to the user's organization, which can
// be referenced by the File field of search, answers and classification
// requests.
//
// https://beta.openai.com/docs/api-reference/files/list
func (c *Client) Files(ctx context.Context) (*Response, error) {
	return c.Do(ctx, http.MethodGet, filesURL(c.BaseURL), nil)
}
