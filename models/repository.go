package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const (
	DefaultRepositoryName    = "Projects"
	DefaultRepositoryPrivate = false
)

var ErrEmptyRepositoryName = errors.New("repository name must not be empty")

// RepositoryCreationRequest is the body of POST /user/repos.
type RepositoryCreationRequest struct {
	Name    string `json:"name"`
	Private bool   `json:"private"`
}

func DefaultRepositoryRequest() RepositoryCreationRequest {
	return RepositoryCreationRequest{
		Name:    DefaultRepositoryName,
		Private: DefaultRepositoryPrivate,
	}
}

func (r RepositoryCreationRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrEmptyRepositoryName
	}
	return nil
}

// Payload encodes the request with ", " and ": " separators, matching the
// json.dumps default layout the endpoint has always been sent.
func (r RepositoryCreationRequest) Payload() ([]byte, error) {
	name, err := json.Marshal(r.Name)
	if err != nil {
		return nil, err
	}
	return fmt.Appendf(nil, `{"name": %s, "private": %t}`, name, r.Private), nil
}
