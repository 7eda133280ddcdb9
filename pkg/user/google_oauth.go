package user

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"pantrypal-backend/domain"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v1/userinfo?alt=json"

type (
	// GoogleUserInfo is the subset of the userinfo response we use.
	GoogleUserInfo struct {
		ID            string `json:"id"`
		Email         string `json:"email"`
		VerifiedEmail bool   `json:"verified_email"`
		Name          string `json:"name"`
		Picture       string `json:"picture"`
	}

	GoogleAuthClient interface {
		FetchUserInfo(ctx context.Context, accessToken string) (*GoogleUserInfo, error)
	}

	googleAuthClient struct {
		httpClient *http.Client
	}
)

func NewGoogleAuthClient() GoogleAuthClient {
	return &googleAuthClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (g *googleAuthClient) FetchUserInfo(ctx context.Context, accessToken string) (*GoogleUserInfo, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", googleUserInfoURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		if resp.StatusCode == http.StatusUnauthorized {
			return nil, domain.ErrGoogleTokenInvalid
		}
		return nil, fmt.Errorf("google userinfo error: %s - %s", resp.Status, string(bodyBytes))
	}

	var info GoogleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, err
	}
	if info.ID == "" {
		return nil, domain.ErrGoogleTokenInvalid
	}

	return &info, nil
}
