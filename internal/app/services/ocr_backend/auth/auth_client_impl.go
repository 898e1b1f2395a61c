package auth

import (
	"context"
	"errors"
	"medintake-service/internal/app/contracts"
	"medintake-service/internal/app/services/ocr_backend/requester"
	"medintake-service/internal/pkg/constvars"
	"medintake-service/internal/pkg/exceptions"
	"medintake-service/internal/pkg/utils"
	"net/url"
	"strings"
	"sync"

	"go.uber.org/zap"
)

var (
	authClientInstance contracts.AuthBackendClient
	onceAuthClient     sync.Once
)

type authClient struct {
	Requester *requester.Requester
	Log       *zap.Logger
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func NewAuthBackendClient(req *requester.Requester, logger *zap.Logger) contracts.AuthBackendClient {
	onceAuthClient.Do(func() {
		authClientInstance = &authClient{
			Requester: req,
			Log:       logger,
		}
	})
	return authClientInstance
}

// Login posts the credentials form-encoded. A 401 means wrong credentials;
// every other failure is reported as a generic login failure.
func (c *authClient) Login(ctx context.Context, username, password string) (string, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("authClient.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	form := url.Values{}
	form.Set(constvars.FormFieldUsername, username)
	form.Set(constvars.FormFieldPassword, password)

	resp, err := c.Requester.Send(ctx, constvars.MethodPost, constvars.BackendPathLogin,
		strings.NewReader(form.Encode()), constvars.MIMEApplicationForm, constvars.ResourceLogin)
	if err != nil {
		c.Log.Error("authClient.Login error calling backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if resp != nil && resp.StatusCode == constvars.StatusUnauthorized {
			return "", exceptions.ErrInvalidCredentials(nil)
		}
		return "", exceptions.ErrLoginFailed(nil)
	}

	token := new(tokenResponse)
	if err := requester.Decode(resp.Body, token, constvars.ResourceLogin); err != nil {
		return "", exceptions.ErrLoginFailed(nil)
	}
	if token.AccessToken == "" {
		return "", exceptions.ErrLoginFailed(errors.New("empty access token"))
	}
	return token.AccessToken, nil
}
