package api

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/chatterbox-hq/chatterbox-backend/models"
	"github.com/chatterbox-hq/chatterbox-backend/usecases"
	"github.com/chatterbox-hq/chatterbox-backend/utils"
)

const SessionCookieName = "chatterbox_session"

type Authentication struct {
	authUseCase usecases.AuthUseCase
}

func NewAuthentication(uc usecases.Usecases) Authentication {
	return Authentication{
		authUseCase: uc.NewAuthUseCase(),
	}
}

// ParseAuthorizationBearerHeader returns the token of an Authorization
// header, or an empty string when the header is absent or not a bearer.
func ParseAuthorizationBearerHeader(header http.Header) string {
	authorization := header.Get("Authorization")
	if authorization == "" {
		return ""
	}
	token, found := strings.CutPrefix(authorization, "Bearer ")
	if !found {
		return ""
	}
	return strings.TrimSpace(token)
}

func sessionTokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie != "" {
		return cookie
	}
	return ParseAuthorizationBearerHeader(c.Request.Header)
}

// Middleware resolves the session token carried by the request into
// credentials, and aborts with a 401 when it cannot.
func (a *Authentication) Middleware(c *gin.Context) {
	token := sessionTokenFromRequest(c)
	if token == "" {
		err := errors.Wrap(models.UnAuthorizedError, "missing session token")
		presentError(c, err)
		c.Abort()
		return
	}

	creds, err := a.authUseCase.ValidateSessionToken(c.Request.Context(), token)
	if err != nil {
		if !errors.Is(err, models.UnAuthorizedError) {
			err = errors.Join(models.UnAuthorizedError, err)
		}
		presentError(c, err)
		c.Abort()
		return
	}

	newContext := utils.StoreCredentialsInContext(c.Request.Context(), creds)

	logger := utils.LoggerFromContext(newContext).
		With(slog.String("username", creds.Username))
	newContext = utils.StoreLoggerInContext(newContext, logger)

	c.Request = c.Request.WithContext(newContext)
	c.Next()
}
