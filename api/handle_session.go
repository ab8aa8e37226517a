package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/chatterbox-hq/chatterbox-backend/dto"
	"github.com/chatterbox-hq/chatterbox-backend/usecases"
	"github.com/chatterbox-hq/chatterbox-backend/utils"
)

func setSessionCookie(c *gin.Context, conf Configuration, token string, expiresAt time.Time) {
	maxAge := int(time.Until(expiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, token, maxAge, "/", "", conf.SessionCookieSecure, true)
}

func clearSessionCookie(c *gin.Context, conf Configuration) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", conf.SessionCookieSecure, true)
}

func handleLogin(conf Configuration, uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		var body dto.LoginBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := uc.NewAuthUseCase()
		session, err := usecase.Login(c.Request.Context(), body.Username, body.Password)
		if presentError(c, err) {
			return
		}

		setSessionCookie(c, conf, session.Token, session.ExpiresAt)
		c.JSON(http.StatusOK, gin.H{
			"session": dto.AdaptSessionDto(session),
		})
	}
}

func handleLogout(conf Configuration, uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		creds := utils.CredentialsFromCtx(c.Request.Context())

		usecase := uc.NewAuthUseCase()
		err := usecase.Logout(c.Request.Context(), creds)
		if presentError(c, err) {
			return
		}

		clearSessionCookie(c, conf)
		c.Status(http.StatusNoContent)
	}
}

func handleGetCredentials() func(c *gin.Context) {
	return func(c *gin.Context) {
		creds := utils.CredentialsFromCtx(c.Request.Context())

		c.JSON(http.StatusOK, gin.H{
			"credentials": dto.AdaptCredentialDto(creds),
		})
	}
}
