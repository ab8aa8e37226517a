package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chatterbox-hq/chatterbox-backend/dto"
	"github.com/chatterbox-hq/chatterbox-backend/usecases"
)

func handleRegister(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		var body dto.CreateUserBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := uc.NewAuthUseCase()
		user, err := usecase.Register(c.Request.Context(), dto.AdaptCreateUser(body))
		if presentError(c, err) {
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"user": dto.AdaptUserDto(user),
		})
	}
}

func handleGetCurrentUser(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		usecase := usecasesWithCreds(c.Request.Context(), uc).NewUserUseCase()
		user, err := usecase.CurrentUser(c.Request.Context())
		if presentError(c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"user": dto.AdaptUserDto(user),
		})
	}
}

func handlePatchCurrentUser(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		var body dto.UpdateUserBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(c.Request.Context(), uc).NewUserUseCase()
		user, err := usecase.CurrentUser(c.Request.Context())
		if body.About.Valid {
			user, err = usecase.UpdateAbout(c.Request.Context(), body.About.String)
		}
		if presentError(c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"user": dto.AdaptUserDto(user),
		})
	}
}

func handleGetUserProfile(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		username := c.Param("username")

		usecase := usecasesWithCreds(c.Request.Context(), uc).NewUserUseCase()
		user, err := usecase.ProfileByUsername(c.Request.Context(), username)
		if presentError(c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"user": dto.AdaptUserDto(user),
		})
	}
}
