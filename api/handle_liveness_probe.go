package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chatterbox-hq/chatterbox-backend/usecases"
)

func handleLivenessProbe(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		usecase := uc.NewLivenessUseCase()
		err := usecase.Liveness(c.Request.Context())
		if presentError(c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"mood":    "Chatting away !",
			"version": usecase.ApiVersion(),
		})
	}
}
