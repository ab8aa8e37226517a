package api

import (
	"net/http"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/chatterbox-hq/chatterbox-backend/dto"
	"github.com/chatterbox-hq/chatterbox-backend/models"
	"github.com/chatterbox-hq/chatterbox-backend/usecases"
	"github.com/chatterbox-hq/chatterbox-backend/utils"
)

func handleListMessages(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		var limit int
		if raw := c.Query("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 0 {
				presentError(c, errors.Wrap(models.BadParameterError, "limit must be a positive integer"))
				return
			}
			limit = parsed
		}

		usecase := usecasesWithCreds(c.Request.Context(), uc).NewChatUseCase()
		messages, err := usecase.ListMessages(c.Request.Context(), models.ListMessagesInput{
			Limit: limit,
		})
		if presentError(c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"messages": utils.Map(messages, dto.AdaptMessageDto),
		})
	}
}

func handlePostMessage(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		var body dto.CreateMessageBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(c.Request.Context(), uc).NewChatUseCase()
		message, err := usecase.PostMessage(c.Request.Context(), models.CreateMessage{
			Content: body.Content,
		})
		if presentError(c, err) {
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"message": dto.AdaptMessageDto(message),
		})
	}
}
