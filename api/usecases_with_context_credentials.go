package api

import (
	"context"

	"github.com/chatterbox-hq/chatterbox-backend/usecases"
	"github.com/chatterbox-hq/chatterbox-backend/utils"
)

func usecasesWithCreds(ctx context.Context, uc usecases.Usecases) *usecases.UsecasesWithCreds {
	creds := utils.CredentialsFromCtx(ctx)
	if creds.UserId == "" {
		panic("no credentials in context")
	}

	withCreds := uc.WithCreds(creds)
	return &withCreds
}
