package testutil

import (
	"context"

	"github.com/anmolenterprise/invoicer/internal/types"
)

func SetupContext() context.Context {
	return types.SetRequestID(context.Background(), types.GenerateUUID())
}
