package client

import (
	"context"

	"github.com/dmitrijs2005/draftkeeper/internal/client/models"
)

type Client interface {
	Close() error
	SetAccessToken(token string)
	Ping(ctx context.Context) error
	SaveDraft(ctx context.Context, key models.DraftKey, payload []byte, step, schemaVersion int64) (int64, error)
	LoadDraft(ctx context.Context, key models.DraftKey) (*models.RemoteDraft, error)
	ClearDraft(ctx context.Context, key models.DraftKey) error
	PromoteDraft(ctx context.Context, key models.DraftKey) (string, []byte, error)
}
