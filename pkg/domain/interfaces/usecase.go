package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/model"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/types"
)

type UseCase interface {
	SubmitScan(ctx context.Context, req *model.ScanRequest) (types.ScanJobID, error)
	GetJob(ctx context.Context, id types.ScanJobID) (*model.ScanJob, error)
}
