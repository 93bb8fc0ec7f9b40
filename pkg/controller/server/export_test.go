package server

import (
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/model"
	"github.com/KingDayveed357/code-sentinel-sub000/pkg/domain/types"
)

func RefToBranchForTest(v string) string {
	return refToBranch(v)
}

func GithubEventToScanRequestForTest(event interface{}, ws types.WorkspaceID, scanners []types.ScannerType) *model.ScanRequest {
	return githubEventToScanRequest(event, ws, scanners)
}
