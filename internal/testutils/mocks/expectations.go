// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"go.uber.org/mock/gomock"

	"github.com/celala99/cela-geo-quest/internal/orchestrators/progress"
	progressmock "github.com/celala99/cela-geo-quest/internal/orchestrators/progress/mock"
	"github.com/celala99/cela-geo-quest/internal/repositories/dex"
	dexmock "github.com/celala99/cela-geo-quest/internal/repositories/dex/mock"
)

// ExpectCapture expects exactly one capture of regionID for playerID
func ExpectCapture(mockProgress *progressmock.MockService, playerID, regionID string) *gomock.Call {
	return mockProgress.EXPECT().
		Capture(gomock.Any(), &progress.CaptureInput{PlayerID: playerID, RegionID: regionID}).
		Return(&progress.CaptureOutput{Added: true}, nil).
		Times(1)
}

// ExpectNoCapture fails the test if any capture is recorded
func ExpectNoCapture(mockProgress *progressmock.MockService) {
	mockProgress.EXPECT().
		Capture(gomock.Any(), gomock.Any()).
		Times(0)
}

// ExpectDexList sets up a List call on the Dex repository returning entries
func ExpectDexList(mockRepo *dexmock.MockRepository, playerID string, entries []dex.Entry, err error) *gomock.Call {
	call := mockRepo.EXPECT().List(gomock.Any(), dex.ListInput{PlayerID: playerID})
	if err != nil {
		return call.Return(nil, err)
	}
	return call.Return(&dex.ListOutput{Entries: entries}, nil)
}
