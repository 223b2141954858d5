package progress_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/celala99/cela-geo-quest/internal/errors"
	"github.com/celala99/cela-geo-quest/internal/orchestrators/progress"
	"github.com/celala99/cela-geo-quest/internal/pkg/clock"
	"github.com/celala99/cela-geo-quest/internal/repositories/dex"
	dexmock "github.com/celala99/cela-geo-quest/internal/repositories/dex/mock"
	"github.com/celala99/cela-geo-quest/internal/testutils"
	"github.com/celala99/cela-geo-quest/internal/testutils/mocks"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockDexRepo  *dexmock.MockRepository
	orchestrator progress.Service
	ctx          context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockDexRepo = dexmock.NewMockRepository(s.ctrl)
	s.ctx = context.Background()

	var err error
	s.orchestrator, err = progress.NewOrchestrator(&progress.Config{DexRepo: s.mockDexRepo})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) TestNewOrchestrator_MissingRepo() {
	svc, err := progress.NewOrchestrator(&progress.Config{})

	s.Nil(svc)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "DexRepo")
}

func (s *OrchestratorTestSuite) TestCapture() {
	s.mockDexRepo.EXPECT().
		Add(s.ctx, dex.AddInput{PlayerID: "player-1", RegionID: "nile"}).
		Return(&dex.AddOutput{Added: true}, nil)

	out, err := s.orchestrator.Capture(s.ctx, &progress.CaptureInput{PlayerID: "player-1", RegionID: "nile"})

	s.Require().NoError(err)
	s.True(out.Added)
}

func (s *OrchestratorTestSuite) TestCapture_Validation() {
	_, err := s.orchestrator.Capture(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.Capture(s.ctx, &progress.CaptureInput{PlayerID: "player-1"})
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "RegionID")
}

func (s *OrchestratorTestSuite) TestCapture_StorageError() {
	s.mockDexRepo.EXPECT().
		Add(gomock.Any(), gomock.Any()).
		Return(nil, errors.Wrap(fmt.Errorf("connection refused"), "failed to add dex entry in Redis"))

	out, err := s.orchestrator.Capture(s.ctx, &progress.CaptureInput{PlayerID: "player-1", RegionID: "nile"})

	s.Nil(out)
	s.True(errors.IsInternal(err))
	s.Equal("failed to record capture", errors.GetMessage(err))
}

func (s *OrchestratorTestSuite) TestGetDex() {
	at := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	mocks.ExpectDexList(s.mockDexRepo, "player-1", []dex.Entry{{RegionID: "alps", CapturedAt: at}}, nil)

	out, err := s.orchestrator.GetDex(s.ctx, &progress.GetDexInput{PlayerID: "player-1"})

	s.Require().NoError(err)
	s.Equal([]progress.DexEntry{{RegionID: "alps", CapturedAt: at}}, out.Entries)
}

func (s *OrchestratorTestSuite) TestResetDex() {
	s.mockDexRepo.EXPECT().
		Reset(s.ctx, dex.ResetInput{PlayerID: "player-1"}).
		Return(&dex.ResetOutput{Removed: 3}, nil)

	out, err := s.orchestrator.ResetDex(s.ctx, &progress.ResetDexInput{PlayerID: "player-1"})

	s.Require().NoError(err)
	s.Equal(3, out.Removed)

	_, err = s.orchestrator.ResetDex(s.ctx, &progress.ResetDexInput{})
	s.True(errors.IsInvalidArgument(err))
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

// Capturing twice against real storage yields the same Dex as capturing once
func TestCaptureIdempotentWithRedis(t *testing.T) {
	client, _ := testutils.CreateTestRedisClient(t)
	repo, err := dex.NewRedisRepository(&dex.RedisConfig{
		Client: client,
		Clock:  clock.NewManual(time.Unix(1700000000, 0)),
	})
	if err != nil {
		t.Fatal(err)
	}
	svc, err := progress.NewOrchestrator(&progress.Config{DexRepo: repo})
	if err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()
	input := &progress.CaptureInput{PlayerID: "player-1", RegionID: "nile"}

	first, err := svc.Capture(ctx, input)
	if err != nil || !first.Added {
		t.Fatalf("first capture: out=%v err=%v", first, err)
	}
	once, _ := svc.GetDex(ctx, &progress.GetDexInput{PlayerID: "player-1"})

	second, err := svc.Capture(ctx, input)
	if err != nil || second.Added {
		t.Fatalf("second capture: out=%v err=%v", second, err)
	}
	twice, _ := svc.GetDex(ctx, &progress.GetDexInput{PlayerID: "player-1"})

	if len(once.Entries) != 1 || len(twice.Entries) != 1 || once.Entries[0] != twice.Entries[0] {
		t.Fatalf("dex changed after repeat capture: once=%v twice=%v", once.Entries, twice.Entries)
	}
}
