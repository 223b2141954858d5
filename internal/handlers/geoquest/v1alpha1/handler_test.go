package v1alpha1_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/celala99/cela-geo-quest/internal/engine"
	"github.com/celala99/cela-geo-quest/internal/errors"
	"github.com/celala99/cela-geo-quest/internal/handlers/geoquest/v1alpha1"
	"github.com/celala99/cela-geo-quest/internal/orchestrators/encounter"
	encountermock "github.com/celala99/cela-geo-quest/internal/orchestrators/encounter/mock"
	"github.com/celala99/cela-geo-quest/internal/orchestrators/progress"
	progressmock "github.com/celala99/cela-geo-quest/internal/orchestrators/progress/mock"
	"github.com/celala99/cela-geo-quest/internal/testutils"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockEncounter *encountermock.MockService
	mockProgress  *progressmock.MockService
	handler       *v1alpha1.Handler
	ctx           context.Context
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockEncounter = encountermock.NewMockService(s.ctrl)
	s.mockProgress = progressmock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		EncounterService: s.mockEncounter,
		ProgressService:  s.mockProgress,
	})
	s.Require().NoError(err)
	s.handler = handler
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) request(fields map[string]any) *structpb.Struct {
	req, err := structpb.NewStruct(fields)
	s.Require().NoError(err)
	return req
}

func (s *HandlerTestSuite) TestNewHandler_MissingDependencies() {
	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})

	s.Nil(handler)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "EncounterService")
	s.Contains(err.Error(), "ProgressService")
}

func (s *HandlerTestSuite) TestStartEncounter() {
	dataset := testutils.NewTestDataset()
	nile, _ := dataset.Creature(testutils.RegionNile)
	state := engine.Start(testutils.RegionNile, nile)
	state.EncounterID = "enc_1"

	s.mockEncounter.EXPECT().
		StartEncounter(s.ctx, &encounter.StartEncounterInput{PlayerID: "player-1", RegionID: testutils.RegionNile}).
		Return(&encounter.StartEncounterOutput{State: state}, nil)

	resp, err := s.handler.StartEncounter(s.ctx, s.request(map[string]any{
		v1alpha1.FieldPlayerID: "player-1",
		v1alpha1.FieldRegionID: testutils.RegionNile,
	}))
	s.Require().NoError(err)

	enc := resp.GetFields()["encounter"].GetStructValue().GetFields()
	s.Equal("enc_1", enc["encounter_id"].GetStringValue())
	s.Equal(float64(7), enc["enemy_hp"].GetNumberValue())
	s.Equal(float64(5), enc["player_hp"].GetNumberValue())
	s.Equal("River Sphinx", enc["enemy"].GetStructValue().GetFields()["name"].GetStringValue())

	quiz := enc["quiz"].GetStructValue().GetFields()
	s.Equal("Into which sea does the Nile flow?", quiz["question"].GetStringValue())
	s.Len(quiz["choices"].GetListValue().GetValues(), 4)
	s.NotContains(quiz, "answer")
}

func (s *HandlerTestSuite) TestStartEncounter_MissingPlayer() {
	_, err := s.handler.StartEncounter(s.ctx, s.request(map[string]any{
		v1alpha1.FieldRegionID: testutils.RegionNile,
	}))

	s.Equal(codes.InvalidArgument, status.Code(err))
	s.Contains(status.Convert(err).Message(), "player_id")
}

func (s *HandlerTestSuite) TestStartEncounter_UnknownRegion() {
	s.mockEncounter.EXPECT().
		StartEncounter(s.ctx, gomock.Any()).
		Return(nil, errors.NotFound("region not found"))

	_, err := s.handler.StartEncounter(s.ctx, s.request(map[string]any{
		v1alpha1.FieldPlayerID: "player-1",
		v1alpha1.FieldRegionID: "atlantis",
	}))

	s.Equal(codes.NotFound, status.Code(err))
}

func (s *HandlerTestSuite) TestSubmitAnswer_RejectsFractionalChoice() {
	_, err := s.handler.SubmitAnswer(s.ctx, s.request(map[string]any{
		v1alpha1.FieldPlayerID: "player-1",
		v1alpha1.FieldChoice:   1.5,
	}))

	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestSubmitAnswer_RejectsNonNumericChoice() {
	_, err := s.handler.SubmitAnswer(s.ctx, s.request(map[string]any{
		v1alpha1.FieldPlayerID: "player-1",
		v1alpha1.FieldChoice:   "b",
	}))

	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestSubmitAnswer_Locked() {
	s.mockEncounter.EXPECT().
		SubmitAnswer(s.ctx, &encounter.SubmitAnswerInput{PlayerID: "player-1", Choice: 2}).
		Return(nil, errors.FailedPrecondition("waiting for the enemy to strike back"))

	_, err := s.handler.SubmitAnswer(s.ctx, s.request(map[string]any{
		v1alpha1.FieldPlayerID: "player-1",
		v1alpha1.FieldChoice:   2,
	}))

	s.Equal(codes.FailedPrecondition, status.Code(err))
}

func (s *HandlerTestSuite) TestListRegions() {
	s.mockEncounter.EXPECT().
		ListRegions(s.ctx, &encounter.ListRegionsInput{}).
		Return(&encounter.ListRegionsOutput{Regions: []encounter.RegionSummary{
			{RegionID: testutils.RegionNile, Name: "River Sphinx", Difficulty: 3, QuizCount: 1},
		}}, nil)

	resp, err := s.handler.ListRegions(s.ctx, &structpb.Struct{})
	s.Require().NoError(err)

	regions := resp.GetFields()["regions"].GetListValue().GetValues()
	s.Require().Len(regions, 1)
	region := regions[0].GetStructValue().GetFields()
	s.Equal(testutils.RegionNile, region["region_id"].GetStringValue())
	s.Equal(float64(1), region["quiz_count"].GetNumberValue())
}

func (s *HandlerTestSuite) TestGetDex() {
	capturedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s.mockProgress.EXPECT().
		GetDex(s.ctx, &progress.GetDexInput{PlayerID: "player-1"}).
		Return(&progress.GetDexOutput{Entries: []progress.DexEntry{
			{RegionID: testutils.RegionNile, CapturedAt: capturedAt},
		}}, nil)

	resp, err := s.handler.GetDex(s.ctx, s.request(map[string]any{v1alpha1.FieldPlayerID: "player-1"}))
	s.Require().NoError(err)

	entries := resp.GetFields()["entries"].GetListValue().GetValues()
	s.Require().Len(entries, 1)
	entry := entries[0].GetStructValue().GetFields()
	s.Equal(testutils.RegionNile, entry["region_id"].GetStringValue())
	s.Equal("2024-05-01T12:00:00Z", entry["captured_at"].GetStringValue())
}

func (s *HandlerTestSuite) TestResetDex() {
	s.mockProgress.EXPECT().
		ResetDex(s.ctx, &progress.ResetDexInput{PlayerID: "player-1"}).
		Return(&progress.ResetDexOutput{Removed: 2}, nil)

	resp, err := s.handler.ResetDex(s.ctx, s.request(map[string]any{v1alpha1.FieldPlayerID: "player-1"}))
	s.Require().NoError(err)

	s.Equal(float64(2), resp.GetFields()["removed"].GetNumberValue())
}
