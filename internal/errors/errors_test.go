package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/celala99/cela-geo-quest/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "region not found",
			expected: "NOT_FOUND: region not found",
		},
		{
			name:     "invalid dataset error",
			code:     errors.CodeInvalidDataset,
			message:  "monsters is required",
			expected: "INVALID_DATASET: monsters is required",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Equal(tc.expected, err.Error())
			s.Equal(tc.code, err.Code)
			s.Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("connection refused")
	wrapped := errors.Wrap(baseErr, "failed to record capture")

	s.Equal(errors.CodeInternal, wrapped.Code)
	s.Equal("failed to record capture", wrapped.Message)
	s.Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCodeAndMeta() {
	baseErr := errors.NotFound("region not found").WithMeta("region_id", "fr")
	wrapped := errors.Wrap(baseErr, "cannot start encounter")

	s.Equal(errors.CodeNotFound, wrapped.Code)
	s.Equal("fr", errors.GetMeta(wrapped)["region_id"])
	s.True(errors.IsNotFound(wrapped))
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	wrapped := errors.WrapWithCode(fmt.Errorf("bad json"), errors.CodeInvalidDataset, "dataset unreadable")

	s.True(errors.IsInvalidDataset(wrapped))
	s.Equal("dataset unreadable", errors.GetMessage(wrapped))
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Nil(errors.Wrap(nil, "should be nil"))
	s.Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
}

func (s *ErrorsTestSuite) TestErrorIs() {
	s.True(errors.NotFound("a").Is(errors.NotFound("b")))
	s.False(errors.NotFound("a").Is(errors.InvalidArgument("a")))
}

func (s *ErrorsTestSuite) TestGetCode() {
	s.Equal(errors.CodeOK, errors.GetCode(nil))
	s.Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("standard error")))
	s.Equal(errors.CodeFailedPrecondition, errors.GetCode(errors.FailedPrecondition("locked")))
}

func (s *ErrorsTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("PlayerID", " ", vb)
	errors.ValidateRange("Choice", 7, 0, 3, vb)
	errors.ValidateEnum("Backend", "mongo", []string{"redis", "sqlite"}, vb)

	err := vb.Build()
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Equal(
		"validation failed: Backend: must be one of: redis, sqlite; Choice: must be between 0 and 3; PlayerID: is required",
		errors.GetMessage(err),
	)

	s.NoError(errors.NewValidationBuilder().Build())
}

func (s *ErrorsTestSuite) TestGRPCConversion() {
	grpcErr := errors.ToGRPCError(errors.InvalidDataset("version is required"))
	st, ok := status.FromError(grpcErr)
	s.Require().True(ok)
	s.Equal(codes.FailedPrecondition, st.Code())
	s.Equal("version is required", st.Message())

	back := errors.FromGRPCError(status.Error(codes.NotFound, "no encounter"))
	s.True(errors.IsNotFound(back))
	s.Equal("no encounter", errors.GetMessage(back))

	s.Nil(errors.ToGRPCError(nil))
	st, _ = status.FromError(errors.ToGRPCError(fmt.Errorf("boom")))
	s.Equal(codes.Internal, st.Code())
}
