package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/chore-quest/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestErrorString() {
	err := errors.NotFound("avatar not found")
	s.Assert().Equal("NOT_FOUND: avatar not found", err.Error())

	wrapped := errors.Wrap(fmt.Errorf("dial tcp: refused"), "failed to load avatar")
	s.Assert().Equal("INTERNAL: failed to load avatar: dial tcp: refused", wrapped.Error())
}

func (s *ErrorsTestSuite) TestWrapPreservesCodeAndMeta() {
	base := errors.NotFound("no avatar stored").WithMeta("player_id", "kid-1")
	wrapped := errors.Wrapf(base, "failed to get avatar for %s", "kid-1")

	s.Assert().Equal(errors.CodeNotFound, wrapped.Code)
	s.Assert().Equal("failed to get avatar for kid-1", wrapped.Message)
	s.Assert().Equal("kid-1", wrapped.Meta["player_id"])
	s.Assert().True(stderrors.Is(wrapped, base))

	wrapped.WithMeta("extra", 1)
	s.Assert().NotContains(base.Meta, "extra")
}

func (s *ErrorsTestSuite) TestWrapForeignErrorIsInternal() {
	cause := fmt.Errorf("boom")
	wrapped := errors.Wrap(cause, "render failed")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Equal(cause, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	cause := fmt.Errorf("connection refused")
	wrapped := errors.WrapWithCode(cause, errors.CodeUnavailable, "redis unavailable")

	s.Assert().Equal(errors.CodeUnavailable, wrapped.Code)
	s.Assert().Equal(cause, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Assert().Nil(errors.Wrap(nil, "nothing"))
	s.Assert().Nil(errors.Wrapf(nil, "nothing %d", 1))
	s.Assert().Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "nothing"))
}

func (s *ErrorsTestSuite) TestConstructors() {
	testCases := []struct {
		name string
		err  *errors.Error
		code errors.Code
	}{
		{"NotFound", errors.NotFound("x"), errors.CodeNotFound},
		{"NotFoundf", errors.NotFoundf("%s", "x"), errors.CodeNotFound},
		{"InvalidArgument", errors.InvalidArgument("x"), errors.CodeInvalidArgument},
		{"InvalidArgumentf", errors.InvalidArgumentf("%s", "x"), errors.CodeInvalidArgument},
		{"FailedPrecondition", errors.FailedPrecondition("x"), errors.CodeFailedPrecondition},
		{"FailedPreconditionf", errors.FailedPreconditionf("%s", "x"), errors.CodeFailedPrecondition},
		{"ResourceExhausted", errors.ResourceExhausted("x"), errors.CodeResourceExhausted},
		{"ResourceExhaustedf", errors.ResourceExhaustedf("%s", "x"), errors.CodeResourceExhausted},
		{"Internal", errors.Internal("x"), errors.CodeInternal},
		{"Internalf", errors.Internalf("%s", "x"), errors.CodeInternal},
		{"Unavailable", errors.Unavailable("x"), errors.CodeUnavailable},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Assert().Equal(tc.code, tc.err.Code)
			s.Assert().Equal("x", tc.err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestHelpers() {
	notFound := errors.Wrap(errors.NotFound("x"), "wrapped")
	locked := errors.FailedPrecondition("item locked")
	limit := errors.ResourceExhausted("daily limit")

	s.Assert().True(errors.IsNotFound(notFound))
	s.Assert().False(errors.IsNotFound(locked))
	s.Assert().True(errors.IsFailedPrecondition(locked))
	s.Assert().True(errors.IsResourceExhausted(limit))
	s.Assert().True(errors.IsInvalidArgument(errors.InvalidArgument("bad")))

	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
	s.Assert().Nil(errors.GetMeta(fmt.Errorf("plain")))
}

func (s *ErrorsTestSuite) TestToGRPCError() {
	err := errors.FailedPreconditionf("hat %q is locked", "crown").WithMeta("item", "crown")

	st, ok := status.FromError(errors.ToGRPCError(err))
	s.Require().True(ok)
	s.Assert().Equal(codes.FailedPrecondition, st.Code())
	s.Assert().Equal(`hat "crown" is locked`, st.Message())

	s.Require().Len(st.Details(), 1)
	info, ok := st.Details()[0].(*errdetails.ErrorInfo)
	s.Require().True(ok)
	s.Assert().Equal(errors.ErrorDomain, info.GetDomain())
	s.Assert().Equal("FAILED_PRECONDITION", info.GetReason())
	s.Assert().Equal("crown", info.GetMetadata()["item"])
}

func (s *ErrorsTestSuite) TestToGRPCErrorPassThrough() {
	s.Assert().Nil(errors.ToGRPCError(nil))

	already := status.Error(codes.Unavailable, "down")
	s.Assert().Equal(already, errors.ToGRPCError(already))

	st, _ := status.FromError(errors.ToGRPCError(fmt.Errorf("plain")))
	s.Assert().Equal(codes.Internal, st.Code())
}

func (s *ErrorsTestSuite) TestFromGRPCErrorRoundTrip() {
	original := errors.ResourceExhausted("daily limit reached").WithMeta("limit", 3)

	back := errors.FromGRPCError(errors.ToGRPCError(original))
	s.Assert().Equal(errors.CodeResourceExhausted, errors.GetCode(back))
	s.Assert().Equal("3", errors.GetMeta(back)["limit"])

	plain := fmt.Errorf("not grpc")
	s.Assert().Equal(plain, errors.FromGRPCError(plain))
}

func (s *ErrorsTestSuite) TestGRPCCodeMapping() {
	testCases := []struct {
		code     errors.Code
		expected codes.Code
	}{
		{errors.CodeOK, codes.OK},
		{errors.CodeNotFound, codes.NotFound},
		{errors.CodeInvalidArgument, codes.InvalidArgument},
		{errors.CodeFailedPrecondition, codes.FailedPrecondition},
		{errors.CodeResourceExhausted, codes.ResourceExhausted},
		{errors.CodeInternal, codes.Internal},
		{errors.CodeUnavailable, codes.Unavailable},
		{errors.Code("MADE_UP"), codes.Unknown},
	}

	for _, tc := range testCases {
		s.Run(tc.code.String(), func() {
			s.Assert().Equal(tc.expected, tc.code.GRPCCode())
		})
	}
}
