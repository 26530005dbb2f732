// Package query holds a table-driven harness for QueryServer tests.
package query

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Endpoint describes the query under test. R is the request type and S the response type.
type Endpoint[R any, S any] struct {
	// Name is used in assertion messages.
	Name string
	// Query is the QueryServer method.
	Query func(goCtx context.Context, req *R) (*S, error)
	// Compare asserts that actual matches expected. When nil, the responses must be equal.
	// Responses carrying math.Int values should set it since equal amounts are not always
	// deeply equal.
	Compare func(expected, actual *S)
}

// Case is a single query invocation.
type Case[R any, S any] struct {
	Name string
	// Setup prepares state. It runs on a cached context so nothing carries over between cases.
	Setup func()
	Req   *R
	// Expected is the expected response when Code is codes.OK.
	Expected *S
	// Code is the expected gRPC status code.
	Code codes.Code
	// ErrContains is matched against the error message when Code is not codes.OK.
	ErrContains string
}

// Suite is the subset of a testify suite the harness needs.
type Suite interface {
	Context() sdk.Context
	SetContext(ctx sdk.Context)
	Require() *require.Assertions
	Assert() *assert.Assertions
}

// Run executes tc against ep on a cached copy of the suite's context.
func Run[R any, S any](s Suite, ep Endpoint[R, S], tc Case[R, S]) {
	origCtx := s.Context()
	defer s.SetContext(origCtx)
	ctx, _ := origCtx.CacheContext()
	s.SetContext(ctx)

	if tc.Setup != nil {
		tc.Setup()
	}

	var resp *S
	var err error
	s.Require().NotPanics(func() {
		resp, err = ep.Query(s.Context(), tc.Req)
	}, ep.Name)

	if tc.Code != codes.OK {
		s.Require().Error(err, "%s error", ep.Name)
		s.Assert().Equal(tc.Code, status.Code(err), "%s status code", ep.Name)
		if tc.ErrContains != "" {
			s.Assert().ErrorContains(err, tc.ErrContains, "%s error", ep.Name)
		}
		return
	}

	s.Require().NoError(err, "%s error", ep.Name)
	s.Require().NotNil(resp, "%s response", ep.Name)
	if tc.Expected == nil {
		return
	}
	if ep.Compare != nil {
		ep.Compare(tc.Expected, resp)
		return
	}
	s.Assert().Equal(tc.Expected, resp, "%s response", ep.Name)
}
