package battles_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-arena/internal/repositories/battles"
)

type MemoryRepositoryTestSuite struct {
	suite.Suite
	clock *clock.Fixed
	repo  battles.Repository
	ctx   context.Context
}

func TestMemoryRepositorySuite(t *testing.T) {
	suite.Run(t, new(MemoryRepositoryTestSuite))
}

func (s *MemoryRepositoryTestSuite) SetupTest() {
	s.clock = clock.NewFixed(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	s.repo = battles.NewMemoryRepository(&battles.MemoryConfig{Clock: s.clock, TTL: time.Hour})
	s.ctx = context.Background()
}

func (s *MemoryRepositoryTestSuite) TestSaveAndGet() {
	record := testRecord("battle_1")

	_, err := s.repo.Save(s.ctx, battles.SaveInput{Record: record})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, battles.GetInput{ID: "battle_1"})
	s.Require().NoError(err)
	s.Equal(record, out.Record)

	// stored records are isolated from the caller's copy
	record.Log[0] = "changed"
	out, err = s.repo.Get(s.ctx, battles.GetInput{ID: "battle_1"})
	s.Require().NoError(err)
	s.Equal("first", out.Record.Log[0])
}

func (s *MemoryRepositoryTestSuite) TestGet_Errors() {
	_, err := s.repo.Get(s.ctx, battles.GetInput{ID: "nope"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Get(s.ctx, battles.GetInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Save(s.ctx, battles.SaveInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *MemoryRepositoryTestSuite) TestExpiry() {
	_, err := s.repo.Save(s.ctx, battles.SaveInput{Record: testRecord("short"), TTL: time.Minute})
	s.Require().NoError(err)
	_, err = s.repo.Save(s.ctx, battles.SaveInput{Record: testRecord("long")})
	s.Require().NoError(err)

	s.clock.Advance(2 * time.Minute)

	_, err = s.repo.Get(s.ctx, battles.GetInput{ID: "short"})
	s.True(errors.IsNotFound(err))

	out, err := s.repo.ListRecent(s.ctx, battles.ListRecentInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Records, 1)
	s.Equal("long", out.Records[0].ID)
}

func (s *MemoryRepositoryTestSuite) TestListRecent_NewestFirst() {
	for i := 1; i <= 12; i++ {
		_, err := s.repo.Save(s.ctx, battles.SaveInput{Record: testRecord(fmt.Sprintf("battle_%d", i))})
		s.Require().NoError(err)
	}

	out, err := s.repo.ListRecent(s.ctx, battles.ListRecentInput{})
	s.Require().NoError(err)
	s.Len(out.Records, 10)
	s.Equal("battle_12", out.Records[0].ID)

	out, err = s.repo.ListRecent(s.ctx, battles.ListRecentInput{Limit: 3})
	s.Require().NoError(err)
	s.Len(out.Records, 3)
	s.Equal("battle_10", out.Records[2].ID)

	_, err = s.repo.ListRecent(s.ctx, battles.ListRecentInput{Limit: -1})
	s.True(errors.IsInvalidArgument(err))
}

func (s *MemoryRepositoryTestSuite) TestSave_DeduplicatesIndex() {
	_, err := s.repo.Save(s.ctx, battles.SaveInput{Record: testRecord("a")})
	s.Require().NoError(err)
	_, err = s.repo.Save(s.ctx, battles.SaveInput{Record: testRecord("b")})
	s.Require().NoError(err)
	_, err = s.repo.Save(s.ctx, battles.SaveInput{Record: testRecord("a")})
	s.Require().NoError(err)

	out, err := s.repo.ListRecent(s.ctx, battles.ListRecentInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Records, 2)
	s.Equal("a", out.Records[0].ID)
	s.Equal("b", out.Records[1].ID)
}

func (s *MemoryRepositoryTestSuite) TestSave_PurgesExpiredRecords() {
	for i := 0; i < 1000; i++ {
		_, err := s.repo.Save(s.ctx, battles.SaveInput{
			Record: testRecord(fmt.Sprintf("battle_%d", i)),
			TTL:    time.Minute,
		})
		s.Require().NoError(err)
		s.clock.Advance(2 * time.Minute)
	}

	// each save finds its predecessor already expired
	s.Equal(1, battles.MemoryLen(s.repo))

	out, err := s.repo.ListRecent(s.ctx, battles.ListRecentInput{})
	s.Require().NoError(err)
	s.Empty(out.Records)
}

func (s *MemoryRepositoryTestSuite) TestSave_DropsRecordsTrimmedFromIndex() {
	for i := 1; i <= 150; i++ {
		_, err := s.repo.Save(s.ctx, battles.SaveInput{Record: testRecord(fmt.Sprintf("battle_%d", i))})
		s.Require().NoError(err)
	}

	s.Equal(100, battles.MemoryLen(s.repo))

	_, err := s.repo.Get(s.ctx, battles.GetInput{ID: "battle_50"})
	s.True(errors.IsNotFound(err))

	out, err := s.repo.Get(s.ctx, battles.GetInput{ID: "battle_51"})
	s.Require().NoError(err)
	s.Equal("battle_51", out.Record.ID)
}
