package v1alpha1_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-arena/internal/engine/arena"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
	v1alpha1 "github.com/KirkDiggler/rpg-arena/internal/handlers/arena/v1alpha1"
	"github.com/KirkDiggler/rpg-arena/internal/orchestrators/battle"
	battlemock "github.com/KirkDiggler/rpg-arena/internal/orchestrators/battle/mock"
	"github.com/KirkDiggler/rpg-arena/internal/repositories/battles"
)

type HTTPTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *battlemock.MockService
	router      *gin.Engine
}

func TestHTTPSuite(t *testing.T) {
	gin.SetMode(gin.TestMode)
	suite.Run(t, new(HTTPTestSuite))
}

func (s *HTTPTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = battlemock.NewMockService(s.ctrl)

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{BattleService: s.mockService})
	s.Require().NoError(err)
	s.router = v1alpha1.NewRouter(handler)
}

func (s *HTTPTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HTTPTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *HTTPTestSuite) decode(rec *httptest.ResponseRecorder, v any) {
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), v))
}

func (s *HTTPTestSuite) TestHealthz() {
	rec := s.do(http.MethodGet, "/healthz", nil)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *HTTPTestSuite) TestListCatalog() {
	s.mockService.EXPECT().
		ListCatalog(gomock.Any(), gomock.Any()).
		Return(&battle.ListCatalogOutput{Classes: []string{"Warrior"}, Weapons: []string{"Axe"}, Armors: []string{"Plate"}}, nil)

	rec := s.do(http.MethodGet, "/api/v1alpha1/catalog", nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	var out v1alpha1.CatalogResponse
	s.decode(rec, &out)
	s.Equal([]string{"Warrior"}, out.Classes)
}

func (s *HTTPTestSuite) TestStartBattle() {
	s.mockService.EXPECT().
		StartBattle(gomock.Any(), &battle.StartBattleInput{
			Player: battle.FighterSpec{Name: "Hero", Class: "Warrior", Weapon: "Axe", Armor: "Plate"},
			Enemy:  battle.FighterSpec{Name: "Orc", Class: "Thief", Weapon: "Knife", Armor: "Leather"},
		}).
		Return(&battle.StartBattleOutput{BattleID: "battle_1", Running: true}, nil)

	rec := s.do(http.MethodPost, "/api/v1alpha1/battles", map[string]any{
		"player": map[string]string{"name": "Hero", "class": "Warrior", "weapon": "Axe", "armor": "Plate"},
		"enemy":  map[string]string{"name": "Orc", "class": "Thief", "weapon": "Knife", "armor": "Leather"},
	})
	s.Require().Equal(http.StatusCreated, rec.Code)

	var out v1alpha1.StartBattleResponse
	s.decode(rec, &out)
	s.Equal("battle_1", out.BattleID)
	s.True(out.Running)
}

func (s *HTTPTestSuite) TestStartBattle_BadBody() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1alpha1/battles", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HTTPTestSuite) TestStartBattle_ValidationError() {
	s.mockService.EXPECT().
		StartBattle(gomock.Any(), gomock.Any()).
		Return(nil, errors.InvalidArgument("validation failed: player.name: is required"))

	rec := s.do(http.MethodPost, "/api/v1alpha1/battles", map[string]any{})
	s.Equal(http.StatusBadRequest, rec.Code)

	var out map[string]string
	s.decode(rec, &out)
	s.Equal("INVALID_ARGUMENT", out["code"])
	s.Equal("validation failed: player.name: is required", out["error"])
}

func (s *HTTPTestSuite) TestActions() {
	output := &battle.ActionOutput{
		BattleID: "battle_1",
		Turn: &arena.TurnResult{
			Messages:    []string{"Hero won the battle."},
			BattleEnded: true,
			Outcome:     arena.OutcomePlayerWon,
			Winner:      "Hero",
		},
	}
	input := &battle.ActionInput{BattleID: "battle_1"}

	s.mockService.EXPECT().PlayerHit(gomock.Any(), input).Return(output, nil)
	s.mockService.EXPECT().PlayerUseSkill(gomock.Any(), input).Return(output, nil)
	s.mockService.EXPECT().PassTurn(gomock.Any(), input).Return(output, nil)

	for _, path := range []string{
		"/api/v1alpha1/battles/battle_1/hit",
		"/api/v1alpha1/battles/battle_1/use-skill",
		"/api/v1alpha1/battles/battle_1/pass-turn",
	} {
		rec := s.do(http.MethodPost, path, nil)
		s.Require().Equal(http.StatusOK, rec.Code, path)

		var out v1alpha1.TurnResponse
		s.decode(rec, &out)
		s.True(out.BattleEnded)
		s.Equal("player", out.Outcome)
		s.Equal("Hero", out.Winner)
		s.Equal("Hero won the battle.", out.Message)
	}
}

func (s *HTTPTestSuite) TestErrorStatusMapping() {
	s.mockService.EXPECT().
		PlayerHit(gomock.Any(), gomock.Any()).
		Return(nil, errors.NotFound("battle nope not found"))
	s.mockService.EXPECT().
		GetBattleResult(gomock.Any(), gomock.Any()).
		Return(nil, errors.FailedPrecondition("battle is running, no result yet"))

	rec := s.do(http.MethodPost, "/api/v1alpha1/battles/nope/hit", nil)
	s.Equal(http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodGet, "/api/v1alpha1/battles/battle_1/result", nil)
	s.Equal(http.StatusConflict, rec.Code)
}

func (s *HTTPTestSuite) TestEndBattle() {
	s.mockService.EXPECT().
		EndBattle(gomock.Any(), &battle.EndBattleInput{BattleID: "battle_1"}).
		Return(&battle.EndBattleOutput{}, nil)

	rec := s.do(http.MethodDelete, "/api/v1alpha1/battles/battle_1", nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	var out v1alpha1.EndBattleResponse
	s.decode(rec, &out)
	s.Equal("battle_1", out.BattleID)
	s.False(out.WasRunning)
}

func (s *HTTPTestSuite) TestRecords() {
	s.mockService.EXPECT().
		GetRecord(gomock.Any(), &battle.GetRecordInput{BattleID: "battle_1"}).
		Return(&battle.GetRecordOutput{Record: &battles.Record{ID: "battle_1", Outcome: "enemy"}}, nil)
	s.mockService.EXPECT().
		ListRecords(gomock.Any(), &battle.ListRecordsInput{Limit: 3}).
		Return(&battle.ListRecordsOutput{Records: []*battles.Record{{ID: "battle_1"}}}, nil)

	rec := s.do(http.MethodGet, "/api/v1alpha1/records/battle_1", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var record v1alpha1.Record
	s.decode(rec, &record)
	s.Equal("enemy", record.Outcome)

	rec = s.do(http.MethodGet, "/api/v1alpha1/records?limit=3", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var list v1alpha1.RecordsResponse
	s.decode(rec, &list)
	s.Len(list.Records, 1)

	rec = s.do(http.MethodGet, "/api/v1alpha1/records?limit=lots", nil)
	s.Equal(http.StatusBadRequest, rec.Code)
}
