package dataset_test

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/celala99/cela-geo-quest/internal/dataset"
	"github.com/celala99/cela-geo-quest/internal/entities"
	"github.com/celala99/cela-geo-quest/internal/errors"
)

type DatasetTestSuite struct {
	suite.Suite
}

func TestDatasetSuite(t *testing.T) {
	suite.Run(t, new(DatasetTestSuite))
}

func (s *DatasetTestSuite) TestValidate() {
	testCases := []struct {
		name    string
		doc     any
		wantErr bool
	}{
		{name: "valid envelope", doc: map[string]any{"version": json.Number("1"), "monsters": map[string]any{}}},
		{name: "float version", doc: map[string]any{"version": 2.0, "monsters": map[string]any{}}},
		{name: "not an object", doc: []any{1, 2}, wantErr: true},
		{name: "nil document", doc: nil, wantErr: true},
		{name: "missing version", doc: map[string]any{"monsters": map[string]any{}}, wantErr: true},
		{name: "string version", doc: map[string]any{"version": "1", "monsters": map[string]any{}}, wantErr: true},
		{name: "missing monsters", doc: map[string]any{"version": 1}, wantErr: true},
		{name: "monsters is a list", doc: map[string]any{"version": 1, "monsters": []any{}}, wantErr: true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := dataset.Validate(tc.doc)
			if tc.wantErr {
				s.Require().Error(err)
				s.True(errors.IsInvalidDataset(err))
				return
			}
			s.NoError(err)
		})
	}
}

func (s *DatasetTestSuite) TestParse_MissingMonstersRejected() {
	ds, err := dataset.Parse([]byte(`{"version": 1}`))

	s.Nil(ds)
	s.Require().Error(err)
	s.True(errors.IsInvalidDataset(err))
}

func (s *DatasetTestSuite) TestParse_InvalidJSON() {
	_, err := dataset.Parse([]byte(`{"version": `))

	s.Require().Error(err)
	s.True(errors.IsInvalidDataset(err))
}

func (s *DatasetTestSuite) TestParse_TrailingDataRejected() {
	for _, input := range []string{
		`{"version":1,"monsters":{}} garbage`,
		`{"version":1,"monsters":{}}{"version":2,"monsters":{}}`,
	} {
		_, err := dataset.Parse([]byte(input))

		s.Require().Error(err, input)
		s.True(errors.IsInvalidDataset(err), input)
	}

	ds, err := dataset.Parse([]byte("{\"version\":1,\"monsters\":{}}\n\n"))
	s.Require().NoError(err)
	s.Equal(1, ds.Version)
}

func (s *DatasetTestSuite) TestParse_Testdata() {
	data, err := os.ReadFile("testdata/dataset.json")
	s.Require().NoError(err)

	ds, err := dataset.Parse(data)
	s.Require().NoError(err)

	s.Equal(3, ds.Version)
	s.Equal([]string{"alps", "nile", "sahara"}, ds.RegionIDs())

	alps, ok := ds.Creature("alps")
	s.Require().True(ok)
	s.Equal("Glacier Wyrm", alps.Name)
	s.Equal(5, alps.Difficulty)
	s.Equal(9, alps.HP)
	s.Require().Len(alps.Quizzes, 2)
	s.Equal(1, alps.Quizzes[0].Answer)
	s.Equal("Mont Blanc", alps.Quizzes[0].Choices[1])
	s.Equal("It sits on the French-Italian border.", alps.Quizzes[0].Hint)

	sahara, ok := ds.Creature("sahara")
	s.Require().True(ok)
	s.Equal(entities.DefaultCreatureHP, sahara.HP)
	s.Empty(sahara.Quizzes)
}

func (s *DatasetTestSuite) TestNormalizeCreature_Defaults() {
	testCases := []struct {
		name           string
		raw            any
		wantName       string
		wantDifficulty int
		wantHP         int
	}{
		{
			name:           "not an object",
			raw:            "oops",
			wantName:       "atlantis",
			wantDifficulty: 1,
			wantHP:         7,
		},
		{
			name:           "difficulty above range is clamped",
			raw:            map[string]any{"name": "Kraken", "difficulty": json.Number("9"), "hp": json.Number("12")},
			wantName:       "Kraken",
			wantDifficulty: 5,
			wantHP:         12,
		},
		{
			name:           "difficulty below range is clamped",
			raw:            map[string]any{"difficulty": json.Number("-2")},
			wantName:       "atlantis",
			wantDifficulty: 1,
			wantHP:         7,
		},
		{
			name:           "hp below one falls back to default",
			raw:            map[string]any{"hp": json.Number("0")},
			wantName:       "atlantis",
			wantDifficulty: 1,
			wantHP:         7,
		},
		{
			name:           "hp as string falls back to default",
			raw:            map[string]any{"hp": "ten"},
			wantName:       "atlantis",
			wantDifficulty: 1,
			wantHP:         7,
		},
		{
			name:           "small hp is raised to minimum",
			raw:            map[string]any{"hp": json.Number("1")},
			wantName:       "atlantis",
			wantDifficulty: 1,
			wantHP:         3,
		},
		{
			name:           "huge hp is lowered to maximum",
			raw:            map[string]any{"hp": json.Number("1e40")},
			wantName:       "atlantis",
			wantDifficulty: 1,
			wantHP:         30,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			c := dataset.NormalizeCreature("atlantis", tc.raw)
			s.Equal(tc.wantName, c.Name)
			s.Equal(tc.wantDifficulty, c.Difficulty)
			s.Equal(tc.wantHP, c.HP)
		})
	}
}

func (s *DatasetTestSuite) TestNormalizeCreature_DropsMalformedQuizzes() {
	raw := map[string]any{
		"quizzes": []any{
			map[string]any{"q": "ok", "c": []any{"a", "b", "c", "d"}, "a": json.Number("3")},
			map[string]any{"q": "three choices", "c": []any{"a", "b", "c"}, "a": json.Number("0")},
			map[string]any{"q": "answer out of range", "c": []any{"a", "b", "c", "d"}, "a": json.Number("4")},
			map[string]any{"q": "fractional answer", "c": []any{"a", "b", "c", "d"}, "a": json.Number("1.5")},
			map[string]any{"q": "numeric choice", "c": []any{"a", 2, "c", "d"}, "a": json.Number("0")},
			"not a quiz",
		},
	}

	c := dataset.NormalizeCreature("x", raw)

	s.Require().Len(c.Quizzes, 1)
	s.Equal("ok", c.Quizzes[0].Question)
	s.Equal(3, c.Quizzes[0].Answer)
}
