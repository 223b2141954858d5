package dataset

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"math"

	"github.com/celala99/cela-geo-quest/internal/entities"
	"github.com/celala99/cela-geo-quest/internal/errors"
)

// Parse decodes a JSON dataset document, validates its shape and normalizes
// every creature.
func Parse(data []byte) (*entities.Dataset, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidDataset, "dataset is not valid JSON")
	}

	// exactly one document
	var extra any
	if err := dec.Decode(&extra); err != io.EOF {
		return nil, errors.InvalidDataset("dataset has trailing data after the document")
	}

	return FromDocument(doc)
}

// FromDocument builds a Dataset from an already decoded document
func FromDocument(doc any) (*entities.Dataset, error) {
	if err := Validate(doc); err != nil {
		return nil, err
	}

	fields := doc.(map[string]any)
	version, _ := toNumber(fields["version"])
	monsters := fields["monsters"].(map[string]any)

	ds := &entities.Dataset{
		Version:  int(version),
		Monsters: make(map[string]entities.Creature, len(monsters)),
	}
	for regionID, raw := range monsters {
		ds.Monsters[regionID] = NormalizeCreature(regionID, raw)
	}

	return ds, nil
}

// NormalizeCreature fills defaults and clamps numeric fields of a raw creature
// entry. Anything that is not an object yields a default creature named after
// its region.
func NormalizeCreature(regionID string, raw any) entities.Creature {
	c := entities.Creature{
		Name:       regionID,
		Difficulty: entities.MinDifficulty,
		HP:         entities.DefaultCreatureHP,
	}

	fields, ok := raw.(map[string]any)
	if !ok {
		slog.Warn("Creature entry is not an object, using defaults",
			"region_id", regionID,
		)
		return c
	}

	if name := stringField(fields, "name"); name != "" {
		c.Name = name
	}
	c.Species = stringField(fields, "species")
	c.Image = stringField(fields, "image")
	c.Description = stringField(fields, "desc")

	if d, ok := toNumber(fields["difficulty"]); ok {
		c.Difficulty = entities.ClampDifficulty(roundToInt(d))
	}
	if hp, ok := toNumber(fields["hp"]); ok && hp >= 1 {
		c.HP = entities.ClampCreatureHP(roundToInt(hp))
	}

	c.Quizzes = normalizeQuizzes(regionID, fields["quizzes"])
	return c
}

func normalizeQuizzes(regionID string, raw any) []entities.Quiz {
	items, ok := raw.([]any)
	if !ok {
		return nil
	}

	quizzes := make([]entities.Quiz, 0, len(items))
	for i, item := range items {
		quiz, ok := normalizeQuiz(item)
		if !ok {
			slog.Warn("Dropping malformed quiz",
				"region_id", regionID,
				"quiz_index", i,
			)
			continue
		}
		quizzes = append(quizzes, quiz)
	}
	return quizzes
}

// normalizeQuiz requires exactly four string choices and an answer index
// pointing at one of them
func normalizeQuiz(raw any) (entities.Quiz, bool) {
	fields, ok := raw.(map[string]any)
	if !ok {
		return entities.Quiz{}, false
	}

	choices, ok := fields["c"].([]any)
	if !ok || len(choices) != entities.ChoiceCount {
		return entities.Quiz{}, false
	}

	answer, ok := toNumber(fields["a"])
	if !ok || answer != math.Trunc(answer) || answer < 0 || answer >= entities.ChoiceCount {
		return entities.Quiz{}, false
	}

	quiz := entities.Quiz{
		Question: stringField(fields, "q"),
		Answer:   int(answer),
		Hint:     stringField(fields, "hint"),
	}
	for i, choice := range choices {
		text, ok := choice.(string)
		if !ok {
			return entities.Quiz{}, false
		}
		quiz.Choices[i] = text
	}

	return quiz, true
}

func stringField(fields map[string]any, key string) string {
	s, _ := fields[key].(string)
	return s
}

// roundToInt bounds f before converting so oversized values still clamp
func roundToInt(f float64) int {
	const limit = 1 << 20
	if f > limit {
		return limit
	}
	if f < -limit {
		return -limit
	}
	return int(math.Round(f))
}
