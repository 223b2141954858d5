package testutils

import (
	"github.com/celala99/cela-geo-quest/internal/entities"
)

// Region IDs in the test dataset
const (
	RegionNile   = "nile"
	RegionAlps   = "alps"
	RegionSahara = "sahara"
)

// NewTestDataset returns a dataset with one creature per combat mode:
//   - nile: difficulty 3, hp 7, one quiz (correct answer 1)
//   - alps: difficulty 5, hp 9, two quizzes (answers 1 and 2)
//   - sahara: difficulty 1, no quizzes (fallback mode)
func NewTestDataset() *entities.Dataset {
	return &entities.Dataset{
		Version: 1,
		Monsters: map[string]entities.Creature{
			RegionNile: {
				Name:       "River Sphinx",
				Species:    "sphinx",
				Difficulty: 3,
				HP:         7,
				Quizzes: []entities.Quiz{
					{
						Question: "Into which sea does the Nile flow?",
						Choices:  [entities.ChoiceCount]string{"Red Sea", "Mediterranean Sea", "Arabian Sea", "Black Sea"},
						Answer:   1,
						Hint:     "Think of Alexandria.",
					},
				},
			},
			RegionAlps: {
				Name:       "Glacier Wyrm",
				Species:    "dragon",
				Difficulty: 5,
				HP:         9,
				Quizzes: []entities.Quiz{
					{
						Question: "What is the highest mountain in the Alps?",
						Choices:  [entities.ChoiceCount]string{"Matterhorn", "Mont Blanc", "Eiger", "Zugspitze"},
						Answer:   1,
					},
					{
						Question: "Which country is NOT an Alpine country?",
						Choices:  [entities.ChoiceCount]string{"Austria", "Slovenia", "Belgium", "Switzerland"},
						Answer:   2,
					},
				},
			},
			RegionSahara: {
				Name:       "Dune Golem",
				Species:    "golem",
				Difficulty: 1,
				HP:         3,
			},
		},
	}
}
