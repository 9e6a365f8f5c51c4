// Package quiz builds quiz questions over the engine's due words and
// feeds the outcomes back as review and session events.
package quiz

import (
	"math/rand"
	"time"

	"github.com/kimranazman/mymandarin/internal/engine"
	"github.com/kimranazman/mymandarin/pkg/models"
)

// Mode represents different kinds of quizzes
type Mode string

const (
	// MultipleChoice shows a word and several candidate meanings
	MultipleChoice Mode = "multiple_choice"
	// TextInput asks the user to type the meaning
	TextInput Mode = "text_input"
)

// Difficulty tags a quiz run; it scales the question count in the caller.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Normal Difficulty = "normal"
	Hard   Difficulty = "hard"
)

// optionCount is the number of answers shown for a multiple choice question.
const optionCount = 4

// Question represents a single quiz question
type Question struct {
	Word         models.Word
	Mode         Mode
	Options      []string // Candidate meanings (for multiple choice)
	CorrectIndex int      // Index of the correct meaning in Options
}

// Quiz generates questions from the engine's scheduling state.
type Quiz struct {
	engine *engine.Engine
	rnd    *rand.Rand
}

// New creates a quiz generator
func New(e *engine.Engine) *Quiz {
	return &Quiz{
		engine: e,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateQuiz builds up to count questions, preferring words that are due
// for review and padding with the rest of the scope when too few are due.
// An empty category means the whole catalog.
func (q *Quiz) CreateQuiz(category string, count int, mode Mode) []Question {
	pool := q.engine.AllWords()
	if category != "" {
		pool = q.engine.WordsByCategory(category)
	}

	due := make(map[string]bool)
	for _, w := range q.engine.DueForReview() {
		due[w.Pinyin] = true
	}

	var dueWords, restWords []models.Word
	for _, w := range pool {
		if due[w.Pinyin] {
			dueWords = append(dueWords, w)
		} else {
			restWords = append(restWords, w)
		}
	}

	q.shuffle(dueWords)
	q.shuffle(restWords)

	words := append(dueWords, restWords...)
	if len(words) > count {
		words = words[:count]
	}

	questions := make([]Question, 0, len(words))
	for _, word := range words {
		question := Question{
			Word: word,
			Mode: mode,
		}

		if mode == MultipleChoice {
			options := q.incorrectOptions(word, pool, optionCount-1)
			options = append(options, word.Meaning)
			correctIndex := len(options) - 1

			q.rnd.Shuffle(len(options), func(i, j int) {
				if i == correctIndex {
					correctIndex = j
				} else if j == correctIndex {
					correctIndex = i
				}
				options[i], options[j] = options[j], options[i]
			})

			question.Options = options
			question.CorrectIndex = correctIndex
		}

		questions = append(questions, question)
	}

	return questions
}

// incorrectOptions picks distractor meanings, preferring words from the
// same category so the choices stay plausible.
func (q *Quiz) incorrectOptions(word models.Word, pool []models.Word, count int) []string {
	options := make([]string, 0, count)
	used := map[string]bool{word.Meaning: true}

	sameCategory := q.engine.WordsByCategory(word.Category)
	candidates := make([]models.Word, 0, len(sameCategory))
	for _, w := range sameCategory {
		if w.Pinyin != word.Pinyin {
			candidates = append(candidates, w)
		}
	}
	q.shuffle(candidates)

	for _, w := range candidates {
		if len(options) >= count {
			break
		}
		if !used[w.Meaning] {
			used[w.Meaning] = true
			options = append(options, w.Meaning)
		}
	}

	// Fall back to the rest of the scope when the category is too small
	if len(options) < count {
		rest := append([]models.Word(nil), pool...)
		q.shuffle(rest)
		for _, w := range rest {
			if len(options) >= count {
				break
			}
			if w.Pinyin != word.Pinyin && !used[w.Meaning] {
				used[w.Meaning] = true
				options = append(options, w.Meaning)
			}
		}
	}

	return options
}

func (q *Quiz) shuffle(words []models.Word) {
	q.rnd.Shuffle(len(words), func(i, j int) {
		words[i], words[j] = words[j], words[i]
	})
}
