package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/kimranazman/mymandarin/internal/ai"
	"github.com/kimranazman/mymandarin/internal/catalog"
	"github.com/kimranazman/mymandarin/internal/database"
	"github.com/kimranazman/mymandarin/internal/engine"
	"github.com/kimranazman/mymandarin/internal/quiz"
	"github.com/kimranazman/mymandarin/internal/scheduler"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	quizMode := flag.Bool("quiz", false, "run one interactive quiz session and exit")
	category := flag.String("category", "", "limit the quiz to one category")
	count := flag.Int("count", 10, "number of quiz questions")
	reset := flag.Bool("reset", false, "erase all learning progress and exit")
	flag.Parse()

	if err := database.Connect(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	cat, err := loadCatalog()
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	eng := engine.New(cat, database.NewSnapshotRepository())

	if *reset {
		eng.ResetAll()
		log.Println("All learning progress erased")
		return
	}

	if *quizMode {
		runQuiz(eng, *category, *count)
		return
	}

	snapshot := eng.Snapshot()
	log.Printf("Catalog: %d words in %d categories", cat.Len(), len(cat.Categories()))
	log.Printf("Due today: %d | streak: %d day(s) | accuracy: %d%%",
		snapshot.DueToday, snapshot.CurrentStreak, snapshot.Accuracy)

	sched := scheduler.New(eng, scheduler.LogNotifier{})
	sched.Start()
	defer sched.Stop()

	log.Println("Reminder scheduler started. Press Ctrl+C to stop.")
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	sig := <-sigChan
	log.Printf("Received signal: %v", sig)
}

// loadCatalog reads the catalog file named by CATALOG_FILE, falling back
// to the built-in starter set.
func loadCatalog() (*catalog.Catalog, error) {
	path := os.Getenv("CATALOG_FILE")
	if path == "" {
		return catalog.Builtin(), nil
	}

	cat, result, err := catalog.Import(catalog.DefaultImportConfig(path))
	if err != nil {
		return nil, err
	}
	for _, e := range result.Errors {
		log.Printf("catalog import: %s", e)
	}
	log.Printf("Imported %d of %d catalog rows from %s", result.Imported, result.TotalProcessed, path)
	return cat, nil
}

// runQuiz runs one interactive multiple choice session on the terminal.
func runQuiz(eng *engine.Engine, category string, count int) {
	q := quiz.New(eng)
	questions := q.CreateQuiz(category, count, quiz.MultipleChoice)
	if len(questions) == 0 {
		fmt.Println("No words available for this scope.")
		return
	}

	session := q.Start(quiz.MultipleChoice, quiz.Normal, category)
	reader := bufio.NewReader(os.Stdin)

	for i, question := range questions {
		fmt.Printf("\n[%d/%d] %s (%s)\n", i+1, len(questions), question.Word.Hanzi, question.Word.Pinyin)
		for j, opt := range question.Options {
			fmt.Printf("  %d) %s\n", j+1, opt)
		}

		started := time.Now()
		correct := askChoice(reader, question)
		session.Answer(question.Word, correct, 1, int(time.Since(started).Milliseconds()))

		if correct {
			fmt.Println("Correct!")
			continue
		}

		fmt.Println("Not quite, try again:")
		correct = askChoice(reader, question)
		session.Answer(question.Word, correct, 2, 0)
		if correct {
			fmt.Println("Correct!")
		} else {
			fmt.Printf("The answer was: %s\n", question.Word.Meaning)
		}
	}

	result := session.Finish()
	fmt.Printf("\nScore: %d/%d (%d on first attempt) in %ds\n",
		result.CorrectWords, result.TotalWords, result.FirstAttemptCorrect, result.Duration)

	showStruggleWords(eng)
}

// askChoice reads a 1-based option number from the terminal and reports
// whether it was the correct one.
func askChoice(reader *bufio.Reader, question quiz.Question) bool {
	for {
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return false
		}
		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || choice < 1 || choice > len(question.Options) {
			fmt.Printf("Enter a number between 1 and %d\n", len(question.Options))
			continue
		}
		return choice-1 == question.CorrectIndex
	}
}

// showStruggleWords lists the words flagged for extra practice, with an
// AI-generated example sentence for the hardest one when available.
func showStruggleWords(eng *engine.Engine) {
	struggles := eng.StruggleWords()
	if len(struggles) == 0 {
		return
	}

	fmt.Println("\nWords to revisit:")
	for _, w := range struggles {
		fmt.Printf("  %s (%s) — %s\n", w.Hanzi, w.Pinyin, w.Meaning)
	}

	gen, err := ai.New()
	if err != nil {
		// No API key configured; skip the example
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	fmt.Printf("\nExample: %s\n", gen.GenerateExampleWithFallback(ctx, struggles[0]))
}
