package main

import (
    "bufio"
    "context"
    "errors"
    "fmt"
    "os"
    "strconv"
    "strings"

    "github.com/joho/godotenv"
    log "github.com/sirupsen/logrus"

    "github.com/example/bedtime-storyteller/internal/agents"
    "github.com/example/bedtime-storyteller/internal/orchestrator"
    "github.com/example/bedtime-storyteller/internal/providers/llm"
)

func main() {
    // .env is optional; real env vars win either way.
    _ = godotenv.Load()

    log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
    log.SetLevel(logLevelFromEnv())

    fmt.Print("What kind of story do you want to hear? ")
    reader := bufio.NewReader(os.Stdin)
    input, _ := reader.ReadString('\n')
    if strings.TrimSpace(input) == "" {
        fmt.Println("Please share a short prompt for the bedtime story.")
        return
    }

    client, err := llm.NewFromEnv()
    if err != nil {
        var cfgErr *llm.ConfigError
        if errors.As(err, &cfgErr) {
            fmt.Fprintln(os.Stderr, cfgErr.Message)
            os.Exit(1)
        }
        log.Fatal(err)
    }

    session := orchestrator.New(
        &agents.LLMStoryteller{Client: client},
        &agents.LLMJudge{Client: client},
        maxRoundsFromEnv(),
    )

    result, err := session.Run(context.Background(), input)
    if err != nil {
        log.Fatal(err)
    }

    fmt.Println("\nHere is your bedtime story:")
    fmt.Println()
    fmt.Println(result.Story)

    if result.RoundsTaken > 1 {
        fmt.Printf("\n(Story refined with %d rounds.)\n", result.RoundsTaken)
    }

    if !result.Approved {
        fmt.Println("\nThe judge still sees room for improvement after the final round.")
        if result.Verdict != nil && len(result.Verdict.Feedback) > 0 {
            fmt.Println("Latest suggestions:")
            for _, note := range result.Verdict.Feedback {
                fmt.Printf("- %s\n", note)
            }
        }
        fmt.Println("\nJudge report:")
        fmt.Println(strings.TrimSpace(result.RawJudge))
    }
}

func maxRoundsFromEnv() int {
    v := strings.TrimSpace(os.Getenv("STORY_MAX_ROUNDS"))
    if v == "" {
        return orchestrator.DefaultMaxRounds
    }
    n, err := strconv.Atoi(v)
    if err != nil || n < 1 {
        log.Warnf("ignoring invalid STORY_MAX_ROUNDS=%q", v)
        return orchestrator.DefaultMaxRounds
    }
    return n
}

func logLevelFromEnv() log.Level {
    v := strings.TrimSpace(os.Getenv("LOG_LEVEL"))
    if v == "" {
        return log.WarnLevel
    }
    lvl, err := log.ParseLevel(v)
    if err != nil {
        return log.WarnLevel
    }
    return lvl
}
