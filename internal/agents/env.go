package agents

import (
    "os"
    "strconv"
    "strings"
)

func floatFromEnv(envKey string, def float64) float64 {
    v := strings.TrimSpace(os.Getenv(envKey))
    if v == "" {
        return def
    }
    f, err := strconv.ParseFloat(v, 64)
    if err != nil || f < 0 || f > 1 {
        return def
    }
    return f
}
