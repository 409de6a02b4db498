package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

var maxElders int = 1000
var logsPerElder int = 10
var httpHostPort string = "127.0.0.1:3000"

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

var logTypes = []struct {
	name string
	unit string
	min  float64
	max  float64
}{
	{"heart_rate", "bpm", 50, 110},
	{"blood_sugar", "mg/dL", 70, 160},
	{"temperature", "C", 35.5, 38},
}

func postJSON(path string, payload any) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return http.Post(
		fmt.Sprintf("http://%s%s", httpHostPort, path),
		"application/json",
		bytes.NewReader(body),
	)
}

func registerElder() (int, error) {
	resp, err := postJSON("/api/auth/register", map[string]any{
		"name":     "Bench Elder " + uuid.NewString()[:8],
		"email":    uuid.NewString() + "@bench.local",
		"password": "bench-password",
		"role":     "elderly",
	})
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("register returned status %d", resp.StatusCode)
	}

	var result struct {
		UserID int `json:"userId"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return 0, err
	}
	return result.UserID, nil
}

func postHealthLog(userID int) error {
	lt := logTypes[rnd.Intn(len(logTypes))]
	value := lt.min + rnd.Float64()*(lt.max-lt.min)

	resp, err := postJSON("/api/health-logs", map[string]any{
		"userId":  userID,
		"logType": lt.name,
		"value":   fmt.Sprintf("%.1f", value),
		"unit":    lt.unit,
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health log returned status %d", resp.StatusCode)
	}
	return nil
}

func main() {
	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	var startTime time.Time

	startTime = time.Now()
	userIDs := make([]int, maxElders)
	wg := sync.WaitGroup{}
	for i := range maxElders {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id, err := registerElder()
			if err != nil {
				log.Printf("register failed: %v", err)
				return
			}
			userIDs[i] = id
		}(i)
	}
	wg.Wait()
	fmt.Printf("registered %v elders in %v\n", maxElders, time.Since(startTime))

	startTime = time.Now()
	for _, userID := range userIDs {
		if userID == 0 {
			continue
		}
		wg.Add(1)
		go func(userID int) {
			defer wg.Done()
			for range logsPerElder {
				if err := postHealthLog(userID); err != nil {
					log.Printf("health log failed: %v", err)
					return
				}
			}
		}(userID)
	}
	wg.Wait()
	fmt.Printf("posted %v health logs in %v\n", maxElders*logsPerElder, time.Since(startTime))
}
