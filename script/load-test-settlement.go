package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"sort"
	"sync"
	"time"
)

// applyNEuroPayload is the body for PATCH /group/:id/applyNEuro
type applyNEuroPayload struct {
	UserID        string `json:"userId"`
	NEuro         string `json:"nEuro"`
	TotalUsuarios int    `json:"totalUsuarios"`
}

// requestResult contains metrics for a single request
type requestResult struct {
	Success      bool
	StatusCode   int
	ResponseTime time.Duration
	Error        error
}

// runStats aggregates results across all workers
type runStats struct {
	sync.Mutex
	Successful    int
	Failed        int
	StatusCounts  map[int]int
	ResponseTimes []time.Duration
}

func main() {
	baseURL := flag.String("url", "http://localhost:3333", "Base URL for the API")
	groupID := flag.String("g", "", "Group id to target (required)")
	userID := flag.String("u", "", "Optional user id to debit with each application")
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of applyNEuro requests")
	delayMs := flag.Int("delay", 100, "Delay between requests per worker in milliseconds")
	settleBurst := flag.Int("settle", 5, "Number of concurrent next-round calls fired after the load")
	flag.Parse()

	if *groupID == "" {
		fmt.Println("A group id is required (-g)")
		return
	}

	fmt.Printf("Applying nEuro to group %s: %d requests, %d workers, %dms delay\n",
		*groupID, *totalRequests, *concurrency, *delayMs)

	stats := &runStats{
		StatusCounts:  make(map[int]int),
		ResponseTimes: make([]time.Duration, 0, *totalRequests),
	}

	jobs := make(chan int, *totalRequests)
	results := make(chan requestResult, *totalRequests)

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			client := &http.Client{Timeout: 10 * time.Second}
			for range jobs {
				results <- applyNEuro(client, *baseURL, *groupID, *userID)
				time.Sleep(time.Duration(*delayMs) * time.Millisecond)
			}
		}()
	}

	go func() {
		for i := 0; i < *totalRequests; i++ {
			jobs <- i
		}
		close(jobs)
	}()

	done := make(chan struct{})
	go func() {
		for result := range results {
			stats.Lock()
			if result.Success {
				stats.Successful++
			} else {
				stats.Failed++
			}
			stats.StatusCounts[result.StatusCode]++
			stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
			stats.Unlock()
		}
		close(done)
	}()

	start := time.Now()
	wg.Wait()
	close(results)
	<-done
	elapsed := time.Since(start)

	printStats(stats, elapsed)

	// Fire concurrent settlements; the group lock should let exactly one
	// through and reject the rest with 409
	if *settleBurst > 0 {
		fmt.Printf("\nFiring %d concurrent next-round calls...\n", *settleBurst)
		burstResults := make([]requestResult, *settleBurst)
		var burstWg sync.WaitGroup
		for i := 0; i < *settleBurst; i++ {
			burstWg.Add(1)
			go func(i int) {
				defer burstWg.Done()
				client := &http.Client{Timeout: 30 * time.Second}
				burstResults[i] = nextRound(client, *baseURL, *groupID)
			}(i)
		}
		burstWg.Wait()

		settled, rejected := 0, 0
		for _, r := range burstResults {
			switch r.StatusCode {
			case http.StatusOK:
				settled++
			case http.StatusConflict:
				rejected++
			default:
				fmt.Printf("Unexpected settlement status: %d (%v)\n", r.StatusCode, r.Error)
			}
		}
		fmt.Printf("Settled: %d, rejected by lock: %d\n", settled, rejected)
	}
}

func applyNEuro(client *http.Client, baseURL, groupID, userID string) requestResult {
	payload := applyNEuroPayload{
		UserID:        userID,
		NEuro:         "10",
		TotalUsuarios: 1,
	}
	body, _ := json.Marshal(payload)

	url := fmt.Sprintf("%s/group/%s/applyNEuro", baseURL, groupID)
	req, err := http.NewRequest(http.MethodPatch, url, bytes.NewReader(body))
	if err != nil {
		return requestResult{Error: err}
	}
	req.Header.Set("Content-Type", "application/json")

	return timedDo(client, req)
}

func nextRound(client *http.Client, baseURL, groupID string) requestResult {
	url := fmt.Sprintf("%s/group/%s/next-round", baseURL, groupID)
	req, err := http.NewRequest(http.MethodPost, url, nil)
	if err != nil {
		return requestResult{Error: err}
	}

	return timedDo(client, req)
}

func timedDo(client *http.Client, req *http.Request) requestResult {
	start := time.Now()
	resp, err := client.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		return requestResult{ResponseTime: elapsed, Error: err}
	}
	defer resp.Body.Close()

	return requestResult{
		Success:      resp.StatusCode == http.StatusOK,
		StatusCode:   resp.StatusCode,
		ResponseTime: elapsed,
	}
}

func printStats(stats *runStats, elapsed time.Duration) {
	fmt.Printf("\nCompleted in %v\n", elapsed)
	fmt.Printf("Successful: %d, Failed: %d\n", stats.Successful, stats.Failed)
	for code, count := range stats.StatusCounts {
		fmt.Printf("  HTTP %d: %d\n", code, count)
	}

	if len(stats.ResponseTimes) == 0 {
		return
	}
	sort.Slice(stats.ResponseTimes, func(i, j int) bool {
		return stats.ResponseTimes[i] < stats.ResponseTimes[j]
	})
	var total time.Duration
	for _, rt := range stats.ResponseTimes {
		total += rt
	}
	fmt.Printf("Response times: min=%v avg=%v p95=%v max=%v\n",
		stats.ResponseTimes[0],
		total/time.Duration(len(stats.ResponseTimes)),
		stats.ResponseTimes[len(stats.ResponseTimes)*95/100],
		stats.ResponseTimes[len(stats.ResponseTimes)-1])
}
