package main

import (
	"bytes"
	"fmt"
	json "github.com/goccy/go-json"
	"io"
	"math/rand"
	"net"
	"net/http"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

const (
	baseURL      = "http://127.0.0.1:18090"
	numWorkers   = 50
	testDuration = 10 * time.Second
	numUsers     = 20
)

var moodTags = []string{"work", "sleep", "family", "exercise", "anxiety", "rest"}

var httpClient = &http.Client{
	Timeout: 5 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        200,
		MaxIdleConnsPerHost: 200,
		IdleConnTimeout:     30 * time.Second,
		DialContext: (&net.Dialer{
			Timeout:   2 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
	},
}

type result struct {
	endpoint string
	status   int
	latency  time.Duration
	err      bool
}

type stats struct {
	count     int64
	errors    int64
	latencies []time.Duration
}

func main() {
	fmt.Println("=== MindCare Load Test ===")
	fmt.Printf("Workers: %d | Duration: %s | Users: %d\n\n", numWorkers, testDuration, numUsers)

	fmt.Print("Waiting for server... ")
	for i := 0; i < 30; i++ {
		resp, err := httpClient.Get(baseURL + "/health")
		if err == nil {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			break
		}
		if i == 29 {
			fmt.Println("FAILED: server not responding")
			return
		}
		time.Sleep(200 * time.Millisecond)
	}
	fmt.Println("OK")

	fmt.Print("Registering users... ")
	tokens, err := setupUsers(numUsers)
	if err != nil {
		fmt.Printf("FAILED: %s\n", err)
		return
	}
	fmt.Printf("OK (%d tokens)\n", len(tokens))

	fmt.Println("\n--- Phase 1: Seeding data (POST /api/moods, POST /api/journal) ---")
	runPhase(testDuration, func(rng *rand.Rand) result {
		token := tokens[rng.Intn(len(tokens))]
		if rng.Float64() < 0.8 {
			return doPostMood(rng, token)
		}
		return doPostJournal(rng, token)
	})

	fmt.Println("\n--- Phase 2: Mixed load (50% write, 50% read) ---")
	runPhase(testDuration, func(rng *rand.Rand) result {
		token := tokens[rng.Intn(len(tokens))]
		r := rng.Float64()
		switch {
		case r < 0.40:
			return doPostMood(rng, token)
		case r < 0.50:
			return doPostJournal(rng, token)
		case r < 0.70:
			return doGet("/api/moods?limit=50", token)
		case r < 0.85:
			return doGet("/api/moods/stats?days=30", token)
		default:
			return doGet("/api/ai/recommendations", token)
		}
	})

	fmt.Println("\n--- Phase 3: Read-heavy load (10% write, 90% read) ---")
	runPhase(testDuration, func(rng *rand.Rand) result {
		token := tokens[rng.Intn(len(tokens))]
		r := rng.Float64()
		switch {
		case r < 0.10:
			return doPostMood(rng, token)
		case r < 0.40:
			return doGet("/api/moods/stats?days=30", token)
		case r < 0.60:
			return doGet("/api/journal/search?query=sleep", token)
		case r < 0.80:
			return doGet("/api/ai/recommendations", token)
		default:
			return doGet("/api/auth/me", token)
		}
	})
}

// setupUsers registers n throwaway accounts and logs each one in.
func setupUsers(n int) ([]string, error) {
	stamp := time.Now().UnixNano()
	tokens := make([]string, 0, n)
	for i := 0; i < n; i++ {
		creds := map[string]string{
			"email":    fmt.Sprintf("load_%d_%d@example.com", stamp, i),
			"password": "loadtest-password",
			"name":     fmt.Sprintf("Load %d", i),
		}
		status, _, err := send(http.MethodPost, "/api/auth/register", "", creds)
		if err != nil {
			return nil, err
		}
		if status != http.StatusCreated {
			return nil, fmt.Errorf("register returned %d", status)
		}
		delete(creds, "name")
		status, body, err := send(http.MethodPost, "/api/auth/login", "", creds)
		if err != nil {
			return nil, err
		}
		if status != http.StatusOK {
			return nil, fmt.Errorf("login returned %d", status)
		}
		var token struct {
			AccessToken string `json:"access_token"`
		}
		if err := json.Unmarshal(body, &token); err != nil {
			return nil, err
		}
		tokens = append(tokens, token.AccessToken)
	}
	return tokens, nil
}

func send(method, path, token string, payload any) (int, []byte, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, err
		}
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, baseURL+path, body)
	if err != nil {
		return 0, nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	return resp.StatusCode, data, err
}

func runPhase(duration time.Duration, workFn func(rng *rand.Rand) result) {
	results := make(chan result, 10000)
	var wg sync.WaitGroup
	var totalOps atomic.Int64
	stop := make(chan struct{})

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			for {
				select {
				case <-stop:
					return
				default:
					r := workFn(rng)
					totalOps.Add(1)
					results <- r
				}
			}
		}(rand.Int63() + int64(i))
	}

	allResults := make(map[string]*stats)
	done := make(chan struct{})
	go func() {
		for r := range results {
			s, ok := allResults[r.endpoint]
			if !ok {
				s = &stats{}
				allResults[r.endpoint] = s
			}
			s.count++
			if r.err {
				s.errors++
			}
			s.latencies = append(s.latencies, r.latency)
		}
		close(done)
	}()

	time.Sleep(duration)
	close(stop)
	wg.Wait()
	close(results)
	<-done

	printResults(allResults, duration)
}

func printResults(allResults map[string]*stats, duration time.Duration) {
	var totalOps int64
	var totalErrors int64

	endpoints := make([]string, 0, len(allResults))
	for ep := range allResults {
		endpoints = append(endpoints, ep)
	}
	sort.Strings(endpoints)

	fmt.Printf("\n  %-30s %8s %6s %10s %10s %10s %10s\n",
		"Endpoint", "Reqs", "Errs", "Avg", "P50", "P95", "P99")
	fmt.Println("  " + strings.Repeat("-", 88))

	for _, ep := range endpoints {
		s := allResults[ep]
		totalOps += s.count
		totalErrors += s.errors

		sort.Slice(s.latencies, func(i, j int) bool {
			return s.latencies[i] < s.latencies[j]
		})

		avg := avgDuration(s.latencies)
		p50 := percentile(s.latencies, 0.50)
		p95 := percentile(s.latencies, 0.95)
		p99 := percentile(s.latencies, 0.99)

		fmt.Printf("  %-30s %8d %6d %10s %10s %10s %10s\n",
			ep, s.count, s.errors, fmtDur(avg), fmtDur(p50), fmtDur(p95), fmtDur(p99))
	}

	rps := float64(totalOps) / duration.Seconds()
	fmt.Println("  " + strings.Repeat("-", 88))
	fmt.Printf("  Total: %d reqs | Errors: %d (%.1f%%) | RPS: %.0f\n",
		totalOps, totalErrors, float64(totalErrors)/float64(totalOps)*100, rps)
}

func timed(method, path, token string, payload any, want int) result {
	endpoint := method + " " + strings.SplitN(path, "?", 2)[0]
	start := time.Now()
	status, _, err := send(method, path, token, payload)
	lat := time.Since(start)
	if err != nil {
		return result{endpoint, 0, lat, true}
	}
	return result{endpoint, status, lat, status != want}
}

func doPostMood(rng *rand.Rand, token string) result {
	tags := make([]string, rng.Intn(3))
	for i := range tags {
		tags[i] = moodTags[rng.Intn(len(moodTags))]
	}
	body := map[string]any{
		"mood_rating": rng.Intn(10) + 1,
		"tags":        tags,
	}
	if rng.Float64() < 0.3 {
		body["notes"] = "felt a bit tired after work"
	}
	return timed(http.MethodPost, "/api/moods", token, body, http.StatusCreated)
}

func doPostJournal(rng *rand.Rand, token string) result {
	body := map[string]any{
		"title":   fmt.Sprintf("Entry %d", rng.Intn(1000)),
		"content": "Slept better last night and went for a walk. Work was stressful but manageable.",
		"tags":    []string{moodTags[rng.Intn(len(moodTags))]},
	}
	return timed(http.MethodPost, "/api/journal", token, body, http.StatusCreated)
}

func doGet(path, token string) result {
	return timed(http.MethodGet, path, token, nil, http.StatusOK)
}

func avgDuration(d []time.Duration) time.Duration {
	if len(d) == 0 {
		return 0
	}
	var sum time.Duration
	for _, v := range d {
		sum += v
	}
	return sum / time.Duration(len(d))
}

func percentile(d []time.Duration, p float64) time.Duration {
	if len(d) == 0 {
		return 0
	}
	idx := int(float64(len(d)) * p)
	if idx >= len(d) {
		idx = len(d) - 1
	}
	return d[idx]
}

func fmtDur(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	return fmt.Sprintf("%.1fms", float64(d.Microseconds())/1000.0)
}
