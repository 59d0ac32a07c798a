package monitor

import (
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/saikumarkadapa/portfolio-api/internal/repository"
)

// LinkMonitor periodically checks that the external links attached to
// portfolio projects (live demo and repository URLs) are still reachable
// and logs any state change, so a dead demo link shows up in the logs
// instead of in front of a visitor.
type LinkMonitor struct {
	projectRepo repository.ProjectRepository
	interval    time.Duration
	knownStates map[string]bool // URL -> reachable, from the previous pass
	mu          sync.Mutex
	httpClient  *http.Client
}

// NewLinkMonitor creates and returns a new LinkMonitor.
func NewLinkMonitor(projectRepo repository.ProjectRepository, interval time.Duration) *LinkMonitor {
	return &LinkMonitor{
		projectRepo: projectRepo,
		interval:    interval,
		knownStates: make(map[string]bool),
		httpClient:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Start runs the monitoring loop. Blocking; run it in a goroutine.
func (m *LinkMonitor) Start() {
	log.Printf("[MONITOR] Starting project link monitor with interval of %v...", m.interval)
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.checkLinks()

	for range ticker.C {
		m.checkLinks()
	}
}

// checkLinks tests every project link and logs transitions between
// reachable and unreachable.
func (m *LinkMonitor) checkLinks() {
	projects, err := m.projectRepo.GetAll()
	if err != nil {
		log.Printf("[MONITOR] ERROR retrieving projects for monitoring: %v", err)
		return
	}

	for _, project := range projects {
		for _, url := range []*string{project.LiveURL, project.GithubURL} {
			if url == nil || *url == "" {
				continue
			}
			currentState := m.isReachable(*url)

			m.mu.Lock()
			previousState, seen := m.knownStates[*url]
			m.knownStates[*url] = currentState
			m.mu.Unlock()

			if !seen {
				log.Printf("[MONITOR] Initial state for %q link %s: %s",
					project.Title, *url, formatState(currentState))
				continue
			}
			if currentState != previousState {
				log.Printf("[MONITOR] Link %s of project %q changed from %s to %s!",
					*url, project.Title, formatState(previousState), formatState(currentState))
			}
		}
	}
}

// isReachable performs an HTTP HEAD request and treats 2xx/3xx as up.
func (m *LinkMonitor) isReachable(url string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		log.Printf("[MONITOR] Error creating request for URL '%s': %v", url, err)
		return false
	}
	resp, err := m.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode >= 200 && resp.StatusCode < 400
}

func formatState(reachable bool) string {
	if reachable {
		return "REACHABLE"
	}
	return "UNREACHABLE"
}
