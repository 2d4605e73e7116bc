package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/fatih/color"
)

// Manual smoke test for the HTTP surface. Run it against a live server with
// a migrated database and Ollama reachable:
//
//	go run scripts/test_search_api.go
//
// BASE_URL overrides the default server address; API_TOKEN adds a bearer
// header when the server runs with JWT_SECRET set.

func baseURL() string {
	if v := os.Getenv("BASE_URL"); v != "" {
		return v
	}
	return "http://localhost:3000"
}

// Pretty print JSON helper
func prettyPrint(v interface{}) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%v\n", v)
		return
	}
	fmt.Println(string(b))
}

// Request helper
func sendRequest(method, url, sessionID string, body interface{}) (*http.Response, []byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL()+url, bodyReader)
	if err != nil {
		return nil, nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	if sessionID != "" {
		req.Header.Set("X-Session-Id", sessionID)
	}
	if token := os.Getenv("API_TOKEN"); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	return resp, respBody, err
}

func main() {
	color.Cyan("Starting Regulation Corpus API Test\n")

	// 1. Health check
	color.Yellow("\n1. Health Check")
	resp, body, err := sendRequest("GET", "/health", "", nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)

	// 2. Dashboard state creates a session
	color.Yellow("\n2. Get Dashboard State (creates a session)")
	resp, body, err = sendRequest("GET", "/api/dashboard/v1/state", "", nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)

	var stateResp map[string]interface{}
	json.Unmarshal(body, &stateResp)
	var sessionID string
	if data, ok := stateResp["data"].(map[string]interface{}); ok {
		if id, ok := data["session_id"].(string); ok {
			sessionID = id
			fmt.Printf("Session ID: %s\n", sessionID)
		}
	}
	if sessionID == "" {
		color.Red("Failed: no session id in dashboard state")
		os.Exit(1)
	}

	// 3. Direct semantic search
	color.Yellow("\n3. Semantic Search (Direct)")
	searchReq := map[string]interface{}{
		"query":       "notification of a personal data breach",
		"match_count": 5,
	}
	resp, body, err = sendRequest("POST", "/api/search/v1", "", searchReq)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	var searchResp map[string]interface{}
	json.Unmarshal(body, &searchResp)
	if results, ok := searchResp["data"].([]interface{}); ok {
		fmt.Printf("Results: %d\n", len(results))
		if len(results) > 0 {
			if top, ok := results[0].(map[string]interface{}); ok {
				fmt.Printf("Top hit: %v (similarity %v)\n", top["source"], top["similarity"])
			}
		}
	} else {
		prettyPrint(searchResp)
	}

	// 4. Session-scoped search lands in the dashboard state
	color.Yellow("\n4. Dashboard Search (Session-Scoped)")
	resp, body, err = sendRequest("POST", "/api/dashboard/v1/search", sessionID,
		map[string]interface{}{"query": "storage limitation"})
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	var dashSearchResp map[string]interface{}
	json.Unmarshal(body, &dashSearchResp)
	if data, ok := dashSearchResp["data"].(map[string]interface{}); ok {
		if state, ok := data["state"].(map[string]interface{}); ok {
			fmt.Printf("Last query: %v\n", state["last_query"])
			if hits, ok := state["search_results"].([]interface{}); ok {
				fmt.Printf("Session results: %d\n", len(hits))
			}
		}
	}

	// 5. Corpus listings
	color.Yellow("\n5. List Documents and Regulations")
	resp, body, err = sendRequest("GET", "/api/document/v1?limit=5", "", nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Documents: %s", resp.Status)
	resp, body, err = sendRequest("GET", "/api/regulation/v1?limit=5", "", nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Regulations: %s", resp.Status)

	// 6. UI tool catalog
	color.Yellow("\n6. UI Tool Catalog")
	resp, body, err = sendRequest("GET", "/api/ui/v1/tools", "", nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	var toolsResp map[string]interface{}
	json.Unmarshal(body, &toolsResp)
	if data, ok := toolsResp["data"].([]interface{}); ok {
		fmt.Printf("Declared tools: %d\n", len(data))
	}

	// 7. Tool invocation through the UI action endpoint
	color.Yellow("\n7. Invoke refresh_documents Tool")
	actionReq := map[string]interface{}{
		"tool":   "refresh_documents",
		"params": map[string]interface{}{"session_id": sessionID},
	}
	resp, body, err = sendRequest("POST", "/api/ui/v1/action", sessionID, actionReq)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)

	// 8. Server-rendered dashboard
	color.Yellow("\n8. Render Dashboard View")
	resp, body, err = sendRequest("GET", "/api/dashboard/v1/view", sessionID, nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	var viewResp map[string]interface{}
	json.Unmarshal(body, &viewResp)
	if data, ok := viewResp["data"].(map[string]interface{}); ok {
		if html, ok := data["html"].(string); ok {
			fmt.Printf("Rendered HTML: %d bytes\n", len(html))
		}
	}

	color.Cyan("\nTest Sequence Complete")
}
