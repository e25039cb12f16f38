package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
)

func main() {
	api := os.Getenv("API_BASE")
	if api == "" {
		api = "http://localhost:8080"
	}

	reader := bufio.NewReader(os.Stdin)
	fmt.Print("Enter a site URL to keep alive (e.g., https://example.com): ")
	raw, _ := reader.ReadString('\n')
	raw = strings.TrimSpace(raw)
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	if _, err := url.ParseRequestURI(raw); err != nil {
		fmt.Println("Invalid URL.")
		return
	}

	body, _ := json.Marshal(map[string]string{"url": raw})
	resp, err := http.Post(api+"/api/links", "application/json", bytes.NewReader(body))
	if err != nil {
		fmt.Println("Error contacting API:", err)
		return
	}
	defer resp.Body.Close()

	var out struct {
		Code         string  `json:"code"`
		Status       string  `json:"status"`
		ResponseTime float64 `json:"responseTime"`
		Error        string  `json:"error"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&out)

	switch {
	case resp.StatusCode == http.StatusCreated:
		fmt.Printf("Added! code=%s status=%s (%.0f ms)\n", out.Code, out.Status, out.ResponseTime)
		fmt.Printf("Check it any time: GET %s/api/links/%s\n", api, out.Code)
	case resp.StatusCode == http.StatusConflict:
		fmt.Printf("Already monitored as %s.\n", out.Code)
	default:
		fmt.Println("API returned status:", resp.Status)
	}
}
