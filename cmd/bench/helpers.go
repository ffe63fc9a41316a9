package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/Ghost835545/ScheduleMultipartiteGraph/bootstrap"
	"github.com/Ghost835545/ScheduleMultipartiteGraph/configuration"
)

type JSON = map[string]any

func Parallel(workers int, f func()) {
	wg := &sync.WaitGroup{}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f()
		}()
	}
	wg.Wait()
}

func TempDir() (string, func()) {
	dir, err := os.MkdirTemp("", "schedule_bench_*")
	if err != nil {
		panic("Could not create temp directory: " + err.Error())
	}

	cleanup := func() {
		os.RemoveAll(dir)
	}

	return dir, cleanup
}

// CreateServer starts an embedded server on a fresh storage root and waits
// until it answers.
func CreateServer(c *Config) (dir string, stop func()) {
	dir, cleanup := TempDir()
	cleanups = append(cleanups, cleanup)

	conf := configuration.Default()
	conf.Dir = dir
	conf.LogLevel = "error"
	conf.EnableCompression = false
	c.Base = "http://" + conf.HttpAddr

	start, stop, err := bootstrap.Bootstrap(&conf)
	if err != nil {
		fmt.Println("ERROR: bootstrap:", err.Error())
		os.Exit(2)
	}
	go start()

	for i := 0; i < 100; i++ {
		resp, err := http.Get(c.Base + "/v1/subjects")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				break
			}
		}
		time.Sleep(50 * time.Millisecond)
	}

	return dir, stop
}

func NewClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			MaxConnsPerHost:     1024,
			MaxIdleConnsPerHost: 1024,
			MaxIdleConns:        1024,
		},
		Timeout: 10 * time.Second,
	}
}

// Do sends body as JSON and decodes the response into out when not nil.
func Do(client *http.Client, method, url string, body any, out any) int {

	var payload io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		payload = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, url, payload)
	if err != nil {
		fmt.Println("ERROR: new request:", err.Error())
		os.Exit(3)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		fmt.Println("ERROR: do request:", err.Error())
		os.Exit(4)
	}
	defer resp.Body.Close()

	if out != nil {
		json.NewDecoder(resp.Body).Decode(out)
	} else {
		io.Copy(io.Discard, resp.Body)
	}

	return resp.StatusCode
}

// Preload creates n subjects with the given number of workers.
func Preload(client *http.Client, base string, n int64, workers int) {
	items := n
	Parallel(workers, func() {
		for {
			i := atomicDec(&items)
			if i < 0 {
				return
			}
			Do(client, http.MethodPost, base+"/v1/subjects", JSON{"name": fmt.Sprintf("subject-%d", i)}, nil)
		}
	})
}
