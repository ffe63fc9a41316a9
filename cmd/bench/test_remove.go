package main

import (
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/Ghost835545/ScheduleMultipartiteGraph/school"
)

// TestRemove links every subject with one group and removes the subjects,
// which also removes their links.
func TestRemove(c Config) {

	if c.Base == "" {
		_, stop := CreateServer(&c)
		defer stop()
	}

	client := NewClient()

	fmt.Println("Preload subjects...")
	Preload(client, c.Base, c.N, c.Workers)

	group := school.GroupStudents{}
	Do(client, http.MethodPost, c.Base+"/v1/groups", JSON{"name": "bench"}, &group)

	subjects := []school.Subject{}
	Do(client, http.MethodGet, c.Base+"/v1/subjects", nil, &subjects)

	fmt.Println("Link subjects...")
	next := int64(-1)
	Parallel(c.Workers, func() {
		for {
			i := atomic.AddInt64(&next, 1)
			if i >= int64(len(subjects)) {
				return
			}
			Do(client, http.MethodPost, c.Base+"/v1/links", JSON{"groupId": group.Id, "subjectId": subjects[i].Id}, nil)
		}
	})

	t0 := time.Now()
	next = -1
	Parallel(c.Workers, func() {
		for {
			i := atomic.AddInt64(&next, 1)
			if i >= int64(len(subjects)) {
				return
			}
			status := Do(client, http.MethodDelete, fmt.Sprintf("%s/v1/subjects/%d", c.Base, subjects[i].Id), nil, nil)
			if status != http.StatusNoContent {
				fmt.Println("ERROR: bad status:", status)
			}
		}
	})

	took := time.Since(t0)
	fmt.Println("removed:", len(subjects))
	fmt.Println("took:", took)
	fmt.Printf("Throughput: %.2f rows/sec\n", float64(len(subjects))/took.Seconds())

	links := []school.LinkGroupSubject{}
	Do(client, http.MethodGet, c.Base+"/v1/links", nil, &links)
	fmt.Println("links left:", len(links))
}
