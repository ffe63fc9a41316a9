package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Ghost835545/ScheduleMultipartiteGraph/repository"
	"github.com/Ghost835545/ScheduleMultipartiteGraph/school"
)

// TestSave measures writing a snapshot and loading it back.
func TestSave(c Config) {

	if c.Base != "" {
		fmt.Println("SAVE needs an embedded server, leave base empty")
		return
	}

	dir, stop := CreateServer(&c)

	client := NewClient()

	fmt.Println("Preload subjects...")
	Preload(client, c.Base, c.N, c.Workers)

	t0 := time.Now()
	written := map[string]string{}
	status := Do(client, http.MethodPost, c.Base+"/v1/storage:save", nil, &written)
	took := time.Since(t0)
	if status != http.StatusOK {
		fmt.Println("ERROR: bad status:", status)
		stop()
		return
	}
	fmt.Println("written:", written)
	fmt.Println("save took:", took)
	fmt.Printf("Throughput Save: %.2f rows/sec\n", float64(c.N)/took.Seconds())

	stop()

	t1 := time.Now()
	subjects, err := repository.New[school.Subject](dir)
	if err != nil {
		fmt.Println("ERROR: load:", err.Error())
		return
	}
	tookLoad := time.Since(t1)
	fmt.Println("loaded:", subjects.Len())
	fmt.Println("load took:", tookLoad)
	fmt.Printf("Throughput Load: %.2f rows/sec\n", float64(subjects.Len())/tookLoad.Seconds())
}
