package main

import (
	"fmt"
	"net/http"
	"sync/atomic"
	"time"
)

func atomicDec(v *int64) int64 {
	return atomic.AddInt64(v, -1)
}

func TestCreate(c Config) {

	if c.Base == "" {
		_, stop := CreateServer(&c)
		defer stop()
	}

	client := NewClient()

	items := c.N
	failed := int64(0)

	go func() {
		for {
			fmt.Println("items:", atomic.LoadInt64(&items))
			time.Sleep(1 * time.Second)
		}
	}()

	t0 := time.Now()
	Parallel(c.Workers, func() {
		for {
			n := atomicDec(&items)
			if n < 0 {
				return
			}
			status := Do(client, http.MethodPost, c.Base+"/v1/groups", JSON{"name": fmt.Sprintf("group-%d", n)}, nil)
			if status != http.StatusCreated {
				atomic.AddInt64(&failed, 1)
			}
		}
	})

	took := time.Since(t0)
	fmt.Println("sent:", c.N)
	fmt.Println("failed:", failed)
	fmt.Println("took:", took)
	fmt.Printf("Throughput: %.2f rows/sec\n", float64(c.N)/took.Seconds())
}
