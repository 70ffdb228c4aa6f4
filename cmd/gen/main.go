// Command gen emits a synthetic CSV transaction history to standard output,
// for exercising the engine against larger inputs than the test fixtures.
// It is the load simulator's descendant: same random-operation-per-client
// idea, but it writes deposit/withdrawal/dispute/resolve/chargeback rows
// instead of firing HTTP requests against a running server.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"math/rand"
	"os"
)

func main() {
	clients := flag.Int("clients", 10, "number of distinct client ids to generate transactions for")
	rows := flag.Int("rows", 1000, "number of transaction rows to generate")
	seed := flag.Int64("seed", 1, "random seed, for reproducible fixtures")
	flag.Parse()

	if *clients < 1 || *rows < 1 {
		fmt.Fprintln(os.Stderr, "clients and rows must be positive")
		os.Exit(1)
	}

	rng := rand.New(rand.NewSource(*seed))
	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"type", "client", "tx", "amount"}); err != nil {
		fmt.Fprintln(os.Stderr, "writing header:", err)
		os.Exit(1)
	}

	// Remember the latest deposit id per client so dispute/resolve/chargeback
	// rows reference a deposit that exists. A client with no deposit yet gets
	// a fresh, unused id instead (see randomRow).
	lastDeposit := make(map[int]uint32, *clients)
	var nextTxID uint32 = 1

	for i := 0; i < *rows; i++ {
		client := rng.Intn(*clients) + 1
		row := randomRow(rng, client, &nextTxID, lastDeposit)
		if err := w.Write(row); err != nil {
			fmt.Fprintln(os.Stderr, "writing row:", err)
			os.Exit(1)
		}
	}
}

func randomRow(rng *rand.Rand, client int, nextTxID *uint32, lastDeposit map[int]uint32) []string {
	id := *nextTxID
	*nextTxID++

	switch rng.Intn(5) {
	case 0:
		lastDeposit[client] = id
		amount := fmt.Sprintf("%d.%02d", rng.Intn(500)+1, rng.Intn(100))
		return []string{"deposit", itoa(client), itoa(int(id)), amount}
	case 1:
		amount := fmt.Sprintf("%d.%02d", rng.Intn(100)+1, rng.Intn(100))
		return []string{"withdrawal", itoa(client), itoa(int(id)), amount}
	case 2:
		ref, ok := lastDeposit[client]
		if !ok {
			ref = id
		}
		return []string{"dispute", itoa(client), itoa(int(ref))}
	case 3:
		ref, ok := lastDeposit[client]
		if !ok {
			ref = id
		}
		return []string{"resolve", itoa(client), itoa(int(ref))}
	default:
		ref, ok := lastDeposit[client]
		if !ok {
			ref = id
		}
		return []string{"chargeback", itoa(client), itoa(int(ref))}
	}
}

func itoa(v int) string {
	return fmt.Sprintf("%d", v)
}
