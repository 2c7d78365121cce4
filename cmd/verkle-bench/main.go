// This is free and unencumbered software released into the public domain.
//
// Anyone is free to copy, modify, publish, use, compile, sell, or
// distribute this software, either in source code form or as a compiled
// binary, for any purpose, commercial or non-commercial, and by any
// means.
//
// In jurisdictions that recognize copyright laws, the author or authors
// of this software dedicate any and all copyright interest in the
// software to the public domain. We make this dedication for the benefit
// of the public at large and to the detriment of our heirs and
// successors. We intend this dedication to be an overt act of
// relinquishment in perpetuity of all present and future rights to this
// software under copyright law.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
// IN NO EVENT SHALL THE AUTHORS BE LIABLE FOR ANY CLAIM, DAMAGES OR
// OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE,
// ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR
// OTHER DEALINGS IN THE SOFTWARE.
//
// For more information, please refer to <https://unlicense.org>

package main

import (
	"crypto/rand"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ethereum/verkle-trie/verkle"
)

func main() {
	app := &cli.App{
		Name:  "verkle-bench",
		Usage: "measure incremental-commitment insertion cost on a Verkle trie",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "existing", Value: 100_000, Usage: "number of leaves already in the trie before timing starts"},
			&cli.IntFlag{Name: "insert", Value: 10_000, Usage: "number of leaves to insert while timing"},
			&cli.IntFlag{Name: "rounds", Value: 1, Usage: "number of times to repeat the measured insertion"},
			&cli.StringFlag{Name: "cpuprofile", Usage: "write a CPU profile to this path"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func randomKeys(n int) [][]byte {
	keys := make([][]byte, n)
	for i := range keys {
		keys[i] = make([]byte, 32)
		if _, err := rand.Read(keys[i]); err != nil {
			panic(err)
		}
	}
	return keys
}

func run(c *cli.Context) error {
	existing := c.Int("existing")
	toInsert := c.Int("insert")
	rounds := c.Int("rounds")

	if path := c.String("cpuprofile"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			return err
		}
		defer pprof.StopCPUProfile()
	}

	value := []byte("benchmark-value-0000000000000000")

	for round := 0; round < rounds; round++ {
		baseKeys := randomKeys(existing)
		newKeys := randomKeys(toInsert)

		t := verkle.New()
		for _, k := range baseKeys {
			if err := t.Insert(k, value); err != nil {
				return err
			}
		}

		start := time.Now()
		for _, k := range newKeys {
			if err := t.Insert(k, value); err != nil {
				return err
			}
		}
		elapsed := time.Since(start)

		root := t.Root()
		fmt.Printf("round %d: inserted %d leaves into a %d-leaf trie in %v (root %x)\n",
			round, toInsert, existing, elapsed, root)
	}

	return nil
}
