// Command apikey issues a bearer key for a tenant. The raw key is
// printed once; only its hash is persisted.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/projectops/assistant/internal/sqlite"
)

func main() {
	dbPath := flag.String("db", "projectops.db", "path to the SQLite database")
	tenant := flag.String("tenant", "", "tenant ID to issue the key for")
	desc := flag.String("desc", "", "optional key description")
	flag.Parse()

	if *tenant == "" {
		fmt.Fprintln(os.Stderr, "usage: apikey -tenant <id> [-db path] [-desc text]")
		os.Exit(2)
	}

	db, err := sqlite.New(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	key, err := sqlite.NewAPIKeyRepository(db).Issue(context.Background(), *tenant, *desc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "issue key: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(key)
}
