package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"genre-lab/storage"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
)

func main() {
	dbPath := flag.String("db", "data/bundles", "Path to badger DB")
	flag.Parse()

	// BypassLockGuard allows opening while an importer holds the lock
	opts := badger.DefaultOptions(*dbPath).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)
	db, err := badger.Open(opts)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	bundles, err := storage.NewArtifactRepository(db, logs.GetLoggerFromString("ERROR")).Versions()
	if err != nil {
		log.Fatal(err)
	}
	if len(bundles) == 0 {
		fmt.Println("No bundle stored in", *dbPath)
		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Version", "Created", "Files", "Bytes", ""})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for i, b := range bundles {
		marker := ""
		if i == 0 {
			marker = "latest"
		}
		table.Append([]string{
			b.Version.String(),
			b.CreatedAt.Format("2006-01-02 15:04:05"),
			strings.Join(b.Files, ","),
			strconv.Itoa(b.Bytes),
			marker,
		})
	}
	table.Render()
}
