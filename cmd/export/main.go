package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/chickenboard/export"
	"github.com/chickenboard/report"
)

func main() {
	// Define flags
	output := flag.String("o", export.FileName, "Output .xlsx path, - for stdout")
	help := flag.Bool("help", false, "Show help message")
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	records, err := report.Brands()
	if err != nil {
		log.Fatal("Failed to build brand dataset:", err)
	}
	board := report.NewBoard(records)

	var w io.Writer = os.Stdout
	if *output != "-" {
		f, err := os.Create(*output)
		if err != nil {
			log.Fatal("Failed to create output file:", err)
		}
		defer f.Close()
		w = f
	}

	if err := export.Write(w, board); err != nil {
		log.Fatal("Failed to write workbook:", err)
	}

	if *output != "-" {
		fmt.Printf("📊 Exported %d brands to %s\n", len(records), *output)
	}
}

func showHelp() {
	fmt.Println("Brand Board Export Tool")
	fmt.Println("=======================")
	fmt.Println("\nUsage:")
	fmt.Println("  go run ./cmd/export [flags]")
	fmt.Println("\nFlags:")
	fmt.Println("  -o       Output .xlsx path, - for stdout (default: " + export.FileName + ")")
	fmt.Println("  -help    Show this help message")
	fmt.Println("\nExamples:")
	fmt.Println("  go run ./cmd/export -o board.xlsx")
	fmt.Println("  go run ./cmd/export -o - > board.xlsx")
}
