package main

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"text/template"
)

type mode struct {
	Order       int
	Code        string
	Description string
}

func main() {
	// Open the input file and read its contents
	data, err := readCsvFile(filepath.Join("scripts", "rounding", "rounding_data.csv"))
	if err != nil {
		panic(fmt.Errorf("error reading CSV file: %v", err))
	}

	// Convert the CSV records to a list of rounding modes
	modes, err := convertDataToModes(data)
	if err != nil {
		panic(fmt.Errorf("error converting CSV records: %v", err))
	}

	// Generate Go code from the rounding modes using a template
	code, err := generateGoCode(filepath.Join("scripts", "rounding", "rounding_data.tmpl"), modes)
	if err != nil {
		panic(fmt.Errorf("error generating Go code: %v", err))
	}

	// Write the generated Go code to a file
	err = writeToFile("rounding_data.go", code)
	if err != nil {
		panic(fmt.Errorf("error writing to file: %v", err))
	}
}

func readCsvFile(filename string) ([][]string, error) {
	// Open the CSV file
	in, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() { _ = in.Close() }()

	// Read the CSV records
	reader := csv.NewReader(in)
	_, err = reader.Read() // header
	if err != nil {
		return nil, err
	}
	recs, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	return recs, nil
}

func convertDataToModes(data [][]string) ([]mode, error) {
	// Convert the CSV records to rounding modes
	modes := []mode{}
	for _, rec := range data {
		order, err := strconv.Atoi(rec[0])
		if err != nil {
			return nil, fmt.Errorf("order of %q: %w", rec[1], err)
		}
		m := mode{
			Order:       order,
			Code:        rec[1],
			Description: rec[2],
		}
		modes = append(modes, m)
	}

	// The first mode becomes the zero value of RoundingMode
	sort.SliceStable(modes, func(i, j int) bool {
		return modes[i].Order < modes[j].Order
	})
	return modes, nil
}

// ident converts a code like "half_even" to a constant name like "RoundHalfEven".
func ident(code string) string {
	var b strings.Builder
	b.WriteString("Round")
	for _, part := range strings.Split(code, "_") {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}

func generateGoCode(filename string, modes []mode) ([]byte, error) {
	// Create a new template object from the template file
	fmap := template.FuncMap{
		"ident": ident,
	}
	tmpl, err := template.New(filepath.Base(filename)).Funcs(fmap).ParseFiles(filename)
	if err != nil {
		return nil, err
	}

	// Execute the template
	var output bytes.Buffer
	err = tmpl.Execute(&output, modes)
	if err != nil {
		return nil, err
	}

	// Format the output as Go code
	formatted, err := format.Source(output.Bytes())
	if err != nil {
		return nil, err
	}
	return formatted, nil
}

func writeToFile(filename string, content []byte) error {
	// Write the content to a file
	out, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()
	writer := bufio.NewWriter(out)
	_, err = writer.Write(content)
	if err != nil {
		return err
	}
	err = writer.Flush()
	if err != nil {
		return err
	}
	return nil
}
