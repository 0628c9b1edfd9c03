// Command gcodeclean-bench generates a synthetic G-code file for exercising
// the pipeline against large inputs, the way the teacher's
// tests/scripts/generate_large_gcode.go supports its progress-reporting
// tests.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"math"
	"os"
)

func main() {
	lines := flag.Int("lines", 1000000, "number of lines to generate")
	output := flag.String("output", "bench/large_file.nc", "output file path")
	flag.Parse()

	file, err := os.Create(*output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	defer writer.Flush()

	lineCount := 0
	header := []string{
		"G17 G40 G90 G21",
		"G0 Z5.0",
		"T1",
		"S12000 M3",
	}
	footer := []string{
		"G0 Z10.0",
		"M5",
		"G0 X0 Y0",
		"M30",
	}
	for _, l := range header {
		fmt.Fprintln(writer, l)
		lineCount++
	}

	x, y, z := 0.0, 0.0, 0.0
	feedRate := 1500.0
	target := *lines - len(header) - len(footer)

	for i := 0; i < target; i++ {
		if i%100 == 0 {
			fmt.Fprintf(writer, "(Layer %d checkpoint)\n", i/100)
			lineCount++
			continue
		}
		if i%50 == 0 {
			z = math.Min(z+5.0, 5.0)
			fmt.Fprintf(writer, "G0 Z%.3f\n", z)
			lineCount++
			continue
		}
		if i%5 < 3 {
			z = -0.9 + float64(i%10)*0.1
		} else {
			z = -1.5 - float64(i%10)*0.3
		}
		angle := float64(i) * 0.01
		x = 50.0 + 40.0*math.Cos(angle)
		y = 50.0 + 40.0*math.Sin(angle)

		if i%1000 == 0 {
			feedRate = 1000.0 + float64(i%5)*200.0
			fmt.Fprintf(writer, "G1 X%.3f Y%.3f Z%.3f F%.1f\n", x, y, z, feedRate)
		} else {
			fmt.Fprintf(writer, "G1 X%.3f Y%.3f Z%.3f\n", x, y, z)
		}
		lineCount++
	}

	for _, l := range footer {
		fmt.Fprintln(writer, l)
		lineCount++
	}

	fmt.Printf("Generated %d lines in %s\n", lineCount, *output)
}
